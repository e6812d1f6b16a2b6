// Package flatten turns a configuration document into command-line flags.
package flatten

import (
	"iter"
	"strings"

	"go.dot.industries/tomlanywhere/internal/config"
)

// Pair is one flag produced from a configuration document. Flag carries no
// leading dashes.
type Pair struct {
	Flag  string
	Value string
}

// Pairs yields the flags of doc in table order. Keys have '_' replaced by
// '-', and keys of nested tables are prefixed with their parent keys joined
// by '.'. Empty tables yield nothing.
func Pairs(doc *config.Document) iter.Seq[Pair] {
	return func(yield func(Pair) bool) {
		walk(doc, "", yield)
	}
}

// Args flattens doc into alternating "--flag" and value tokens.
func Args(doc *config.Document) []string {
	var args []string
	for p := range Pairs(doc) {
		args = append(args, "--"+p.Flag, p.Value)
	}
	return args
}

// walk recurses depth-first through nested tables. It reports false once
// the consumer stops iterating.
func walk(doc *config.Document, prefix string, yield func(Pair) bool) bool {
	for key, value := range doc.All() {
		name := prefix + strings.ReplaceAll(key, "_", "-")

		if table, ok := value.(*config.Document); ok {
			if !walk(table, name+".", yield) {
				return false
			}
			continue
		}

		if !yield(Pair{Flag: name, Value: Encode(value)}) {
			return false
		}
	}
	return true
}
