package config

import (
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Document is a TOML table that remembers the order in which its keys were
// first defined. Tables cannot contain themselves, so walking a Document
// always terminates.
type Document struct {
	entries *orderedmap.OrderedMap[string, any]
}

// NewDocument returns an empty table.
func NewDocument() *Document {
	return &Document{entries: orderedmap.New[string, any]()}
}

// Len returns the number of keys in the table.
func (d *Document) Len() int {
	return d.entries.Len()
}

// Keys returns the table's keys in definition order.
func (d *Document) Keys() []string {
	keys := make([]string, 0, d.entries.Len())
	for k := range d.All() {
		keys = append(keys, k)
	}
	return keys
}

// Get returns the value stored under key.
func (d *Document) Get(key string) (any, bool) {
	return d.entries.Get(key)
}

// Set stores value under key. A new key is appended to the order; an
// existing key keeps its position.
func (d *Document) Set(key string, value any) {
	d.entries.Set(key, value)
}

// All iterates over the table's entries in definition order.
func (d *Document) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for pair := d.entries.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}
