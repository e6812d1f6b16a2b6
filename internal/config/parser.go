package config

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/pelletier/go-toml/v2/unstable"

	"go.dot.industries/tomlanywhere/internal/errors"
)

// Load reads and parses the TOML file at path. The file is closed before
// Load returns, whatever the outcome.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "reading config %s", path)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "reading config %s", path)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "parsing config %s", path)
	}

	return doc, nil
}

// Parse decodes a TOML document into an ordered Document.
//
// The input is first checked by the regular decoder, which enforces the full
// TOML grammar and reports positioned diagnostics. The ordered tree is then
// built from the expression stream, which keeps definition order and the
// source text of floats.
func Parse(data []byte) (*Document, error) {
	var check map[string]any
	if err := toml.Unmarshal(data, &check); err != nil {
		var de *toml.DecodeError
		if stderrors.As(err, &de) {
			row, col := de.Position()
			return nil, fmt.Errorf("line %d, column %d: %w", row, col, err)
		}
		return nil, err
	}

	b := newBuilder()

	var p unstable.Parser
	p.Reset(data)
	for p.NextExpression() {
		if err := b.expression(p.Expression()); err != nil {
			return nil, err
		}
	}
	if err := p.Error(); err != nil {
		return nil, err
	}

	return b.root, nil
}

// builder assembles a Document from parser expressions.
type builder struct {
	root    *Document
	current *Document
}

func newBuilder() *builder {
	root := NewDocument()
	return &builder{root: root, current: root}
}

func (b *builder) expression(expr *unstable.Node) error {
	switch expr.Kind {
	case unstable.KeyValue:
		return keyValue(b.current, expr)

	case unstable.Table:
		t, err := descend(b.root, keyParts(expr.Key()))
		if err != nil {
			return err
		}
		b.current = t

	case unstable.ArrayTable:
		keys := keyParts(expr.Key())
		parent, err := descend(b.root, keys[:len(keys)-1])
		if err != nil {
			return err
		}

		name := keys[len(keys)-1]
		var arr []any
		if v, ok := parent.Get(name); ok {
			arr, ok = v.([]any)
			if !ok {
				return fmt.Errorf("key %s is not an array of tables", strings.Join(keys, "."))
			}
		}

		t := NewDocument()
		parent.Set(name, append(arr, t))
		b.current = t
	}

	return nil
}

// keyValue stores a key/value expression into table, creating the tables
// implied by a dotted key.
func keyValue(table *Document, expr *unstable.Node) error {
	keys := keyParts(expr.Key())

	parent, err := descend(table, keys[:len(keys)-1])
	if err != nil {
		return err
	}

	v, err := value(expr.Value())
	if err != nil {
		return fmt.Errorf("key %s: %w", strings.Join(keys, "."), err)
	}

	parent.Set(keys[len(keys)-1], v)
	return nil
}

// descend walks keys from table, creating missing tables. An array of tables
// on the path resolves to its last element.
func descend(table *Document, keys []string) (*Document, error) {
	for i, k := range keys {
		v, ok := table.Get(k)
		if !ok {
			next := NewDocument()
			table.Set(k, next)
			table = next
			continue
		}

		switch t := v.(type) {
		case *Document:
			table = t
		case []any:
			last, ok := lastTable(t)
			if !ok {
				return nil, fmt.Errorf("key %s is not a table", strings.Join(keys[:i+1], "."))
			}
			table = last
		default:
			return nil, fmt.Errorf("key %s is not a table", strings.Join(keys[:i+1], "."))
		}
	}

	return table, nil
}

func lastTable(arr []any) (*Document, bool) {
	if len(arr) == 0 {
		return nil, false
	}
	t, ok := arr[len(arr)-1].(*Document)
	return t, ok
}

func keyParts(it unstable.Iterator) []string {
	var keys []string
	for it.Next() {
		keys = append(keys, string(it.Node().Data))
	}
	return keys
}

// value converts a value node into its Document representation.
func value(n *unstable.Node) (any, error) {
	switch n.Kind {
	case unstable.String:
		return string(n.Data), nil

	case unstable.Bool:
		return string(n.Data) == "true", nil

	case unstable.Integer:
		i, err := strconv.ParseInt(string(n.Data), 0, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", n.Data, err)
		}
		return i, nil

	case unstable.Float:
		return Float(strings.ReplaceAll(string(n.Data), "_", "")), nil

	case unstable.DateTime:
		return parseDateTime(n.Data)

	case unstable.LocalDateTime:
		var dt toml.LocalDateTime
		if err := dt.UnmarshalText(n.Data); err != nil {
			return nil, err
		}
		return dt, nil

	case unstable.LocalDate:
		var d toml.LocalDate
		if err := d.UnmarshalText(n.Data); err != nil {
			return nil, err
		}
		return d, nil

	case unstable.LocalTime:
		var t toml.LocalTime
		if err := t.UnmarshalText(n.Data); err != nil {
			return nil, err
		}
		return t, nil

	case unstable.Array:
		arr := []any{}
		it := n.Children()
		for it.Next() {
			child := it.Node()
			if child.Kind == unstable.Comment {
				continue
			}
			v, err := value(child)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil

	case unstable.InlineTable:
		t := NewDocument()
		it := n.Children()
		for it.Next() {
			child := it.Node()
			if child.Kind != unstable.KeyValue {
				continue
			}
			if err := keyValue(t, child); err != nil {
				return nil, err
			}
		}
		return t, nil
	}

	return nil, fmt.Errorf("unsupported value kind %s", n.Kind)
}

// parseDateTime parses an offset date-time. TOML allows a space or a
// lowercase t between date and time, and a lowercase z offset.
func parseDateTime(b []byte) (time.Time, error) {
	s := strings.ToUpper(strings.Replace(string(b), " ", "T", 1))

	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date-time %q: %w", b, err)
	}
	return t, nil
}
