package flatten

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"go.dot.industries/tomlanywhere/internal/config"
)

const (
	dateLayout   = "2006-01-02"
	clockLayout  = "15:04:05"
	micros       = ".000000"
	offsetLayout = "-07:00"
)

// Encode renders one configuration value as a single command-line argument.
//
// Strings pass through unchanged, date and time values use their RFC 3339
// text with microsecond precision, floats keep their exact source digits,
// and every other value is written as JSON text.
func Encode(v any) string {
	if s, ok := dateText(v); ok {
		return s
	}

	switch v := v.(type) {
	case string:
		return v
	case config.Float:
		return string(v)
	}

	var b strings.Builder
	writeJSON(&b, v)
	return b.String()
}

// dateText formats the TOML date and time kinds.
func dateText(v any) (string, bool) {
	switch v := v.(type) {
	case time.Time:
		return v.Format(dateLayout + "T" + clock(v) + offsetLayout), true
	case toml.LocalDateTime:
		t := v.AsTime(time.UTC)
		return t.Format(dateLayout + "T" + clock(t)), true
	case toml.LocalDate:
		return v.String(), true
	case toml.LocalTime:
		t := time.Date(0, time.January, 1, v.Hour, v.Minute, v.Second, v.Nanosecond, time.UTC)
		return t.Format(clock(t)), true
	}
	return "", false
}

// clock returns the time-of-day layout for t. The fraction is written as six
// digits, truncated, and left out entirely when there are no microseconds.
func clock(t time.Time) string {
	if t.Nanosecond()/int(time.Microsecond) == 0 {
		return clockLayout
	}
	return clockLayout + micros
}

// writeJSON writes v as JSON text with ", " and ": " separators.
func writeJSON(b *strings.Builder, v any) {
	if s, ok := dateText(v); ok {
		writeString(b, s)
		return
	}

	switch v := v.(type) {
	case nil:
		b.WriteString("null")
	case string:
		writeString(b, v)
	case bool:
		b.WriteString(strconv.FormatBool(v))
	case int64:
		b.WriteString(strconv.FormatInt(v, 10))
	case config.Float:
		writeString(b, string(v))
	case []any:
		b.WriteByte('[')
		for i, item := range v {
			if i > 0 {
				b.WriteString(", ")
			}
			writeJSON(b, item)
		}
		b.WriteByte(']')
	case *config.Document:
		b.WriteByte('{')
		i := 0
		for k, item := range v.All() {
			if i > 0 {
				b.WriteString(", ")
			}
			writeString(b, k)
			b.WriteString(": ")
			writeJSON(b, item)
			i++
		}
		b.WriteByte('}')
	default:
		writeString(b, fmt.Sprint(v))
	}
}

func writeString(b *strings.Builder, s string) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		b.WriteString(strconv.Quote(s))
		return
	}
	b.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}
