package config

// Float is a TOML float kept as its source text with digit separators
// removed, so that no precision is lost through binary conversion.
type Float string

// Value kinds stored in a Document:
//
//	string, bool, int64, Float,
//	time.Time (offset date-time),
//	toml.LocalDateTime, toml.LocalDate, toml.LocalTime,
//	[]any (arrays, including arrays of tables),
//	*Document (tables and inline tables).
