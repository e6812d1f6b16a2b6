// Package splice expands configuration-flag occurrences in a command's
// argument list into the flags read from the named TOML files.
package splice

import (
	"strings"

	"github.com/rs/zerolog/log"

	"go.dot.industries/tomlanywhere/internal/config"
	"go.dot.industries/tomlanywhere/internal/errors"
	"go.dot.industries/tomlanywhere/internal/flatten"
)

// DefaultFlag is the configuration flag recognised when none is configured.
const DefaultFlag = "--config"

// Loader reads and parses the configuration file at path.
type Loader func(path string) (*config.Document, error)

// Splicer replaces configuration-flag occurrences with flattened flags.
type Splicer struct {
	flag string
	load Loader
}

// New returns a Splicer for flag. A nil load reads files with config.Load.
func New(flag string, load Loader) *Splicer {
	if flag == "" {
		flag = DefaultFlag
	}
	if load == nil {
		load = config.Load
	}
	return &Splicer{flag: flag, load: load}
}

// Flag returns the configuration flag the Splicer looks for.
func (s *Splicer) Flag() string {
	return s.flag
}

// Splice returns args with each "flag path" pair and each "flag=path" token
// replaced by the "--key value" tokens of the file at path. Other tokens are
// copied unchanged and in order. Occurrences are expanded independently; no
// flags are merged or deduplicated. The first failure stops the scan.
func (s *Splicer) Splice(args []string) ([]string, error) {
	out := make([]string, 0, len(args))
	prefix := s.flag + "="

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch {
		case arg == s.flag:
			if i+1 >= len(args) || strings.HasPrefix(args[i+1], "-") {
				return nil, errors.Newf(errors.ErrUsage, "%s: expected one argument", s.flag)
			}
			i++

			expanded, err := s.expand(args[i])
			if err != nil {
				return nil, err
			}
			out = append(out, expanded...)

		case strings.HasPrefix(arg, prefix):
			expanded, err := s.expand(strings.TrimPrefix(arg, prefix))
			if err != nil {
				return nil, err
			}
			out = append(out, expanded...)

		default:
			out = append(out, arg)
		}
	}

	return out, nil
}

func (s *Splicer) expand(path string) ([]string, error) {
	doc, err := s.load(path)
	if err != nil {
		return nil, err
	}

	args := flatten.Args(doc)
	log.Debug().Str("path", path).Int("args", len(args)).Msg("expanded config file")
	return args, nil
}
