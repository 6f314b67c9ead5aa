// SPDX-License-Identifier: MIT
// Package: lvfuzzy/internal/cli

package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvfuzzy/builder"
	"github.com/katalvlaran/lvfuzzy/fuzzy"
	"github.com/katalvlaran/lvfuzzy/fuzzyerr"
	"github.com/spf13/pflag"
)

var (
	// errUsage marks command-line misuse that is not a numeric parse error.
	errUsage = errors.New("cli: usage error")

	// errShape is returned for literals with a wrong number of values.
	errShape = fmt.Errorf("cli: shape literal needs 1, 3 or 4 comma-separated values: %w", fuzzyerr.ErrParse)
)

// parseShape turns a shape literal into a fuzzy number:
//
//	"v"        crisp
//	"a,b,c"    triangular
//	"a,b,c,d"  trapezoidal
func parseShape(lit string, cuts int) (fuzzy.Number, error) {
	if cuts < builder.MinCuts {
		return fuzzy.Number{}, fmt.Errorf("--cuts %d: need at least %d: %w", cuts, builder.MinCuts, errUsage)
	}
	parts := strings.Split(lit, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	opt := builder.WithCuts(cuts)
	switch len(parts) {
	case 1:
		return builder.Crisp(parts[0])
	case 3:
		return builder.Triangular(parts[0], parts[1], parts[2], opt)
	case 4:
		return builder.Trapezoidal(parts[0], parts[1], parts[2], parts[3], opt)
	default:
		return fuzzy.Number{}, fmt.Errorf("shape %q: %w", lit, errShape)
	}
}

// formatValue is a pflag.Value restricted to the supported renderings.
type formatValue string

var _ pflag.Value = (*formatValue)(nil)

const (
	formatCompact formatValue = "compact"
	formatText    formatValue = "text"
)

func (f *formatValue) String() string { return string(*f) }

func (f *formatValue) Set(s string) error {
	switch v := formatValue(s); v {
	case formatCompact, formatText:
		*f = v
		return nil
	default:
		return fmt.Errorf("format %q: want %s or %s: %w", s, formatCompact, formatText, errUsage)
	}
}

func (f *formatValue) Type() string { return "format" }

// render writes n in the selected format followed by a newline.
func (o *options) render(w io.Writer, n fuzzy.Number) error {
	out := n.Compact()
	if o.format == formatText {
		out = n.String()
	}
	_, err := fmt.Fprintln(w, out)

	return err
}
