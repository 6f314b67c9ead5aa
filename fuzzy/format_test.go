package fuzzy_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/katalvlaran/lvfuzzy/builder"
	"github.com/katalvlaran/lvfuzzy/fuzzy"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// TestFormats pins both textual forms. Regenerate with `go test -update`.
func TestFormats(t *testing.T) {
	crisp, err := fuzzy.CrispOf("2.5")
	require.NoError(t, err)
	e := tri(t, 1, 2, 3, builder.WithCuts(6))

	numbers := []struct {
		name string
		n    fuzzy.Number
	}{
		{"triangular", tri(t, 1, 2, 3)},
		{"negated trapezoidal", trap(t, 1, 2, 3, 4).Neg()},
		{"six cuts", e},
		{"crisp", crisp},
		{"merged sum", must(t)(tri(t, 1, 2, 3).Add(e))},
	}

	var buf bytes.Buffer
	for _, tc := range numbers {
		fmt.Fprintf(&buf, "%s\n%s\n%s\n\n", tc.name, tc.n.Compact(), tc.n)
	}

	goldie.New(t).Assert(t, "formats", buf.Bytes())
}
