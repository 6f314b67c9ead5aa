package fuzzy_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/lvfuzzy/alphacut"
	"github.com/katalvlaran/lvfuzzy/builder"
	"github.com/katalvlaran/lvfuzzy/fuzzy"
	"github.com/katalvlaran/lvfuzzy/interval"
	"github.com/katalvlaran/lvfuzzy/scalar"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decimalEq compares decimals by value; the struct layout (big.Int pointer,
// exponent) differs between equal values such as 1 and 1.0.
var decimalEq = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func d(s string) decimal.Decimal { return scalar.MustOf(s) }

func decimals(ss ...string) []decimal.Decimal {
	out := make([]decimal.Decimal, len(ss))
	for i, s := range ss {
		out[i] = d(s)
	}

	return out
}

func cut(t *testing.T, alpha, a, b string) alphacut.Cut {
	t.Helper()
	iv, err := interval.Of(a, b)
	require.NoError(t, err)
	c, err := alphacut.Of(alpha, iv)
	require.NoError(t, err)

	return c
}

func tri[T scalar.Value](t *testing.T, a, b, c T, opts ...builder.BuilderOption) fuzzy.Number {
	t.Helper()
	n, err := builder.Triangular(a, b, c, opts...)
	require.NoError(t, err)

	return n
}

func trap[T scalar.Value](t *testing.T, a, b, c, e T) fuzzy.Number {
	t.Helper()
	n, err := builder.Trapezoidal(a, b, c, e)
	require.NoError(t, err)

	return n
}

// assertNumber compares fuzzy numbers by value and prints both on mismatch.
func assertNumber(t *testing.T, want, got fuzzy.Number) {
	t.Helper()
	assert.Truef(t, want.Equal(got), "want %s\n got %s", want.Compact(), got.Compact())
}

// must unwraps (Number, error) results inside a test.
func must(t *testing.T) func(fuzzy.Number, error) fuzzy.Number {
	return func(n fuzzy.Number, err error) fuzzy.Number {
		t.Helper()
		require.NoError(t, err)
		return n
	}
}
