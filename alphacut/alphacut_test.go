package alphacut_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvfuzzy/alphacut"
	"github.com/katalvlaran/lvfuzzy/fuzzyerr"
	"github.com/katalvlaran/lvfuzzy/interval"
	"github.com/katalvlaran/lvfuzzy/scalar"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func iv(t *testing.T, a, b string) interval.Interval {
	t.Helper()
	out, err := interval.Of(a, b)
	require.NoError(t, err)

	return out
}

func cut(t *testing.T, alpha, a, b string) alphacut.Cut {
	t.Helper()
	c, err := alphacut.Of(alpha, iv(t, a, b))
	require.NoError(t, err)

	return c
}

// TestNew_Fail covers the range and empty-interval failures.
func TestNew_Fail(t *testing.T) {
	_, err := alphacut.Of("-0.1", iv(t, "1", "2"))
	assert.ErrorIs(t, err, alphacut.ErrAlphaRange)
	assert.ErrorIs(t, err, fuzzyerr.ErrRange)

	_, err = alphacut.Of(1.1, iv(t, "1", "2"))
	assert.ErrorIs(t, err, fuzzyerr.ErrRange)

	_, err = alphacut.Of("0.5", interval.Empty())
	assert.ErrorIs(t, err, alphacut.ErrEmptyInterval)
	assert.ErrorIs(t, err, fuzzyerr.ErrInvalidArgument)

	_, err = alphacut.Of("half", iv(t, "1", "2"))
	assert.ErrorIs(t, err, fuzzyerr.ErrParse)
}

// TestNew_Boundaries accepts α = 0 and α = 1.
func TestNew_Boundaries(t *testing.T) {
	for _, a := range []string{"0", "1", "0.5"} {
		c := cut(t, a, "1", "2")
		assert.True(t, c.Alpha().Equal(scalar.MustOf(a)))
		assert.True(t, c.Interval().Equal(iv(t, "1", "2")))
	}
}

// TestCompare orders by α only; Equal also compares the interval.
func TestCompare(t *testing.T) {
	a := cut(t, "0.5", "1", "2")
	b := cut(t, "0.7", "2", "3")
	c := cut(t, "0.5", "1.5", "2.5")

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(c), "same alpha ⇒ equivalent")
	assert.False(t, a.Equal(c), "but not equal")
	assert.True(t, a.Equal(cut(t, "0.50", "1", "2.0")))
}

// TestSort is stable for equivalent cuts.
func TestSort(t *testing.T) {
	cuts := []alphacut.Cut{
		cut(t, "0.8", "1", "2"),
		cut(t, "0.3", "1", "2"),
		cut(t, "0.5", "1.5", "2.5"),
		cut(t, "0.8", "5", "5"),
	}
	alphacut.Sort(cuts)

	wantAlpha := []string{"0.3", "0.5", "0.8", "0.8"}
	wantIv := []interval.Interval{iv(t, "1", "2"), iv(t, "1.5", "2.5"), iv(t, "1", "2"), iv(t, "5", "5")}
	for i, c := range cuts {
		assert.Equal(t, wantAlpha[i], c.Alpha().String())
		assert.True(t, c.Interval().Equal(wantIv[i]), "cut %d: %s", i, c)
	}
}

// TestContains checks nesting and the downward-only contract.
func TestContains(t *testing.T) {
	low := cut(t, "0.2", "1", "5")
	high := cut(t, "0.8", "2", "3")

	ok, err := low.Contains(high)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = low.Contains(cut(t, "0.9", "0", "3"))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = low.Contains(cut(t, "0.2", "2", "3"))
	require.NoError(t, err)
	assert.True(t, ok, "equal alpha is allowed")

	_, err = high.Contains(low)
	assert.ErrorIs(t, err, alphacut.ErrContainmentDirection)
	assert.ErrorIs(t, err, fuzzyerr.ErrDomain)
}

// TestNeg flips the interval and keeps α.
func TestNeg(t *testing.T) {
	n := cut(t, "0.4", "1", "3").Neg()
	assert.True(t, n.Equal(cut(t, "0.4", "-3", "-1")))
}

// TestApplyFunction keeps α and propagates failures.
func TestApplyFunction(t *testing.T) {
	sq := interval.Pure(func(x decimal.Decimal) decimal.Decimal { return x.Mul(x) })
	got, err := cut(t, "0.5", "1", "3").ApplyFunction(sq, interval.WithMonotone())
	require.NoError(t, err)
	assert.True(t, got.Equal(cut(t, "0.5", "1", "9")))

	boom := errors.New("boom")
	_, err = cut(t, "0.5", "1", "3").ApplyFunction(func(decimal.Decimal) (decimal.Decimal, error) {
		return decimal.Zero, boom
	})
	assert.ErrorIs(t, err, boom)
}

// TestString verifies the textual form.
func TestString(t *testing.T) {
	assert.Equal(t, "AlphaCut(alpha: 0.5, interval: [1, 2.5])", cut(t, "0.5", "1", "2.50").String())
}
