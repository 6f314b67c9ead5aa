package fuzzy_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/lvfuzzy/alphacut"
	"github.com/katalvlaran/lvfuzzy/builder"
	"github.com/katalvlaran/lvfuzzy/fuzzy"
	"github.com/katalvlaran/lvfuzzy/fuzzyerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Fail covers every construction invariant.
func TestNew_Fail(t *testing.T) {
	cases := []struct {
		name string
		cuts []alphacut.Cut
		want error
	}{
		{"single cut", []alphacut.Cut{cut(t, "0", "1", "1")}, fuzzy.ErrTooFewCuts},
		{"no cuts", nil, fuzzy.ErrTooFewCuts},
		{"duplicate alpha only", []alphacut.Cut{cut(t, "0", "1", "2"), cut(t, "0", "1", "3")}, fuzzy.ErrTooFewCuts},
		{"first alpha not 0", []alphacut.Cut{cut(t, "0.1", "1", "1"), cut(t, "1", "1.5", "1.5")}, fuzzy.ErrSupportAlpha},
		{"last alpha not 1", []alphacut.Cut{cut(t, "0", "1", "1"), cut(t, "0.5", "1.5", "1.5")}, fuzzy.ErrKernelAlpha},
		{"not nested", []alphacut.Cut{cut(t, "0", "1", "1"), cut(t, "1", "1.5", "1.5")}, fuzzy.ErrNotNested},
		{"zero-value cut", []alphacut.Cut{{}, cut(t, "1", "1", "1")}, fuzzy.ErrInvalidCut},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fuzzy.New(tc.cuts...)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, fuzzyerr.ErrInvalidArgument)
		})
	}
}

// TestNew_KernelCheckedBeforeNesting verifies the validation order.
func TestNew_KernelCheckedBeforeNesting(t *testing.T) {
	_, err := fuzzy.New(cut(t, "0", "1", "2"), cut(t, "0.5", "5", "6"))
	assert.ErrorIs(t, err, fuzzy.ErrKernelAlpha)
}

// TestNew_SupportOnlyNesting accepts a family whose inner cuts are contained
// in the support but not in each other.
func TestNew_SupportOnlyNesting(t *testing.T) {
	n, err := fuzzy.New(
		cut(t, "0", "0", "10"),
		cut(t, "0.3", "4", "5"),
		cut(t, "0.6", "1", "9"),
		cut(t, "1", "2", "3"),
	)
	require.NoError(t, err)
	assert.Equal(t, 4, n.Len())
}

// TestNew_FirstInsertWins keeps the first cut given for a repeated alpha,
// in any input order.
func TestNew_FirstInsertWins(t *testing.T) {
	n, err := fuzzy.New(
		cut(t, "1", "2", "2"),
		cut(t, "0.8", "1.5", "2.5"),
		cut(t, "0", "1", "3"),
		cut(t, "0.80", "2", "2"),
		cut(t, "0.3", "1.2", "2.8"),
	)
	require.NoError(t, err)
	assert.Equal(t, 4, n.Len())

	c, err := n.AlphaCut(d("0.8"))
	require.NoError(t, err)
	assert.True(t, c.Interval().Equal(cut(t, "0", "1.5", "2.5").Interval()))

	assert.Empty(t, cmp.Diff(decimals("0", "0.3", "0.8", "1"), n.Alphas(), decimalEq))
}

// TestAlphaCut covers exact, interpolated and out-of-range queries.
func TestAlphaCut(t *testing.T) {
	a := tri(t, 1, 2, 3)
	cases := []struct{ alpha, lo, hi string }{
		{"0", "1", "3"},
		{"0.25", "1.25", "2.75"},
		{"0.5", "1.5", "2.5"},
		{"0.75", "1.75", "2.25"},
		{"1", "2", "2"},
	}
	for _, tc := range cases {
		c, err := fuzzy.AlphaCutOf(a, tc.alpha)
		require.NoError(t, err, tc.alpha)
		assert.True(t, c.Alpha().Equal(d(tc.alpha)))
		assert.Truef(t, c.Interval().Equal(cut(t, "0", tc.lo, tc.hi).Interval()), "alpha %s: %s", tc.alpha, c)
	}

	_, err := fuzzy.AlphaCutOf(a, -0.1)
	assert.ErrorIs(t, err, alphacut.ErrAlphaRange)
	_, err = fuzzy.AlphaCutOf(a, "1.1")
	assert.ErrorIs(t, err, fuzzyerr.ErrRange)
	_, err = fuzzy.AlphaCutOf(a, "x")
	assert.ErrorIs(t, err, fuzzyerr.ErrParse)
}

// TestAlphaCut_InterpolatesBetweenStoredCuts checks the affine blend of the
// bracketing cuts, each bound independently.
func TestAlphaCut_InterpolatesBetweenStoredCuts(t *testing.T) {
	n, err := fuzzy.New(
		cut(t, "0", "0", "10"),
		cut(t, "0.5", "2", "6"),
		cut(t, "1", "3", "3"),
	)
	require.NoError(t, err)

	c, err := n.AlphaCut(d("0.25"))
	require.NoError(t, err)
	assert.True(t, c.Interval().Equal(cut(t, "0", "1", "8").Interval()), c.String())

	c, err = n.AlphaCut(d("0.75"))
	require.NoError(t, err)
	assert.True(t, c.Interval().Equal(cut(t, "0", "2.5", "4.5").Interval()), c.String())

	c, err = n.AlphaCut(d("0.5"))
	require.NoError(t, err)
	assert.True(t, c.Equal(cut(t, "0.5", "2", "6")), "stored cut is returned as is")
}

// TestAccessors covers support/kernel and their bounds.
func TestAccessors(t *testing.T) {
	a := trap(t, 1, 2, 3, 4)
	assert.Equal(t, "[1, 4]", a.Support().String())
	assert.Equal(t, "[2, 3]", a.Kernel().String())
	assert.Equal(t, "1", a.Min().String())
	assert.Equal(t, "4", a.Max().String())
	assert.Equal(t, "2", a.KernelMin().String())
	assert.Equal(t, "3", a.KernelMax().String())

	c0, err := a.AlphaCut(d("0"))
	require.NoError(t, err)
	assert.True(t, c0.Interval().Equal(a.Support()))
	c1, err := a.AlphaCut(d("1"))
	require.NoError(t, err)
	assert.True(t, c1.Interval().Equal(a.Kernel()))

	cuts := a.Cuts()
	require.Len(t, cuts, 2)
	assert.True(t, cuts[0].Alpha().IsZero())
}

// TestAlphas covers the stored ladder of built numbers.
func TestAlphas(t *testing.T) {
	assert.Empty(t, cmp.Diff(decimals("0", "1"), tri(t, 1, 2, 3).Alphas(), decimalEq))

	e := tri(t, 1, 2, 3, builder.WithCuts(6))
	assert.Empty(t, cmp.Diff(decimals("0", "0.2", "0.4", "0.6", "0.8", "1"), e.Alphas(), decimalEq))
}

// TestAlphaCutValues covers the ladder generator.
func TestAlphaCutValues(t *testing.T) {
	v, err := fuzzy.AlphaCutValues(5)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(decimals("0", "0.25", "0.5", "0.75", "1"), v, decimalEq))

	v, err = fuzzy.AlphaCutValues(2)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(decimals("0", "1"), v, decimalEq))

	_, err = fuzzy.AlphaCutValues(1)
	assert.ErrorIs(t, err, fuzzyerr.ErrInvalidArgument)
}

// TestEquality compares whole cut sets.
func TestEquality(t *testing.T) {
	a := tri(t, 1, 2, 3)
	b := tri(t, 2, 3, 4)
	e := tri(t, 1, 2, 3, builder.WithCuts(6))

	assertNumber(t, tri(t, 1, 2, 3), a)
	assert.True(t, a.Equal(a))
	assertNumber(t, a, must(t)(fuzzy.AddScalar(a, 0.0)))

	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(a.Neg()))
	assert.False(t, a.Equal(e), "same shape, different ladder")
	assert.False(t, a.Equal(fuzzy.Number{}))
}

// TestCrisp lifts scalars into degenerate numbers.
func TestCrisp(t *testing.T) {
	c := fuzzy.Crisp(d("2.5"))
	assert.Equal(t, 2, c.Len())
	assert.True(t, c.Support().IsDegenerate())
	assert.True(t, c.Kernel().Equal(c.Support()))

	_, err := fuzzy.CrispOf("2,5")
	assert.ErrorIs(t, err, fuzzyerr.ErrParse)
}

// TestZeroNumber documents the unusable zero value.
func TestZeroNumber(t *testing.T) {
	var z fuzzy.Number
	assert.Equal(t, 0, z.Len())
	assert.Empty(t, z.Cuts())
	_, err := z.AlphaCut(d("0.5"))
	assert.ErrorIs(t, err, fuzzy.ErrTooFewCuts)
}
