package interval_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvfuzzy/interval"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var square = interval.Pure(func(x decimal.Decimal) decimal.Decimal { return x.Mul(x) })

// counting wraps f and records every evaluated point.
func counting(f interval.Func, seen *[]decimal.Decimal) interval.Func {
	return func(x decimal.Decimal) (decimal.Decimal, error) {
		*seen = append(*seen, x)
		return f(x)
	}
}

// TestApplyFunction_Monotone evaluates only the two endpoints.
func TestApplyFunction_Monotone(t *testing.T) {
	var seen []decimal.Decimal
	got, err := iv(t, "1", "3").ApplyFunction(counting(square, &seen), interval.WithMonotone())
	require.NoError(t, err)
	assertInterval(t, iv(t, "1", "9"), got)
	assert.Len(t, seen, 2)

	neg := interval.Pure(func(x decimal.Decimal) decimal.Decimal { return x.Neg() })
	got, err = iv(t, "1", "3").ApplyFunction(neg, interval.WithMonotone())
	require.NoError(t, err)
	assertInterval(t, iv(t, "-3", "-1"), got)
}

// TestApplyFunction_Sampled finds the interior minimum of x² on [-2, 3].
func TestApplyFunction_Sampled(t *testing.T) {
	var seen []decimal.Decimal
	got, err := iv(t, "-2", "3").ApplyFunction(counting(square, &seen))
	require.NoError(t, err)
	assertInterval(t, iv(t, "0", "9"), got)
	assert.Len(t, seen, interval.DefaultSamples+1)
	assert.True(t, seen[0].Equal(d("-2")))
	assert.True(t, seen[len(seen)-1].Equal(d("3")))

	// The monotone assertion is not checked: endpoints only miss the minimum.
	got, err = iv(t, "-2", "3").ApplyFunction(square, interval.WithMonotone())
	require.NoError(t, err)
	assertInterval(t, iv(t, "4", "9"), got)
}

// TestApplyFunction_SampleFloor verifies the MinSamples floor.
func TestApplyFunction_SampleFloor(t *testing.T) {
	var seen []decimal.Decimal
	got, err := iv(t, "-1", "1").ApplyFunction(counting(square, &seen), interval.WithSamples(1))
	require.NoError(t, err)
	require.Len(t, seen, interval.MinSamples+1)
	assert.True(t, seen[1].IsZero(), "midpoint must be sampled")
	assertInterval(t, iv(t, "0", "1"), got)

	seen = nil
	_, err = iv(t, "0", "10").ApplyFunction(counting(square, &seen), interval.WithSamples(10))
	require.NoError(t, err)
	assert.Len(t, seen, 11)
	assert.True(t, seen[3].Equal(d("3")))
}

// TestApplyFunction_Float uses a float-backed function (cosine).
func TestApplyFunction_Float(t *testing.T) {
	cos := interval.Pure(func(x decimal.Decimal) decimal.Decimal {
		return decimal.NewFromFloat(math.Cos(x.InexactFloat64()))
	})
	half := decimal.NewFromFloat(math.Pi / 2)
	got, err := interval.New(half.Neg(), half).ApplyFunction(cos)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, got.MinFloat64(), 1e-12)
	assert.InDelta(t, 1.0, got.MaxFloat64(), 1e-12)
}

// TestApplyFunction_FailFast verifies that the first error aborts evaluation.
func TestApplyFunction_FailFast(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	f := func(x decimal.Decimal) (decimal.Decimal, error) {
		calls++
		if x.GreaterThan(decimal.NewFromInt(1)) {
			return decimal.Zero, boom
		}
		return x, nil
	}

	_, err := iv(t, "0", "2").ApplyFunction(f, interval.WithSamples(4))
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, err, interval.ErrFunction)
	assert.Equal(t, 4, calls, "0, 0.5, 1 succeed; 1.5 fails; 2 is never evaluated")

	calls = 0
	_, err = iv(t, "0", "2").ApplyFunction(f, interval.WithMonotone())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
}

// TestApplyFunction_Empty never calls f.
func TestApplyFunction_Empty(t *testing.T) {
	f := func(decimal.Decimal) (decimal.Decimal, error) {
		t.Fatal("f must not be called on the empty interval")
		return decimal.Zero, nil
	}
	got, err := interval.Empty().ApplyFunction(f)
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
}

// TestOptions covers defaults and validating constructors.
func TestOptions(t *testing.T) {
	o := interval.Gather()
	assert.False(t, o.Monotone())
	assert.Equal(t, interval.DefaultSamples, o.Samples())

	o = interval.Gather(interval.WithSamples(5), nil, interval.WithMonotone(), interval.WithSamples(7))
	assert.True(t, o.Monotone())
	assert.Equal(t, 7, o.Samples(), "later options win")

	assert.Panics(t, func() { interval.WithSamples(0) })
}
