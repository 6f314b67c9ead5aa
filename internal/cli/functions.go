// SPDX-License-Identifier: MIT
// Package: lvfuzzy/internal/cli

package cli

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvfuzzy/fuzzyerr"
	"github.com/katalvlaran/lvfuzzy/interval"
	"github.com/katalvlaran/lvfuzzy/scalar"
	"github.com/shopspring/decimal"
)

// errOutsideDomain is returned by partial functions such as sqrt and ln.
var errOutsideDomain = fmt.Errorf("cli: argument outside the function's domain: %w", fuzzyerr.ErrDomain)

// functions available to the apply command. Decimal-native ones are exact;
// the rest go through float64.
var functions = map[string]interval.Func{
	"square": interval.Pure(func(x decimal.Decimal) decimal.Decimal { return x.Mul(x) }),
	"cube":   interval.Pure(func(x decimal.Decimal) decimal.Decimal { return x.Mul(x).Mul(x) }),
	"abs":    interval.Pure(decimal.Decimal.Abs),
	"neg":    interval.Pure(decimal.Decimal.Neg),
	"exp":    viaFloat(math.Exp),
	"sin":    viaFloat(math.Sin),
	"cos":    viaFloat(math.Cos),
	"sqrt": func(x decimal.Decimal) (decimal.Decimal, error) {
		if x.IsNegative() {
			return decimal.Zero, fmt.Errorf("sqrt(%s): %w", x, errOutsideDomain)
		}
		return viaFloat(math.Sqrt)(x)
	},
	"ln": func(x decimal.Decimal) (decimal.Decimal, error) {
		if !x.IsPositive() {
			return decimal.Zero, fmt.Errorf("ln(%s): %w", x, errOutsideDomain)
		}
		return viaFloat(math.Log)(x)
	},
}

// viaFloat lifts a float64 function. NaN and infinite results (overflow,
// poles) are reported as domain errors.
func viaFloat(fn func(float64) float64) interval.Func {
	return func(x decimal.Decimal) (decimal.Decimal, error) {
		y := fn(scalar.Float64(x))
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return decimal.Zero, fmt.Errorf("f(%s) = %v: %w", x, y, errOutsideDomain)
		}
		return decimal.NewFromFloat(y), nil
	}
}
