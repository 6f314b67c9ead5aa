// SPDX-License-Identifier: MIT
// Package: lvfuzzy/fuzzy

package fuzzy

import (
	"fmt"

	"github.com/katalvlaran/lvfuzzy/membership"
	"github.com/katalvlaran/lvfuzzy/scalar"
	"github.com/shopspring/decimal"
)

// Membership returns the membership degree of x, the inverse of AlphaCut:
// the highest α whose (interpolated) cut still contains x.
//
//   - x outside the support ⇒ 0;
//   - x inside the kernel   ⇒ 1;
//   - otherwise, with lower the highest stored cut containing x and upper
//     the next one, the α at which the crossing bound of the linear blend
//     between lower and upper reaches x.
//
// Complexity: O(k) for k stored cuts.
func (n Number) Membership(x decimal.Decimal) (membership.Degree, error) {
	cuts := n.Cuts()
	if len(cuts) == 0 || !cuts[0].Interval().Contains(x) {
		return membership.Degree{}, nil
	}

	k := 0
	for k+1 < len(cuts) && cuts[k+1].Interval().Contains(x) {
		k++
	}
	if k == len(cuts)-1 {
		return membership.NewDegree(scalar.One)
	}

	lower, upper := cuts[k], cuts[k+1]
	lo, up := lower.Interval(), upper.Interval()
	span := upper.Alpha().Sub(lower.Alpha())

	var frac decimal.Decimal
	if x.LessThan(up.Min()) {
		// rising edge: lo.min ≤ x < up.min
		frac = scalar.Div(x.Sub(lo.Min()), up.Min().Sub(lo.Min()))
	} else {
		// falling edge: up.max < x ≤ lo.max
		frac = scalar.Div(lo.Max().Sub(x), lo.Max().Sub(up.Max()))
	}

	mu, err := membership.NewDegree(lower.Alpha().Add(frac.Mul(span)))
	if err != nil {
		return membership.Degree{}, fmt.Errorf("Membership(%s): %w", x, err)
	}

	return mu, nil
}

// MembershipOf coerces x through scalar.Of and delegates to n.Membership.
func MembershipOf[T scalar.Value](n Number, x T) (membership.Degree, error) {
	d, err := scalar.Of(x)
	if err != nil {
		return membership.Degree{}, fmt.Errorf("Membership: %w", err)
	}

	return n.Membership(d)
}
