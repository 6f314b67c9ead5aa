// Package interval implements closed real intervals [min, max] over
// arbitrary-precision decimals, the building block of every alpha-cut.
//
// 🚀 What is an interval here?
//
//	An immutable value type holding two decimal bounds with min ≤ max.
//	A degenerate interval has min == max; the EMPTY interval is a distinct,
//	explicit state (it is the zero value) and is never the same as [0, 0].
//
// ✨ Key features:
//   - standard interval arithmetic: Add, Sub, Mul, Div, Neg, Power
//   - set operations: Contains, Intersects, Intersection, Unite, UnionHull
//   - partial order: a < b iff a.max < b.min (overlapping intervals are unordered)
//   - extension principle: ApplyFunction pushes any scalar function through
//     an interval, exactly (monotone fast path) or by dense uniform sampling
//
// ⚙️ Usage:
//
//	a := interval.New(scalar.MustOf(1), scalar.MustOf(3))
//	b, _ := interval.Of("2", "5")
//	sum := a.Add(b) // [3, 8]
//
//	sq, err := a.ApplyFunction(interval.Pure(func(x decimal.Decimal) decimal.Decimal {
//	    return x.Mul(x)
//	}), interval.WithMonotone())
//
// Errors:
//   - ErrDivisionByZero, ErrDisjoint, ErrNegativeExponent (all fuzzyerr.ErrDomain)
//   - ErrFunction wraps whatever the caller's function returned.
package interval
