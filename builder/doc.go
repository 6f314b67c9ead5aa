// Package builder assembles canonical fuzzy numbers from a handful of shape
// parameters: triangular, trapezoidal and crisp.
//
// 🚀 Shapes:
//
//	Triangular(a, b, c)      support [a, c], kernel [b, b]
//	Trapezoidal(a, b, c, d)  support [a, d], kernel [b, c]
//	Crisp(v)                 support = kernel = [v, v]
//
//	      b              b    c
//	      /\             ______
//	     /  \           /      \
//	  __/____\__     __/________\__
//	    a    c         a        d
//
// ✨ Cut ladders:
//
//	By default a shape is stored as its two defining cuts (α = 0 and α = 1);
//	intermediate levels are interpolated on demand by fuzzy.Number.AlphaCut.
//	WithCuts(n) stores n equally spaced levels i/(n-1) instead, which matters
//	when the number is later pushed through a non-linear function.
//
// ⚙️ Usage:
//
//	a, err := builder.Triangular(1, 2, 3)
//	b, err := builder.Trapezoidal("1", "2", "3", "4", builder.WithCuts(5))
//	c, err := builder.Crisp(2.5)
//
// Parameters are coerced through scalar.Of, so decimals, decimal strings,
// integers and floats are all accepted. Out-of-order parameters fail with
// ErrBadShape (fuzzyerr.ErrInvalidArgument).
package builder
