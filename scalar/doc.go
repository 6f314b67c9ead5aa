// Package scalar is the numeric domain of lvfuzzy: an arbitrary-precision
// decimal (github.com/shopspring/decimal) plus the small amount of glue the
// interval and fuzzy-number algebra needs on top of it.
//
// ✨ What lives here:
//   - Parse: strict decimal literal parsing (fails with fuzzyerr.ErrParse).
//   - Of: ONE coercion function from {decimal, string, integers, floats}
//     used uniformly at every coercing entry point of the library.
//   - Div: division with the library-wide precision policy.
//   - MinMax, PowInt, Float64: helpers shared by interval arithmetic.
//
// Precision policy:
//
//	Addition, subtraction and multiplication are exact (the coefficient is a
//	big.Int). Division is the only rounding operation; it rounds half-up to
//	at least DivisionPlaces (50) significant digits, however small the
//	quotient. Results of equal expressions are
//	therefore reproducible bit-for-bit, which is what lets the tests compare
//	fuzzy numbers for exact equality.
package scalar
