// Package fuzzy implements fuzzy numbers as validated, immutable families of
// nested alpha-cuts, together with their level-wise arithmetic.
//
// 🚀 What is a fuzzy number here?
//
//	An ordered set of alpha-cuts, unique by α, such that:
//	  • there are at least two cuts;
//	  • the first cut has α = 0 (the SUPPORT) and the last α = 1 (the KERNEL);
//	  • every cut with α ≠ 0 is contained in the support.
//
//	Nesting is checked against the support only, not pairwise between
//	consecutive cuts, so some families whose inner cuts are not mutually
//	nested are accepted.
//
// ✨ Key features:
//   - AlphaCut(α): exact cut when stored, linear interpolation otherwise
//   - Add, Sub, Mul, Div, Neg over the merged α-ladder of both operands
//   - crisp operands lifted to degenerate two-cut numbers (AddScalar, ...)
//   - ApplyFunction: extension principle with a sample budget split across
//     cuts in proportion to their width
//   - Membership(x): the inverse of AlphaCut for a crisp value
//
// ⚙️ Usage:
//
//	a, _ := builder.Triangular(1, 2, 3)
//	b, _ := builder.Triangular(2, 3, 4)
//	sum, _ := a.Add(b)            // triangular(3, 5, 7)
//	half, _ := fuzzy.DivScalar(a, 2) // triangular(0.5, 1, 1.5)
//	fmt.Println(sum)              // Fuzzy number with support (3, 7), kernel (5, 5) and 0 more alpha-cuts.
//
// Storage:
//
//	Cuts live in a persistent sorted map (github.com/benbjohnson/immutable)
//	keyed by α. Inserting a second cut at an α already present is a no-op:
//	the first insertion wins, whatever the interval of the later cut.
//
// Concurrency:
//
//	Numbers are never mutated after New returns, so concurrent reads need no
//	synchronization. Caller-supplied functions passed to ApplyFunction are
//	invoked synchronously.
package fuzzy
