// Package alphacut pairs a confidence level α ∈ [0,1] with an interval.
//
// An alpha-cut of a fuzzy number is the set of values whose membership degree
// is at least α. Cuts are ORDERED by α alone (Compare), while Equal also
// compares the interval. Containers keyed by Compare therefore treat two cuts
// at the same α as the same key regardless of their intervals; fuzzy.Number
// relies on exactly that (first insertion wins).
package alphacut
