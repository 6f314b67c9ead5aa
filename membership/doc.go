// Package membership holds the bounded scalar value objects of fuzzy logic:
// a membership degree μ ∈ [0,1] and a possibility/necessity pair.
//
// They carry no algebra; their only job is to refuse values outside [0,1]
// (fuzzyerr.ErrRange) and to compare and print consistently.
package membership
