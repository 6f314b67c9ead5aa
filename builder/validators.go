// SPDX-License-Identifier: MIT
// Package: lvfuzzy/builder
//
// validators.go — parameter contracts of the shape constructors.

package builder

import "github.com/shopspring/decimal"

// ordered reports whether vs is non-decreasing.
// Complexity: O(len(vs)).
func ordered(vs ...decimal.Decimal) bool {
	for i := 1; i < len(vs); i++ {
		if vs[i].LessThan(vs[i-1]) {
			return false
		}
	}

	return true
}
