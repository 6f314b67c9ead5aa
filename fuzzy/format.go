// SPDX-License-Identifier: MIT
// Package: lvfuzzy/fuzzy

package fuzzy

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/lvfuzzy/alphacut"
)

// Compact renders every cut as "(alpha; min, max)", ascending by α,
// separated by single spaces.
func (n Number) Compact() string {
	var sb strings.Builder
	n.each(func(c alphacut.Cut) {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		iv := c.Interval()
		sb.WriteString("(" + c.Alpha().String() + "; " + iv.Min().String() + ", " + iv.Max().String() + ")")
	})

	return sb.String()
}

// String renders the descriptive form:
//
//	Fuzzy number with support (min, max), kernel (kmin, kmax) and <k-2> more alpha-cuts.
func (n Number) String() string {
	more := n.Len() - 2
	if more < 0 {
		more = 0
	}

	return "Fuzzy number with support (" + n.Min().String() + ", " + n.Max().String() +
		"), kernel (" + n.KernelMin().String() + ", " + n.KernelMax().String() +
		") and " + strconv.Itoa(more) + " more alpha-cuts."
}
