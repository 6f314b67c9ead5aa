// SPDX-License-Identifier: MIT
// Package: lvfuzzy/fuzzy

package fuzzy

import (
	"fmt"

	"github.com/katalvlaran/lvfuzzy/alphacut"
	"github.com/katalvlaran/lvfuzzy/interval"
	"github.com/katalvlaran/lvfuzzy/scalar"
	"github.com/shopspring/decimal"
)

// ApplyFunction applies f to n by the extension principle, cut by cut.
//
// Options are the interval evaluator options. With WithMonotone every cut is
// mapped through its two endpoints. Otherwise the sample count (default
// interval.DefaultSamples) is a TOTAL budget shared by the cuts in proportion
// to their width:
//
//	budget(cut) = max(1, ⌊cut.width / support.width · total⌋)
//
// Narrow cuts need fewer samples for the same resolution; the floor of 1
// keeps thin cuts (a point kernel in particular) evaluated. When the support
// itself is degenerate every cut gets the floor.
//
// The first error returned by f aborts the whole evaluation; no partial
// number is returned. Results whose cuts are not nested in the resulting
// support (possible with coarse sampling of non-monotone f) fail validation
// with ErrNotNested.
func (n Number) ApplyFunction(f interval.Func, opts ...interval.Option) (Number, error) {
	o := interval.Gather(opts...)
	total := decimal.NewFromInt(int64(o.Samples()))
	supportWidth := n.Support().Width()

	out := make([]alphacut.Cut, 0, n.Len())
	for _, c := range n.Cuts() {
		cutOpts := make([]interval.Option, 0, len(opts)+1)
		cutOpts = append(cutOpts, opts...)
		cutOpts = append(cutOpts, interval.WithSamples(budget(c.Interval().Width(), supportWidth, total)))

		r, err := c.ApplyFunction(f, cutOpts...)
		if err != nil {
			return Number{}, fmt.Errorf("fuzzy.ApplyFunction: %w", err)
		}
		out = append(out, r)
	}

	res, err := New(out...)
	if err != nil {
		return Number{}, fmt.Errorf("fuzzy.ApplyFunction: %w", err)
	}

	return res, nil
}

// budget returns max(1, ⌊width/supportWidth·total⌋).
func budget(width, supportWidth, total decimal.Decimal) int {
	if supportWidth.IsZero() {
		return 1
	}
	k := scalar.Div(width, supportWidth).Mul(total).Floor().IntPart()
	if k < 1 {
		return 1
	}

	return int(k)
}
