/*
 Copyright (C) 2024 Douglas Wayne Potter

 This program is free software: you can redistribute it and/or modify
 it under the terms of the GNU Affero General Public License as
 published by the Free Software Foundation, either version 3 of the
 License, or (at your option) any later version.

 This program is distributed in the hope that it will be useful,
 but WITHOUT ANY WARRANTY; without even the implied warranty of
 MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 GNU Affero General Public License for more details.

 You should have received a copy of the GNU Affero General Public License
 along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

// Package engine is the Simplex core: the atomic pivot step, the Phase II
// optimization loop and Bland's-rule entering/leaving rules, and the
// Phase I auxiliary-problem initializer. It is the only package that
// mutates a tableau.System's matrix.
package engine

import (
	"fmt"
	"log/slog"

	"github.com/dpotter-lab/simplex/internal/field"
	"github.com/dpotter-lab/simplex/internal/tableau"
)

// Pivot performs one Gauss-Jordan Simplex step: entering column enter
// (currently nonbasic) swaps into the basis, displacing leaving column
// leave (currently basic). It mutates sys.Matrix in place and replaces
// sys.Nonbasic/sys.Basic with new index lists.
//
// Pivot panics if the precondition M[r, enter] != zero does not hold, or
// if the unit "one" of column leave cannot be found in a constraint row —
// both indicate the caller handed Pivot a tableau that does not satisfy
// the canonical-tableau invariants, which is a bug, never a condition a
// caller can trigger with a valid LP.
func Pivot(sys *tableau.System, enter, leave int) {
	r, found := sys.RowOfBasicColumn(leave)
	if !found {
		panic(fmt.Sprintf("engine: pivot: no unit column found for leaving column %d", leave))
	}

	f := sys.Matrix.Field()
	piv := sys.Matrix.At(r, enter)
	if field.IsZero(f, piv) {
		panic(fmt.Sprintf("engine: pivot: zero pivot element at row %d, column %d", r, enter))
	}

	n, _ := sys.Matrix.Dims()
	sys.Matrix.ScaleRow(r, f.One().Div(piv))
	// Force the pivot entry to the field's exact one rather than trust
	// the rounding of piv * (one / piv): over Float64, dividing then multiplying back
	// through ScaleRow does not always land on exactly 1.0, and the
	// canonical-tableau invariant that IndexOfBasicInRow/RowOfBasicColumn
	// rely on is defined as an exact match against One(), not an
	// approximate one.
	sys.Matrix.Set(r, enter, f.One())
	for i := 1; i <= n; i++ {
		if i == r {
			continue
		}
		k := sys.Matrix.At(i, enter)
		if field.IsZero(f, k) {
			continue
		}
		sys.Matrix.SubMult(i, r, k)
	}

	sys.Basic = replaceFirst(sys.Basic, enter, leave)
	sys.Nonbasic = replaceFirst(sys.Nonbasic, leave, enter)

	slog.Debug("engine: pivot", "row", r, "entering", enter, "leaving", leave)
}

// replaceFirst returns a new slice equal to [newFront] followed by old
// with target removed, per spec.md §4.3 step 5: basic' = [e] ++ (basic \
// {l}), nonbasic' = [l] ++ (nonbasic \ {e}).
func replaceFirst(old []int, newFront, target int) []int {
	out := make([]int, 0, len(old))
	out = append(out, newFront)
	for _, v := range old {
		if v != target {
			out = append(out, v)
		}
	}
	return out
}
