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

package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/dpotter-lab/simplex/internal/field"
	"github.com/dpotter-lab/simplex/internal/tableau"
)

// ErrUnbounded is returned by SimpleSolve when Phase II finds a column
// with a positive reduced cost and no positive entry to ratio-test
// against: the objective can be improved without bound.
var ErrUnbounded = errors.New("engine: linear program is unbounded")

// SimpleSolve runs the Phase II optimization loop to completion: it picks
// an entering column by Bland's rule (smallest index with positive
// reduced cost and at least one positive column entry), runs the
// minimum-ratio test to pick the leaving column, pivots, and repeats
// until no nonbasic column has a positive reduced cost. It mutates sys in
// place and returns the raw corner cell M[1, p] — which holds the
// negative of the objective value, not the value itself (see
// engine.InitializeSimplex's restoreOriginalObjective doc comment).
// Callers that want the true objective, rather than this test-exposed raw
// cell, negate the returned element.
func SimpleSolve(sys *tableau.System) (field.Element, error) {
	for {
		enter, unbounded, optimal := chooseEntering(sys)
		if optimal {
			_, p := sys.Matrix.Dims()
			return sys.Matrix.At(1, p), nil
		}
		if unbounded {
			return nil, ErrUnbounded
		}

		leaveRow := chooseLeavingRow(sys, enter)
		leave, found := sys.IndexOfBasicInRow(leaveRow)
		if !found {
			panic(fmt.Sprintf("engine: simple_solve: no basic column found in row %d", leaveRow))
		}

		slog.Debug("engine: phase II pivot", "entering", enter, "leaving", leave, "row", leaveRow)
		Pivot(sys, enter, leave)
	}
}

// chooseEntering implements spec.md §4.4's entering rule: scan the
// nonbasic set in ascending column-index order, looking for the first
// column with a strictly positive reduced cost AND at least one strictly
// positive entry among the constraint rows. If no column has a positive
// reduced cost at all, the tableau is optimal. If some do but none
// qualifies as a candidate, the LP is unbounded.
func chooseEntering(sys *tableau.System) (enter int, unbounded bool, optimal bool) {
	f := sys.Matrix.Field()
	n, _ := sys.Matrix.Dims()

	candidates := append([]int(nil), sys.Nonbasic...)
	sort.Ints(candidates)

	sawPositiveReducedCost := false
	for _, j := range candidates {
		rc := sys.Matrix.At(1, j)
		if !field.IsPositive(f, rc) {
			continue
		}
		sawPositiveReducedCost = true

		hasPositiveEntry := false
		for i := 2; i <= n; i++ {
			if field.IsPositive(f, sys.Matrix.At(i, j)) {
				hasPositiveEntry = true
				break
			}
		}
		if hasPositiveEntry {
			return j, false, false
		}
	}

	if sawPositiveReducedCost {
		return 0, true, false
	}
	return 0, false, true
}

// chooseLeavingRow implements the minimum-ratio test: among constraint
// rows with a strictly positive entry in the entering column, pick the
// row with the smallest ratio of b-value to entering-column entry,
// breaking ties by keeping the earliest-found (lowest-index) row.
func chooseLeavingRow(sys *tableau.System, enter int) int {
	f := sys.Matrix.Field()
	n, p := sys.Matrix.Dims()

	bestRow := 0
	var bestRatio field.Element
	for i := 2; i <= n; i++ {
		entry := sys.Matrix.At(i, enter)
		if !field.IsPositive(f, entry) {
			continue
		}
		ratio := sys.Matrix.At(i, p).Div(entry)
		if bestRow == 0 || ratio.Compare(bestRatio) == field.Less {
			bestRow = i
			bestRatio = ratio
		}
	}
	if bestRow == 0 {
		panic("engine: minimum-ratio test found no positive entry; caller should have detected unboundedness first")
	}
	return bestRow
}
