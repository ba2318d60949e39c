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
	"fmt"
	"log/slog"

	"github.com/dpotter-lab/simplex/internal/field"
	"github.com/dpotter-lab/simplex/internal/matrix"
	"github.com/dpotter-lab/simplex/internal/tableau"
)

// InitializeSimplex runs Phase I on M, an m x n matrix whose first row is
// the objective coefficients (RHS in the last column, ignored beyond its
// value as the objective constant) and whose remaining m-1 rows are
// constraint coefficients with the RHS in the last column.
//
// It returns (nil, nil) if the LP is infeasible (spec.md's Option<system>
// rendered as a nil system with no error, since infeasibility is not an
// exceptional condition). Internal invariant violations panic; they
// cannot occur for valid input.
func InitializeSimplex(M *matrix.Dense) (*tableau.System, error) {
	f := M.Field()
	m, n := M.Dims()

	minRow, bMin := findSmallestRHS(M)

	if !field.IsPositive(f, field.Neg(f, bMin)) {
		// bMin >= zero: the origin is already feasible. No auxiliary
		// problem needed; Phase II takes over from the returned system.
		return buildFeasibleOriginSystem(M, f, m, n), nil
	}

	aux := buildAuxiliarySystem(M, f, m, n)
	forcePivotInAuxiliaryVariable(aux, f, m, n, minRow)

	objective, err := SimpleSolve(aux)
	if err != nil {
		// The auxiliary objective -x0 is bounded above by zero (x0 >= 0),
		// so Phase II can never report it unbounded on valid input.
		panic(fmt.Sprintf("engine: phase I: auxiliary problem reported %v", err))
	}
	if !field.IsZero(f, objective) {
		slog.Debug("engine: phase I infeasible", "auxiliary objective", objective.String())
		return nil, nil
	}

	driveOutAuxiliaryVariable(aux, f, m, n)

	final := deleteAuxiliaryColumn(aux, f, m, n)
	restoreOriginalObjective(final, M, f, n)

	return final, nil
}

// findSmallestRHS returns the matrix row (2..m) with the smallest RHS
// value (column n) and that value.
func findSmallestRHS(M *matrix.Dense) (row int, value field.Element) {
	m, n := M.Dims()
	row = 2
	value = M.At(2, n)
	for r := 3; r <= m; r++ {
		v := M.At(r, n)
		if v.Compare(value) == field.Less {
			row = r
			value = v
		}
	}
	return row, value
}

// buildFeasibleOriginSystem builds the m x (n+m-1) tableau for the
// bMin >= zero case: decision-variable columns copied as-is, an identity
// block of slack columns (one per constraint row), and the original RHS.
func buildFeasibleOriginSystem(M *matrix.Dense, f field.Field, m, n int) *tableau.System {
	cols := n + m - 1
	out := matrix.NewDense(m, cols, f)

	for r := 1; r <= m; r++ {
		for c := 1; c <= n-1; c++ {
			out.Set(r, c, M.At(r, c))
		}
		out.Set(r, cols, M.At(r, n))
	}
	// Row 1's corner cell tracks -z, not z (see restoreOriginalObjective's
	// doc comment for why): negate the objective constant on the way in.
	out.Set(r1, cols, field.Neg(f, M.At(r1, n)))
	for r := 2; r <= m; r++ {
		out.Set(r, n+r-2, f.One())
	}

	nonbasic := indexRange(1, n-1)
	basic := indexRange(n, n+m-2)
	return tableau.New(out, nonbasic, basic)
}

// buildAuxiliarySystem builds the m x (n+m) auxiliary tableau of spec.md
// §4.5 step 3, with the auxiliary variable x0 (column n+m-1) left
// nonbasic at value zero; the caller still needs to force-pivot it into
// the basis to reach a feasible start.
func buildAuxiliarySystem(M *matrix.Dense, f field.Field, m, n int) *tableau.System {
	cols := n + m
	auxCol := n + m - 1
	out := matrix.NewDense(m, cols, f)

	for r := 2; r <= m; r++ {
		for c := 1; c <= n-1; c++ {
			out.Set(r, c, M.At(r, c))
		}
		out.Set(r, n+r-2, f.One())
		out.Set(r, auxCol, field.Neg(f, f.One()))
		out.Set(r, cols, M.At(r, n))
	}
	out.Set(r1, auxCol, field.Neg(f, f.One()))

	nonbasic := append(indexRange(1, n-1), auxCol)
	basic := indexRange(n, n+m-2)
	return tableau.New(out, nonbasic, basic)
}

const r1 = 1

// forcePivotInAuxiliaryVariable performs the one forced pivot of spec.md
// §4.5 step 3 that brings x0 into the basis, displacing whichever slack
// currently owns minRow. The leaving column is found structurally (the
// basic column whose unit "one" sits in minRow) rather than via the
// spec's own "min_index + n - 2" formula, which is off by one against
// the slack layout this package builds (see DESIGN.md) — spec.md's own
// Design Notes flag this arithmetic as "off-by-one-sensitive".
func forcePivotInAuxiliaryVariable(aux *tableau.System, f field.Field, m, n, minRow int) {
	auxCol := n + m - 1
	leave, found := aux.IndexOfBasicInRow(minRow)
	if !found {
		panic(fmt.Sprintf("engine: phase I: no basic column found in row %d before forced pivot", minRow))
	}
	Pivot(aux, auxCol, leave)
}

// driveOutAuxiliaryVariable pivots x0 back out of the basis if it is
// still present at the auxiliary optimum, per spec.md §4.5's "Driving
// out the auxiliary" step.
func driveOutAuxiliaryVariable(aux *tableau.System, f field.Field, m, n int) {
	auxCol := n + m - 1
	row, stillBasic := aux.RowOfBasicColumn(auxCol)
	if !stillBasic {
		return
	}

	for _, j := range aux.Nonbasic {
		if j == auxCol {
			continue
		}
		if !field.IsZero(f, aux.Matrix.At(row, j)) {
			Pivot(aux, j, auxCol)
			return
		}
	}
	panic("engine: phase I: could not find a column to drive out the auxiliary variable")
}

// deleteAuxiliaryColumn builds the final m x (n+m-1) tableau by dropping
// column n+m-1 (the auxiliary variable) from the post-Phase-I matrix.
// Every other column's index is unaffected: decision/slack columns are
// all below n+m-1, and the RHS (column n+m) simply shifts down into the
// vacated last slot.
func deleteAuxiliaryColumn(aux *tableau.System, f field.Field, m, n int) *tableau.System {
	auxCol := n + m - 1
	finalCols := n + m - 1
	out := matrix.NewDense(m, finalCols, f)

	for r := 1; r <= m; r++ {
		c := 1
		for oc := 1; oc <= n+m; oc++ {
			if oc == auxCol {
				continue
			}
			out.Set(r, c, aux.Matrix.At(r, oc))
			c++
		}
	}

	return tableau.New(out, withoutIndex(aux.Nonbasic, auxCol), append([]int(nil), aux.Basic...))
}

// withoutIndex returns a copy of idx with target removed, if present. The
// auxiliary variable is always nonbasic by the time deleteAuxiliaryColumn
// runs (driveOutAuxiliaryVariable pivots it there if it was still basic,
// and it can never have been left out of the basis/nonbasic union
// entirely), but its column no longer exists in the final tableau, so it
// must not appear in either index list.
func withoutIndex(idx []int, target int) []int {
	out := make([]int, 0, len(idx))
	for _, v := range idx {
		if v != target {
			out = append(out, v)
		}
	}
	return out
}

// restoreOriginalObjective overwrites row 1 of final with M's original
// objective row and eliminates final's basic variables from it, per
// spec.md §4.5's "Objective restoration" step.
//
// The corner cell M[1, p] is maintained as -z (the negative of the
// objective value), not z directly: the entering rule picks nonbasic
// columns with a strictly positive raw coefficient as profitable, and
// sub_mult's every-row elimination then necessarily *subtracts* each
// pivot's contribution from the corner cell, so starting it at -constant
// (instead of +constant) is what keeps it equal to -z through every
// later pivot. Callers that want the true objective negate this cell
// once at the end (see the top-level Solve).
func restoreOriginalObjective(final *tableau.System, M *matrix.Dense, f field.Field, n int) {
	_, p := final.Matrix.Dims()

	zeroRow := make([]field.Element, p)
	for i := range zeroRow {
		zeroRow[i] = f.Zero()
	}
	final.Matrix.SetRow(1, zeroRow)
	for c := 1; c <= n-1; c++ {
		final.Matrix.Set(1, c, M.At(1, c))
	}
	final.Matrix.Set(1, p, field.Neg(f, M.At(1, n)))

	for _, j := range final.Basic {
		coeff := final.Matrix.At(1, j)
		if field.IsZero(f, coeff) {
			continue
		}
		row, found := final.RowOfBasicColumn(j)
		if !found {
			panic(fmt.Sprintf("engine: phase I: no unit column found for basic column %d while restoring objective", j))
		}
		final.Matrix.SubMult(1, row, coeff)
	}
}

func indexRange(lo, hi int) []int {
	if hi < lo {
		return []int{}
	}
	out := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, i)
	}
	return out
}
