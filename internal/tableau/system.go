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

// Package tableau holds the canonical-tableau System: a Dense matrix in
// canonical form paired with the disjoint nonbasic/basic column index
// lists. A System is an exclusive-ownership entity — a pivot mutates its
// matrix in place and replaces its index lists wholesale.
package tableau

import (
	"github.com/dpotter-lab/simplex/internal/field"
	"github.com/dpotter-lab/simplex/internal/matrix"
)

// System pairs a canonical-tableau matrix with its nonbasic/basic column
// index sets (both 1-indexed column numbers, disjoint, covering
// 1..p-1 where p is the matrix's column count).
type System struct {
	Matrix   *matrix.Dense
	Nonbasic []int
	Basic    []int
}

// New constructs a System with no validation of the canonical-tableau
// invariants — a testing/construction hook, mirroring spec's make_system.
// Callers that need the invariants checked should do so themselves (see
// internal/engine, which relies on Phase I to have established them).
func New(m *matrix.Dense, nonbasic, basic []int) *System {
	return &System{
		Matrix:   m,
		Nonbasic: append([]int(nil), nonbasic...),
		Basic:    append([]int(nil), basic...),
	}
}

// Break destructures the System, mirroring spec's break_system. The
// returned matrix is the System's own (not a copy, since ownership
// transfers to the caller); the index slices are copies so the caller
// cannot accidentally alias the System's internal state.
func (s *System) Break() (*matrix.Dense, []int, []int) {
	return s.Matrix, append([]int(nil), s.Nonbasic...), append([]int(nil), s.Basic...)
}

// IndexOfBasicInRow scans Basic, in its current order, for the column
// whose unit entry ("one") sits in row r, i.e. the first j in Basic with
// M[r, j] == one. It is used by Phase II's leaving rule (to map a chosen
// pivot row back to a basic column) and by Phase I's forced pivot (to find
// the basic column that owns the minimum-RHS row).
func (s *System) IndexOfBasicInRow(r int) (col int, found bool) {
	one := s.Matrix.Field().One()
	for _, j := range s.Basic {
		if s.Matrix.At(r, j).Compare(one) == field.Equal {
			return j, true
		}
	}
	return 0, false
}

// RowOfBasicColumn reports whether j is currently a basic column and, if
// so, scans constraint rows 2..n for its unit entry, per spec.md §4.3 step
// 1 (the objective row is never a candidate since a basic variable's unit
// column can only live in a constraint row). Membership in Basic is
// checked explicitly rather than inferred from the presence of a 1 in some
// row: a nonbasic column can legitimately hold a coefficient of exactly
// one without being basic, which would otherwise read as a false positive.
func (s *System) RowOfBasicColumn(j int) (row int, found bool) {
	isBasic := false
	for _, b := range s.Basic {
		if b == j {
			isBasic = true
			break
		}
	}
	if !isBasic {
		return 0, false
	}

	n, _ := s.Matrix.Dims()
	one := s.Matrix.Field().One()
	for r := 2; r <= n; r++ {
		if s.Matrix.At(r, j).Compare(one) == field.Equal {
			return r, true
		}
	}
	return 0, false
}
