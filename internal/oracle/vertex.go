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

// Package oracle is an independent brute-force cross-check for the
// engine: it enumerates candidate vertices of the feasible region by
// combination and solves each induced square system directly, rather
// than pivoting. It exists to catch engine regressions that happen to
// agree with themselves across a pivot sequence but disagree with the
// geometry of the actual polytope.
package oracle

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/combin"
)

// Problem is a maximize-c'x LP in the form c (length k), A (m x k), b
// (length m), representing Ax <= b, x >= 0.
type Problem struct {
	C []float64
	A [][]float64
	B []float64
}

// ErrNoFeasibleVertex is returned when no combination of tight
// constraints yields a feasible, bounded vertex.
var ErrNoFeasibleVertex = fmt.Errorf("oracle: no feasible vertex found")

// BestVertex enumerates every combination of k constraints (out of the m
// structural constraints plus k non-negativity constraints) tight
// simultaneously, solves the resulting k x k linear system for the
// candidate vertex, discards candidates that violate any constraint, and
// returns the feasible vertex with the largest objective value.
//
// This is deliberately exponential (C(m+k, k) combinations) and is meant
// for cross-checking the engine against small hand-built instances in
// tests, not for production use.
func BestVertex(p Problem) (x []float64, value float64, err error) {
	k := len(p.C)
	m := len(p.B)

	rows, rhs := augmentWithNonNegativity(p.A, p.B, k)
	total := len(rhs)

	best := math.Inf(-1)
	var bestX []float64
	found := false

	gen := combin.NewCombinationGenerator(total, k)
	for gen.Next() {
		combo := gen.Combination(nil)

		Amat := mat.NewDense(k, k, nil)
		bvec := mat.NewVecDense(k, nil)
		for i, rowIdx := range combo {
			for j := 0; j < k; j++ {
				Amat.Set(i, j, rows[rowIdx][j])
			}
			bvec.SetVec(i, rhs[rowIdx])
		}

		var xvec mat.VecDense
		if err := xvec.SolveVec(Amat, bvec); err != nil {
			continue // singular combination: constraints don't intersect at a point
		}

		candidate := make([]float64, k)
		for j := 0; j < k; j++ {
			candidate[j] = xvec.AtVec(j)
		}
		if !feasible(candidate, p.A, p.B, m) {
			continue
		}

		val := dot(p.C, candidate)
		if val > best {
			best = val
			bestX = candidate
			found = true
		}
	}

	if !found {
		return nil, 0, ErrNoFeasibleVertex
	}
	return bestX, best, nil
}

// augmentWithNonNegativity appends the k non-negativity constraints
// (-x_j <= 0) to the structural constraints so that any combination of k
// constraint rows, structural or non-negativity, can be solved as a
// square system.
func augmentWithNonNegativity(A [][]float64, b []float64, k int) (rows [][]float64, rhs []float64) {
	rows = make([][]float64, 0, len(A)+k)
	rhs = make([]float64, 0, len(b)+k)
	rows = append(rows, A...)
	rhs = append(rhs, b...)
	for j := 0; j < k; j++ {
		row := make([]float64, k)
		row[j] = -1
		rows = append(rows, row)
		rhs = append(rhs, 0)
	}
	return rows, rhs
}

func feasible(x []float64, A [][]float64, b []float64, m int) bool {
	const tol = 1e-7
	for j := range x {
		if x[j] < -tol {
			return false
		}
	}
	for i := 0; i < m; i++ {
		if dot(A[i], x) > b[i]+tol {
			return false
		}
	}
	return true
}

func dot(a, x []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * x[i]
	}
	return sum
}
