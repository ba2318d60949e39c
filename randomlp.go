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

package simplex

import (
	"math/rand"
	"strconv"

	"golang.org/x/exp/slices"
)

// RandomInstance generates a random feasible maximize LP with numVars
// decision variables and numConstraints <= constraints in the text
// format of spec.md §6: random positive objective coefficients, and
// constraint rows with random non-negative coefficients and a strictly
// positive RHS (which keeps the origin feasible, so every generated
// instance is solvable in Phase I's direct branch). Duplicate constraint
// rows are rejected and regenerated so every row is a distinct cut.
func RandomInstance(numVars, numConstraints int, seed int64) string {
	gen := rand.New(rand.NewSource(seed))

	objective := make([]float64, numVars)
	for j := 0; j < numVars; j++ {
		objective[j] = 1 + gen.Float64()*9
	}

	var rows [][]float64
	for len(rows) < numConstraints {
		row := make([]float64, numVars+1)
		for j := 0; j < numVars; j++ {
			row[j] = gen.Float64() * 10
		}
		row[numVars] = 1 + gen.Float64()*9 // RHS, strictly positive

		duplicate := false
		for _, existing := range rows {
			if slices.Equal(existing, row) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			rows = append(rows, row)
		}
	}

	return formatLPText("max", objective, rows)
}

func formatLPText(sense string, objective []float64, rows [][]float64) string {
	var b []byte
	b = append(b, sense...)
	b = append(b, '\n')
	b = append(b, formatRow(objective)...)
	b = append(b, '\n')
	b = append(b, "subject to\n"...)
	for _, row := range rows {
		b = append(b, formatConstraintRow(row)...)
		b = append(b, '\n')
	}
	return string(b)
}

func formatRow(row []float64) string {
	s := ""
	for i, v := range row {
		if i > 0 {
			s += ", "
		}
		s += formatFloat(v)
	}
	return s
}

func formatConstraintRow(row []float64) string {
	n := len(row)
	s := ""
	for i := 0; i < n-1; i++ {
		if i > 0 {
			s += ", "
		}
		s += formatFloat(row[i])
	}
	s += " <= " + formatFloat(row[n-1])
	return s
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
