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

package oracle

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestBestVertexTrivialSquare(t *testing.T) {
	p := Problem{
		C: []float64{1, 1},
		A: [][]float64{
			{1, 0},
			{0, 1},
		},
		B: []float64{1, 1},
	}
	x, value, err := BestVertex(p)
	assert.NilError(t, err)
	assert.Equal(t, value, 2.0)
	assert.Equal(t, len(x), 2)
	assert.Equal(t, x[0], 1.0)
	assert.Equal(t, x[1], 1.0)
}

func TestBestVertexMinConversionInstance(t *testing.T) {
	p := Problem{
		C: []float64{-3, -2},
		A: [][]float64{
			{-1, -1},
			{1, 0},
			{0, 1},
		},
		B: []float64{-4, 10, 10},
	}
	_, value, err := BestVertex(p)
	assert.NilError(t, err)
	assert.Equal(t, value, -8.0)
}

func TestBestVertexNoFeasiblePoint(t *testing.T) {
	p := Problem{
		C: []float64{1},
		A: [][]float64{
			{1},
		},
		B: []float64{-1},
	}
	_, _, err := BestVertex(p)
	assert.ErrorIs(t, err, ErrNoFeasibleVertex)
}
