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

// Package matrix is the dense matrix primitive the Simplex engine's
// tableau is built on: a mutable, 1-indexed-in-the-public-API grid of
// field.Element. Every primitive preserves dimensions; the engine only
// ever mutates a Dense through the in-place row operations below.
package matrix

import (
	"fmt"

	"github.com/dpotter-lab/simplex/internal/field"
)

// Dense is an m x p matrix of field.Element, addressed 1..m by 1..p
// through the public API. Row/column buffers returned by Row/Column are
// 0-indexed, per the index-base asymmetry the engine is required to
// observe.
type Dense struct {
	f    field.Field
	rows int
	cols int
	data [][]field.Element // data[r][c] is the (r+1, c+1) entry
}

// NewDense returns a fresh rows x cols matrix with every entry set to the
// field's zero.
func NewDense(rows, cols int, f field.Field) *Dense {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("matrix: invalid shape %dx%d", rows, cols))
	}
	data := make([][]field.Element, rows)
	for r := range data {
		row := make([]field.Element, cols)
		for c := range row {
			row[c] = f.Zero()
		}
		data[r] = row
	}
	return &Dense{f: f, rows: rows, cols: cols, data: data}
}

// Field returns the element field this matrix is defined over.
func (m *Dense) Field() field.Field { return m.f }

// Dims returns the number of rows and columns.
func (m *Dense) Dims() (rows, cols int) { return m.rows, m.cols }

func (m *Dense) checkRow(r int) {
	if r < 1 || r > m.rows {
		panic(fmt.Sprintf("matrix: row %d out of range [1,%d]", r, m.rows))
	}
}

func (m *Dense) checkCol(c int) {
	if c < 1 || c > m.cols {
		panic(fmt.Sprintf("matrix: column %d out of range [1,%d]", c, m.cols))
	}
}

// At returns the 1-indexed (r, c) entry.
func (m *Dense) At(r, c int) field.Element {
	m.checkRow(r)
	m.checkCol(c)
	return m.data[r-1][c-1]
}

// Set writes the 1-indexed (r, c) entry.
func (m *Dense) Set(r, c int, v field.Element) {
	m.checkRow(r)
	m.checkCol(c)
	m.data[r-1][c-1] = v
}

// Row returns a fresh 0-indexed copy of row r's p entries.
func (m *Dense) Row(r int) []field.Element {
	m.checkRow(r)
	out := make([]field.Element, m.cols)
	copy(out, m.data[r-1])
	return out
}

// Column returns a fresh 0-indexed copy of column c's n entries.
func (m *Dense) Column(c int) []field.Element {
	m.checkCol(c)
	out := make([]field.Element, m.rows)
	for r := 0; r < m.rows; r++ {
		out[r] = m.data[r][c-1]
	}
	return out
}

// SetRow overwrites row r in place from a 0-indexed buffer of length p.
func (m *Dense) SetRow(r int, values []field.Element) {
	m.checkRow(r)
	if len(values) != m.cols {
		panic(fmt.Sprintf("matrix: SetRow expected %d values, got %d", m.cols, len(values)))
	}
	copy(m.data[r-1], values)
}

// SetColumn overwrites column c in place from a 0-indexed buffer of length n.
func (m *Dense) SetColumn(c int, values []field.Element) {
	m.checkCol(c)
	if len(values) != m.rows {
		panic(fmt.Sprintf("matrix: SetColumn expected %d values, got %d", m.rows, len(values)))
	}
	for r := 0; r < m.rows; r++ {
		m.data[r][c-1] = values[r]
	}
}

// ScaleRow replaces row r with k*row r, in place.
func (m *Dense) ScaleRow(r int, k field.Element) {
	m.checkRow(r)
	row := m.data[r-1]
	for c := range row {
		row[c] = row[c].Mul(k)
	}
}

// SubMult replaces row i with row i - k*row j, in place. If i == j the row
// becomes (1-k)*row i; the engine never calls it that way.
func (m *Dense) SubMult(i, j int, k field.Element) {
	m.checkRow(i)
	m.checkRow(j)
	rowI := m.data[i-1]
	rowJ := m.data[j-1]
	for c := range rowI {
		rowI[c] = rowI[c].Sub(k.Mul(rowJ[c]))
	}
}

// Clone returns a deep copy of m.
func (m *Dense) Clone() *Dense {
	out := &Dense{f: m.f, rows: m.rows, cols: m.cols, data: make([][]field.Element, m.rows)}
	for r := range m.data {
		row := make([]field.Element, m.cols)
		copy(row, m.data[r])
		out.data[r] = row
	}
	return out
}
