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

package matrix

import (
	"reflect"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/dpotter-lab/simplex/internal/field"
)

func f64(v float64) field.Element { return field.Float64(v) }

func TestGetSetRoundTrip(t *testing.T) {
	m := NewDense(2, 3, field.Float64Field{})
	rows, cols := m.Dims()
	assert.Equal(t, rows, 2)
	assert.Equal(t, cols, 3)

	m.Set(1, 1, f64(5))
	m.Set(2, 3, f64(-7))
	assert.Equal(t, m.At(1, 1), f64(5))
	assert.Equal(t, m.At(2, 3), f64(-7))
	assert.Equal(t, m.At(1, 2), f64(0))
}

func TestRowColumnBuffersAreZeroIndexed(t *testing.T) {
	m := NewDense(2, 2, field.Float64Field{})
	m.Set(1, 1, f64(1))
	m.Set(1, 2, f64(2))
	m.Set(2, 1, f64(3))
	m.Set(2, 2, f64(4))

	row1 := m.Row(1)
	if !reflect.DeepEqual(row1, []field.Element{f64(1), f64(2)}) {
		t.Fatalf("got %v", row1)
	}
	col2 := m.Column(2)
	if !reflect.DeepEqual(col2, []field.Element{f64(2), f64(4)}) {
		t.Fatalf("got %v", col2)
	}
}

func TestSetRowSetColumn(t *testing.T) {
	m := NewDense(2, 2, field.Float64Field{})
	m.SetRow(1, []field.Element{f64(9), f64(8)})
	assert.Equal(t, m.At(1, 1), f64(9))
	assert.Equal(t, m.At(1, 2), f64(8))

	m.SetColumn(2, []field.Element{f64(1), f64(2)})
	assert.Equal(t, m.At(1, 2), f64(1))
	assert.Equal(t, m.At(2, 2), f64(2))
}

func TestScaleRow(t *testing.T) {
	m := NewDense(1, 3, field.Float64Field{})
	m.SetRow(1, []field.Element{f64(1), f64(2), f64(3)})
	m.ScaleRow(1, f64(2))
	if !reflect.DeepEqual(m.Row(1), []field.Element{f64(2), f64(4), f64(6)}) {
		t.Fatalf("got %v", m.Row(1))
	}
}

func TestSubMult(t *testing.T) {
	m := NewDense(2, 2, field.Float64Field{})
	m.SetRow(1, []field.Element{f64(4), f64(6)})
	m.SetRow(2, []field.Element{f64(1), f64(1)})
	// row1 -= 2*row2 -> [2, 4]
	m.SubMult(1, 2, f64(2))
	if !reflect.DeepEqual(m.Row(1), []field.Element{f64(2), f64(4)}) {
		t.Fatalf("got %v", m.Row(1))
	}
}

func TestOutOfRangeAccessPanics(t *testing.T) {
	m := NewDense(1, 1, field.Float64Field{})
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	m.At(2, 1)
}
