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

package field

import (
	"fmt"
	"strconv"
)

// Float64 is an Element backed by an IEEE double. It is the fast, rounding
// risk-bearing choice of the two Field implementations this module ships.
type Float64 float64

func (a Float64) Add(b Element) Element { return a + b.(Float64) }
func (a Float64) Sub(b Element) Element { return a - b.(Float64) }
func (a Float64) Mul(b Element) Element { return a * b.(Float64) }

func (a Float64) Div(b Element) Element {
	bf := b.(Float64)
	if bf == 0 {
		panic("field: Float64 division by zero")
	}
	return a / bf
}

func (a Float64) Compare(b Element) Order {
	bf := float64(b.(Float64))
	af := float64(a)
	switch {
	case af < bf:
		return Less
	case af > bf:
		return Greater
	default:
		return Equal
	}
}

func (a Float64) String() string {
	return strconv.FormatFloat(float64(a), 'g', -1, 64)
}

// Float64Field is the Field factory for Float64 elements.
type Float64Field struct{}

func (Float64Field) Zero() Element { return Float64(0) }
func (Float64Field) One() Element  { return Float64(1) }

func (Float64Field) FromString(s string) (Element, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("field: %q is not a valid number: %w", s, err)
	}
	return Float64(v), nil
}
