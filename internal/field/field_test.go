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
	"testing"

	"gotest.tools/v3/assert"
)

var fields = map[string]Field{
	"Float64":  Float64Field{},
	"Rational": RationalField{},
}

func TestArithmetic(t *testing.T) {
	for name, f := range fields {
		f := f
		t.Run(name, func(t *testing.T) {
			three, err := f.FromString("3")
			assert.NilError(t, err)
			two, err := f.FromString("2")
			assert.NilError(t, err)

			assert.Equal(t, three.Add(two).String(), f2s(f, 5))
			assert.Equal(t, three.Sub(two).String(), f2s(f, 1))
			assert.Equal(t, three.Mul(two).String(), f2s(f, 6))
			assert.Equal(t, three.Compare(two), Greater)
			assert.Equal(t, two.Compare(three), Less)
			assert.Equal(t, three.Compare(three), Equal)
			assert.Assert(t, IsPositive(f, three))
			assert.Assert(t, !IsZero(f, three))
			assert.Assert(t, IsZero(f, f.Zero()))
		})
	}
}

func TestDivByZeroPanics(t *testing.T) {
	for name, f := range fields {
		f := f
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("expected panic dividing by zero")
				}
			}()
			one := f.One()
			one.Div(f.Zero())
		})
	}
}

func TestFromStringRejectsGarbage(t *testing.T) {
	for name, f := range fields {
		f := f
		t.Run(name, func(t *testing.T) {
			_, err := f.FromString("not-a-number")
			assert.ErrorContains(t, err, "not a valid")
		})
	}
}

func f2s(f Field, n int) string {
	v := f.Zero()
	one := f.One()
	for i := 0; i < n; i++ {
		v = v.Add(one)
	}
	return v.String()
}
