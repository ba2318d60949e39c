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
	"math/big"
)

// Rational is an Element backed by an exact arbitrary-precision fraction.
// It is the slow, exact alternative to Float64: useful for the degenerate
// and cycling-prone instances in spec.md's literal scenarios, where
// rounding could otherwise mask a bug in the pivot/ratio-test logic.
type Rational struct {
	r *big.Rat
}

func NewRational(r *big.Rat) Rational {
	return Rational{r: r}
}

func (a Rational) Add(b Element) Element {
	return Rational{new(big.Rat).Add(a.r, b.(Rational).r)}
}

func (a Rational) Sub(b Element) Element {
	return Rational{new(big.Rat).Sub(a.r, b.(Rational).r)}
}

func (a Rational) Mul(b Element) Element {
	return Rational{new(big.Rat).Mul(a.r, b.(Rational).r)}
}

func (a Rational) Div(b Element) Element {
	br := b.(Rational).r
	if br.Sign() == 0 {
		panic("field: Rational division by zero")
	}
	return Rational{new(big.Rat).Quo(a.r, br)}
}

func (a Rational) Compare(b Element) Order {
	switch a.r.Cmp(b.(Rational).r) {
	case -1:
		return Less
	case 1:
		return Greater
	default:
		return Equal
	}
}

func (a Rational) String() string {
	return a.r.RatString()
}

// RationalField is the Field factory for Rational elements.
type RationalField struct{}

func (RationalField) Zero() Element { return Rational{big.NewRat(0, 1)} }
func (RationalField) One() Element  { return Rational{big.NewRat(1, 1)} }

func (RationalField) FromString(s string) (Element, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("field: %q is not a valid rational number", s)
	}
	return Rational{r}, nil
}
