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

// Package simplex solves linear programs in standard form by the
// two-phase revised Simplex method. See SPEC_FULL.md for the full
// component breakdown; this package is the set of entry points a caller
// uses, wiring internal/field, internal/matrix, internal/tableau and
// internal/engine together.
package simplex

import (
	"errors"

	"github.com/dpotter-lab/simplex/internal/engine"
	"github.com/dpotter-lab/simplex/internal/field"
	"github.com/dpotter-lab/simplex/internal/matrix"
	"github.com/dpotter-lab/simplex/internal/tableau"
)

// ErrUnbounded is returned by Solve when the LP's objective is unbounded
// above over the feasible region.
var ErrUnbounded = engine.ErrUnbounded

// MakeSystem constructs a System without validating the canonical-tableau
// invariants — a testing/construction hook.
func MakeSystem(m *matrix.Dense, nonbasic, basic []int) *tableau.System {
	return tableau.New(m, nonbasic, basic)
}

// BreakSystem destructures sys into its matrix and index lists.
func BreakSystem(sys *tableau.System) (*matrix.Dense, []int, []int) {
	return sys.Break()
}

// LoadMatrix runs Phase I on a caller-supplied tableau-shaped matrix. A
// nil system with a nil error means the LP is infeasible.
func LoadMatrix(m *matrix.Dense) (*tableau.System, error) {
	return engine.InitializeSimplex(m)
}

// SimpleSolve exposes Phase II directly for tests: it runs the
// optimization loop to completion and returns the true objective value
// alongside the mutated system.
func SimpleSolve(sys *tableau.System) (field.Element, *tableau.System, error) {
	raw, err := engine.SimpleSolve(sys)
	if err != nil {
		return nil, nil, err
	}
	return field.Neg(sys.Matrix.Field(), raw), sys, nil
}

// Solve runs Phase II on sys and returns the optimum objective value.
func Solve(sys *tableau.System) (field.Element, error) {
	value, _, err := SimpleSolve(sys)
	return value, err
}

// errInfeasible is returned by Load when Phase I determines the LP has
// no feasible solution; callers that only need a single error value
// (rather than distinguishing infeasibility from a nil, nil pair) can use
// this via Load.
var errInfeasible = errors.New("simplex: linear program is infeasible")

// Load runs Phase I and Phase II in sequence: load_matrix followed by
// solve, for callers that just want the optimum or a distinguished
// error. Phase I's "no feasible solution" outcome, normally represented
// by a nil system, is translated into errInfeasible here since Load has
// no system to hand back to the caller.
func Load(m *matrix.Dense) (field.Element, error) {
	sys, err := LoadMatrix(m)
	if err != nil {
		return nil, err
	}
	if sys == nil {
		return nil, errInfeasible
	}
	return Solve(sys)
}

// ErrInfeasible reports whether err is the infeasibility error Load
// returns when Phase I proves the LP has no feasible solution.
func ErrInfeasible(err error) bool {
	return errors.Is(err, errInfeasible)
}
