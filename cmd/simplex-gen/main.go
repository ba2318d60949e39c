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

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/dpotter-lab/simplex"
	"github.com/dpotter-lab/simplex/internal/util"
)

func main() {
	flags := util.NewFlagSet(`Usage: %s -seed 1 -vars 5 -constraints 10

%s outputs a random, origin-feasible LP instance to standard out in the
LP text format.

Arguments:
`)
	var seed int64
	flags.Int64Var(&seed, "seed", 1, "seed for the random generator")
	var numVars int
	flags.IntVar(&numVars, "vars", 0, "number of decision variables")
	var numConstraints int
	flags.IntVar(&numConstraints, "constraints", 1, "number of constraints")
	flags.Parse()

	if numVars <= 0 {
		log.Fatalln("vars must be positive (1 <= vars)")
	}
	if numConstraints <= 0 {
		// The LP text grammar has no representation for a constraint-free
		// instance (simplex.LoadFile rejects it as improper input), so
		// every generated instance needs at least one row.
		log.Fatalln("constraints must be positive (1 <= constraints)")
	}

	fmt.Print(simplex.RandomInstance(numVars, numConstraints, seed))
	os.Exit(0)
}
