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
	"errors"
	"os"
	"strings"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/dpotter-lab/simplex/internal/field"
)

func TestParseLPFileMaxLessEqual(t *testing.T) {
	src := "max\n1, 1\nsubject to\n1, 0 <= 1\n0, 1 <= 1\n"
	M, err := parseLPFile(strings.NewReader(src), field.Float64Field{})
	assert.NilError(t, err)

	rows, cols := M.Dims()
	assert.Equal(t, rows, 3)
	assert.Equal(t, cols, 3)
	assert.Equal(t, M.At(1, 1), field.Element(field.Float64(1)))
	assert.Equal(t, M.At(1, 2), field.Element(field.Float64(1)))
	assert.Equal(t, M.At(2, 3), field.Element(field.Float64(1)))
	assert.Equal(t, M.At(3, 3), field.Element(field.Float64(1)))
}

func TestParseLPFileMinNegatesObjective(t *testing.T) {
	src := "min\n3, 2\nsubject to\n1, 1 >= 4\n"
	M, err := parseLPFile(strings.NewReader(src), field.Float64Field{})
	assert.NilError(t, err)

	// min objective negated to maximize, then the >= row negated to <=.
	assert.Equal(t, M.At(1, 1), field.Element(field.Float64(-3)))
	assert.Equal(t, M.At(1, 2), field.Element(field.Float64(-2)))
	assert.Equal(t, M.At(2, 1), field.Element(field.Float64(-1)))
	assert.Equal(t, M.At(2, 2), field.Element(field.Float64(-1)))
	assert.Equal(t, M.At(2, 3), field.Element(field.Float64(-4)))
}

func TestParseLPFileEqualityExpandsToTwoRows(t *testing.T) {
	src := "max\n1, 1\nsubject to\n1, 1 = 1\n"
	M, err := parseLPFile(strings.NewReader(src), field.Float64Field{})
	assert.NilError(t, err)

	rows, _ := M.Dims()
	assert.Equal(t, rows, 3)
	assert.Equal(t, M.At(2, 1), field.Element(field.Float64(1)))
	assert.Equal(t, M.At(2, 2), field.Element(field.Float64(1)))
	assert.Equal(t, M.At(2, 3), field.Element(field.Float64(1)))
	assert.Equal(t, M.At(3, 1), field.Element(field.Float64(-1)))
	assert.Equal(t, M.At(3, 2), field.Element(field.Float64(-1)))
	assert.Equal(t, M.At(3, 3), field.Element(field.Float64(-1)))
}

func TestParseLPFileRejectsBadSenseLine(t *testing.T) {
	src := "maximize\n1, 1\nsubject to\n1, 0 <= 1\n"
	_, err := parseLPFile(strings.NewReader(src), field.Float64Field{})
	assert.Assert(t, err != nil)
	var target *ImproperInputError
	assert.Assert(t, errors.As(err, &target))
}

func TestParseLPFileRejectsMissingSubjectTo(t *testing.T) {
	src := "max\n1, 1\n1, 0 <= 1\n"
	_, err := parseLPFile(strings.NewReader(src), field.Float64Field{})
	assert.Assert(t, err != nil)
}

func TestParseLPFileRejectsMismatchedRowWidth(t *testing.T) {
	src := "max\n1, 1\nsubject to\n1, 0, 0 <= 1\n"
	_, err := parseLPFile(strings.NewReader(src), field.Float64Field{})
	assert.Assert(t, err != nil)
}

func TestLoadFileEndToEnd(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/instance.lp"
	assert.NilError(t, os.WriteFile(path, []byte("max\n1, 1\nsubject to\n1, 0 <= 1\n0, 1 <= 1\n"), 0o644))

	sys, err := LoadFile(path, field.Float64Field{})
	assert.NilError(t, err)
	assert.Assert(t, sys != nil)

	value, err := Solve(sys)
	assert.NilError(t, err)
	assert.Equal(t, value, field.Element(field.Float64(2.0)))
}
