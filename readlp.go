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
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dpotter-lab/simplex/internal/field"
	"github.com/dpotter-lab/simplex/internal/matrix"
	"github.com/dpotter-lab/simplex/internal/tableau"
)

const (
	sectionNotSet = iota
	sectionSense
	sectionObjective
	sectionSubjectTo
	sectionConstraints
)

// LoadFile parses path in the text LP format and runs Phase I on the
// resulting matrix. A nil, nil return means the LP is infeasible.
func LoadFile(path string, f field.Field) (*tableau.System, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, wrapImproperInput(err, "cannot open %q", path)
	}
	defer file.Close()

	M, err := parseLPFile(file, f)
	if err != nil {
		return nil, err
	}
	return LoadMatrix(M)
}

// parseLPFile implements the file grammar of spec.md §6: a sense line
// (min/max), an objective line, a "subject to" line, and one constraint
// per remaining line. It applies the normalization rules that put every
// row into the engine's internal maximize convention before returning
// the matrix that Phase I consumes.
func parseLPFile(r io.Reader, f field.Field) (*matrix.Dense, error) {
	prefix := "simplex: LP reader"
	scanner := bufio.NewScanner(r)
	section := sectionNotSet

	minimize := false
	var objective []field.Element
	var rows [][]field.Element

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		switch section {
		case sectionNotSet:
			switch strings.ToLower(strings.TrimSpace(line)) {
			case "min":
				minimize = true
			case "max":
				minimize = false
			default:
				return nil, improperInput("first line must be %q or %q, got %q", "min", "max", line)
			}
			slog.Debug(prefix, "sense", line)
			section = sectionSense

		case sectionSense:
			coeffs, err := parseElements(f, line)
			if err != nil {
				return nil, wrapImproperInput(err, "objective line %q", line)
			}
			// The grammar has no slot for an objective constant, so the
			// row is padded with a zero to match the width of a
			// constraint row (coefficients plus RHS).
			objective = append(coeffs, f.Zero())
			section = sectionObjective

		case sectionObjective:
			if strings.ToLower(strings.TrimSpace(line)) != "subject to" {
				return nil, improperInput("expected %q, got %q", "subject to", line)
			}
			section = sectionSubjectTo

		default:
			row, err := parseConstraintLine(f, line)
			if err != nil {
				return nil, wrapImproperInput(err, "constraint line %q", line)
			}
			rows = append(rows, row...)
			section = sectionConstraints
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, wrapImproperInput(err, "reading LP file")
	}
	if section < sectionSubjectTo {
		return nil, improperInput("LP file ended before %q", "subject to")
	}
	if len(rows) == 0 {
		return nil, improperInput("LP file has no constraints")
	}

	if minimize {
		objective = negateExceptLast(f, objective)
	}

	n := len(objective)
	M := matrix.NewDense(1+len(rows), n, f)
	setRowElements(M, 1, objective)
	for i, row := range rows {
		if len(row) != n {
			return nil, improperInput("constraint row %d has %d coefficients, objective has %d", i+1, len(row), n)
		}
		setRowElements(M, i+2, row)
	}
	return M, nil
}

// parseConstraintLine applies spec.md §6's normalization rules: <= rows
// pass through unchanged, >= rows are fully negated, and = rows are
// emitted twice (once as-is, once fully negated).
func parseConstraintLine(f field.Field, line string) ([][]field.Element, error) {
	var relation string
	for _, candidate := range []string{"<=", ">=", "="} {
		if strings.Contains(line, candidate) {
			relation = candidate
			break
		}
	}
	if relation == "" {
		return nil, improperInput("no relation token (<=, >=, =) found")
	}

	parts := strings.SplitN(line, relation, 2)
	lhsTokens, err := splitTokens(parts[0])
	if err != nil {
		return nil, err
	}
	rhsTokens, err := splitTokens(parts[1])
	if err != nil {
		return nil, err
	}
	if len(rhsTokens) != 1 {
		return nil, improperInput("right-hand side must be a single value, got %q", parts[1])
	}

	coeffs := make([]field.Element, 0, len(lhsTokens)+1)
	for _, tok := range lhsTokens {
		v, err := f.FromString(tok)
		if err != nil {
			return nil, err
		}
		coeffs = append(coeffs, v)
	}
	rhs, err := f.FromString(rhsTokens[0])
	if err != nil {
		return nil, err
	}
	coeffs = append(coeffs, rhs)

	switch relation {
	case "<=":
		return [][]field.Element{coeffs}, nil
	case ">=":
		return [][]field.Element{negateAll(f, coeffs)}, nil
	default: // "="
		return [][]field.Element{coeffs, negateAll(f, coeffs)}, nil
	}
}

func parseElements(f field.Field, line string) ([]field.Element, error) {
	tokens, err := splitTokens(line)
	if err != nil {
		return nil, err
	}
	out := make([]field.Element, 0, len(tokens))
	for _, tok := range tokens {
		v, err := f.FromString(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func splitTokens(s string) ([]string, error) {
	fields := strings.Split(s, ",")
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty token list")
	}
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = strings.TrimSpace(f)
	}
	return out, nil
}

func negateAll(f field.Field, row []field.Element) []field.Element {
	out := make([]field.Element, len(row))
	for i, v := range row {
		out[i] = field.Neg(f, v)
	}
	return out
}

func negateExceptLast(f field.Field, row []field.Element) []field.Element {
	out := append([]field.Element(nil), row...)
	for i := 0; i < len(out)-1; i++ {
		out[i] = field.Neg(f, out[i])
	}
	return out
}

func setRowElements(M *matrix.Dense, r int, row []field.Element) {
	buf := make([]field.Element, len(row))
	copy(buf, row)
	M.SetRow(r, buf)
}
