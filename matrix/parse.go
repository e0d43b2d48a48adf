package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse parses the human-readable literal "[1 2; 3 4]" into a Dense:
// tokens separated by spaces are row entries, ';' separates rows, and
// the first row determines the column count. Grounded on spec §6 and
// the original LoopModels MatrixStringParse grammar.
func Parse(s string) (*Dense, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	rowStrs := strings.Split(s, ";")
	rows := make([][]int64, 0, len(rowStrs))
	cols := -1
	for _, rs := range rowStrs {
		fields := strings.Fields(rs)
		if len(fields) == 0 {
			continue
		}
		row := make([]int64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("matrix: parse %q: %w", f, err)
			}
			row[i] = v
		}
		if cols == -1 {
			cols = len(row)
		} else if len(row) != cols {
			return nil, fmt.Errorf("matrix: ragged row, first row has %d columns, got %d", cols, len(row))
		}
		rows = append(rows, row)
	}
	if cols == -1 {
		cols = 0
	}
	m := NewDense(len(rows), cols, nil)
	for i, row := range rows {
		for j, v := range row {
			m.Set(i, j, v)
		}
	}
	return m, nil
}

// MustParse is like Parse but panics on error; intended for tests and
// benchmarks constructing literal matrices.
func MustParse(s string) *Dense {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}
