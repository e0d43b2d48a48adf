package matrix

// ReduceRowGCD divides row i of m by the gcd of its entries, so the row
// has no common factor greater than one. A row of all zeros is left
// unchanged. Grounded on the original LoopModels
// VectorGreatestCommonDivisor reduction used to keep Polyhedron rows in
// lowest terms (spec §3 Polyhedron invariant).
func ReduceRowGCD(m *Dense, i int) {
	row := m.Row(i)
	g := row.GCD()
	if g <= 1 {
		return
	}
	for j := 0; j < row.Len(); j++ {
		row.Set(j, row.At(j)/g)
	}
}

// ReduceGCD applies ReduceRowGCD to every row of m.
func ReduceGCD(m *Dense) {
	r, _ := m.Dims()
	for i := 0; i < r; i++ {
		ReduceRowGCD(m, i)
	}
}

// RowsEqual reports whether rows i and j of m are identical.
func RowsEqual(m *Dense, i, j int) bool {
	return VectorEqual(m.Row(i), m.Row(j))
}
