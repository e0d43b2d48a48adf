package normalform

import "github.com/loopmodels/polyhedral/matrix"

// Bareiss performs fraction-free Gaussian elimination on a in place,
// producing a row echelon form in which every off-pivot entry has been
// divided exactly by the previous pivot (Bareiss' divisibility
// theorem guarantees the division is always exact). Returns the row
// index of the pivot used for each eliminated column, in order.
func Bareiss(a *matrix.Dense) []int {
	rows, cols := a.Dims()
	var pivots []int
	prevPivot := int64(1)
	pivotRow := 0
	for col := 0; col < cols && pivotRow < rows; col++ {
		sel := -1
		for r := pivotRow; r < rows; r++ {
			if a.At(r, col) != 0 {
				sel = r
				break
			}
		}
		if sel == -1 {
			continue
		}
		a.SwapRows(pivotRow, sel)
		pivots = append(pivots, pivotRow)
		pivot := a.At(pivotRow, col)
		for r := pivotRow + 1; r < rows; r++ {
			arc := a.At(r, col)
			if arc == 0 {
				continue
			}
			for c := col; c < cols; c++ {
				num := pivot*a.At(r, c) - arc*a.At(pivotRow, c)
				a.Set(r, c, num/prevPivot)
			}
		}
		prevPivot = pivot
		pivotRow++
	}
	return pivots
}
