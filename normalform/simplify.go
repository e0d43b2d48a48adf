package normalform

import (
	"github.com/loopmodels/polyhedral/matrix"
	"github.com/loopmodels/polyhedral/scalar"
)

// SimplifySystem reduces b to row echelon form with reduced
// off-diagonal entries, applying every row operation it performs to u
// as well (u and b must have the same number of rows), and then drops
// every row that becomes identically zero in b from both matrices.
// This is the post-elimination compaction step run after each
// Fourier-Motzkin elimination and when solving for a unimodular
// completion of a matrix.
func SimplifySystem(b, u *matrix.Dense) (*matrix.Dense, *matrix.Dense) {
	bRows, bCols := b.Dims()

	pivotRow := 0
	var pivotCols []int
	for col := 0; col < bCols && pivotRow < bRows; col++ {
		pivot := -1
		for r := pivotRow; r < bRows; r++ {
			if b.At(r, col) != 0 {
				pivot = r
				break
			}
		}
		if pivot == -1 {
			continue
		}
		b.SwapRows(pivotRow, pivot)
		u.SwapRows(pivotRow, pivot)

		for r := pivotRow + 1; r < bRows; r++ {
			arc := b.At(r, col)
			if arc == 0 {
				continue
			}
			prc := b.At(pivotRow, col)
			g, p, q := scalar.ExtGCD(prc, arc)
			prcr := prc / g
			arcr := arc / g
			combineRows(b, pivotRow, r, p, q, prcr, arcr)
			combineRows(u, pivotRow, r, p, q, prcr, arcr)
		}
		if b.At(pivotRow, col) < 0 {
			negateRow(b, pivotRow)
			negateRow(u, pivotRow)
		}
		reduceSubDiagonal(b, u, pivotRow, col, pivotCols)
		pivotCols = append(pivotCols, col)
		pivotRow++
	}

	return dropZeroRows(b, u)
}

// dropZeroRows removes every row that is identically zero in b from
// both b and u, keeping the two matrices in row correspondence.
func dropZeroRows(b, u *matrix.Dense) (*matrix.Dense, *matrix.Dense) {
	bRows, bCols := b.Dims()
	_, uCols := u.Dims()

	var keep []int
	for i := 0; i < bRows; i++ {
		if !isZeroRow(b, i) {
			keep = append(keep, i)
		}
	}
	newB := matrix.NewDense(len(keep), bCols, nil)
	newU := matrix.NewDense(len(keep), uCols, nil)
	for dst, src := range keep {
		for j := 0; j < bCols; j++ {
			newB.Set(dst, j, b.At(src, j))
		}
		for j := 0; j < uCols; j++ {
			newU.Set(dst, j, u.At(src, j))
		}
	}
	return newB, newU
}
