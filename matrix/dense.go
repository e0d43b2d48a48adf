package matrix

import "fmt"

// ErrShape is raised (via panic) when an operation is given operands of
// incompatible dimension. Mirrors gonum.org/v1/gonum/mat.ErrShape: a
// programming error that release builds are allowed to leave unchecked,
// per spec §7 "invalid shape / out-of-range index".
var ErrShape = fmt.Errorf("matrix: dimension mismatch")

// ErrIndexOutOfRange mirrors gonum.org/v1/gonum/mat.ErrIndexOutOfRange.
var ErrIndexOutOfRange = fmt.Errorf("matrix: index out of range")

// Dense is a dense, row-major int64 matrix: R rows, C columns, and a row
// stride S >= C so that element (i,j) lives at buf[i*S+j]. A Dense
// returned by NewDense or Identity owns its backing slice; a Dense
// returned by the slicing operation Sub borrows the
// backing slice of another Dense and must not outlive a resize of it —
// this is a caller discipline, not one this package enforces at runtime.
type Dense struct {
	data   []int64
	rows   int
	cols   int
	stride int
}

// NewDense returns an r-by-c Dense. If data is nil, a zeroed backing
// slice is allocated; otherwise data is used directly (len(data) must
// equal r*c) and is addressed with stride c.
func NewDense(r, c int, data []int64) *Dense {
	if r < 0 || c < 0 {
		panic(ErrShape)
	}
	if data == nil {
		data = make([]int64, r*c)
	} else if len(data) != r*c {
		panic(ErrShape)
	}
	return &Dense{data: data, rows: r, cols: c, stride: c}
}

// Identity returns the n-by-n identity matrix.
func Identity(n int) *Dense {
	m := NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// Dims returns the number of rows and columns of m.
func (m *Dense) Dims() (r, c int) { return m.rows, m.cols }

func (m *Dense) index(i, j int) int {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(ErrIndexOutOfRange)
	}
	return i*m.stride + j
}

// At returns element (i,j).
func (m *Dense) At(i, j int) int64 { return m.data[m.index(i, j)] }

// Set assigns element (i,j) to x.
func (m *Dense) Set(i, j int, x int64) { m.data[m.index(i, j)] = x }

// Row returns the i-th row as a contiguous Vector view sharing m's
// storage.
func (m *Dense) Row(i int) Vector {
	if i < 0 || i >= m.rows {
		panic(ErrIndexOutOfRange)
	}
	return Vector{data: m.data[i*m.stride:], stride: 1, n: m.cols}
}

// Col returns the j-th column as a strided Vector view sharing m's
// storage.
func (m *Dense) Col(j int) Vector {
	if j < 0 || j >= m.cols {
		panic(ErrIndexOutOfRange)
	}
	return Vector{data: m.data[j:], stride: m.stride, n: m.rows}
}

// Sub returns the half-open sub-view m[r0:r1, c0:c1), sharing m's
// backing storage. The result is a borrowed view: it must not be used
// after m is resized.
func (m *Dense) Sub(r0, r1, c0, c1 int) *Dense {
	if r0 < 0 || c0 < 0 || r1 > m.rows || c1 > m.cols || r1 < r0 || c1 < c0 {
		panic(ErrIndexOutOfRange)
	}
	return &Dense{
		data:   m.data[r0*m.stride+c0:],
		rows:   r1 - r0,
		cols:   c1 - c0,
		stride: m.stride,
	}
}

// Clone returns a deep, densely packed copy of m.
func (m *Dense) Clone() *Dense {
	out := NewDense(m.rows, m.cols, nil)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.Set(i, j, m.At(i, j))
		}
	}
	return out
}

// Equal reports whether a and b have the same shape and entries.
func Equal(a, b *Dense) bool {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return false
	}
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			if a.At(i, j) != b.At(i, j) {
				return false
			}
		}
	}
	return true
}

// SwapRows exchanges rows i and j in place.
func (m *Dense) SwapRows(i, j int) {
	if i == j {
		return
	}
	for k := 0; k < m.cols; k++ {
		m.data[m.index(i, k)], m.data[m.index(j, k)] = m.data[m.index(j, k)], m.data[m.index(i, k)]
	}
}

// SwapCols exchanges columns i and j in place.
func (m *Dense) SwapCols(i, j int) {
	if i == j {
		return
	}
	for k := 0; k < m.rows; k++ {
		m.data[m.index(k, i)], m.data[m.index(k, j)] = m.data[m.index(k, j)], m.data[m.index(k, i)]
	}
}

// DeleteRow removes row i, shifting subsequent rows up and shrinking m
// by one row. It reallocates the backing slice, so any existing borrowed
// view of m becomes invalid.
func (m *Dense) DeleteRow(i int) {
	if i < 0 || i >= m.rows {
		panic(ErrIndexOutOfRange)
	}
	out := NewDense(m.rows-1, m.cols, nil)
	dst := 0
	for src := 0; src < m.rows; src++ {
		if src == i {
			continue
		}
		copy(out.data[dst*out.stride:dst*out.stride+m.cols], m.data[src*m.stride:src*m.stride+m.cols])
		dst++
	}
	*m = *out
}

// Resize grows or shrinks m to r rows and c columns, preserving the
// overlapping region of existing content and zero-filling any newly
// exposed entries. Any view obtained before Resize is invalidated.
func (m *Dense) Resize(r, c int) {
	out := NewDense(r, c, nil)
	minR, minC := min(r, m.rows), min(c, m.cols)
	for i := 0; i < minR; i++ {
		for j := 0; j < minC; j++ {
			out.Set(i, j, m.At(i, j))
		}
	}
	*m = *out
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Diagonal returns the leading min(r,c) diagonal entries of m as a
// freshly allocated Vector.
func (m *Dense) Diagonal() Vector {
	n := min(m.rows, m.cols)
	out := make([]int64, n)
	for i := 0; i < n; i++ {
		out[i] = m.At(i, i)
	}
	return Vector{data: out, stride: 1, n: n}
}

// Mul computes C = A*B into a freshly allocated Dense.
func Mul(a, b *Dense) *Dense {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ac != br {
		panic(ErrShape)
	}
	c := NewDense(ar, bc, nil)
	for i := 0; i < ar; i++ {
		for k := 0; k < ac; k++ {
			aik := a.At(i, k)
			if aik == 0 {
				continue
			}
			for j := 0; j < bc; j++ {
				c.Set(i, j, c.At(i, j)+aik*b.At(k, j))
			}
		}
	}
	return c
}

// MulTA computes C = Aᵀ*B.
func MulTA(a, b *Dense) *Dense { return Mul(Transpose(a), b) }

// MulTB computes C = A*Bᵀ.
func MulTB(a, b *Dense) *Dense { return Mul(a, Transpose(b)) }

// MulTT computes C = Aᵀ*Bᵀ.
func MulTT(a, b *Dense) *Dense { return Mul(Transpose(a), Transpose(b)) }

// MulVec computes y = A*x into a freshly allocated Vector.
func MulVec(a *Dense, x Vector) Vector {
	r, c := a.Dims()
	if x.Len() != c {
		panic(ErrShape)
	}
	out := make([]int64, r)
	for i := 0; i < r; i++ {
		var s int64
		for j := 0; j < c; j++ {
			s += a.At(i, j) * x.At(j)
		}
		out[i] = s
	}
	return Vector{data: out, stride: 1, n: r}
}

// Transpose returns a freshly allocated transpose of a.
func Transpose(a *Dense) *Dense {
	r, c := a.Dims()
	out := NewDense(c, r, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(j, i, a.At(i, j))
		}
	}
	return out
}

// AddDenseTo writes dst = a+b elementwise; dst may alias a or b.
func AddDenseTo(dst, a, b *Dense) {
	r, c := a.Dims()
	br, bc := b.Dims()
	if r != br || c != bc {
		panic(ErrShape)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			dst.Set(i, j, a.At(i, j)+b.At(i, j))
		}
	}
}

// SubDenseTo writes dst = a-b elementwise; dst may alias a or b.
func SubDenseTo(dst, a, b *Dense) {
	r, c := a.Dims()
	br, bc := b.Dims()
	if r != br || c != bc {
		panic(ErrShape)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			dst.Set(i, j, a.At(i, j)-b.At(i, j))
		}
	}
}

// ScaleDenseTo writes dst = k*a elementwise; dst may alias a.
func ScaleDenseTo(dst *Dense, k int64, a *Dense) {
	r, c := a.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			dst.Set(i, j, k*a.At(i, j))
		}
	}
}
