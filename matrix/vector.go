// Package matrix provides the dense integer-matrix kernel the rest of the
// polyhedral core builds on: a row-major Dense owner plus strided Vector
// views for rows, columns, and sub-ranges, mirroring the owning/borrowed
// split of gonum.org/v1/gonum/mat's Dense/VecDense but over exact int64
// data instead of float64.
package matrix

// Vector is a one-dimensional view over int64 data with an arbitrary
// stride, so that both a contiguous row and a strided column of a Dense
// can be addressed uniformly. A Vector taken from a Dense is a view
// into that Dense's storage and is invalidated by any resize of it;
// Clone, Dense.Diagonal and MulVec instead return Vectors over freshly
// allocated storage.
type Vector struct {
	data   []int64
	stride int
	n      int
}

// NewVector returns a Vector of length n backed by data, read with the
// given stride (stride==1 for a packed, contiguous vector).
func NewVector(n, stride int, data []int64) Vector {
	if stride <= 0 {
		panic("matrix: non-positive vector stride")
	}
	need := (n-1)*stride + 1
	if n > 0 && len(data) < need {
		panic("matrix: vector data shorter than n*stride")
	}
	return Vector{data: data, stride: stride, n: n}
}

// Len returns the number of elements in v.
func (v Vector) Len() int { return v.n }

// At returns the i-th element of v.
func (v Vector) At(i int) int64 {
	if i < 0 || i >= v.n {
		panic("matrix: vector index out of range")
	}
	return v.data[i*v.stride]
}

// Set assigns the i-th element of v to x.
func (v Vector) Set(i int, x int64) {
	if i < 0 || i >= v.n {
		panic("matrix: vector index out of range")
	}
	v.data[i*v.stride] = x
}

// Slice returns the sub-vector v[lo:hi), sharing storage with v.
func (v Vector) Slice(lo, hi int) Vector {
	if lo < 0 || hi < lo || hi > v.n {
		panic("matrix: vector slice out of range")
	}
	if hi == lo {
		return Vector{stride: v.stride, n: 0}
	}
	return Vector{data: v.data[lo*v.stride:], stride: v.stride, n: hi - lo}
}

// Clone copies v into a freshly allocated, contiguous slice and returns
// it as an owning Vector (stride 1).
func (v Vector) Clone() Vector {
	out := make([]int64, v.n)
	for i := 0; i < v.n; i++ {
		out[i] = v.At(i)
	}
	return Vector{data: out, stride: 1, n: v.n}
}

// Slc returns v's elements as a plain, freshly allocated []int64.
func (v Vector) Slc() []int64 {
	out := make([]int64, v.n)
	for i := range out {
		out[i] = v.At(i)
	}
	return out
}

// VectorEqual reports whether v and w have the same length and elements.
func VectorEqual(v, w Vector) bool {
	if v.n != w.n {
		return false
	}
	for i := 0; i < v.n; i++ {
		if v.At(i) != w.At(i) {
			return false
		}
	}
	return true
}

// Dot returns the standard inner product of v and w.
func Dot(v, w Vector) int64 {
	if v.n != w.n {
		panic("matrix: vector length mismatch in Dot")
	}
	var s int64
	for i := 0; i < v.n; i++ {
		s += v.At(i) * w.At(i)
	}
	return s
}

// AddTo writes dst[i] = a[i] + b[i] for all i.
func AddTo(dst, a, b Vector) {
	n := dst.Len()
	if a.Len() != n || b.Len() != n {
		panic("matrix: vector length mismatch in AddTo")
	}
	for i := 0; i < n; i++ {
		dst.Set(i, a.At(i)+b.At(i))
	}
}

// SubTo writes dst[i] = a[i] - b[i] for all i.
func SubTo(dst, a, b Vector) {
	n := dst.Len()
	if a.Len() != n || b.Len() != n {
		panic("matrix: vector length mismatch in SubTo")
	}
	for i := 0; i < n; i++ {
		dst.Set(i, a.At(i)-b.At(i))
	}
}

// ScaleTo writes dst[i] = c*a[i] for all i.
func ScaleTo(dst Vector, c int64, a Vector) {
	n := dst.Len()
	if a.Len() != n {
		panic("matrix: vector length mismatch in ScaleTo")
	}
	for i := 0; i < n; i++ {
		dst.Set(i, c*a.At(i))
	}
}

// GCD returns the gcd of the absolute values of v's entries, or 0 if v
// is all zero.
func (v Vector) GCD() int64 {
	var g int64
	for i := 0; i < v.n; i++ {
		g = gcd64(g, v.At(i))
	}
	return g
}

// IsZero reports whether every entry of v is zero.
func (v Vector) IsZero() bool {
	for i := 0; i < v.n; i++ {
		if v.At(i) != 0 {
			return false
		}
	}
	return true
}

func gcd64(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
