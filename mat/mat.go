// Package mat contains the dense row-major matrix used to store pairwise
// particle quantities.
package mat

type Matrix struct {
	Vals []float64
	Width, Height int
}

// NewMatrix wraps vals as a width x height matrix. vals is not copied.
func NewMatrix(vals []float64, width, height int) *Matrix {
	if width <= 0 {
		panic("width must be positive.")
	} else if height <= 0 {
		panic("height must be positive.")
	} else if width * height != len(vals) {
		panic("height * width must equal len(vals).")
	}

	return &Matrix{Vals: vals, Width: width, Height: height}
}

// NewSquare allocates a zeroed n x n matrix.
func NewSquare(n int) *Matrix {
	return NewMatrix(make([]float64, n*n), n, n)
}

func (m *Matrix) IsSquare() bool { return m.Width == m.Height }

func (m *Matrix) At(i, j int) float64 { return m.Vals[i*m.Width + j] }

func (m *Matrix) Set(i, j int, x float64) { m.Vals[i*m.Width + j] = x }

// Row returns row i of m. The returned slice aliases m.Vals.
func (m *Matrix) Row(i int) []float64 {
	return m.Vals[i*m.Width: (i+1)*m.Width]
}

// RowSum returns the sum of the elements in row i.
func (m *Matrix) RowSum(i int) float64 {
	sum := 0.0
	for _, x := range m.Row(i) { sum += x }
	return sum
}

// FirstAsymmetry returns the first upper-triangle index pair (i, j) for which
// m[i, j] != m[j, i]. ok is false if m is symmetric. m must be square.
func (m *Matrix) FirstAsymmetry() (i, j int, ok bool) {
	if !m.IsSquare() { panic("m is non-square.") }

	n := m.Width
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if m.Vals[i*n + j] != m.Vals[j*n + i] { return i, j, true }
		}
	}
	return 0, 0, false
}

// FirstNonZeroDiagonal returns the first index i for which m[i, i] != 0. ok is
// false if the entire diagonal is zero. m must be square.
func (m *Matrix) FirstNonZeroDiagonal() (i int, ok bool) {
	if !m.IsSquare() { panic("m is non-square.") }

	for i = 0; i < m.Width; i++ {
		if m.Vals[i*m.Width + i] != 0 { return i, true }
	}
	return 0, false
}

// Copy returns a deep copy of m.
func (m *Matrix) Copy() *Matrix {
	vals := make([]float64, len(m.Vals))
	copy(vals, m.Vals)
	return &Matrix{Vals: vals, Width: m.Width, Height: m.Height}
}
