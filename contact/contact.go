/*package contact builds the contact graph of an aggregate: the pairwise
distances between primary particles and the symmetric relation between
particles whose surfaces touch or overlap.

Both matrices are O(N^2) in time and space. There is no spatial index, so this
is only appropriate for aggregates of up to a few thousand particles.
*/
package contact

import (
	"errors"
	"fmt"
	"math"

	"github.com/phil-mansfield/gofrac/mat"
	"github.com/phil-mansfield/gofrac/particle"
)

var (
	// ErrAsymmetricContactData is returned when contact(i, j) != contact(j, i)
	// or when an entry is something other than 0 or 1.
	ErrAsymmetricContactData = errors.New("contact: asymmetric contact data")
	// ErrSelfContact is returned when a particle is in contact with itself.
	ErrSelfContact = errors.New("contact: self contact")
	// ErrInvalidTolerance is returned when the contact tolerance is negative
	// or not a number.
	ErrInvalidTolerance = errors.New("contact: invalid tolerance")
)

// DistanceMatrix stores the distance between every pair of particles. Only
// the upper triangle (i < j) is populated. The diagonal and lower triangle are
// zero and must not be read as distances.
type DistanceMatrix struct {
	m *mat.Matrix
}

// Len returns the number of particles the matrix describes.
func (d *DistanceMatrix) Len() int { return d.m.Width }

// At returns the raw matrix entry at (i, j). It is only a distance if i < j.
func (d *DistanceMatrix) At(i, j int) float64 { return d.m.At(i, j) }

// Distance returns the distance between particles i and j in either order.
func (d *DistanceMatrix) Distance(i, j int) float64 {
	if i > j { i, j = j, i }
	return d.m.At(i, j)
}

// Matrix returns a copy of the underlying matrix.
func (d *DistanceMatrix) Matrix() *mat.Matrix { return d.m.Copy() }

// ContactMatrix is the N x N symmetric 0/1 contact relation.
type ContactMatrix struct {
	m *mat.Matrix
}

// NewContactMatrix wraps contact data produced somewhere other than Build so
// that it can be validated and traced. vals is row-major and is copied. The
// data is not validated here: call Validate.
func NewContactMatrix(n int, vals []float64) (*ContactMatrix, error) {
	if n == 0 {
		return nil, particle.ErrEmptyParticleSet
	} else if n < 0 || len(vals) != n*n {
		return nil, fmt.Errorf(
			"%w: %d contact values given for %d particles",
			particle.ErrShapeMismatch, len(vals), n,
		)
	}

	m := mat.NewSquare(n)
	copy(m.Vals, vals)
	return &ContactMatrix{ m }, nil
}

// Len returns the number of particles the matrix describes.
func (c *ContactMatrix) Len() int { return c.m.Width }

// InContact returns true if particles i and j touch.
func (c *ContactMatrix) InContact(i, j int) bool { return c.m.At(i, j) == 1 }

// Degree returns the number of contacts of particle i, i.e. the sum of row i.
func (c *ContactMatrix) Degree(i int) int { return int(c.m.RowSum(i)) }

// Degrees returns the degree of every particle.
func (c *ContactMatrix) Degrees() []int {
	out := make([]int, c.Len())
	for i := range out { out[i] = c.Degree(i) }
	return out
}

// Neighbors returns the particles in contact with i in ascending order.
func (c *ContactMatrix) Neighbors(i int) []int {
	out := []int{}
	for j, x := range c.m.Row(i) {
		if x == 1 { out = append(out, j) }
	}
	return out
}

// Matrix returns a copy of the underlying matrix.
func (c *ContactMatrix) Matrix() *mat.Matrix { return c.m.Copy() }

// Graph is the output of Build.
type Graph struct {
	Distances *DistanceMatrix
	Contacts  *ContactMatrix
}

// Build computes the distance and contact matrices for s. Particles i and j
// are in contact if
//
//     |x_i - x_j| <= r_i + r_j + tolerance.
//
// tolerance is usually zero. It exists to absorb the round-off in files where
// touching particles are written with a handful of digits.
func Build(s *particle.Set, tolerance float64) (*Graph, error) {
	if s == nil || s.Len() == 0 { return nil, particle.ErrEmptyParticleSet }
	if tolerance < 0 || math.IsNaN(tolerance) {
		return nil, fmt.Errorf(
			"%w: contact tolerance must be non-negative, not %g",
			ErrInvalidTolerance, tolerance,
		)
	}

	n := s.Len()
	dist, con := mat.NewSquare(n), mat.NewSquare(n)

	for i := 0; i < n; i++ {
		xi, ri := s.Position(i), s.Radius(i)
		for j := i + 1; j < n; j++ {
			xj := s.Position(j)
			d := xi.Dist(&xj)
			dist.Set(i, j, d)

			if d <= ri + s.Radius(j) + tolerance {
				con.Set(i, j, 1)
				con.Set(j, i, 1)
			}
		}
	}

	return &Graph{ &DistanceMatrix{ dist }, &ContactMatrix{ con } }, nil
}

// Validate checks that c is a well-formed contact relation: square, 0/1
// valued, with an empty diagonal, and symmetric.
func Validate(c *ContactMatrix) error {
	if c == nil || c.m == nil || c.m.Width == 0 {
		return particle.ErrEmptyParticleSet
	}
	if !c.m.IsSquare() {
		return fmt.Errorf(
			"%w: contact matrix is %d x %d",
			particle.ErrShapeMismatch, c.m.Height, c.m.Width,
		)
	}

	n := c.m.Width
	for idx, x := range c.m.Vals {
		if x != 0 && x != 1 {
			return fmt.Errorf(
				"%w: contact(%d, %d) = %g is not 0 or 1",
				ErrAsymmetricContactData, idx / n, idx % n, x,
			)
		}
	}

	if i, ok := c.m.FirstNonZeroDiagonal(); ok {
		return fmt.Errorf("%w: particle %d", ErrSelfContact, i)
	}

	if i, j, ok := c.m.FirstAsymmetry(); ok {
		return fmt.Errorf(
			"%w: contact(%d, %d) = %g but contact(%d, %d) = %g",
			ErrAsymmetricContactData, i, j, c.m.At(i, j), j, i, c.m.At(j, i),
		)
	}

	return nil
}
