/*package particle holds the primary particles that make up an aggregate.

A Set is the single source of truth for an analysis: every matrix,
classification, and chain is derived from it and it is never modified after
construction.
*/
package particle

import (
	"errors"
	"fmt"
	"math"

	"github.com/phil-mansfield/gofrac/geom"
)

// Columns is the number of columns in a point file row: x, y, z, r.
const Columns = 4

var (
	// ErrShapeMismatch is returned when particle data has the wrong number of
	// columns or when position and radius data disagree in length.
	ErrShapeMismatch = errors.New("particle: shape mismatch")
	// ErrEmptyParticleSet is returned when a set would contain no particles.
	ErrEmptyParticleSet = errors.New("particle: empty particle set")
	// ErrInvalidRadius is returned for negative, NaN, or infinite radii.
	ErrInvalidRadius = errors.New("particle: invalid radius")
)

// Set is an immutable, ordered collection of N primary particles.
type Set struct {
	xs []geom.Vec
	rs []float64
}

// New creates a Set from positions and radii. Both slices are copied.
func New(xs []geom.Vec, rs []float64) (*Set, error) {
	if len(xs) != len(rs) {
		return nil, fmt.Errorf(
			"%w: %d positions but %d radii", ErrShapeMismatch, len(xs), len(rs),
		)
	} else if len(xs) == 0 {
		return nil, ErrEmptyParticleSet
	}

	for i, r := range rs {
		if r < 0 || math.IsNaN(r) || math.IsInf(r, 0) {
			return nil, fmt.Errorf(
				"%w: particle %d has radius %g", ErrInvalidRadius, i, r,
			)
		}
	}

	s := &Set{ xs: make([]geom.Vec, len(xs)), rs: make([]float64, len(rs)) }
	copy(s.xs, xs)
	copy(s.rs, rs)
	return s, nil
}

// FromColumns creates a Set from the x, y, z, and r columns of a point table.
func FromColumns(cols [][]float64) (*Set, error) {
	if len(cols) != Columns {
		return nil, fmt.Errorf(
			"%w: %d columns given, but %d are required",
			ErrShapeMismatch, len(cols), Columns,
		)
	}

	n := len(cols[0])
	for c := range cols {
		if len(cols[c]) != n {
			return nil, fmt.Errorf(
				"%w: column %d has length %d, but column 0 has length %d",
				ErrShapeMismatch, c, len(cols[c]), n,
			)
		}
	}

	xs := make([]geom.Vec, n)
	for i := range xs { xs[i] = geom.Vec{cols[0][i], cols[1][i], cols[2][i]} }
	return New(xs, cols[3])
}

// FromRows creates a Set from rows of the form {x, y, z, r}.
func FromRows(rows [][]float64) (*Set, error) {
	xs := make([]geom.Vec, len(rows))
	rs := make([]float64, len(rows))
	for i, row := range rows {
		if len(row) != Columns {
			return nil, fmt.Errorf(
				"%w: row %d has %d columns, but %d are required",
				ErrShapeMismatch, i, len(row), Columns,
			)
		}
		xs[i] = geom.Vec{row[0], row[1], row[2]}
		rs[i] = row[3]
	}
	return New(xs, rs)
}

// Len returns N, the number of particles in the set.
func (s *Set) Len() int { return len(s.rs) }

// Position returns the center of particle i.
func (s *Set) Position(i int) geom.Vec { return s.xs[i] }

// Radius returns the radius of particle i.
func (s *Set) Radius(i int) float64 { return s.rs[i] }

// Positions returns a copy of every particle center.
func (s *Set) Positions() []geom.Vec {
	out := make([]geom.Vec, len(s.xs))
	copy(out, s.xs)
	return out
}

// Radii returns a copy of every particle radius.
func (s *Set) Radii() []float64 {
	out := make([]float64, len(s.rs))
	copy(out, s.rs)
	return out
}

// Dist returns the center-to-center distance between particles i and j.
func (s *Set) Dist(i, j int) float64 { return s.xs[i].Dist(&s.xs[j]) }
