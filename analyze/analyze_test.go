package analyze

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/gofrac/chain"
	"github.com/phil-mansfield/gofrac/classify"
	"github.com/phil-mansfield/gofrac/contact"
	"github.com/phil-mansfield/gofrac/fractal"
	"github.com/phil-mansfield/gofrac/geom"
	"github.com/phil-mansfield/gofrac/particle"
)

func newSet(t *testing.T, xs []geom.Vec, rs []float64) *particle.Set {
	t.Helper()
	s, err := particle.New(xs, rs)
	require.NoError(t, err)
	return s
}

func TestRunLine(t *testing.T) {
	s := newSet(t,
		[]geom.Vec{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}}, []float64{0.6, 0.6, 0.6},
	)
	res, err := Run(s, Options{})
	require.NoError(t, err)

	cls := res.Classification
	assert.Equal(t, []int{0, 2}, cls.Tips)
	assert.Equal(t, []int{1}, cls.Links)
	assert.Empty(t, cls.Intersections())
	assert.Equal(t, []chain.Chain{{0, 1, 2}}, res.Chains)
	assert.Equal(t, 2.0, res.Distances.Distance(0, 2))
	assert.Equal(t, 3, res.Measurement.Particles)
}

func TestRunIsolated(t *testing.T) {
	s := newSet(t, []geom.Vec{{0, 0, 0}}, []float64{1})

	res, err := Run(s, Options{})
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Classification.Isolated)
	assert.Equal(t, []chain.Chain{{0}}, res.Chains)

	_, err = Run(s, Options{ Isolated: chain.IsolatedError })
	assert.ErrorIs(t, err, chain.ErrIsolatedParticle)
}

func TestRunErrors(t *testing.T) {
	_, err := Run(nil, Options{})
	assert.ErrorIs(t, err, particle.ErrEmptyParticleSet)

	s := newSet(t, []geom.Vec{{0, 0, 0}, {1, 0, 0}}, []float64{1, 1})
	_, err = Run(s, Options{ Params: &fractal.Params{ Particles: 3 } })
	assert.ErrorIs(t, err, particle.ErrShapeMismatch)

	_, err = Run(s, Options{ Tolerance: -0.5 })
	assert.ErrorIs(t, err, contact.ErrInvalidTolerance)
}

// randomWalkAggregate builds a branching, chain-like aggregate by attaching
// each new particle to the surface of a random earlier one.
func randomWalkAggregate(t *testing.T, n int, seed int64) *particle.Set {
	gen := rand.New(rand.NewSource(seed))
	xs, rs := make([]geom.Vec, n), make([]float64, n)
	for i := range rs { rs[i] = 0.5 }

	for i := 1; i < n; i++ {
		parent := gen.Intn(i)
		dir := geom.Vec{gen.NormFloat64(), gen.NormFloat64(), gen.NormFloat64()}
		dir.ScaleSelf(1 / dir.Norm())
		xs[i] = xs[parent]
		dir.ScaleSelf(rs[i] + rs[parent])
		xs[i].AddSelf(&dir)
	}
	return newSet(t, xs, rs)
}

func TestRunIdempotent(t *testing.T) {
	s := randomWalkAggregate(t, 150, 42)
	opt := Options{ Tolerance: 1e-9, Params: &fractal.Params{ Dimension: 1.8 } }

	r1, err := Run(s, opt)
	require.NoError(t, err)
	r2, err := Run(s, opt)
	require.NoError(t, err)

	assert.Equal(t, r1.Distances.Matrix(), r2.Distances.Matrix())
	assert.Equal(t, r1.Contacts.Matrix(), r2.Contacts.Matrix())
	if diff := cmp.Diff(r1.Classification, r2.Classification); diff != "" {
		t.Errorf("classification changed between runs:\n%s", diff)
	}
	if diff := cmp.Diff(r1.Chains, r2.Chains); diff != "" {
		t.Errorf("chains changed between runs:\n%s", diff)
	}
	assert.Equal(t, r1.Measurement, r2.Measurement)
}

func TestRunNoOverlap(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		s := randomWalkAggregate(t, 120, seed)
		res, err := Run(s, Options{ Tolerance: 1e-9 })
		require.NoError(t, err)

		// Every attached particle touches its parent.
		assert.Empty(t, res.Classification.Isolated, "seed %d", seed)

		total, extra := 0, 0
		seen := make([]int, s.Len())
		for _, ch := range res.Chains {
			total += ch.Len()
			for _, i := range ch { seen[i]++ }
		}
		for i, count := range seen {
			if res.Classification.Roles[i] == classify.Junction && count > 1 {
				extra += count - 1
			}
		}
		assert.LessOrEqual(t, total, s.Len() + extra, "seed %d", seed)
	}
}
