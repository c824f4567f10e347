package fractal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/gofrac/geom"
	"github.com/phil-mansfield/gofrac/particle"
)

const eps = 1e-10

func newSet(t *testing.T, xs []geom.Vec, rs []float64) *particle.Set {
	t.Helper()
	s, err := particle.New(xs, rs)
	require.NoError(t, err)
	return s
}

func TestCenterOfMass(t *testing.T) {
	s := newSet(t, []geom.Vec{{0, 0, 0}, {2, 0, 0}}, []float64{1, 1})
	com := CenterOfMass(s)
	assert.True(t, com.AlmostEq(&geom.Vec{1, 0, 0}, eps), "%v", com)

	// A particle twice as large carries eight times the mass.
	s = newSet(t, []geom.Vec{{0, 0, 0}, {9, 0, 0}}, []float64{2, 1})
	com = CenterOfMass(s)
	assert.True(t, com.AlmostEq(&geom.Vec{1, 0, 0}, eps), "%v", com)

	s = newSet(t, []geom.Vec{{0, 0, 0}, {4, 0, 0}}, []float64{0, 0})
	com = CenterOfMass(s)
	assert.True(t, com.AlmostEq(&geom.Vec{2, 0, 0}, eps), "%v", com)
}

func TestGyrationRadius(t *testing.T) {
	s := newSet(t,
		[]geom.Vec{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}}, []float64{0.6, 0.6, 0.6},
	)
	assert.InDelta(t, math.Sqrt(2.0/3.0), GyrationRadius(s), eps)

	single := newSet(t, []geom.Vec{{5, 5, 5}}, []float64{1})
	assert.Equal(t, 0.0, GyrationRadius(single))
}

func TestMonodisperse(t *testing.T) {
	mono := newSet(t, []geom.Vec{{0, 0, 0}, {1, 0, 0}}, []float64{0.5, 0.5})
	poly := newSet(t, []geom.Vec{{0, 0, 0}, {1, 0, 0}}, []float64{0.5, 0.6})

	assert.True(t, IsMonodisperse(mono, MonodisperseTolerance))
	assert.False(t, IsMonodisperse(poly, MonodisperseTolerance))
	assert.True(t, IsMonodisperse(poly, 0.2))
	assert.InDelta(t, 0.55, MeanRadius(poly), eps)
}

func TestImpliedPrefactor(t *testing.T) {
	// N = k_f (R_g / r_pp)^D_f, so 32 = 2 * (8 / 2)^2.
	assert.InDelta(t, 2.0, ImpliedPrefactor(32, 8, 2, 2), eps)
	assert.InDelta(t, 2.0, ImpliedPrefactor(2, 1, 1, 1.8), eps)
	assert.Equal(t, 0.0, ImpliedPrefactor(10, 0, 1, 1.8))
}

func TestMeasure(t *testing.T) {
	s := newSet(t,
		[]geom.Vec{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}}, []float64{0.5, 0.5, 0.5},
	)

	m, err := Measure(s, &Params{ Dimension: 1, PrimaryRadius: 0.5 })
	require.NoError(t, err)
	assert.Equal(t, 3, m.Particles)
	assert.True(t, m.Monodisperse)
	assert.False(t, m.MonodisperseMismatch)
	rg := math.Sqrt(2.0 / 3.0)
	assert.InDelta(t, rg, m.GyrationRadius, eps)
	assert.InDelta(t, 3/(rg/0.5), m.Prefactor, eps)

	m, err = Measure(s, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, m.Prefactor)

	_, err = Measure(s, &Params{ Particles: 4 })
	assert.ErrorIs(t, err, particle.ErrShapeMismatch)

	_, err = Measure(nil, nil)
	assert.ErrorIs(t, err, particle.ErrEmptyParticleSet)

	poly := newSet(t, []geom.Vec{{0, 0, 0}, {1, 0, 0}}, []float64{0.5, 0.6})
	m, err = Measure(poly, &Params{ Monodisperse: true, Particles: 2 })
	require.NoError(t, err)
	assert.True(t, m.MonodisperseMismatch)
}

func TestMeasureGenerationParams(t *testing.T) {
	s := newSet(t,
		[]geom.Vec{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}}, []float64{0.5, 0.5, 0.5},
	)
	rg := math.Sqrt(2.0 / 3.0)
	kf := 3 / (rg / 0.5)

	tests := []struct {
		name string
		p Params
		rgMismatch, kfMismatch bool
	}{
		{"unset", Params{}, false, false},
		{"match", Params{
			Dimension: 1, PrimaryRadius: 0.5,
			GyrationRadius: rg * 1.01, Prefactor: kf * 0.99,
		}, false, false},
		{"rg off", Params{ GyrationRadius: 1e9 }, true, false},
		{"kf off", Params{
			Dimension: 1, PrimaryRadius: 0.5, Prefactor: 2 * kf,
		}, false, true},
		{"kf without dimension", Params{ Prefactor: 100 }, false, false},
		{"both off", Params{
			Dimension: 1, PrimaryRadius: 0.5,
			GyrationRadius: 2 * rg, Prefactor: kf / 2,
		}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Measure(s, &tt.p)
			require.NoError(t, err)
			assert.Equal(t, tt.rgMismatch, m.GyrationRadiusMismatch)
			assert.Equal(t, tt.kfMismatch, m.PrefactorMismatch)
			assert.Equal(t, tt.rgMismatch || tt.kfMismatch, m.Mismatched())
			n := 0
			if tt.rgMismatch { n++ }
			if tt.kfMismatch { n++ }
			assert.Len(t, m.Warnings(), n)
		})
	}
}
