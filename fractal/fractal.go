/*package fractal measures the bulk properties of a fractal aggregate and
compares them against the parameters it was generated with.

Aggregates are assumed to follow the fractal scaling law

    N = k_f (R_g / r_pp)^D_f

where N is the number of primary particles, k_f is the fractal prefactor, R_g
is the radius of gyration, r_pp is the primary particle radius, and D_f is the
fractal dimension.
*/
package fractal

import (
	"fmt"
	"math"

	"github.com/phil-mansfield/gofrac/geom"
	"github.com/phil-mansfield/gofrac/particle"
)

// Params are the generation parameters of an aggregate, e.g. the inputs given
// to FracVAL. Zero values mean "unknown" and are not checked.
type Params struct {
	Dimension      float64 // D_f
	Prefactor      float64 // k_f
	GyrationRadius float64 // R_g
	Particles      int     // N
	PrimaryRadius  float64 // r_pp
	Monodisperse   bool
}

// Measurement holds the properties measured from a particle.Set.
type Measurement struct {
	Particles      int
	GyrationRadius float64
	MeanRadius     float64
	Monodisperse   bool
	// Prefactor is the k_f implied by the measured R_g, the configured D_f,
	// and the primary radius. It is zero if D_f is unknown.
	Prefactor float64

	// MonodisperseMismatch is set if the aggregate was configured as
	// monodisperse but its radii vary.
	MonodisperseMismatch bool
	// GyrationRadiusMismatch is set if the measured R_g differs from the
	// configured R_g by more than ParamTolerance.
	GyrationRadiusMismatch bool
	// PrefactorMismatch is set if the implied k_f differs from the configured
	// k_f by more than ParamTolerance. It needs a configured D_f.
	PrefactorMismatch bool

	// Configured is the Params the measurement was checked against.
	Configured Params
}

// Mismatched returns true if any configured parameter disagrees with the
// measurement.
func (m *Measurement) Mismatched() bool {
	return m.MonodisperseMismatch || m.GyrationRadiusMismatch ||
		m.PrefactorMismatch
}

// Warnings describes every mismatch between the measurement and its
// configured parameters, one sentence per mismatch.
func (m *Measurement) Warnings() []string {
	warns := []string{}
	if m.MonodisperseMismatch {
		warns = append(warns, "configured as monodisperse, but radii vary.")
	}
	if m.GyrationRadiusMismatch {
		warns = append(warns, fmt.Sprintf(
			"measured R_g = %.6g, but configured R_g = %.6g.",
			m.GyrationRadius, m.Configured.GyrationRadius,
		))
	}
	if m.PrefactorMismatch {
		warns = append(warns, fmt.Sprintf(
			"implied k_f = %.6g, but configured k_f = %.6g.",
			m.Prefactor, m.Configured.Prefactor,
		))
	}
	return warns
}

// MonodisperseTolerance is the relative spread in radii below which an
// aggregate counts as monodisperse.
const MonodisperseTolerance = 1e-6

// ParamTolerance is the relative difference allowed between a measured value
// and the configured generation parameter it's checked against.
const ParamTolerance = 0.05

// relDiffers returns true if got is further than relTol from want, relative
// to want. want must be positive.
func relDiffers(got, want, relTol float64) bool {
	return math.Abs(got - want) > relTol * want
}

// CenterOfMass returns the mass-weighted center of s. Particle masses are
// taken to be proportional to r^3.
func CenterOfMass(s *particle.Set) geom.Vec {
	var (
		com geom.Vec
		mTot float64
	)
	for i := 0; i < s.Len(); i++ {
		r := s.Radius(i)
		m := r*r*r
		x := s.Position(i)
		x.ScaleSelf(m)
		com.AddSelf(&x)
		mTot += m
	}

	if mTot == 0 {
		// Every radius is zero, so fall back to the geometric center.
		for i := 0; i < s.Len(); i++ {
			x := s.Position(i)
			com.AddSelf(&x)
		}
		mTot = float64(s.Len())
	}

	com.ScaleSelf(1 / mTot)
	return com
}

// GyrationRadius returns the mass-weighted radius of gyration of s about its
// center of mass.
func GyrationRadius(s *particle.Set) float64 {
	com := CenterOfMass(s)

	var sum, mTot float64
	for i := 0; i < s.Len(); i++ {
		r := s.Radius(i)
		m := r*r*r
		x := s.Position(i)
		sum += m * x.Dist2(&com)
		mTot += m
	}
	if mTot == 0 { return 0 }
	return math.Sqrt(sum / mTot)
}

// MeanRadius returns the mean primary particle radius of s.
func MeanRadius(s *particle.Set) float64 {
	sum := 0.0
	for i := 0; i < s.Len(); i++ { sum += s.Radius(i) }
	return sum / float64(s.Len())
}

// IsMonodisperse returns true if every radius in s is within relTol of the
// mean radius.
func IsMonodisperse(s *particle.Set, relTol float64) bool {
	mean := MeanRadius(s)
	for i := 0; i < s.Len(); i++ {
		if math.Abs(s.Radius(i) - mean) > relTol * mean { return false }
	}
	return true
}

// ImpliedPrefactor solves the fractal scaling law for k_f.
func ImpliedPrefactor(n int, rg, rpp, df float64) float64 {
	if rg <= 0 || rpp <= 0 { return 0 }
	return float64(n) / math.Pow(rg / rpp, df)
}

// Measure measures s and checks the result against p. It fails with
// particle.ErrShapeMismatch if p specifies a particle count which doesn't
// match s. Disagreements with the other parameters are flagged on the
// Measurement rather than returned as errors.
func Measure(s *particle.Set, p *Params) (*Measurement, error) {
	if s == nil || s.Len() == 0 { return nil, particle.ErrEmptyParticleSet }
	if p == nil { p = &Params{} }

	if p.Particles > 0 && p.Particles != s.Len() {
		return nil, fmt.Errorf(
			"%w: configured for %d particles, but %d were loaded",
			particle.ErrShapeMismatch, p.Particles, s.Len(),
		)
	}

	m := &Measurement{
		Particles: s.Len(),
		GyrationRadius: GyrationRadius(s),
		MeanRadius: MeanRadius(s),
		Monodisperse: IsMonodisperse(s, MonodisperseTolerance),
		Configured: *p,
	}

	rpp := p.PrimaryRadius
	if rpp <= 0 { rpp = m.MeanRadius }
	if p.Dimension > 0 {
		m.Prefactor = ImpliedPrefactor(s.Len(), m.GyrationRadius, rpp, p.Dimension)
	}

	m.MonodisperseMismatch = p.Monodisperse && !m.Monodisperse
	if p.GyrationRadius > 0 {
		m.GyrationRadiusMismatch = relDiffers(
			m.GyrationRadius, p.GyrationRadius, ParamTolerance,
		)
	}
	if p.Prefactor > 0 && p.Dimension > 0 {
		m.PrefactorMismatch = relDiffers(
			m.Prefactor, p.Prefactor, ParamTolerance,
		)
	}
	return m, nil
}
