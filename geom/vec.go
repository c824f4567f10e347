/*package geom contains the geometric primitives used when measuring
aggregates of primary particles.
*/
package geom

import (
	"math"
)

// Vec is a three dimensional vector. (Duh!)
type Vec [3]float64

// SubAt computes v1 - v2 and stores the result in out.
func (v1 *Vec) SubAt(v2, out *Vec) {
	for i := 0; i < 3; i++ { out[i] = v1[i] - v2[i] }
}

// AddSelf adds v2 to v1 in place.
func (v1 *Vec) AddSelf(v2 *Vec) {
	for i := 0; i < 3; i++ { v1[i] += v2[i] }
}

// ScaleSelf multiplies every component of v by k.
func (v *Vec) ScaleSelf(k float64) {
	for i := 0; i < 3; i++ { v[i] *= k }
}

// Dot computes the inner product of v1 and v2.
func (v1 *Vec) Dot(v2 *Vec) float64 {
	return v1[0]*v2[0] + v1[1]*v2[1] + v1[2]*v2[2]
}

// Norm returns the Euclidean length of v.
func (v *Vec) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Dist returns the Euclidean distance between v1 and v2.
func (v1 *Vec) Dist(v2 *Vec) float64 {
	return math.Sqrt(v1.Dist2(v2))
}

// Dist2 returns the squared distance between v1 and v2. It avoids the square
// root when only comparisons are needed.
func (v1 *Vec) Dist2(v2 *Vec) float64 {
	var sum float64
	for i := 0; i < 3; i++ {
		d := v1[i] - v2[i]
		sum += d * d
	}
	return sum
}

// AlmostEq returns true if every component of v1 and v2 differs by less
// than eps.
func (v1 *Vec) AlmostEq(v2 *Vec, eps float64) bool {
	for i := 0; i < 3; i++ {
		if math.Abs(v1[i]-v2[i]) > eps { return false }
	}
	return true
}
