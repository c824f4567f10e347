/*package plot renders aggregates and their chains through pyplot. Nothing is
drawn until Execute is called, which hands the accumulated script to Python.
*/
package plot

import (
	"fmt"
	"math"
	"path"
	"strings"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/gofrac/analyze"
	"github.com/phil-mansfield/gofrac/chain"
	"github.com/phil-mansfield/gofrac/classify"
	"github.com/phil-mansfield/gofrac/fractal"
	"github.com/phil-mansfield/gofrac/geom"
	"github.com/phil-mansfield/gofrac/particle"
)

// Axis is the axis which a projection is taken along.
type Axis int

const (
	X Axis = iota
	Y
	Z
)

var (
	roleColors = [classify.EndRole]string{
		"DimGray", "DeepPink", "DarkSlateBlue", "DarkTurquoise",
	}
	axisNames = [3]string{ "X", "Y", "Z" }
)

// AxisFromString converts "X", "Y", or "Z" (in either case) to an Axis.
func AxisFromString(str string) (Axis, bool) {
	str = strings.ToUpper(strings.TrimSpace(str))
	for i, name := range axisNames {
		if name == str { return Axis(i), true }
	}
	return 0, false
}

// Project returns the two coordinates of every position which remain after
// projecting along axis. The remaining axes keep their cyclic order, so
// projecting along Y gives (Z, X).
func Project(xs []geom.Vec, axis Axis) (us, vs []float64) {
	i, j := (int(axis) + 1) % 3, (int(axis) + 2) % 3
	us, vs = make([]float64, len(xs)), make([]float64, len(xs))
	for k := range xs { us[k], vs[k] = xs[k][i], xs[k][j] }
	return us, vs
}

// LengthCounts returns ls and ns such that ns[k] chains have length ls[k].
// ls is sorted.
func LengthCounts(chains []chain.Chain) (ls, ns []float64) {
	lengths := chain.Lengths(chains)
	max := 0
	for _, l := range lengths {
		if l > max { max = l }
	}

	counts := make([]int, max + 1)
	for _, l := range lengths { counts[l]++ }

	for l := range counts {
		if counts[l] == 0 { continue }
		ls = append(ls, float64(l))
		ns = append(ns, float64(counts[l]))
	}
	return ls, ns
}

// AggregateFile is the image that Aggregate writes.
func AggregateFile(axis Axis, name, dir string) string {
	return path.Join(dir, fmt.Sprintf("%s_proj%s.png", name, axisNames[axis]))
}

// ChainLengthsFile is the image that ChainLengths writes.
func ChainLengthsFile(name, dir string) string {
	return path.Join(dir, fmt.Sprintf("%s_chains.png", name))
}

// Aggregate plots the projection of s along axis with particles coloured by
// role and every chain drawn as a line through its members. The figure is
// saved in dir, named after name, and its path is returned. It isn't written
// until Execute is called.
func Aggregate(
	s *particle.Set, res *analyze.Result, axis Axis, name, dir string,
) string {
	fname := AggregateFile(axis, name, dir)
	// Center on the aggregate so that the axis limits can be symmetric.
	xs := s.Positions()
	com := fractal.CenterOfMass(s)
	for k := range xs { xs[k].SubAt(&com, &xs[k]) }

	plt.Figure(plt.FigSize(8, 8))

	for _, ch := range res.Chains {
		if len(ch) < 2 { continue }
		pts := make([]geom.Vec, len(ch))
		for k, i := range ch { pts[k] = xs[i] }
		us, vs := Project(pts, axis)
		plt.Plot(us, vs, "k", plt.LW(1))
	}

	cls := res.Classification
	sets := [classify.EndRole][]int{
		cls.Isolated, cls.Tips, cls.Links, cls.Junctions,
	}
	for role, idxs := range sets {
		if len(idxs) == 0 { continue }
		pts := make([]geom.Vec, len(idxs))
		for k, i := range idxs { pts[k] = xs[i] }
		us, vs := Project(pts, axis)
		plt.Plot(us, vs, "o", plt.C(roleColors[role]))
	}

	us, vs := Project(xs, axis)
	lim := 0.0
	for k := range us {
		lim = math.Max(lim, math.Max(math.Abs(us[k]), math.Abs(vs[k])))
	}
	lim += res.Measurement.MeanRadius * 2

	plt.Title(fmt.Sprintf(
		`%s: $N$ = %d, $R_g$ = %.3g`,
		name, res.Measurement.Particles, res.Measurement.GyrationRadius,
	))
	plt.XLabel(fmt.Sprintf(`$%s$`, axisNames[(int(axis) + 1) % 3]), plt.FontSize(16))
	plt.YLabel(fmt.Sprintf(`$%s$`, axisNames[(int(axis) + 2) % 3]), plt.FontSize(16))
	plt.XLim(-lim, +lim)
	plt.YLim(-lim, +lim)
	plt.SaveFig(fname)

	return fname
}

// ChainLengths plots the distribution of chain lengths and returns the path
// of the image.
func ChainLengths(chains []chain.Chain, name, dir string) string {
	fname := ChainLengthsFile(name, dir)
	ls, ns := LengthCounts(chains)

	plt.Figure()
	nMax := 0.0
	for k := range ls {
		plt.Plot([]float64{ls[k], ls[k]}, []float64{0, ns[k]}, "k", plt.LW(6))
		nMax = math.Max(nMax, ns[k])
	}

	plt.Title(fmt.Sprintf(`%s: %d chains`, name, len(chains)))
	plt.XLabel(`Chain length`, plt.FontSize(16))
	plt.YLabel(`Count`, plt.FontSize(16))
	if len(ls) > 0 {
		plt.XLim(0, ls[len(ls) - 1] + 1)
	}
	plt.YLim(0, nMax + 1)
	plt.Grid(plt.Axis("y"))
	plt.SaveFig(fname)

	return fname
}

// Execute runs every queued plot.
func Execute() { plt.Execute() }
