package plot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phil-mansfield/gofrac/chain"
	"github.com/phil-mansfield/gofrac/geom"
)

func TestProject(t *testing.T) {
	xs := []geom.Vec{{1, 2, 3}, {4, 5, 6}}

	us, vs := Project(xs, Z)
	assert.Equal(t, []float64{1, 4}, us)
	assert.Equal(t, []float64{2, 5}, vs)

	us, vs = Project(xs, X)
	assert.Equal(t, []float64{2, 5}, us)
	assert.Equal(t, []float64{3, 6}, vs)

	us, vs = Project(xs, Y)
	assert.Equal(t, []float64{3, 6}, us)
	assert.Equal(t, []float64{1, 4}, vs)
}

func TestAxisFromString(t *testing.T) {
	axis, ok := AxisFromString(" y ")
	assert.True(t, ok)
	assert.Equal(t, Y, axis)

	_, ok = AxisFromString("W")
	assert.False(t, ok)
}

func TestLengthCounts(t *testing.T) {
	ls, ns := LengthCounts([]chain.Chain{{0, 1}, {0, 2}, {0, 3, 4, 5}, {6}})
	assert.Equal(t, []float64{1, 2, 4}, ls)
	assert.Equal(t, []float64{1, 2, 1}, ns)

	ls, ns = LengthCounts(nil)
	assert.Empty(t, ls)
	assert.Empty(t, ns)
}

func TestImageFiles(t *testing.T) {
	assert.Equal(t, "out/agg_projZ.png", AggregateFile(Z, "agg", "out"))
	assert.Equal(t, "out/agg_projX.png", AggregateFile(X, "agg", "out"))
	assert.Equal(t, "agg_chains.png", ChainLengthsFile("agg", "."))
	assert.Equal(t, "/tmp/plots/a_chains.png", ChainLengthsFile("a", "/tmp/plots"))
}
