/*package analyze runs the full measurement pipeline over an aggregate:

    particle.Set -> contact.Build -> classify.Classify -> chain.Trace

Every stage is a pure function of its inputs, so Run may be called any number
of times on the same Set and will return identical results.
*/
package analyze

import (
	"fmt"

	"github.com/phil-mansfield/gofrac/chain"
	"github.com/phil-mansfield/gofrac/classify"
	"github.com/phil-mansfield/gofrac/contact"
	"github.com/phil-mansfield/gofrac/fractal"
	"github.com/phil-mansfield/gofrac/particle"
)

// Options controls a single run of the pipeline. The zero value is usable:
// exact contacts, isolated particles reported as their own chains, and no
// fractal parameters to check against.
type Options struct {
	Tolerance float64
	Isolated  chain.IsolatedPolicy
	Params    *fractal.Params
}

// Result is everything measured from one aggregate.
type Result struct {
	Distances      *contact.DistanceMatrix
	Contacts       *contact.ContactMatrix
	Classification *classify.Classification
	Chains         []chain.Chain
	Measurement    *fractal.Measurement
}

// Run measures s. The first stage to fail stops the pipeline and its error is
// returned with the stage name attached.
func Run(s *particle.Set, opt Options) (*Result, error) {
	g, err := contact.Build(s, opt.Tolerance)
	if err != nil { return nil, fmt.Errorf("building contacts: %w", err) }

	cls, err := classify.Classify(g.Contacts)
	if err != nil { return nil, fmt.Errorf("classifying particles: %w", err) }

	chains, err := chain.Trace(g.Contacts, cls, opt.Isolated)
	if err != nil { return nil, fmt.Errorf("tracing chains: %w", err) }

	m, err := fractal.Measure(s, opt.Params)
	if err != nil { return nil, fmt.Errorf("measuring aggregate: %w", err) }

	return &Result{
		Distances: g.Distances,
		Contacts: g.Contacts,
		Classification: cls,
		Chains: chains,
		Measurement: m,
	}, nil
}
