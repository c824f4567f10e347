/*package chain traces chains of contact-connected particles through an
aggregate.

A chain starts at a junction and follows consecutive link particles until it
reaches the first particle which is not a link: a tip or another junction. A
junction with k contacts starts up to k chains. A particle other than a
junction belongs to at most one chain.
*/
package chain

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/phil-mansfield/gofrac/classify"
	"github.com/phil-mansfield/gofrac/contact"
)

var (
	// ErrIsolatedParticle is returned by Trace under IsolatedError when a
	// particle has no contacts.
	ErrIsolatedParticle = errors.New("chain: isolated particle")
	// ErrClassificationMismatch is returned when a Classification was not
	// computed from the ContactMatrix it's traced with.
	ErrClassificationMismatch = errors.New("chain: classification mismatch")
)

// IsolatedPolicy decides what happens to particles with no contacts.
type IsolatedPolicy int

const (
	// IsolatedChain reports each isolated particle as its own chain of length
	// one.
	IsolatedChain IsolatedPolicy = iota
	// IsolatedExclude leaves isolated particles out of every chain.
	IsolatedExclude
	// IsolatedError makes Trace fail if there are any isolated particles.
	IsolatedError
	EndIsolatedPolicy
)

var policyNames = [EndIsolatedPolicy]string{ "Chain", "Exclude", "Error" }

func (p IsolatedPolicy) String() string {
	if p < 0 || p >= EndIsolatedPolicy {
		return fmt.Sprintf("IsolatedPolicy(%d)", int(p))
	}
	return policyNames[p]
}

// PolicyFromString converts a case-insensitive policy name to an
// IsolatedPolicy.
func PolicyFromString(str string) (IsolatedPolicy, bool) {
	str = strings.TrimSpace(str)
	for p := IsolatedChain; p < EndIsolatedPolicy; p++ {
		if strings.EqualFold(p.String(), str) { return p, true }
	}
	return 0, false
}

// Chain is an ordered path of particle indices.
type Chain []int

func (ch Chain) Len() int   { return len(ch) }
func (ch Chain) Start() int { return ch[0] }
func (ch Chain) End() int   { return ch[len(ch)-1] }

func (ch Chain) min() int {
	m := ch[0]
	for _, i := range ch { if i < m { m = i } }
	return m
}

// Lengths returns the length of every chain.
func Lengths(chains []Chain) []int {
	out := make([]int, len(chains))
	for i := range chains { out[i] = len(chains[i]) }
	return out
}

type edge struct{ lo, hi int }

func newEdge(i, j int) edge {
	if i > j { i, j = j, i }
	return edge{ i, j }
}

// tracer holds the state shared by every walk of a single Trace call.
type tracer struct {
	roles     []classify.Role
	neighbors [][]int
	// consumed marks non-junction particles which already belong to a chain.
	consumed []bool
	edges    map[edge]bool
}

// Trace finds the chains of the aggregate described by c and cls.
//
// One walk is made along every unused contact of every junction, in ascending
// index order. Walks through components which contain no junction (rings and
// free-floating segments) are made afterwards, starting from the lowest-index
// tip, or the lowest index if there are no tips. If the aggregate has no
// junctions at all, these walks are joined into a single chain. Isolated
// particles are handled according to policy.
func Trace(
	c *contact.ContactMatrix, cls *classify.Classification,
	policy IsolatedPolicy,
) ([]Chain, error) {
	if err := contact.Validate(c); err != nil { return nil, err }
	if cls == nil {
		return nil, fmt.Errorf("%w: no classification", ErrClassificationMismatch)
	}
	if err := cls.Matches(c); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrClassificationMismatch, err.Error())
	}
	if policy < 0 || policy >= EndIsolatedPolicy {
		return nil, fmt.Errorf("chain: unknown isolated policy %d", int(policy))
	}
	if policy == IsolatedError && len(cls.Isolated) > 0 {
		return nil, fmt.Errorf(
			"%w: %d particles have no contacts, starting with particle %d",
			ErrIsolatedParticle, len(cls.Isolated), cls.Isolated[0],
		)
	}

	n := c.Len()
	t := &tracer{
		roles: cls.Roles,
		neighbors: make([][]int, n),
		consumed: make([]bool, n),
		edges: map[edge]bool{},
	}
	for i := range t.neighbors { t.neighbors[i] = c.Neighbors(i) }

	chains := []Chain{}
	for _, j := range cls.Junctions {
		for _, nb := range t.neighbors[j] {
			if t.edges[newEdge(j, nb)] || t.isConsumed(nb) { continue }
			if ch := t.walk(j, nb); len(ch) > 1 {
				chains = append(chains, ch)
			}
		}
	}

	free := t.freeComponents()
	if len(cls.Junctions) == 0 && len(free) > 0 {
		trivial := Chain{}
		for _, ch := range free { trivial = append(trivial, ch...) }
		free = []Chain{ trivial }
	}

	tail := free
	if policy == IsolatedChain {
		for _, i := range cls.Isolated { tail = append(tail, Chain{ i }) }
	}
	sort.SliceStable(tail, func(a, b int) bool {
		return tail[a].min() < tail[b].min()
	})

	return append(chains, tail...), nil
}

func (t *tracer) isConsumed(i int) bool {
	return t.roles[i] != classify.Junction && t.consumed[i]
}

// walk follows links outward from start through next and stops at the first
// particle which isn't a link.
func (t *tracer) walk(start, next int) Chain {
	ch := Chain{ start }
	inChain := map[int]bool{ start: true }

	prev, curr := start, next
	for {
		if inChain[curr] || t.isConsumed(curr) {
			// Closed a loop back onto this walk or ran into another chain.
			t.edges[newEdge(prev, curr)] = true
			break
		}

		t.edges[newEdge(prev, curr)] = true
		ch = append(ch, curr)
		inChain[curr] = true

		role := t.roles[curr]
		if role != classify.Junction { t.consumed[curr] = true }
		if role != classify.Link { break }

		// A link has exactly two neighbors, and one of them is prev.
		nbs := t.neighbors[curr]
		if nbs[0] == prev {
			prev, curr = curr, nbs[1]
		} else {
			prev, curr = curr, nbs[0]
		}
	}

	return ch
}

// freeComponents traces every tip and link which no junction walk reached.
// Such particles live in components without any junctions, so each of them
// is either a simple path or a ring.
func (t *tracer) freeComponents() []Chain {
	chains := []Chain{}
	for _, role := range []classify.Role{ classify.Tip, classify.Link } {
		for i := range t.roles {
			if t.roles[i] != role || t.consumed[i] { continue }
			chains = append(chains, t.walkFree(i))
		}
	}

	sort.SliceStable(chains, func(a, b int) bool {
		return chains[a].min() < chains[b].min()
	})
	return chains
}

func (t *tracer) walkFree(start int) Chain {
	ch := Chain{ start }
	t.consumed[start] = true

	for curr := start; ; {
		next := -1
		for _, nb := range t.neighbors[curr] {
			if !t.consumed[nb] && t.roles[nb] != classify.Junction {
				next = nb
				break
			}
		}
		if next == -1 { break }

		t.edges[newEdge(curr, next)] = true
		t.consumed[next] = true
		ch = append(ch, next)
		curr = next
	}

	return ch
}
