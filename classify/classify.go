/*package classify labels each particle of an aggregate by its structural
role, which is determined entirely by how many other particles it touches.
*/
package classify

import (
	"fmt"

	"github.com/phil-mansfield/gofrac/contact"
)

// Role is the structural role of a particle.
type Role int

const (
	// Isolated particles have no contacts. This usually points to a bad
	// contact tolerance or a corrupted input file rather than real structure.
	Isolated Role = iota
	// Tip particles have exactly one contact and end a chain.
	Tip
	// Link particles have exactly two contacts and sit inside a chain.
	Link
	// Junction particles have three or more contacts and are branch points.
	Junction
	EndRole
)

var roleNames = [EndRole]string{ "Isolated", "Tip", "Link", "Junction" }

func (r Role) String() string {
	if r < 0 || r >= EndRole { return fmt.Sprintf("Role(%d)", int(r)) }
	return roleNames[r]
}

// RoleFromDegree returns the role of a particle with the given number of
// contacts.
func RoleFromDegree(degree int) Role {
	switch {
	case degree <= 0: return Isolated
	case degree == 1: return Tip
	case degree == 2: return Link
	default: return Junction
	}
}

// Classification partitions particle indices by role. Each index set is
// sorted and the sets are disjoint.
type Classification struct {
	Roles   []Role
	Degrees []int

	Tips, Links, Junctions, Isolated []int
}

// Classify validates c and labels every particle by its contact degree.
func Classify(c *contact.ContactMatrix) (*Classification, error) {
	if err := contact.Validate(c); err != nil { return nil, err }

	n := c.Len()
	cls := &Classification{
		Roles: make([]Role, n), Degrees: c.Degrees(),
		Tips: []int{}, Links: []int{}, Junctions: []int{}, Isolated: []int{},
	}

	for i, deg := range cls.Degrees {
		role := RoleFromDegree(deg)
		cls.Roles[i] = role
		switch role {
		case Isolated: cls.Isolated = append(cls.Isolated, i)
		case Tip: cls.Tips = append(cls.Tips, i)
		case Link: cls.Links = append(cls.Links, i)
		case Junction: cls.Junctions = append(cls.Junctions, i)
		}
	}

	return cls, nil
}

// Len returns the number of classified particles.
func (cls *Classification) Len() int { return len(cls.Roles) }

// Intersections returns the sorted union of Junctions and Isolated. This is
// the older "intersection" bucket, which conflates branch points with
// particles that have no contacts at all. Prefer the separate sets.
func (cls *Classification) Intersections() []int {
	out := make([]int, 0, len(cls.Junctions) + len(cls.Isolated))
	i, j := 0, 0
	for i < len(cls.Junctions) || j < len(cls.Isolated) {
		if j == len(cls.Isolated) ||
			(i < len(cls.Junctions) && cls.Junctions[i] < cls.Isolated[j]) {
			out = append(out, cls.Junctions[i])
			i++
		} else {
			out = append(out, cls.Isolated[j])
			j++
		}
	}
	return out
}

// Count returns the number of particles with the given role.
func (cls *Classification) Count(r Role) int {
	switch r {
	case Isolated: return len(cls.Isolated)
	case Tip: return len(cls.Tips)
	case Link: return len(cls.Links)
	case Junction: return len(cls.Junctions)
	}
	return 0
}

// Matches returns an error if cls does not describe c.
func (cls *Classification) Matches(c *contact.ContactMatrix) error {
	if cls.Len() != c.Len() {
		return fmt.Errorf(
			"classification covers %d particles, contact matrix has %d",
			cls.Len(), c.Len(),
		)
	}
	for i := range cls.Roles {
		deg := c.Degree(i)
		if cls.Degrees[i] != deg || cls.Roles[i] != RoleFromDegree(deg) {
			return fmt.Errorf(
				"particle %d is classified as %s with degree %d, but has " +
					"degree %d", i, cls.Roles[i], cls.Degrees[i], deg,
			)
		}
	}
	return nil
}
