// Package scrollspy maps a document scroll position to the navigation
// section currently in view.
package scrollspy

// SectionID identifies a navigable region of the page.
type SectionID string

// None is reported when no section contains the scroll position.
const None SectionID = ""

// DefaultOffset matches the height of the fixed site header.
const DefaultOffset = 100

// Region is the live geometry of a section in document coordinates.
type Region struct {
	Top    float64
	Height float64
}

// Contains reports whether pos falls in [Top, Top+Height).
func (r Region) Contains(pos float64) bool {
	return pos >= r.Top && pos < r.Top+r.Height
}

// Resolver looks up the current region of a section. ok is false when the
// section is not mounted.
type Resolver interface {
	Resolve(id SectionID) (r Region, ok bool)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(id SectionID) (Region, bool)

func (f ResolverFunc) Resolve(id SectionID) (Region, bool) { return f(id) }

// Detect returns the first section, in the given order, whose region
// contains pos. Unresolved sections are skipped.
func Detect(sections []SectionID, res Resolver, pos float64) SectionID {
	if res == nil {
		return None
	}
	for _, id := range sections {
		r, ok := res.Resolve(id)
		if !ok {
			continue
		}
		if r.Contains(pos) {
			return id
		}
	}
	return None
}
