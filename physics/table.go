package physics

import "errors"

// ErrMalformedTable reports a lookup table whose domains are empty or
// not strictly increasing. Compiled-in tables hitting this is a
// programming error.
var ErrMalformedTable = errors.New("physics: lookup table domains must be non-empty and strictly increasing")

// Mapping is one (domain, range) knot of a lookup table.
type Mapping struct {
	Domain float64
	Range  float64
}

// Table is an immutable, domain-ordered sequence of knots supporting
// piecewise-linear interpolation. Queries outside the domain clamp to
// the nearest endpoint; no extrapolation.
type Table struct {
	knots []Mapping
}

// NewTable validates and copies the knots into an immutable table.
func NewTable(knots []Mapping) (Table, error) {
	if len(knots) == 0 {
		return Table{}, ErrMalformedTable
	}
	for i := 1; i < len(knots); i++ {
		if knots[i].Domain <= knots[i-1].Domain {
			return Table{}, ErrMalformedTable
		}
	}
	owned := make([]Mapping, len(knots))
	copy(owned, knots)
	return Table{knots: owned}, nil
}

// mustTable builds the compiled-in tables; malformed constants are a
// bug, not a runtime condition.
func mustTable(knots []Mapping) Table {
	t, err := NewTable(knots)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of knots.
func (t Table) Len() int { return len(t.knots) }

// Lookup interpolates the range value for domain. Exact at knots,
// clamped at the endpoints, linear between the bracketing knots:
//
//	r = r0 + (r1-r0) * (d-d0) / (d1-d0)
func (t Table) Lookup(domain float64) float64 {
	n := len(t.knots)
	if domain <= t.knots[0].Domain {
		return t.knots[0].Range
	}
	if domain >= t.knots[n-1].Domain {
		return t.knots[n-1].Range
	}

	// Binary search for the bracketing interval
	left, right := 0, n-1
	for left < right-1 {
		mid := left + (right-left)/2
		if t.knots[mid].Domain <= domain {
			left = mid
		} else {
			right = mid
		}
	}

	d0, r0 := t.knots[left].Domain, t.knots[left].Range
	d1, r1 := t.knots[right].Domain, t.knots[right].Range
	return r0 + (r1-r0)*(domain-d0)/(d1-d0)
}
