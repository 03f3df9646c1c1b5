// Package proof declares the Status, Obligation, and Data types. See
// doc.go for the package overview.
package proof

import (
	"fmt"
	"slices"
	"sort"
)

// Status is the verification state of one obligation. The numeric order
// is the strength order: smaller is weaker.
type Status int

const (
	// Failed marks an obligation disproved.
	Failed Status = iota

	// Pending marks an obligation awaiting verification.
	Pending

	// Assumed marks an obligation taken on faith, e.g. after a lossy
	// push-forward.
	Assumed

	// Proven marks an obligation formally verified.
	Proven
)

// String returns the lowercase status name.
func (s Status) String() string {
	switch s {
	case Failed:
		return "failed"
	case Pending:
		return "pending"
	case Assumed:
		return "assumed"
	case Proven:
		return "proven"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// MarshalJSON renders the status as its name, keeping registry exports
// readable.
func (s Status) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// weaker returns the weaker of two statuses.
func weaker(a, b Status) Status {
	if a < b {
		return a
	}

	return b
}

// Obligation is one named proof obligation.
type Obligation struct {
	// Property names the property to verify.
	Property string `json:"property"`

	// Status is the current verification state.
	Status Status `json:"status"`

	// Evidence is a free-form note on how the status was reached.
	Evidence string `json:"evidence,omitempty"`

	// Dependencies lists obligations or morphisms this one depends on.
	Dependencies []string `json:"dependencies,omitempty"`
}

// Data is the proof-fibre payload: obligations keyed by name plus a set
// of tree-wide invariants.
type Data struct {
	Obligations map[string]Obligation `json:"obligations"`
	Invariants  map[string]struct{}   `json:"invariants"`
}

// NewData returns empty proof data with initialized maps.
func NewData() Data {
	return Data{
		Obligations: make(map[string]Obligation),
		Invariants:  make(map[string]struct{}),
	}
}

// AddInvariant records an invariant that holds for the whole tree.
func (d Data) AddInvariant(name string) {
	d.Invariants[name] = struct{}{}
}

// HasInvariant reports whether the invariant is recorded.
func (d Data) HasInvariant(name string) bool {
	_, ok := d.Invariants[name]

	return ok
}

// FullyVerified reports whether every obligation is Proven.
func (d Data) FullyVerified() bool {
	for _, ob := range d.Obligations {
		if ob.Status != Proven {
			return false
		}
	}

	return true
}

// PendingObligations returns the names of Pending obligations in sorted
// order.
func (d Data) PendingObligations() []string {
	var names []string
	for name, ob := range d.Obligations {
		if ob.Status == Pending {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	return names
}

// Clone returns a deep copy of the data.
func (d Data) Clone() Data {
	out := NewData()
	for name, ob := range d.Obligations {
		ob.Dependencies = slices.Clone(ob.Dependencies)
		out.Obligations[name] = ob
	}
	for inv := range d.Invariants {
		out.Invariants[inv] = struct{}{}
	}

	return out
}
