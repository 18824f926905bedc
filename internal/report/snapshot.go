package report

import "github.com/thoreinstein/formcheck/pkg/validation"

// FieldStatus is the state of one field at snapshot time. Value is already
// masked for secret fields.
type FieldStatus struct {
	Name   string           `json:"name"`
	Label  string           `json:"label,omitempty"`
	Kind   string           `json:"kind"`
	Value  string           `json:"value"`
	State  validation.State `json:"state"`
	Secret bool             `json:"secret,omitempty"`
}

// Snapshot is the state of a form at one point in time.
type Snapshot struct {
	Form   string        `json:"form"`
	Valid  bool          `json:"valid"`
	Fields []FieldStatus `json:"fields"`
}

// Count returns how many fields are in state s.
func (s Snapshot) Count(state validation.State) int {
	n := 0
	for _, f := range s.Fields {
		if f.State == state {
			n++
		}
	}
	return n
}
