package validation

import "github.com/thoreinstein/formcheck/internal/errors"

// State is the validation state of a field.
type State int

const (
	// StateUnknown means validity has not been determined. It is the result
	// of validating a field that has no validator.
	StateUnknown State = iota
	// StateDefault means the field is empty or untouched.
	StateDefault
	// StateInvalid means the validator rejected the content.
	StateInvalid
	// StateValid means the validator accepted the content. It is the only
	// passing state.
	StateValid
)

var stateNames = [...]string{
	StateUnknown: "unknown",
	StateDefault: "default",
	StateInvalid: "invalid",
	StateValid:   "valid",
}

// ErrUnknownStateName is returned by ParseState for an unrecognized name.
var ErrUnknownStateName = errors.New("unknown validation state")

func (s State) String() string {
	if !s.known() {
		return "unknown"
	}
	return stateNames[s]
}

func (s State) known() bool {
	return s >= StateUnknown && s <= StateValid
}

// ParseState parses the name produced by String.
func ParseState(name string) (State, error) {
	for s, n := range stateNames {
		if n == name {
			return State(s), nil
		}
	}
	return StateUnknown, errors.Wrapf(ErrUnknownStateName, "%q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *State) UnmarshalText(text []byte) error {
	parsed, err := ParseState(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func stateNameList() []string {
	return stateNames[:]
}
