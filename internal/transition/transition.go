// Package transition tracks a single current state and reports whether a
// requested state is an actual change. It backs the change detection of
// validation fields and forms.
//
// Every state is reachable from every other state; moving to the current
// state is a no-op. The machine never invokes user callbacks, so callers are
// free to notify observers (and re-enter the machine) after MoveTo returns.
package transition

import (
	"context"

	"github.com/looplab/fsm"

	"github.com/thoreinstein/formcheck/internal/errors"
)

// ErrUnknownState is returned by MoveTo for a state the machine was not
// built with.
var ErrUnknownState = errors.New("unknown state")

const eventPrefix = "to_"

// Machine is a fully connected state machine over a fixed set of states.
// It is not safe for concurrent use by multiple goroutines.
type Machine struct {
	fsm    *fsm.FSM
	states map[string]struct{}
}

// New builds a Machine starting in initial. The initial state is always a
// valid source; it is only a valid target if it also appears in targets.
func New(initial string, targets ...string) *Machine {
	sources := make([]string, 0, len(targets)+1)
	sources = append(sources, initial)
	states := make(map[string]struct{}, len(targets))
	for _, s := range targets {
		if s != initial {
			sources = append(sources, s)
		}
		states[s] = struct{}{}
	}

	events := make(fsm.Events, 0, len(targets))
	for _, s := range targets {
		events = append(events, fsm.EventDesc{
			Name: eventPrefix + s,
			Src:  sources,
			Dst:  s,
		})
	}

	return &Machine{
		fsm:    fsm.NewFSM(initial, events, fsm.Callbacks{}),
		states: states,
	}
}

// Current returns the current state.
func (m *Machine) Current() string {
	return m.fsm.Current()
}

// MoveTo transitions to state and reports whether the state changed.
func (m *Machine) MoveTo(state string) (bool, error) {
	if _, ok := m.states[state]; !ok {
		return false, errors.Wrapf(ErrUnknownState, "%q", state)
	}

	err := m.fsm.Event(context.Background(), eventPrefix+state)
	if err == nil {
		return true, nil
	}

	var noTransition fsm.NoTransitionError
	if errors.As(err, &noTransition) {
		return false, nil
	}
	return false, errors.Wrapf(err, "moving to %q", state)
}
