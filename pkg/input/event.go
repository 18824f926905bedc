// Package input adapts interactive input sources to validation fields.
//
// A control owns a field and decides, per event, whether a content change
// should revalidate it. Text controls additionally run a formatter so the
// field always holds display text.
package input

import (
	"strings"

	"github.com/thoreinstein/formcheck/internal/errors"
)

// Event is a set of input events.
type Event uint8

const (
	// EditingChanged fires on every keystroke.
	EditingChanged Event = 1 << iota
	// EditingDidEnd fires when focus leaves a text input.
	EditingDidEnd
	// ValueChanged fires when a toggle, number or date value changes.
	ValueChanged
	// TouchUpInside fires when a button is activated.
	TouchUpInside
)

// AllEditingEvents is the default trigger set for text input.
const AllEditingEvents = EditingChanged | EditingDidEnd

var eventNames = []struct {
	ev   Event
	name string
}{
	{EditingChanged, "editing_changed"},
	{EditingDidEnd, "editing_did_end"},
	{ValueChanged, "value_changed"},
	{TouchUpInside, "touch_up_inside"},
}

// Has reports whether every event in other is in e.
func (e Event) Has(other Event) bool {
	return other != 0 && e&other == other
}

// Overlaps reports whether e and other share an event.
func (e Event) Overlaps(other Event) bool {
	return e&other != 0
}

func (e Event) String() string {
	if e == 0 {
		return "none"
	}
	var names []string
	for _, n := range eventNames {
		if e&n.ev != 0 {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "|")
}

// ParseEvent parses a single event name as produced by String.
func ParseEvent(name string) (Event, error) {
	for _, n := range eventNames {
		if n.name == name {
			return n.ev, nil
		}
	}
	return 0, errors.Newf("unknown input event %q", name)
}
