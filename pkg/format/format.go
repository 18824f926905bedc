package format

import (
	"strings"
	"unicode/utf8"
)

// Selection is a half-open rune range [Start, End). A collapsed selection
// (Start == End) is a cursor.
type Selection struct {
	Start int
	End   int
}

// Cursor returns a collapsed selection at pos.
func Cursor(pos int) Selection {
	return Selection{Start: pos, End: pos}
}

// IsCursor reports whether the selection is collapsed.
func (s Selection) IsCursor() bool { return s.Start == s.End }

// Text is editable text with its selection.
type Text struct {
	Value     string
	Selection Selection
}

// Formatter rewrites text for display.
type Formatter interface {
	Format(t Text) Text
}

// FormatterFunc adapts a function to a Formatter.
type FormatterFunc func(t Text) Text

// Format calls f.
func (f FormatterFunc) Format(t Text) Text { return f(t) }

// None returns a formatter that leaves text untouched.
func None() Formatter {
	return FormatterFunc(func(t Text) Text { return t })
}

// Custom wraps fn as a formatter. The selection fn returns is clamped to the
// new value.
func Custom(fn func(Text) Text) Formatter {
	if fn == nil {
		return None()
	}
	return FormatterFunc(func(t Text) Text {
		out := fn(t)
		out.Selection = clamp(out.Selection, utf8.RuneCountInString(out.Value))
		return out
	})
}

const zipLength = 5

// ZipCode keeps the digits of the input and truncates to five.
func ZipCode() Formatter {
	return FormatterFunc(func(t Text) Text {
		digits := onlyDigits(t.Value)
		if len(digits) > zipLength {
			digits = digits[:zipLength]
		}
		return remap(t, digits)
	})
}

var phoneMask = []rune("XXX-XXX-XXXX")

// PhoneNumber renders up to ten digits as XXX-XXX-XXXX. Separators are only
// emitted once a digit follows them, so "5551" becomes "555-1".
func PhoneNumber() Formatter {
	return FormatterFunc(func(t Text) Text {
		digits := onlyDigits(t.Value)

		var b strings.Builder
		i := 0
		for _, m := range phoneMask {
			if i == len(digits) {
				break
			}
			if m == 'X' {
				b.WriteByte(digits[i])
				i++
				continue
			}
			b.WriteRune(m)
		}
		return remap(t, b.String())
	})
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// remap places the selection of t onto formatted, keeping each endpoint
// after the same number of digits it followed in the input.
func remap(t Text, formatted string) Text {
	sel := clamp(t.Selection, utf8.RuneCountInString(t.Value))
	return Text{
		Value: formatted,
		Selection: Selection{
			Start: positionAfterDigits(formatted, digitsBefore(t.Value, sel.Start)),
			End:   positionAfterDigits(formatted, digitsBefore(t.Value, sel.End)),
		},
	}
}

func digitsBefore(s string, pos int) int {
	n, i := 0, 0
	for _, r := range s {
		if i == pos {
			break
		}
		if r >= '0' && r <= '9' {
			n++
		}
		i++
	}
	return n
}

// positionAfterDigits returns the rune offset just past the n-th digit of s,
// or the end of s if it has fewer digits.
func positionAfterDigits(s string, n int) int {
	if n == 0 {
		return 0
	}
	seen, i := 0, 0
	for _, r := range s {
		i++
		if r >= '0' && r <= '9' {
			seen++
			if seen == n {
				return i
			}
		}
	}
	return i
}

func clamp(s Selection, length int) Selection {
	s.Start = min(max(s.Start, 0), length)
	s.End = min(max(s.End, s.Start), length)
	return s
}
