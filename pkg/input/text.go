package input

import (
	"unicode/utf8"

	"github.com/thoreinstein/formcheck/pkg/format"
	"github.com/thoreinstein/formcheck/pkg/validation"
)

// TextControl is a text input whose edits pass through a formatter before
// reaching the field.
type TextControl struct {
	*Control[string]

	formatter format.Formatter
	selection format.Selection
}

// NewText returns a text control revalidated on AllEditingEvents. A nil
// formatter leaves input untouched.
func NewText(field *validation.Field[string], f format.Formatter) *TextControl {
	if f == nil {
		f = format.None()
	}
	return &TextControl{
		Control:   NewControl(field, AllEditingEvents),
		formatter: f,
		selection: format.Cursor(utf8.RuneCountInString(field.Content())),
	}
}

// Edit formats text, stores the result and fires EditingChanged. It
// returns the formatted text with the selection mapped onto it.
func (c *TextControl) Edit(text string, sel format.Selection) (format.Text, bool) {
	out := c.formatter.Format(format.Text{Value: text, Selection: sel})
	c.selection = out.Selection
	changed := c.Set(out.Value, EditingChanged)
	return out, changed
}

// Type appends text at the end, as a keyboard would with the cursor at the
// end of the input.
func (c *TextControl) Type(text string) (format.Text, bool) {
	value := c.Value() + text
	return c.Edit(value, format.Cursor(utf8.RuneCountInString(value)))
}

// EndEditing fires EditingDidEnd.
func (c *TextControl) EndEditing() bool {
	return c.Send(EditingDidEnd)
}

// Text returns the current content and selection.
func (c *TextControl) Text() format.Text {
	return format.Text{Value: c.Value(), Selection: c.selection}
}
