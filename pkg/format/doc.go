// Package format rewrites user-entered text for display, such as grouping
// phone number digits, while keeping the cursor and selection on the same
// logical characters.
//
// Formatting happens before content reaches a field, so validators always
// see the formatted text:
//
//	text := format.PhoneNumber().Format(format.Text{Value: "5551234567", Selection: format.Cursor(10)})
//	// text.Value == "555-123-4567", text.Selection == format.Cursor(12)
//	field.Update(text.Value)
package format
