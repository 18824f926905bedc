// Package tui is an interactive terminal input source for a session: one
// text input per field, with the field state shown as the user types.
package tui

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thoreinstein/formcheck/internal/errors"
	"github.com/thoreinstein/formcheck/internal/session"
	"github.com/thoreinstein/formcheck/pkg/validation"
)

// Model is the bubbletea model for editing a session.
type Model struct {
	session   *session.Session
	names     []string
	labels    []string
	kinds     []session.Kind
	inputs    []textinput.Model
	errs      []string
	focus     int
	submitted bool
	quitting  bool
}

// New returns a model editing s. Inputs start with the fields' current
// values.
func New(s *session.Session) Model {
	names := s.Names()
	m := Model{
		session: s,
		names:   names,
		labels:  make([]string, len(names)),
		kinds:   make([]session.Kind, len(names)),
		inputs:  make([]textinput.Model, len(names)),
		errs:    make([]string, len(names)),
	}

	for i, name := range names {
		meta, _ := s.Meta(name)
		kind, _ := s.Kind(name)
		value, _ := s.Value(name)

		m.kinds[i] = kind
		m.labels[i] = meta.Label
		if m.labels[i] == "" {
			m.labels[i] = name
		}

		in := textinput.New()
		in.Prompt = ""
		in.Width = 32
		in.Placeholder = placeholder(kind)
		in.SetValue(value)
		if meta.Secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '•'
		}
		m.inputs[i] = in
	}
	if len(m.inputs) > 0 {
		m.inputs[0].Focus()
	}
	return m
}

func placeholder(kind session.Kind) string {
	switch kind {
	case session.KindBool:
		return "true / false"
	case session.KindNumber:
		return "number"
	case session.KindDate:
		return "YYYY-MM-DD"
	}
	return ""
}

// Submitted reports whether the user submitted a valid form.
func (m Model) Submitted() bool { return m.submitted }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	}
	if len(m.inputs) == 0 {
		return m, nil
	}

	switch key.String() {
	case "tab", "down":
		return m.moveFocus(1)
	case "shift+tab", "up":
		return m.moveFocus(-1)
	case "enter":
		m.endEditing()
		if m.session.Valid() {
			m.submitted = true
			m.quitting = true
			return m, tea.Quit
		}
		return m.moveFocus(1)
	}

	var cmd tea.Cmd
	before := m.inputs[m.focus].Value()
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if after := m.inputs[m.focus].Value(); after != before {
		m.edit(after)
	}
	return m, cmd
}

func (m Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	m.endEditing()
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	return m, m.inputs[m.focus].Focus()
}

// edit sends the raw input to the session. Text fields show the formatted
// result; other kinds keep what was typed so partial input like "1." is not
// rewritten.
func (m *Model) edit(raw string) {
	in := &m.inputs[m.focus]
	out, err := m.session.Edit(m.names[m.focus], raw, in.Position())
	if err != nil {
		m.errs[m.focus] = errorMessage(err)
		return
	}
	m.errs[m.focus] = ""
	if m.kinds[m.focus] != session.KindText {
		return
	}
	if out.Value != raw {
		in.SetValue(out.Value)
	}
	in.SetCursor(out.Selection.Start)
}

func (m *Model) endEditing() {
	if _, err := m.session.EndEditing(m.names[m.focus]); err != nil {
		m.errs[m.focus] = errorMessage(err)
	}
}

func errorMessage(err error) string {
	if errors.Is(err, errors.ErrInvalidValue) {
		return "cannot parse value"
	}
	return err.Error()
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.session.Name()))
	b.WriteString("  ")
	b.WriteString(verdict(m.session.Valid()))
	b.WriteString("\n\n")

	for i, name := range m.names {
		label := labelStyle
		if i == m.focus {
			label = focusedLabelStyle
		}
		state, _ := m.session.State(name)

		b.WriteString(label.Render(m.labels[i]))
		b.WriteString(m.inputs[i].View())
		b.WriteString("  ")
		b.WriteString(stateBadge(state))
		if m.errs[i] != "" {
			b.WriteString("  ")
			b.WriteString(errorStyle.Render(m.errs[i]))
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("tab/shift+tab move • enter submit • esc quit"))
	b.WriteString("\n")
	return b.String()
}

func verdict(valid bool) string {
	if valid {
		return validStyle.Render("✓ valid")
	}
	return invalidStyle.Render("✗ invalid")
}

func stateBadge(s validation.State) string {
	switch s {
	case validation.StateValid:
		return validStyle.Render("✓")
	case validation.StateInvalid:
		return invalidStyle.Render("✗")
	}
	return mutedStyle.Render("·")
}

// Run starts the program on in and out and blocks until the user quits.
// It reports whether the form was submitted.
func Run(ctx context.Context, s *session.Session, in io.Reader, out io.Writer) (bool, error) {
	p := tea.NewProgram(New(s),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	final, err := p.Run()
	if err != nil {
		return false, errors.Wrap(err, "running editor")
	}
	m, _ := final.(Model)
	return m.Submitted(), nil
}
