package session

import (
	"log/slog"
	"math"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/thoreinstein/formcheck/internal/errors"
	"github.com/thoreinstein/formcheck/internal/logging"
	"github.com/thoreinstein/formcheck/internal/report"
	"github.com/thoreinstein/formcheck/pkg/format"
	"github.com/thoreinstein/formcheck/pkg/input"
	"github.com/thoreinstein/formcheck/pkg/validation"
)

// Meta describes how a field is presented and driven.
type Meta struct {
	Label  string
	Secret bool
	// Triggers overrides the kind's default trigger events when non-zero.
	Triggers input.Event
	// Initial is raw content set before the first validation.
	Initial string
}

type binding struct {
	name  string
	kind  Kind
	meta  Meta
	field validation.Validatable
	text  *input.TextControl

	apply func(raw string) error
	send  func(ev input.Event) bool
	value func() string
}

// Session is a live form.
type Session struct {
	name      string
	form      *validation.Form
	bindings  []*binding
	byName    map[string]*binding
	listeners []Listener
	staged    []*binding
	staging   bool

	emptyPolicy validation.EmptyPolicy
	initial     validation.InitialNotification
	duplicates  validation.DuplicatePolicy
	logger      *slog.Logger
}

// New creates an empty session named name.
func New(name string, opts ...Option) (*Session, error) {
	s := &Session{
		name:   name,
		byName: make(map[string]*binding),
		logger: logging.NewDiscard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("session", name)

	form, err := validation.New(
		validation.WithName(name),
		validation.WithObserver(validation.FormObserverFunc(s.formChanged)),
		validation.WithDuplicatePolicy(s.duplicates),
		validation.WithInitialNotification(s.initial),
		validation.WithLogger(s.logger),
	)
	if err != nil {
		return nil, errors.Wrap(err, "creating form")
	}
	s.form = form
	return s, nil
}

// Name returns the session name.
func (s *Session) Name() string { return s.name }

// Form returns the underlying form.
func (s *Session) Form() *validation.Form { return s.form }

// Valid reports whether every field is valid.
func (s *Session) Valid() bool { return s.form.IsValid() }

// Names returns field names in the order they were added.
func (s *Session) Names() []string {
	names := make([]string, len(s.bindings))
	for i, b := range s.bindings {
		names[i] = b.name
	}
	return names
}

// Kind returns the kind of the named field.
func (s *Session) Kind(name string) (Kind, error) {
	b, err := s.lookup(name)
	if err != nil {
		return "", err
	}
	return b.kind, nil
}

// Meta returns the presentation details of the named field.
func (s *Session) Meta(name string) (Meta, error) {
	b, err := s.lookup(name)
	if err != nil {
		return Meta{}, err
	}
	return b.meta, nil
}

// AddText adds a text field. Input passes through f before it is stored; a
// nil f leaves it untouched.
func (s *Session) AddText(name string, v validation.Validator[string], f format.Formatter, meta Meta) error {
	if ok, err := s.reserve(name); !ok {
		return err
	}
	if f == nil {
		f = format.None()
	}

	field := validation.NewField(name, v, s.fieldOptions(name)...)
	initial := f.Format(format.Text{Value: meta.Initial, Selection: format.Cursor(utf8.RuneCountInString(meta.Initial))})
	field.SetContent(initial.Value)

	ctrl := input.NewText(field, f)
	if meta.Triggers != 0 {
		ctrl.SetTriggers(meta.Triggers)
	}

	return s.register(&binding{
		name:  name,
		kind:  KindText,
		meta:  meta,
		field: field,
		text:  ctrl,
		apply: func(raw string) error {
			ctrl.Edit(raw, format.Cursor(utf8.RuneCountInString(raw)))
			return nil
		},
		send:  ctrl.Send,
		value: ctrl.Value,
	})
}

// AddBool adds a switch.
func (s *Session) AddBool(name string, v validation.Validator[bool], meta Meta) error {
	return addValue(s, name, KindBool, v, meta, valueCodec[bool]{
		parse:   ParseBool,
		show:    strconv.FormatBool,
		control: input.NewToggle,
	})
}

// AddNumber adds a numeric field. An empty number is NaN and counts as
// empty content.
func (s *Session) AddNumber(name string, v validation.Validator[float64], meta Meta) error {
	return addValue(s, name, KindNumber, v, meta, valueCodec[float64]{
		parse:   ParseNumber,
		show:    formatNumber,
		control: input.NewNumber,
		opts:    []validation.FieldOption{validation.WithEmptyCheck(math.IsNaN)},
	})
}

// AddDate adds a date field.
func (s *Session) AddDate(name string, v validation.Validator[time.Time], meta Meta) error {
	return addValue(s, name, KindDate, v, meta, valueCodec[time.Time]{
		parse:   ParseDate,
		show:    formatDate,
		control: input.NewDate,
	})
}

type valueCodec[T any] struct {
	parse   func(string) (T, error)
	show    func(T) string
	control func(*validation.Field[T]) *input.Control[T]
	opts    []validation.FieldOption
}

func addValue[T any](s *Session, name string, kind Kind, v validation.Validator[T], meta Meta, codec valueCodec[T]) error {
	if ok, err := s.reserve(name); !ok {
		return err
	}

	initial, err := codec.parse(meta.Initial)
	if err != nil {
		return errors.Wrapf(err, "initial value of %q", name)
	}

	field := validation.NewField(name, v, append(s.fieldOptions(name), codec.opts...)...)
	field.SetContent(initial)

	ctrl := codec.control(field)
	if meta.Triggers != 0 {
		ctrl.SetTriggers(meta.Triggers)
	}

	return s.register(&binding{
		name:  name,
		kind:  kind,
		meta:  meta,
		field: field,
		apply: func(raw string) error {
			val, err := codec.parse(raw)
			if err != nil {
				return err
			}
			ctrl.Set(val, input.ValueChanged)
			return nil
		},
		send:  ctrl.Send,
		value: func() string { return codec.show(ctrl.Value()) },
	})
}

// reserve reports whether name may be added. A taken name is an error
// under DuplicateReject and silently skipped under DuplicateIgnore.
func (s *Session) reserve(name string) (bool, error) {
	if _, taken := s.byName[name]; !taken {
		return true, nil
	}
	if s.duplicates == validation.DuplicateIgnore {
		s.logger.Warn("ignoring duplicate field", "field", name)
		return false, nil
	}
	return false, errors.Wrapf(validation.ErrDuplicateField, "%q", name)
}

// Batch runs fn with form membership deferred. Fields added inside fn join
// the form together when fn returns, so the aggregate is evaluated once. If
// fn fails, the fields it added are dropped from the session.
func (s *Session) Batch(fn func() error) error {
	if s.staging {
		return fn()
	}
	s.staging = true
	err := fn()
	s.staging = false
	staged := s.staged
	s.staged = nil

	if err == nil {
		fields := make([]validation.Validatable, len(staged))
		for i, b := range staged {
			fields[i] = b.field
		}
		err = s.form.AddFields(fields...)
	}
	if err != nil {
		for _, b := range staged {
			s.unbind(b)
		}
		return err
	}
	return nil
}

// register settles the field on its initial content, before any form
// observes it, and attaches it unless a batch is open.
func (s *Session) register(b *binding) error {
	b.field.Revalidate()
	if s.staging {
		s.staged = append(s.staged, b)
	} else if err := s.form.AddFields(b.field); err != nil {
		return err
	}
	s.bindings = append(s.bindings, b)
	s.byName[b.name] = b
	s.logger.Debug("field added", "field", b.name, "kind", b.kind)
	return nil
}

func (s *Session) fieldOptions(name string) []validation.FieldOption {
	return []validation.FieldOption{
		validation.WithEmptyPolicy(s.emptyPolicy),
		validation.WithFieldLogger(s.logger),
		validation.WithStateHandler(func(state validation.State) {
			s.publish(Event{Kind: FieldChanged, Field: name, State: state})
		}),
	}
}

// Remove drops the named field from the session and its form.
func (s *Session) Remove(name string) error {
	b, err := s.lookup(name)
	if err != nil {
		return err
	}
	s.unbind(b)
	s.form.RemoveFields(b.field)
	return nil
}

func (s *Session) unbind(b *binding) {
	delete(s.byName, b.name)
	for i, other := range s.bindings {
		if other == b {
			s.bindings = append(s.bindings[:i], s.bindings[i+1:]...)
			break
		}
	}
}

// Apply parses raw for the named field's kind and drives its control with
// the kind's natural event: EditingChanged for text, ValueChanged
// otherwise.
func (s *Session) Apply(name, raw string) error {
	b, err := s.lookup(name)
	if err != nil {
		return err
	}
	if err := b.apply(raw); err != nil {
		return errors.Wrapf(err, "field %q", name)
	}
	return nil
}

// Edit applies raw to a text field with the cursor at cursor and returns
// the formatted text. For other kinds it behaves like Apply with the cursor
// placed at the end of the displayed value.
func (s *Session) Edit(name, raw string, cursor int) (format.Text, error) {
	b, err := s.lookup(name)
	if err != nil {
		return format.Text{}, err
	}
	if b.text != nil {
		out, _ := b.text.Edit(raw, format.Cursor(cursor))
		return out, nil
	}

	if err := s.Apply(name, raw); err != nil {
		return format.Text{}, err
	}
	value := b.value()
	return format.Text{Value: value, Selection: format.Cursor(utf8.RuneCountInString(value))}, nil
}

// Send fires ev on the named field without changing its content. It
// reports whether the field changed state.
func (s *Session) Send(name string, ev input.Event) (bool, error) {
	b, err := s.lookup(name)
	if err != nil {
		return false, err
	}
	return b.send(ev), nil
}

// EndEditing fires EditingDidEnd on the named field.
func (s *Session) EndEditing(name string) (bool, error) {
	return s.Send(name, input.EditingDidEnd)
}

// Value returns the displayed value of the named field.
func (s *Session) Value(name string) (string, error) {
	b, err := s.lookup(name)
	if err != nil {
		return "", err
	}
	return b.value(), nil
}

// State returns the state of the named field.
func (s *Session) State(name string) (validation.State, error) {
	b, err := s.lookup(name)
	if err != nil {
		return validation.StateUnknown, err
	}
	return b.field.State(), nil
}

// Revalidate revalidates every field, reporting whether any changed.
func (s *Session) Revalidate() bool {
	return s.form.Revalidate()
}

// Snapshot captures the current state of every field. Values of secret
// fields are masked.
func (s *Session) Snapshot() report.Snapshot {
	snap := report.Snapshot{
		Form:   s.name,
		Valid:  s.form.IsValid(),
		Fields: make([]report.FieldStatus, 0, len(s.bindings)),
	}
	for _, b := range s.bindings {
		value := b.value()
		if b.meta.Secret && value != "" {
			value = logging.MaskValue(value)
		}
		snap.Fields = append(snap.Fields, report.FieldStatus{
			Name:   b.name,
			Label:  b.meta.Label,
			Kind:   string(b.kind),
			Value:  value,
			State:  b.field.State(),
			Secret: b.meta.Secret,
		})
	}
	return snap
}

func (s *Session) lookup(name string) (*binding, error) {
	b, ok := s.byName[name]
	if !ok {
		return nil, errors.Wrapf(errors.ErrFieldNotFound, "%q", name)
	}
	return b, nil
}

func (s *Session) formChanged(valid bool) {
	s.logger.Info("form validity changed", "valid", valid)
	s.publish(Event{Kind: FormChanged, Valid: valid})
}

func (s *Session) publish(ev Event) {
	for _, l := range s.listeners {
		l(ev)
	}
}
