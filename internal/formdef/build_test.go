package formdef

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/thoreinstein/formcheck/internal/errors"
	"github.com/thoreinstein/formcheck/internal/logging"
	"github.com/thoreinstein/formcheck/internal/session"
	"github.com/thoreinstein/formcheck/pkg/validation"
)

func TestBuild(t *testing.T) {
	def, err := Load("testdata/signup.yaml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	var formEvents []bool
	s, err := Build(def,
		session.WithLogger(logging.ForTest(t)),
		session.WithListener(func(ev session.Event) {
			if ev.Kind == session.FormChanged {
				formEvents = append(formEvents, ev.Valid)
			}
		}),
	)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if diff := cmp.Diff(def.Fields[0].Name, s.Names()[0]); diff != "" {
		t.Errorf("first field mismatch (-want +got):\n%s", diff)
	}
	if state, _ := s.State("zip"); state != validation.StateValid {
		t.Errorf("zip with valid initial value = %v, want valid", state)
	}

	for _, in := range []struct{ name, raw string }{
		{"email", "ada@example.com"},
		{"phone", "5551234567"},
		{"age", "36"},
		{"terms", "true"},
	} {
		if err := s.Apply(in.name, in.raw); err != nil {
			t.Fatalf("Apply(%s) error = %v", in.name, err)
		}
	}
	if !s.Valid() {
		t.Errorf("session should be valid: %+v", s.Snapshot())
	}
	if diff := cmp.Diff([]bool{false, true}, formEvents); diff != "" {
		t.Errorf("form events mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_TOML(t *testing.T) {
	def, err := Load("testdata/signup.toml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	s, err := Build(def)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if kind, _ := s.Kind("start"); kind != session.KindDate {
		t.Errorf("Kind(start) = %v, want date", kind)
	}
	if state, _ := s.State("start"); state != validation.StateValid {
		t.Errorf("start state = %v, want valid", state)
	}
	if err := s.Apply("zip", "1234"); err != nil {
		t.Fatal(err)
	}
	if s.Valid() {
		t.Error("session with a four digit zip should be invalid")
	}
}

func TestBuild_Example(t *testing.T) {
	s, err := Build(Example())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if err := s.Apply("pin", "1234"); err != nil {
		t.Fatal(err)
	}
	if state, _ := s.State("pin"); state != validation.StateDefault {
		t.Errorf("pin validates only when editing ends, got %v", state)
	}
	if _, err := s.EndEditing("pin"); err != nil {
		t.Fatal(err)
	}
	if state, _ := s.State("pin"); state != validation.StateValid {
		t.Errorf("pin state = %v, want valid", state)
	}
}

func TestBuild_RejectsLintErrors(t *testing.T) {
	def := &Definition{Name: "f", Fields: []FieldDef{{Name: "x", Kind: "color"}}}
	if _, err := Build(def); !errors.Is(err, errors.ErrInvalidDefinition) {
		t.Errorf("Build() error = %v, want ErrInvalidDefinition", err)
	}
}

func TestBuild_ValidInitialValuesAnnounceOnce(t *testing.T) {
	def := &Definition{
		Name: "shipping",
		Fields: []FieldDef{
			{Name: "zip", Validator: &ValidatorSpec{Type: ValidatorZip}, Initial: "12345"},
			{Name: "phone", Validator: &ValidatorSpec{Type: ValidatorPhone}, Formatter: FormatterPhone, Initial: "5551234567"},
		},
	}

	var formEvents []bool
	s, err := Build(def, session.WithListener(func(ev session.Event) {
		if ev.Kind == session.FormChanged {
			formEvents = append(formEvents, ev.Valid)
		}
	}))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if diff := cmp.Diff([]bool{true}, formEvents); diff != "" {
		t.Errorf("form events mismatch (-want +got):\n%s", diff)
	}
	if !s.Valid() {
		t.Errorf("session should be valid: %+v", s.Snapshot())
	}
}

func TestBuild_InvalidInitialValueAnnouncesInvalidOnce(t *testing.T) {
	def := &Definition{
		Name: "shipping",
		Fields: []FieldDef{
			{Name: "zip", Validator: &ValidatorSpec{Type: ValidatorZip}, Initial: "12345"},
			{Name: "phone", Validator: &ValidatorSpec{Type: ValidatorPhone}, Initial: "555"},
		},
	}

	var formEvents []bool
	_, err := Build(def, session.WithListener(func(ev session.Event) {
		if ev.Kind == session.FormChanged {
			formEvents = append(formEvents, ev.Valid)
		}
	}))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if diff := cmp.Diff([]bool{false}, formEvents); diff != "" {
		t.Errorf("form events mismatch (-want +got):\n%s", diff)
	}
}
