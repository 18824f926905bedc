package commands

import (
	"bufio"
	"encoding/json"
	"strings"
	"testing"

	"github.com/thoreinstein/formcheck/pkg/validation"
)

func TestWatch_StreamsStateChanges(t *testing.T) {
	path := writeDefinition(t, "form.yaml", signupYAML)
	edits := strings.Join([]string{
		"# fill in the zip code",
		"zip=9021",
		"zip=90210",
		"",
		"nickname=bob",
		"?",
	}, "\n")

	stdout, stderr, err := execute(t, edits, "watch", path)
	if err != nil {
		t.Fatalf("watch error = %v", err)
	}

	for _, want := range []string{
		"field zip: invalid",
		"field zip: valid",
		"Form signup: invalid",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q:\n%s", want, stdout)
		}
	}
	if strings.Index(stdout, "field zip: invalid") > strings.Index(stdout, "field zip: valid") {
		t.Errorf("events out of order:\n%s", stdout)
	}
	if !strings.Contains(stderr, "line 5:") {
		t.Errorf("unknown field should be reported with its line number, stderr:\n%s", stderr)
	}
}

func TestWatch_FormFlips(t *testing.T) {
	path := writeDefinition(t, "form.yaml", signupYAML)
	edits := "zip=90210\nphone=5551234567\nage=30\nterms=true\nterms=false\n"

	stdout, _, err := execute(t, edits, "watch", path)
	if err != nil {
		t.Fatalf("watch error = %v", err)
	}

	valid := strings.Index(stdout, "form  valid")
	invalid := strings.LastIndex(stdout, "form  invalid")
	if valid < 0 || invalid < valid {
		t.Errorf("form should become valid then invalid again:\n%s", stdout)
	}
}

func TestWatch_EndEditing(t *testing.T) {
	def := `name: pin
fields:
  - name: pin
    validator: {type: digits, length: 4}
    triggers: [editing_did_end]
`
	path := writeDefinition(t, "form.yaml", def)

	stdout, _, err := execute(t, "pin=12\n", "watch", path)
	if err != nil {
		t.Fatalf("watch error = %v", err)
	}
	if strings.Contains(stdout, "field pin:") {
		t.Errorf("pin should not validate before editing ends:\n%s", stdout)
	}

	stdout, _, err = execute(t, "pin=12\n!pin\n", "watch", path)
	if err != nil {
		t.Fatalf("watch error = %v", err)
	}
	if !strings.Contains(stdout, "field pin: invalid") {
		t.Errorf("pin should validate when editing ends:\n%s", stdout)
	}
}

func TestWatch_JSON(t *testing.T) {
	path := writeDefinition(t, "form.yaml", signupYAML)

	stdout, _, err := execute(t, "zip=90210\n", "watch", path, "--json")
	if err != nil {
		t.Fatalf("watch error = %v", err)
	}

	var events []watchEvent
	scanner := bufio.NewScanner(strings.NewReader(stdout))
	for scanner.Scan() {
		var ev watchEvent
		if err := json.Unmarshal(scanner.Bytes(), &ev); err != nil {
			t.Fatalf("line %q is not JSON: %v", scanner.Text(), err)
		}
		events = append(events, ev)
	}

	found := false
	for _, ev := range events {
		if ev.Event == "field_changed" && ev.Field == "zip" && ev.State == validation.StateValid {
			found = true
		}
		if ev.Event == "field_changed" && ev.Valid != nil {
			t.Errorf("field event carries form validity: %+v", ev)
		}
		if ev.Event == "form_changed" && ev.Valid == nil {
			t.Errorf("form event without validity: %+v", ev)
		}
	}
	if !found {
		t.Errorf("no field_changed event for zip in %+v", events)
	}
}

func TestWatch_ValidInitialValuesAnnounceOnce(t *testing.T) {
	path := writeDefinition(t, "form.yaml", `name: shipping
fields:
  - name: zip
    validator: {type: zip}
    initial: "12345"
`)
	stdout, _, err := execute(t, "", "watch", path)
	if err != nil {
		t.Fatalf("watch error = %v", err)
	}
	if strings.Contains(stdout, "form  invalid") {
		t.Errorf("valid definition announced invalid:\n%s", stdout)
	}
	if strings.Count(stdout, "form  valid") != 1 {
		t.Errorf("want exactly one form valid line:\n%s", stdout)
	}
}
