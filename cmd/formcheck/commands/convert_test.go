package commands

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/thoreinstein/formcheck/internal/formdef"
)

func TestConvert_RoundTrip(t *testing.T) {
	src := writeDefinition(t, "form.yaml", signupYAML)
	dir := t.TempDir()
	toml := filepath.Join(dir, "form.toml")
	back := filepath.Join(dir, "again.yaml")

	stdout, _, err := execute(t, "", "convert", src, toml)
	if err != nil {
		t.Fatalf("convert error = %v", err)
	}
	if !strings.Contains(stdout, "Wrote "+toml) {
		t.Errorf("output = %q", stdout)
	}
	if _, _, err := execute(t, "", "convert", toml, back); err != nil {
		t.Fatalf("convert back error = %v", err)
	}

	want, err := formdef.Load(src)
	if err != nil {
		t.Fatal(err)
	}
	got, err := formdef.Load(back)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestConvert_RefusesOverwrite(t *testing.T) {
	src := writeDefinition(t, "form.yaml", signupYAML)
	dst := writeDefinition(t, "form.toml", "name = \"mine\"\n")

	_, _, err := execute(t, "", "convert", src, dst)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("error = %v, want already exists", err)
	}
	if _, _, err := execute(t, "", "convert", src, dst, "--force"); err != nil {
		t.Errorf("convert --force error = %v", err)
	}
}
