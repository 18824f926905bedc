package commands

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/thoreinstein/formcheck/internal/errors"
	"github.com/thoreinstein/formcheck/internal/formdef"
)

func TestInit_WritesExample(t *testing.T) {
	for _, name := range []string{"form.yaml", "nested/signup.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)

			stdout, _, err := execute(t, "", "init", path)
			if err != nil {
				t.Fatalf("init error = %v", err)
			}
			if !strings.Contains(stdout, "Created "+path) {
				t.Errorf("output = %q", stdout)
			}

			def, err := formdef.Load(path)
			if err != nil {
				t.Fatalf("written definition does not load: %v", err)
			}
			if res := formdef.Lint(def); res.HasErrors() {
				t.Errorf("written definition has lint errors: %+v", res.Errors())
			}
		})
	}
}

func TestInit_DefaultPath(t *testing.T) {
	t.Chdir(t.TempDir())

	if _, _, err := execute(t, "", "init"); err != nil {
		t.Fatalf("init error = %v", err)
	}
	if _, err := formdef.Load(defaultDefinitionFile); err != nil {
		t.Errorf("default file not written: %v", err)
	}
}

func TestInit_Force(t *testing.T) {
	path := writeDefinition(t, "form.yaml", "name: mine\nfields: []\n")

	_, _, err := execute(t, "", "init", path)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("error = %v, want already exists", err)
	}
	def, _ := formdef.Load(path)
	if def.Name != "mine" {
		t.Error("existing file should be left alone without --force")
	}

	if _, _, err := execute(t, "", "init", path, "--force"); err != nil {
		t.Fatalf("init --force error = %v", err)
	}
	def, _ = formdef.Load(path)
	if def.Name != formdef.Example().Name {
		t.Errorf("Name = %q, want %q after --force", def.Name, formdef.Example().Name)
	}
}

func TestInit_EditThenLint(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script as the editor")
	}

	dir := t.TempDir()
	// The "editor" introduces a duplicate field name.
	mock := filepath.Join(dir, "editor.sh")
	script := "#!/bin/sh\nprintf 'name: x\\nfields:\\n  - {name: a, validator: {type: zip}}\\n  - {name: a, validator: {type: zip}}\\n' > \"$1\"\n"
	if err := os.WriteFile(mock, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FORMCHECK_EDITOR", mock)

	path := filepath.Join(dir, "form.yaml")
	stdout, _, err := execute(t, "", "init", path, "--edit")
	if !errors.Is(err, errors.ErrInvalidDefinition) {
		t.Fatalf("error = %v, want ErrInvalidDefinition after a bad edit", err)
	}
	if !strings.Contains(stdout, "duplicate field name") {
		t.Errorf("lint output missing after edit:\n%s", stdout)
	}
}
