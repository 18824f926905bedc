package commands

import (
	"strings"
	"testing"

	"github.com/thoreinstein/formcheck/internal/errors"
)

func TestLint(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		wantErr  error
		contains []string
	}{
		{
			name:     "clean yaml",
			file:     "form.yaml",
			content:  signupYAML,
			contains: []string{"is valid"},
		},
		{
			name: "clean toml",
			file: "form.toml",
			content: `name = "signup"

[[fields]]
name = "zip"
formatter = "zip"
validator = { type = "zip" }
`,
			contains: []string{"is valid"},
		},
		{
			name: "duplicate and unknown",
			file: "form.yaml",
			content: `name: signup
fields:
  - name: zip
    validator: {type: zip}
  - name: zip
    validator: {type: zip}
  - name: age
    kind: integer
    validator: {type: range, min: 1}
`,
			wantErr:  errors.ErrInvalidDefinition,
			contains: []string{"duplicate field name", "age"},
		},
		{
			name:     "undecodable",
			file:     "form.yaml",
			content:  "name: signup\nfeilds: []\n",
			wantErr:  errors.ErrInvalidDefinition,
			contains: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDefinition(t, tt.file, tt.content)
			stdout, _, err := execute(t, "", "lint", path)

			if tt.wantErr == nil && err != nil {
				t.Fatalf("lint error = %v", err)
			}
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				if errors.ExitCode(err) != errors.ExitUser {
					t.Errorf("ExitCode() = %d, want %d", errors.ExitCode(err), errors.ExitUser)
				}
			}
			for _, want := range tt.contains {
				if !strings.Contains(stdout, want) {
					t.Errorf("output missing %q:\n%s", want, stdout)
				}
			}
		})
	}
}

func TestLint_MissingFile(t *testing.T) {
	_, _, err := execute(t, "", "lint", "does-not-exist.yaml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if errors.ExitCode(err) != errors.ExitUser {
		t.Errorf("ExitCode() = %d, want %d", errors.ExitCode(err), errors.ExitUser)
	}
}

func TestLint_Strict(t *testing.T) {
	content := `name: signup
fields:
  - name: notes
  - name: zip
    validator: {type: zip}
`
	path := writeDefinition(t, "form.yaml", content)

	stdout, _, err := execute(t, "", "lint", path)
	if err != nil {
		t.Fatalf("lint without --strict error = %v", err)
	}
	for _, want := range []string{"no validator", "zip formatter"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q:\n%s", want, stdout)
		}
	}

	_, _, err = execute(t, "", "lint", path, "--strict")
	if !errors.Is(err, errors.ErrInvalidDefinition) {
		t.Fatalf("lint --strict error = %v, want ErrInvalidDefinition", err)
	}
	if errors.ExitCode(err) != errors.ExitUser {
		t.Errorf("ExitCode() = %d, want %d", errors.ExitCode(err), errors.ExitUser)
	}
}

func TestLint_StrictIgnoresNotes(t *testing.T) {
	content := `name: signup
fields:
  - name: zip
    validator: {type: zip}
`
	path := writeDefinition(t, "form.yaml", content)
	stdout, _, err := execute(t, "", "lint", path, "--strict")
	if err != nil {
		t.Fatalf("lint --strict error = %v", err)
	}
	if !strings.Contains(stdout, "is valid") || !strings.Contains(stdout, "zip formatter") {
		t.Errorf("expected a clean verdict with a note:\n%s", stdout)
	}
}
