package fileutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAtomicWriteFile(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		perm os.FileMode
	}{
		{"definition", []byte("name: signup\nfields: []\n"), 0o644},
		{"empty", []byte{}, 0o644},
		{"private", []byte("pin = \"1234\"\n"), 0o600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "form.yaml")

			if err := AtomicWriteFile(path, tt.data, tt.perm); err != nil {
				t.Fatalf("AtomicWriteFile() error = %v", err)
			}

			got, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("reading file: %v", err)
			}
			if string(got) != string(tt.data) {
				t.Errorf("content = %q, want %q", got, tt.data)
			}
			info, err := os.Stat(path)
			if err != nil {
				t.Fatalf("stat: %v", err)
			}
			if info.Mode().Perm() != tt.perm {
				t.Errorf("permissions = %o, want %o", info.Mode().Perm(), tt.perm)
			}
		})
	}
}

func TestAtomicWriteFile_OverwriteExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "form.yaml")
	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := AtomicWriteFile(path, []byte("new"), 0o644); err != nil {
		t.Fatalf("AtomicWriteFile() error = %v", err)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "new" {
		t.Errorf("content = %q, want new", got)
	}
}

func TestAtomicWriteFile_NoTempFileLeft(t *testing.T) {
	dir := t.TempDir()

	if err := AtomicWriteFile(filepath.Join(dir, "form.yaml"), []byte("x"), 0o644); err != nil {
		t.Fatalf("AtomicWriteFile() error = %v", err)
	}
	// A directory at the target makes the rename fail.
	if err := os.Mkdir(filepath.Join(dir, "taken"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := AtomicWriteFile(filepath.Join(dir, "taken"), []byte("x"), 0o644); err == nil {
		t.Error("expected error writing over a directory")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".formcheck-atomic-") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestAtomicWriteFile_DirectoryNotExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "form.yaml")
	if err := AtomicWriteFile(path, []byte("x"), 0o644); err == nil {
		t.Error("expected error when parent directory is missing")
	}
}

func TestAtomicWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	v := map[string]any{"form": "signup", "valid": true}

	if err := AtomicWriteJSON(path, v, 0o644); err != nil {
		t.Fatalf("AtomicWriteJSON() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(string(data), "}\n") {
		t.Errorf("JSON should end with a newline: %q", data)
	}
	if !strings.Contains(string(data), "\n  \"form\"") {
		t.Errorf("JSON should be indented: %q", data)
	}
	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["form"] != "signup" || got["valid"] != true {
		t.Errorf("round trip = %v", got)
	}
}

func TestAtomicWriteJSON_Unmarshalable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	if err := AtomicWriteJSON(path, make(chan int), 0o644); err == nil {
		t.Error("expected error for unmarshalable value")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("no file should be written on marshal failure")
	}
}
