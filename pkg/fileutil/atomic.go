// Package fileutil reads form definitions with a size cap and writes
// definitions and snapshots atomically.
package fileutil

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/thoreinstein/formcheck/internal/errors"
)

// AtomicWriteFile writes data to path through a temp file in the same
// directory and a rename, so readers never see a partial file. The parent
// directory must exist.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".formcheck-atomic-*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	tmpName := tmp.Name()
	renamed := false
	defer func() {
		if !renamed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "writing temp file")
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return errors.Wrap(err, "setting file permissions")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrapf(err, "replacing %s", path)
	}
	renamed = true
	return nil
}

// AtomicWriteJSON writes v as two-space indented JSON with a trailing
// newline.
func AtomicWriteJSON(path string, v any, perm os.FileMode) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshaling JSON")
	}
	return AtomicWriteFile(path, append(data, '\n'), perm)
}
