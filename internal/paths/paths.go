package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/thoreinstein/formcheck/internal/errors"
)

// AppName names the per-application directories.
const AppName = "formcheck"

// ConfigFileName is the base name of the configuration file.
const ConfigFileName = "config.yaml"

// DefaultDirPerm is the default permission for newly created directories.
const DefaultDirPerm = 0o755

// ErrInvalidPath indicates a path is empty or malformed.
var ErrInvalidPath = errors.New("invalid path")

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns the formcheck config directory.
func ConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// ConfigFile returns the default configuration file path.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// StateDir returns the formcheck state directory, used for log files.
func StateDir() string {
	return filepath.Join(xdg.StateHome, AppName)
}

// LogFile resolves a --log-file value. A bare file name is placed in
// StateDir; a path with a directory part is returned unchanged.
func LogFile(name string) string {
	if name == "" || filepath.Base(name) != name {
		return name
	}
	return filepath.Join(StateDir(), name)
}

// EnsureDir creates path and any missing parents. If perm is 0,
// DefaultDirPerm is used. It is a no-op for an existing directory.
func EnsureDir(path string, perm os.FileMode) error {
	if path == "" {
		return ErrInvalidPath
	}
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return errors.Wrapf(os.MkdirAll(path, perm), "creating %s", path)
}

// EnsureParent creates the parent directory of file.
func EnsureParent(file string, perm os.FileMode) error {
	return EnsureDir(filepath.Dir(file), perm)
}
