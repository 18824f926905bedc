// Package paths resolves where formcheck keeps its own files.
//
// It wraps github.com/adrg/xdg so the configuration file lives in the
// platform's config home:
//
//	paths.ConfigFile() // ~/.config/formcheck/config.yaml on Linux
package paths
