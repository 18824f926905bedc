// Package config loads formcheck's own settings with Viper.
//
// # Configuration File
//
// The file is config.yaml, searched in the current directory and then in
// $XDG_CONFIG_HOME/formcheck (or $FORMCHECK_CONFIG_DIR when set):
//
//	version: 1
//	initial_notification: eager   # eager | silent
//	empty_content: short_circuit  # short_circuit | validate
//	duplicate_fields: reject      # reject | ignore
//	output: text                  # text | json
//
// Every key can be overridden from the environment with the FORMCHECK_
// prefix, for example FORMCHECK_OUTPUT=json.
//
// # Loading Configuration
//
//	config.Init()
//	cfg, err := config.Load("")
//
// [Load] validates what it read; [Validate] can also be called directly and
// returns every problem rather than the first.
package config
