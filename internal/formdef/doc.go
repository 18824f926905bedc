// Package formdef loads form definitions from YAML or TOML documents,
// checks them and builds live sessions from them.
//
// A definition names a form and lists its fields:
//
//	name: signup
//	fields:
//	  - name: zip
//	    kind: text
//	    label: ZIP code
//	    validator: {type: zip}
//	    formatter: zip
//	  - name: terms
//	    kind: bool
//	    validator: {type: checked}
//
// [Lint] reports every problem it finds; [Build] refuses definitions with
// errors.
package formdef
