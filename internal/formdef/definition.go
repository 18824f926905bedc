package formdef

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/formcheck/internal/errors"
	"github.com/thoreinstein/formcheck/pkg/fileutil"
)

// Validator types.
const (
	ValidatorZip       = "zip"
	ValidatorPhone     = "phone"
	ValidatorDigits    = "digits"
	ValidatorPattern   = "pattern"
	ValidatorTag       = "tag"
	ValidatorRange     = "range"
	ValidatorChecked   = "checked"
	ValidatorNotBefore = "not_before"
	ValidatorRequired  = "required"
)

// Formatter names.
const (
	FormatterNone  = "none"
	FormatterZip   = "zip"
	FormatterPhone = "phone"
)

// Definition is a form definition document.
type Definition struct {
	Name   string     `yaml:"name" toml:"name"`
	Fields []FieldDef `yaml:"fields" toml:"fields"`
}

// FieldDef defines one field.
type FieldDef struct {
	Name      string         `yaml:"name" toml:"name"`
	Kind      string         `yaml:"kind,omitempty" toml:"kind,omitempty"`
	Label     string         `yaml:"label,omitempty" toml:"label,omitempty"`
	Validator *ValidatorSpec `yaml:"validator,omitempty" toml:"validator,omitempty"`
	Formatter string         `yaml:"formatter,omitempty" toml:"formatter,omitempty"`
	Secret    bool           `yaml:"secret,omitempty" toml:"secret,omitempty"`
	Initial   string         `yaml:"initial,omitempty" toml:"initial,omitempty"`
	Triggers  []string       `yaml:"triggers,omitempty" toml:"triggers,omitempty"`
}

// ValidatorSpec selects and parameterizes a built-in validator. Only the
// parameters relevant to Type are read.
type ValidatorSpec struct {
	Type    string   `yaml:"type" toml:"type"`
	Length  int      `yaml:"length,omitempty" toml:"length,omitempty"`
	Pattern string   `yaml:"pattern,omitempty" toml:"pattern,omitempty"`
	Tag     string   `yaml:"tag,omitempty" toml:"tag,omitempty"`
	Min     *float64 `yaml:"min,omitempty" toml:"min,omitempty"`
	Max     *float64 `yaml:"max,omitempty" toml:"max,omitempty"`
	Date    string   `yaml:"date,omitempty" toml:"date,omitempty"`
}

// KindOrDefault returns the field kind, defaulting to text.
func (f FieldDef) KindOrDefault() string {
	if f.Kind == "" {
		return "text"
	}
	return f.Kind
}

// Syntax is the document syntax.
type Syntax string

const (
	SyntaxYAML Syntax = "yaml"
	SyntaxTOML Syntax = "toml"
)

// SyntaxFor picks the syntax from the file extension. Anything other than
// .toml is read as YAML.
func SyntaxFor(path string) Syntax {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return SyntaxTOML
	}
	return SyntaxYAML
}

// ParseError reports a definition that could not be decoded.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return "parsing form definition: " + e.Err.Error()
	}
	return "parsing form definition " + e.Path + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads and decodes the definition at path.
func Load(path string) (*Definition, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	def, err := Parse(data, SyntaxFor(path))
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Path = path
		}
		return nil, err
	}
	return def, nil
}

// Parse decodes a definition. Unknown keys are errors so typos surface
// instead of being ignored.
func Parse(data []byte, syntax Syntax) (*Definition, error) {
	var def Definition
	var err error
	switch syntax {
	case SyntaxTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&def)
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&def)
	}
	if err != nil {
		return nil, &ParseError{Err: errors.Mark(err, errors.ErrInvalidDefinition)}
	}
	return &def, nil
}

// Marshal encodes def in the given syntax.
func Marshal(def *Definition, syntax Syntax) ([]byte, error) {
	if syntax == SyntaxTOML {
		out, err := toml.Marshal(def)
		return out, errors.Wrap(err, "encoding TOML")
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(def); err != nil {
		return nil, errors.Wrap(err, "encoding YAML")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "encoding YAML")
	}
	return buf.Bytes(), nil
}

// Example returns a definition exercising every field kind.
func Example() *Definition {
	minAge, maxAge := 18.0, 120.0
	return &Definition{
		Name: "signup",
		Fields: []FieldDef{
			{Name: "email", Kind: "text", Label: "Email", Validator: &ValidatorSpec{Type: ValidatorTag, Tag: "required,email"}},
			{Name: "zip", Kind: "text", Label: "ZIP code", Validator: &ValidatorSpec{Type: ValidatorZip}, Formatter: FormatterZip},
			{Name: "phone", Kind: "text", Label: "Phone", Validator: &ValidatorSpec{Type: ValidatorPhone}, Formatter: FormatterPhone},
			{Name: "pin", Kind: "text", Label: "PIN", Validator: &ValidatorSpec{Type: ValidatorDigits, Length: 4}, Secret: true, Triggers: []string{"editing_did_end"}},
			{Name: "age", Kind: "number", Label: "Age", Validator: &ValidatorSpec{Type: ValidatorRange, Min: &minAge, Max: &maxAge}},
			{Name: "start", Kind: "date", Label: "Start date", Validator: &ValidatorSpec{Type: ValidatorNotBefore, Date: "2025-01-01"}},
			{Name: "terms", Kind: "bool", Label: "Accept terms", Validator: &ValidatorSpec{Type: ValidatorChecked}},
		},
	}
}
