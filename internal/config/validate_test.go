package config

import (
	"testing"

	"github.com/thoreinstein/formcheck/internal/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr []error
	}{
		{"defaults", func(*Config) {}, nil},
		{"version zero", func(c *Config) { c.Version = 0 }, []error{ErrUnsupportedVersion}},
		{
			name: "two bad choices",
			modify: func(c *Config) {
				c.EmptyContent = "skip"
				c.DuplicateFields = "merge"
			},
			wantErr: []error{ErrInvalidChoice, ErrInvalidChoice},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			errs := Validate(cfg)
			if len(errs) != len(tt.wantErr) {
				t.Fatalf("Validate() = %v, want %d errors", errs, len(tt.wantErr))
			}
			for i, want := range tt.wantErr {
				if !errors.Is(errs[i], want) {
					t.Errorf("error %d = %v, want %v", i, errs[i], want)
				}
			}
		})
	}
}

func TestValidate_Nil(t *testing.T) {
	if errs := Validate(nil); len(errs) != 1 {
		t.Errorf("Validate(nil) = %v, want one error", errs)
	}
}

func TestChoiceError(t *testing.T) {
	var choiceErr *ChoiceError
	errs := Validate(&Config{Version: 1, InitialNotification: "eager", EmptyContent: "short_circuit", DuplicateFields: "reject", Output: "yaml"})
	if len(errs) != 1 || !errors.As(errs[0], &choiceErr) {
		t.Fatalf("Validate() = %v, want one ChoiceError", errs)
	}
	if choiceErr.Key != "output" || choiceErr.Value != "yaml" {
		t.Errorf("ChoiceError = %+v", choiceErr)
	}
}
