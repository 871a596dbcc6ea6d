package forms

import (
	"strings"
	"testing"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "ada@example.com", false},
		{"valid with plus", "ada+dev@example.co.uk", false},
		{"trimmed", "  ada@example.com  ", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"missing at", "ada.example.com", true},
		{"missing domain", "ada@", true},
		{"missing tld", "ada@example", true},
		{"embedded space", "ada @example.com", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.input)
			if tt.wantErr && err == nil {
				t.Errorf("ValidateEmail(%q) expected error, got nil", tt.input)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateEmail(%q) unexpected error: %v", tt.input, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "correcthorse", false},
		{"exactly minimum", strings.Repeat("x", MinPasswordLength), false},
		{"empty", "", true},
		{"one short", strings.Repeat("x", MinPasswordLength-1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePassword(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateConfirm(t *testing.T) {
	if err := ValidateConfirm("hunter22hunter22", "hunter22hunter22"); err != nil {
		t.Errorf("matching confirmation should pass, got %v", err)
	}
	if err := ValidateConfirm("hunter22hunter22", "different"); err == nil {
		t.Error("mismatched confirmation should fail")
	}
	if err := ValidateConfirm("hunter22hunter22", ""); err == nil {
		t.Error("empty confirmation should fail")
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"capitalized", "Ada", false},
		{"hyphenated", "Jean-Luc", false},
		{"apostrophe", "O'Brien", false},
		{"empty", "", true},
		{"lowercase", "ada", true},
		{"leading digit", "4da", true},
		{"embedded digit", "Ad4", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(FieldFirstName, tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateCode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "123456", false},
		{"too short", "12345", true},
		{"too long", "1234567", true},
		{"empty", "", true},
		{"letters", "12a456", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestCodeComplete(t *testing.T) {
	for _, input := range []string{"", "1", "12345"} {
		if CodeComplete(input) {
			t.Errorf("CodeComplete(%q) = true, want false", input)
		}
	}
	if !CodeComplete("123456") {
		t.Error("CodeComplete of a full code should be true")
	}
}

func TestValidationError_FieldAttribution(t *testing.T) {
	err := ValidateConfirm("longenough", "nope")
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Field != FieldConfirm {
		t.Errorf("error attributed to %q, want %q", err.Field, FieldConfirm)
	}
	if !strings.Contains(err.Error(), "do not match") {
		t.Errorf("unexpected message: %v", err)
	}
}
