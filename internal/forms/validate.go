// Package forms holds the form-step logic shared by the onboarding screens:
// synchronous field validation and the injected submission capability that
// stands in for the auth backend.
package forms

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Validation limits for the auth forms.
const (
	MinPasswordLength = 8
	CodeLength        = 6
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Field identifies the form control a validation error belongs to, so the
// screen can render the message inline next to the offending input.
type Field string

const (
	FieldEmail     Field = "email"
	FieldPassword  Field = "password"
	FieldConfirm   Field = "confirm"
	FieldFirstName Field = "first name"
	FieldLastName  Field = "last name"
	FieldCode      Field = "code"
)

// ValidationError reports a client-side validation failure. It blocks
// submission and is surfaced inline; it never changes wizard state.
type ValidationError struct {
	Field   Field
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field Field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ValidateEmail checks that an email address is present and plausibly shaped.
func ValidateEmail(s string) *ValidationError {
	s = strings.TrimSpace(s)
	if s == "" {
		return invalid(FieldEmail, "email is required")
	}
	if !emailPattern.MatchString(s) {
		return invalid(FieldEmail, "enter a valid email address")
	}
	return nil
}

// ValidatePassword checks the minimum password length.
func ValidatePassword(s string) *ValidationError {
	if s == "" {
		return invalid(FieldPassword, "password is required")
	}
	if len(s) < MinPasswordLength {
		return invalid(FieldPassword, fmt.Sprintf("password must be at least %d characters", MinPasswordLength))
	}
	return nil
}

// ValidateConfirm checks that the confirmation matches the password.
func ValidateConfirm(password, confirm string) *ValidationError {
	if confirm == "" {
		return invalid(FieldConfirm, "confirm your password")
	}
	if confirm != password {
		return invalid(FieldConfirm, "passwords do not match")
	}
	return nil
}

// ValidateName checks a name field: required, and it must start with a
// capital letter.
func ValidateName(field Field, s string) *ValidationError {
	s = strings.TrimSpace(s)
	if s == "" {
		return invalid(field, fmt.Sprintf("%s is required", field))
	}
	runes := []rune(s)
	if !unicode.IsUpper(runes[0]) {
		return invalid(field, fmt.Sprintf("%s must start with a capital letter", field))
	}
	for _, r := range runes[1:] {
		if !unicode.IsLetter(r) && r != '-' && r != '\'' {
			return invalid(field, fmt.Sprintf("%s contains invalid characters", field))
		}
	}
	return nil
}

// ValidateCode checks a verification code: exactly CodeLength digits.
func ValidateCode(s string) *ValidationError {
	if len(s) != CodeLength {
		return invalid(FieldCode, fmt.Sprintf("code must be %d digits", CodeLength))
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return invalid(FieldCode, "code must contain only digits")
		}
	}
	return nil
}

// CodeComplete reports whether a code input has reached submission length.
// The OTP screen auto-submits when this flips true; shorter input never
// triggers a submission.
func CodeComplete(s string) bool {
	return len(s) == CodeLength
}
