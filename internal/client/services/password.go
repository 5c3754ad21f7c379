package services

import (
	"strings"
	"unicode"

	"github.com/truthguard/truthguard/internal/common"
)

// ValidationError is a client-detected input error raised before any network
// call. It matches common.ErrorValidation under errors.Is and carries the
// exact message to display.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == common.ErrorValidation }

// passwordSymbols is the punctuation set accepted by the registration policy.
const passwordSymbols = `!@#$%^&*(),.?":{}|<>`

// ValidatePassword enforces the registration password policy. Rules are
// checked in a fixed order (length, uppercase, lowercase, digit, symbol) and
// only the first violated rule is reported per attempt.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return &ValidationError{Message: "Password must be at least 8 characters long"}
	}
	if !strings.ContainsFunc(password, unicode.IsUpper) {
		return &ValidationError{Message: "Password must contain at least one uppercase letter"}
	}
	if !strings.ContainsFunc(password, unicode.IsLower) {
		return &ValidationError{Message: "Password must contain at least one lowercase letter"}
	}
	if !strings.ContainsFunc(password, unicode.IsDigit) {
		return &ValidationError{Message: "Password must contain at least one number"}
	}
	if !strings.ContainsAny(password, passwordSymbols) {
		return &ValidationError{Message: "Password must contain at least one special character"}
	}
	return nil
}
