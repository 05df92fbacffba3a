package services

import (
	"errors"
	"unicode"
)

var ErrInvalidAccessCode = errors.New("access code must be 6 to 10 digits")

const (
	accessCodeMinLength = 6
	accessCodeMaxLength = 10
)

// ValidateAccessCode enforces the login-code format: digits only,
// between 6 and 10 characters. Violations fail before any write.
func ValidateAccessCode(accessCode string) error {
	if len(accessCode) < accessCodeMinLength || len(accessCode) > accessCodeMaxLength {
		return ErrInvalidAccessCode
	}
	for _, char := range accessCode {
		if !unicode.IsDigit(char) || char > '9' {
			return ErrInvalidAccessCode
		}
	}
	return nil
}
