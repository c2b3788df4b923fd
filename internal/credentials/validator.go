// Package credentials holds the pure checks applied to sign-up input.
package credentials

import (
	"regexp"
	"unicode/utf8"
)

const MinPasswordLength = 8

// Reasons returned by IsStrongPassword.
const (
	ReasonTooShort    = "Password must be at least 8 characters long"
	ReasonNoUppercase = "Password must contain at least one uppercase letter"
	ReasonNoLowercase = "Password must contain at least one lowercase letter"
	ReasonNoDigit     = "Password must contain at least one number"
	ReasonStrong      = "Password is strong"
)

var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// IsValidEmail is a structural check only: something, '@', something, '.',
// something, with no further '@'.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsStrongPassword returns ok=false with the first failing rule's reason.
// Letter and digit classes are ASCII only.
func IsStrongPassword(s string) (bool, string) {
	if utf8.RuneCountInString(s) < MinPasswordLength {
		return false, ReasonTooShort
	}

	var upper, lower, digit bool
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}

	switch {
	case !upper:
		return false, ReasonNoUppercase
	case !lower:
		return false, ReasonNoLowercase
	case !digit:
		return false, ReasonNoDigit
	}
	return true, ReasonStrong
}
