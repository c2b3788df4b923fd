package credentials

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"a@b.com", true},
		{"first.last@sub.example.org", true},
		{"user+tag@example.io", true},
		{"", false},
		{"plainaddress", false},
		{"no-dot@domain", false},
		{"no-at.example.com", false},
		{"@example.com", false},
		{"user@.com", false},
		{"user@example.", false},
		{"a@b@c.com", false},
		{"a@b.com@x", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.in))
		})
	}
}

func TestIsStrongPassword(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		wantOK     bool
		wantReason string
	}{
		{"too short", "short1A", false, ReasonTooShort},
		{"empty", "", false, ReasonTooShort},
		{"no uppercase", "alllowercase1", false, ReasonNoUppercase},
		{"no lowercase", "ALLUPPERCASE1", false, ReasonNoLowercase},
		{"no digit", "NoDigitsHere", false, ReasonNoDigit},
		{"strong", "GoodPass1", true, ReasonStrong},
		{"length checked first", "abc", false, ReasonTooShort},
		{"uppercase checked before digit", "nouppernodigit", false, ReasonNoUppercase},
		{"multibyte counted as characters", "Пароль1Aa", true, ReasonStrong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := IsStrongPassword(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}

func TestIsStrongPassword_ReasonsMentionTheRule(t *testing.T) {
	_, r := IsStrongPassword("short1A")
	assert.Contains(t, r, "characters long")

	_, r = IsStrongPassword("alllowercase1")
	assert.Contains(t, r, "uppercase")

	_, r = IsStrongPassword("NoDigitsHere")
	assert.Contains(t, r, "number")
}

func TestIsStrongPassword_DigitsAreASCII(t *testing.T) {
	ok, reason := IsStrongPassword("Passwordd\u0663")
	assert.False(t, ok)
	assert.Equal(t, ReasonNoDigit, reason)

	ok, _ = IsStrongPassword("Passwordd3")
	assert.True(t, ok)
}
