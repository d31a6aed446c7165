package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "valid with trailing uppercase", password: "password12A", valid: true},
		{name: "valid with leading uppercase", password: "Passw0rd1", valid: true},
		{name: "valid at minimum length", password: "abcdeF12", valid: true},
		{name: "valid at maximum length", password: "abcdefghi1J2", valid: true},
		{name: "empty", password: "", valid: false},
		{name: "too short", password: "short1A", valid: false},
		{name: "too long", password: "abcdefghijk12M", valid: false},
		{name: "two uppercase letters", password: "MaNyUpp12", valid: false},
		{name: "no uppercase letter", password: "password12", valid: false},
		{name: "three digits", password: "Abcdef123", valid: false},
		{name: "one digit", password: "Abcdefgh1", valid: false},
		{name: "no digits", password: "Abcdefghij", valid: false},
		{name: "contains whitespace", password: "Abc def12", valid: false},
		{name: "contains punctuation", password: "Abcdef12!", valid: false},
		{name: "contains non-ascii letter", password: "Abcdéf12x", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidPassword(tt.password))
		})
	}
}
