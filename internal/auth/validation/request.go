// Package validation holds the explicit request validation pass. Each check
// appends a (field, message) pair; the handler renders one error entry per
// pair.
package validation

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/pablozoani/gl-exercise/internal/auth/dto"
)

type FieldError struct {
	Field   string
	Message string
}

// ValidateSignUp checks a sign-up request and returns every violation found.
// An empty slice means the request is well formed.
func ValidateSignUp(req dto.SignUpRequest) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(req.Email) == "" {
		errs = append(errs, FieldError{Field: "email", Message: "Email is required"})
	} else if _, err := mail.ParseAddress(req.Email); err != nil {
		errs = append(errs, FieldError{Field: "email", Message: "Invalid email format"})
	}

	if !ValidPassword(req.Password) {
		errs = append(errs, FieldError{Field: "password", Message: PasswordMessage})
	}

	for i, phone := range req.Phones {
		field := fmt.Sprintf("phones[%d]", i)

		if phone == nil {
			errs = append(errs, FieldError{Field: field, Message: "A phone cannot be null"})
			continue
		}

		if phone.Number == nil {
			errs = append(errs, FieldError{Field: field + ".number", Message: "Phone number is required"})
		}
		if phone.CityCode == nil {
			errs = append(errs, FieldError{Field: field + ".cityCode", Message: "Phone city code is required"})
		}
		if phone.CountryCode == nil || strings.TrimSpace(*phone.CountryCode) == "" {
			errs = append(errs, FieldError{Field: field + ".countryCode", Message: "Phone country code is required"})
		}
	}

	return errs
}
