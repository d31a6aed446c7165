package validation

// PasswordMessage is the detail reported for any password policy violation.
const PasswordMessage = "Password must contain exactly 1 uppercase letter, 2 numbers, other " +
	"characters must be lowercase, and length between 8-12 characters"

// ValidPassword reports whether the candidate satisfies the password policy:
// length between 8 and 12, exactly one uppercase ASCII letter, exactly two
// decimal digits, and every remaining character a lowercase ASCII letter.
func ValidPassword(password string) bool {
	if len(password) < 8 || len(password) > 12 {
		return false
	}

	uppercase := false
	digits := 0

	for _, c := range password {
		switch {
		case c >= 'A' && c <= 'Z':
			if uppercase {
				return false
			}
			uppercase = true
		case c >= '0' && c <= '9':
			if digits == 2 {
				return false
			}
			digits++
		case c < 'a' || c > 'z':
			return false
		}
	}

	return uppercase && digits == 2
}
