package contact

import "regexp"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether email has the local@domain.tld shape. It does
// not check that the domain exists.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// Validate runs the server checks in order on the values as received:
// presence, then email format. Padding is not stripped here, so an address
// with surrounding whitespace is invalid.
func Validate(s Submission) error {
	if missing := s.EmptyFields(); len(missing) > 0 {
		return &ValidationError{Reason: ReasonMissingFields, Fields: missing}
	}
	if !ValidEmail(s.Email) {
		return &ValidationError{Reason: ReasonInvalidEmail, Fields: []string{"email"}}
	}
	return nil
}
