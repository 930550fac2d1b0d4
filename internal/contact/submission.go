package contact

import "strings"

// Submission is one contact form payload. It lives for a single request.
type Submission struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Message   string `json:"message"`
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
// Inner whitespace, including message newlines, is kept.
func (s Submission) Trimmed() Submission {
	return Submission{
		FirstName: strings.TrimSpace(s.FirstName),
		LastName:  strings.TrimSpace(s.LastName),
		Email:     strings.TrimSpace(s.Email),
		Message:   strings.TrimSpace(s.Message),
	}
}

// FullName joins first and last name.
func (s Submission) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

// MissingFields returns the JSON names of fields that are empty after
// trimming. The form uses it before anything is sent.
func (s Submission) MissingFields() []string {
	return s.Trimmed().EmptyFields()
}

// EmptyFields returns the JSON names of fields that are the empty string.
// Whitespace counts as content.
func (s Submission) EmptyFields() []string {
	var missing []string
	if s.FirstName == "" {
		missing = append(missing, "firstName")
	}
	if s.LastName == "" {
		missing = append(missing, "lastName")
	}
	if s.Email == "" {
		missing = append(missing, "email")
	}
	if s.Message == "" {
		missing = append(missing, "message")
	}
	return missing
}
