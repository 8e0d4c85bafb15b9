// Package validate holds the authoritative server-side validation rules for
// contact-form submissions. The frontend duplicates these bounds for instant
// feedback, but acceptance is decided here only.
package validate

import (
	"regexp"
	"strings"

	"github.com/studioform/backend/internal/model"
)

const (
	NameMinLen    = 2
	NameMaxLen    = 100
	EmailMaxLen   = 255
	PhoneMaxLen   = 20
	MessageMinLen = 10
	MessageMaxLen = 5000
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// 7-15 digits, optional leading +, after spaces/dashes/parentheses are removed.
	phoneRe = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

	scriptBlockRe  = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	eventHandlerRe = regexp.MustCompile(`(?i)on\w+\s*=\s*("[^"]*"|'[^']*')`)

	phoneStripRe = regexp.MustCompile(`[\s\-()]`)
)

// ContactForm is the raw, well-typed request body before validation.
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}

// ContactSubmission checks the raw form against the field rules and returns
// one error per violated field, in field order. A nil return means the form
// is acceptable.
func ContactSubmission(form ContactForm) []model.FieldError {
	var errs []model.FieldError

	name := strings.TrimSpace(form.Name)
	switch {
	case len([]rune(name)) < NameMinLen:
		errs = append(errs, model.FieldError{Field: "name", Message: "Name must be at least 2 characters"})
	case len([]rune(name)) > NameMaxLen:
		errs = append(errs, model.FieldError{Field: "name", Message: "Name must be less than 100 characters"})
	}

	email := strings.TrimSpace(form.Email)
	switch {
	case email == "" || !emailRe.MatchString(email):
		errs = append(errs, model.FieldError{Field: "email", Message: "Please enter a valid email address"})
	case len(email) > EmailMaxLen:
		errs = append(errs, model.FieldError{Field: "email", Message: "Email must be less than 255 characters"})
	}

	if phone := strings.TrimSpace(form.Phone); phone != "" {
		if len([]rune(phone)) > PhoneMaxLen {
			errs = append(errs, model.FieldError{Field: "phone", Message: "Phone number must be less than 20 characters"})
		} else if !phoneRe.MatchString(phoneStripRe.ReplaceAllString(phone, "")) {
			errs = append(errs, model.FieldError{Field: "phone", Message: "Please enter a valid phone number"})
		}
	}

	message := strings.TrimSpace(form.Message)
	switch {
	case len([]rune(message)) < MessageMinLen:
		errs = append(errs, model.FieldError{Field: "message", Message: "Message must be at least 10 characters"})
	case len([]rune(message)) > MessageMaxLen:
		errs = append(errs, model.FieldError{Field: "message", Message: "Message must be less than 5000 characters"})
	case scriptBlockRe.MatchString(message) || eventHandlerRe.MatchString(message):
		errs = append(errs, model.FieldError{Field: "message", Message: "Message contains invalid content"})
	}

	return errs
}
