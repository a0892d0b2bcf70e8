package session

import (
	"strings"
	"unicode/utf8"

	"github.com/artfox/nanogallery-backend/internal/domain"
)

// CredentialsInput holds parameters for Register and Login.
type CredentialsInput struct {
	Username string
	Password string
}

// Validate validates the credentials input.
func (i CredentialsInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Username) == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	} else if utf8.RuneCountInString(i.Username) > 64 {
		errs = append(errs, domain.FieldError{Field: "username", Message: "too long"})
	}

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) > 256 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
