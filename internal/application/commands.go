package application

import (
	"strings"

	"github.com/bnema/careerbot/internal/domain"
)

// Credentials is the input of every account operation.
type Credentials struct {
	Email    string
	Password string
}

func (c Credentials) normalized() Credentials {
	return Credentials{Email: strings.TrimSpace(c.Email), Password: c.Password}
}

func (c Credentials) validatePresence() error {
	if c.Email == "" {
		return domain.NewValidationError("Email is required")
	}
	if c.Password == "" {
		return domain.NewValidationError("Password is required")
	}
	return nil
}
