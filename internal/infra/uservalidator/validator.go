// Package uservalidator checks registration requests: a well-formed email
// and a password of at least the configured length that bcrypt can still hash.
package uservalidator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/asaskevich/govalidator"

	"github.com/aalvaropc/solidkit/internal/domain"
	"github.com/aalvaropc/solidkit/internal/ports"
)

const DefaultMinPasswordLength = 8

// MaxPasswordBytes is the longest password bcrypt can hash.
const MaxPasswordBytes = 72

type Validator struct {
	minPasswordLength int
}

type Option func(*Validator)

// WithMinPasswordLength overrides the minimum password length (in runes).
// Values below 1 are ignored.
func WithMinPasswordLength(n int) Option {
	return func(v *Validator) {
		if n > 0 {
			v.minPasswordLength = n
		}
	}
}

func New(opts ...Option) *Validator {
	v := &Validator{minPasswordLength: DefaultMinPasswordLength}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

var _ ports.UserValidator = (*Validator)(nil)

func (v *Validator) IsValid(email, password string) domain.Validation {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.Reject("email is required")
	}
	if !govalidator.IsEmail(email) {
		return domain.Reject(fmt.Sprintf("email %q is not well-formed", email))
	}
	if n := utf8.RuneCountInString(password); n < v.minPasswordLength {
		return domain.Reject(fmt.Sprintf("password must be at least %d characters, got %d", v.minPasswordLength, n))
	}
	if n := len(password); n > MaxPasswordBytes {
		return domain.Reject(fmt.Sprintf("password must be at most %d bytes, got %d", MaxPasswordBytes, n))
	}
	return domain.Accept()
}
