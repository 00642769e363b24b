package domain

import (
	"strings"
	"time"
)

// Validation is the outcome of checking a registration request.
// Reason is empty when Valid is true.
type Validation struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// Accept returns a passing validation.
func Accept() Validation {
	return Validation{Valid: true}
}

// Reject returns a failing validation carrying a reason.
func Reject(reason string) Validation {
	return Validation{Valid: false, Reason: reason}
}

// OutcomeStatus is the terminal state of one registration pipeline run.
type OutcomeStatus string

const (
	OutcomeRejected          OutcomeStatus = "rejected"
	OutcomePersistedNotified OutcomeStatus = "persisted_notified"
)

// Outcome is what the registration pipeline reports to its caller.
// A rejection is an expected result, not an error.
type Outcome struct {
	Status     OutcomeStatus `json:"status"`
	Reason     string        `json:"reason,omitempty"`
	Identifier string        `json:"identifier,omitempty"`
}

// Accepted reports whether the pipeline persisted and notified.
func (o Outcome) Accepted() bool {
	return o.Status == OutcomePersistedNotified
}

// IdentifierFor derives the notification identifier from a primary input.
func IdentifierFor(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Registration is a stored user record. The plaintext password never
// leaves the store.
type Registration struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
