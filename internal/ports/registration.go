package ports

import "github.com/aalvaropc/solidkit/internal/domain"

// UserValidator decides whether a registration request may proceed.
type UserValidator interface {
	IsValid(email, password string) domain.Validation
}

// UserStore records an accepted registration. It has no error channel.
type UserStore interface {
	Save(email, password string)
}

// UserNotifier tells a newly registered user about their account.
type UserNotifier interface {
	Notify(identifier string)
}
