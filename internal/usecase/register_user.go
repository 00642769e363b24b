package usecase

import (
	"log/slog"

	"github.com/aalvaropc/solidkit/internal/dispatch"
	"github.com/aalvaropc/solidkit/internal/domain"
	"github.com/aalvaropc/solidkit/internal/infra/logger"
	"github.com/aalvaropc/solidkit/internal/ports"
)

// RegisterUser runs validate -> persist -> notify over injected collaborators.
// It never constructs a collaborator and keeps no state between calls.
type RegisterUser struct {
	validator ports.UserValidator
	store     ports.UserStore
	notifier  ports.UserNotifier
	log       *slog.Logger
}

type RegisterOption func(*RegisterUser)

func WithRegisterLogger(l *slog.Logger) RegisterOption {
	return func(uc *RegisterUser) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewRegisterUser(v ports.UserValidator, s ports.UserStore, n ports.UserNotifier, opts ...RegisterOption) *RegisterUser {
	uc := &RegisterUser{
		validator: v,
		store:     s,
		notifier:  n,
		log:       logger.For("register"),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute validates the inputs and, only when they pass, saves them and then
// notifies the identifier derived from email. A rejection is returned as an
// Outcome with a nil error.
//
// Save and Notify have no error channel; if notification misbehaves after a
// successful save nothing is rolled back.
func (uc *RegisterUser) Execute(email, password string) (domain.Outcome, error) {
	if err := uc.checkBindings(); err != nil {
		return domain.Outcome{}, err
	}

	v := uc.validator.IsValid(email, password)
	if !v.Valid {
		uc.log.Info("register.rejected", "reason", v.Reason)
		return domain.Outcome{Status: domain.OutcomeRejected, Reason: v.Reason}, nil
	}

	id := domain.IdentifierFor(email)

	uc.store.Save(email, password)
	uc.notifier.Notify(id)

	uc.log.Info("register.accepted", "identifier", id)
	return domain.Outcome{Status: domain.OutcomePersistedNotified, Identifier: id}, nil
}

func (uc *RegisterUser) checkBindings() error {
	const op = "usecase.register_user"
	switch {
	case uc == nil:
		return domain.InvalidBinding(op, "usecase is nil")
	case dispatch.Unbound(uc.validator):
		return domain.InvalidBinding(op, "validator is nil")
	case dispatch.Unbound(uc.store):
		return domain.InvalidBinding(op, "store is nil")
	case dispatch.Unbound(uc.notifier):
		return domain.InvalidBinding(op, "notifier is nil")
	}
	return nil
}
