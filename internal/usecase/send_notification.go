package usecase

import (
	"log/slog"

	"github.com/aalvaropc/solidkit/internal/dispatch"
	"github.com/aalvaropc/solidkit/internal/domain"
	"github.com/aalvaropc/solidkit/internal/infra/logger"
	"github.com/aalvaropc/solidkit/internal/ports"
)

// SendNotification binds a channel per call: the caller picks the channel
// each time it sends.
type SendNotification struct {
	log *slog.Logger
}

func NewSendNotification() *SendNotification {
	return &SendNotification{log: logger.For("notify")}
}

func (uc *SendNotification) Execute(channel ports.Notification, message string) (domain.Delivery, error) {
	return dispatch.Invoke("notification", ports.Notification.Send, channel, message, dispatch.WithLogger(uc.log))
}
