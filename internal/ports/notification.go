package ports

import "github.com/aalvaropc/solidkit/internal/domain"

// Notification delivers a message over one channel (email, SMS, push...).
// An empty message is a valid message.
type Notification interface {
	Send(message string) (domain.Delivery, error)
}
