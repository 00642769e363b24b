// Package notify holds the Notification variants and the welcome notifier
// used by user registration.
package notify

import (
	"fmt"
	"io"

	"github.com/aalvaropc/solidkit/internal/domain"
	"github.com/aalvaropc/solidkit/internal/ports"
)

type Option func(*channel)

// WithOutput sets where the channel prints what it sends.
func WithOutput(w io.Writer) Option {
	return func(c *channel) {
		if w != nil {
			c.out = w
		}
	}
}

type channel struct {
	name  string
	label string
	out   io.Writer
}

func newChannel(name, label string, opts []Option) channel {
	c := channel{name: name, label: label, out: io.Discard}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c channel) send(message string) domain.Delivery {
	text := fmt.Sprintf("Sending %s: %s", c.label, message)
	fmt.Fprintln(c.out, text)
	return domain.Delivery{Channel: c.name, Message: message, Text: text}
}

type Email struct{ channel }

func NewEmail(opts ...Option) *Email {
	return &Email{channel: newChannel("email", "Email", opts)}
}

func (e *Email) Send(message string) (domain.Delivery, error) {
	return e.send(message), nil
}

type SMS struct{ channel }

func NewSMS(opts ...Option) *SMS {
	return &SMS{channel: newChannel("sms", "SMS", opts)}
}

func (s *SMS) Send(message string) (domain.Delivery, error) {
	return s.send(message), nil
}

type Push struct{ channel }

func NewPush(opts ...Option) *Push {
	return &Push{channel: newChannel("push", "Push Notification", opts)}
}

func (p *Push) Send(message string) (domain.Delivery, error) {
	return p.send(message), nil
}

var (
	_ ports.Notification = (*Email)(nil)
	_ ports.Notification = (*SMS)(nil)
	_ ports.Notification = (*Push)(nil)
)
