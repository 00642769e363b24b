package notify

import (
	"log/slog"

	"github.com/aalvaropc/solidkit/internal/app/template"
	"github.com/aalvaropc/solidkit/internal/dispatch"
	"github.com/aalvaropc/solidkit/internal/domain"
	"github.com/aalvaropc/solidkit/internal/infra/logger"
	"github.com/aalvaropc/solidkit/internal/ports"
)

// Welcome adapts any Notification channel into a ports.UserNotifier.
// UserNotifier has no error channel, so delivery failures are logged.
type Welcome struct {
	channel  ports.Notification
	template string
	log      *slog.Logger
}

type WelcomeOption func(*Welcome)

// WithTemplate sets the message template; {{identifier}} is replaced with
// the registered identifier. Empty keeps the default.
func WithTemplate(tmpl string) WelcomeOption {
	return func(w *Welcome) {
		if tmpl != "" {
			w.template = tmpl
		}
	}
}

func NewWelcome(channel ports.Notification, opts ...WelcomeOption) *Welcome {
	w := &Welcome{
		channel:  channel,
		template: domain.DefaultWelcomeTemplate,
		log:      logger.For("notify.welcome"),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

var _ ports.UserNotifier = (*Welcome)(nil)

func (w *Welcome) Notify(identifier string) {
	msg, err := template.RenderString(w.template, map[string]string{"identifier": identifier})
	if err != nil {
		w.log.Error("welcome.render_failed", "identifier", identifier, "error", err)
		return
	}
	if _, err := dispatch.Invoke("notify.welcome", ports.Notification.Send, w.channel, msg, dispatch.WithLogger(w.log)); err != nil {
		w.log.Error("welcome.failed", "identifier", identifier, "error", err)
	}
}
