// Package device holds Switchable and Rechargeable variants.
package device

import (
	"fmt"
	"io"

	"github.com/aalvaropc/solidkit/internal/domain"
	"github.com/aalvaropc/solidkit/internal/ports"
)

type Option func(*io.Writer)

// WithOutput sets where the device prints its status lines.
func WithOutput(w io.Writer) Option {
	return func(out *io.Writer) {
		if w != nil {
			*out = w
		}
	}
}

func output(opts []Option) io.Writer {
	var w io.Writer = io.Discard
	for _, opt := range opts {
		opt(&w)
	}
	return w
}

func emit(w io.Writer, source, action, text string) domain.Event {
	fmt.Fprintln(w, text)
	return domain.Event{Source: source, Action: action, Text: text}
}

// Phone can be switched and recharged. It tracks power and charge state.
type Phone struct {
	out      io.Writer
	on       bool
	charging bool
}

func NewPhone(opts ...Option) *Phone {
	return &Phone{out: output(opts)}
}

func (p *Phone) TurnOn() domain.Event {
	p.on = true
	return emit(p.out, "phone", domain.ActionTurnOn, "Phone is turning on.")
}

func (p *Phone) TurnOff() domain.Event {
	p.on = false
	return emit(p.out, "phone", domain.ActionTurnOff, "Phone is turning off.")
}

func (p *Phone) Charge() domain.Event {
	p.charging = true
	return emit(p.out, "phone", domain.ActionCharge, "Phone is charging.")
}

// On reports the current power state.
func (p *Phone) On() bool { return p.on }

// Charging reports whether Charge has been called.
func (p *Phone) Charging() bool { return p.charging }

// DisposableCamera can be switched but has no rechargeable battery, so it
// does not implement ports.Rechargeable at all.
type DisposableCamera struct {
	out io.Writer
	on  bool
}

func NewDisposableCamera(opts ...Option) *DisposableCamera {
	return &DisposableCamera{out: output(opts)}
}

func (c *DisposableCamera) TurnOn() domain.Event {
	c.on = true
	return emit(c.out, "disposable-camera", domain.ActionTurnOn, "Disposable camera is turning on.")
}

func (c *DisposableCamera) TurnOff() domain.Event {
	c.on = false
	return emit(c.out, "disposable-camera", domain.ActionTurnOff, "Disposable camera is turning off.")
}

func (c *DisposableCamera) On() bool { return c.on }

var (
	_ ports.Switchable   = (*Phone)(nil)
	_ ports.Rechargeable = (*Phone)(nil)
	_ ports.Switchable   = (*DisposableCamera)(nil)
)
