package ports

import "github.com/aalvaropc/solidkit/internal/domain"

// Switchable is implemented by every device that can be powered on and off.
// Variants may keep power state; repeating TurnOn or TurnOff leaves that
// state unchanged and reports the same event again.
type Switchable interface {
	TurnOn() domain.Event
	TurnOff() domain.Event
}

// Rechargeable is implemented only by devices with a replaceable energy source.
// It is deliberately separate from Switchable: a disposable camera switches
// but never charges.
type Rechargeable interface {
	Charge() domain.Event
}
