package catalog

import (
	"io"

	"github.com/aalvaropc/solidkit/internal/infra/animal"
	"github.com/aalvaropc/solidkit/internal/infra/device"
	"github.com/aalvaropc/solidkit/internal/infra/notify"
	"github.com/aalvaropc/solidkit/internal/infra/payment"
	"github.com/aalvaropc/solidkit/internal/ports"
)

// Variants is the set of catalogs the CLI and scenario runner choose from.
type Variants struct {
	Payments      *Catalog[ports.PaymentMethod]
	Notifications *Catalog[ports.Notification]
	Devices       *Catalog[ports.Switchable]
	Animals       *Catalog[ports.Soundable]
}

var _ ports.VariantSource = (*Variants)(nil)

// Default registers every built-in variant. Each prints to out.
func Default(out io.Writer) *Variants {
	v := &Variants{
		Payments:      New[ports.PaymentMethod]("payment"),
		Notifications: New[ports.Notification]("notification"),
		Devices:       New[ports.Switchable]("device"),
		Animals:       New[ports.Soundable]("animal"),
	}

	mustRegister(v.Payments, "credit-card", func() ports.PaymentMethod { return payment.NewCreditCard(payment.WithOutput(out)) })
	mustRegister(v.Payments, "paypal", func() ports.PaymentMethod { return payment.NewPayPal(payment.WithOutput(out)) })
	mustRegister(v.Payments, "crypto", func() ports.PaymentMethod { return payment.NewCrypto(payment.WithOutput(out)) })

	mustRegister(v.Notifications, "email", func() ports.Notification { return notify.NewEmail(notify.WithOutput(out)) })
	mustRegister(v.Notifications, "sms", func() ports.Notification { return notify.NewSMS(notify.WithOutput(out)) })
	mustRegister(v.Notifications, "push", func() ports.Notification { return notify.NewPush(notify.WithOutput(out)) })

	mustRegister(v.Devices, "phone", func() ports.Switchable { return device.NewPhone(device.WithOutput(out)) })
	mustRegister(v.Devices, "disposable-camera", func() ports.Switchable { return device.NewDisposableCamera(device.WithOutput(out)) })

	mustRegister(v.Animals, "dog", func() ports.Soundable { return animal.NewDog(animal.WithOutput(out)) })
	mustRegister(v.Animals, "fish", func() ports.Soundable { return animal.NewFish(animal.WithOutput(out)) })

	return v
}

// mustRegister panics on duplicate built-in names; that is a programming error.
func mustRegister[C any](c *Catalog[C], name string, ctor func() C) {
	if err := c.Register(name, ctor); err != nil {
		panic(err)
	}
}

func (v *Variants) PaymentMethod(name string) (ports.PaymentMethod, error) {
	return v.Payments.Lookup(name)
}

func (v *Variants) Notification(name string) (ports.Notification, error) {
	return v.Notifications.Lookup(name)
}

func (v *Variants) Device(name string) (ports.Switchable, error) {
	return v.Devices.Lookup(name)
}

func (v *Variants) Animal(name string) (ports.Soundable, error) {
	return v.Animals.Lookup(name)
}
