// Package dispatch invokes an operation through a capability reference
// without knowing which concrete variant sits behind it.
//
// An Operation is usually a method expression over a capability interface:
//
//	d := dispatch.New("payment", ports.PaymentMethod.Pay, method)
//	receipt, err := d.Invoke(150)
//
// The dispatcher never branches on the variant; behaviour selection is
// ordinary dynamic dispatch through the interface value.
package dispatch

import (
	"log/slog"
	"reflect"

	"github.com/aalvaropc/solidkit/internal/domain"
	"github.com/aalvaropc/solidkit/internal/infra/logger"
)

// Operation calls one method of capability C.
type Operation[C, In, Out any] func(C, In) (Out, error)

// Nullary adapts a method without arguments or error, e.g. ports.Switchable.TurnOn.
func Nullary[C, Out any](f func(C) Out) Operation[C, struct{}, Out] {
	if f == nil {
		return nil
	}
	return func(c C, _ struct{}) (Out, error) {
		return f(c), nil
	}
}

// Infallible adapts a method that takes an argument but cannot fail.
func Infallible[C, In, Out any](f func(C, In) Out) Operation[C, In, Out] {
	if f == nil {
		return nil
	}
	return func(c C, in In) (Out, error) {
		return f(c, in), nil
	}
}

// Dispatcher is bound to exactly one capability reference for its lifetime.
// It holds no other state; one instance per use-case.
type Dispatcher[C, In, Out any] struct {
	name       string
	op         Operation[C, In, Out]
	capability C
	log        *slog.Logger
}

type Option func(*options)

type options struct {
	log *slog.Logger
}

// WithLogger overrides the process logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// New binds op to capability. A nil capability is accepted here and
// reported by Invoke, so construction never panics.
func New[C, In, Out any](name string, op Operation[C, In, Out], capability C, opts ...Option) *Dispatcher[C, In, Out] {
	o := options{log: logger.L()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Dispatcher[C, In, Out]{
		name:       name,
		op:         op,
		capability: capability,
		log:        o.log,
	}
}

// Invoke delegates to the bound capability.
// It fails with domain.KindInvalidBinding before any delegation when the
// dispatcher, its operation or its capability is missing.
func (d *Dispatcher[C, In, Out]) Invoke(in In) (Out, error) {
	var zero Out
	if d == nil {
		return zero, domain.InvalidBinding("dispatch", "dispatcher is nil")
	}
	op := "dispatch." + d.name
	if d.op == nil {
		return zero, domain.InvalidBinding(op, "operation is nil")
	}
	if Unbound(d.capability) {
		return zero, domain.InvalidBinding(op, "capability is nil")
	}

	d.log.Debug("dispatch.invoke", "name", d.name, "variant", variantName(d.capability))
	out, err := d.op(d.capability, in)
	if err != nil {
		d.log.Debug("dispatch.failed", "name", d.name, "error", err)
		return zero, err
	}
	return out, nil
}

// Name returns the label used in errors and logs.
func (d *Dispatcher[C, In, Out]) Name() string {
	if d == nil {
		return ""
	}
	return d.name
}

// Invoke is the per-call form: bind capability, run op once, discard the binding.
func Invoke[C, In, Out any](name string, op Operation[C, In, Out], capability C, in In, opts ...Option) (Out, error) {
	return New(name, op, capability, opts...).Invoke(in)
}

// Unbound reports whether v is a nil interface or an interface holding a
// nil pointer, map, slice, func or chan.
func Unbound(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func variantName(v any) string {
	return reflect.TypeOf(v).String()
}
