package usecase

import (
	"github.com/aalvaropc/solidkit/internal/capability"
	"github.com/aalvaropc/solidkit/internal/dispatch"
	"github.com/aalvaropc/solidkit/internal/domain"
	"github.com/aalvaropc/solidkit/internal/ports"
)

// OperateDevice holds a device through its Switchable capability only.
// Recharging needs the separate Rechargeable capability, which is probed
// on the bound value before use.
type OperateDevice struct {
	device  ports.Switchable
	turnOn  *dispatch.Dispatcher[ports.Switchable, struct{}, domain.Event]
	turnOff *dispatch.Dispatcher[ports.Switchable, struct{}, domain.Event]
	opts    []dispatch.Option
}

func NewOperateDevice(device ports.Switchable, opts ...dispatch.Option) *OperateDevice {
	return &OperateDevice{
		device:  device,
		turnOn:  dispatch.New("device.turn_on", dispatch.Nullary(ports.Switchable.TurnOn), device, opts...),
		turnOff: dispatch.New("device.turn_off", dispatch.Nullary(ports.Switchable.TurnOff), device, opts...),
		opts:    opts,
	}
}

func (uc *OperateDevice) TurnOn() (domain.Event, error) {
	return uc.turnOn.Invoke(struct{}{})
}

func (uc *OperateDevice) TurnOff() (domain.Event, error) {
	return uc.turnOff.Invoke(struct{}{})
}

// PowerCycle turns the device on and then off.
func (uc *OperateDevice) PowerCycle() ([]domain.Event, error) {
	on, err := uc.TurnOn()
	if err != nil {
		return nil, err
	}
	off, err := uc.TurnOff()
	if err != nil {
		return []domain.Event{on}, err
	}
	return []domain.Event{on, off}, nil
}

// CanRecharge reports whether the bound device also satisfies Rechargeable.
func (uc *OperateDevice) CanRecharge() bool {
	_, ok := capability.As[ports.Rechargeable](uc.device)
	return ok
}

// Recharge charges the device when it is Rechargeable and fails with
// domain.KindUnsupportedCapability otherwise. Nothing is invoked on failure.
func (uc *OperateDevice) Recharge() (domain.Event, error) {
	if dispatch.Unbound(uc.device) {
		return domain.Event{}, domain.InvalidBinding("dispatch.device.charge", "capability is nil")
	}
	r, err := capability.Require[ports.Rechargeable]("usecase.operate_device", uc.device)
	if err != nil {
		return domain.Event{}, err
	}
	return dispatch.Invoke("device.charge", dispatch.Nullary(ports.Rechargeable.Charge), r, struct{}{}, uc.opts...)
}
