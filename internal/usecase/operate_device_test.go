package usecase

import (
	"bytes"
	"testing"

	"github.com/aalvaropc/solidkit/internal/domain"
	"github.com/aalvaropc/solidkit/internal/infra/device"
	"github.com/aalvaropc/solidkit/internal/ports"
)

func TestOperateDevice_PhoneRecharges(t *testing.T) {
	var buf bytes.Buffer
	phone := device.NewPhone(device.WithOutput(&buf))
	uc := NewOperateDevice(phone)

	if _, err := uc.TurnOn(); err != nil {
		t.Fatalf("TurnOn error: %v", err)
	}
	if !uc.CanRecharge() {
		t.Fatalf("phone must be rechargeable")
	}
	ev, err := uc.Recharge()
	if err != nil {
		t.Fatalf("Recharge error: %v", err)
	}
	if ev.Action != domain.ActionCharge || !phone.Charging() {
		t.Fatalf("expected phone charging, got %+v", ev)
	}
	if buf.String() != "Phone is turning on.\nPhone is charging.\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

// TestOperateDevice_CameraRechargeIsUnsupported covers the original device
// driver's last call: charging a disposable camera fails with a named
// condition instead of a runtime exception.
func TestOperateDevice_CameraRechargeIsUnsupported(t *testing.T) {
	var buf bytes.Buffer
	uc := NewOperateDevice(device.NewDisposableCamera(device.WithOutput(&buf)))

	if _, err := uc.TurnOn(); err != nil {
		t.Fatalf("TurnOn error: %v", err)
	}
	if uc.CanRecharge() {
		t.Fatalf("camera must not be rechargeable")
	}

	_, err := uc.Recharge()
	if !domain.IsKind(err, domain.KindUnsupportedCapability) {
		t.Fatalf("expected KindUnsupportedCapability, got %v", err)
	}
	if buf.String() != "Disposable camera is turning on.\n" {
		t.Fatalf("nothing may run after a failed probe, got %q", buf.String())
	}
}

func TestOperateDevice_PowerCycle(t *testing.T) {
	for _, d := range []ports.Switchable{device.NewPhone(), device.NewDisposableCamera()} {
		events, err := NewOperateDevice(d).PowerCycle()
		if err != nil {
			t.Fatalf("%T: unexpected error: %v", d, err)
		}
		if len(events) != 2 || events[0].Action != domain.ActionTurnOn || events[1].Action != domain.ActionTurnOff {
			t.Fatalf("%T: unexpected events %+v", d, events)
		}
	}
}

func TestOperateDevice_Unbound(t *testing.T) {
	uc := NewOperateDevice(nil)

	if _, err := uc.PowerCycle(); !domain.IsKind(err, domain.KindInvalidBinding) {
		t.Fatalf("expected KindInvalidBinding from PowerCycle, got %v", err)
	}
	if _, err := uc.Recharge(); !domain.IsKind(err, domain.KindInvalidBinding) {
		t.Fatalf("expected KindInvalidBinding from Recharge, got %v", err)
	}
	if uc.CanRecharge() {
		t.Fatalf("nil device cannot recharge")
	}
}
