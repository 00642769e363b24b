package usecase

import (
	"fmt"
	"math"

	"github.com/aalvaropc/solidkit/internal/dispatch"
	"github.com/aalvaropc/solidkit/internal/domain"
	"github.com/aalvaropc/solidkit/internal/ports"
)

// ProcessPayment charges amounts through whichever PaymentMethod it was
// built with. It depends on the capability only.
type ProcessPayment struct {
	d *dispatch.Dispatcher[ports.PaymentMethod, domain.Money, domain.Receipt]
}

func NewProcessPayment(method ports.PaymentMethod, opts ...dispatch.Option) *ProcessPayment {
	return &ProcessPayment{
		d: dispatch.New("payment", ports.PaymentMethod.Pay, method, opts...),
	}
}

// Execute rejects negative or non-finite amounts before dispatch, the same
// way for every method, then delegates.
func (uc *ProcessPayment) Execute(amount domain.Money) (domain.Receipt, error) {
	f := float64(amount)
	if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return domain.Receipt{}, &domain.OpError{
			Op:   "usecase.process_payment",
			Kind: domain.KindInvalidInput,
			Err:  fmt.Errorf("%w: amount %v", domain.ErrInvalidInput, f),
		}
	}
	return uc.d.Invoke(amount)
}
