package ports

import "github.com/aalvaropc/solidkit/internal/domain"

// PaymentMethod charges an amount. Every implementation accepts any
// non-negative amount.
type PaymentMethod interface {
	Pay(amount domain.Money) (domain.Receipt, error)
}
