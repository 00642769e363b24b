package domain

import "fmt"

// Money is an amount in the caller's currency unit.
type Money float64

func (m Money) String() string {
	return fmt.Sprintf("%.2f", float64(m))
}

// Receipt is what a payment method reports after charging an amount.
type Receipt struct {
	Method  string `json:"method"`
	Amount  Money  `json:"amount"`
	Message string `json:"message"`
}
