// Package payment holds the PaymentMethod variants.
package payment

import (
	"fmt"
	"io"

	"github.com/aalvaropc/solidkit/internal/domain"
	"github.com/aalvaropc/solidkit/internal/ports"
)

type Option func(*base)

// WithOutput sets where the variant prints its confirmation line.
func WithOutput(w io.Writer) Option {
	return func(b *base) {
		if w != nil {
			b.out = w
		}
	}
}

type base struct {
	out io.Writer
}

func newBase(opts []Option) base {
	b := base{out: io.Discard}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func (b base) receipt(method, verb string, amount domain.Money) domain.Receipt {
	msg := fmt.Sprintf("Processing %s payment of $%s", verb, amount)
	fmt.Fprintln(b.out, msg)
	return domain.Receipt{Method: method, Amount: amount, Message: msg}
}

// CreditCard charges a credit card.
type CreditCard struct{ base }

func NewCreditCard(opts ...Option) *CreditCard {
	return &CreditCard{base: newBase(opts)}
}

func (c *CreditCard) Pay(amount domain.Money) (domain.Receipt, error) {
	return c.receipt("credit-card", "credit card", amount), nil
}

// PayPal charges a PayPal account.
type PayPal struct{ base }

func NewPayPal(opts ...Option) *PayPal {
	return &PayPal{base: newBase(opts)}
}

func (p *PayPal) Pay(amount domain.Money) (domain.Receipt, error) {
	return p.receipt("paypal", "PayPal", amount), nil
}

// Crypto charges a crypto wallet.
type Crypto struct{ base }

func NewCrypto(opts ...Option) *Crypto {
	return &Crypto{base: newBase(opts)}
}

func (c *Crypto) Pay(amount domain.Money) (domain.Receipt, error) {
	return c.receipt("crypto", "cryptocurrency", amount), nil
}

var (
	_ ports.PaymentMethod = (*CreditCard)(nil)
	_ ports.PaymentMethod = (*PayPal)(nil)
	_ ports.PaymentMethod = (*Crypto)(nil)
)
