package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/solidkit/internal/domain"
	"github.com/aalvaropc/solidkit/internal/infra/memstore"
	"github.com/aalvaropc/solidkit/internal/infra/notify"
	"github.com/aalvaropc/solidkit/internal/infra/uservalidator"
	"github.com/aalvaropc/solidkit/internal/usecase"
)

func payCmd(g *globalFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   "pay <method> <amount>",
		Short: "Charge an amount through a payment method",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}

			ws, err := loadWorkspace(cmd, g)
			if err != nil {
				return err
			}
			defer ws.close()

			method, err := ws.variants.PaymentMethod(args[0])
			if err != nil {
				return err
			}

			receipt, err := usecase.NewProcessPayment(method).Execute(domain.Money(amount))
			if err != nil {
				return err
			}

			return ws.emit(receipt, func(w io.Writer) {
				fmt.Fprintf(w, "%s paid %s via %s\n", ws.theme.mark(true), receipt.Amount, ws.theme.Label.Render(receipt.Method))
			})
		},
	}
	// Flags end at the method name so a negative amount stays positional.
	c.Flags().SetInterspersed(false)
	return c
}

func notifyCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "notify <channel> [message...]",
		Short: "Send a message through a notification channel",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(cmd, g)
			if err != nil {
				return err
			}
			defer ws.close()

			channel, err := ws.variants.Notification(args[0])
			if err != nil {
				return err
			}

			d, err := usecase.NewSendNotification().Execute(channel, strings.Join(args[1:], " "))
			if err != nil {
				return err
			}

			return ws.emit(d, func(w io.Writer) {
				fmt.Fprintf(w, "%s delivered via %s\n", ws.theme.mark(true), ws.theme.Label.Render(d.Channel))
			})
		},
	}
}

func deviceCmd(g *globalFlags) *cobra.Command {
	var charge bool

	c := &cobra.Command{
		Use:   "device <name>",
		Short: "Power-cycle a device and optionally recharge it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(cmd, g)
			if err != nil {
				return err
			}
			defer ws.close()

			d, err := ws.variants.Device(args[0])
			if err != nil {
				return err
			}

			op := usecase.NewOperateDevice(d)
			events, err := op.PowerCycle()
			if err != nil {
				return err
			}

			var chargeErr error
			if charge {
				ev, err := op.Recharge()
				if err != nil {
					chargeErr = err
				} else {
					events = append(events, ev)
				}
			}

			if err := ws.emit(map[string]any{"events": events, "rechargeable": op.CanRecharge()}, func(w io.Writer) {
				fmt.Fprintf(w, "%s %d event(s) from %s\n", ws.theme.mark(chargeErr == nil), len(events), ws.theme.Label.Render(args[0]))
			}); err != nil {
				return err
			}
			return chargeErr
		},
	}

	c.Flags().BoolVar(&charge, "charge", false, "Recharge the device after the power cycle")
	return c
}

func animalCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "animal <name>",
		Short: "Make an animal sound off, and walk it when it can walk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(cmd, g)
			if err != nil {
				return err
			}
			defer ws.close()

			a, err := ws.variants.Animal(args[0])
			if err != nil {
				return err
			}

			events, err := usecase.NewExerciseAnimal(a).Execute()
			if err != nil {
				return err
			}

			return ws.emit(map[string]any{"events": events}, func(w io.Writer) {
				fmt.Fprintf(w, "%s %d event(s) from %s\n", ws.theme.mark(true), len(events), ws.theme.Label.Render(args[0]))
			})
		},
	}
}

func registerCmd(g *globalFlags) *cobra.Command {
	var email, password, channel string

	c := &cobra.Command{
		Use:   "register",
		Short: "Validate, store and welcome a new user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(cmd, g)
			if err != nil {
				return err
			}
			defer ws.close()

			uc, err := ws.registerUser(channel)
			if err != nil {
				return err
			}

			outcome, err := uc.Execute(email, password)
			if err != nil {
				return err
			}

			if err := ws.emit(outcome, func(w io.Writer) {
				if outcome.Accepted() {
					fmt.Fprintf(w, "%s registered %s\n", ws.theme.mark(true), outcome.Identifier)
					return
				}
				fmt.Fprintf(w, "%s rejected: %s\n", ws.theme.mark(false), outcome.Reason)
			}); err != nil {
				return err
			}

			if !outcome.Accepted() {
				return fmt.Errorf("registration rejected: %s", outcome.Reason)
			}
			return nil
		},
	}

	c.Flags().StringVar(&email, "email", "", "Email address (required)")
	c.Flags().StringVar(&password, "password", "", "Password (required)")
	c.Flags().StringVar(&channel, "channel", "email", "Notification channel for the welcome message")
	_ = c.MarkFlagRequired("email")
	_ = c.MarkFlagRequired("password")
	return c
}

// registerUser wires the registration pipeline from config. The store lives
// only for this process.
func (ws *workspaceCtx) registerUser(channel string) (*usecase.RegisterUser, error) {
	ch, err := ws.variants.Notification(channel)
	if err != nil {
		return nil, err
	}
	return usecase.NewRegisterUser(
		uservalidator.New(uservalidator.WithMinPasswordLength(ws.cfg.Registration.MinPasswordLength)),
		memstore.New(),
		notify.NewWelcome(ch, notify.WithTemplate(ws.cfg.Registration.WelcomeTemplate)),
	), nil
}
