package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aalvaropc/solidkit/internal/dispatch"
	"github.com/aalvaropc/solidkit/internal/domain"
	"github.com/aalvaropc/solidkit/internal/infra/logger"
	"github.com/aalvaropc/solidkit/internal/ports"
	"github.com/aalvaropc/solidkit/internal/usecase/expect"
)

// RunScenario replays a scenario file: each step picks a variant by name and
// drives the matching usecase. Steps are independent; a failing step does
// not stop the run.
type RunScenario struct {
	scenarios ports.ScenarioLoader
	variants  ports.VariantSource
	register  *RegisterUser
	store     ports.ReportStore // optional
	now       func() time.Time
	log       *slog.Logger
}

type ScenarioOption func(*RunScenario)

// WithReportStore saves each report after the run. nil disables saving.
func WithReportStore(s ports.ReportStore) ScenarioOption {
	return func(uc *RunScenario) { uc.store = s }
}

// WithClock is useful for tests.
func WithClock(now func() time.Time) ScenarioOption {
	return func(uc *RunScenario) {
		if now != nil {
			uc.now = now
		}
	}
}

func NewRunScenario(sl ports.ScenarioLoader, vs ports.VariantSource, register *RegisterUser, opts ...ScenarioOption) *RunScenario {
	uc := &RunScenario{
		scenarios: sl,
		variants:  vs,
		register:  register,
		now:       time.Now,
		log:       logger.For("scenario"),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute runs the scenario at path. The returned report is complete even
// when saving it fails; the save error is returned alongside.
func (uc *RunScenario) Execute(ctx context.Context, path string) (domain.Report, error) {
	if err := uc.checkBindings(); err != nil {
		return domain.Report{}, err
	}

	sc, err := uc.scenarios.LoadScenario(path)
	if err != nil {
		return domain.Report{}, err
	}

	report := domain.Report{
		ScenarioName: sc.Name,
		ScenarioPath: path,
		StartedAt:    uc.now(),
		Steps:        make([]domain.StepResult, 0, len(sc.Steps)),
	}
	uc.log.Info("scenario.start", "name", sc.Name, "steps", len(sc.Steps))

	for _, step := range sc.Steps {
		if err := ctx.Err(); err != nil {
			report.EndedAt = uc.now()
			return report, err
		}
		res := uc.runStep(step)
		if res.Failed() {
			uc.log.Info("scenario.step_failed", "step", step.Name, "kind", step.Kind)
		}
		report.Steps = append(report.Steps, res)
	}

	report.EndedAt = uc.now()
	uc.log.Info("scenario.done", "name", sc.Name, "failures", report.Failures())

	if uc.store != nil {
		id, err := uc.store.SaveReport(report)
		if err != nil {
			return report, err
		}
		report.ID = id
	}
	return report, nil
}

func (uc *RunScenario) runStep(step domain.Step) domain.StepResult {
	res := domain.StepResult{
		Name:    step.Name,
		Kind:    step.Kind,
		Variant: step.Variant,
		Input:   step.Inputs(),
	}

	result, err := uc.perform(step)
	if err != nil {
		return settleError(res, step, err)
	}
	if step.ExpectError != "" {
		res.Error = &domain.StepError{
			Kind:    domain.KindExecution,
			Message: fmt.Sprintf("expected %s error, step succeeded", step.ExpectError),
		}
		return res
	}

	doc, err := expect.Document(result)
	if err != nil {
		res.Error = &domain.StepError{Kind: domain.KindExecution, Message: err.Error()}
		return res
	}
	res.Result = doc
	res.Checks = expect.Evaluate(step.Expect, doc)
	return res
}

// settleError turns a step error into a result; an error of the expected
// kind is a passing check rather than a failure.
func settleError(res domain.StepResult, step domain.Step, err error) domain.StepResult {
	kind := domain.KindExecution
	var oe *domain.OpError
	if errors.As(err, &oe) {
		kind = oe.Kind
	}

	if step.ExpectError != "" && step.ExpectError == kind {
		res.Checks = []domain.CheckResult{{
			Name:    "error.kind",
			Passed:  true,
			Message: fmt.Sprintf("failed with %s as expected: %v", kind, err),
		}}
		return res
	}

	res.Error = &domain.StepError{Kind: kind, Message: err.Error()}
	return res
}

func (uc *RunScenario) perform(step domain.Step) (any, error) {
	switch step.Kind {
	case domain.StepPayment:
		m, err := uc.variants.PaymentMethod(step.Variant)
		if err != nil {
			return nil, err
		}
		return NewProcessPayment(m).Execute(step.Amount)

	case domain.StepNotification:
		ch, err := uc.variants.Notification(step.Variant)
		if err != nil {
			return nil, err
		}
		return NewSendNotification().Execute(ch, step.Message)

	case domain.StepDevice:
		d, err := uc.variants.Device(step.Variant)
		if err != nil {
			return nil, err
		}
		op := NewOperateDevice(d)
		events, err := op.PowerCycle()
		if err != nil {
			return nil, err
		}
		if step.Charge {
			ev, err := op.Recharge()
			if err != nil {
				return nil, err
			}
			events = append(events, ev)
		}
		return map[string]any{"events": events}, nil

	case domain.StepAnimal:
		a, err := uc.variants.Animal(step.Variant)
		if err != nil {
			return nil, err
		}
		events, err := NewExerciseAnimal(a).Execute()
		if err != nil {
			return nil, err
		}
		return map[string]any{"events": events}, nil

	case domain.StepRegistration:
		return uc.register.Execute(step.Email, step.Password)

	default:
		return nil, &domain.OpError{
			Op:   "usecase.run_scenario",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("unknown step kind %q", step.Kind),
		}
	}
}

// checkBindings covers the collaborators every run needs. A nil register
// only fails registration steps, so it is reported per step instead.
func (uc *RunScenario) checkBindings() error {
	const op = "usecase.run_scenario"
	switch {
	case uc == nil:
		return domain.InvalidBinding(op, "usecase is nil")
	case dispatch.Unbound(uc.scenarios):
		return domain.InvalidBinding(op, "scenario loader is nil")
	case dispatch.Unbound(uc.variants):
		return domain.InvalidBinding(op, "variant source is nil")
	}
	return nil
}
