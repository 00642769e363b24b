package scenariofile

import (
	"fmt"
	"math"
	"strings"

	"github.com/aalvaropc/solidkit/internal/domain"
)

var knownErrorKinds = map[domain.ErrorKind]bool{
	domain.KindInvalidBinding:        true,
	domain.KindUnsupportedCapability: true,
	domain.KindInvalidInput:          true,
	domain.KindNotFound:              true,
	domain.KindInvalidConfig:         true,
	domain.KindExecution:             true,
}

func mapAndValidate(path string, ys yamlScenario) (domain.Scenario, error) {
	if strings.TrimSpace(ys.Name) == "" {
		return domain.Scenario{}, invalidField(path, "name", "scenario name is required")
	}
	if len(ys.Steps) == 0 {
		return domain.Scenario{}, invalidField(path, "steps", "at least one step is required")
	}

	sc := domain.Scenario{
		Name:  ys.Name,
		Steps: make([]domain.Step, 0, len(ys.Steps)),
	}

	for i, s := range ys.Steps {
		field := fmt.Sprintf("steps[%d]", i)

		if strings.TrimSpace(s.Name) == "" {
			return domain.Scenario{}, invalidField(path, field+".name", "step name is required")
		}
		kind, err := parseKind(s.Kind)
		if err != nil {
			return domain.Scenario{}, invalidField(path, field+".kind", err.Error())
		}

		step := domain.Step{
			Name:     s.Name,
			Kind:     kind,
			Variant:  strings.TrimSpace(s.Variant),
			Message:  s.Message,
			Charge:   s.Charge,
			Email:    s.Email,
			Password: s.Password,
		}

		if kind != domain.StepRegistration && step.Variant == "" {
			return domain.Scenario{}, invalidField(path, field+".variant", "variant is required")
		}
		if kind == domain.StepPayment {
			if s.Amount == nil {
				return domain.Scenario{}, invalidField(path, field+".amount", "amount is required")
			}
			if math.IsNaN(*s.Amount) || math.IsInf(*s.Amount, 0) {
				return domain.Scenario{}, invalidField(path, field+".amount", "amount must be finite")
			}
			step.Amount = domain.Money(*s.Amount)
		}

		if s.ExpectError != "" {
			k := domain.ErrorKind(strings.TrimSpace(s.ExpectError))
			if !knownErrorKinds[k] {
				return domain.Scenario{}, invalidField(path, field+".expect_error", fmt.Sprintf("unknown error kind %q", s.ExpectError))
			}
			step.ExpectError = k
		}

		for j, e := range s.Expect {
			if strings.TrimSpace(e.Path) == "" {
				return domain.Scenario{}, invalidField(path, fmt.Sprintf("%s.expect[%d].path", field, j), "path is required")
			}
			step.Expect = append(step.Expect, domain.Expectation{
				Path:     e.Path,
				Equals:   e.Equals,
				Contains: e.Contains,
			})
		}

		sc.Steps = append(sc.Steps, step)
	}

	return sc, nil
}

func parseKind(k string) (domain.StepKind, error) {
	switch kind := domain.StepKind(strings.ToLower(strings.TrimSpace(k))); kind {
	case domain.StepPayment,
		domain.StepNotification,
		domain.StepDevice,
		domain.StepAnimal,
		domain.StepRegistration:
		return kind, nil
	default:
		return "", fmt.Errorf("unsupported step kind %q", k)
	}
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "scenariofile.validate",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
