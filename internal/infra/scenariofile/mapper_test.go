package scenariofile

import (
	"strings"
	"testing"

	"github.com/aalvaropc/solidkit/internal/domain"
)

func amount(v float64) *float64 { return &v }

func TestMapRequiresNameAndSteps(t *testing.T) {
	_, err := mapAndValidate("s.yaml", yamlScenario{})
	if err == nil || !strings.Contains(err.Error(), "field name") {
		t.Fatalf("expected name error, got %v", err)
	}

	_, err = mapAndValidate("s.yaml", yamlScenario{Name: "x"})
	if err == nil || !strings.Contains(err.Error(), "field steps") {
		t.Fatalf("expected steps error, got %v", err)
	}
}

func TestMapStepValidation(t *testing.T) {
	cases := []struct {
		name  string
		step  yamlStep
		field string
	}{
		{"missing name", yamlStep{Kind: "animal", Variant: "dog"}, "steps[0].name"},
		{"missing variant", yamlStep{Name: "s", Kind: "animal"}, "steps[0].variant"},
		{"missing amount", yamlStep{Name: "s", Kind: "payment", Variant: "paypal"}, "steps[0].amount"},
		{"unknown error kind", yamlStep{Name: "s", Kind: "animal", Variant: "dog", ExpectError: "boom"}, "steps[0].expect_error"},
		{"empty expect path", yamlStep{Name: "s", Kind: "animal", Variant: "dog", Expect: []yamlExpectation{{}}}, "steps[0].expect[0].path"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := mapAndValidate("s.yaml", yamlScenario{Name: "x", Steps: []yamlStep{c.step}})
			if !domain.IsKind(err, domain.KindInvalidConfig) {
				t.Fatalf("expected invalid config, got %v", err)
			}
			if !strings.Contains(err.Error(), c.field) {
				t.Fatalf("expected %s in error, got %v", c.field, err)
			}
		})
	}
}

func TestMapRegistrationNeedsNoVariant(t *testing.T) {
	sc, err := mapAndValidate("s.yaml", yamlScenario{Name: "x", Steps: []yamlStep{{
		Name: "reg", Kind: "registration", Email: "a@b.co", Password: "password123",
	}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sc.Steps[0].Email != "a@b.co" || sc.Steps[0].Password != "password123" {
		t.Fatalf("unexpected step %+v", sc.Steps[0])
	}
}

func TestMapNegativeAmountIsLeftToTheUsecase(t *testing.T) {
	sc, err := mapAndValidate("s.yaml", yamlScenario{Name: "x", Steps: []yamlStep{{
		Name: "neg", Kind: "payment", Variant: "paypal", Amount: amount(-5),
	}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sc.Steps[0].Amount != -5 {
		t.Fatalf("expected amount -5, got %v", sc.Steps[0].Amount)
	}
}
