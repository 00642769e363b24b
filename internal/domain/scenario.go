package domain

import "time"

// StepKind selects which usecase a scenario step drives.
type StepKind string

const (
	StepPayment      StepKind = "payment"
	StepNotification StepKind = "notification"
	StepDevice       StepKind = "device"
	StepAnimal       StepKind = "animal"
	StepRegistration StepKind = "registration"
)

// Expectation is a JSONPath check evaluated against a step's JSON result.
// With neither Equals nor Contains set the path only has to resolve to a
// non-empty value.
type Expectation struct {
	Path     string
	Equals   *string
	Contains *string
}

// Step is one caller action inside a scenario: pick a variant, feed it inputs.
type Step struct {
	Name    string
	Kind    StepKind
	Variant string

	Amount   Money  // payment
	Message  string // notification
	Charge   bool   // device
	Email    string // registration
	Password string // registration

	Expect []Expectation
	// ExpectError names the ErrorKind the step must fail with (optional).
	ExpectError ErrorKind
}

// Inputs returns the step's non-zero inputs keyed by their scenario field name.
func (s Step) Inputs() map[string]any {
	in := map[string]any{}
	switch s.Kind {
	case StepPayment:
		in["amount"] = float64(s.Amount)
	case StepNotification:
		in["message"] = s.Message
	case StepDevice:
		in["charge"] = s.Charge
	case StepRegistration:
		in["email"] = s.Email
		in["password"] = s.Password
	}
	if len(in) == 0 {
		return nil
	}
	return in
}

// Scenario groups steps that run in order, each independent of the others.
type Scenario struct {
	Name  string
	Steps []Step
}

// ScenarioRef points at a scenario file without loading its steps.
type ScenarioRef struct {
	Name string
	Path string
}

// CheckResult is the output of a single expectation.
type CheckResult struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// StepResult captures what a step produced.
type StepResult struct {
	Name    string         `json:"name"`
	Kind    StepKind       `json:"kind"`
	Variant string         `json:"variant"`
	Input   map[string]any `json:"input,omitempty"`
	Result  map[string]any `json:"result,omitempty"`
	Checks  []CheckResult  `json:"checks,omitempty"`
	Error   *StepError     `json:"error,omitempty"`
}

// StepError is a structured error produced by a step.
type StepError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// Failed reports whether the step errored unexpectedly or a check failed.
func (r StepResult) Failed() bool {
	if r.Error != nil {
		return true
	}
	for _, c := range r.Checks {
		if !c.Passed {
			return true
		}
	}
	return false
}

// Report is the result of running a whole scenario.
type Report struct {
	ID           string       `json:"id,omitempty"`
	ScenarioName string       `json:"scenario"`
	ScenarioPath string       `json:"path,omitempty"`
	StartedAt    time.Time    `json:"started_at"`
	EndedAt      time.Time    `json:"ended_at"`
	Steps        []StepResult `json:"steps"`
}

// Failures counts failed steps.
func (r Report) Failures() int {
	n := 0
	for _, s := range r.Steps {
		if s.Failed() {
			n++
		}
	}
	return n
}
