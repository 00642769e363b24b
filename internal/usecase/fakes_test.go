package usecase

import (
	"errors"
	"strings"

	"github.com/aalvaropc/solidkit/internal/domain"
)

// --- registration collaborators ---

// emailLengthValidator accepts an address with one "@" and a dotted domain
// and a password of at least 8 bytes.
type emailLengthValidator struct{ calls int }

func (v *emailLengthValidator) IsValid(email, password string) domain.Validation {
	v.calls++
	at := strings.Index(email, "@")
	if at <= 0 || !strings.Contains(email[at+1:], ".") {
		return domain.Reject("bad email")
	}
	if len(password) < 8 {
		return domain.Reject("short password")
	}
	return domain.Accept()
}

type saveCall struct{ email, password string }

// recorder is both store and notifier so call order can be asserted.
type recorder struct {
	saves    []saveCall
	notified []string
	order    []string
}

func (r *recorder) Save(email, password string) {
	r.saves = append(r.saves, saveCall{email, password})
	r.order = append(r.order, "save")
}

func (r *recorder) Notify(identifier string) {
	r.notified = append(r.notified, identifier)
	r.order = append(r.order, "notify")
}

// panickingNotifier stands in for a notifier that fails after the save.
type panickingNotifier struct{}

func (panickingNotifier) Notify(string) { panic("notify failed") }

// --- scenario collaborators ---

type fakeScenarioLoader struct {
	sc  domain.Scenario
	err error
}

func (f fakeScenarioLoader) LoadScenario(_ string) (domain.Scenario, error) {
	return f.sc, f.err
}

type fakeReportStore struct {
	saved []domain.Report
	err   error
}

func (s *fakeReportStore) SaveReport(r domain.Report) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.saved = append(s.saved, r)
	return "report-1", nil
}

var errSave = errors.New("disk full")
