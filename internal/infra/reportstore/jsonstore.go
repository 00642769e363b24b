// Package reportstore persists scenario reports as JSON files.
package reportstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aalvaropc/solidkit/internal/domain"
	"github.com/aalvaropc/solidkit/internal/ports"
)

const defaultReportsDir = "reports"
const maskValue = "********"

type JSONStore struct {
	rootDir        string
	reportsDirName string
	maskingEnabled bool
	writeIndex     bool
	now            func() time.Time
}

type Option func(*JSONStore)

// WithIndex enables a JSONL index: reports/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	dir := cfg.Reports.Dir
	if strings.TrimSpace(dir) == "" {
		dir = defaultReportsDir
	}

	s := &JSONStore{
		rootDir:        root,
		reportsDirName: dir,
		maskingEnabled: cfg.Reports.Masking,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ReportStore = (*JSONStore)(nil)

// SaveReport writes <reports>/<UTC start>_<slug>.json and returns the file
// stem as the report id. A second report with the same stem gets _2, _3...
func (s *JSONStore) SaveReport(report domain.Report) (string, error) {
	dir := filepath.Join(s.rootDir, s.reportsDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	ts := report.StartedAt
	if ts.IsZero() {
		ts = s.now()
	}
	ts = ts.UTC()

	name := report.ScenarioName
	if strings.TrimSpace(name) == "" {
		name = strings.TrimSuffix(filepath.Base(report.ScenarioPath), filepath.Ext(report.ScenarioPath))
	}
	slug := slugify(name)
	if slug == "" {
		slug = "report"
	}

	id, path, err := uniqueName(dir, fmt.Sprintf("%s_%s", ts.Format("20060102T150405Z"), slug))
	if err != nil {
		return "", err
	}

	toSave := report
	toSave.ID = id
	if toSave.StartedAt.IsZero() {
		toSave.StartedAt = ts
	}
	if s.maskingEnabled {
		toSave = maskReport(toSave)
	}

	b, err := json.MarshalIndent(toSave, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "reportstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, id, filepath.Base(path), toSave)
	}

	return id, nil
}

func uniqueName(dir, stem string) (string, string, error) {
	for i := 1; i < 1000; i++ {
		id := stem
		if i > 1 {
			id = fmt.Sprintf("%s_%d", stem, i)
		}
		path := filepath.Join(dir, id+".json")
		_, err := os.Stat(path)
		if errors.Is(err, os.ErrNotExist) {
			return id, path, nil
		}
		if err != nil {
			return "", "", &domain.OpError{
				Op:   "reportstore.stat",
				Kind: domain.KindExecution,
				Path: path,
				Err:  err,
			}
		}
	}
	return "", "", &domain.OpError{
		Op:   "reportstore.name",
		Kind: domain.KindExecution,
		Path: filepath.Join(dir, stem),
		Err:  errors.New("too many reports with the same name"),
	}
}

func (s *JSONStore) appendIndex(dir, id, filename string, report domain.Report) error {
	type idx struct {
		ID        string    `json:"id"`
		File      string    `json:"file"`
		Scenario  string    `json:"scenario"`
		Failures  int       `json:"failures"`
		StartedAt time.Time `json:"started_at"`
	}
	line, err := json.Marshal(idx{
		ID:        id,
		File:      filename,
		Scenario:  report.ScenarioName,
		Failures:  report.Failures(),
		StartedAt: report.StartedAt,
	})
	if err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(dir, "index.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

// maskReport returns a masked copy; the input is not mutated.
func maskReport(report domain.Report) domain.Report {
	out := report
	out.Steps = make([]domain.StepResult, len(report.Steps))
	for i, st := range report.Steps {
		c := st
		c.Input = maskMap(st.Input)
		c.Result = maskMap(st.Result)
		out.Steps[i] = c
	}
	return out
}

// maskMap deep-copies m, replacing values under sensitive keys at any depth.
func maskMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		if isSensitiveKey(k) {
			out[k] = maskValue
			continue
		}
		out[k] = maskAny(v)
	}
	return out
}

func maskAny(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return maskMap(t)
	case []any:
		cp := make([]any, len(t))
		for i, e := range t {
			cp[i] = maskAny(e)
		}
		return cp
	default:
		return v
	}
}

func isSensitiveKey(k string) bool {
	kk := strings.ToLower(k)
	return strings.Contains(kk, "token") ||
		strings.Contains(kk, "secret") ||
		strings.Contains(kk, "password")
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
