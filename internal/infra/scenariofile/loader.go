// Package scenariofile reads YAML scenario files.
package scenariofile

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/solidkit/internal/domain"
	"github.com/aalvaropc/solidkit/internal/ports"
)

type Loader struct {
	scenariosDir string
}

type Option func(*Loader)

func WithScenariosDir(dir string) Option {
	return func(l *Loader) {
		if strings.TrimSpace(dir) != "" {
			l.scenariosDir = dir
		}
	}
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{scenariosDir: "scenarios"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var (
	_ ports.ScenarioLoader  = (*Loader)(nil)
	_ ports.ScenarioCatalog = (*Loader)(nil)
)

func (l *Loader) LoadScenario(path string) (domain.Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Scenario{}, &domain.OpError{
			Op:   "scenariofile.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var ys yamlScenario
	if err := yaml.Unmarshal(b, &ys); err != nil {
		return domain.Scenario{}, &domain.OpError{
			Op:   "scenariofile.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return mapAndValidate(path, ys)
}

// ListScenarios returns the YAML files directly under <root>/<scenariosDir>,
// sorted by scenario name. Files whose name cannot be read fall back to the
// file name.
func (l *Loader) ListScenarios(root string) ([]domain.ScenarioRef, error) {
	dir := filepath.Join(root, l.scenariosDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "scenariofile.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.ScenarioRef
	for _, e := range entries {
		if e.IsDir() || !isYAML(e.Name()) {
			continue
		}
		p := filepath.Join(dir, e.Name())
		n, _ := readScenarioName(p)
		if strings.TrimSpace(n) == "" {
			n = strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		}
		refs = append(refs, domain.ScenarioRef{Name: n, Path: p})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

// Resolve maps a scenario name or path to a file path. An existing file wins;
// otherwise the name is looked up under the scenarios directory.
func (l *Loader) Resolve(root, nameOrPath string) (string, error) {
	if st, err := os.Stat(nameOrPath); err == nil && !st.IsDir() {
		return nameOrPath, nil
	}

	base := filepath.Join(root, l.scenariosDir, nameOrPath)
	for _, candidate := range []string{base, base + ".yaml", base + ".yml"} {
		if st, err := os.Stat(candidate); err == nil && !st.IsDir() {
			return candidate, nil
		}
	}

	return "", &domain.OpError{
		Op:   "scenariofile.resolve",
		Kind: domain.KindNotFound,
		Path: nameOrPath,
		Err:  domain.ErrNotFound,
	}
}

func isYAML(name string) bool {
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")
}

func readScenarioName(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var v struct {
		Name string `yaml:"name"`
	}
	if err := yaml.Unmarshal(b, &v); err != nil {
		return "", err
	}
	return v.Name, nil
}
