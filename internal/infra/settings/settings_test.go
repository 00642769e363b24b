package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aalvaropc/solidkit/internal/domain"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	p := filepath.Join(dir, FileName)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(t.TempDir(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(domain.DefaultConfig(), cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "reports:\n  masking: false\nregistration:\n  min_password_length: 12\n")

	cfg, err := Load(root, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := domain.DefaultConfig()
	want.Reports.Masking = false
	want.Registration.MinPasswordLength = 12
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "output:\n  format: pretty\nreports:\n  dir: out\n")

	t.Setenv("SOLIDKIT_OUTPUT__FORMAT", "json")
	t.Setenv("SOLIDKIT_REGISTRATION__MIN_PASSWORD_LENGTH", "10")

	cfg, err := Load(root, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Output.Format != "json" {
		t.Fatalf("expected json format from env, got %q", cfg.Output.Format)
	}
	if cfg.Registration.MinPasswordLength != 10 {
		t.Fatalf("expected min length 10 from env, got %d", cfg.Registration.MinPasswordLength)
	}
	if cfg.Reports.Dir != "out" {
		t.Fatalf("expected reports dir from file, got %q", cfg.Reports.Dir)
	}
}

func TestLoad_ExplicitPathMustExist(t *testing.T) {
	_, err := Load(t.TempDir(), filepath.Join(t.TempDir(), "missing.yaml"))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"format":  "output:\n  format: xml\n",
		"length":  "registration:\n  min_password_length: 0\n",
		"garbage": "reports: [unclosed\n",
		"welcome": "registration:\n  welcome_template: \"Hi {{user}}\"\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			root := t.TempDir()
			writeConfig(t, root, content)
			if _, err := Load(root, ""); !domain.IsKind(err, domain.KindInvalidConfig) {
				t.Fatalf("expected invalid config, got %v", err)
			}
		})
	}
}

func TestFindRoot_FindsWorkspaceFromNestedDir(t *testing.T) {
	root := filepath.Join(t.TempDir(), "ws")
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeConfig(t, root, "reports:\n  masking: true\n")

	got, err := FindRoot(nested)
	if err != nil {
		t.Fatalf("FindRoot returned error: %v", err)
	}
	if got != root {
		t.Fatalf("expected root=%s, got=%s", root, got)
	}
}

func TestFindRoot_NotFound(t *testing.T) {
	tmp := t.TempDir()
	_ = os.MkdirAll(filepath.Join(tmp, "a", "b"), 0o755)

	_, err := FindRoot(filepath.Join(tmp, "a", "b"))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got: %v", err)
	}
}
