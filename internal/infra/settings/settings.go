// Package settings loads solidkit.yaml and SOLIDKIT_* overrides.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/aalvaropc/solidkit/internal/app/template"
	"github.com/aalvaropc/solidkit/internal/domain"
)

const (
	FileName  = "solidkit.yaml"
	EnvPrefix = "SOLIDKIT_"
)

type fileConfig struct {
	Logging struct {
		Debug bool   `koanf:"debug"`
		Dir   string `koanf:"dir"`
	} `koanf:"logging"`

	Registration struct {
		MinPasswordLength int    `koanf:"min_password_length"`
		WelcomeTemplate   string `koanf:"welcome_template"`
	} `koanf:"registration"`

	Scenarios struct {
		Dir string `koanf:"dir"`
	} `koanf:"scenarios"`

	Reports struct {
		Dir     string `koanf:"dir"`
		Masking bool   `koanf:"masking"`
	} `koanf:"reports"`

	Output struct {
		Format string `koanf:"format"`
	} `koanf:"output"`
}

// Load builds the configuration in three layers: defaults, then the YAML
// file, then SOLIDKIT_* variables (SOLIDKIT_REPORTS__MASKING=false maps to
// reports.masking). An empty path means <root>/solidkit.yaml, which may be
// absent; an explicit path must exist.
func Load(root, path string) (domain.Config, error) {
	const op = "settings.load"

	k := koanf.New(".")
	if err := setDefaults(k, domain.DefaultConfig()); err != nil {
		return domain.Config{}, &domain.OpError{Op: op, Kind: domain.KindInvalidConfig, Err: err}
	}

	required := path != ""
	if !required {
		path = filepath.Join(root, FileName)
	}

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return domain.Config{}, &domain.OpError{Op: op, Kind: domain.KindInvalidConfig, Path: path, Err: err}
		}
	} else if required || !errors.Is(err, os.ErrNotExist) {
		return domain.Config{}, &domain.OpError{Op: op, Kind: domain.KindNotFound, Path: path, Err: err}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return domain.Config{}, &domain.OpError{Op: op, Kind: domain.KindInvalidConfig, Err: err}
	}

	var fc fileConfig
	if err := k.Unmarshal("", &fc); err != nil {
		return domain.Config{}, &domain.OpError{Op: op, Kind: domain.KindInvalidConfig, Path: path, Err: err}
	}

	cfg := toDomain(fc)
	if err := validate(cfg); err != nil {
		return domain.Config{}, &domain.OpError{Op: op, Kind: domain.KindInvalidConfig, Path: path, Err: err}
	}
	return cfg, nil
}

func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

func setDefaults(k *koanf.Koanf, d domain.Config) error {
	defaults := map[string]any{
		"logging.debug":                    d.Logging.Debug,
		"logging.dir":                      d.Logging.Dir,
		"registration.min_password_length": d.Registration.MinPasswordLength,
		"registration.welcome_template":    d.Registration.WelcomeTemplate,
		"scenarios.dir":                    d.Scenarios.Dir,
		"reports.dir":                      d.Reports.Dir,
		"reports.masking":                  d.Reports.Masking,
		"output.format":                    d.Output.Format,
	}
	for key, v := range defaults {
		if err := k.Set(key, v); err != nil {
			return err
		}
	}
	return nil
}

func toDomain(fc fileConfig) domain.Config {
	return domain.Config{
		Logging: domain.LoggingConfig{
			Debug: fc.Logging.Debug,
			Dir:   fc.Logging.Dir,
		},
		Registration: domain.RegistrationConfig{
			MinPasswordLength: fc.Registration.MinPasswordLength,
			WelcomeTemplate:   fc.Registration.WelcomeTemplate,
		},
		Scenarios: domain.ScenariosConfig{
			Dir: fc.Scenarios.Dir,
		},
		Reports: domain.ReportsConfig{
			Dir:     fc.Reports.Dir,
			Masking: fc.Reports.Masking,
		},
		Output: domain.OutputConfig{
			Format: strings.ToLower(strings.TrimSpace(fc.Output.Format)),
		},
	}
}

func validate(cfg domain.Config) error {
	if cfg.Registration.MinPasswordLength < 1 {
		return fmt.Errorf("registration.min_password_length must be positive, got %d: %w",
			cfg.Registration.MinPasswordLength, domain.ErrInvalidConfig)
	}
	if err := template.Check(cfg.Registration.WelcomeTemplate, "identifier"); err != nil {
		return fmt.Errorf("registration.welcome_template: %v: %w", err, domain.ErrInvalidConfig)
	}
	switch cfg.Output.Format {
	case "pretty", "json":
	default:
		return fmt.Errorf("output.format must be pretty or json, got %q: %w", cfg.Output.Format, domain.ErrInvalidConfig)
	}
	return nil
}
