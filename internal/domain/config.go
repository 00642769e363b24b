package domain

// Config represents the solidkit configuration loaded from solidkit.yaml
// and SOLIDKIT_* environment variables.
type Config struct {
	Logging      LoggingConfig
	Registration RegistrationConfig
	Scenarios    ScenariosConfig
	Reports      ReportsConfig
	Output       OutputConfig
}

type LoggingConfig struct {
	Debug bool
	Dir   string
}

type RegistrationConfig struct {
	MinPasswordLength int
	// WelcomeTemplate may reference {{identifier}}.
	WelcomeTemplate string
}

type ScenariosConfig struct {
	Dir string
}

type ReportsConfig struct {
	Dir     string
	Masking bool
}

type OutputConfig struct {
	Format string
}

const DefaultWelcomeTemplate = "Welcome, {{identifier}}! Your account is ready."

// DefaultConfig provides sane defaults if solidkit.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Debug: false,
			Dir:   ".solidkit/logs",
		},
		Registration: RegistrationConfig{
			MinPasswordLength: 8,
			WelcomeTemplate:   DefaultWelcomeTemplate,
		},
		Scenarios: ScenariosConfig{
			Dir: "scenarios",
		},
		Reports: ReportsConfig{
			Dir:     "reports",
			Masking: true,
		},
		Output: OutputConfig{
			Format: "pretty",
		},
	}
}
