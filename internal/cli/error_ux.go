package cli

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/solidkit/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

// userMessage turns an error into a one-line message for the terminal.
// Full details stay in the log file.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if !errors.As(err, &oe) {
		return err.Error()
	}

	switch oe.Kind {
	case domain.KindNotFound:
		if strings.HasPrefix(oe.Op, "scenariofile") {
			return "Scenario not found: " + oe.Path
		}
		if strings.HasPrefix(oe.Op, "catalog") {
			return "Unknown variant: " + errText(oe)
		}
		return "Not found: " + errText(oe)

	case domain.KindInvalidConfig:
		base := "config"
		if strings.TrimSpace(oe.Path) != "" {
			base = filepath.Base(oe.Path)
		}
		if looksLikeYAMLProblem(err.Error()) {
			if line := extractLine(err.Error()); line != "" {
				return "Invalid YAML at " + base + " line " + line
			}
			return "Invalid YAML at " + base
		}
		return "Invalid config in " + base + ": " + errText(oe)

	case domain.KindUnsupportedCapability:
		return "Unsupported capability: " + errText(oe)

	case domain.KindInvalidInput:
		return "Invalid input: " + errText(oe)

	case domain.KindInvalidBinding:
		return "Internal wiring error (see logs): " + errText(oe)

	default:
		return err.Error()
	}
}

func errText(oe *domain.OpError) string {
	if oe.Err == nil {
		return string(oe.Kind)
	}
	return oe.Err.Error()
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
