// Package template renders {{name}} placeholders in message templates.
package template

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/aalvaropc/solidkit/internal/domain"
)

// RenderString replaces {{name}} placeholders with vars values.
// A missing variable or a malformed placeholder is an error.
func RenderString(input string, vars map[string]string) (string, error) {
	if input == "" {
		return "", nil
	}

	var out strings.Builder
	rest := input
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			out.WriteString(rest)
			return out.String(), nil
		}

		out.WriteString(rest[:start])
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return "", renderError(domain.KindInvalidConfig, "unclosed template expression")
		}

		key := strings.TrimSpace(rest[:end])
		if key == "" {
			return "", renderError(domain.KindInvalidConfig, "empty template expression")
		}

		value, ok := vars[key]
		if !ok {
			return "", renderError(domain.KindInvalidInput, fmt.Sprintf("missing variable %q (have: %s)", key, strings.Join(keys(vars), ", ")))
		}

		out.WriteString(value)
		rest = rest[end+2:]
	}
}

// Check renders input with every name in names bound to a placeholder value,
// so a template can be validated before any real values exist.
func Check(input string, names ...string) error {
	vars := make(map[string]string, len(names))
	for _, n := range names {
		vars[n] = n
	}
	_, err := RenderString(input, vars)
	return err
}

func renderError(kind domain.ErrorKind, msg string) error {
	return &domain.OpError{
		Op:   "template.render",
		Kind: kind,
		Err:  errors.New(msg),
	}
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
