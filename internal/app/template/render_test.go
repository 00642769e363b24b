package template

import (
	"testing"

	"github.com/aalvaropc/solidkit/internal/domain"
)

func TestRenderStringSingleVar(t *testing.T) {
	out, err := RenderString("Welcome, {{identifier}}!", map[string]string{"identifier": "ada@x.io"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Welcome, ada@x.io!" {
		t.Fatalf("expected replaced string, got %q", out)
	}
}

func TestRenderStringMultipleVars(t *testing.T) {
	out, err := RenderString("{{ greet }}, {{name}}!", map[string]string{
		"greet": "Hi",
		"name":  "Sam",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Hi, Sam!" {
		t.Fatalf("expected replaced string, got %q", out)
	}
}

func TestRenderStringNoPlaceholders(t *testing.T) {
	out, err := RenderString("plain text", nil)
	if err != nil || out != "plain text" {
		t.Fatalf("got %q, %v", out, err)
	}
}

func TestRenderStringErrors(t *testing.T) {
	cases := []struct {
		in   string
		kind domain.ErrorKind
	}{
		{"Hello {{name}}", domain.KindInvalidInput},
		{"Hello {{name", domain.KindInvalidConfig},
		{"Hello {{ }}", domain.KindInvalidConfig},
	}
	for _, c := range cases {
		_, err := RenderString(c.in, map[string]string{})
		if !domain.IsKind(err, c.kind) {
			t.Errorf("RenderString(%q): expected %s, got %v", c.in, c.kind, err)
		}
	}
}

func TestCheck(t *testing.T) {
	if err := Check("Welcome, {{identifier}}!", "identifier"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Check("Welcome, {{user}}!", "identifier"); err == nil {
		t.Fatal("expected unknown placeholder to fail")
	}
}
