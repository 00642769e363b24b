// Package catalog maps variant names to constructors for outer callers.
//
// The dispatch framework never looks variants up; the CLI and the scenario
// runner do, through ports.VariantSource. Adding a variant means writing
// its type and one Register call in Default.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aalvaropc/solidkit/internal/domain"
)

// Catalog holds constructors for one capability.
type Catalog[C any] struct {
	kind  string
	ctors map[string]func() C
}

func New[C any](kind string) *Catalog[C] {
	return &Catalog[C]{kind: kind, ctors: map[string]func() C{}}
}

// Register adds a constructor. Names are case-insensitive and must be unique.
func (c *Catalog[C]) Register(name string, ctor func() C) error {
	key := normalize(name)
	if key == "" {
		return &domain.OpError{
			Op:   "catalog.register",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("%s variant name is empty", c.kind),
		}
	}
	if ctor == nil {
		return &domain.OpError{
			Op:   "catalog.register",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("%s variant %q has no constructor", c.kind, key),
		}
	}
	if _, exists := c.ctors[key]; exists {
		return &domain.OpError{
			Op:   "catalog.register",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("%s variant already registered: %s", c.kind, key),
		}
	}
	c.ctors[key] = ctor
	return nil
}

// Lookup builds a new instance of the named variant.
func (c *Catalog[C]) Lookup(name string) (C, error) {
	ctor, ok := c.ctors[normalize(name)]
	if !ok {
		var zero C
		return zero, &domain.OpError{
			Op:   "catalog.lookup",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("%w: %s variant %q (known: %s)", domain.ErrNotFound, c.kind, name, strings.Join(c.Names(), ", ")),
		}
	}
	return ctor(), nil
}

// Names returns registered names, sorted.
func (c *Catalog[C]) Names() []string {
	out := make([]string, 0, len(c.ctors))
	for k := range c.ctors {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (c *Catalog[C]) Kind() string { return c.kind }

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
