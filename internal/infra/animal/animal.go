// Package animal holds Soundable and Walkable variants.
package animal

import (
	"fmt"
	"io"

	"github.com/aalvaropc/solidkit/internal/domain"
	"github.com/aalvaropc/solidkit/internal/ports"
)

type Option func(*io.Writer)

func WithOutput(w io.Writer) Option {
	return func(out *io.Writer) {
		if w != nil {
			*out = w
		}
	}
}

func output(opts []Option) io.Writer {
	var w io.Writer = io.Discard
	for _, opt := range opts {
		opt(&w)
	}
	return w
}

func emit(w io.Writer, source, action, text string) domain.Event {
	fmt.Fprintln(w, text)
	return domain.Event{Source: source, Action: action, Text: text}
}

type Dog struct{ out io.Writer }

func NewDog(opts ...Option) *Dog { return &Dog{out: output(opts)} }

func (d *Dog) MakeSound() domain.Event {
	return emit(d.out, "dog", domain.ActionMakeSound, "Dog barks.")
}

func (d *Dog) Walk() domain.Event {
	return emit(d.out, "dog", domain.ActionWalk, "Dog is walking.")
}

// Fish makes a sound but cannot walk.
type Fish struct{ out io.Writer }

func NewFish(opts ...Option) *Fish { return &Fish{out: output(opts)} }

func (f *Fish) MakeSound() domain.Event {
	return emit(f.out, "fish", domain.ActionMakeSound, "Fish makes bubbly sounds.")
}

var (
	_ ports.Soundable = (*Dog)(nil)
	_ ports.Walkable  = (*Dog)(nil)
	_ ports.Soundable = (*Fish)(nil)
)
