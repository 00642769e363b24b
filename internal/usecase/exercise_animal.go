package usecase

import (
	"github.com/aalvaropc/solidkit/internal/capability"
	"github.com/aalvaropc/solidkit/internal/dispatch"
	"github.com/aalvaropc/solidkit/internal/domain"
	"github.com/aalvaropc/solidkit/internal/ports"
)

// ExerciseAnimal makes the bound animal sound off and, when it is also
// Walkable, walk. Not walking is not an error.
type ExerciseAnimal struct {
	animal ports.Soundable
	opts   []dispatch.Option
}

func NewExerciseAnimal(animal ports.Soundable, opts ...dispatch.Option) *ExerciseAnimal {
	return &ExerciseAnimal{animal: animal, opts: opts}
}

func (uc *ExerciseAnimal) Execute() ([]domain.Event, error) {
	sound, err := dispatch.Invoke("animal.sound", dispatch.Nullary(ports.Soundable.MakeSound), uc.animal, struct{}{}, uc.opts...)
	if err != nil {
		return nil, err
	}
	events := []domain.Event{sound}

	if w, ok := capability.As[ports.Walkable](uc.animal); ok {
		walk, err := dispatch.Invoke("animal.walk", dispatch.Nullary(ports.Walkable.Walk), w, struct{}{}, uc.opts...)
		if err != nil {
			return events, err
		}
		events = append(events, walk)
	}
	return events, nil
}
