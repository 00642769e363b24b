package ports

import "github.com/aalvaropc/solidkit/internal/domain"

type Soundable interface {
	MakeSound() domain.Event
}

// Walkable is an optional capability; callers holding a Soundable must probe
// for it before walking.
type Walkable interface {
	Walk() domain.Event
}
