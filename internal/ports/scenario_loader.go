package ports

import "github.com/aalvaropc/solidkit/internal/domain"

// ScenarioLoader loads scenarios from a source (e.g., filesystem).
type ScenarioLoader interface {
	LoadScenario(path string) (domain.Scenario, error)
}

// ScenarioCatalog lists the scenarios available under a root directory.
type ScenarioCatalog interface {
	ListScenarios(root string) ([]domain.ScenarioRef, error)
}
