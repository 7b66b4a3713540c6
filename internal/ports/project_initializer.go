package ports

import "github.com/MegaPintoos/Courses/internal/domain"

type ProjectInitializer interface {
	// Init returns the paths it created or modified.
	Init(spec domain.ProjectSpec, force bool) ([]string, error)
}
