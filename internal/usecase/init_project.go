package usecase

import (
	"github.com/MegaPintoos/Courses/internal/domain"
	"github.com/MegaPintoos/Courses/internal/ports"
)

type InitProject struct {
	initializer ports.ProjectInitializer
}

func NewInitProject(initializer ports.ProjectInitializer) *InitProject {
	return &InitProject{initializer: initializer}
}

func (uc *InitProject) Execute(root string, force bool) ([]string, error) {
	return uc.initializer.Init(domain.ProjectSpec{Root: root}, force)
}
