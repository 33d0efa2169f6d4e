package usecase

import (
	"taskboard/internal/task"
	"taskboard/internal/task/repository"
	pkgLog "taskboard/pkg/log"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    pkgLog.Logger
}

var _ task.UseCase = (*implUseCase)(nil)

// New creates a new task UseCase implementation.
func New(repo repository.Repository, l pkgLog.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
