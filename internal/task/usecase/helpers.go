package usecase

import (
	"strings"

	"taskboard/internal/task"
)

// validateTitle rejects empty and whitespace-only titles. The title itself is stored untrimmed.
func (uc *implUseCase) validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return task.ErrEmptyTitle
	}
	return nil
}
