package service

import (
	"context"

	"github.com/campushub/portal-backend/internal/model"
	"github.com/campushub/portal-backend/internal/repository"
)

// TimetableService handles weekly timetable business logic.
type TimetableService struct {
	repo *repository.TimetableRepository
}

// NewTimetableService creates a new TimetableService.
func NewTimetableService(repo *repository.TimetableRepository) *TimetableService {
	return &TimetableService{repo: repo}
}

// GetByDepartment retrieves a department's timetable with ordered slots.
func (s *TimetableService) GetByDepartment(ctx context.Context, department string) (*model.Timetable, error) {
	return s.repo.GetByDepartment(ctx, department)
}

// Replace swaps a department's timetable for a new slot set.
func (s *TimetableService) Replace(ctx context.Context, t *model.Timetable) error {
	return s.repo.Replace(ctx, t)
}
