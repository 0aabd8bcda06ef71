package service

import (
	"context"

	"github.com/campushub/portal-backend/internal/model"
	"github.com/campushub/portal-backend/internal/repository"
)

// AttendanceService handles attendance business logic.
type AttendanceService struct {
	repo *repository.AttendanceRepository
}

// NewAttendanceService creates a new AttendanceService.
func NewAttendanceService(repo *repository.AttendanceRepository) *AttendanceService {
	return &AttendanceService{repo: repo}
}

// ListByStudent retrieves a student's attendance records.
func (s *AttendanceService) ListByStudent(ctx context.Context, studentID int) ([]model.AttendanceRecord, error) {
	return s.repo.ListByStudent(ctx, studentID)
}

// Mark records one (student, subject, date) status on behalf of a teacher.
// Marking the same triple again overwrites the earlier status.
func (s *AttendanceService) Mark(ctx context.Context, req *model.MarkAttendanceRequest, recordedBy int) (*model.AttendanceRecord, error) {
	rec := &model.AttendanceRecord{
		StudentID:  req.StudentID,
		Subject:    req.Subject,
		Date:       req.Date,
		Status:     req.Status,
		RecordedBy: recordedBy,
	}
	if err := s.repo.Mark(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// SummaryByStudent aggregates present/absent counts for the dashboard.
func (s *AttendanceService) SummaryByStudent(ctx context.Context, studentID int) (*model.AttendanceSummary, error) {
	return s.repo.SummaryByStudent(ctx, studentID)
}
