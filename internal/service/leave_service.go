package service

import (
	"context"
	"errors"

	"github.com/campushub/portal-backend/internal/model"
	"github.com/rs/zerolog"
)

// Leave workflow errors.
var (
	ErrLeaveDatesInvalid    = errors.New("leave end date is before start date")
	ErrLeaveAlreadyDecided  = errors.New("leave application already decided")
	ErrInvalidDecision      = errors.New("decision must be approved or rejected")
	ErrLeaveWrongDepartment = errors.New("leave belongs to another department")
)

// leaveStore is the data access the workflow needs. Narrow interface so
// the transition logic can be exercised without a database.
type leaveStore interface {
	GetByID(ctx context.Context, id int) (*model.LeaveApplication, error)
	ListByStudent(ctx context.Context, studentID int) ([]model.LeaveApplication, error)
	ListPendingByDepartment(ctx context.Context, department string) ([]model.LeaveApplication, error)
	Create(ctx context.Context, l *model.LeaveApplication) error
	Decide(ctx context.Context, id int, status model.LeaveStatus, decidedBy int) (bool, error)
	CountPendingOlderThan(ctx context.Context, days int) (int, error)
}

// LeaveService handles the leave application workflow. Status
// transitions are owned here: applications start pending and move
// exactly once to approved or rejected.
type LeaveService struct {
	repo leaveStore
	log  zerolog.Logger
}

// NewLeaveService creates a new LeaveService.
func NewLeaveService(repo leaveStore, log zerolog.Logger) *LeaveService {
	return &LeaveService{
		repo: repo,
		log:  log.With().Str("component", "leave_service").Logger(),
	}
}

// ListByStudent retrieves a student's applications, newest first.
func (s *LeaveService) ListByStudent(ctx context.Context, studentID int) ([]model.LeaveApplication, error) {
	return s.repo.ListByStudent(ctx, studentID)
}

// ListPending retrieves the pending queue for a department.
func (s *LeaveService) ListPending(ctx context.Context, department string) ([]model.LeaveApplication, error) {
	return s.repo.ListPendingByDepartment(ctx, department)
}

// Submit files a new pending application for a student. The date range
// is validated here as well as at the binding layer; the dates are
// lexicographically comparable in YYYY-MM-DD form.
func (s *LeaveService) Submit(ctx context.Context, studentID int, req *model.SubmitLeaveRequest) (*model.LeaveApplication, error) {
	if req.DateTo < req.DateFrom {
		return nil, ErrLeaveDatesInvalid
	}

	l := &model.LeaveApplication{
		StudentID: studentID,
		LeaveType: req.LeaveType,
		DateFrom:  req.DateFrom,
		DateTo:    req.DateTo,
		Reason:    req.Reason,
	}
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}

	s.log.Info().
		Int("leave_id", l.ID).
		Int("student_id", studentID).
		Str("date_from", l.DateFrom).
		Str("date_to", l.DateTo).
		Msg("Leave application submitted")

	return l, nil
}

// Decide moves a pending application to approved or rejected. Decided
// applications are immutable; a second decision fails. Only faculty in
// the student's department may decide. A missing ID surfaces the
// store's not-found error unchanged.
func (s *LeaveService) Decide(ctx context.Context, id int, status model.LeaveStatus, decidedBy int, department string) (*model.LeaveApplication, error) {
	if !status.Decided() {
		return nil, ErrInvalidDecision
	}

	leave, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if leave.StudentDepartment != department {
		return nil, ErrLeaveWrongDepartment
	}
	if leave.Status.Decided() {
		return nil, ErrLeaveAlreadyDecided
	}

	ok, err := s.repo.Decide(ctx, id, status, decidedBy)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Lost the race with a concurrent decision.
		return nil, ErrLeaveAlreadyDecided
	}

	s.log.Info().
		Int("leave_id", id).
		Str("status", string(status)).
		Int("decided_by", decidedBy).
		Msg("Leave application decided")

	return s.repo.GetByID(ctx, id)
}

// CountStalePending reports pending applications older than the given
// number of days. Used by the maintenance worker.
func (s *LeaveService) CountStalePending(ctx context.Context, days int) (int, error) {
	return s.repo.CountPendingOlderThan(ctx, days)
}
