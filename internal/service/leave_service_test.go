package service

import (
	"context"
	"errors"
	"testing"

	"github.com/campushub/portal-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// fakeLeaveStore holds applications by ID so the transition logic can
// run without a database.
type fakeLeaveStore struct {
	leaves     map[int]*model.LeaveApplication
	decideOK   bool
	decideErr  error
	decidedIDs []int
}

func (f *fakeLeaveStore) GetByID(_ context.Context, id int) (*model.LeaveApplication, error) {
	l, ok := f.leaves[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *l
	return &cp, nil
}

func (f *fakeLeaveStore) ListByStudent(context.Context, int) ([]model.LeaveApplication, error) {
	return nil, nil
}

func (f *fakeLeaveStore) ListPendingByDepartment(context.Context, string) ([]model.LeaveApplication, error) {
	return nil, nil
}

func (f *fakeLeaveStore) Create(_ context.Context, l *model.LeaveApplication) error {
	l.ID = len(f.leaves) + 1
	l.Status = model.LeavePending
	return nil
}

func (f *fakeLeaveStore) Decide(_ context.Context, id int, status model.LeaveStatus, _ int) (bool, error) {
	if f.decideErr != nil {
		return false, f.decideErr
	}
	if f.decideOK {
		f.leaves[id].Status = status
		f.decidedIDs = append(f.decidedIDs, id)
	}
	return f.decideOK, nil
}

func (f *fakeLeaveStore) CountPendingOlderThan(context.Context, int) (int, error) {
	return 0, nil
}

func pendingStore() *fakeLeaveStore {
	return &fakeLeaveStore{
		leaves: map[int]*model.LeaveApplication{
			1: {ID: 1, StudentID: 7, StudentDepartment: "Computer Science", Status: model.LeavePending},
		},
		decideOK: true,
	}
}

// Submit validates the date range before touching the store, so a nil
// store is safe for the rejection paths.
func TestSubmitRejectsInvertedDates(t *testing.T) {
	s := NewLeaveService(nil, zerolog.Nop())

	_, err := s.Submit(context.Background(), 1, &model.SubmitLeaveRequest{
		LeaveType: "sick",
		DateFrom:  "2024-01-03",
		DateTo:    "2024-01-01",
		Reason:    "fever",
	})
	if !errors.Is(err, ErrLeaveDatesInvalid) {
		t.Errorf("got %v, want ErrLeaveDatesInvalid", err)
	}
}

func TestDecideRejectsNonTerminalStatus(t *testing.T) {
	s := NewLeaveService(nil, zerolog.Nop())

	_, err := s.Decide(context.Background(), 1, model.LeavePending, 2, "Computer Science")
	if !errors.Is(err, ErrInvalidDecision) {
		t.Errorf("got %v, want ErrInvalidDecision", err)
	}
}

func TestDecidePendingApplication(t *testing.T) {
	store := pendingStore()
	s := NewLeaveService(store, zerolog.Nop())

	leave, err := s.Decide(context.Background(), 1, model.LeaveApproved, 2, "Computer Science")
	if err != nil {
		t.Fatalf("decide: %v", err)
	}
	if leave.Status != model.LeaveApproved {
		t.Errorf("status = %q, want approved", leave.Status)
	}
	if len(store.decidedIDs) != 1 || store.decidedIDs[0] != 1 {
		t.Errorf("decided IDs = %v, want [1]", store.decidedIDs)
	}
}

// A missing ID must surface the store's not-found error, not a
// conflict.
func TestDecideMissingApplication(t *testing.T) {
	s := NewLeaveService(pendingStore(), zerolog.Nop())

	_, err := s.Decide(context.Background(), 999, model.LeaveApproved, 2, "Computer Science")
	if !errors.Is(err, pgx.ErrNoRows) {
		t.Errorf("got %v, want pgx.ErrNoRows", err)
	}
}

func TestDecideAlreadyDecided(t *testing.T) {
	store := pendingStore()
	store.leaves[1].Status = model.LeaveApproved
	s := NewLeaveService(store, zerolog.Nop())

	_, err := s.Decide(context.Background(), 1, model.LeaveRejected, 2, "Computer Science")
	if !errors.Is(err, ErrLeaveAlreadyDecided) {
		t.Errorf("got %v, want ErrLeaveAlreadyDecided", err)
	}
	if len(store.decidedIDs) != 0 {
		t.Errorf("store was asked to decide %v, want no calls", store.decidedIDs)
	}
}

// Losing the race with a concurrent decision reads the same as an
// already-decided application.
func TestDecideLostRace(t *testing.T) {
	store := pendingStore()
	store.decideOK = false
	s := NewLeaveService(store, zerolog.Nop())

	_, err := s.Decide(context.Background(), 1, model.LeaveApproved, 2, "Computer Science")
	if !errors.Is(err, ErrLeaveAlreadyDecided) {
		t.Errorf("got %v, want ErrLeaveAlreadyDecided", err)
	}
}

func TestDecideOtherDepartment(t *testing.T) {
	store := pendingStore()
	s := NewLeaveService(store, zerolog.Nop())

	_, err := s.Decide(context.Background(), 1, model.LeaveApproved, 2, "Mathematics")
	if !errors.Is(err, ErrLeaveWrongDepartment) {
		t.Errorf("got %v, want ErrLeaveWrongDepartment", err)
	}
	if len(store.decidedIDs) != 0 {
		t.Errorf("store was asked to decide %v, want no calls", store.decidedIDs)
	}
}

func TestLeaveStatusDecided(t *testing.T) {
	cases := []struct {
		status model.LeaveStatus
		want   bool
	}{
		{model.LeavePending, false},
		{model.LeaveApproved, true},
		{model.LeaveRejected, true},
		{model.LeaveStatus("bogus"), false},
	}
	for _, tc := range cases {
		if got := tc.status.Decided(); got != tc.want {
			t.Errorf("%q.Decided() = %v, want %v", tc.status, got, tc.want)
		}
	}
}
