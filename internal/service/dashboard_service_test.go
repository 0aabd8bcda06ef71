package service

import (
	"context"
	"errors"
	"testing"

	"github.com/campushub/portal-backend/internal/model"
	"github.com/campushub/portal-backend/internal/repository"
	"github.com/rs/zerolog"
)

var errSourceDown = errors.New("source down")

type fakeAttendance struct {
	records []model.AttendanceRecord
	err     error
}

func (f *fakeAttendance) ListByStudent(ctx context.Context, studentID int) ([]model.AttendanceRecord, error) {
	return f.records, f.err
}

func (f *fakeAttendance) SummaryByStudent(ctx context.Context, studentID int) (*model.AttendanceSummary, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &model.AttendanceSummary{Total: len(f.records)}, nil
}

type fakeTimetable struct {
	timetable *model.Timetable
	err       error
}

func (f *fakeTimetable) GetByDepartment(ctx context.Context, department string) (*model.Timetable, error) {
	return f.timetable, f.err
}

type fakeNotices struct {
	notices []model.Notice
	err     error
}

func (f *fakeNotices) List(ctx context.Context, department string) ([]model.Notice, error) {
	return f.notices, f.err
}

type fakeLeaves struct {
	leaves []model.LeaveApplication
	err    error
}

func (f *fakeLeaves) ListByStudent(ctx context.Context, studentID int) ([]model.LeaveApplication, error) {
	return f.leaves, f.err
}

func (f *fakeLeaves) ListPending(ctx context.Context, department string) ([]model.LeaveApplication, error) {
	return f.leaves, f.err
}

type fakeSummary struct {
	summary *repository.DashboardSummary
	err     error
}

func (f *fakeSummary) GetSummary(ctx context.Context, department string) (*repository.DashboardSummary, error) {
	return f.summary, f.err
}

func newTestDashboard(a attendanceSource, t timetableSource, n noticeSource, l leaveSource, s summarySource) *DashboardService {
	return NewDashboardService(a, t, n, l, s, zerolog.Nop())
}

func TestForStudentAllPanels(t *testing.T) {
	svc := newTestDashboard(
		&fakeAttendance{records: []model.AttendanceRecord{{Subject: "Algorithms", Date: "2024-01-01", Status: model.AttendancePresent}}},
		&fakeTimetable{timetable: &model.Timetable{Department: "CS", WeekLabel: "Week 1"}},
		&fakeNotices{notices: []model.Notice{{Title: "Welcome"}}},
		&fakeLeaves{leaves: []model.LeaveApplication{{Reason: "fever", Status: model.LeavePending}}},
		&fakeSummary{},
	)

	d := svc.ForStudent(context.Background(), 1, "CS")

	if len(d.Unavailable) != 0 {
		t.Errorf("unavailable = %v, want none", d.Unavailable)
	}
	if len(d.Attendance) != 1 || len(d.Notices) != 1 || len(d.Leaves) != 1 {
		t.Errorf("panels incomplete: attendance=%d notices=%d leaves=%d",
			len(d.Attendance), len(d.Notices), len(d.Leaves))
	}
	if d.Timetable == nil || d.Timetable.WeekLabel != "Week 1" {
		t.Errorf("timetable panel missing or wrong: %+v", d.Timetable)
	}
	if d.AttendanceSummary == nil || d.AttendanceSummary.Total != 1 {
		t.Errorf("attendance summary missing or wrong: %+v", d.AttendanceSummary)
	}
}

// One failing panel must not block or empty the other three.
func TestForStudentIndependentFailure(t *testing.T) {
	svc := newTestDashboard(
		&fakeAttendance{err: errSourceDown},
		&fakeTimetable{timetable: &model.Timetable{Department: "CS"}},
		&fakeNotices{notices: []model.Notice{{Title: "Exam schedule"}}},
		&fakeLeaves{leaves: []model.LeaveApplication{{Status: model.LeaveApproved}}},
		&fakeSummary{},
	)

	d := svc.ForStudent(context.Background(), 1, "CS")

	if len(d.Unavailable) != 1 || d.Unavailable[0] != PanelAttendance {
		t.Fatalf("unavailable = %v, want [%s]", d.Unavailable, PanelAttendance)
	}
	if len(d.Attendance) != 0 {
		t.Errorf("failed panel returned data: %v", d.Attendance)
	}
	if d.Timetable == nil {
		t.Error("timetable panel lost alongside attendance failure")
	}
	if len(d.Notices) != 1 {
		t.Error("notices panel lost alongside attendance failure")
	}
	if len(d.Leaves) != 1 {
		t.Error("leaves panel lost alongside attendance failure")
	}
}

func TestForStudentAllPanelsFail(t *testing.T) {
	svc := newTestDashboard(
		&fakeAttendance{err: errSourceDown},
		&fakeTimetable{err: errSourceDown},
		&fakeNotices{err: errSourceDown},
		&fakeLeaves{err: errSourceDown},
		&fakeSummary{},
	)

	d := svc.ForStudent(context.Background(), 1, "CS")

	if len(d.Unavailable) != 4 {
		t.Errorf("unavailable = %v, want 4 panels", d.Unavailable)
	}
	// Empty-state lists, not nils: the client renders "no records found".
	if d.Attendance == nil || d.Notices == nil || d.Leaves == nil {
		t.Error("failed panels should render as empty lists, not null")
	}
}

func TestForTeacherIndependentFailure(t *testing.T) {
	svc := newTestDashboard(
		&fakeAttendance{},
		&fakeTimetable{timetable: &model.Timetable{Department: "CS"}},
		&fakeNotices{err: errSourceDown},
		&fakeLeaves{leaves: []model.LeaveApplication{{Status: model.LeavePending}}},
		&fakeSummary{summary: &repository.DashboardSummary{TotalStudents: 20}},
	)

	d := svc.ForTeacher(context.Background(), "CS")

	if len(d.Unavailable) != 1 || d.Unavailable[0] != PanelNotices {
		t.Fatalf("unavailable = %v, want [%s]", d.Unavailable, PanelNotices)
	}
	if d.Summary == nil || d.Summary.TotalStudents != 20 {
		t.Errorf("summary panel missing or wrong: %+v", d.Summary)
	}
	if len(d.PendingLeaves) != 1 {
		t.Error("pending leaves panel lost alongside notices failure")
	}
}
