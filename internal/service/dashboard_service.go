package service

import (
	"context"
	"sync"

	"github.com/campushub/portal-backend/internal/model"
	"github.com/campushub/portal-backend/internal/repository"
	"github.com/rs/zerolog"
)

// Panel data sources. Narrow interfaces so the aggregation logic can be
// exercised without a database.
type attendanceSource interface {
	ListByStudent(ctx context.Context, studentID int) ([]model.AttendanceRecord, error)
	SummaryByStudent(ctx context.Context, studentID int) (*model.AttendanceSummary, error)
}

type timetableSource interface {
	GetByDepartment(ctx context.Context, department string) (*model.Timetable, error)
}

type noticeSource interface {
	List(ctx context.Context, department string) ([]model.Notice, error)
}

type leaveSource interface {
	ListByStudent(ctx context.Context, studentID int) ([]model.LeaveApplication, error)
	ListPending(ctx context.Context, department string) ([]model.LeaveApplication, error)
}

type summarySource interface {
	GetSummary(ctx context.Context, department string) (*repository.DashboardSummary, error)
}

// Panel names reported in the unavailable list.
const (
	PanelAttendance = "attendance"
	PanelTimetable  = "timetable"
	PanelNotices    = "notices"
	PanelLeaves     = "leaves"
	PanelSummary    = "summary"
)

// StudentDashboard is the four-panel payload for a student.
type StudentDashboard struct {
	Attendance        []model.AttendanceRecord `json:"attendance"`
	AttendanceSummary *model.AttendanceSummary `json:"attendance_summary,omitempty"`
	Timetable         *model.Timetable         `json:"timetable"`
	Notices           []model.Notice           `json:"notices"`
	Leaves            []model.LeaveApplication `json:"leaves"`
	// Unavailable names the panels whose source failed. The remaining
	// panels carry their fetched data regardless.
	Unavailable []string `json:"unavailable,omitempty"`
}

// TeacherDashboard is the four-panel payload for a teacher.
type TeacherDashboard struct {
	Summary       *repository.DashboardSummary `json:"summary"`
	Timetable     *model.Timetable             `json:"timetable"`
	Notices       []model.Notice               `json:"notices"`
	PendingLeaves []model.LeaveApplication     `json:"pending_leaves"`
	Unavailable   []string                     `json:"unavailable,omitempty"`
}

// DashboardService assembles the role-shaped dashboard by fanning out
// one fetch per panel. The fetches are independent: a failure in one
// empties that panel and flags it, without touching the others. All
// fetches share the request context, so client disconnect cancels any
// still in flight.
type DashboardService struct {
	attendance attendanceSource
	timetable  timetableSource
	notices    noticeSource
	leaves     leaveSource
	summary    summarySource
	log        zerolog.Logger
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(
	attendance attendanceSource,
	timetable timetableSource,
	notices noticeSource,
	leaves leaveSource,
	summary summarySource,
	log zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		attendance: attendance,
		timetable:  timetable,
		notices:    notices,
		leaves:     leaves,
		summary:    summary,
		log:        log.With().Str("component", "dashboard_service").Logger(),
	}
}

// ForStudent fetches the student's four panels concurrently.
func (s *DashboardService) ForStudent(ctx context.Context, studentID int, department string) *StudentDashboard {
	d := &StudentDashboard{
		Attendance: []model.AttendanceRecord{},
		Notices:    []model.Notice{},
		Leaves:     []model.LeaveApplication{},
	}

	var (
		wg     sync.WaitGroup
		failMu sync.Mutex
	)
	fail := func(panel string, err error) {
		s.log.Warn().Err(err).Str("panel", panel).Msg("Dashboard panel fetch failed")
		failMu.Lock()
		d.Unavailable = append(d.Unavailable, panel)
		failMu.Unlock()
	}

	wg.Add(4)

	go func() {
		defer wg.Done()
		records, err := s.attendance.ListByStudent(ctx, studentID)
		if err != nil {
			fail(PanelAttendance, err)
			return
		}
		d.Attendance = records
		// The summary shares the panel's fate: it is decoration on the
		// same data, not a fifth panel.
		if summary, err := s.attendance.SummaryByStudent(ctx, studentID); err == nil {
			d.AttendanceSummary = summary
		}
	}()

	go func() {
		defer wg.Done()
		t, err := s.timetable.GetByDepartment(ctx, department)
		if err != nil {
			fail(PanelTimetable, err)
			return
		}
		d.Timetable = t
	}()

	go func() {
		defer wg.Done()
		notices, err := s.notices.List(ctx, department)
		if err != nil {
			fail(PanelNotices, err)
			return
		}
		d.Notices = notices
	}()

	go func() {
		defer wg.Done()
		leaves, err := s.leaves.ListByStudent(ctx, studentID)
		if err != nil {
			fail(PanelLeaves, err)
			return
		}
		d.Leaves = leaves
	}()

	wg.Wait()
	return d
}

// ForTeacher fetches the teacher's four panels concurrently.
func (s *DashboardService) ForTeacher(ctx context.Context, department string) *TeacherDashboard {
	d := &TeacherDashboard{
		Notices:       []model.Notice{},
		PendingLeaves: []model.LeaveApplication{},
	}

	var (
		wg     sync.WaitGroup
		failMu sync.Mutex
	)
	fail := func(panel string, err error) {
		s.log.Warn().Err(err).Str("panel", panel).Msg("Dashboard panel fetch failed")
		failMu.Lock()
		d.Unavailable = append(d.Unavailable, panel)
		failMu.Unlock()
	}

	wg.Add(4)

	go func() {
		defer wg.Done()
		summary, err := s.summary.GetSummary(ctx, department)
		if err != nil {
			fail(PanelSummary, err)
			return
		}
		d.Summary = summary
	}()

	go func() {
		defer wg.Done()
		t, err := s.timetable.GetByDepartment(ctx, department)
		if err != nil {
			fail(PanelTimetable, err)
			return
		}
		d.Timetable = t
	}()

	go func() {
		defer wg.Done()
		notices, err := s.notices.List(ctx, department)
		if err != nil {
			fail(PanelNotices, err)
			return
		}
		d.Notices = notices
	}()

	go func() {
		defer wg.Done()
		leaves, err := s.leaves.ListPending(ctx, department)
		if err != nil {
			fail(PanelLeaves, err)
			return
		}
		d.PendingLeaves = leaves
	}()

	wg.Wait()
	return d
}
