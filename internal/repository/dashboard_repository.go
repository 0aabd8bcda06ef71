package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DashboardRepository handles the teacher dashboard's summary counts.
type DashboardRepository struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository creates a new DashboardRepository.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{pool: pool}
}

// DashboardSummary holds the high-level counts shown on the teacher dashboard.
type DashboardSummary struct {
	TotalStudents int `json:"total_students"`
	TotalNotices  int `json:"total_notices"`
	PendingLeaves int `json:"pending_leaves"`
	MarkedToday   int `json:"marked_today"`
}

// GetSummary retrieves the summary counts for one department.
func (r *DashboardRepository) GetSummary(ctx context.Context, department string) (*DashboardSummary, error) {
	s := &DashboardSummary{}
	err := r.pool.QueryRow(ctx,
		`SELECT
			(SELECT COUNT(*) FROM users WHERE role = 'student' AND department = $1),
			(SELECT COUNT(*) FROM notices WHERE department = $1
			    AND (expires_at IS NULL OR expires_at > NOW())),
			(SELECT COUNT(*) FROM leave_applications l
			    JOIN users u ON u.id = l.student_id
			    WHERE l.status = 'pending' AND u.department = $1),
			(SELECT COUNT(*) FROM attendance_records a
			    JOIN users u ON u.id = a.student_id
			    WHERE a.date = CURRENT_DATE AND u.department = $1)`,
		department,
	).Scan(&s.TotalStudents, &s.TotalNotices, &s.PendingLeaves, &s.MarkedToday)
	if err != nil {
		return nil, err
	}
	return s, nil
}
