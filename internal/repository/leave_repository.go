package repository

import (
	"context"

	"github.com/campushub/portal-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LeaveRepository handles leave application data access.
type LeaveRepository struct {
	pool *pgxpool.Pool
}

// NewLeaveRepository creates a new LeaveRepository.
func NewLeaveRepository(pool *pgxpool.Pool) *LeaveRepository {
	return &LeaveRepository{pool: pool}
}

// GetByID retrieves a single leave application with the student's name
// and department joined in.
func (r *LeaveRepository) GetByID(ctx context.Context, id int) (*model.LeaveApplication, error) {
	l := &model.LeaveApplication{}
	err := r.pool.QueryRow(ctx,
		`SELECT l.id, l.student_id, u.name, u.department, l.leave_type, l.date_from,
		        l.date_to, l.reason, l.status, l.decided_by, l.decided_at, l.submitted_at
		 FROM leave_applications l
		 JOIN users u ON u.id = l.student_id
		 WHERE l.id = $1`, id,
	).Scan(&l.ID, &l.StudentID, &l.StudentName, &l.StudentDepartment, &l.LeaveType,
		&l.DateFrom, &l.DateTo, &l.Reason, &l.Status, &l.DecidedBy, &l.DecidedAt, &l.SubmittedAt)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// ListByStudent retrieves a student's applications, newest first.
func (r *LeaveRepository) ListByStudent(ctx context.Context, studentID int) ([]model.LeaveApplication, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, student_id, leave_type, date_from, date_to, reason, status,
		        decided_by, decided_at, submitted_at
		 FROM leave_applications
		 WHERE student_id = $1
		 ORDER BY submitted_at DESC`,
		studentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leaves := []model.LeaveApplication{}
	for rows.Next() {
		var l model.LeaveApplication
		if err := rows.Scan(&l.ID, &l.StudentID, &l.LeaveType, &l.DateFrom, &l.DateTo,
			&l.Reason, &l.Status, &l.DecidedBy, &l.DecidedAt, &l.SubmittedAt); err != nil {
			return nil, err
		}
		leaves = append(leaves, l)
	}
	return leaves, rows.Err()
}

// ListPendingByDepartment retrieves the pending queue for a department,
// oldest submission first, with the student's name joined in.
func (r *LeaveRepository) ListPendingByDepartment(ctx context.Context, department string) ([]model.LeaveApplication, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT l.id, l.student_id, u.name, l.leave_type, l.date_from, l.date_to,
		        l.reason, l.status, l.decided_by, l.decided_at, l.submitted_at
		 FROM leave_applications l
		 JOIN users u ON u.id = l.student_id
		 WHERE l.status = 'pending' AND u.department = $1
		 ORDER BY l.submitted_at ASC`,
		department,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leaves := []model.LeaveApplication{}
	for rows.Next() {
		var l model.LeaveApplication
		if err := rows.Scan(&l.ID, &l.StudentID, &l.StudentName, &l.LeaveType,
			&l.DateFrom, &l.DateTo, &l.Reason, &l.Status,
			&l.DecidedBy, &l.DecidedAt, &l.SubmittedAt); err != nil {
			return nil, err
		}
		leaves = append(leaves, l)
	}
	return leaves, rows.Err()
}

// Create inserts a new pending application.
func (r *LeaveRepository) Create(ctx context.Context, l *model.LeaveApplication) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO leave_applications (student_id, leave_type, date_from, date_to, reason, status)
		 VALUES ($1, $2, $3, $4, $5, 'pending')
		 RETURNING id, status, submitted_at`,
		l.StudentID, l.LeaveType, l.DateFrom, l.DateTo, l.Reason,
	).Scan(&l.ID, &l.Status, &l.SubmittedAt)
}

// Decide transitions a pending application to approved or rejected.
// Returns false if the application was not pending (already decided or missing).
func (r *LeaveRepository) Decide(ctx context.Context, id int, status model.LeaveStatus, decidedBy int) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE leave_applications
		 SET status = $1, decided_by = $2, decided_at = NOW()
		 WHERE id = $3 AND status = 'pending'`,
		status, decidedBy, id,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// CountPendingOlderThan returns pending applications submitted more than
// the given number of days ago. Used by the maintenance worker.
func (r *LeaveRepository) CountPendingOlderThan(ctx context.Context, days int) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM leave_applications
		 WHERE status = 'pending' AND submitted_at < NOW() - ($1 || ' days')::interval`,
		days,
	).Scan(&n)
	return n, err
}
