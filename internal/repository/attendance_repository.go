package repository

import (
	"context"

	"github.com/campushub/portal-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AttendanceRepository handles attendance record data access.
type AttendanceRepository struct {
	pool *pgxpool.Pool
}

// NewAttendanceRepository creates a new AttendanceRepository.
func NewAttendanceRepository(pool *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{pool: pool}
}

// ListByStudent retrieves a student's attendance records, newest date first.
func (r *AttendanceRepository) ListByStudent(ctx context.Context, studentID int) ([]model.AttendanceRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, student_id, subject, date::text, status, recorded_by, created_at
		 FROM attendance_records
		 WHERE student_id = $1
		 ORDER BY date DESC, subject`,
		studentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []model.AttendanceRecord{}
	for rows.Next() {
		var rec model.AttendanceRecord
		if err := rows.Scan(&rec.ID, &rec.StudentID, &rec.Subject, &rec.Date,
			&rec.Status, &rec.RecordedBy, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Mark records a (student, subject, date) status. Re-marking the same
// triple overwrites the previous status rather than duplicating it.
func (r *AttendanceRepository) Mark(ctx context.Context, rec *model.AttendanceRecord) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO attendance_records (student_id, subject, date, status, recorded_by)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (student_id, subject, date)
		 DO UPDATE SET status = EXCLUDED.status, recorded_by = EXCLUDED.recorded_by
		 RETURNING id, created_at`,
		rec.StudentID, rec.Subject, rec.Date, rec.Status, rec.RecordedBy,
	).Scan(&rec.ID, &rec.CreatedAt)
}

// SummaryByStudent aggregates a student's present/absent counts.
func (r *AttendanceRepository) SummaryByStudent(ctx context.Context, studentID int) (*model.AttendanceSummary, error) {
	s := &model.AttendanceSummary{}
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE status = 'present'),
		        COUNT(*) FILTER (WHERE status = 'absent')
		 FROM attendance_records WHERE student_id = $1`,
		studentID,
	).Scan(&s.Total, &s.Present, &s.Absent)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// CountMarkedOn returns how many records exist for a given date.
func (r *AttendanceRepository) CountMarkedOn(ctx context.Context, date string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM attendance_records WHERE date = $1`, date).Scan(&n)
	return n, err
}
