package repository

import (
	"context"

	"github.com/campushub/portal-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TimetableRepository handles weekly timetable data access.
type TimetableRepository struct {
	pool *pgxpool.Pool
}

// NewTimetableRepository creates a new TimetableRepository.
func NewTimetableRepository(pool *pgxpool.Pool) *TimetableRepository {
	return &TimetableRepository{pool: pool}
}

// GetByDepartment retrieves a department's timetable with its slots in order.
func (r *TimetableRepository) GetByDepartment(ctx context.Context, department string) (*model.Timetable, error) {
	t := &model.Timetable{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, department, week_label, created_at, updated_at
		 FROM timetables WHERE department = $1`,
		department,
	).Scan(&t.ID, &t.Department, &t.WeekLabel, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, day, subject, start_time, end_time, room, instructor, position
		 FROM timetable_slots
		 WHERE timetable_id = $1
		 ORDER BY position`,
		t.ID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	t.Slots = []model.TimetableSlot{}
	for rows.Next() {
		var s model.TimetableSlot
		if err := rows.Scan(&s.ID, &s.Day, &s.Subject, &s.StartTime, &s.EndTime,
			&s.Room, &s.Instructor, &s.Position); err != nil {
			return nil, err
		}
		t.Slots = append(t.Slots, s)
	}
	return t, rows.Err()
}

// Replace swaps a department's timetable for a new week label and slot set
// inside one transaction.
func (r *TimetableRepository) Replace(ctx context.Context, t *model.Timetable) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO timetables (department, week_label)
		 VALUES ($1, $2)
		 ON CONFLICT (department)
		 DO UPDATE SET week_label = EXCLUDED.week_label, updated_at = CURRENT_TIMESTAMP
		 RETURNING id, created_at, updated_at`,
		t.Department, t.WeekLabel,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM timetable_slots WHERE timetable_id = $1`, t.ID); err != nil {
		return err
	}

	for i := range t.Slots {
		s := &t.Slots[i]
		s.Position = i
		err := tx.QueryRow(ctx,
			`INSERT INTO timetable_slots (timetable_id, day, subject, start_time, end_time, room, instructor, position)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 RETURNING id`,
			t.ID, s.Day, s.Subject, s.StartTime, s.EndTime, s.Room, s.Instructor, s.Position,
		).Scan(&s.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
