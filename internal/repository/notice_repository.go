package repository

import (
	"context"

	"github.com/campushub/portal-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NoticeRepository handles notice board data access.
type NoticeRepository struct {
	pool *pgxpool.Pool
}

// NewNoticeRepository creates a new NoticeRepository.
func NewNoticeRepository(pool *pgxpool.Pool) *NoticeRepository {
	return &NoticeRepository{pool: pool}
}

// ListByDepartment retrieves current notices for a department, newest first.
// Expired notices are excluded.
func (r *NoticeRepository) ListByDepartment(ctx context.Context, department string, limit int) ([]model.Notice, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT n.id, n.title, n.content, n.category, n.priority, n.author_id, u.name,
		        n.department, n.expires_at, n.posted_at
		 FROM notices n
		 JOIN users u ON u.id = n.author_id
		 WHERE n.department = $1
		   AND (n.expires_at IS NULL OR n.expires_at > NOW())
		 ORDER BY n.posted_at DESC
		 LIMIT $2`,
		department, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notices := []model.Notice{}
	for rows.Next() {
		var n model.Notice
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.Category, &n.Priority,
			&n.AuthorID, &n.AuthorName, &n.Department, &n.ExpiresAt, &n.PostedAt); err != nil {
			return nil, err
		}
		notices = append(notices, n)
	}
	return notices, rows.Err()
}

// Create inserts a new notice.
func (r *NoticeRepository) Create(ctx context.Context, n *model.Notice) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO notices (title, content, category, priority, author_id, department, expires_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, posted_at`,
		n.Title, n.Content, n.Category, n.Priority, n.AuthorID, n.Department, n.ExpiresAt,
	).Scan(&n.ID, &n.PostedAt)
}

// DeleteExpired removes notices whose expiry has passed. Returns the count.
func (r *NoticeRepository) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM notices WHERE expires_at IS NOT NULL AND expires_at <= NOW()`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
