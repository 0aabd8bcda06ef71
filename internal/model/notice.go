package model

import "time"

// NoticePriority ranks a notice on the board.
type NoticePriority string

const (
	NoticePriorityLow    NoticePriority = "low"
	NoticePriorityNormal NoticePriority = "normal"
	NoticePriorityHigh   NoticePriority = "high"
)

// Notice is a board announcement. Read-only for students.
type Notice struct {
	ID         int            `json:"id"`
	Title      string         `json:"title"`
	Content    string         `json:"content"`
	Category   string         `json:"category"`
	Priority   NoticePriority `json:"priority"`
	AuthorID   int            `json:"author_id"`
	AuthorName string         `json:"author_name,omitempty"`
	Department string         `json:"department"`
	ExpiresAt  *time.Time     `json:"expires_at,omitempty"`
	PostedAt   time.Time      `json:"posted_at"`
}

// CreateNoticeRequest is the payload for posting a notice.
type CreateNoticeRequest struct {
	Title     string         `json:"title" binding:"required,min=3,max=200"`
	Content   string         `json:"content" binding:"required,min=3"`
	Category  string         `json:"category" binding:"required,min=2,max=50"`
	Priority  NoticePriority `json:"priority" binding:"required,oneof=low normal high"`
	ExpiresAt *time.Time     `json:"expires_at" binding:"omitempty"`
}
