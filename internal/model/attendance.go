package model

import "time"

// AttendanceStatus is the recorded presence state for one subject-day.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
)

// AttendanceRecord is one (student, subject, date) mark. The triple is
// unique; re-marking the same triple overwrites the previous status.
type AttendanceRecord struct {
	ID         int              `json:"id"`
	StudentID  int              `json:"student_id"`
	Subject    string           `json:"subject"`
	Date       string           `json:"date"` // YYYY-MM-DD
	Status     AttendanceStatus `json:"status"`
	RecordedBy int              `json:"recorded_by"`
	CreatedAt  time.Time        `json:"created_at"`
}

// MarkAttendanceRequest is the payload for a teacher marking attendance.
type MarkAttendanceRequest struct {
	StudentID int              `json:"student_id" binding:"required"`
	Subject   string           `json:"subject" binding:"required,min=2,max=100"`
	Date      string           `json:"date" binding:"required,datetime=2006-01-02"`
	Status    AttendanceStatus `json:"status" binding:"required,oneof=present absent"`
}

// AttendanceSummary aggregates a student's marks for the dashboard.
type AttendanceSummary struct {
	Total   int `json:"total"`
	Present int `json:"present"`
	Absent  int `json:"absent"`
}
