package model

import "time"

// LeaveStatus is owned by the server; clients only ever read it.
type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

// Decided reports whether the status is a terminal decision.
// Pending applications can only move to approved or rejected.
func (s LeaveStatus) Decided() bool {
	return s == LeaveApproved || s == LeaveRejected
}

// LeaveApplication is a student-submitted absence request.
type LeaveApplication struct {
	ID          int         `json:"id"`
	StudentID   int         `json:"student_id"`
	StudentName string      `json:"student_name,omitempty"`
	// StudentDepartment is carried for server-side checks only.
	StudentDepartment string `json:"-"`
	LeaveType   string      `json:"leave_type"`
	DateFrom    string      `json:"date_from"` // YYYY-MM-DD
	DateTo      string      `json:"date_to"`   // YYYY-MM-DD
	Reason      string      `json:"reason"`
	Status      LeaveStatus `json:"status"`
	DecidedBy   *int        `json:"decided_by,omitempty"`
	DecidedAt   *time.Time  `json:"decided_at,omitempty"`
	SubmittedAt time.Time   `json:"submitted_at"`
}

// SubmitLeaveRequest is the payload for a student submitting leave.
// All three of date_from, date_to and reason are required.
type SubmitLeaveRequest struct {
	LeaveType string `json:"leave_type" binding:"required,min=2,max=40"`
	DateFrom  string `json:"date_from" binding:"required,datetime=2006-01-02"`
	DateTo    string `json:"date_to" binding:"required,datetime=2006-01-02"`
	Reason    string `json:"reason" binding:"required,min=3,max=500"`
}

// DecideLeaveRequest is the payload for a faculty decision.
type DecideLeaveRequest struct {
	Status LeaveStatus `json:"status" binding:"required,oneof=approved rejected"`
}
