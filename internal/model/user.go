package model

import "time"

// Role distinguishes the two portal account types. Faculty accounts use
// RoleTeacher; the portal treats "teacher" and "faculty" as one role.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

// Valid reports whether the role is one of the known portal roles.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleTeacher
}

// User represents a portal account. One record per username.
type User struct {
	ID             int       `json:"id"`
	Username       string    `json:"username"`
	PasswordHash   string    `json:"-"`
	Role           Role      `json:"role"`
	Name           string    `json:"name"`
	Department     string    `json:"department"`
	StudentNumber  *string   `json:"student_number,omitempty"`
	EmployeeNumber *string   `json:"employee_number,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// LoginRequest is the payload for authentication.
type LoginRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=4,max=128"`
}

// CreateUserRequest is the payload for creating a portal account.
type CreateUserRequest struct {
	Username       string `json:"username" binding:"required,min=3,max=64"`
	Password       string `json:"password" binding:"required,min=6,max=128"`
	Role           Role   `json:"role" binding:"required,oneof=student teacher"`
	Name           string `json:"name" binding:"required,min=2,max=100"`
	Department     string `json:"department" binding:"required,min=2,max=100"`
	StudentNumber  string `json:"student_number" binding:"omitempty,max=20"`
	EmployeeNumber string `json:"employee_number" binding:"omitempty,max=20"`
}
