package model

import "time"

// TimetableSlot is a single lesson cell within a week.
type TimetableSlot struct {
	ID         int    `json:"id"`
	Day        string `json:"day"`
	Subject    string `json:"subject"`
	StartTime  string `json:"start_time"` // HH:MM
	EndTime    string `json:"end_time"`   // HH:MM
	Room       string `json:"room"`
	Instructor string `json:"instructor"`
	Position   int    `json:"position"`
}

// Timetable is a department's weekly schedule with ordered slots.
type Timetable struct {
	ID         int             `json:"id"`
	Department string          `json:"department"`
	WeekLabel  string          `json:"week_label"`
	Slots      []TimetableSlot `json:"slots"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
