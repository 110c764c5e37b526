package models

import "time"

// Task priorities. Anything else is rejected at the API boundary.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// ValidPriority reports whether p is one of the three known priorities.
func ValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Task is a single planner item for a calendar day.
type Task struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	Priority  string    `json:"priority"`
	Date      time.Time `json:"date"`
}

// CreateTaskRequest is the payload for creating a new task.
type CreateTaskRequest struct {
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	Priority  string    `json:"priority"`
	Date      time.Time `json:"date"`
}

// TaskPatch carries partial task updates. Omitted fields are left unchanged.
type TaskPatch struct {
	Title     *string    `json:"title"`
	Completed *bool      `json:"completed"`
	Priority  *string    `json:"priority"`
	Date      *time.Time `json:"date"`
}
