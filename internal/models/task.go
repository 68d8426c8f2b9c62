package models

import "time"

// Priority ranks a task
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists every accepted priority. Store constraints are built from it.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Task is a to-do item scoped to one wedding
type Task struct {
	ID          int64      `json:"id"`
	WeddingID   int64      `json:"wedding_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Completed   bool       `json:"completed"`
	Priority    Priority   `json:"priority"`
	Category    *string    `json:"category"`
	CreatedAt   time.Time  `json:"created_at"`
}

// CreateTaskInput has no completed field: new tasks always start open.
type CreateTaskInput struct {
	WeddingID   int64    `json:"wedding_id" validate:"required,gt=0"`
	Title       string   `json:"title" validate:"required"`
	Description *string  `json:"description"`
	DueDate     *Date    `json:"due_date"`
	Priority    Priority `json:"priority" validate:"omitempty,oneof=low medium high"`
	Category    *string  `json:"category"`
}

// UpdateTaskInput is a partial update of one task.
type UpdateTaskInput struct {
	ID          int64              `json:"id" validate:"required,gt=0"`
	Title       Optional[string]   `json:"title" validate:"omitempty,min=1"`
	Description Nullable[string]   `json:"description"`
	DueDate     Nullable[Date]     `json:"due_date"`
	Completed   Optional[bool]     `json:"completed"`
	Priority    Optional[Priority] `json:"priority" validate:"omitempty,oneof=low medium high"`
	Category    Nullable[string]   `json:"category"`
}

// Apply writes the supplied fields onto t. Identity fields are never touched.
func (in UpdateTaskInput) Apply(t *Task) {
	in.Title.Apply(&t.Title)
	in.Description.Apply(&t.Description)
	if in.DueDate.Set {
		t.DueDate = nil
		if in.DueDate.Valid {
			due := in.DueDate.Value.Time
			t.DueDate = &due
		}
	}
	in.Completed.Apply(&t.Completed)
	in.Priority.Apply(&t.Priority)
	in.Category.Apply(&t.Category)
}

// TaskFilter selects tasks of one wedding. Optional criteria are AND-combined.
type TaskFilter struct {
	WeddingID int64     `json:"wedding_id" validate:"required,gt=0"`
	Completed *bool     `json:"completed"`
	Priority  *Priority `json:"priority" validate:"omitempty,oneof=low medium high"`
}

// Match reports whether t satisfies every criterion of f.
func (f TaskFilter) Match(t Task) bool {
	if t.WeddingID != f.WeddingID {
		return false
	}
	if f.Completed != nil && t.Completed != *f.Completed {
		return false
	}
	if f.Priority != nil && t.Priority != *f.Priority {
		return false
	}
	return true
}
