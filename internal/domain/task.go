package domain

import (
	"context"
	"time"
)

type Task struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TaskFilter narrows a listing. Completed is a tri-state: nil means
// "either". Search matches title or description case-insensitively.
type TaskFilter struct {
	Completed *bool
	Search    string
	Limit     int
	Offset    int
}

// TaskPatch is a partial update: nil fields keep their stored value.
type TaskPatch struct {
	Title       *string
	Description *string
	Completed   *bool
}

// TaskRepository operations are always scoped to an owner id; a task id
// belonging to another owner behaves exactly like a nonexistent one.
type TaskRepository interface {
	List(ctx context.Context, ownerID string, f TaskFilter) ([]*Task, error)
	Create(ctx context.Context, t *Task) error
	Update(ctx context.Context, ownerID, taskID string, p TaskPatch) (*Task, error)
	Delete(ctx context.Context, ownerID, taskID string) error
}
