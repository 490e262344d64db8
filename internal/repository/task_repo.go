package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"taskboard/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultListLimit = 50

type TaskRepository struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

// List returns the owner's tasks, newest first. Filter fields are optional;
// search matches title or description case-insensitively.
func (r *TaskRepository) List(ctx context.Context, ownerID string, f domain.TaskFilter) ([]*domain.Task, error) {
	where := []string{"user_id = $1"}
	args := []any{ownerID}

	if f.Completed != nil {
		args = append(args, *f.Completed)
		where = append(where, fmt.Sprintf("completed = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		where = append(where, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", len(args), len(args)))
	}

	limit := f.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}
	args = append(args, limit, offset)

	query := `SELECT id, user_id, title, description, completed, created_at, updated_at
		 FROM tasks
		 WHERE ` + strings.Join(where, " AND ") +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := []*domain.Task{}
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Completed, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		res = append(res, &t)
	}
	return res, rows.Err()
}

func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) error {
	t.ID = uuid.NewString()

	return r.db.QueryRow(ctx,
		`INSERT INTO tasks (id, user_id, title, description, completed)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at, updated_at`,
		t.ID, t.UserID, t.Title, t.Description, t.Completed,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
}

// Update applies a partial patch in one statement; unset fields keep their
// stored value. Concurrent updates are last-write-wins per field, there is
// no optimistic-concurrency token.
func (r *TaskRepository) Update(ctx context.Context, ownerID, taskID string, p domain.TaskPatch) (*domain.Task, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE tasks
		 SET title       = COALESCE($3, title),
		     description = COALESCE($4, description),
		     completed   = COALESCE($5, completed),
		     updated_at  = now()
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, user_id, title, description, completed, created_at, updated_at`,
		taskID, ownerID, p.Title, p.Description, p.Completed,
	)

	var t domain.Task
	if err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Completed, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TaskRepository) Delete(ctx context.Context, ownerID, taskID string) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM tasks WHERE id = $1 AND user_id = $2`,
		taskID, ownerID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
