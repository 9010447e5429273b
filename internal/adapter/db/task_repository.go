package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"marceneiro/internal/core/domain"
	"marceneiro/internal/core/ports"
)

const taskColumns = `id, obra_id, title, status, notes, created_at, updated_at`

// TaskRepository relies on AUTOINCREMENT so task ids are global and never reused.
type TaskRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

type taskRow struct {
	ID        uint64         `db:"id"`
	ProjectID uint64         `db:"obra_id"`
	Title     string         `db:"title"`
	Status    string         `db:"status"`
	Notes     sql.NullString `db:"notes"`
	CreatedAt string         `db:"created_at"`
	UpdatedAt string         `db:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db, now: time.Now}
}

func (r *TaskRepository) ListByProject(ctx context.Context, projectID uint64) ([]domain.Task, error) {
	var rows []taskRow
	err := r.db.SelectContext(ctx, &rows, `SELECT `+taskColumns+` FROM tarefas WHERE obra_id = ? ORDER BY rowid`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list tarefas: %w", err)
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		task, err := mapTaskRowToDomainTask(row)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (r *TaskRepository) Add(ctx context.Context, projectID uint64, draft domain.TaskDraft) (domain.Task, error) {
	now := formatTimestamp(r.now())
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO tarefas (obra_id, title, status, notes, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		projectID, draft.Title, string(draft.Status), nullString(draft.Notes), now, now,
	)
	if err != nil {
		return domain.Task{}, fmt.Errorf("insert tarefa: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Task{}, fmt.Errorf("tarefa id: %w", err)
	}
	return r.get(ctx, projectID, uint64(id))
}

func (r *TaskRepository) Update(ctx context.Context, projectID, taskID uint64, patch domain.TaskPatch) (domain.Task, error) {
	current, err := r.get(ctx, projectID, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	if patch.IsEmpty() {
		return current, nil
	}

	updated := patch.Apply(current)
	_, err = r.db.ExecContext(ctx,
		`UPDATE tarefas SET title = ?, status = ?, updated_at = ? WHERE id = ? AND obra_id = ?`,
		updated.Title, string(updated.Status), formatTimestamp(r.now()), taskID, projectID,
	)
	if err != nil {
		return domain.Task{}, fmt.Errorf("update tarefa: %w", err)
	}
	return r.get(ctx, projectID, taskID)
}

func (r *TaskRepository) DeleteByProject(ctx context.Context, projectID uint64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tarefas WHERE obra_id = ?`, projectID); err != nil {
		return fmt.Errorf("delete tarefas: %w", err)
	}
	return nil
}

func (r *TaskRepository) Insert(ctx context.Context, task domain.Task) error {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM tarefas WHERE id = ?`, task.ID); err != nil {
		return fmt.Errorf("check tarefa %d: %w", task.ID, err)
	}
	if count > 0 {
		return fmt.Errorf("task %d: %w", task.ID, domain.ErrDuplicateID)
	}

	createdAt := task.CreatedAt
	if createdAt.IsZero() {
		createdAt = r.now()
	}
	updatedAt := task.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tarefas (id, obra_id, title, status, notes, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		task.ID, task.ProjectID, task.Title, string(task.Status), nullString(task.Notes),
		formatTimestamp(createdAt), formatTimestamp(updatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert tarefa %d: %w", task.ID, err)
	}
	return nil
}

func (r *TaskRepository) get(ctx context.Context, projectID, taskID uint64) (domain.Task, error) {
	var row taskRow
	err := r.db.GetContext(ctx, &row, `SELECT `+taskColumns+` FROM tarefas WHERE id = ? AND obra_id = ?`, taskID, projectID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	if err != nil {
		return domain.Task{}, fmt.Errorf("get tarefa: %w", err)
	}
	return mapTaskRowToDomainTask(row)
}

func mapTaskRowToDomainTask(row taskRow) (domain.Task, error) {
	task := domain.Task{
		ID:        row.ID,
		ProjectID: row.ProjectID,
		Title:     row.Title,
		Status:    domain.Status(row.Status),
	}

	var err error
	if task.CreatedAt, err = parseTimestamp(row.CreatedAt); err != nil {
		return domain.Task{}, err
	}
	if task.UpdatedAt, err = parseTimestamp(row.UpdatedAt); err != nil {
		return domain.Task{}, err
	}

	if row.Notes.Valid {
		value := row.Notes.String
		task.Notes = &value
	}
	return task, nil
}
