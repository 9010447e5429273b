package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"marceneiro/internal/core/domain"
	"marceneiro/internal/core/ports"
)

// TaskRepository maps obra ids to their ordered task lists. Task ids come from
// a single counter shared by every obra and are never reused.
type TaskRepository struct {
	mu     sync.RWMutex
	tasks  map[uint64][]domain.Task
	lastID uint64
	now    func() time.Time
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{tasks: map[uint64][]domain.Task{}, now: time.Now}
}

func (r *TaskRepository) ListByProject(_ context.Context, projectID uint64) ([]domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := r.tasks[projectID]
	out := make([]domain.Task, len(list))
	copy(out, list)
	return out, nil
}

func (r *TaskRepository) Add(_ context.Context, projectID uint64, draft domain.TaskDraft) (domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	now := r.now().UTC()
	task := domain.Task{
		ID:        r.lastID,
		ProjectID: projectID,
		Title:     draft.Title,
		Status:    draft.Status,
		Notes:     draft.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.tasks[projectID] = append(r.tasks[projectID], task)
	return task, nil
}

func (r *TaskRepository) Update(_ context.Context, projectID, taskID uint64, patch domain.TaskPatch) (domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.tasks[projectID]
	for i := range list {
		if list[i].ID != taskID {
			continue
		}
		updated := patch.Apply(list[i])
		if !patch.IsEmpty() {
			updated.UpdatedAt = r.now().UTC()
		}
		list[i] = updated
		return updated, nil
	}
	return domain.Task{}, domain.ErrTaskNotFound
}

func (r *TaskRepository) DeleteByProject(_ context.Context, projectID uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.tasks, projectID)
	return nil
}

// Insert stores a task with a preset id and advances the counter past it.
func (r *TaskRepository) Insert(_ context.Context, task domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, list := range r.tasks {
		for _, existing := range list {
			if existing.ID == task.ID {
				return fmt.Errorf("task %d: %w", task.ID, domain.ErrDuplicateID)
			}
		}
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = r.now().UTC()
	}
	if task.UpdatedAt.IsZero() {
		task.UpdatedAt = task.CreatedAt
	}
	r.tasks[task.ProjectID] = append(r.tasks[task.ProjectID], task)
	if task.ID > r.lastID {
		r.lastID = task.ID
	}
	return nil
}
