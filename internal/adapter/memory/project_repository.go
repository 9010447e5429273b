package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"marceneiro/internal/core/domain"
	"marceneiro/internal/core/ports"
)

// ProjectRepository keeps obras in a slice, in insertion order.
type ProjectRepository struct {
	mu       sync.RWMutex
	projects []domain.Project
	now      func() time.Time
}

var _ ports.ProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{projects: []domain.Project{}, now: time.Now}
}

func (r *ProjectRepository) List(_ context.Context) ([]domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Project, len(r.projects))
	copy(out, r.projects)
	return out, nil
}

func (r *ProjectRepository) Get(_ context.Context, id uint64) (domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.Project{}, domain.ErrProjectNotFound
	}
	return r.projects[i], nil
}

// Add assigns max(existing ids)+1, or 1 on an empty store.
func (r *ProjectRepository) Add(_ context.Context, draft domain.ProjectDraft) (domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var maxID uint64
	for _, p := range r.projects {
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	now := r.now().UTC()
	project := domain.Project{
		ID:               maxID + 1,
		Name:             draft.Name,
		Client:           draft.Client,
		StartDate:        draft.StartDate,
		ExpectedDelivery: draft.ExpectedDelivery,
		Responsible:      draft.Responsible,
		Notes:            draft.Notes,
		Status:           draft.InitialStatus(),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	r.projects = append(r.projects, project)
	return project, nil
}

func (r *ProjectRepository) Delete(_ context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.ErrProjectNotFound
	}
	r.projects = append(r.projects[:i], r.projects[i+1:]...)
	return nil
}

func (r *ProjectRepository) CycleStatus(_ context.Context, id uint64) (domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.Project{}, domain.ErrProjectNotFound
	}
	r.projects[i].Status = r.projects[i].Status.Next()
	r.projects[i].UpdatedAt = r.now().UTC()
	return r.projects[i], nil
}

func (r *ProjectRepository) Insert(_ context.Context, project domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(project.ID) >= 0 {
		return fmt.Errorf("obra %d: %w", project.ID, domain.ErrDuplicateID)
	}
	if project.CreatedAt.IsZero() {
		project.CreatedAt = r.now().UTC()
	}
	if project.UpdatedAt.IsZero() {
		project.UpdatedAt = project.CreatedAt
	}
	r.projects = append(r.projects, project)
	return nil
}

// Ping always succeeds; the store has nothing to lose contact with.
func (r *ProjectRepository) Ping(_ context.Context) error {
	return nil
}

func (r *ProjectRepository) indexOf(id uint64) int {
	for i, p := range r.projects {
		if p.ID == id {
			return i
		}
	}
	return -1
}
