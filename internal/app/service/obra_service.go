package service

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"marceneiro/internal/core/domain"
	"marceneiro/internal/core/ports"
)

// ObraService is the command surface over the obra and task stores. It also
// owns the selection, which only decides which board SelectedBoard shows.
type ObraService struct {
	projectRepository ports.ProjectRepository
	taskRepository    ports.TaskRepository

	// writeMu keeps a task insert from landing between the two steps of an
	// obra delete, which would leave a task list under a reusable id.
	writeMu sync.Mutex

	mu        sync.RWMutex
	selection domain.Selection
}

func NewObraService(projectRepository ports.ProjectRepository, taskRepository ports.TaskRepository) *ObraService {
	return &ObraService{
		projectRepository: projectRepository,
		taskRepository:    taskRepository,
	}
}

func (s *ObraService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return s.projectRepository.List(ctx)
}

func (s *ObraService) GetProject(ctx context.Context, id uint64) (domain.Project, error) {
	return s.projectRepository.Get(ctx, id)
}

func (s *ObraService) AddProject(ctx context.Context, draft domain.ProjectDraft) (domain.Project, error) {
	project, err := s.projectRepository.Add(ctx, draft)
	if err != nil {
		return domain.Project{}, err
	}
	zap.L().Debug("obra added", zap.Uint64("obra_id", project.ID), zap.String("status", project.Status.String()))
	return project, nil
}

// DeleteProject removes the obra and its task list. Deleting the selected obra
// clears the selection; any other selection is left alone.
func (s *ObraService) DeleteProject(ctx context.Context, id uint64) error {
	s.writeMu.Lock()
	err := s.deleteProject(ctx, id)
	s.writeMu.Unlock()
	if err != nil {
		return err
	}

	s.mu.Lock()
	if s.selection.Is(id) {
		s.selection = domain.Selection{}
	}
	s.mu.Unlock()

	zap.L().Debug("obra deleted", zap.Uint64("obra_id", id))
	return nil
}

func (s *ObraService) deleteProject(ctx context.Context, id uint64) error {
	if err := s.projectRepository.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.taskRepository.DeleteByProject(ctx, id); err != nil {
		return fmt.Errorf("delete tasks of obra %d: %w", id, err)
	}
	return nil
}

// CycleProjectStatus moves the obra exactly one step forward in the status cycle.
func (s *ObraService) CycleProjectStatus(ctx context.Context, id uint64) (domain.Project, error) {
	project, err := s.projectRepository.CycleStatus(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}
	zap.L().Debug("obra status cycled", zap.Uint64("obra_id", id), zap.String("status", project.Status.String()))
	return project, nil
}

func (s *ObraService) ListTasks(ctx context.Context, projectID uint64) ([]domain.Task, error) {
	return s.taskRepository.ListByProject(ctx, projectID)
}

func (s *ObraService) AddTask(ctx context.Context, projectID uint64, draft domain.TaskDraft) (domain.Task, error) {
	if !draft.Status.IsValid() {
		return domain.Task{}, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, draft.Status)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if _, err := s.projectRepository.Get(ctx, projectID); err != nil {
		return domain.Task{}, err
	}
	return s.taskRepository.Add(ctx, projectID, draft)
}

// UpdateTask sets the title and/or status of a task. Any of the three statuses
// is a legal target; tasks never go through the cycle.
func (s *ObraService) UpdateTask(ctx context.Context, projectID, taskID uint64, patch domain.TaskPatch) (domain.Task, error) {
	if patch.Status != nil && !patch.Status.IsValid() {
		return domain.Task{}, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, *patch.Status)
	}
	return s.taskRepository.Update(ctx, projectID, taskID, patch)
}

// Board derives the three status columns from the current task list. An obra
// without tasks, known or not, yields three empty columns.
func (s *ObraService) Board(ctx context.Context, projectID uint64) (domain.Board, error) {
	tasks, err := s.taskRepository.ListByProject(ctx, projectID)
	if err != nil {
		return domain.Board{}, err
	}
	return domain.NewBoard(projectID, tasks), nil
}

// SelectProject selects the given obra, or clears the selection when id is nil.
func (s *ObraService) SelectProject(ctx context.Context, id *uint64) (domain.Selection, error) {
	if id == nil {
		s.mu.Lock()
		s.selection = domain.Selection{}
		s.mu.Unlock()
		return domain.Selection{}, nil
	}

	if _, err := s.projectRepository.Get(ctx, *id); err != nil {
		return s.Selection(), err
	}

	selected := *id
	s.mu.Lock()
	s.selection = domain.Selection{ProjectID: &selected}
	s.mu.Unlock()
	return s.Selection(), nil
}

func (s *ObraService) Selection() domain.Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selection.ProjectID == nil {
		return domain.Selection{}
	}
	id := *s.selection.ProjectID
	return domain.Selection{ProjectID: &id}
}

func (s *ObraService) SelectedBoard(ctx context.Context) (domain.Board, error) {
	selection := s.Selection()
	if selection.IsEmpty() {
		return domain.Board{}, domain.ErrNoSelection
	}

	return s.Board(ctx, *selection.ProjectID)
}

var _ ports.ObraService = (*ObraService)(nil)
