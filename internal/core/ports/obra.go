package ports

import (
	"context"

	"marceneiro/internal/core/domain"
)

type ProjectRepository interface {
	List(ctx context.Context) ([]domain.Project, error)
	Get(ctx context.Context, id uint64) (domain.Project, error)
	Add(ctx context.Context, draft domain.ProjectDraft) (domain.Project, error)
	Delete(ctx context.Context, id uint64) error
	// CycleStatus advances the project one step through the status cycle as a
	// single store operation.
	CycleStatus(ctx context.Context, id uint64) (domain.Project, error)
	// Insert stores a project with its id already set, as seed data does.
	Insert(ctx context.Context, project domain.Project) error
}

type TaskRepository interface {
	ListByProject(ctx context.Context, projectID uint64) ([]domain.Task, error)
	Add(ctx context.Context, projectID uint64, draft domain.TaskDraft) (domain.Task, error)
	Update(ctx context.Context, projectID, taskID uint64, patch domain.TaskPatch) (domain.Task, error)
	DeleteByProject(ctx context.Context, projectID uint64) error
	Insert(ctx context.Context, task domain.Task) error
}

// Pinger is implemented by stores that can report their health.
type Pinger interface {
	Ping(ctx context.Context) error
}

type ObraService interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	GetProject(ctx context.Context, id uint64) (domain.Project, error)
	AddProject(ctx context.Context, draft domain.ProjectDraft) (domain.Project, error)
	DeleteProject(ctx context.Context, id uint64) error
	CycleProjectStatus(ctx context.Context, id uint64) (domain.Project, error)

	ListTasks(ctx context.Context, projectID uint64) ([]domain.Task, error)
	AddTask(ctx context.Context, projectID uint64, draft domain.TaskDraft) (domain.Task, error)
	UpdateTask(ctx context.Context, projectID, taskID uint64, patch domain.TaskPatch) (domain.Task, error)
	Board(ctx context.Context, projectID uint64) (domain.Board, error)

	SelectProject(ctx context.Context, id *uint64) (domain.Selection, error)
	Selection() domain.Selection
	SelectedBoard(ctx context.Context) (domain.Board, error)
}
