package tests

import (
	"context"

	"marceneiro/internal/core/domain"
	"marceneiro/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type obraServiceMock struct {
	mock.Mock
}

var _ ports.ObraService = (*obraServiceMock)(nil)

func (m *obraServiceMock) ListProjects(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)

	var projects []domain.Project
	if value := args.Get(0); value != nil {
		projects = value.([]domain.Project)
	}
	return projects, args.Error(1)
}

func (m *obraServiceMock) GetProject(ctx context.Context, id uint64) (domain.Project, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *obraServiceMock) AddProject(ctx context.Context, draft domain.ProjectDraft) (domain.Project, error) {
	args := m.Called(ctx, draft)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *obraServiceMock) DeleteProject(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *obraServiceMock) CycleProjectStatus(ctx context.Context, id uint64) (domain.Project, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *obraServiceMock) ListTasks(ctx context.Context, projectID uint64) ([]domain.Task, error) {
	args := m.Called(ctx, projectID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *obraServiceMock) AddTask(ctx context.Context, projectID uint64, draft domain.TaskDraft) (domain.Task, error) {
	args := m.Called(ctx, projectID, draft)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *obraServiceMock) UpdateTask(ctx context.Context, projectID, taskID uint64, patch domain.TaskPatch) (domain.Task, error) {
	args := m.Called(ctx, projectID, taskID, patch)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *obraServiceMock) Board(ctx context.Context, projectID uint64) (domain.Board, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(domain.Board), args.Error(1)
}

func (m *obraServiceMock) SelectProject(ctx context.Context, id *uint64) (domain.Selection, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Selection), args.Error(1)
}

func (m *obraServiceMock) Selection() domain.Selection {
	return m.Called().Get(0).(domain.Selection)
}

func (m *obraServiceMock) SelectedBoard(ctx context.Context) (domain.Board, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Board), args.Error(1)
}
