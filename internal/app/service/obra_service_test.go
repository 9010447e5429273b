package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"marceneiro/internal/adapter/memory"
	"marceneiro/internal/app/service"
	"marceneiro/internal/core/domain"
	"marceneiro/internal/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ObraServiceSuite struct {
	suite.Suite

	ctx      context.Context
	projects *memory.ProjectRepository
	tasks    *memory.TaskRepository
	service  *service.ObraService
}

func TestObraServiceSuite(t *testing.T) {
	suite.Run(t, new(ObraServiceSuite))
}

func (s *ObraServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.projects = memory.NewProjectRepository()
	s.tasks = memory.NewTaskRepository()
	s.service = service.NewObraService(s.projects, s.tasks)

	fixture, err := seed.Default()
	s.Require().NoError(err)
	first, err := seed.Apply(s.ctx, fixture, s.projects, s.tasks)
	s.Require().NoError(err)
	_, err = s.service.SelectProject(s.ctx, first)
	s.Require().NoError(err)
}

func (s *ObraServiceSuite) TestCycleProjectStatus_FullCycle() {
	project, err := s.service.CycleProjectStatus(s.ctx, 2)
	s.Require().NoError(err)
	s.Require().Equal(domain.StatusExecucao, project.Status)

	project, err = s.service.CycleProjectStatus(s.ctx, 2)
	s.Require().NoError(err)
	s.Require().Equal(domain.StatusFinalizada, project.Status)

	project, err = s.service.CycleProjectStatus(s.ctx, 2)
	s.Require().NoError(err)
	s.Require().Equal(domain.StatusOrcamento, project.Status)
}

func (s *ObraServiceSuite) TestCycleProjectStatus_OnlyTargetChanges() {
	_, err := s.service.CycleProjectStatus(s.ctx, 1)
	s.Require().NoError(err)

	other, err := s.service.GetProject(s.ctx, 2)
	s.Require().NoError(err)
	s.Require().Equal(domain.StatusOrcamento, other.Status)

	cycled, err := s.service.GetProject(s.ctx, 1)
	s.Require().NoError(err)
	s.Require().Equal(domain.StatusFinalizada, cycled.Status)
	s.Require().Equal("Cozinha Planejada A", cycled.Name)
}

func (s *ObraServiceSuite) TestCycleProjectStatus_UnknownProject() {
	_, err := s.service.CycleProjectStatus(s.ctx, 42)
	s.Require().ErrorIs(err, domain.ErrProjectNotFound)
}

func (s *ObraServiceSuite) TestAddProject_NextID() {
	project, err := s.service.AddProject(s.ctx, domain.ProjectDraft{
		Name:             "Cozinha B",
		Client:           "Ana",
		StartDate:        time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		ExpectedDelivery: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
	})
	s.Require().NoError(err)
	s.Require().Equal(uint64(3), project.ID)
	s.Require().Equal(domain.StatusOrcamento, project.Status)

	projects, err := s.service.ListProjects(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(projects, 3)
	s.Require().Equal("Cozinha B", projects[2].Name)
}

func (s *ObraServiceSuite) TestDeleteProject_ClearsSelectionWhenSelected() {
	s.Require().NoError(s.service.DeleteProject(s.ctx, 1))

	s.Require().True(s.service.Selection().IsEmpty())
	projects, err := s.service.ListProjects(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(projects, 1)
	s.Require().Equal(uint64(2), projects[0].ID)

	tasks, err := s.service.ListTasks(s.ctx, 1)
	s.Require().NoError(err)
	s.Require().Empty(tasks)
}

func (s *ObraServiceSuite) TestDeleteProject_KeepsOtherSelection() {
	s.Require().NoError(s.service.DeleteProject(s.ctx, 2))

	selection := s.service.Selection()
	s.Require().True(selection.Is(1))
}

func (s *ObraServiceSuite) TestDeleteProject_Unknown() {
	err := s.service.DeleteProject(s.ctx, 99)
	s.Require().ErrorIs(err, domain.ErrProjectNotFound)
	s.Require().True(s.service.Selection().Is(1))
}

func (s *ObraServiceSuite) TestBoard_PartitionsSeededTasks() {
	board, err := s.service.Board(s.ctx, 1)
	s.Require().NoError(err)
	s.Require().Len(board.Columns, 3)
	s.Require().Equal(3, board.Len())

	s.Require().Equal(domain.StatusOrcamento, board.Columns[0].Status)
	s.Require().Equal(uint64(103), board.Columns[0].Tasks[0].ID)
	s.Require().Equal(uint64(102), board.Columns[1].Tasks[0].ID)
	s.Require().Equal(uint64(101), board.Columns[2].Tasks[0].ID)
}

func (s *ObraServiceSuite) TestBoard_ProjectWithoutTasks() {
	board, err := s.service.Board(s.ctx, 5)
	s.Require().NoError(err)
	s.Require().Len(board.Columns, 3)
	s.Require().Zero(board.Len())
	for _, column := range board.Columns {
		s.Require().NotNil(column.Tasks)
	}
}

func (s *ObraServiceSuite) TestUpdateTask_StatusKeepsTitle() {
	status := domain.StatusFinalizada
	task, err := s.service.UpdateTask(s.ctx, 1, 102, domain.TaskPatch{Status: &status})
	s.Require().NoError(err)
	s.Require().Equal("Corte de chapas", task.Title)
	s.Require().Equal(domain.StatusFinalizada, task.Status)

	board, err := s.service.Board(s.ctx, 1)
	s.Require().NoError(err)
	s.Require().Empty(board.Column(domain.StatusExecucao))
	s.Require().Len(board.Column(domain.StatusFinalizada), 2)
}

func (s *ObraServiceSuite) TestUpdateTask_AnyStatusIsLegal() {
	status := domain.StatusOrcamento
	task, err := s.service.UpdateTask(s.ctx, 1, 101, domain.TaskPatch{Status: &status})
	s.Require().NoError(err)
	s.Require().Equal(domain.StatusOrcamento, task.Status)
}

func (s *ObraServiceSuite) TestUpdateTask_InvalidStatus() {
	status := domain.Status("Pausada")
	_, err := s.service.UpdateTask(s.ctx, 1, 101, domain.TaskPatch{Status: &status})
	s.Require().ErrorIs(err, domain.ErrInvalidStatus)
}

func (s *ObraServiceSuite) TestUpdateTask_WrongProject() {
	title := "x"
	_, err := s.service.UpdateTask(s.ctx, 2, 101, domain.TaskPatch{Title: &title})
	s.Require().ErrorIs(err, domain.ErrTaskNotFound)
}

func (s *ObraServiceSuite) TestAddTask_IDFollowsSeed() {
	task, err := s.service.AddTask(s.ctx, 2, domain.TaskDraft{Title: "Comprar ferragens", Status: domain.StatusExecucao})
	s.Require().NoError(err)
	s.Require().Equal(uint64(202), task.ID)

	board, err := s.service.Board(s.ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(board.Column(domain.StatusExecucao), 1)
}

func (s *ObraServiceSuite) TestAddTask_UnknownProject() {
	_, err := s.service.AddTask(s.ctx, 9, domain.TaskDraft{Title: "x", Status: domain.StatusOrcamento})
	s.Require().ErrorIs(err, domain.ErrProjectNotFound)
}

func (s *ObraServiceSuite) TestAddTask_InvalidStatus() {
	_, err := s.service.AddTask(s.ctx, 1, domain.TaskDraft{Title: "x", Status: "Pausada"})
	s.Require().ErrorIs(err, domain.ErrInvalidStatus)
}

func (s *ObraServiceSuite) TestTaskIDsNotReusedAfterProjectDelete() {
	s.Require().NoError(s.service.DeleteProject(s.ctx, 2))

	task, err := s.service.AddTask(s.ctx, 1, domain.TaskDraft{Title: "x", Status: domain.StatusOrcamento})
	s.Require().NoError(err)
	s.Require().Equal(uint64(202), task.ID)
}

func (s *ObraServiceSuite) TestSelection() {
	s.Require().True(s.service.Selection().Is(1))

	id := uint64(2)
	selection, err := s.service.SelectProject(s.ctx, &id)
	s.Require().NoError(err)
	s.Require().True(selection.Is(2))

	board, err := s.service.SelectedBoard(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(uint64(2), board.ProjectID)
	s.Require().Equal(1, board.Len())

	selection, err = s.service.SelectProject(s.ctx, nil)
	s.Require().NoError(err)
	s.Require().True(selection.IsEmpty())

	_, err = s.service.SelectedBoard(s.ctx)
	s.Require().ErrorIs(err, domain.ErrNoSelection)
}

func (s *ObraServiceSuite) TestSelectProject_UnknownKeepsCurrent() {
	id := uint64(77)
	selection, err := s.service.SelectProject(s.ctx, &id)
	s.Require().ErrorIs(err, domain.ErrProjectNotFound)
	s.Require().True(selection.Is(1))
}

func (s *ObraServiceSuite) TestSelection_ReturnsCopy() {
	selection := s.service.Selection()
	*selection.ProjectID = 99

	s.Require().True(s.service.Selection().Is(1))
}

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) ListByProject(ctx context.Context, projectID uint64) ([]domain.Task, error) {
	args := m.Called(ctx, projectID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) Add(ctx context.Context, projectID uint64, draft domain.TaskDraft) (domain.Task, error) {
	args := m.Called(ctx, projectID, draft)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Update(ctx context.Context, projectID, taskID uint64, patch domain.TaskPatch) (domain.Task, error) {
	args := m.Called(ctx, projectID, taskID, patch)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) DeleteByProject(ctx context.Context, projectID uint64) error {
	return m.Called(ctx, projectID).Error(0)
}

func (m *taskRepositoryMock) Insert(ctx context.Context, task domain.Task) error {
	return m.Called(ctx, task).Error(0)
}

func TestObraService_Board_PropagatesStoreError(t *testing.T) {
	storeErr := errors.New("store unavailable")
	tasks := new(taskRepositoryMock)
	tasks.On("ListByProject", mock.Anything, uint64(1)).Return(nil, storeErr).Once()

	svc := service.NewObraService(memory.NewProjectRepository(), tasks)
	_, err := svc.Board(context.Background(), 1)

	require.ErrorIs(t, err, storeErr)
	tasks.AssertExpectations(t)
}

func TestObraService_DeleteProject_WrapsTaskStoreError(t *testing.T) {
	ctx := context.Background()
	projects := memory.NewProjectRepository()
	require.NoError(t, projects.Insert(ctx, domain.Project{ID: 1, Name: "A", Status: domain.StatusOrcamento}))

	storeErr := errors.New("store unavailable")
	tasks := new(taskRepositoryMock)
	tasks.On("DeleteByProject", mock.Anything, uint64(1)).Return(storeErr).Once()

	svc := service.NewObraService(projects, tasks)
	err := svc.DeleteProject(ctx, 1)

	require.ErrorIs(t, err, storeErr)
	require.Contains(t, err.Error(), "delete tasks of obra 1")
	tasks.AssertExpectations(t)
}

// gatedTaskRepository pauses Add until release is closed.
type gatedTaskRepository struct {
	*memory.TaskRepository

	entered chan struct{}
	release chan struct{}
}

func (r *gatedTaskRepository) Add(ctx context.Context, projectID uint64, draft domain.TaskDraft) (domain.Task, error) {
	close(r.entered)
	<-r.release
	return r.TaskRepository.Add(ctx, projectID, draft)
}

func TestObraService_DeleteProject_WaitsForInflightAddTask(t *testing.T) {
	ctx := context.Background()
	projects := memory.NewProjectRepository()
	require.NoError(t, projects.Insert(ctx, domain.Project{ID: 1, Name: "A", Status: domain.StatusOrcamento}))

	tasks := &gatedTaskRepository{
		TaskRepository: memory.NewTaskRepository(),
		entered:        make(chan struct{}),
		release:        make(chan struct{}),
	}
	svc := service.NewObraService(projects, tasks)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := svc.AddTask(ctx, 1, domain.TaskDraft{Title: "Medição", Status: domain.StatusOrcamento})
		assert.NoError(t, err)
	}()
	<-tasks.entered

	deleted := make(chan error, 1)
	go func() { deleted <- svc.DeleteProject(ctx, 1) }()

	select {
	case err := <-deleted:
		t.Fatalf("delete finished while a task insert was in flight: %v", err)
	case <-time.After(50 * time.Millisecond):
	}

	close(tasks.release)
	wg.Wait()
	require.NoError(t, <-deleted)

	// The id is free again; a new obra must not inherit the old task.
	project, err := svc.AddProject(ctx, domain.ProjectDraft{Name: "B"})
	require.NoError(t, err)
	require.Equal(t, uint64(1), project.ID)

	list, err := svc.ListTasks(ctx, 1)
	require.NoError(t, err)
	require.Empty(t, list)
}
