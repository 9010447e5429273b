// Package storetest holds the behavior every obra/task store adapter must show.
package storetest

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/suite"

	"marceneiro/internal/core/domain"
	"marceneiro/internal/core/ports"
)

// Factory builds an empty pair of stores for one test.
type Factory func() (ports.ProjectRepository, ports.TaskRepository)

type StoreSuite struct {
	suite.Suite

	NewStores Factory
	projects  ports.ProjectRepository
	tasks     ports.TaskRepository
	ctx       context.Context
}

func (s *StoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.projects, s.tasks = s.NewStores()
}

func (s *StoreSuite) draft(name string) domain.ProjectDraft {
	return domain.ProjectDraft{
		Name:             name,
		Client:           "João Silva",
		StartDate:        time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC),
		ExpectedDelivery: time.Date(2023, 11, 15, 0, 0, 0, 0, time.UTC),
		Responsible:      "Carlos",
	}
}

func (s *StoreSuite) TestAddProject_IDsStartAtOneAndIncrease() {
	var last uint64
	for i, name := range []string{"Cozinha A", "Cozinha B", "Armário", "Estante"} {
		project, err := s.projects.Add(s.ctx, s.draft(name))
		s.Require().NoError(err)
		s.Require().Equal(uint64(i+1), project.ID)
		s.Require().Greater(project.ID, last)
		last = project.ID
	}
}

func (s *StoreSuite) TestAddProject_UsesMaxPlusOne() {
	s.Require().NoError(s.projects.Insert(s.ctx, domain.Project{ID: 1, Name: "A", Status: domain.StatusExecucao}))
	s.Require().NoError(s.projects.Insert(s.ctx, domain.Project{ID: 2, Name: "B", Status: domain.StatusOrcamento}))

	project, err := s.projects.Add(s.ctx, s.draft("Cozinha B"))
	s.Require().NoError(err)
	s.Require().Equal(uint64(3), project.ID)
	s.Require().Equal("Cozinha B", project.Name)
	s.Require().Equal(domain.StatusOrcamento, project.Status)
	s.Require().Equal("2023-11-15", project.ExpectedDelivery.Format(domain.DateLayout))
}

func (s *StoreSuite) TestAddProject_NoDeduplication() {
	first, err := s.projects.Add(s.ctx, s.draft("Cozinha"))
	s.Require().NoError(err)
	second, err := s.projects.Add(s.ctx, s.draft("Cozinha"))
	s.Require().NoError(err)

	s.Require().NotEqual(first.ID, second.ID)
	projects, err := s.projects.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(projects, 2)
}

func (s *StoreSuite) TestListProjects_InsertionOrder() {
	s.Require().NoError(s.projects.Insert(s.ctx, domain.Project{ID: 7, Name: "Sete", Status: domain.StatusOrcamento}))
	s.Require().NoError(s.projects.Insert(s.ctx, domain.Project{ID: 3, Name: "Três", Status: domain.StatusOrcamento}))
	added, err := s.projects.Add(s.ctx, s.draft("Oito"))
	s.Require().NoError(err)
	s.Require().Equal(uint64(8), added.ID)

	projects, err := s.projects.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(projects, 3)
	s.Require().Equal([]uint64{7, 3, 8}, []uint64{projects[0].ID, projects[1].ID, projects[2].ID})
}

func (s *StoreSuite) TestListProjects_EmptyStore() {
	projects, err := s.projects.List(s.ctx)
	s.Require().NoError(err)
	s.Require().NotNil(projects)
	s.Require().Empty(projects)
}

func (s *StoreSuite) TestDeleteProject() {
	project, err := s.projects.Add(s.ctx, s.draft("Cozinha"))
	s.Require().NoError(err)

	s.Require().NoError(s.projects.Delete(s.ctx, project.ID))
	_, err = s.projects.Get(s.ctx, project.ID)
	s.Require().ErrorIs(err, domain.ErrProjectNotFound)

	s.Require().ErrorIs(s.projects.Delete(s.ctx, project.ID), domain.ErrProjectNotFound)
}

func (s *StoreSuite) TestCycleStatus() {
	project, err := s.projects.Add(s.ctx, s.draft("Cozinha"))
	s.Require().NoError(err)

	expected := []domain.Status{domain.StatusExecucao, domain.StatusFinalizada, domain.StatusOrcamento}
	for _, status := range expected {
		updated, err := s.projects.CycleStatus(s.ctx, project.ID)
		s.Require().NoError(err)
		s.Require().Equal(status, updated.Status)
		s.Require().Equal(project.Name, updated.Name)
	}

	_, err = s.projects.CycleStatus(s.ctx, 999)
	s.Require().ErrorIs(err, domain.ErrProjectNotFound)
}

func (s *StoreSuite) TestCycleStatus_ConcurrentCyclesEachMoveOneStep() {
	project, err := s.projects.Add(s.ctx, s.draft("Cozinha"))
	s.Require().NoError(err)

	const cycles = 100
	var wg sync.WaitGroup
	errs := make(chan error, cycles)
	for i := 0; i < cycles; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.projects.CycleStatus(s.ctx, project.ID); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		s.Require().NoError(err)
	}

	// 100 steps from Orçamento is 100 mod 3 = 1 step.
	got, err := s.projects.Get(s.ctx, project.ID)
	s.Require().NoError(err)
	s.Require().Equal(domain.StatusExecucao, got.Status)
}

func (s *StoreSuite) TestInsertProject_RejectsDuplicateID() {
	s.Require().NoError(s.projects.Insert(s.ctx, domain.Project{ID: 1, Name: "A", Status: domain.StatusOrcamento}))
	s.Require().ErrorIs(s.projects.Insert(s.ctx, domain.Project{ID: 1, Name: "B", Status: domain.StatusOrcamento}), domain.ErrDuplicateID)
}

func (s *StoreSuite) TestListTasks_UnknownProjectIsEmpty() {
	tasks, err := s.tasks.ListByProject(s.ctx, 5)
	s.Require().NoError(err)
	s.Require().NotNil(tasks)
	s.Require().Empty(tasks)
}

func (s *StoreSuite) TestAddTask_KeepsDraftStatusAndOrder() {
	first, err := s.tasks.Add(s.ctx, 1, domain.TaskDraft{Title: "Medição", Status: domain.StatusFinalizada})
	s.Require().NoError(err)
	second, err := s.tasks.Add(s.ctx, 1, domain.TaskDraft{Title: "Corte", Status: domain.StatusExecucao})
	s.Require().NoError(err)

	tasks, err := s.tasks.ListByProject(s.ctx, 1)
	s.Require().NoError(err)
	s.Require().Len(tasks, 2)
	s.Require().Equal(first.ID, tasks[0].ID)
	s.Require().Equal(domain.StatusFinalizada, tasks[0].Status)
	s.Require().Equal(second.ID, tasks[1].ID)
	s.Require().Equal(uint64(1), tasks[1].ProjectID)
}

func (s *StoreSuite) TestAddTask_IDsAreGlobal() {
	a, err := s.tasks.Add(s.ctx, 1, domain.TaskDraft{Title: "a", Status: domain.StatusOrcamento})
	s.Require().NoError(err)
	b, err := s.tasks.Add(s.ctx, 2, domain.TaskDraft{Title: "b", Status: domain.StatusOrcamento})
	s.Require().NoError(err)

	s.Require().Greater(b.ID, a.ID)
}

func (s *StoreSuite) TestAddTask_CounterContinuesAfterInsertedIDs() {
	s.Require().NoError(s.tasks.Insert(s.ctx, domain.Task{ID: 201, ProjectID: 2, Title: "Aprovar orçamento", Status: domain.StatusOrcamento}))

	task, err := s.tasks.Add(s.ctx, 1, domain.TaskDraft{Title: "Nova", Status: domain.StatusOrcamento})
	s.Require().NoError(err)
	s.Require().Equal(uint64(202), task.ID)
}

func (s *StoreSuite) TestAddTask_IDsNotReusedAfterDelete() {
	task, err := s.tasks.Add(s.ctx, 1, domain.TaskDraft{Title: "a", Status: domain.StatusOrcamento})
	s.Require().NoError(err)
	s.Require().NoError(s.tasks.DeleteByProject(s.ctx, 1))

	next, err := s.tasks.Add(s.ctx, 1, domain.TaskDraft{Title: "b", Status: domain.StatusOrcamento})
	s.Require().NoError(err)
	s.Require().Greater(next.ID, task.ID)
}

func (s *StoreSuite) TestUpdateTask_StatusOnly() {
	s.Require().NoError(s.tasks.Insert(s.ctx, domain.Task{ID: 101, ProjectID: 1, Title: "Medição", Status: domain.StatusOrcamento}))

	status := domain.StatusFinalizada
	updated, err := s.tasks.Update(s.ctx, 1, 101, domain.TaskPatch{Status: &status})
	s.Require().NoError(err)
	s.Require().Equal("Medição", updated.Title)
	s.Require().Equal(domain.StatusFinalizada, updated.Status)

	tasks, err := s.tasks.ListByProject(s.ctx, 1)
	s.Require().NoError(err)
	s.Require().Equal(domain.StatusFinalizada, tasks[0].Status)
	s.Require().Equal("Medição", tasks[0].Title)
}

func (s *StoreSuite) TestUpdateTask_TitleOnly() {
	s.Require().NoError(s.tasks.Insert(s.ctx, domain.Task{ID: 101, ProjectID: 1, Title: "Medição", Status: domain.StatusExecucao}))

	title := "Medição final"
	updated, err := s.tasks.Update(s.ctx, 1, 101, domain.TaskPatch{Title: &title})
	s.Require().NoError(err)
	s.Require().Equal("Medição final", updated.Title)
	s.Require().Equal(domain.StatusExecucao, updated.Status)
}

func (s *StoreSuite) TestUpdateTask_ScopedToProject() {
	s.Require().NoError(s.tasks.Insert(s.ctx, domain.Task{ID: 201, ProjectID: 2, Title: "Aprovar", Status: domain.StatusOrcamento}))

	title := "x"
	_, err := s.tasks.Update(s.ctx, 1, 201, domain.TaskPatch{Title: &title})
	s.Require().ErrorIs(err, domain.ErrTaskNotFound)

	_, err = s.tasks.Update(s.ctx, 2, 999, domain.TaskPatch{Title: &title})
	s.Require().ErrorIs(err, domain.ErrTaskNotFound)
}

func (s *StoreSuite) TestDeleteByProject_LeavesOtherProjects() {
	s.Require().NoError(s.tasks.Insert(s.ctx, domain.Task{ID: 101, ProjectID: 1, Title: "a", Status: domain.StatusOrcamento}))
	s.Require().NoError(s.tasks.Insert(s.ctx, domain.Task{ID: 201, ProjectID: 2, Title: "b", Status: domain.StatusOrcamento}))

	s.Require().NoError(s.tasks.DeleteByProject(s.ctx, 1))

	tasks, err := s.tasks.ListByProject(s.ctx, 1)
	s.Require().NoError(err)
	s.Require().Empty(tasks)
	tasks, err = s.tasks.ListByProject(s.ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(tasks, 1)
}

func (s *StoreSuite) TestInsertTask_RejectsDuplicateID() {
	s.Require().NoError(s.tasks.Insert(s.ctx, domain.Task{ID: 101, ProjectID: 1, Title: "a", Status: domain.StatusOrcamento}))
	err := s.tasks.Insert(s.ctx, domain.Task{ID: 101, ProjectID: 2, Title: "b", Status: domain.StatusOrcamento})
	s.Require().ErrorIs(err, domain.ErrDuplicateID)
}
