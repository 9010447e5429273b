// Package seed loads the initial obras and tasks into the stores at start-up.
// Nothing is written back; the data lives as long as the process.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"marceneiro/internal/core/domain"
	"marceneiro/internal/core/ports"
)

//go:embed obras.yaml
var defaultFixture []byte

type Fixture struct {
	Obras []ObraFixture `yaml:"obras"`
}

type ObraFixture struct {
	ID          uint64          `yaml:"id"`
	Nome        string          `yaml:"nome"`
	Cliente     string          `yaml:"cliente"`
	Inicio      string          `yaml:"inicio"`
	Previsao    string          `yaml:"previsao"`
	Responsavel string          `yaml:"responsavel"`
	Observacoes *string         `yaml:"observacoes"`
	Status      string          `yaml:"status"`
	Tarefas     []TarefaFixture `yaml:"tarefas"`
}

type TarefaFixture struct {
	ID          uint64  `yaml:"id"`
	Titulo      string  `yaml:"titulo"`
	Status      string  `yaml:"status"`
	Observacoes *string `yaml:"observacoes"`
}

// Default returns the built-in fixture.
func Default() (Fixture, error) {
	return Parse(defaultFixture)
}

// ReadFile parses a fixture from disk.
func ReadFile(path string) (Fixture, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(content)
}

// Parse decodes and validates a YAML fixture. Unknown keys are rejected.
func Parse(content []byte) (Fixture, error) {
	var fixture Fixture
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	if err := decoder.Decode(&fixture); err != nil {
		return Fixture{}, fmt.Errorf("decode seed: %w", err)
	}
	if err := fixture.Validate(); err != nil {
		return Fixture{}, err
	}
	return fixture, nil
}

// Validate checks ids, dates and statuses. Project ids must be unique and task
// ids unique across every obra.
func (f Fixture) Validate() error {
	obraIDs := map[uint64]struct{}{}
	taskIDs := map[uint64]struct{}{}

	for _, obra := range f.Obras {
		if obra.ID == 0 {
			return fmt.Errorf("obra %q: id is required", obra.Nome)
		}
		if _, dup := obraIDs[obra.ID]; dup {
			return fmt.Errorf("obra %d: %w", obra.ID, domain.ErrDuplicateID)
		}
		obraIDs[obra.ID] = struct{}{}

		if _, err := obra.project(); err != nil {
			return err
		}

		for _, tarefa := range obra.Tarefas {
			if tarefa.ID == 0 {
				return fmt.Errorf("tarefa %q: id is required", tarefa.Titulo)
			}
			if _, dup := taskIDs[tarefa.ID]; dup {
				return fmt.Errorf("tarefa %d: %w", tarefa.ID, domain.ErrDuplicateID)
			}
			taskIDs[tarefa.ID] = struct{}{}

			if _, err := domain.ParseStatus(tarefa.Status); err != nil {
				return fmt.Errorf("tarefa %d: %w", tarefa.ID, err)
			}
		}
	}
	return nil
}

func (o ObraFixture) project() (domain.Project, error) {
	status, err := domain.ParseStatus(o.Status)
	if err != nil {
		return domain.Project{}, fmt.Errorf("obra %d: %w", o.ID, err)
	}
	start, err := time.Parse(domain.DateLayout, o.Inicio)
	if err != nil {
		return domain.Project{}, fmt.Errorf("obra %d: inicio: %w", o.ID, err)
	}
	delivery, err := time.Parse(domain.DateLayout, o.Previsao)
	if err != nil {
		return domain.Project{}, fmt.Errorf("obra %d: previsao: %w", o.ID, err)
	}

	return domain.Project{
		ID:               o.ID,
		Name:             o.Nome,
		Client:           o.Cliente,
		StartDate:        start,
		ExpectedDelivery: delivery,
		Responsible:      o.Responsavel,
		Notes:            o.Observacoes,
		Status:           status,
	}, nil
}

// Apply inserts the fixture into the stores, keeping its ids. It returns the id
// of the first obra, or nil for an empty fixture.
func Apply(ctx context.Context, fixture Fixture, projects ports.ProjectRepository, tasks ports.TaskRepository) (*uint64, error) {
	var first *uint64

	for _, obra := range fixture.Obras {
		project, err := obra.project()
		if err != nil {
			return nil, err
		}
		if err := projects.Insert(ctx, project); err != nil {
			return nil, err
		}

		for _, tarefa := range obra.Tarefas {
			status, err := domain.ParseStatus(tarefa.Status)
			if err != nil {
				return nil, fmt.Errorf("tarefa %d: %w", tarefa.ID, err)
			}
			err = tasks.Insert(ctx, domain.Task{
				ID:        tarefa.ID,
				ProjectID: project.ID,
				Title:     tarefa.Titulo,
				Status:    status,
				Notes:     tarefa.Observacoes,
			})
			if err != nil {
				return nil, err
			}
		}

		if first == nil {
			id := project.ID
			first = &id
		}
	}

	zap.L().Info("seed data loaded", zap.Int("obras", len(fixture.Obras)))
	return first, nil
}
