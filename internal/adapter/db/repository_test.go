package db_test

import (
	"context"
	"testing"
	"time"

	dbadapter "marceneiro/internal/adapter/db"
	"marceneiro/internal/adapter/storetest"
	"marceneiro/internal/core/domain"
	"marceneiro/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// openDB gives each caller its own in-memory database.
func openDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := dbadapter.ConnectDB("test-" + uuid.New().String())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSQLiteStores(t *testing.T) {
	s := &storetest.StoreSuite{}
	s.NewStores = func() (ports.ProjectRepository, ports.TaskRepository) {
		db := openDB(s.T())
		return dbadapter.NewProjectRepository(db), dbadapter.NewTaskRepository(db)
	}
	suite.Run(t, s)
}

func TestConnectDB_SeparateNamesAreIsolated(t *testing.T) {
	first := dbadapter.NewProjectRepository(openDB(t))
	second := dbadapter.NewProjectRepository(openDB(t))

	_, err := first.Add(context.Background(), domain.ProjectDraft{
		Name:             "Cozinha",
		StartDate:        time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC),
		ExpectedDelivery: time.Date(2023, 11, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	projects, err := second.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, projects)
}

func TestProjectRepository_Ping(t *testing.T) {
	repo := dbadapter.NewProjectRepository(openDB(t))
	require.NoError(t, repo.Ping(context.Background()))
}
