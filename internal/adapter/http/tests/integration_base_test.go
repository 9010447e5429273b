package tests

import (
	"context"
	"io"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	dbadapter "marceneiro/internal/adapter/db"
	httpadapter "marceneiro/internal/adapter/http"
	"marceneiro/internal/adapter/http/handlers"
	appservice "marceneiro/internal/app/service"
	"marceneiro/internal/seed"
	"marceneiro/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// IntegrationSuiteBase wires the full router over a fresh, seeded in-memory
// SQLite database for every test.
type IntegrationSuiteBase struct {
	suite.Suite

	DB     *sqlx.DB
	Router *gin.Engine
}

func (s *IntegrationSuiteBase) SetupSuite() {
	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		TranslationFolder:  filepath.Join(projectRoot(s.T()), "pkg", "translator", "translation"),
		SupportedLanguages: []string{translator.LanguagePt, translator.LanguageEn, translator.LanguageFr},
		DefaultLanguage:    translator.LanguagePt,
	})
}

func (s *IntegrationSuiteBase) SetupTest() {
	db, err := dbadapter.ConnectDB("integration-" + uuid.New().String())
	s.Require().NoError(err)
	s.DB = db

	projects := dbadapter.NewProjectRepository(db)
	tasks := dbadapter.NewTaskRepository(db)
	obraService := appservice.NewObraService(projects, tasks)
	s.ResetDatabase(obraService, projects, tasks)

	router := gin.New()
	httpadapter.RegisterRoutes(router, httpadapter.Handlers{
		Health: handlers.NewHealthHandler(projects, handlers.HealthInfo{AppName: "marceneiro", StorageDriver: "sqlite"}),
		Obras:  handlers.NewObraHandler(obraService),
		Tasks:  handlers.NewTaskHandler(obraService),
		Board:  handlers.NewBoardHandler(obraService),
	})
	s.Router = router
}

func (s *IntegrationSuiteBase) TearDownTest() {
	if s.DB != nil {
		s.Require().NoError(s.DB.Close())
	}
}

// ResetDatabase loads the default fixture and selects its first obra, the
// same way the server starts.
func (s *IntegrationSuiteBase) ResetDatabase(obraService *appservice.ObraService, projects *dbadapter.ProjectRepository, tasks *dbadapter.TaskRepository) {
	ctx := context.Background()

	fixture, err := seed.Default()
	s.Require().NoError(err)
	first, err := seed.Apply(ctx, fixture, projects, tasks)
	s.Require().NoError(err)
	_, err = obraService.SelectProject(ctx, first)
	s.Require().NoError(err)
}

func (s *IntegrationSuiteBase) Do(method, path, body, lang string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if lang != "" {
		req.Header.Set("Accept-Language", lang)
	}
	rec := httptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)
	return rec
}

func projectRoot(t *testing.T) string {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", "..", ".."))
}
