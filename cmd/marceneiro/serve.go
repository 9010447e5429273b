package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	dbadapter "marceneiro/internal/adapter/db"
	httpadapter "marceneiro/internal/adapter/http"
	"marceneiro/internal/adapter/http/handlers"
	httpmiddleware "marceneiro/internal/adapter/http/middleware"
	"marceneiro/internal/adapter/memory"
	"marceneiro/internal/app/service"
	"marceneiro/internal/config"
	"marceneiro/internal/core/ports"
	"marceneiro/internal/seed"
	"marceneiro/pkg/translator"
)

func serveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(*configPath)
		},
	}
}

type stores struct {
	projects ports.ProjectRepository
	tasks    ports.TaskRepository
	pinger   ports.Pinger
	close    func() error
}

func runServe(configPath string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguagePt, translator.LanguageEn, translator.LanguageFr},
		DefaultLanguage:    cfg.DefaultLanguage,
	})

	st, err := openStores(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.close(); err != nil {
			logger.Warn("failed to close storage", zap.Error(err))
		}
	}()

	obraService := service.NewObraService(st.projects, st.tasks)
	if cfg.SeedEnabled {
		if err := loadSeed(cfg, st, obraService); err != nil {
			return err
		}
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.RequestIDMiddleware(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies()); err != nil {
		return fmt.Errorf("trusted proxies: %w", err)
	}

	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health: handlers.NewHealthHandler(st.pinger, handlers.HealthInfo{
			AppName:       cfg.AppName,
			AppVersion:    cfg.AppVersion,
			StorageDriver: cfg.StorageDriver,
		}),
		Obras: handlers.NewObraHandler(obraService),
		Tasks: handlers.NewTaskHandler(obraService),
		Board: handlers.NewBoardHandler(obraService),
	})

	server := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	go func() {
		logger.Info("starting server", zap.String("addr", server.Addr), zap.String("storage", cfg.StorageDriver))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("could not start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("failed to shutdown server", zap.Error(err))
	}
	logger.Info("server stopped")
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	cfg.Level = zap.NewAtomicLevelAt(parsed)
	return cfg.Build()
}

func openStores(cfg *config.Config) (stores, error) {
	switch cfg.StorageDriver {
	case config.StorageSQLite:
		db, err := dbadapter.ConnectDB(cfg.SQLiteName)
		if err != nil {
			return stores{}, err
		}
		projects := dbadapter.NewProjectRepository(db)
		return stores{
			projects: projects,
			tasks:    dbadapter.NewTaskRepository(db),
			pinger:   projects,
			close:    db.Close,
		}, nil
	default:
		projects := memory.NewProjectRepository()
		return stores{
			projects: projects,
			tasks:    memory.NewTaskRepository(),
			pinger:   projects,
			close:    func() error { return nil },
		}, nil
	}
}

// loadSeed fills the stores and selects the first seeded obra.
func loadSeed(cfg *config.Config, st stores, obraService *service.ObraService) error {
	fixture, err := seed.Default()
	if cfg.SeedFile != "" {
		fixture, err = seed.ReadFile(cfg.SeedFile)
	}
	if err != nil {
		return err
	}

	ctx := context.Background()
	first, err := seed.Apply(ctx, fixture, st.projects, st.tasks)
	if err != nil {
		return err
	}
	if first != nil {
		if _, err := obraService.SelectProject(ctx, first); err != nil {
			return err
		}
	}
	return nil
}
