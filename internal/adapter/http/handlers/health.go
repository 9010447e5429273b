package handlers

import (
	"context"
	"net/http"
	"time"

	"marceneiro/internal/adapter/http/middleware"
	"marceneiro/internal/core/ports"

	"github.com/gin-gonic/gin"
)

const (
	StatusOk             = "ok"
	StatusDown           = "down"
	healthStorageTimeout = 2 * time.Second
)

type HealthBasic struct {
	AppName           string `json:"app_name"`
	AppVersion        string `json:"app_version"`
	CurrentSystemTime string `json:"current_system_time"`
	Message           string `json:"message"`
}

type HealthServices struct {
	Storage string `json:"storage"`
}

type HealthAdvanced struct {
	AppName           string         `json:"app_name"`
	AppVersion        string         `json:"app_version"`
	CurrentSystemTime string         `json:"current_system_time"`
	Language          string         `json:"language"`
	StorageDriver     string         `json:"storage_driver"`
	Status            HealthServices `json:"status"`
}

type HealthInfo struct {
	AppName       string
	AppVersion    string
	StorageDriver string
}

type HealthHandler struct {
	storage ports.Pinger
	info    HealthInfo
}

func NewHealthHandler(storage ports.Pinger, info HealthInfo) *HealthHandler {
	if info.AppVersion == "" {
		info.AppVersion = "dev"
	}
	return &HealthHandler{storage: storage, info: info}
}

func (h *HealthHandler) CheckHealth(c *gin.Context) {
	statusCode := http.StatusOK
	message := StatusOk

	if !h.checkStorage(c.Request.Context()) {
		statusCode = http.StatusInternalServerError
		message = StatusDown
	}

	c.JSON(statusCode, HealthBasic{
		AppName:           h.info.AppName,
		AppVersion:        h.info.AppVersion,
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Message:           message,
	})
}

func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	storageStatus := StatusDown
	if h.checkStorage(c.Request.Context()) {
		storageStatus = StatusOk
	}

	c.JSON(http.StatusOK, HealthAdvanced{
		AppName:           h.info.AppName,
		AppVersion:        h.info.AppVersion,
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Language:          middleware.GetLang(c),
		StorageDriver:     h.info.StorageDriver,
		Status: HealthServices{
			Storage: storageStatus,
		},
	})
}

func (h *HealthHandler) checkStorage(ctx context.Context) bool {
	if h.storage == nil {
		return false
	}
	// Avoid hanging health checks if the storage stalls.
	timeoutCtx, cancel := context.WithTimeout(ctx, healthStorageTimeout)
	defer cancel()
	return h.storage.Ping(timeoutCtx) == nil
}
