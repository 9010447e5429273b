package handlers

import (
	"errors"
	"net/http"

	"marceneiro/internal/adapter/http/dto"
	"marceneiro/internal/adapter/http/mapper"
	"marceneiro/internal/adapter/http/validation"
	"marceneiro/internal/core/domain"
	"marceneiro/internal/core/ports"
	"marceneiro/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TaskHandler struct {
	obraService ports.ObraService
}

func NewTaskHandler(obraService ports.ObraService) *TaskHandler {
	return &TaskHandler{obraService: obraService}
}

// ListTasks returns the obra's tasks in insertion order. An obra without tasks
// yields an empty list.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	obraID, ok := parseIDParam(c, "id", apierrors.MsgInvalidObraID)
	if !ok {
		return
	}

	tasks, err := h.obraService.ListTasks(c.Request.Context(), obraID)
	if err != nil {
		zap.L().Error("failed to list tasks", zap.Uint64("obra_id", obraID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailListTasks)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	obraID, ok := parseIDParam(c, "id", apierrors.MsgInvalidObraID)
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	raw, err := bindJSON(c, &req)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	draft, err := validation.BuildTaskDraft(req, raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	task, err := h.obraService.AddTask(c.Request.Context(), obraID, draft)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			respondError(c, http.StatusNotFound, apierrors.MsgObraNotFound)
			return
		}
		if errors.Is(err, domain.ErrInvalidStatus) {
			respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
			return
		}

		zap.L().Error("failed to create task", zap.Uint64("obra_id", obraID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailCreateTask)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	obraID, ok := parseIDParam(c, "id", apierrors.MsgInvalidObraID)
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "taskId", apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	raw, err := bindJSON(c, &req)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	patch, err := validation.BuildTaskPatch(req, raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	task, err := h.obraService.UpdateTask(c.Request.Context(), obraID, taskID, patch)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			respondError(c, http.StatusNotFound, apierrors.MsgTaskNotFound)
			return
		}
		if errors.Is(err, domain.ErrInvalidStatus) {
			respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
			return
		}

		zap.L().Error("failed to update task", zap.Uint64("obra_id", obraID), zap.Uint64("task_id", taskID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailUpdateTask)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}
