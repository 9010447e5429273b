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

type ObraHandler struct {
	obraService ports.ObraService
}

func NewObraHandler(obraService ports.ObraService) *ObraHandler {
	return &ObraHandler{obraService: obraService}
}

func (h *ObraHandler) ListObras(c *gin.Context) {
	projects, err := h.obraService.ListProjects(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list obras", zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailListObras)
		return
	}

	c.JSON(http.StatusOK, mapper.ToObraItems(projects))
}

func (h *ObraHandler) GetObra(c *gin.Context) {
	id, ok := parseIDParam(c, "id", apierrors.MsgInvalidObraID)
	if !ok {
		return
	}

	project, err := h.obraService.GetProject(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			respondError(c, http.StatusNotFound, apierrors.MsgObraNotFound)
			return
		}

		zap.L().Error("failed to get obra", zap.Uint64("obra_id", id), zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailGetObra)
		return
	}

	c.JSON(http.StatusOK, mapper.ToObraItem(project))
}

func (h *ObraHandler) CreateObra(c *gin.Context) {
	var req dto.CreateObraRequest
	raw, err := bindJSON(c, &req)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidObraPayload)
		return
	}

	draft, err := validation.BuildProjectDraft(req, raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidObraPayload)
		return
	}

	project, err := h.obraService.AddProject(c.Request.Context(), draft)
	if err != nil {
		zap.L().Error("failed to create obra", zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailCreateObra)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToObraItem(project))
}

func (h *ObraHandler) DeleteObra(c *gin.Context) {
	id, ok := parseIDParam(c, "id", apierrors.MsgInvalidObraID)
	if !ok {
		return
	}

	if err := h.obraService.DeleteProject(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			respondError(c, http.StatusNotFound, apierrors.MsgObraNotFound)
			return
		}

		zap.L().Error("failed to delete obra", zap.Uint64("obra_id", id), zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailDeleteObra)
		return
	}

	c.Status(http.StatusNoContent)
}

// CycleStatus advances the obra to the next status: Orçamento, Execução,
// Finalizada, then back to Orçamento.
func (h *ObraHandler) CycleStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id", apierrors.MsgInvalidObraID)
	if !ok {
		return
	}

	project, err := h.obraService.CycleProjectStatus(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			respondError(c, http.StatusNotFound, apierrors.MsgObraNotFound)
			return
		}

		zap.L().Error("failed to cycle obra status", zap.Uint64("obra_id", id), zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailCycleStatus)
		return
	}

	c.JSON(http.StatusOK, mapper.ToObraItem(project))
}
