package handlers

import (
	"errors"
	"net/http"

	"marceneiro/internal/adapter/http/dto"
	"marceneiro/internal/adapter/http/mapper"
	"marceneiro/internal/adapter/http/middleware"
	"marceneiro/internal/adapter/http/validation"
	"marceneiro/internal/core/domain"
	"marceneiro/internal/core/ports"
	"marceneiro/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BoardHandler struct {
	obraService ports.ObraService
}

func NewBoardHandler(obraService ports.ObraService) *BoardHandler {
	return &BoardHandler{obraService: obraService}
}

// GetBoard returns the three status columns of an existing obra.
func (h *BoardHandler) GetBoard(c *gin.Context) {
	obraID, ok := parseIDParam(c, "id", apierrors.MsgInvalidObraID)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	if _, err := h.obraService.GetProject(ctx, obraID); err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			respondError(c, http.StatusNotFound, apierrors.MsgObraNotFound)
			return
		}
		zap.L().Error("failed to get obra for board", zap.Uint64("obra_id", obraID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailBoard)
		return
	}

	board, err := h.obraService.Board(ctx, obraID)
	if err != nil {
		zap.L().Error("failed to build board", zap.Uint64("obra_id", obraID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailBoard)
		return
	}

	c.JSON(http.StatusOK, mapper.ToBoard(board, middleware.GetLang(c)))
}

// GetSelection returns the selected obra id and its board, or a null id.
func (h *BoardHandler) GetSelection(c *gin.Context) {
	h.respondSelection(c)
}

func (h *BoardHandler) SelectObra(c *gin.Context) {
	var req dto.SelectionRequest
	raw, err := bindJSON(c, &req)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidSelectionPayload)
		return
	}

	obraID, err := validation.BuildSelection(req, raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidSelectionPayload)
		return
	}

	if _, err := h.obraService.SelectProject(c.Request.Context(), obraID); err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			respondError(c, http.StatusNotFound, apierrors.MsgObraNotFound)
			return
		}
		zap.L().Error("failed to select obra", zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailSelection)
		return
	}

	h.respondSelection(c)
}

func (h *BoardHandler) respondSelection(c *gin.Context) {
	board, err := h.obraService.SelectedBoard(c.Request.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNoSelection) {
			c.JSON(http.StatusOK, dto.Selection{})
			return
		}
		zap.L().Error("failed to build selected board", zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailBoard)
		return
	}

	obraID := board.ProjectID
	item := mapper.ToBoard(board, middleware.GetLang(c))
	c.JSON(http.StatusOK, dto.Selection{ObraID: &obraID, Board: &item})
}
