package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"marceneiro/internal/adapter/http/middleware"
	"marceneiro/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// parseIDParam reads a positive id from the path, answering 400 otherwise.
func parseIDParam(c *gin.Context, name, msgKey string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, msgKey)
		return 0, false
	}
	return id, true
}

// bindJSON binds the body into req and also returns the raw fields, so that
// explicit nulls can be told apart from absent keys.
func bindJSON(c *gin.Context, req any) (map[string]json.RawMessage, error) {
	if err := c.ShouldBindBodyWith(req, binding.JSON); err != nil {
		return nil, err
	}
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		return nil, err
	}
	return raw, nil
}

func respondError(c *gin.Context, code int, msgKey string) {
	c.JSON(code, apierrors.CreateError(code, msgKey, middleware.GetLang(c)))
}

// NotFound answers unknown routes with a translated error.
func NotFound(c *gin.Context) {
	respondError(c, http.StatusNotFound, apierrors.MsgEndpointNotFound)
}
