package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"marceneiro/internal/adapter/http/dto"
	"marceneiro/internal/core/domain"
)

var (
	ErrInvalidObraPayload      = errors.New("invalid obra payload")
	ErrInvalidTaskPayload      = errors.New("invalid task payload")
	ErrInvalidSelectionPayload = errors.New("invalid selection payload")
)

// BuildProjectDraft mirrors the required fields of the obra form. Dates are only
// checked for format, never against each other.
func BuildProjectDraft(req dto.CreateObraRequest, raw map[string]json.RawMessage) (domain.ProjectDraft, error) {
	if hasJSONField(raw, "status") && req.Status == nil {
		return domain.ProjectDraft{}, ErrInvalidObraPayload
	}

	name := strings.TrimSpace(req.Name)
	client := strings.TrimSpace(req.Client)
	if name == "" || client == "" {
		return domain.ProjectDraft{}, ErrInvalidObraPayload
	}

	startDate, err := time.Parse(domain.DateLayout, req.StartDate)
	if err != nil {
		return domain.ProjectDraft{}, ErrInvalidObraPayload
	}
	expectedDelivery, err := time.Parse(domain.DateLayout, req.ExpectedDelivery)
	if err != nil {
		return domain.ProjectDraft{}, ErrInvalidObraPayload
	}

	status := domain.StatusOrcamento
	if req.Status != nil {
		if status, err = domain.ParseStatus(*req.Status); err != nil {
			return domain.ProjectDraft{}, ErrInvalidObraPayload
		}
	}

	return domain.ProjectDraft{
		Name:             name,
		Client:           client,
		StartDate:        startDate,
		ExpectedDelivery: expectedDelivery,
		Responsible:      strings.TrimSpace(req.Responsible),
		Notes:            req.Notes,
		Status:           status,
	}, nil
}

func BuildTaskDraft(req dto.CreateTaskRequest, raw map[string]json.RawMessage) (domain.TaskDraft, error) {
	if hasJSONField(raw, "status") && req.Status == nil {
		return domain.TaskDraft{}, ErrInvalidTaskPayload
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.TaskDraft{}, ErrInvalidTaskPayload
	}

	status := domain.StatusOrcamento
	if req.Status != nil {
		var err error
		if status, err = domain.ParseStatus(*req.Status); err != nil {
			return domain.TaskDraft{}, ErrInvalidTaskPayload
		}
	}

	return domain.TaskDraft{
		Title:  title,
		Status: status,
		Notes:  req.Notes,
	}, nil
}

// BuildTaskPatch accepts title and/or status. Explicit nulls and empty patches
// are rejected.
func BuildTaskPatch(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.TaskPatch, error) {
	if !hasJSONField(raw, "title") && !hasJSONField(raw, "status") {
		return domain.TaskPatch{}, ErrInvalidTaskPayload
	}

	var title *string
	if hasJSONField(raw, "title") && req.Title == nil {
		return domain.TaskPatch{}, ErrInvalidTaskPayload
	}
	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.TaskPatch{}, ErrInvalidTaskPayload
		}
		title = &value
	}

	var status *domain.Status
	if hasJSONField(raw, "status") && req.Status == nil {
		return domain.TaskPatch{}, ErrInvalidTaskPayload
	}
	if req.Status != nil {
		value, err := domain.ParseStatus(*req.Status)
		if err != nil {
			return domain.TaskPatch{}, ErrInvalidTaskPayload
		}
		status = &value
	}

	return domain.TaskPatch{Title: title, Status: status}, nil
}

// BuildSelection requires the obra_id key; null clears the selection.
func BuildSelection(req dto.SelectionRequest, raw map[string]json.RawMessage) (*uint64, error) {
	if !hasJSONField(raw, "obra_id") {
		return nil, ErrInvalidSelectionPayload
	}
	if isJSONNull(raw["obra_id"]) {
		return nil, nil
	}
	if req.ObraID == nil || *req.ObraID == 0 {
		return nil, ErrInvalidSelectionPayload
	}
	id := *req.ObraID
	return &id, nil
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
