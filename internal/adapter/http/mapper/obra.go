package mapper

import (
	"time"

	"marceneiro/internal/adapter/http/dto"
	"marceneiro/internal/core/domain"
)

func ToObraItems(projects []domain.Project) []dto.ObraItem {
	items := make([]dto.ObraItem, 0, len(projects))
	for _, project := range projects {
		items = append(items, ToObraItem(project))
	}
	return items
}

func ToObraItem(project domain.Project) dto.ObraItem {
	item := dto.ObraItem{
		ID:               project.ID,
		Name:             project.Name,
		Client:           project.Client,
		StartDate:        project.StartDate.Format(domain.DateLayout),
		ExpectedDelivery: project.ExpectedDelivery.Format(domain.DateLayout),
		Responsible:      project.Responsible,
		Status:           string(project.Status),
		CreatedAt:        project.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        project.UpdatedAt.Format(time.RFC3339),
	}

	if project.Notes != nil {
		value := *project.Notes
		item.Notes = &value
	}

	return item
}
