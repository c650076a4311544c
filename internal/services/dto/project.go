package dto

import "time"

// CreateProjectRequest - заявка на расчет (quote request).
type CreateProjectRequest struct {
	ServiceType   string   `json:"serviceType" validate:"required,is-service-type"`
	ServiceDetail string   `json:"serviceDetail,omitempty" validate:"omitempty,is-service-detail"`
	ProjectName   string   `json:"projectName" validate:"required"`
	Description   string   `json:"description,omitempty"`
	Files         []string `json:"files,omitempty"`
}

// UpdateProjectRequest - обновление менеджером проекта.
// Все поля опциональны, прогресс ограничивается диапазоном 0..100.
type UpdateProjectRequest struct {
	Status            *string    `json:"status,omitempty" validate:"omitempty,is-project-status"`
	Progress          *float64   `json:"progress,omitempty"`
	ProjectManager    *string    `json:"projectManager,omitempty"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery,omitempty"`
	Files             []string   `json:"files,omitempty"`
	Description       *string    `json:"description,omitempty"`
}
