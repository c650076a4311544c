package models

import (
	"time"

	"gorm.io/datatypes"
)

// Project - заказ клиента. Проходит статусы от QUOTE_PENDING до
// COMPLETED/CANCELLED, статус и прогресс двигает менеджер проекта.
type Project struct {
	BaseModel
	ServiceType   ServiceType   `gorm:"type:varchar(40);not null" json:"serviceType"`
	ServiceDetail ServiceDetail `gorm:"type:varchar(80)" json:"serviceDetail,omitempty"`
	ProjectName   string        `gorm:"not null" json:"projectName"`
	Description   string        `json:"description,omitempty"`

	// Ссылки на исходники и результаты (ключи в хранилище, URL).
	Files datatypes.JSONSlice[string] `json:"files,omitempty"`

	Status            ProjectStatus `gorm:"type:varchar(40);not null;default:'QUOTE_PENDING'" json:"status"`
	ProjectManager    string        `json:"projectManager,omitempty"`
	EstimatedDelivery *time.Time    `json:"estimatedDelivery,omitempty"`
	Progress          float64       `gorm:"default:0" json:"progress"`

	UserID uint `gorm:"not null;index" json:"userId"`
	User   User `gorm:"foreignKey:UserID" json:"-"`
}
