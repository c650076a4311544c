package models

import "time"

// BaseModel - общие поля всех таблиц.
// ID числовой с автоинкрементом, метки времени заполняет GORM.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
