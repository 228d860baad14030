package models

import "time"

// Model is embedded by every table. Unlike gorm.Model it carries no
// DeletedAt column, so deletes are real and cascade through foreign keys.
type Model struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
