package models

import (
	"time"

	"gorm.io/datatypes"
)

// JobRequirement describes an open position interviews are held for.
type JobRequirement struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	JobTitle    string         `gorm:"size:255;not null" json:"job_title"`
	Description string         `gorm:"type:text" json:"description"`
	Skills      datatypes.JSON `json:"skills"`
	CreatedAt   time.Time      `json:"created_at"`
}
