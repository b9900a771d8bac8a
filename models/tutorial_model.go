package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	TutorialCategoryBeginner     = "beginner"
	TutorialCategoryIntermediate = "intermediate"
	TutorialCategoryAdvanced     = "advanced"
	TutorialCategoryGeneral      = "general"
)

type Tutorial struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Slug         string    `gorm:"size:255;not null;unique" json:"slug"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	Category     string    `gorm:"size:20;not null;default:'general'" json:"category"`
	ImagePath    *string   `gorm:"size:255" json:"image_path"`
	DisplayOrder int       `gorm:"default:0" json:"display_order"`
	IsPublished  bool      `gorm:"default:true" json:"is_published"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
