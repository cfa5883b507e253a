package models

import (
	"time"

	"github.com/google/uuid"
)

// Project represents a portfolio entry
type Project struct {
	ID           uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title        string    `json:"title" db:"title" gorm:"type:varchar(200);not null"`
	Description  string    `json:"description" db:"description" gorm:"type:text;not null"`
	Image        *string   `json:"image,omitempty" db:"image" gorm:"type:varchar(255)"`
	GithubURL    string    `json:"githubUrl" db:"github_url" gorm:"type:varchar(200);not null;default:''"`
	LiveURL      string    `json:"liveUrl" db:"live_url" gorm:"type:varchar(200);not null;default:''"`
	Technologies string    `json:"technologies" db:"technologies" gorm:"type:varchar(300);not null;default:''"`
	Featured     bool      `json:"featured" db:"featured" gorm:"not null;default:false;index"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at" gorm:"not null;index"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at" gorm:"not null"`
}

// TechnologiesList splits the comma-separated technologies field.
func (p Project) TechnologiesList() []string {
	return SplitList(p.Technologies)
}
