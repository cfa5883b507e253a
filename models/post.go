package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Post represents a blog post. Content is stored in the system-wide content
// format (Markdown or rich HTML).
type Post struct {
	ID            uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title         string    `json:"title" db:"title" gorm:"type:varchar(200);not null"`
	Slug          string    `json:"slug" db:"slug" gorm:"type:varchar(255);not null;uniqueIndex:idx_post_slug"`
	Content       string    `json:"content" db:"content" gorm:"type:text;not null"`
	Excerpt       string    `json:"excerpt" db:"excerpt" gorm:"type:text;not null;default:''"`
	FeaturedImage *string   `json:"featuredImage,omitempty" db:"featured_image" gorm:"type:varchar(255)"`
	Published     bool      `json:"published" db:"published" gorm:"not null;default:false;index"`
	Tags          string    `json:"tags" db:"tags" gorm:"type:varchar(200);not null;default:''"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at" gorm:"not null;index"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at" gorm:"not null"`
}

// TagsList splits the comma-separated tags field.
func (p Post) TagsList() []string {
	return SplitList(p.Tags)
}

// SplitList splits a comma-separated field, trimming each entry and
// dropping empty ones. Tags and technologies are stored this way.
func SplitList(field string) []string {
	parts := strings.Split(field, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	return values
}

// JoinList is the inverse of SplitList.
func JoinList(values []string) string {
	return strings.Join(SplitList(strings.Join(values, ",")), ", ")
}
