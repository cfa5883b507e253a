package services

import (
	"context"

	"github.com/Samandar-Komilov/voidpdev/database"
	"github.com/Samandar-Komilov/voidpdev/models"
	"github.com/google/uuid"
)

// PostStore is the slice of the record store the blog needs.
type PostStore interface {
	FindPublished(ctx context.Context, filter database.PostFilter, offset, limit int) ([]*models.Post, error)
	CountPublished(ctx context.Context, filter database.PostFilter) (int64, error)
	FindPublishedBySlug(ctx context.Context, slug string) (*models.Post, error)
	FindRecentPublished(ctx context.Context, excludeID uuid.UUID, limit int) ([]*models.Post, error)
	PublishedTagFields(ctx context.Context) ([]string, error)
}

// PostWriteStore is what the post write path persists through.
type PostWriteStore interface {
	SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Post, error)
	FindBySlug(ctx context.Context, slug string) (*models.Post, error)
	Add(ctx context.Context, post *models.Post) error
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProjectStore is the slice of the record store the portfolio needs.
type ProjectStore interface {
	Find(ctx context.Context, filter database.ProjectFilter, limit int) ([]*models.Project, error)
	FindFeatured(ctx context.Context, limit int) ([]*models.Project, error)
	TechnologyFields(ctx context.Context) ([]string, error)
}

// ProjectWriteStore is what the project write path persists through.
type ProjectWriteStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	Add(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}

var (
	_ PostStore         = (*database.PostRepo)(nil)
	_ PostWriteStore    = (*database.PostRepo)(nil)
	_ ProjectStore      = (*database.ProjectRepo)(nil)
	_ ProjectWriteStore = (*database.ProjectRepo)(nil)
)
