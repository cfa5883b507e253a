package services

import (
	"context"

	"github.com/Samandar-Komilov/voidpdev/database"
	"github.com/Samandar-Komilov/voidpdev/models"
)

// DefaultFeaturedProjects is how many projects the home page shows.
const DefaultFeaturedProjects = 3

type ProjectService struct {
	projects ProjectStore
}

func NewProjectService(projects ProjectStore) *ProjectService {
	return &ProjectService{projects: projects}
}

// ListProjects returns every project, newest first, keeping only those whose
// technologies contain technology (ignoring case) when it is non-empty.
func (s *ProjectService) ListProjects(ctx context.Context, technology string) ([]*models.Project, error) {
	return s.projects.Find(ctx, database.ProjectFilter{Technology: technology}, 0)
}

func (s *ProjectService) FeaturedProjects(ctx context.Context, limit int) ([]*models.Project, error) {
	if limit <= 0 {
		limit = DefaultFeaturedProjects
	}
	return s.projects.FindFeatured(ctx, limit)
}

// DistinctTechnologies lists every technology across all projects.
func (s *ProjectService) DistinctTechnologies(ctx context.Context) ([]string, error) {
	fields, err := s.projects.TechnologyFields(ctx)
	if err != nil {
		return nil, err
	}
	return DistinctValues(fields), nil
}
