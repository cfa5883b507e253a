package database

import (
	"context"

	"github.com/Samandar-Komilov/voidpdev/errs"
	"github.com/Samandar-Komilov/voidpdev/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// Find returns projects matching filter, newest first. A limit of zero or
// less returns every match.
func (r *ProjectRepo) Find(ctx context.Context, filter ProjectFilter, limit int) ([]*models.Project, error) {
	var projects []*models.Project
	q := filter.apply(r.db.WithContext(ctx).Model(&models.Project{})).Order(newestFirst)
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&projects).Error; err != nil {
		return nil, errs.NewDatabaseError("list", "projects", err)
	}
	return projects, nil
}

// FindFeatured returns up to limit featured projects, newest first.
func (r *ProjectRepo) FindFeatured(ctx context.Context, limit int) ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.WithContext(ctx).
		Where("featured = ?", true).
		Order(newestFirst).
		Limit(limit).
		Find(&projects).Error
	if err != nil {
		return nil, errs.NewDatabaseError("list", "featured projects", err)
	}
	return projects, nil
}

// TechnologyFields returns the raw technologies field of every project.
func (r *ProjectRepo) TechnologyFields(ctx context.Context) ([]string, error) {
	var fields []string
	if err := r.db.WithContext(ctx).Model(&models.Project{}).Pluck("technologies", &fields).Error; err != nil {
		return nil, errs.NewDatabaseError("list", "project technologies", err)
	}
	return fields, nil
}

// FindAll returns all projects from the database
func (r *ProjectRepo) FindAll(ctx context.Context) ([]*models.Project, error) {
	return r.Find(ctx, ProjectFilter{}, 0)
}

// FindByID returns a project by its ID
func (r *ProjectRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).Clauses(dbresolver.Write).First(&project, "id = ?", id).Error
	if err != nil {
		return nil, errs.NewDatabaseError("find", "project", err)
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(ctx context.Context, project *models.Project) error {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return errs.NewDatabaseError("create", "project", err)
	}
	return nil
}

// Update updates an existing project in the database
func (r *ProjectRepo) Update(ctx context.Context, project *models.Project) error {
	if err := r.db.WithContext(ctx).Save(project).Error; err != nil {
		return errs.NewDatabaseError("update", "project", err)
	}
	return nil
}

// Delete removes a project from the database by id
func (r *ProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Project{}, "id = ?", id)
	if result.Error != nil {
		return errs.NewDatabaseError("delete", "project", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFound("project")
	}
	return nil
}
