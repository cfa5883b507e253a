package database

import (
	"context"

	"github.com/Samandar-Komilov/voidpdev/errs"
	"github.com/Samandar-Komilov/voidpdev/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type PostRepo struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) *PostRepo {
	return &PostRepo{db}
}

func (r *PostRepo) published(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Post{}).Where("published = ?", true)
}

// FindPublished returns one window of published posts matching filter,
// newest first.
func (r *PostRepo) FindPublished(ctx context.Context, filter PostFilter, offset, limit int) ([]*models.Post, error) {
	var posts []*models.Post
	err := filter.apply(r.published(ctx)).
		Order(newestFirst).
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, errs.NewDatabaseError("list", "blog posts", err)
	}
	return posts, nil
}

// CountPublished counts published posts matching filter.
func (r *PostRepo) CountPublished(ctx context.Context, filter PostFilter) (int64, error) {
	var total int64
	if err := filter.apply(r.published(ctx)).Count(&total).Error; err != nil {
		return 0, errs.NewDatabaseError("count", "blog posts", err)
	}
	return total, nil
}

// FindPublishedBySlug returns the published post with slug. Drafts are
// reported as not found.
func (r *PostRepo) FindPublishedBySlug(ctx context.Context, slug string) (*models.Post, error) {
	var post models.Post
	if err := r.published(ctx).Where("slug = ?", slug).First(&post).Error; err != nil {
		return nil, errs.NewDatabaseError("find", "blog post", err)
	}
	return &post, nil
}

// FindRecentPublished returns up to limit published posts, newest first,
// skipping excludeID when it is set.
func (r *PostRepo) FindRecentPublished(ctx context.Context, excludeID uuid.UUID, limit int) ([]*models.Post, error) {
	var posts []*models.Post
	q := r.published(ctx)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Order(newestFirst).Limit(limit).Find(&posts).Error; err != nil {
		return nil, errs.NewDatabaseError("list", "recent blog posts", err)
	}
	return posts, nil
}

// PublishedTagFields returns the raw tags field of every published post.
func (r *PostRepo) PublishedTagFields(ctx context.Context) ([]string, error) {
	var fields []string
	if err := r.published(ctx).Pluck("tags", &fields).Error; err != nil {
		return nil, errs.NewDatabaseError("list", "blog post tags", err)
	}
	return fields, nil
}

// SlugExists reports whether another post already uses slug. It always reads
// from the primary so a fresh write is visible.
func (r *PostRepo) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Clauses(dbresolver.Write).Model(&models.Post{}).Where("slug = ?", slug)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, errs.NewDatabaseError("check", "blog post slug", err)
	}
	return count > 0, nil
}

// FindAll returns all posts, drafts included.
func (r *PostRepo) FindAll(ctx context.Context) ([]*models.Post, error) {
	var posts []*models.Post
	if err := r.db.WithContext(ctx).Order(newestFirst).Find(&posts).Error; err != nil {
		return nil, errs.NewDatabaseError("list", "blog posts", err)
	}
	return posts, nil
}

func (r *PostRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).Clauses(dbresolver.Write).First(&post, "id = ?", id).Error; err != nil {
		return nil, errs.NewDatabaseError("find", "blog post", err)
	}
	return &post, nil
}

// FindBySlug returns the post with slug whether or not it is published.
func (r *PostRepo) FindBySlug(ctx context.Context, slug string) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).Clauses(dbresolver.Write).First(&post, "slug = ?", slug).Error; err != nil {
		return nil, errs.NewDatabaseError("find", "blog post", err)
	}
	return &post, nil
}

// Add inserts a new post, assigning an ID when it has none.
func (r *PostRepo) Add(ctx context.Context, post *models.Post) error {
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return slugWriteError("create", err)
	}
	return nil
}

func (r *PostRepo) Update(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return slugWriteError("update", err)
	}
	return nil
}

// slugWriteError reports a unique index violation on posts as a conflict on
// slug, the only unique column besides the primary key.
func slugWriteError(operation string, err error) error {
	if errs.IsDuplicateKey(err) {
		return errs.NewUniqueConstraintViolationError("blog post", "slug", err)
	}
	return errs.NewDatabaseError(operation, "blog post", err)
}

func (r *PostRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Post{}, "id = ?", id)
	if result.Error != nil {
		return errs.NewDatabaseError("delete", "blog post", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFound("blog post")
	}
	return nil
}
