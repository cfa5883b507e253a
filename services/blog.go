package services

import (
	"context"

	"github.com/Samandar-Komilov/voidpdev/database"
	"github.com/Samandar-Komilov/voidpdev/models"
	"github.com/google/uuid"
)

const (
	// PostsPerPage is the blog listing page size.
	PostsPerPage = 6
	// DefaultRelatedPosts is how many posts a detail page suggests.
	DefaultRelatedPosts = 3
)

// PostQuery holds blog listing parameters. Empty strings do not filter.
type PostQuery struct {
	Search string
	Tag    string
	Page   int
}

func (q PostQuery) filter() database.PostFilter {
	return database.PostFilter{Search: q.Search, Tag: q.Tag}
}

// BlogService answers the read side of the blog.
type BlogService struct {
	posts PostStore
}

func NewBlogService(posts PostStore) *BlogService {
	return &BlogService{posts: posts}
}

// ListPosts returns one page of published posts matching q, newest first.
// Requests beyond the last page get the last page.
func (s *BlogService) ListPosts(ctx context.Context, q PostQuery) (Page[*models.Post], error) {
	filter := q.filter()

	total, err := s.posts.CountPublished(ctx, filter)
	if err != nil {
		return Page[*models.Post]{}, err
	}

	pagination := Paginate(total, q.Page, PostsPerPage)
	page := Page[*models.Post]{Pagination: pagination, Items: []*models.Post{}}
	if total == 0 {
		return page, nil
	}

	posts, err := s.posts.FindPublished(ctx, filter, pagination.Offset(), pagination.Size)
	if err != nil {
		return Page[*models.Post]{}, err
	}
	page.Items = posts
	return page, nil
}

// GetPost returns the published post with slug. Missing and unpublished
// posts produce the same not found error.
func (s *BlogService) GetPost(ctx context.Context, slug string) (*models.Post, error) {
	return s.posts.FindPublishedBySlug(ctx, slug)
}

// RelatedPosts returns up to limit recent published posts other than post.
func (s *BlogService) RelatedPosts(ctx context.Context, post *models.Post, limit int) ([]*models.Post, error) {
	if limit <= 0 {
		limit = DefaultRelatedPosts
	}
	excludeID := uuid.Nil
	if post != nil {
		excludeID = post.ID
	}
	return s.posts.FindRecentPublished(ctx, excludeID, limit)
}

// RecentPosts returns up to limit published posts, newest first.
func (s *BlogService) RecentPosts(ctx context.Context, limit int) ([]*models.Post, error) {
	return s.posts.FindRecentPublished(ctx, uuid.Nil, limit)
}

// DistinctTags lists every tag used by a published post.
func (s *BlogService) DistinctTags(ctx context.Context) ([]string, error) {
	fields, err := s.posts.PublishedTagFields(ctx)
	if err != nil {
		return nil, err
	}
	return DistinctValues(fields), nil
}
