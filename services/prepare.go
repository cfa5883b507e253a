package services

import (
	"context"
	"strings"

	"github.com/Samandar-Komilov/voidpdev/content"
	"github.com/Samandar-Komilov/voidpdev/errs"
	"github.com/Samandar-Komilov/voidpdev/models"
)

// PreparePost derives the stored fields of post right before it is
// persisted: a trimmed title, a unique slug, tags in canonical "a, b" form
// and an excerpt when the post has content but none. A slug derived from the
// title gets a numeric suffix on collision; a slug already set is kept as is
// and fails with a conflict when another post holds it. slugTaken reports
// whether another post already holds a slug.
func PreparePost(ctx context.Context, post *models.Post, normalizer *content.Normalizer, slugTaken content.SlugTakenFunc) error {
	post.Title = strings.TrimSpace(post.Title)
	post.Tags = models.JoinList([]string{post.Tags})

	if explicit := strings.TrimSpace(post.Slug); explicit != "" {
		taken, err := slugTaken(ctx, explicit)
		if err != nil {
			return err
		}
		if taken {
			return errs.NewUniqueConstraintViolationError("blog post", "slug", nil)
		}
		post.Slug = explicit
	} else {
		slug, err := content.UniqueSlug(ctx, content.Slugify(post.Title), slugTaken)
		if err != nil {
			return err
		}
		post.Slug = slug
	}

	post.Excerpt = strings.TrimSpace(post.Excerpt)
	if post.Excerpt == "" && strings.TrimSpace(post.Content) != "" {
		post.Excerpt = normalizer.Excerpt(post.Content)
	}
	return nil
}
