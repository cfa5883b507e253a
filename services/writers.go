package services

import (
	"context"
	"strings"
	"time"

	"github.com/Samandar-Komilov/voidpdev/content"
	"github.com/Samandar-Komilov/voidpdev/errs"
	"github.com/Samandar-Komilov/voidpdev/models"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// PostInput is an admin or importer supplied post.
type PostInput struct {
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Content       string     `json:"content"`
	Excerpt       string     `json:"excerpt"`
	FeaturedImage *string    `json:"featuredImage"`
	Published     bool       `json:"published"`
	Tags          string     `json:"tags"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
}

var validSlugRule = validation.By(func(value any) error {
	s, _ := value.(string)
	if s == "" || content.IsValidSlug(s) {
		return nil
	}
	return validation.NewError("validation_slug_invalid", "must be lowercase letters and digits joined by single hyphens")
})

func (in PostInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required, validation.RuneLength(0, 200)),
		validation.Field(&in.Slug, validation.RuneLength(0, 255), validSlugRule),
		validation.Field(&in.Excerpt, validation.RuneLength(0, 300)),
		validation.Field(&in.FeaturedImage, validation.RuneLength(0, 255)),
		validation.Field(&in.Tags, validation.RuneLength(0, 200)),
	)
}

func (in *PostInput) trim() {
	in.Title = strings.TrimSpace(in.Title)
	in.Slug = strings.TrimSpace(in.Slug)
	in.Tags = models.JoinList([]string{in.Tags})
	if in.FeaturedImage != nil {
		image := strings.TrimSpace(*in.FeaturedImage)
		if image == "" {
			in.FeaturedImage = nil
		} else {
			in.FeaturedImage = &image
		}
	}
}

// PostWriter is the only way posts get persisted. It validates input,
// sanitises rich HTML and runs PreparePost before every save.
type PostWriter struct {
	store      PostWriteStore
	normalizer *content.Normalizer
	sanitizer  *content.Sanitizer
}

// NewPostWriter builds a writer. A nil sanitizer stores rich HTML as given.
func NewPostWriter(store PostWriteStore, normalizer *content.Normalizer, sanitizer *content.Sanitizer) *PostWriter {
	return &PostWriter{store: store, normalizer: normalizer, sanitizer: sanitizer}
}

func (w *PostWriter) Create(ctx context.Context, in PostInput) (*models.Post, error) {
	in.trim()
	if err := in.Validate(); err != nil {
		return nil, errs.NewValidationError(err)
	}

	post := &models.Post{ID: uuid.New()}
	w.apply(post, in)
	if err := w.prepare(ctx, post); err != nil {
		return nil, err
	}
	if err := w.store.Add(ctx, post); err != nil {
		return nil, err
	}

	log.Info().Str("postID", post.ID.String()).Str("slug", post.Slug).Msg("Post created")
	return post, nil
}

// Update replaces the editable fields of the post with id. A blank slug
// keeps the current one.
func (w *PostWriter) Update(ctx context.Context, id uuid.UUID, in PostInput) (*models.Post, error) {
	in.trim()
	if err := in.Validate(); err != nil {
		return nil, errs.NewValidationError(err)
	}

	post, err := w.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	w.apply(post, in)
	if err := w.prepare(ctx, post); err != nil {
		return nil, err
	}
	if err := w.store.Update(ctx, post); err != nil {
		return nil, err
	}

	log.Info().Str("postID", post.ID.String()).Str("slug", post.Slug).Msg("Post updated")
	return post, nil
}

func (w *PostWriter) Delete(ctx context.Context, id uuid.UUID) error {
	if err := w.store.Delete(ctx, id); err != nil {
		return err
	}
	log.Info().Str("postID", id.String()).Msg("Post deleted")
	return nil
}

func (w *PostWriter) apply(post *models.Post, in PostInput) {
	post.Title = in.Title
	if in.Slug != "" {
		post.Slug = in.Slug
	}
	post.Content = in.Content
	if w.sanitizer != nil && w.normalizer.Format() == content.FormatHTML {
		post.Content = w.sanitizer.Sanitize(in.Content)
	}
	post.Excerpt = in.Excerpt
	post.FeaturedImage = in.FeaturedImage
	post.Published = in.Published
	post.Tags = in.Tags
	if in.CreatedAt != nil {
		post.CreatedAt = *in.CreatedAt
	}
}

func (w *PostWriter) prepare(ctx context.Context, post *models.Post) error {
	return PreparePost(ctx, post, w.normalizer, func(ctx context.Context, slug string) (bool, error) {
		return w.store.SlugExists(ctx, slug, post.ID)
	})
}

// ProjectInput is an admin supplied project.
type ProjectInput struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Image        *string `json:"image"`
	GithubURL    string  `json:"githubUrl"`
	LiveURL      string  `json:"liveUrl"`
	Technologies string  `json:"technologies"`
	Featured     bool    `json:"featured"`
}

func (in ProjectInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required, validation.RuneLength(0, 200)),
		validation.Field(&in.Description, validation.Required),
		validation.Field(&in.Image, validation.RuneLength(0, 255)),
		validation.Field(&in.GithubURL, validation.RuneLength(0, 200), is.URL),
		validation.Field(&in.LiveURL, validation.RuneLength(0, 200), is.URL),
		validation.Field(&in.Technologies, validation.RuneLength(0, 300)),
	)
}

func (in *ProjectInput) trim() {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.GithubURL = strings.TrimSpace(in.GithubURL)
	in.LiveURL = strings.TrimSpace(in.LiveURL)
	in.Technologies = models.JoinList([]string{in.Technologies})
	if in.Image != nil && strings.TrimSpace(*in.Image) == "" {
		in.Image = nil
	}
}

func (in ProjectInput) applyTo(project *models.Project) {
	project.Title = in.Title
	project.Description = in.Description
	project.Image = in.Image
	project.GithubURL = in.GithubURL
	project.LiveURL = in.LiveURL
	project.Technologies = in.Technologies
	project.Featured = in.Featured
}

type ProjectWriter struct {
	store ProjectWriteStore
}

func NewProjectWriter(store ProjectWriteStore) *ProjectWriter {
	return &ProjectWriter{store: store}
}

func (w *ProjectWriter) Create(ctx context.Context, in ProjectInput) (*models.Project, error) {
	in.trim()
	if err := in.Validate(); err != nil {
		return nil, errs.NewValidationError(err)
	}

	project := &models.Project{ID: uuid.New()}
	in.applyTo(project)
	if err := w.store.Add(ctx, project); err != nil {
		return nil, err
	}
	log.Info().Str("projectID", project.ID.String()).Msg("Project created")
	return project, nil
}

func (w *ProjectWriter) Update(ctx context.Context, id uuid.UUID, in ProjectInput) (*models.Project, error) {
	in.trim()
	if err := in.Validate(); err != nil {
		return nil, errs.NewValidationError(err)
	}

	project, err := w.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	in.applyTo(project)
	if err := w.store.Update(ctx, project); err != nil {
		return nil, err
	}
	log.Info().Str("projectID", project.ID.String()).Msg("Project updated")
	return project, nil
}

func (w *ProjectWriter) Delete(ctx context.Context, id uuid.UUID) error {
	if err := w.store.Delete(ctx, id); err != nil {
		return err
	}
	log.Info().Str("projectID", id.String()).Msg("Project deleted")
	return nil
}
