package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/Samandar-Komilov/voidpdev/content"
	"github.com/Samandar-Komilov/voidpdev/database"
	"github.com/Samandar-Komilov/voidpdev/database/databasetest"
	"github.com/Samandar-Komilov/voidpdev/errs"
	"github.com/Samandar-Komilov/voidpdev/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostWriter(t *testing.T, format content.Format) (*PostWriter, *database.PostRepo) {
	t.Helper()
	repo := database.NewPostRepo(databasetest.Open(t))
	return NewPostWriter(repo, content.NewNormalizer(format), content.NewSanitizer()), repo
}

func TestPreparePost(t *testing.T) {
	normalizer := content.NewNormalizer(content.FormatMarkdown)
	taken := map[string]bool{"hello-world": true, "hello-world-2": true}
	slugTaken := func(_ context.Context, slug string) (bool, error) { return taken[slug], nil }

	post := &models.Post{Title: "  Hello, World!  ", Content: "# Intro\n\nFirst *post*.", Tags: "go,,  web "}
	require.NoError(t, PreparePost(context.Background(), post, normalizer, slugTaken))

	assert.Equal(t, "Hello, World!", post.Title)
	assert.Equal(t, "hello-world-3", post.Slug)
	assert.Equal(t, "go, web", post.Tags)
	assert.Equal(t, "Intro First post.", post.Excerpt)
}

func TestPreparePostKeepsExplicitFields(t *testing.T) {
	normalizer := content.NewNormalizer(content.FormatMarkdown)
	free := func(context.Context, string) (bool, error) { return false, nil }

	post := &models.Post{Title: "Title", Slug: "custom", Content: "body", Excerpt: "Hand written"}
	require.NoError(t, PreparePost(context.Background(), post, normalizer, free))
	assert.Equal(t, "custom", post.Slug)
	assert.Equal(t, "Hand written", post.Excerpt)

	empty := &models.Post{Title: "Empty"}
	require.NoError(t, PreparePost(context.Background(), empty, normalizer, free))
	assert.Equal(t, "", empty.Excerpt)
}

func TestPreparePostRejectsTakenExplicitSlug(t *testing.T) {
	normalizer := content.NewNormalizer(content.FormatMarkdown)
	taken := func(_ context.Context, slug string) (bool, error) { return slug == "custom", nil }

	post := &models.Post{Title: "Title", Slug: " custom "}
	err := PreparePost(context.Background(), post, normalizer, taken)

	var apiErr *errs.ApiErr
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "slug", apiErr.Field)
	assert.True(t, errs.IsUniqueConstraintViolationError(err))
}

func TestPreparePostPropagatesLookupErrors(t *testing.T) {
	failing := func(context.Context, string) (bool, error) { return false, errors.New("db down") }
	err := PreparePost(context.Background(), &models.Post{Title: "x"}, content.NewNormalizer(content.FormatMarkdown), failing)
	assert.ErrorContains(t, err, "db down")
}

func TestPostWriterCreateSuffixesDuplicateTitles(t *testing.T) {
	writer, repo := newPostWriter(t, content.FormatMarkdown)
	ctx := context.Background()

	first, err := writer.Create(ctx, PostInput{Title: "Same Title", Content: "one", Published: true})
	require.NoError(t, err)
	second, err := writer.Create(ctx, PostInput{Title: "Same Title", Content: "two", Published: true})
	require.NoError(t, err)

	assert.Equal(t, "same-title", first.Slug)
	assert.Equal(t, "same-title-2", second.Slug)
	assert.Equal(t, "two", second.Excerpt)

	stored, err := repo.FindBySlug(ctx, "same-title-2")
	require.NoError(t, err)
	assert.Equal(t, second.ID, stored.ID)
}

func TestPostWriterDerivesLongExcerpt(t *testing.T) {
	writer, _ := newPostWriter(t, content.FormatMarkdown)
	body := strings.Repeat("word ", 100)

	post, err := writer.Create(context.Background(), PostInput{Title: "Long", Content: body})

	require.NoError(t, err)
	assert.Equal(t, content.DefaultExcerptLength+3, len([]rune(post.Excerpt)))
	assert.True(t, strings.HasSuffix(post.Excerpt, "..."))
}

func TestPostWriterValidation(t *testing.T) {
	writer, _ := newPostWriter(t, content.FormatMarkdown)
	tooLong := strings.Repeat("x", 256)

	tests := []struct {
		name  string
		input PostInput
		field string
	}{
		{name: "missing title", input: PostInput{Title: "   "}, field: "title"},
		{name: "long title", input: PostInput{Title: strings.Repeat("t", 201)}, field: "title"},
		{name: "bad slug", input: PostInput{Title: "ok", Slug: "Not A Slug"}, field: "slug"},
		{name: "long excerpt", input: PostInput{Title: "ok", Excerpt: strings.Repeat("e", 301)}, field: "excerpt"},
		{name: "long image", input: PostInput{Title: "ok", FeaturedImage: &tooLong}, field: "featuredImage"},
		{name: "long tags", input: PostInput{Title: "ok", Tags: strings.Repeat("t", 201)}, field: "tags"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := writer.Create(context.Background(), tt.input)
			require.Error(t, err)
			assert.True(t, errs.IsValidationError(err))

			var apiErr *errs.ApiErr
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, 400, apiErr.StatusCode)
			assert.Equal(t, tt.field, apiErr.Field)
		})
	}
}

func TestPostWriterSanitizesRichHTML(t *testing.T) {
	writer, _ := newPostWriter(t, content.FormatHTML)

	post, err := writer.Create(context.Background(), PostInput{
		Title:   "Rich",
		Content: `<p onclick="x()">Hi<script>alert(1)</script></p>`,
	})

	require.NoError(t, err)
	assert.Equal(t, "<p>Hi</p>", post.Content)
	assert.Equal(t, "Hi", post.Excerpt)
}

func TestPostWriterLeavesMarkdownAlone(t *testing.T) {
	writer, _ := newPostWriter(t, content.FormatMarkdown)
	source := "Some <b>inline</b> html\n\n```go\nx := 1\n```"

	post, err := writer.Create(context.Background(), PostInput{Title: "Md", Content: source})

	require.NoError(t, err)
	assert.Equal(t, source, post.Content)
}

func TestPostWriterUpdate(t *testing.T) {
	writer, _ := newPostWriter(t, content.FormatMarkdown)
	ctx := context.Background()

	post, err := writer.Create(ctx, PostInput{Title: "Original", Content: "first body"})
	require.NoError(t, err)
	_, err = writer.Create(ctx, PostInput{Title: "Other", Slug: "taken"})
	require.NoError(t, err)

	updated, err := writer.Update(ctx, post.ID, PostInput{Title: "Renamed", Content: "second body", Published: true})
	require.NoError(t, err)
	assert.Equal(t, "original", updated.Slug)
	assert.Equal(t, "second body", updated.Excerpt)
	assert.True(t, updated.Published)

	_, err = writer.Update(ctx, post.ID, PostInput{Title: "Renamed", Slug: "taken"})
	assert.True(t, errs.IsUniqueConstraintViolationError(err), "got %v", err)

	kept, err := writer.Update(ctx, post.ID, PostInput{Title: "Renamed", Slug: "original"})
	require.NoError(t, err)
	assert.Equal(t, "original", kept.Slug)

	_, err = writer.Update(ctx, uuid.New(), PostInput{Title: "Ghost"})
	assert.True(t, errs.IsNotFound(err))
}

func TestPostWriterDelete(t *testing.T) {
	writer, repo := newPostWriter(t, content.FormatMarkdown)
	ctx := context.Background()

	post, err := writer.Create(ctx, PostInput{Title: "Doomed"})
	require.NoError(t, err)
	require.NoError(t, writer.Delete(ctx, post.ID))

	_, err = repo.FindByID(ctx, post.ID)
	assert.True(t, errs.IsNotFound(err))
	assert.True(t, errs.IsNotFound(writer.Delete(ctx, post.ID)))
}

func TestProjectWriter(t *testing.T) {
	repo := database.NewProjectRepo(databasetest.Open(t))
	writer := NewProjectWriter(repo)
	ctx := context.Background()

	project, err := writer.Create(ctx, ProjectInput{
		Title:        " Site ",
		Description:  "Personal site",
		GithubURL:    "https://github.com/voidp/site",
		Technologies: "Go,HTMX, ",
		Featured:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Site", project.Title)
	assert.Equal(t, "Go, HTMX", project.Technologies)

	updated, err := writer.Update(ctx, project.ID, ProjectInput{Title: "Site", Description: "Rewritten", LiveURL: "https://voidp.dev"})
	require.NoError(t, err)
	assert.Equal(t, "Rewritten", updated.Description)
	assert.False(t, updated.Featured)

	require.NoError(t, writer.Delete(ctx, project.ID))
	assert.True(t, errs.IsNotFound(writer.Delete(ctx, project.ID)))
}

func TestProjectWriterValidation(t *testing.T) {
	writer := NewProjectWriter(database.NewProjectRepo(databasetest.Open(t)))

	_, err := writer.Create(context.Background(), ProjectInput{Title: "x", Description: "d", GithubURL: "not a url"})
	var apiErr *errs.ApiErr
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "githubUrl", apiErr.Field)

	_, err = writer.Create(context.Background(), ProjectInput{Title: "x"})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "description", apiErr.Field)
}
