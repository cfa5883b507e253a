package database_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Samandar-Komilov/voidpdev/database"
	"github.com/Samandar-Komilov/voidpdev/database/databasetest"
	"github.com/Samandar-Komilov/voidpdev/errs"
	"github.com/Samandar-Komilov/voidpdev/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func addPost(t *testing.T, repo *database.PostRepo, post models.Post, age int) *models.Post {
	t.Helper()
	if post.Slug == "" {
		post.Slug = fmt.Sprintf("post-%d", age)
	}
	if post.Title == "" {
		post.Title = post.Slug
	}
	post.CreatedAt = epoch.Add(-time.Duration(age) * time.Hour)
	require.NoError(t, repo.Add(context.Background(), &post))
	return &post
}

func slugs(posts []*models.Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.Slug
	}
	return out
}

func TestPostRepoPublishedListing(t *testing.T) {
	ctx := context.Background()
	repo := database.NewPostRepo(databasetest.Open(t))

	addPost(t, repo, models.Post{Slug: "old", Published: true}, 3)
	addPost(t, repo, models.Post{Slug: "draft", Published: false}, 0)
	addPost(t, repo, models.Post{Slug: "new", Published: true}, 1)
	addPost(t, repo, models.Post{Slug: "middle", Published: true}, 2)

	posts, err := repo.FindPublished(ctx, database.PostFilter{}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"new", "middle", "old"}, slugs(posts))

	window, err := repo.FindPublished(ctx, database.PostFilter{}, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"middle"}, slugs(window))

	total, err := repo.CountPublished(ctx, database.PostFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
}

func TestPostRepoSearchAndTagFilters(t *testing.T) {
	ctx := context.Background()
	repo := database.NewPostRepo(databasetest.Open(t))

	addPost(t, repo, models.Post{Slug: "title-hit", Title: "Learning Rust", Published: true}, 1)
	addPost(t, repo, models.Post{Slug: "content-hit", Title: "Notes", Content: "<p>some RUST code</p>", Published: true}, 2)
	addPost(t, repo, models.Post{Slug: "tag-hit", Title: "Systems", Tags: "rust, wasm", Published: true}, 3)
	addPost(t, repo, models.Post{Slug: "miss", Title: "Go tips", Tags: "go", Published: true}, 4)
	addPost(t, repo, models.Post{Slug: "draft-hit", Title: "Rust draft", Published: false}, 0)

	posts, err := repo.FindPublished(ctx, database.PostFilter{Search: "rust"}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"title-hit", "content-hit", "tag-hit"}, slugs(posts))

	posts, err = repo.FindPublished(ctx, database.PostFilter{Tag: "WASM"}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"tag-hit"}, slugs(posts))

	posts, err = repo.FindPublished(ctx, database.PostFilter{Search: "rust", Tag: "go"}, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestPostRepoLikeWildcardsAreLiteral(t *testing.T) {
	ctx := context.Background()
	repo := database.NewPostRepo(databasetest.Open(t))

	addPost(t, repo, models.Post{Slug: "percent", Title: "100% done", Published: true}, 1)
	addPost(t, repo, models.Post{Slug: "plain", Title: "100 done", Published: true}, 2)
	addPost(t, repo, models.Post{Slug: "underscore", Title: "snake_case", Published: true}, 3)
	addPost(t, repo, models.Post{Slug: "no-underscore", Title: "snakeXcase", Published: true}, 4)

	posts, err := repo.FindPublished(ctx, database.PostFilter{Search: "100%"}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"percent"}, slugs(posts))

	posts, err = repo.FindPublished(ctx, database.PostFilter{Search: "e_c"}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"underscore"}, slugs(posts))
}

func TestPostRepoSearchFoldsBothSidesAlike(t *testing.T) {
	ctx := context.Background()
	repo := database.NewPostRepo(databasetest.Open(t))

	addPost(t, repo, models.Post{Slug: "ecole", Title: "École Notes", Published: true}, 1)

	for _, search := range []string{"École", "NOTES", "École notes"} {
		posts, err := repo.FindPublished(ctx, database.PostFilter{Search: search}, 0, 10)
		require.NoError(t, err)
		assert.Equal(t, []string{"ecole"}, slugs(posts), search)
	}
}

func TestPostRepoFindPublishedBySlug(t *testing.T) {
	ctx := context.Background()
	repo := database.NewPostRepo(databasetest.Open(t))

	addPost(t, repo, models.Post{Slug: "live", Published: true}, 1)
	addPost(t, repo, models.Post{Slug: "hidden", Published: false}, 2)

	post, err := repo.FindPublishedBySlug(ctx, "live")
	require.NoError(t, err)
	assert.Equal(t, "live", post.Slug)

	_, err = repo.FindPublishedBySlug(ctx, "hidden")
	assert.True(t, errs.IsNotFound(err))

	_, err = repo.FindPublishedBySlug(ctx, "missing")
	assert.True(t, errs.IsNotFound(err))

	draft, err := repo.FindBySlug(ctx, "hidden")
	require.NoError(t, err)
	assert.False(t, draft.Published)
}

func TestPostRepoRecentAndTags(t *testing.T) {
	ctx := context.Background()
	repo := database.NewPostRepo(databasetest.Open(t))

	current := addPost(t, repo, models.Post{Slug: "current", Tags: "go", Published: true}, 0)
	addPost(t, repo, models.Post{Slug: "a", Tags: "rust, go", Published: true}, 1)
	addPost(t, repo, models.Post{Slug: "b", Tags: "", Published: true}, 2)
	addPost(t, repo, models.Post{Slug: "c", Tags: "secret", Published: false}, 3)
	addPost(t, repo, models.Post{Slug: "d", Tags: "js", Published: true}, 4)
	addPost(t, repo, models.Post{Slug: "e", Published: true}, 5)

	related, err := repo.FindRecentPublished(ctx, current.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "d"}, slugs(related))

	recent, err := repo.FindRecentPublished(ctx, uuid.Nil, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"current", "a"}, slugs(recent))

	fields, err := repo.PublishedTagFields(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"go", "rust, go", "", "js", ""}, fields)
}

func TestPostRepoSlugExists(t *testing.T) {
	ctx := context.Background()
	repo := database.NewPostRepo(databasetest.Open(t))
	post := addPost(t, repo, models.Post{Slug: "taken"}, 0)

	exists, err := repo.SlugExists(ctx, "taken", uuid.Nil)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.SlugExists(ctx, "taken", post.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.SlugExists(ctx, "free", uuid.Nil)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPostRepoCRUD(t *testing.T) {
	ctx := context.Background()
	repo := database.NewPostRepo(databasetest.Open(t))

	post := addPost(t, repo, models.Post{Slug: "crud", Title: "Before"}, 0)
	assert.NotEqual(t, uuid.Nil, post.ID)

	err := repo.Add(ctx, &models.Post{Title: "Dup", Slug: "crud"})
	assert.True(t, errs.IsUniqueConstraintViolationError(err), "got %v", err)
	assert.True(t, errs.IsAlreadyExists(err))
	var apiErr *errs.ApiErr
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "slug", apiErr.Field)

	post.Title = "After"
	post.Published = true
	require.NoError(t, repo.Update(ctx, post))

	found, err := repo.FindByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", found.Title)
	assert.True(t, found.Published)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, repo.Delete(ctx, post.ID))
	_, err = repo.FindByID(ctx, post.ID)
	assert.True(t, errs.IsNotFound(err))
	assert.True(t, errs.IsNotFound(repo.Delete(ctx, post.ID)))
}
