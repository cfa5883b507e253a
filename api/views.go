package api

import (
	"context"

	"github.com/Samandar-Komilov/voidpdev/content"
	"github.com/Samandar-Komilov/voidpdev/media"
	"github.com/Samandar-Komilov/voidpdev/models"
	"github.com/Samandar-Komilov/voidpdev/services"
)

// viewBuilder turns records into response views.
type viewBuilder struct {
	normalizer *content.Normalizer
	media      media.Resolver
	baseURL    string
}

func newViewBuilder(normalizer *content.Normalizer, resolver media.Resolver, baseURL string) viewBuilder {
	if resolver == nil {
		resolver = media.StaticResolver{BaseURL: "/media/"}
	}
	return viewBuilder{normalizer: normalizer, media: resolver, baseURL: baseURL}
}

func (v viewBuilder) postSummary(ctx context.Context, post *models.Post) PostSummary {
	return PostSummary{
		ID:               post.ID,
		Title:            post.Title,
		Slug:             post.Slug,
		Excerpt:          post.Excerpt,
		Tags:             post.TagsList(),
		FeaturedImageURL: media.ResolveURL(ctx, v.media, post.FeaturedImage),
		URL:              services.BuildPostURL(v.baseURL, post.Slug),
		CreatedAt:        post.CreatedAt,
		UpdatedAt:        post.UpdatedAt,
	}
}

func (v viewBuilder) postSummaries(ctx context.Context, posts []*models.Post) []PostSummary {
	views := make([]PostSummary, 0, len(posts))
	for _, post := range posts {
		views = append(views, v.postSummary(ctx, post))
	}
	return views
}

func (v viewBuilder) postDetail(ctx context.Context, post *models.Post, related []*models.Post) PostDetail {
	normalized := v.normalizer.Normalize(post.Content)

	summary := v.postSummary(ctx, post)
	if summary.Excerpt == "" {
		summary.Excerpt = normalized.Excerpt
	}

	return PostDetail{
		PostSummary:        summary,
		HTML:               normalized.HTML,
		TOC:                normalized.TOC,
		ReadingTimeMinutes: normalized.ReadingTimeMinutes,
		Related:            v.postSummaries(ctx, related),
	}
}

func (v viewBuilder) project(ctx context.Context, project *models.Project) ProjectView {
	return ProjectView{
		ID:           project.ID,
		Title:        project.Title,
		Description:  project.Description,
		ImageURL:     media.ResolveURL(ctx, v.media, project.Image),
		GithubURL:    project.GithubURL,
		LiveURL:      project.LiveURL,
		Technologies: project.TechnologiesList(),
		Featured:     project.Featured,
		CreatedAt:    project.CreatedAt,
	}
}

func (v viewBuilder) projects(ctx context.Context, projects []*models.Project) []ProjectView {
	views := make([]ProjectView, 0, len(projects))
	for _, project := range projects {
		views = append(views, v.project(ctx, project))
	}
	return views
}
