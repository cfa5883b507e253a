package api

import (
	"github.com/Samandar-Komilov/voidpdev/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(deps Dependencies, router router) *routeHandlers {
	postRepo := deps.Database.PostRepo()
	projectRepo := deps.Database.ProjectRepo()

	blog := services.NewBlogService(postRepo)
	projects := services.NewProjectService(projectRepo)
	views := newViewBuilder(deps.Normalizer, deps.Media, services.GetBaseURL(router.config))

	return &routeHandlers{
		siteHandler:    newSiteHandler(blog, projects, views, deps.Database, router.startupTime),
		projectHandler: newProjectHandler(projects, views),
		blogHandler:    newBlogHandler(blog, views),
		adminHandler: newAdminHandler(
			services.NewPostWriter(postRepo, deps.Normalizer, deps.Sanitizer),
			services.NewProjectWriter(projectRepo),
			postRepo,
			projectRepo,
		),
	}
}
