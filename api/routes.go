package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupPublicRoutes mounts the read-only site routes. Trailing slashes are
// stripped before routing, so /blog and /blog/ are the same route.
func setupPublicRoutes(r chi.Router, handlers *routeHandlers) {
	r.Get("/", handlers.siteHandler.home())

	r.Get("/projects", handlers.projectHandler.listProjects())

	r.Get("/blog", handlers.blogHandler.listPosts())
	r.Get("/blog/{slug}", handlers.blogHandler.getPost())
}

func setupOpsRoutes(r chi.Router, handlers *routeHandlers) {
	r.Get("/health", handlers.siteHandler.health())
	r.Handle("/metrics", promhttp.Handler())
}

// setupAdminRoutes mounts the write path. It is only called when the admin
// API is switched on.
func setupAdminRoutes(r chi.Router, handlers *routeHandlers) {
	r.Route("/admin", func(r chi.Router) {
		r.Get("/posts", handlers.adminHandler.listPosts())
		r.Post("/posts", handlers.adminHandler.createPost())
		r.Get("/posts/{postID}", handlers.adminHandler.getPost())
		r.Put("/posts/{postID}", handlers.adminHandler.updatePost())
		r.Delete("/posts/{postID}", handlers.adminHandler.deletePost())

		r.Get("/projects", handlers.adminHandler.listProjects())
		r.Post("/projects", handlers.adminHandler.createProject())
		r.Get("/projects/{projectID}", handlers.adminHandler.getProject())
		r.Put("/projects/{projectID}", handlers.adminHandler.updateProject())
		r.Delete("/projects/{projectID}", handlers.adminHandler.deleteProject())
	})
}
