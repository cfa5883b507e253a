package api

import (
	"net/http"
	"time"

	"github.com/Samandar-Komilov/voidpdev/database"
	"github.com/Samandar-Komilov/voidpdev/models"
	"github.com/Samandar-Komilov/voidpdev/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const homeItems = 3

type siteHandler struct {
	responder   Responder
	logger      zerolog.Logger
	blog        *services.BlogService
	projects    *services.ProjectService
	views       viewBuilder
	database    database.Database
	startupTime time.Time
}

func newSiteHandler(blog *services.BlogService, projects *services.ProjectService, views viewBuilder, db database.Database, startupTime time.Time) siteHandler {
	logger := log.With().Str("handlerName", "siteHandler").Logger()

	return siteHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		blog:        blog,
		projects:    projects,
		views:       views,
		database:    db,
		startupTime: startupTime,
	}
}

// home returns the featured projects and the most recent posts.
func (h siteHandler) home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			featured []*models.Project
			recent   []*models.Post
		)

		g, ctx := errgroup.WithContext(r.Context())
		g.Go(func() error {
			var err error
			featured, err = h.projects.FeaturedProjects(ctx, homeItems)
			return err
		})
		g.Go(func() error {
			var err error
			recent, err = h.blog.RecentPosts(ctx, homeItems)
			return err
		})
		if err := g.Wait(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, HomeResponse{
			FeaturedProjects: h.views.projects(r.Context(), featured),
			RecentPosts:      h.views.postSummaries(r.Context(), recent),
		})
	}
}

// health reports uptime and whether the database answers.
func (h siteHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := HealthResponse{
			Status:    "ok",
			Database:  "ok",
			StartedAt: h.startupTime.UTC(),
			Uptime:    time.Since(h.startupTime).Round(time.Second).String(),
		}
		status := http.StatusOK

		if err := h.pingDatabase(r); err != nil {
			h.logger.Error().Err(err).Msg("Database health check failed")
			response.Status = "degraded"
			response.Database = "unavailable"
			status = http.StatusServiceUnavailable
		}

		h.responder.WriteJSONStatus(w, status, response)
	}
}

func (h siteHandler) pingDatabase(r *http.Request) error {
	db := h.database.GetDB()
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(r.Context())
}
