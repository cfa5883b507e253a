package api

import (
	"net/http"

	"github.com/Samandar-Komilov/voidpdev/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	projects  *services.ProjectService
	views     viewBuilder
}

func newProjectHandler(projects *services.ProjectService, views viewBuilder) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		projects:  projects,
		views:     views,
	}
}

// listProjects returns all projects, optionally narrowed by ?tech=, plus the
// technology facets unless only the fragment was asked for.
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tech := r.URL.Query().Get("tech")
		fragment := ctxIsFragment(ctx)

		projects, err := h.projects.ListProjects(ctx, tech)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		response := ProjectsResponse{
			Projects:    h.views.projects(ctx, projects),
			CurrentTech: tech,
			Fragment:    fragment,
		}
		if !fragment {
			response.Technologies, err = h.projects.DistinctTechnologies(ctx)
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
		}

		h.responder.WriteJSON(w, response)
	}
}
