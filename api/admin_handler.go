package api

import (
	"encoding/json"
	"net/http"

	"github.com/Samandar-Komilov/voidpdev/database"
	"github.com/Samandar-Komilov/voidpdev/errs"
	"github.com/Samandar-Komilov/voidpdev/services"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const maxRequestBody = 1 << 20 // 1MB

type adminHandler struct {
	responder   Responder
	logger      zerolog.Logger
	posts       *services.PostWriter
	projects    *services.ProjectWriter
	postRepo    *database.PostRepo
	projectRepo *database.ProjectRepo
}

func newAdminHandler(posts *services.PostWriter, projects *services.ProjectWriter, postRepo *database.PostRepo, projectRepo *database.ProjectRepo) adminHandler {
	logger := log.With().Str("handlerName", "adminHandler").Logger()

	return adminHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		posts:       posts,
		projects:    projects,
		postRepo:    postRepo,
		projectRepo: projectRepo,
	}
}

func (h adminHandler) decode(w http.ResponseWriter, r *http.Request, payloadType string, dst any) bool {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		h.logger.Warn().Err(err).Str("payload", payloadType).Msg("Failed to decode request body")
		h.responder.WriteError(w, errs.NewMalformedPayloadError(payloadType, err))
		return false
	}
	return true
}

func (h adminHandler) idParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		h.responder.WriteError(w, errs.NewBadRequestError("invalid "+name))
		return uuid.Nil, false
	}
	return id, true
}

// listPosts returns every post, drafts included.
func (h adminHandler) listPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.postRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, posts)
	}
}

func (h adminHandler) getPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := h.idParam(w, r, "postID")
		if !ok {
			return
		}
		post, err := h.postRepo.FindByID(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, post)
	}
}

func (h adminHandler) createPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input services.PostInput
		if !h.decode(w, r, "post", &input) {
			return
		}

		post, err := h.posts.Create(r.Context(), input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSONStatus(w, http.StatusCreated, post)
	}
}

func (h adminHandler) updatePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := h.idParam(w, r, "postID")
		if !ok {
			return
		}
		var input services.PostInput
		if !h.decode(w, r, "post", &input) {
			return
		}

		post, err := h.posts.Update(r.Context(), id, input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, post)
	}
}

func (h adminHandler) deletePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := h.idParam(w, r, "postID")
		if !ok {
			return
		}
		if err := h.posts.Delete(r.Context(), id); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h adminHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, projects)
	}
}

func (h adminHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := h.idParam(w, r, "projectID")
		if !ok {
			return
		}
		project, err := h.projectRepo.FindByID(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, project)
	}
}

func (h adminHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input services.ProjectInput
		if !h.decode(w, r, "project", &input) {
			return
		}

		project, err := h.projects.Create(r.Context(), input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSONStatus(w, http.StatusCreated, project)
	}
}

func (h adminHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := h.idParam(w, r, "projectID")
		if !ok {
			return
		}
		var input services.ProjectInput
		if !h.decode(w, r, "project", &input) {
			return
		}

		project, err := h.projects.Update(r.Context(), id, input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, project)
	}
}

func (h adminHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := h.idParam(w, r, "projectID")
		if !ok {
			return
		}
		if err := h.projects.Delete(r.Context(), id); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
