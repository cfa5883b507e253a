package api

import (
	"net/http"
	"strconv"

	"github.com/Samandar-Komilov/voidpdev/models"
	"github.com/Samandar-Komilov/voidpdev/services"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type blogHandler struct {
	responder Responder
	logger    zerolog.Logger
	blog      *services.BlogService
	views     viewBuilder
}

func newBlogHandler(blog *services.BlogService, views viewBuilder) blogHandler {
	logger := log.With().Str("handlerName", "blogHandler").Logger()

	return blogHandler{
		responder: NewResponder(logger),
		logger:    logger,
		blog:      blog,
		views:     views,
	}
}

// pageParam reads ?page=. Anything that is not an integer means the first
// page; range clamping happens in the service.
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		return 1
	}
	return page
}

// listPosts returns a page of published posts filtered by ?search= and ?tag=.
func (h blogHandler) listPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := services.PostQuery{
			Search: r.URL.Query().Get("search"),
			Tag:    r.URL.Query().Get("tag"),
			Page:   pageParam(r),
		}
		fragment := ctxIsFragment(r.Context())

		var (
			page services.Page[*models.Post]
			tags []string
		)
		g, ctx := errgroup.WithContext(r.Context())
		g.Go(func() error {
			var err error
			page, err = h.blog.ListPosts(ctx, query)
			return err
		})
		if !fragment {
			g.Go(func() error {
				var err error
				tags, err = h.blog.DistinctTags(ctx)
				return err
			})
		}
		if err := g.Wait(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, BlogListResponse{
			Posts:       h.views.postSummaries(r.Context(), page.Items),
			Pagination:  page.Pagination,
			SearchQuery: query.Search,
			CurrentTag:  query.Tag,
			Tags:        tags,
			Fragment:    fragment,
		})
	}
}

// getPost renders one published post with related posts. Drafts and
// unknown slugs both answer 404.
func (h blogHandler) getPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		slug := chi.URLParam(r, "slug")

		post, err := h.blog.GetPost(ctx, slug)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		related, err := h.blog.RelatedPosts(ctx, post, services.DefaultRelatedPosts)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, h.views.postDetail(ctx, post, related))
	}
}
