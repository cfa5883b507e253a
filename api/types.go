package api

import (
	"time"

	"github.com/Samandar-Komilov/voidpdev/services"
	"github.com/google/uuid"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	siteHandler    siteHandler
	projectHandler projectHandler
	blogHandler    blogHandler
	adminHandler   adminHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"title"`
	Details string `json:"details,omitempty" example:"Additional error details"`
	Cause   string `json:"cause,omitempty" example:"Underlying error cause"`
}

// PostSummary is a post as shown in listings.
type PostSummary struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	Excerpt          string    `json:"excerpt"`
	Tags             []string  `json:"tags"`
	FeaturedImageURL string    `json:"featuredImageUrl,omitempty"`
	URL              string    `json:"url"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// PostDetail is a single rendered post.
type PostDetail struct {
	PostSummary
	HTML               string        `json:"html"`
	TOC                string        `json:"toc,omitempty"`
	ReadingTimeMinutes int           `json:"readingTimeMinutes"`
	Related            []PostSummary `json:"related"`
}

type ProjectView struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	GithubURL    string    `json:"githubUrl,omitempty"`
	LiveURL      string    `json:"liveUrl,omitempty"`
	Technologies []string  `json:"technologies"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"createdAt"`
}

type HomeResponse struct {
	FeaturedProjects []ProjectView `json:"featuredProjects"`
	RecentPosts      []PostSummary `json:"recentPosts"`
}

// ProjectsResponse omits the technology facets in fragment mode.
type ProjectsResponse struct {
	Projects     []ProjectView `json:"projects"`
	Technologies []string      `json:"technologies,omitempty"`
	CurrentTech  string        `json:"currentTech"`
	Fragment     bool          `json:"fragment"`
}

// BlogListResponse omits the tag facets in fragment mode.
type BlogListResponse struct {
	Posts       []PostSummary       `json:"posts"`
	Pagination  services.Pagination `json:"pagination"`
	SearchQuery string              `json:"searchQuery"`
	CurrentTag  string              `json:"currentTag"`
	Tags        []string            `json:"tags,omitempty"`
	Fragment    bool                `json:"fragment"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	StartedAt time.Time `json:"startedAt"`
	Uptime    string    `json:"uptime"`
}
