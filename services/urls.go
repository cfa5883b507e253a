package services

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/Samandar-Komilov/voidpdev/config"
)

// GetBaseURL retrieves the public site URL from configuration.
func GetBaseURL(cfg map[string]string) string {
	return strings.TrimSuffix(config.GetString(cfg, "BASE_URL", ""), "/")
}

// BuildPostURL constructs a blog post URL from base URL and slug. An empty
// base URL yields a site-relative path.
func BuildPostURL(baseURL, slug string) string {
	if slug == "" {
		return ""
	}
	return fmt.Sprintf("%s/blog/%s/", strings.TrimSuffix(baseURL, "/"), url.PathEscape(slug))
}

// BuildProjectsURL returns the projects listing URL, filtered by technology
// when one is given.
func BuildProjectsURL(baseURL, technology string) string {
	u := strings.TrimSuffix(baseURL, "/") + "/projects/"
	if technology != "" {
		u += "?" + url.Values{"tech": {technology}}.Encode()
	}
	return u
}
