package content

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer scrubs authored rich HTML before it is stored.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer starts from the UGC policy, forces nofollow on links and
// keeps the classes and anchors that highlighted code and headings rely on.
func NewSanitizer() *Sanitizer {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(true)
	p.AllowAttrs("class").OnElements("pre", "code", "span", "div")
	p.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6")

	return &Sanitizer{policy: p}
}

func (s *Sanitizer) Sanitize(html string) string {
	return strings.TrimSpace(s.policy.Sanitize(html))
}
