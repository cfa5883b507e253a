// Package content turns authored post content into the derived values shown
// on the site: rendered HTML, plain text, excerpt, reading time and slug.
package content

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Samandar-Komilov/voidpdev/metrics"
)

// Format is the source format of stored post content. It is a system-wide
// setting, not a per-post one.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

const (
	// DefaultExcerptLength is the excerpt budget in characters.
	DefaultExcerptLength = 150
	// MaxExcerptLength bounds stored excerpts, derived or authored.
	MaxExcerptLength = 300

	excerptMarker  = "..."
	wordsPerMinute = 200
)

// ParseFormat maps a configuration value onto a Format. The empty string
// selects Markdown.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "markdown", "md":
		return FormatMarkdown, nil
	case "html", "rich_html", "richtext":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("unsupported content format %q", value)
	}
}

// Normalized holds everything derived from one piece of raw content.
type Normalized struct {
	HTML               string `json:"html"`
	TOC                string `json:"toc,omitempty"`
	PlainText          string `json:"-"`
	Excerpt            string `json:"excerpt"`
	ReadingTimeMinutes int    `json:"readingTimeMinutes"`
}

// Normalizer derives HTML, plain text, excerpt and reading time from raw
// content in its configured format. It holds no per-call state and is safe
// for concurrent use.
type Normalizer struct {
	format        Format
	excerptLength int
	markdown      *markdownRenderer
}

type Option func(*Normalizer)

// WithExcerptLength overrides the excerpt budget. Values outside
// (0, MaxExcerptLength-len(marker)] are ignored.
func WithExcerptLength(length int) Option {
	return func(n *Normalizer) {
		if length > 0 && length <= MaxExcerptLength-len(excerptMarker) {
			n.excerptLength = length
		}
	}
}

func NewNormalizer(format Format, opts ...Option) *Normalizer {
	n := &Normalizer{
		format:        format,
		excerptLength: DefaultExcerptLength,
		markdown:      newMarkdownRenderer(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func (n *Normalizer) Format() Format {
	return n.format
}

func (n *Normalizer) ExcerptLength() int {
	return n.excerptLength
}

// Normalize never fails: malformed markup yields a degraded plain text, not
// an error.
func (n *Normalizer) Normalize(raw string) Normalized {
	start := time.Now()
	defer func() { metrics.ObserveRender(string(n.format), time.Since(start)) }()

	html, toc := n.Render(raw)
	plain := ExtractText(html)

	return Normalized{
		HTML:               html,
		TOC:                toc,
		PlainText:          plain,
		Excerpt:            Excerpt(plain, n.excerptLength),
		ReadingTimeMinutes: ReadingTime(plain),
	}
}

// Render returns the HTML view of raw content and, for Markdown, a rendered
// table of contents. Rich HTML content is already the view.
func (n *Normalizer) Render(raw string) (html string, toc string) {
	if n.format == FormatHTML {
		return raw, ""
	}
	return n.markdown.render([]byte(raw))
}

// RenderMarkdown converts Markdown to HTML regardless of the configured
// format. The importer uses it to store Markdown documents as rich HTML.
func (n *Normalizer) RenderMarkdown(source string) string {
	html, _ := n.markdown.render([]byte(source))
	return html
}

// PlainText is the visible text of raw content.
func (n *Normalizer) PlainText(raw string) string {
	html, _ := n.Render(raw)
	return ExtractText(html)
}

// Excerpt derives the excerpt of raw content using the configured budget.
func (n *Normalizer) Excerpt(raw string) string {
	return Excerpt(n.PlainText(raw), n.excerptLength)
}

// Excerpt keeps the first length characters of plain and appends the marker
// only when something was cut.
func Excerpt(plain string, length int) string {
	if length <= 0 {
		length = DefaultExcerptLength
	}
	runes := []rune(plain)
	if len(runes) <= length {
		return plain
	}
	return string(runes[:length]) + excerptMarker
}

// ReadingTime estimates minutes at 200 words per minute. Halves round to
// even and the result is never below one minute, empty text included.
func ReadingTime(plain string) int {
	words := len(strings.Fields(plain))
	minutes := int(math.RoundToEven(float64(words) / wordsPerMinute))
	return max(1, minutes)
}
