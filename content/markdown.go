package content

import (
	"bytes"
	"html"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/rs/zerolog/log"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/toc"
)

// markdownRenderer wraps a goldmark engine configured with GFM (tables,
// fenced code, strikethrough, autolinks), heading anchors and highlighted
// code blocks. goldmark engines are safe to share between goroutines.
type markdownRenderer struct {
	md goldmark.Markdown
}

func newMarkdownRenderer() *markdownRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("friendly"),
				highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
			),
		),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(goldmarkhtml.WithUnsafe()),
	)
	return &markdownRenderer{md: md}
}

// render returns the document body and its table of contents. The TOC is
// empty when the document has no headings.
func (r *markdownRenderer) render(source []byte) (string, string) {
	doc := r.md.Parser().Parse(text.NewReader(source))

	var body bytes.Buffer
	if err := r.md.Renderer().Render(&body, source, doc); err != nil {
		log.Warn().Err(err).Msg("markdown render failed, falling back to escaped source")
		return "<pre>" + html.EscapeString(string(source)) + "</pre>", ""
	}

	tree, err := toc.Inspect(doc, source, toc.Compact(true))
	if err != nil {
		log.Warn().Err(err).Msg("table of contents inspection failed")
		return body.String(), ""
	}
	list := toc.RenderList(tree)
	if list == nil {
		return body.String(), ""
	}

	var contents bytes.Buffer
	if err := r.md.Renderer().Render(&contents, source, list); err != nil {
		log.Warn().Err(err).Msg("table of contents render failed")
		return body.String(), ""
	}
	return body.String(), contents.String()
}
