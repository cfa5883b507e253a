package services

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Samandar-Komilov/voidpdev/content"
	"github.com/Samandar-Komilov/voidpdev/errs"
	"github.com/Samandar-Komilov/voidpdev/metrics"
	"github.com/adrg/frontmatter"
	"github.com/rs/zerolog/log"
)

// Import outcomes.
const (
	OutcomeCreated = "created"
	OutcomeUpdated = "updated"
	OutcomeFailed  = "failed"
)

// ImportResult reports what happened to one Markdown file.
type ImportResult struct {
	Path    string
	Slug    string
	Outcome string
	DryRun  bool
	Err     error
}

type postFrontMatter struct {
	Title         string    `yaml:"title" toml:"title"`
	Slug          string    `yaml:"slug" toml:"slug"`
	Excerpt       string    `yaml:"excerpt" toml:"excerpt"`
	Tags          []string  `yaml:"tags" toml:"tags"`
	FeaturedImage string    `yaml:"featured_image" toml:"featured_image"`
	Published     *bool     `yaml:"published" toml:"published"`
	Draft         bool      `yaml:"draft" toml:"draft"`
	Date          time.Time `yaml:"date" toml:"date"`
}

// Importer loads Markdown documents with front matter as posts, creating
// new ones and updating those whose slug already exists.
type Importer struct {
	writer     *PostWriter
	store      PostWriteStore
	normalizer *content.Normalizer
	dryRun     bool
}

func NewImporter(writer *PostWriter, store PostWriteStore, normalizer *content.Normalizer, dryRun bool) *Importer {
	return &Importer{writer: writer, store: store, normalizer: normalizer, dryRun: dryRun}
}

// ImportDirectory imports every *.md file below dir in lexical order. A file
// that fails does not stop the others; its result carries the error.
func (im *Importer) ImportDirectory(ctx context.Context, dir string) ([]ImportResult, error) {
	var results []ImportResult
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".md") {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		result := im.importFile(ctx, path)
		if !result.DryRun {
			metrics.RecordImport(result.Outcome)
		}
		if result.Err != nil {
			log.Warn().Err(result.Err).Str("path", path).Msg("Failed to import post")
		} else {
			log.Info().Str("path", path).Str("slug", result.Slug).Str("outcome", result.Outcome).Bool("dryRun", result.DryRun).Msg("Imported post")
		}
		results = append(results, result)
		return nil
	})
	if err != nil {
		return results, fmt.Errorf("import %s: %w", dir, err)
	}
	return results, nil
}

func (im *Importer) importFile(ctx context.Context, path string) ImportResult {
	result := ImportResult{Path: path, DryRun: im.dryRun}
	fail := func(err error) ImportResult {
		result.Outcome = OutcomeFailed
		result.Err = err
		return result
	}

	in, err := im.readPost(path)
	if err != nil {
		return fail(err)
	}
	result.Slug = in.Slug

	existing, err := im.store.FindBySlug(ctx, in.Slug)
	switch {
	case err == nil:
		result.Outcome = OutcomeUpdated
	case errs.IsNotFound(err):
		result.Outcome = OutcomeCreated
	default:
		return fail(err)
	}

	if im.dryRun {
		in.trim()
		if err := in.Validate(); err != nil {
			return fail(errs.NewValidationError(err))
		}
		return result
	}

	if existing != nil {
		_, err = im.writer.Update(ctx, existing.ID, in)
	} else {
		_, err = im.writer.Create(ctx, in)
	}
	if err != nil {
		return fail(err)
	}
	return result
}

// readPost turns one document into post input. The title falls back to the
// file name and the slug is derived up front so existing posts are found.
func (im *Importer) readPost(path string) (PostInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return PostInput{}, err
	}
	defer f.Close()

	var meta postFrontMatter
	body, err := frontmatter.Parse(f, &meta)
	if err != nil {
		return PostInput{}, fmt.Errorf("parse front matter: %w", err)
	}

	title := strings.TrimSpace(meta.Title)
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	source := strings.TrimSpace(string(body))
	if im.normalizer.Format() == content.FormatHTML {
		source = im.normalizer.RenderMarkdown(source)
	}

	in := PostInput{
		Title:     title,
		Slug:      content.AssignSlug(title, meta.Slug),
		Content:   source,
		Excerpt:   meta.Excerpt,
		Published: !meta.Draft,
		Tags:      strings.Join(meta.Tags, ","),
	}
	if meta.Published != nil {
		in.Published = *meta.Published
	}
	if meta.FeaturedImage != "" {
		image := meta.FeaturedImage
		in.FeaturedImage = &image
	}
	if !meta.Date.IsZero() {
		date := meta.Date
		in.CreatedAt = &date
	}
	return in, nil
}
