package content

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/goliatone/go-slug"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// FallbackSlug is used when a title has no transliterable characters.
	FallbackSlug = "post"
	// MaxSlugLength bounds derived slugs before collision suffixes.
	MaxSlugLength = 200

	maxSlugAttempts = 1000
)

// Characters go-slug may keep that are not allowed in a post slug.
var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe identifier from a title. Accented letters are
// decomposed and reduced to ASCII before go-slug normalizes the rest, and
// anything outside [a-z0-9] left over collapses to single hyphens. The
// result is never empty.
func Slugify(title string) string {
	ascii, _, err := transform.String(asciiFold(), title)
	if err != nil {
		ascii = title
	}

	normalized, err := slug.Normalize(ascii)
	if err != nil || normalized == "" {
		normalized = ascii
	}

	s := nonSlugChars.ReplaceAllString(strings.ToLower(normalized), "-")
	s = strings.Trim(s, "-")
	if len(s) > MaxSlugLength {
		s = strings.TrimRight(s[:MaxSlugLength], "-")
	}
	if s == "" {
		return FallbackSlug
	}
	return s
}

func asciiFold() transform.Transformer {
	return transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(func(r rune) bool {
		return r > unicode.MaxASCII
	})))
}

// AssignSlug keeps an existing slug untouched and otherwise derives one from
// the title.
func AssignSlug(title, existing string) string {
	if existing = strings.TrimSpace(existing); existing != "" {
		return existing
	}
	return Slugify(title)
}

// IsValidSlug reports whether s passes go-slug validation and is lowercase
// alphanumeric words joined by single hyphens.
func IsValidSlug(s string) bool {
	if s == "" || strings.HasPrefix(s, "-") || strings.HasSuffix(s, "-") || strings.Contains(s, "--") {
		return false
	}
	if nonSlugChars.MatchString(strings.ReplaceAll(s, "-", "")) {
		return false
	}
	return slug.IsValid(s)
}

// SlugTakenFunc reports whether a slug is already used by another record.
type SlugTakenFunc func(ctx context.Context, slug string) (bool, error)

// UniqueSlug returns base when it is free, otherwise the first free of
// base-2, base-3, ...
func UniqueSlug(ctx context.Context, base string, taken SlugTakenFunc) (string, error) {
	candidate := base
	for n := 2; n <= maxSlugAttempts+1; n++ {
		used, err := taken(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !used {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
	return "", fmt.Errorf("no free slug for %q after %d attempts", base, maxSlugAttempts)
}
