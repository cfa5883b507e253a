package database

import (
	"strings"

	"gorm.io/gorm"
)

// Default listing order: newest first.
const newestFirst = "created_at DESC, id DESC"

// PostFilter narrows published posts. Empty fields do not filter.
type PostFilter struct {
	// Search matches title, content or tags.
	Search string
	// Tag matches the tags field.
	Tag string
}

// ProjectFilter narrows projects. Empty fields do not filter.
type ProjectFilter struct {
	Technology string
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching value as a literal
// substring.
func containsPattern(value string) string {
	return "%" + likeEscaper.Replace(value) + "%"
}

// whereContains keeps rows where any of columns contains value, ignoring case.
// Column and pattern are both folded by the database so they agree on which
// characters have a lower case.
func whereContains(q *gorm.DB, value string, columns ...string) *gorm.DB {
	pattern := containsPattern(value)
	conditions := make([]string, len(columns))
	args := make([]any, len(columns))
	for i, column := range columns {
		conditions[i] = "LOWER(" + column + `) LIKE LOWER(?) ESCAPE '\'`
		args[i] = pattern
	}
	return q.Where("("+strings.Join(conditions, " OR ")+")", args...)
}

func (f PostFilter) apply(q *gorm.DB) *gorm.DB {
	if f.Search != "" {
		q = whereContains(q, f.Search, "title", "content", "tags")
	}
	if f.Tag != "" {
		q = whereContains(q, f.Tag, "tags")
	}
	return q
}

func (f ProjectFilter) apply(q *gorm.DB) *gorm.DB {
	if f.Technology != "" {
		q = whereContains(q, f.Technology, "technologies")
	}
	return q
}
