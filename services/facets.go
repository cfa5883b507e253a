package services

import (
	"sort"

	"github.com/Samandar-Komilov/voidpdev/models"
)

// DistinctValues splits every comma-separated field and returns the union of
// the entries in lexicographic order. Matching is exact, so "Go" and "go"
// are two values.
func DistinctValues(fields []string) []string {
	seen := make(map[string]struct{})
	values := make([]string, 0)
	for _, field := range fields {
		for _, value := range models.SplitList(field) {
			if _, ok := seen[value]; ok {
				continue
			}
			seen[value] = struct{}{}
			values = append(values, value)
		}
	}
	sort.Strings(values)
	return values
}
