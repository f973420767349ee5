// Package catalog answers lookups against the exercise library the builder adds exercises from.
package catalog

import (
	"slices"
	"strings"

	"alcyxob/coach-studio/internal/domain"
)

// Filter narrows the library. Empty fields match everything.
type Filter struct {
	Type        domain.ExerciseType
	MuscleGroup string // Exact tag, e.g. "chest"
	Search      string // Substring of the name or of any muscle group, ignoring case
}

// Matches reports whether e satisfies every set field of f.
func (f Filter) Matches(e domain.CatalogExercise) bool {
	if f.Type != "" && e.Type != f.Type {
		return false
	}
	if f.MuscleGroup != "" && !slices.Contains(e.MuscleGroups, f.MuscleGroup) {
		return false
	}
	if f.Search == "" {
		return true
	}
	needle := strings.ToLower(f.Search)
	if strings.Contains(strings.ToLower(e.Name), needle) {
		return true
	}
	return slices.ContainsFunc(e.MuscleGroups, func(mg string) bool {
		return strings.Contains(strings.ToLower(mg), needle)
	})
}

// Catalog is an immutable snapshot of the exercise library.
type Catalog struct {
	entries []domain.CatalogExercise
	byID    map[string]int
}

// New indexes entries by id. The first entry wins when ids repeat.
func New(entries []domain.CatalogExercise) *Catalog {
	c := &Catalog{
		entries: slices.Clone(entries),
		byID:    make(map[string]int, len(entries)),
	}
	for i, e := range c.entries {
		if _, dup := c.byID[e.ID]; !dup {
			c.byID[e.ID] = i
		}
	}
	return c
}

func (c *Catalog) Len() int { return len(c.entries) }

// Filter returns the entries matching f, in library order.
func (c *Catalog) Filter(f Filter) []domain.CatalogExercise {
	out := make([]domain.CatalogExercise, 0, len(c.entries))
	for _, e := range c.entries {
		if f.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}

// Lookup finds an entry by id.
func (c *Catalog) Lookup(id string) (domain.CatalogExercise, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.CatalogExercise{}, false
	}
	return c.entries[i], true
}

// MuscleGroups lists every muscle group tag once, sorted.
func (c *Catalog) MuscleGroups() []string {
	var groups []string
	for _, e := range c.entries {
		groups = append(groups, e.MuscleGroups...)
	}
	slices.Sort(groups)
	return slices.Compact(groups)
}

// Types lists the exercise types in use, sorted.
func (c *Catalog) Types() []domain.ExerciseType {
	types := make([]domain.ExerciseType, 0, len(c.entries))
	for _, e := range c.entries {
		types = append(types, e.Type)
	}
	slices.Sort(types)
	return slices.Compact(types)
}
