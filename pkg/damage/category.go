// Package damage assigns roof damage categories to mesh faces and
// aggregates damaged surface area. The face→category table lives next
// to the immutable mesh instead of as flags on render objects, so the
// geometry core stays free of scene-graph state.
package damage

import (
	"errors"
	"sort"
)

// Category is a named roof damage classification
type Category string

// DefaultCategory is the bucket for detections that match no named
// category
const DefaultCategory = Category("other")

var (
	// ErrUnknownCategory is returned when an assignment references a
	// category outside the vocabulary
	ErrUnknownCategory = errors.New("unknown damage category")
	// ErrFaceOutOfRange is returned when an assignment references a
	// face the mesh does not have
	ErrFaceOutOfRange = errors.New("face index out of range")
)

// Vocabulary is the closed set of categories valid for a mesh. It is
// built from the damage classification record supplied by the vision
// pipeline and always contains DefaultCategory.
type Vocabulary struct {
	categories map[Category]struct{}
}

// NewVocabulary builds a vocabulary from category names. Duplicates
// and empty names are ignored.
func NewVocabulary(names ...string) Vocabulary {
	categories := map[Category]struct{}{
		DefaultCategory: {},
	}
	for _, name := range names {
		if name == "" {
			continue
		}
		categories[Category(name)] = struct{}{}
	}
	return Vocabulary{categories: categories}
}

// Contains reports whether the category is part of the vocabulary
func (v Vocabulary) Contains(category Category) bool {
	_, ok := v.categories[category]
	return ok
}

// Categories returns the vocabulary in sorted order
func (v Vocabulary) Categories() []Category {
	out := make([]Category, 0, len(v.categories))
	for category := range v.categories {
		out = append(out, category)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
