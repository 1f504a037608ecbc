package damage

import "fmt"

// Classification maps face indices to damage categories for one loaded
// mesh. A face has at most one category; reassigning replaces the
// previous one. Faces without an entry are undamaged.
type Classification struct {
	vocabulary Vocabulary
	faceCount  int
	faces      map[int]Category
}

// NewClassification creates an empty classification for a mesh with
// the given number of faces
func NewClassification(faceCount int, vocabulary Vocabulary) *Classification {
	return &Classification{
		vocabulary: vocabulary,
		faceCount:  faceCount,
		faces:      make(map[int]Category),
	}
}

// Vocabulary returns the closed category set of this classification
func (c *Classification) Vocabulary() Vocabulary {
	return c.vocabulary
}

// Assign sets the category of a face, replacing any previous
// assignment. Categories outside the vocabulary are rejected, never
// coerced.
func (c *Classification) Assign(face int, category Category) error {
	if face < 0 || face >= c.faceCount {
		return fmt.Errorf("%w: %d (mesh has %d faces)", ErrFaceOutOfRange, face, c.faceCount)
	}
	if !c.vocabulary.Contains(category) {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	c.faces[face] = category
	return nil
}

// Clear removes the assignment of a face, marking it undamaged
func (c *Classification) Clear(face int) {
	delete(c.faces, face)
}

// Category returns the assignment of a face
func (c *Classification) Category(face int) (Category, bool) {
	category, ok := c.faces[face]
	return category, ok
}

// AssignedCount returns the number of faces with a category
func (c *Classification) AssignedCount() int {
	return len(c.faces)
}
