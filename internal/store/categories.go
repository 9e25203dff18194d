package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/rcliao/songpad/internal/model"
)

// CategoryPatch is a partial update; nil fields keep their current value.
type CategoryPatch struct {
	Name *string
}

func (s *Store) categoryNameTaken(name, excludeID string) bool {
	for _, c := range s.categories {
		if c.ID != excludeID && strings.EqualFold(c.Name, name) {
			return true
		}
	}
	return false
}

// AddCategory creates a category. Names are unique case-insensitively; the
// store enforces this itself rather than trusting the caller.
func (s *Store) AddCategory(name string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if s.categoryNameTaken(name, "") {
		return nil, ErrDuplicateCategory
	}

	c := model.Category{
		ID:        s.newID(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	s.categories = append(s.categories, c)
	s.persistCategories()
	return &c, nil
}

// Categories returns a copy of the category collection.
func (s *Store) Categories() []model.Category {
	out := make([]model.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// PatchCategory applies a partial update. Songs reference categories by name,
// so a rename does not cascade: songs keep the old name. That is the recorded
// contract, not an oversight.
func (s *Store) PatchCategory(id string, p CategoryPatch) (*model.Category, error) {
	for i := range s.categories {
		if s.categories[i].ID != id {
			continue
		}
		if p.Name != nil {
			name := strings.TrimSpace(*p.Name)
			if name == "" {
				return nil, ErrEmptyName
			}
			if s.categoryNameTaken(name, id) {
				return nil, ErrDuplicateCategory
			}
			s.categories[i].Name = name
		}
		s.persistCategories()
		c := s.categories[i]
		return &c, nil
	}
	return nil, fmt.Errorf("category %s: %w", id, ErrNotFound)
}

// RemoveCategory hard-deletes the category and returns the removed record.
// Songs referencing the name keep it.
func (s *Store) RemoveCategory(id string) (*model.Category, error) {
	for i := range s.categories {
		if s.categories[i].ID != id {
			continue
		}
		removed := s.categories[i]
		s.categories = append(s.categories[:i], s.categories[i+1:]...)
		s.undo.LastDeletedCategory = &removed
		s.persistCategories()
		s.persistUndo()
		c := removed
		return &c, nil
	}
	return nil, fmt.Errorf("category %s: %w", id, ErrNotFound)
}

// UndoRemoveCategory re-adds the last deleted category at the end of the
// collection. One-shot, like the song buffer.
func (s *Store) UndoRemoveCategory() (*model.Category, error) {
	if s.undo.LastDeletedCategory == nil {
		return nil, ErrNothingToUndo
	}
	if s.categoryNameTaken(s.undo.LastDeletedCategory.Name, s.undo.LastDeletedCategory.ID) {
		return nil, ErrDuplicateCategory
	}

	restored := *s.undo.LastDeletedCategory
	s.categories = append(s.categories, restored)
	s.undo.LastDeletedCategory = nil
	s.persistCategories()
	s.persistUndo()
	return &restored, nil
}
