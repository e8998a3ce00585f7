package lessons

import (
	"github.com/abhisek/lingua/internal/apperr"
)

// Store holds lessons by ID, preserving insertion order.
type Store struct {
	byID  map[string]*Lesson
	order []*Lesson
}

// NewStore creates a store from lessons. Duplicate IDs are rejected.
func NewStore(lessons ...*Lesson) (*Store, error) {
	s := &Store{byID: make(map[string]*Lesson, len(lessons))}
	for _, l := range lessons {
		if _, dup := s.byID[l.ID]; dup {
			return nil, apperr.InvalidArgument("lessons.NewStore", "duplicate lesson ID %q", l.ID)
		}
		s.byID[l.ID] = l
		s.order = append(s.order, l)
	}
	return s, nil
}

// Lesson returns the lesson with the given ID.
func (s *Store) Lesson(id string) (*Lesson, error) {
	l, ok := s.byID[id]
	if !ok {
		return nil, apperr.NotFound("lessons.Lesson", "lesson %q", id)
	}
	return l, nil
}

// Has reports whether a lesson with the given ID exists.
func (s *Store) Has(id string) bool {
	_, ok := s.byID[id]
	return ok
}

// Lessons returns all lessons in insertion order.
func (s *Store) Lessons() []*Lesson {
	return append([]*Lesson(nil), s.order...)
}

// Clone returns a store holding a clone of every lesson.
func (s *Store) Clone() *Store {
	c := &Store{byID: make(map[string]*Lesson, len(s.order))}
	for _, l := range s.order {
		lc := l.Clone()
		c.byID[lc.ID] = lc
		c.order = append(c.order, lc)
	}
	return c
}
