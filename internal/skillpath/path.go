// Package skillpath sequences lessons into ordered paths with sequential
// unlocking: a lesson opens once the lesson before it is completed.
package skillpath

import (
	"slices"

	"github.com/abhisek/lingua/internal/apperr"
)

// LessonState is a lesson's state relative to the learner.
type LessonState int

const (
	StateLocked    LessonState = iota // Previous lesson not yet completed
	StateAvailable                    // Unlocked, not yet completed
	StateCompleted                    // Completed
)

// Icon returns the display icon for a lesson state.
func (s LessonState) Icon() string {
	switch s {
	case StateLocked:
		return "🔒"
	case StateAvailable:
		return "🔓"
	case StateCompleted:
		return "✅"
	default:
		return "?"
	}
}

// Label returns the display label for a lesson state.
func (s LessonState) Label() string {
	switch s {
	case StateLocked:
		return "Locked"
	case StateAvailable:
		return "Available"
	case StateCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// Path is an ordered sequence of lesson IDs.
type Path struct {
	ID          string
	Name        string
	Description string

	lessonIDs []string
	index     map[string]int
}

// New creates a path over lessonIDs, in order. The path must be non-empty
// and free of duplicates.
func New(id, name string, lessonIDs []string) (*Path, error) {
	p := &Path{
		ID:        id,
		Name:      name,
		lessonIDs: slices.Clone(lessonIDs),
		index:     make(map[string]int, len(lessonIDs)),
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	for i, lid := range p.lessonIDs {
		p.index[lid] = i
	}
	return p, nil
}

// LessonIDs returns the lesson IDs in path order.
func (p *Path) LessonIDs() []string {
	return slices.Clone(p.lessonIDs)
}

// Len returns the number of lessons in the path.
func (p *Path) Len() int { return len(p.lessonIDs) }

// Contains reports whether lessonID is part of the path.
func (p *Path) Contains(lessonID string) bool {
	_, ok := p.index[lessonID]
	return ok
}

// Position returns the zero-based index of lessonID in the path.
func (p *Path) Position(lessonID string) (int, error) {
	i, ok := p.index[lessonID]
	if !ok {
		return 0, apperr.NotFound("skillpath.Position", "lesson %q not in path %q", lessonID, p.ID)
	}
	return i, nil
}

// IsLessonUnlocked returns true for the first lesson of the path, or when the
// lesson immediately before lessonID is in completed. Lessons outside the
// path are never unlocked.
func (p *Path) IsLessonUnlocked(lessonID string, completed map[string]bool) bool {
	i, ok := p.index[lessonID]
	if !ok {
		return false
	}
	if i == 0 {
		return true
	}
	return completed[p.lessonIDs[i-1]]
}

// State returns the learner-relative state of lessonID.
func (p *Path) State(lessonID string, completed map[string]bool) LessonState {
	switch {
	case completed[lessonID] && p.Contains(lessonID):
		return StateCompleted
	case p.IsLessonUnlocked(lessonID, completed):
		return StateAvailable
	default:
		return StateLocked
	}
}

// Progress returns the percentage (0-100) of path lessons in completed.
func (p *Path) Progress(completed map[string]bool) float64 {
	if len(p.lessonIDs) == 0 {
		return 0
	}
	done := 0
	for _, id := range p.lessonIDs {
		if completed[id] {
			done++
		}
	}
	return float64(done) / float64(len(p.lessonIDs)) * 100
}

// NextLesson returns the first lesson in path order that is not completed,
// or "" once every lesson is.
func (p *Path) NextLesson(completed map[string]bool) string {
	for _, id := range p.lessonIDs {
		if !completed[id] {
			return id
		}
	}
	return ""
}
