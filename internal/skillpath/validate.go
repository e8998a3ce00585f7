package skillpath

import (
	"fmt"
	"strings"

	"github.com/abhisek/lingua/internal/apperr"
)

// Validate checks the path for structural issues and reports all of them.
func (p *Path) Validate() error {
	var errs []string

	if strings.TrimSpace(p.ID) == "" {
		errs = append(errs, "path ID is empty")
	}
	if len(p.lessonIDs) == 0 {
		errs = append(errs, "path has no lessons")
	}

	seen := make(map[string]bool, len(p.lessonIDs))
	for i, id := range p.lessonIDs {
		if strings.TrimSpace(id) == "" {
			errs = append(errs, fmt.Sprintf("lesson %d has an empty ID", i))
			continue
		}
		if seen[id] {
			errs = append(errs, fmt.Sprintf("duplicate lesson ID: %q", id))
		}
		seen[id] = true
	}

	if len(errs) > 0 {
		return apperr.InvalidArgument("skillpath.Validate", "path %q:\n  %s", p.ID, strings.Join(errs, "\n  "))
	}
	return nil
}

// ValidateLessons reports every path lesson for which exists returns false.
func (p *Path) ValidateLessons(exists func(lessonID string) bool) error {
	var missing []string
	for _, id := range p.lessonIDs {
		if !exists(id) {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return apperr.NotFound("skillpath.ValidateLessons", "path %q references unknown lessons: %s",
			p.ID, strings.Join(missing, ", "))
	}
	return nil
}
