package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/lingua/internal/lessons"
	"github.com/abhisek/lingua/internal/ui/components"
	"github.com/abhisek/lingua/internal/ui/theme"
)

func newCourseCmd(rt *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "course",
		Short: "Validate a course and list its paths and lessons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			course, err := loadCourse(rt.cfg.CoursePath)
			if err != nil {
				return err
			}
			rt.logger.Debug("course loaded", "title", course.Title, "paths", len(course.Paths))
			printCourse(cmd.OutOrStdout(), course, map[string]bool{})
			return nil
		},
	}
}

// printCourse lists every path with lesson states relative to completed.
func printCourse(w io.Writer, c *lessons.Course, completed map[string]bool) {
	fmt.Fprintln(w, theme.Title.Render(c.Title))
	fmt.Fprintln(w, theme.Subtitle.Render(fmt.Sprintf("language %s, format %s", c.Language, c.SchemaVersion)))

	for _, p := range c.Paths {
		fmt.Fprintln(w)
		fmt.Fprintln(w, components.NewProgressBar(p.Name, p.Progress(completed), true, 40).View())
		if p.Description != "" {
			fmt.Fprintln(w, theme.Hint.Render(p.Description))
		}
		for _, id := range p.LessonIDs() {
			state := p.State(id, completed)
			title, questions := id, 0
			if l, err := c.Lessons.Lesson(id); err == nil {
				title, questions = l.Title, l.Len()
			}
			fmt.Fprintf(w, "  %s %s %s %s\n",
				state.Icon(),
				theme.LessonState(state).Render(id),
				theme.Body.Render(title),
				theme.Hint.Render(fmt.Sprintf("(%d questions, %s)", questions, state.Label())),
			)
		}
	}
}
