package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/lingua/internal/achievements"
	"github.com/abhisek/lingua/internal/apperr"
	"github.com/abhisek/lingua/internal/lessons"
	"github.com/abhisek/lingua/internal/questions"
	"github.com/abhisek/lingua/internal/session"
	"github.com/abhisek/lingua/internal/ui/components"
	"github.com/abhisek/lingua/internal/ui/theme"
)

func newDemoCmd(rt *cliState) *cobra.Command {
	var (
		lessonID string
		answers  []string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted session over one lesson",
		Long: "Answers every question of a lesson, printing feedback, points, combo and energy.\n" +
			"Answers default to the correct ones; --answers replaces them in order.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			course, err := loadCourse(rt.cfg.CoursePath)
			if err != nil {
				return err
			}
			s, err := session.New(course, session.Options{
				UserID:    rt.cfg.UserID,
				MaxEnergy: rt.cfg.MaxEnergy,
				Logger:    rt.logger,
			})
			if err != nil {
				return err
			}

			if lessonID == "" {
				var ok bool
				if lessonID, ok = s.RecommendedLesson(); !ok {
					return fmt.Errorf("course has no lesson to play")
				}
			}
			lesson, err := s.Course().Lessons.Lesson(lessonID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := runDemo(out, s, lesson, answers); err != nil {
				return err
			}
			fmt.Fprintln(out, components.NewProgressBar(lesson.Title, lesson.Progress(), true, 40).View())
			printSummary(out, s.Summary(), s.Achievements().All())
			return nil
		},
	}

	cmd.Flags().StringVar(&lessonID, "lesson", "", "Lesson ID to play (default: the recommended lesson)")
	cmd.Flags().StringSliceVar(&answers, "answers", nil, "Comma-separated answers, one per question")
	return cmd
}

// runDemo submits one answer per question of lesson. It stops early when
// the learner runs out of energy.
func runDemo(w io.Writer, s *session.Session, lesson *lessons.Lesson, answers []string) error {
	fmt.Fprintln(w, theme.Title.Render(lesson.Title))
	if p, err := s.Course().PathFor(lesson.ID); err == nil {
		pos, _ := p.Position(lesson.ID)
		fmt.Fprintln(w, theme.Hint.Render(fmt.Sprintf("%s: lesson %d of %d", p.Name, pos+1, p.Len())))
	}
	for _, v := range lesson.Vocabulary() {
		fmt.Fprintf(w, "  %s  %s\n", theme.Value.Render(v.Word), theme.Hint.Render(v.Translation))
	}
	fmt.Fprintln(w)

	for i, q := range lesson.Questions() {
		answer := questions.ExpectedAnswer(q)
		if i < len(answers) {
			answer = answers[i]
		}

		fmt.Fprintf(w, "%s %s %s\n",
			theme.Label.Render(fmt.Sprintf("Q%d", i+1)),
			theme.Body.Render(questionText(q)),
			theme.Hint.Render("("+q.Difficulty().DisplayName()+")"))
		fmt.Fprintf(w, "  > %s\n", answer)

		o, err := s.SubmitAnswer(lesson.ID, i, answer)
		if errors.Is(err, apperr.ErrResourceExhausted) {
			fmt.Fprintln(w, theme.Incorrect.Render("  Out of energy. Come back later."))
			if at, ok := s.Energy().NextRegenAt(); ok {
				fmt.Fprintf(w, "  %s\n", theme.Hint.Render("Next energy at "+at.Format(time.Kitchen)))
			}
			return nil
		}
		if err != nil {
			return err
		}
		printOutcome(w, o)
	}
	return nil
}

func questionText(q questions.Question) string {
	switch q := q.(type) {
	case *questions.MultipleChoice:
		return fmt.Sprintf("%s [%s]", q.Prompt(), strings.Join(q.Choices(), " / "))
	case *questions.Translation:
		return fmt.Sprintf("%s: %q", q.Prompt(), q.Source())
	default:
		return q.Prompt()
	}
}

func printOutcome(w io.Writer, o *session.Outcome) {
	fmt.Fprintf(w, "  %s\n", theme.Result(o.Result.Correct).Render(o.Result.Feedback))
	fmt.Fprintf(w, "  +%d XP  combo %d (x%.1f)  energy %d\n", o.Points, o.Combo, o.Multiplier, o.Energy)
	if o.LeveledUp {
		fmt.Fprintf(w, "  %s\n", theme.Value.Render(fmt.Sprintf("Level up! Now level %d", o.Level)))
	}
	if o.LessonCompleted {
		fmt.Fprintf(w, "  %s\n", theme.Correct.Render("Lesson complete!"))
	}
	for _, a := range o.Unlocked {
		fmt.Fprintf(w, "  %s %s\n", a.Tier.Icon(), theme.Tier(a.Tier).Render("Achievement unlocked: "+a.Name))
	}
}

func printSummary(w io.Writer, sum *session.Summary, all []achievements.Achievement) {
	lines := []string{
		theme.Title.Render("Session summary"),
		fmt.Sprintf("%s %d/%d (%.0f%%)", theme.Label.Render("Correct:"), sum.TotalCorrect, sum.TotalAnswers, sum.Accuracy*100),
		fmt.Sprintf("%s %d  %s %d (%d to next)", theme.Label.Render("XP:"), sum.XP, theme.Label.Render("Level:"), sum.Level, sum.XPToNextLevel),
		fmt.Sprintf("%s %d day(s)", theme.Label.Render("Streak:"), sum.Streak),
		fmt.Sprintf("%s %d", theme.Label.Render("Best combo:"), sum.HighestCombo),
		fmt.Sprintf("%s %d/%d", theme.Label.Render("Energy:"), sum.Energy, sum.MaxEnergy),
	}
	for _, r := range sum.LessonResults {
		lines = append(lines, fmt.Sprintf("%s %d/%d correct", theme.Label.Render(r.LessonID+":"), r.CorrectCount, r.TotalAttempts))
	}
	lines = append(lines, fmt.Sprintf("%s %d/%d unlocked", theme.Label.Render("Achievements:"), len(sum.Achievements), len(all)))
	for _, a := range all {
		state := theme.Locked.Render("Locked")
		if a.Unlocked {
			state = theme.Tier(a.Tier).Render(a.Tier.Icon() + " " + a.Tier.DisplayName())
		}
		lines = append(lines, fmt.Sprintf("  %s  %s", a.Name, state))
	}
	fmt.Fprintln(w, theme.Card.Render(strings.Join(lines, "\n")))
}
