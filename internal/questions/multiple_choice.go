package questions

import (
	"fmt"
	"strings"

	"github.com/abhisek/lingua/internal/apperr"
)

// MultipleChoice asks the learner to pick one of a fixed set of choices.
type MultipleChoice struct {
	base
	choices []string
	correct int
}

// NewMultipleChoice creates a multiple choice question whose correct answer
// is choices[correct].
func NewMultipleChoice(prompt string, choices []string, correct int, d Difficulty) (*MultipleChoice, error) {
	const op = "questions.NewMultipleChoice"
	b, err := newBase(op, prompt, d)
	if err != nil {
		return nil, err
	}
	if len(choices) == 0 {
		return nil, apperr.InvalidArgument(op, "no choices")
	}
	for i, c := range choices {
		if strings.TrimSpace(c) == "" {
			return nil, apperr.InvalidArgument(op, "choice %d is empty", i)
		}
	}
	if correct < 0 || correct >= len(choices) {
		return nil, apperr.InvalidArgument(op, "correct index %d out of range [0,%d)", correct, len(choices))
	}
	return &MultipleChoice{
		base:    b,
		choices: append([]string(nil), choices...),
		correct: correct,
	}, nil
}

func (q *MultipleChoice) Kind() Kind { return KindMultipleChoice }

// Choices returns a copy of the choices in display order.
func (q *MultipleChoice) Choices() []string {
	return append([]string(nil), q.choices...)
}

// CorrectChoice returns the text of the correct choice.
func (q *MultipleChoice) CorrectChoice() string {
	return q.choices[q.correct]
}

func (q *MultipleChoice) Check(answer string, firstTry bool) Result {
	want := q.CorrectChoice()
	if normalize(answer) == normalize(want) {
		return Result{
			Correct:  true,
			Feedback: "Correct!",
			Points:   Points(q.difficulty, true, firstTry),
		}
	}
	return Result{
		Feedback:      fmt.Sprintf("Not quite. The correct answer is %q.", want),
		CorrectAnswer: want,
	}
}
