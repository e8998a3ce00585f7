package questions

import (
	"fmt"
	"strings"

	"github.com/abhisek/lingua/internal/apperr"
)

// PastTenseHint is the feedback for a wrong answer to a sentence set in the past.
const PastTenseHint = "Hint: this sentence talks about the past. Try the past tense."

// pastMarkers are prompt substrings that trigger PastTenseHint.
var pastMarkers = []string{"yesterday", "ago"}

// FillInBlank asks the learner to complete a sentence.
type FillInBlank struct {
	base
	answer   string
	accepted []string
}

// NewFillInBlank creates a fill-in-the-blank question. The canonical answer
// is always accepted, along with any extra entries in accepted.
func NewFillInBlank(prompt, answer string, accepted []string, d Difficulty) (*FillInBlank, error) {
	const op = "questions.NewFillInBlank"
	b, err := newBase(op, prompt, d)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(answer) == "" {
		return nil, apperr.InvalidArgument(op, "answer is empty")
	}

	all := []string{answer}
	for _, a := range accepted {
		if !strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(answer)) {
			all = append(all, a)
		}
	}
	return &FillInBlank{base: b, answer: answer, accepted: all}, nil
}

func (q *FillInBlank) Kind() Kind { return KindFillInBlank }

// Answer returns the canonical answer.
func (q *FillInBlank) Answer() string { return q.answer }

// Accepted returns every accepted answer, canonical first.
func (q *FillInBlank) Accepted() []string {
	return append([]string(nil), q.accepted...)
}

func (q *FillInBlank) Check(answer string, firstTry bool) Result {
	got := normalize(answer)
	for _, a := range q.accepted {
		if got == normalize(a) {
			return Result{
				Correct:  true,
				Feedback: "Correct!",
				Points:   Points(q.difficulty, true, firstTry),
			}
		}
	}

	return Result{
		Feedback:      q.hint(),
		CorrectAnswer: q.answer,
	}
}

func (q *FillInBlank) hint() string {
	prompt := strings.ToLower(q.prompt)
	for _, m := range pastMarkers {
		if strings.Contains(prompt, m) {
			return PastTenseHint
		}
	}
	return fmt.Sprintf("Not quite. The correct answer is %q.", q.answer)
}
