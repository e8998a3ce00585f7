package questions

import (
	"fmt"
	"strings"

	"github.com/abhisek/lingua/internal/apperr"
	"github.com/abhisek/lingua/internal/fuzzy"
)

// FuzzyThreshold is the minimum similarity at which a translation with small
// spelling mistakes is still accepted.
const FuzzyThreshold = 0.85

// Translation asks the learner to translate a source sentence.
type Translation struct {
	base
	source   string
	accepted []string
}

// NewTranslation creates a translation question. accepted lists every
// acceptable translation; the first entry is the one shown on failure.
func NewTranslation(prompt, source string, accepted []string, d Difficulty) (*Translation, error) {
	const op = "questions.NewTranslation"
	b, err := newBase(op, prompt, d)
	if err != nil {
		return nil, err
	}
	if len(accepted) == 0 {
		return nil, apperr.InvalidArgument(op, "no accepted translations")
	}
	for i, a := range accepted {
		if strings.TrimSpace(a) == "" {
			return nil, apperr.InvalidArgument(op, "accepted translation %d is empty", i)
		}
	}
	return &Translation{
		base:     b,
		source:   source,
		accepted: append([]string(nil), accepted...),
	}, nil
}

func (q *Translation) Kind() Kind { return KindTranslation }

// Source returns the text to translate.
func (q *Translation) Source() string { return q.source }

// Accepted returns a copy of the accepted translations.
func (q *Translation) Accepted() []string {
	return append([]string(nil), q.accepted...)
}

// Check accepts an exact match or one within FuzzyThreshold of an accepted
// translation. Entries are tried in order and the first match wins.
func (q *Translation) Check(answer string, firstTry bool) Result {
	got := normalize(answer)

	for _, a := range q.accepted {
		want := normalize(a)
		if got == want {
			return Result{
				Correct:  true,
				Feedback: "Correct!",
				Points:   Points(q.difficulty, true, firstTry),
			}
		}
		if fuzzy.Similarity(got, want) >= FuzzyThreshold {
			return Result{
				Correct:       true,
				Feedback:      fmt.Sprintf("Correct, with a minor typo. Watch the spelling: %q.", a),
				Points:        Points(q.difficulty, true, firstTry),
				CorrectAnswer: a,
			}
		}
	}

	return Result{
		Feedback:      fmt.Sprintf("Not quite. Expected: %q.", q.accepted[0]),
		CorrectAnswer: q.accepted[0],
	}
}
