package questions

import (
	"slices"
	"strings"

	"github.com/abhisek/lingua/internal/apperr"
)

// FirstTryBonus is added to the base points of a correct first attempt.
const FirstTryBonus = 5

// Difficulty is the authored difficulty of a question.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// AllDifficulties returns all difficulties from easiest to hardest.
func AllDifficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// ParseDifficulty converts a string such as "Medium" into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(normalize(s))
	if !d.Valid() {
		return "", apperr.InvalidArgument("questions.ParseDifficulty", "unknown difficulty %q", s)
	}
	return d, nil
}

// Valid reports whether d is one of the known difficulties.
func (d Difficulty) Valid() bool {
	return slices.Contains(AllDifficulties(), d)
}

// BasePoints returns the points a correct answer earns before bonuses.
func (d Difficulty) BasePoints() int {
	switch d {
	case Easy:
		return 5
	case Medium:
		return 10
	case Hard:
		return 15
	default:
		return 0
	}
}

// DisplayName returns a human-readable label for the difficulty.
func (d Difficulty) DisplayName() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	default:
		return string(d)
	}
}

// Kind identifies the question variant.
type Kind string

const (
	KindMultipleChoice Kind = "multiple_choice"
	KindTranslation    Kind = "translation"
	KindFillInBlank    Kind = "fill_in_blank"
)

// Question is implemented by every question variant.
type Question interface {
	Kind() Kind
	Prompt() string
	Difficulty() Difficulty

	// Check validates a raw learner answer. firstTry grants FirstTryBonus
	// when the answer is correct.
	Check(answer string, firstTry bool) Result
}

// Result is the outcome of checking a single answer.
type Result struct {
	Correct  bool
	Feedback string
	Points   int

	// CorrectAnswer is the expected answer, empty when the variant does not
	// reveal one.
	CorrectAnswer string
}

// Points computes the score for an answer at difficulty d.
func Points(d Difficulty, correct, firstTry bool) int {
	if !correct {
		return 0
	}
	p := d.BasePoints()
	if firstTry {
		p += FirstTryBonus
	}
	return p
}

// base holds the fields shared by all variants.
type base struct {
	prompt     string
	difficulty Difficulty
}

func (b base) Prompt() string         { return b.prompt }
func (b base) Difficulty() Difficulty { return b.difficulty }

func newBase(op, prompt string, d Difficulty) (base, error) {
	if strings.TrimSpace(prompt) == "" {
		return base{}, apperr.InvalidArgument(op, "prompt is empty")
	}
	if !d.Valid() {
		return base{}, apperr.InvalidArgument(op, "unknown difficulty %q", d)
	}
	return base{prompt: prompt, difficulty: d}, nil
}

// normalize trims surrounding whitespace and lower-cases s.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ExpectedAnswer returns the canonical correct answer for q.
func ExpectedAnswer(q Question) string {
	switch v := q.(type) {
	case *MultipleChoice:
		return v.CorrectChoice()
	case *Translation:
		return v.accepted[0]
	case *FillInBlank:
		return v.answer
	default:
		return ""
	}
}
