package questions

import (
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/lingua/internal/apperr"
)

func TestBasePoints(t *testing.T) {
	tests := []struct {
		d    Difficulty
		want int
	}{
		{Easy, 5},
		{Medium, 10},
		{Hard, 15},
		{Difficulty("extreme"), 0},
	}
	for _, tt := range tests {
		if got := tt.d.BasePoints(); got != tt.want {
			t.Errorf("%q.BasePoints() = %d, want %d", tt.d, got, tt.want)
		}
	}
}

func TestPoints(t *testing.T) {
	for _, d := range AllDifficulties() {
		if got := Points(d, false, true); got != 0 {
			t.Errorf("Points(%q, incorrect) = %d, want 0", d, got)
		}
		if got := Points(d, true, false); got != d.BasePoints() {
			t.Errorf("Points(%q, correct) = %d, want %d", d, got, d.BasePoints())
		}
		if got := Points(d, true, true); got != d.BasePoints()+FirstTryBonus {
			t.Errorf("Points(%q, correct, first try) = %d, want %d", d, got, d.BasePoints()+FirstTryBonus)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	d, err := ParseDifficulty("  Hard ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != Hard {
		t.Errorf("ParseDifficulty = %q, want %q", d, Hard)
	}

	_, err = ParseDifficulty("impossible")
	if !errors.Is(err, apperr.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestCheck_FirstTryBonusAllVariants(t *testing.T) {
	for _, d := range AllDifficulties() {
		mc, err := NewMultipleChoice("Pick 'cat'", []string{"perro", "gato"}, 1, d)
		if err != nil {
			t.Fatal(err)
		}
		tr, err := NewTranslation("Translate", "cat", []string{"gato"}, d)
		if err != nil {
			t.Fatal(err)
		}
		fb, err := NewFillInBlank("El ___ duerme", "gato", nil, d)
		if err != nil {
			t.Fatal(err)
		}

		for _, q := range []Question{mc, tr, fb} {
			res := q.Check("gato", true)
			if !res.Correct {
				t.Errorf("%s/%s: expected correct", q.Kind(), d)
			}
			if res.Points != d.BasePoints()+FirstTryBonus {
				t.Errorf("%s/%s: Points = %d, want %d", q.Kind(), d, res.Points, d.BasePoints()+FirstTryBonus)
			}
		}
	}
}

func TestMultipleChoice_Check(t *testing.T) {
	q, err := NewMultipleChoice("How do you say 'hello'?", []string{"Adiós", "Hola", "Gracias"}, 1, Easy)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		input string
		want  bool
	}{
		{"Hola", true},
		{"  hola  ", true},
		{"HOLA", true},
		{"Adiós", false},
		{"", false},
		{"2", false},
	}
	for _, tc := range tests {
		res := q.Check(tc.input, false)
		if res.Correct != tc.want {
			t.Errorf("Check(%q) = %v, want %v", tc.input, res.Correct, tc.want)
		}
	}
}

func TestMultipleChoice_Failure(t *testing.T) {
	q, _ := NewMultipleChoice("How do you say 'thanks'?", []string{"Gracias", "Hola"}, 0, Medium)

	res := q.Check("Hola", true)
	if res.Correct {
		t.Fatal("expected incorrect")
	}
	if res.Points != 0 {
		t.Errorf("Points = %d, want 0", res.Points)
	}
	if res.CorrectAnswer != "Gracias" {
		t.Errorf("CorrectAnswer = %q, want %q", res.CorrectAnswer, "Gracias")
	}
	if !strings.Contains(res.Feedback, "Gracias") {
		t.Errorf("Feedback %q does not name the correct choice", res.Feedback)
	}
}

func TestNewMultipleChoice_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		prompt  string
		choices []string
		correct int
		d       Difficulty
	}{
		{"empty prompt", " ", []string{"a"}, 0, Easy},
		{"no choices", "q", nil, 0, Easy},
		{"index too big", "q", []string{"a"}, 1, Easy},
		{"negative index", "q", []string{"a"}, -1, Easy},
		{"bad difficulty", "q", []string{"a"}, 0, "extreme"},
		{"blank correct choice", "q", []string{"a", ""}, 1, Easy},
		{"whitespace choice", "q", []string{"  ", "b"}, 1, Easy},
	}
	for _, tt := range tests {
		_, err := NewMultipleChoice(tt.prompt, tt.choices, tt.correct, tt.d)
		if !errors.Is(err, apperr.ErrInvalidArgument) {
			t.Errorf("%s: expected ErrInvalidArgument, got %v", tt.name, err)
		}
	}
}

func TestTranslation_Exact(t *testing.T) {
	q, _ := NewTranslation("Translate to Spanish", "The cat is sleeping", []string{"El gato está durmiendo"}, Medium)

	res := q.Check("  el gato ESTÁ durmiendo ", false)
	if !res.Correct {
		t.Fatal("expected exact match to be correct")
	}
	if strings.Contains(res.Feedback, "minor typo") {
		t.Errorf("exact match feedback %q should not mention a typo", res.Feedback)
	}
	if res.Points != 10 {
		t.Errorf("Points = %d, want 10", res.Points)
	}
}

func TestTranslation_FuzzyAccept(t *testing.T) {
	q, _ := NewTranslation("Translate to Spanish", "The cat is sleeping", []string{"El gato está durmiendo"}, Medium)

	res := q.Check("El gato esta durmiendo", true)
	if !res.Correct {
		t.Fatal("expected near miss to be accepted")
	}
	if !strings.Contains(res.Feedback, "minor typo") {
		t.Errorf("Feedback %q should flag a minor typo", res.Feedback)
	}
	if res.Points != 15 {
		t.Errorf("Points = %d, want 15", res.Points)
	}
}

func TestTranslation_Reject(t *testing.T) {
	q, _ := NewTranslation("Translate to Spanish", "The cat is sleeping", []string{"El gato está durmiendo"}, Medium)

	res := q.Check("El perro está corriendo", true)
	if res.Correct {
		t.Fatal("expected different sentence to be rejected")
	}
	if res.Points != 0 {
		t.Errorf("Points = %d, want 0", res.Points)
	}
	if !strings.Contains(res.Feedback, "El gato está durmiendo") {
		t.Errorf("Feedback %q should quote the expected translation", res.Feedback)
	}
	if res.CorrectAnswer != "El gato está durmiendo" {
		t.Errorf("CorrectAnswer = %q", res.CorrectAnswer)
	}
}

func TestTranslation_FirstMatchWins(t *testing.T) {
	// "la casa roja" is a near miss of the first entry and an exact match of
	// the second. The first entry is tried first, so the answer is reported
	// as a typo.
	q, _ := NewTranslation("Translate", "the red house", []string{"la casa rojas", "la casa roja"}, Easy)

	res := q.Check("la casa roja", false)
	if !res.Correct {
		t.Fatal("expected correct")
	}
	if !strings.Contains(res.Feedback, "minor typo") {
		t.Errorf("Feedback = %q, want fuzzy acceptance of the first entry", res.Feedback)
	}
	if res.CorrectAnswer != "la casa rojas" {
		t.Errorf("CorrectAnswer = %q, want first entry", res.CorrectAnswer)
	}
}

func TestTranslation_FailureQuotesFirstEntry(t *testing.T) {
	q, _ := NewTranslation("Translate", "good morning", []string{"buenos días", "buen día"}, Easy)

	res := q.Check("buenas noches", false)
	if res.Correct {
		t.Fatal("expected incorrect")
	}
	if res.CorrectAnswer != "buenos días" {
		t.Errorf("CorrectAnswer = %q, want %q", res.CorrectAnswer, "buenos días")
	}
}

func TestTranslation_EmptyAnswer(t *testing.T) {
	q, _ := NewTranslation("Translate", "yes", []string{"sí"}, Easy)
	if q.Check("   ", true).Correct {
		t.Error("empty answer should not be accepted")
	}
}

func TestFillInBlank_Check(t *testing.T) {
	q, _ := NewFillInBlank("Yo ___ español (hablar)", "hablo", []string{"Hablo"}, Easy)

	tests := []struct {
		input string
		want  bool
	}{
		{"hablo", true},
		{" HABLO ", true},
		{"hablao", false}, // no fuzzy matching
		{"habla", false},
	}
	for _, tc := range tests {
		if got := q.Check(tc.input, false).Correct; got != tc.want {
			t.Errorf("Check(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestFillInBlank_ExtraAccepted(t *testing.T) {
	q, _ := NewFillInBlank("I ___ a student", "am", []string{"'m"}, Easy)
	if !q.Check("'m", false).Correct {
		t.Error("expected extra accepted answer to be correct")
	}
	if len(q.Accepted()) != 2 {
		t.Errorf("Accepted() = %v, want 2 entries", q.Accepted())
	}
}

func TestFillInBlank_Hints(t *testing.T) {
	tests := []struct {
		prompt   string
		wantPast bool
	}{
		{"Yesterday I ___ to the market (go)", true},
		{"Two days ago she ___ a book (read)", true},
		{"Every day I ___ to school (go)", false},
	}
	for _, tt := range tests {
		q, err := NewFillInBlank(tt.prompt, "went", nil, Medium)
		if err != nil {
			t.Fatal(err)
		}
		res := q.Check("goes", false)
		if res.Correct {
			t.Fatalf("%q: expected incorrect", tt.prompt)
		}
		gotPast := res.Feedback == PastTenseHint
		if gotPast != tt.wantPast {
			t.Errorf("%q: past-tense hint = %v, want %v (feedback %q)", tt.prompt, gotPast, tt.wantPast, res.Feedback)
		}
		if !tt.wantPast && !strings.Contains(res.Feedback, "went") {
			t.Errorf("%q: feedback %q should contain the answer", tt.prompt, res.Feedback)
		}
		if res.CorrectAnswer != "went" {
			t.Errorf("%q: CorrectAnswer = %q", tt.prompt, res.CorrectAnswer)
		}
	}
}

func TestNewFillInBlank_EmptyAnswer(t *testing.T) {
	_, err := NewFillInBlank("I ___", "  ", nil, Easy)
	if !errors.Is(err, apperr.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestExpectedAnswer(t *testing.T) {
	mc, _ := NewMultipleChoice("q", []string{"a", "b"}, 1, Easy)
	tr, _ := NewTranslation("q", "src", []string{"uno", "one"}, Easy)
	fb, _ := NewFillInBlank("q ___", "dos", []string{"2"}, Easy)

	tests := []struct {
		q    Question
		want string
	}{
		{mc, "b"},
		{tr, "uno"},
		{fb, "dos"},
	}
	for _, tt := range tests {
		got := ExpectedAnswer(tt.q)
		if got != tt.want {
			t.Errorf("ExpectedAnswer(%s) = %q, want %q", tt.q.Kind(), got, tt.want)
		}
		if !tt.q.Check(got, false).Correct {
			t.Errorf("%s: expected answer %q is not accepted", tt.q.Kind(), got)
		}
	}
}
