package lessons

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"

	"github.com/abhisek/lingua/internal/apperr"
	"github.com/abhisek/lingua/internal/questions"
	"github.com/abhisek/lingua/internal/skillpath"
)

// SupportedSchemaMajor is the course format major version this build reads.
const SupportedSchemaMajor = "v1"

//go:embed course.json
var defaultCourseJSON []byte

// Course is a loaded course: its lessons and the paths through them.
type Course struct {
	SchemaVersion string
	Title         string
	Language      string

	Lessons *Store
	Paths   []*skillpath.Path
}

// Path returns the path with the given ID.
func (c *Course) Path(id string) (*skillpath.Path, error) {
	for _, p := range c.Paths {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, apperr.NotFound("lessons.Path", "path %q", id)
}

// PathFor returns the first path containing lessonID.
func (c *Course) PathFor(lessonID string) (*skillpath.Path, error) {
	for _, p := range c.Paths {
		if p.Contains(lessonID) {
			return p, nil
		}
	}
	return nil, apperr.NotFound("lessons.PathFor", "no path contains lesson %q", lessonID)
}

// Clone returns a copy of the course whose lessons carry their own answer
// state. Paths are immutable and shared.
func (c *Course) Clone() *Course {
	cc := *c
	cc.Lessons = c.Lessons.Clone()
	cc.Paths = append([]*skillpath.Path(nil), c.Paths...)
	return &cc
}

// DefaultCourse loads the course bundled with the binary.
func DefaultCourse() (*Course, error) {
	return LoadCourse(bytes.NewReader(defaultCourseJSON))
}

// LoadCourse reads, validates and builds a course from a JSON document.
func LoadCourse(r io.Reader) (*Course, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read course: %w", err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse course: %w", err)
	}
	if err := validateDocument(doc); err != nil {
		return nil, fmt.Errorf("validate course: %w", err)
	}

	var cd courseDoc
	if err := json.Unmarshal(data, &cd); err != nil {
		return nil, fmt.Errorf("decode course: %w", err)
	}
	if err := checkSchemaVersion(cd.SchemaVersion); err != nil {
		return nil, err
	}
	return cd.build()
}

// checkSchemaVersion accepts any valid semver with the supported major.
func checkSchemaVersion(v string) error {
	const op = "lessons.LoadCourse"
	if !semver.IsValid(v) {
		return apperr.InvalidArgument(op, "schema_version %q is not a valid semantic version", v)
	}
	if major := semver.Major(v); major != SupportedSchemaMajor {
		return apperr.InvalidArgument(op, "schema_version %s is not supported (want %s.x.x)", v, SupportedSchemaMajor)
	}
	return nil
}

type courseDoc struct {
	SchemaVersion string      `json:"schema_version"`
	Title         string      `json:"title"`
	Language      string      `json:"language"`
	Paths         []pathDoc   `json:"paths"`
	Lessons       []lessonDoc `json:"lessons"`
}

type pathDoc struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Lessons     []string `json:"lessons"`
}

type lessonDoc struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Vocabulary []vocabularyDoc `json:"vocabulary"`
	Questions  []questionDoc   `json:"questions"`
}

type vocabularyDoc struct {
	Word         string `json:"word"`
	Translation  string `json:"translation"`
	PartOfSpeech string `json:"part_of_speech"`
}

type questionDoc struct {
	Type         questions.Kind `json:"type"`
	Prompt       string         `json:"prompt"`
	Difficulty   string         `json:"difficulty"`
	Choices      []string       `json:"choices"`
	CorrectIndex int            `json:"correct_index"`
	Source       string         `json:"source"`
	Answer       string         `json:"answer"`
	Accepted     []string       `json:"accepted"`
}

func (cd courseDoc) build() (*Course, error) {
	built := make([]*Lesson, 0, len(cd.Lessons))
	for _, ld := range cd.Lessons {
		l, err := ld.build()
		if err != nil {
			return nil, err
		}
		built = append(built, l)
	}
	store, err := NewStore(built...)
	if err != nil {
		return nil, err
	}

	course := &Course{
		SchemaVersion: cd.SchemaVersion,
		Title:         cd.Title,
		Language:      cd.Language,
		Lessons:       store,
	}
	for _, pd := range cd.Paths {
		p, err := skillpath.New(pd.ID, pd.Name, pd.Lessons)
		if err != nil {
			return nil, err
		}
		p.Description = pd.Description
		if err := p.ValidateLessons(store.Has); err != nil {
			return nil, err
		}
		course.Paths = append(course.Paths, p)
	}
	return course, nil
}

func (ld lessonDoc) build() (*Lesson, error) {
	qs := make([]questions.Question, 0, len(ld.Questions))
	for i, qd := range ld.Questions {
		q, err := qd.build()
		if err != nil {
			return nil, fmt.Errorf("lesson %q question %d: %w", ld.ID, i, err)
		}
		qs = append(qs, q)
	}

	vocab := make([]Vocabulary, len(ld.Vocabulary))
	for i, v := range ld.Vocabulary {
		vocab[i] = Vocabulary{Word: v.Word, Translation: v.Translation, PartOfSpeech: v.PartOfSpeech}
	}
	return NewLesson(ld.ID, ld.Title, qs, vocab)
}

func (qd questionDoc) build() (questions.Question, error) {
	d, err := questions.ParseDifficulty(qd.Difficulty)
	if err != nil {
		return nil, err
	}
	switch qd.Type {
	case questions.KindMultipleChoice:
		return questions.NewMultipleChoice(qd.Prompt, qd.Choices, qd.CorrectIndex, d)
	case questions.KindTranslation:
		return questions.NewTranslation(qd.Prompt, qd.Source, qd.Accepted, d)
	case questions.KindFillInBlank:
		return questions.NewFillInBlank(qd.Prompt, qd.Answer, qd.Accepted, d)
	default:
		return nil, apperr.InvalidArgument("lessons.LoadCourse", "unknown question type %q", qd.Type)
	}
}
