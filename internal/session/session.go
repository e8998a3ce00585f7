// Package session wires the question engine and the progression mechanics
// into a single learner's session.
package session

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/lingua/internal/achievements"
	"github.com/abhisek/lingua/internal/apperr"
	"github.com/abhisek/lingua/internal/combo"
	"github.com/abhisek/lingua/internal/energy"
	"github.com/abhisek/lingua/internal/lessons"
	"github.com/abhisek/lingua/internal/progress"
	"github.com/abhisek/lingua/internal/questions"
)

// Options configures a new Session. Zero values pick defaults.
type Options struct {
	UserID    string
	MaxEnergy int                  // default energy.DefaultMax
	Catalog   achievements.Catalog // default achievements.DefaultCatalog()
	Now       func() time.Time     // default time.Now
	Logger    *slog.Logger         // default slog.Default()
}

// Outcome describes the effect of one submitted answer.
type Outcome struct {
	LessonID      string
	QuestionIndex int
	Result        questions.Result
	FirstTry      bool

	Combo      int
	Multiplier float64
	Points     int // XP awarded, after the combo multiplier

	XP        int
	Level     int
	LeveledUp bool

	Energy int

	LessonCompleted bool
	Unlocked        []achievements.Achievement
}

// UnlockedNames returns the names of achievements unlocked by this answer.
func (o *Outcome) UnlockedNames() []string {
	names := make([]string, len(o.Unlocked))
	for i, a := range o.Unlocked {
		names[i] = a.Name
	}
	return names
}

type questionKey struct {
	lessonID string
	index    int
}

// Session is one learner working through a course. It is not safe for
// concurrent use.
type Session struct {
	ID string

	course       *lessons.Course
	progress     *progress.UserProgress
	achievements *achievements.Tracker
	combo        *combo.System
	energy       *energy.System

	attempted map[questionKey]bool
	results   map[string]*LessonResult
	order     []string // lesson IDs in first-answered order

	totalAnswers int
	totalCorrect int
	startTime    time.Time

	now    func() time.Time
	logger *slog.Logger
}

// New starts a session over course. The session works on its own copy of
// the lessons, so several sessions may share one course.
func New(course *lessons.Course, opts Options) (*Session, error) {
	if course == nil || course.Lessons == nil {
		return nil, apperr.InvalidArgument("session.New", "course is required")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.MaxEnergy == 0 {
		opts.MaxEnergy = energy.DefaultMax
	}
	if opts.Catalog == nil {
		opts.Catalog = achievements.DefaultCatalog()
	}

	now := opts.Now()
	en, err := energy.New(opts.MaxEnergy, now)
	if err != nil {
		return nil, err
	}

	// Each session answers its own copy of the lessons.
	own := course.Clone()
	for _, l := range own.Lessons.Lessons() {
		l.Reset()
	}

	id := uuid.NewString()
	return &Session{
		ID:           id,
		course:       own,
		progress:     progress.New(opts.UserID),
		achievements: achievements.NewTracker(opts.Catalog),
		combo:        combo.New(),
		energy:       en,
		attempted:    make(map[questionKey]bool),
		results:      make(map[string]*LessonResult),
		startTime:    now,
		now:          opts.Now,
		logger:       opts.Logger.With("session_id", id),
	}, nil
}

// SubmitAnswer checks answer against question index of lessonID and applies
// its effects. It fails without changing any state when the learner is out
// of energy or the question does not exist.
func (s *Session) SubmitAnswer(lessonID string, index int, answer string) (*Outcome, error) {
	const op = "session.SubmitAnswer"

	if !s.energy.HasEnergy() {
		return nil, apperr.ResourceExhausted(op, "no energy left")
	}
	lesson, err := s.course.Lessons.Lesson(lessonID)
	if err != nil {
		return nil, err
	}
	q, err := lesson.Question(index)
	if err != nil {
		return nil, err
	}

	now := s.now()
	key := questionKey{lessonID, index}
	firstTry := !s.attempted[key]

	res := q.Check(answer, firstTry)
	if err := lesson.MarkAnswered(index, res.Correct); err != nil {
		return nil, err
	}
	s.attempted[key] = true

	s.combo.RecordAnswer(res.Correct)
	points := s.combo.CalculatePoints(res.Points)

	out := &Outcome{
		LessonID:      lessonID,
		QuestionIndex: index,
		Result:        res,
		FirstTry:      firstTry,
		Combo:         s.combo.Current(),
		Multiplier:    s.combo.Multiplier(),
	}

	if res.Correct {
		// points is never negative, so AddXP cannot fail.
		out.LeveledUp, _ = s.progress.AddXP(points)
		out.Points = points
	} else {
		s.energy.RecordAnswer(false, now)
	}

	s.record(lessonID, res.Correct)

	if lesson.AllCorrect() && !s.progress.IsCompleted(lessonID) {
		lesson.MarkCompleted()
		s.progress.CompleteLesson(lessonID)
		s.results[lessonID].Completed = true
		out.LessonCompleted = true
	}

	s.progress.RecordActivity(now)

	out.Unlocked = append(out.Unlocked,
		s.achievements.CheckLessonCompletion(len(s.progress.CompletedLessons()), now)...)
	out.Unlocked = append(out.Unlocked,
		s.achievements.CheckStreak(s.progress.Streak(), now)...)

	out.XP = s.progress.XP()
	out.Level = s.progress.Level()
	out.Energy = s.energy.Current()

	s.log(out)
	return out, nil
}

func (s *Session) record(lessonID string, correct bool) {
	s.totalAnswers++
	if correct {
		s.totalCorrect++
	}
	r, ok := s.results[lessonID]
	if !ok {
		r = &LessonResult{LessonID: lessonID}
		s.results[lessonID] = r
		s.order = append(s.order, lessonID)
	}
	r.Record(correct)
}

func (s *Session) log(out *Outcome) {
	s.logger.Debug("answer checked",
		"lesson", out.LessonID,
		"question", out.QuestionIndex,
		"correct", out.Result.Correct,
		"first_try", out.FirstTry,
		"points", out.Points,
		"combo", out.Combo,
		"energy", out.Energy,
	)
	if out.LeveledUp {
		s.logger.Info("level up", "level", out.Level, "xp", out.XP)
	}
	if out.LessonCompleted {
		s.logger.Info("lesson completed", "lesson", out.LessonID)
	}
	for _, a := range out.Unlocked {
		s.logger.Info("achievement unlocked", "id", a.ID, "name", a.Name, "tier", a.Tier)
	}
}

// Regenerate restores energy for the time elapsed since it was last spent
// and returns the amount restored.
func (s *Session) Regenerate() int {
	n := s.energy.Regenerate(s.now())
	if n > 0 {
		s.logger.Debug("energy regenerated", "restored", n, "energy", s.energy.Current())
	}
	return n
}

// Refill restores energy to the maximum.
func (s *Session) Refill() {
	s.energy.Refill(s.now())
}

// RecommendedLesson returns the first lesson, across paths in course order,
// that is unlocked and not yet completed.
func (s *Session) RecommendedLesson() (string, bool) {
	completed := s.progress.CompletedSet()
	for _, p := range s.course.Paths {
		if next := p.NextLesson(completed); next != "" {
			return next, true
		}
	}
	return "", false
}

// Course returns the course the session runs over.
func (s *Session) Course() *lessons.Course { return s.course }

// Progress returns the learner's progress.
func (s *Session) Progress() *progress.UserProgress { return s.progress }

// Achievements returns the achievement tracker.
func (s *Session) Achievements() *achievements.Tracker { return s.achievements }

// Combo returns the combo system.
func (s *Session) Combo() *combo.System { return s.combo }

// Energy returns the energy system.
func (s *Session) Energy() *energy.System { return s.energy }
