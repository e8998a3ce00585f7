package combo

import "testing"

func TestMultiplier(t *testing.T) {
	tests := []struct {
		correct int
		want    float64
	}{
		{0, 1.0},
		{1, 1.0},
		{2, 1.0},
		{3, 1.5},
		{4, 1.5},
		{5, 2.0},
		{9, 2.0},
	}
	for _, tt := range tests {
		s := New()
		for i := 0; i < tt.correct; i++ {
			s.RecordAnswer(true)
		}
		if got := s.Multiplier(); got != tt.want {
			t.Errorf("after %d correct: Multiplier() = %v, want %v", tt.correct, got, tt.want)
		}
	}
}

func TestCalculatePoints(t *testing.T) {
	s := New()
	for i := 0; i < 3; i++ {
		s.RecordAnswer(true)
	}
	if got := s.CalculatePoints(10); got != 15 {
		t.Errorf("CalculatePoints(10) at 1.5x = %d, want 15", got)
	}
	if got := s.CalculatePoints(5); got != 7 {
		t.Errorf("CalculatePoints(5) at 1.5x = %d, want 7 (floor)", got)
	}

	s.RecordAnswer(true)
	s.RecordAnswer(true)
	if got := s.CalculatePoints(15); got != 30 {
		t.Errorf("CalculatePoints(15) at 2x = %d, want 30", got)
	}
}

func TestRecordAnswer_IncorrectResets(t *testing.T) {
	s := New()
	for i := 0; i < 4; i++ {
		s.RecordAnswer(true)
	}
	s.RecordAnswer(false)

	if s.Current() != 0 {
		t.Errorf("Current = %d, want 0", s.Current())
	}
	if s.Highest() != 4 {
		t.Errorf("Highest = %d, want 4", s.Highest())
	}
	if s.Multiplier() != 1.0 {
		t.Errorf("Multiplier = %v, want 1.0", s.Multiplier())
	}

	s.RecordAnswer(true)
	s.RecordAnswer(true)
	if s.Highest() != 4 {
		t.Errorf("Highest = %d after shorter run, want 4", s.Highest())
	}
}

func TestReset(t *testing.T) {
	s := New()
	s.RecordAnswer(true)
	s.Reset()
	if s.Current() != 0 || s.Highest() != 0 {
		t.Errorf("after Reset: current=%d highest=%d", s.Current(), s.Highest())
	}
}
