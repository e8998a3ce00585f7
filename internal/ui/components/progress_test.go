package components

import (
	"strings"
	"testing"
)

func TestFilled(t *testing.T) {
	tests := []struct {
		width   int
		percent float64
		want    int
	}{
		{10, 0, 0},
		{10, 50, 5},
		{10, 100, 10},
		{10, 33.3, 3},
		{10, 150, 10},
		{10, -20, 0},
	}
	for _, tt := range tests {
		if got := Filled(tt.width, tt.percent); got != tt.want {
			t.Errorf("Filled(%d, %v) = %d, want %d", tt.width, tt.percent, got, tt.want)
		}
	}
}

func TestProgressBarView(t *testing.T) {
	view := NewProgressBar("Basics", 50, true, 30).View()

	if !strings.Contains(view, "Basics") {
		t.Errorf("View() = %q, want label", view)
	}
	if !strings.Contains(view, "50%") {
		t.Errorf("View() = %q, want percent", view)
	}

	noPct := NewProgressBar("", 50, false, 30).View()
	if strings.Contains(noPct, "%") {
		t.Errorf("View() = %q, want no percent", noPct)
	}
}
