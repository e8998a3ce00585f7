package achievements

import (
	"testing"
	"time"
)

var t0 = time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)

func TestDefaultCatalog(t *testing.T) {
	cat := DefaultCatalog()
	if len(cat) != 4 {
		t.Fatalf("DefaultCatalog has %d entries, want 4", len(cat))
	}

	tests := []struct {
		id        string
		tier      Tier
		criterion Criterion
		threshold int
	}{
		{IDFirstLesson, TierBronze, CriterionLessons, 1},
		{IDTenLessons, TierSilver, CriterionLessons, 10},
		{IDWeekStreak, TierGold, CriterionStreak, 7},
		{IDMonthStreak, TierPlatinum, CriterionStreak, 30},
	}
	for i, tt := range tests {
		d := cat[i]
		if d.ID != tt.id || d.Tier != tt.tier || d.Criterion != tt.criterion || d.Threshold != tt.threshold {
			t.Errorf("catalog[%d] = %+v, want %s/%s/%s/%d", i, d, tt.id, tt.tier, tt.criterion, tt.threshold)
		}
	}
	if cat[0].Name != "First Steps" {
		t.Errorf("first-lesson name = %q, want %q", cat[0].Name, "First Steps")
	}
}

func TestNewTracker_AllLocked(t *testing.T) {
	tr := NewTracker(DefaultCatalog())
	if got := tr.Unlocked(); len(got) != 0 {
		t.Errorf("Unlocked() = %d entries, want 0", len(got))
	}
	for _, a := range tr.All() {
		if a.Unlocked || !a.UnlockedAt.IsZero() {
			t.Errorf("%s should start locked", a.ID)
		}
	}
}

func TestCheckLessonCompletion(t *testing.T) {
	tr := NewTracker(DefaultCatalog())

	newly := tr.CheckLessonCompletion(0, t0)
	if len(newly) != 0 {
		t.Errorf("count 0 unlocked %d, want 0", len(newly))
	}

	newly = tr.CheckLessonCompletion(1, t0)
	if len(newly) != 1 || newly[0].ID != IDFirstLesson {
		t.Fatalf("count 1 unlocked %+v, want first-lesson", newly)
	}

	newly = tr.CheckLessonCompletion(12, t0)
	if len(newly) != 1 || newly[0].ID != IDTenLessons {
		t.Fatalf("count 12 unlocked %+v, want ten-lessons", newly)
	}
}

func TestCheckLessonCompletion_SkipsStreakAchievements(t *testing.T) {
	tr := NewTracker(DefaultCatalog())
	tr.CheckLessonCompletion(100, t0)

	for _, a := range tr.Unlocked() {
		if a.Criterion == CriterionStreak {
			t.Errorf("lesson count unlocked streak achievement %s", a.ID)
		}
	}
}

func TestCheckStreak(t *testing.T) {
	tr := NewTracker(DefaultCatalog())

	if n := len(tr.CheckStreak(6, t0)); n != 0 {
		t.Errorf("streak 6 unlocked %d, want 0", n)
	}
	newly := tr.CheckStreak(30, t0)
	if len(newly) != 2 {
		t.Fatalf("streak 30 unlocked %d, want 2", len(newly))
	}
	if newly[0].ID != IDWeekStreak || newly[1].ID != IDMonthStreak {
		t.Errorf("unlock order = %s, %s; want catalog order", newly[0].ID, newly[1].ID)
	}
}

func TestUnlock_Idempotent(t *testing.T) {
	tr := NewTracker(DefaultCatalog())
	later := t0.Add(48 * time.Hour)

	tr.CheckLessonCompletion(1, t0)
	newly := tr.CheckLessonCompletion(3, later)
	if len(newly) != 0 {
		t.Errorf("second check unlocked %d, want 0", len(newly))
	}

	unlocked := tr.Unlocked()
	if len(unlocked) != 1 {
		t.Fatalf("Unlocked() = %d entries, want 1", len(unlocked))
	}
	if !unlocked[0].UnlockedAt.Equal(t0) {
		t.Errorf("UnlockedAt = %v, want first unlock time %v", unlocked[0].UnlockedAt, t0)
	}
}

func TestUnlock_NeverRelocks(t *testing.T) {
	tr := NewTracker(DefaultCatalog())
	tr.CheckStreak(7, t0)
	tr.CheckStreak(1, t0.Add(time.Hour))

	all := tr.All()
	if all[2].ID != IDWeekStreak || !all[2].Unlocked {
		t.Errorf("All()[2] = %+v, want unlocked week-streak", all[2])
	}
}

func TestUnlocked_CatalogOrder(t *testing.T) {
	tr := NewTracker(DefaultCatalog())
	tr.CheckStreak(7, t0)
	tr.CheckLessonCompletion(1, t0.Add(time.Minute))

	got := tr.Unlocked()
	if len(got) != 2 {
		t.Fatalf("Unlocked() = %d entries, want 2", len(got))
	}
	if got[0].ID != IDFirstLesson || got[1].ID != IDWeekStreak {
		t.Errorf("Unlocked() order = %s, %s; want first-lesson, week-streak", got[0].ID, got[1].ID)
	}
}

func TestTracker_CustomCatalog(t *testing.T) {
	cat := Catalog{
		{ID: "three", Name: "Three", Tier: TierBronze, Criterion: CriterionLessons, Threshold: 3},
	}
	a := NewTracker(cat)
	b := NewTracker(cat)

	a.CheckLessonCompletion(3, t0)
	if len(b.Unlocked()) != 0 {
		t.Error("trackers sharing a catalog must not share state")
	}
	if len(a.Unlocked()) != 1 {
		t.Error("custom catalog entry should unlock")
	}
}

func TestTier_DisplayName(t *testing.T) {
	for _, tier := range []Tier{TierBronze, TierSilver, TierGold, TierPlatinum} {
		if tier.DisplayName() == string(tier) {
			t.Errorf("%q has no display name", tier)
		}
	}
}
