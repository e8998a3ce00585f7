package achievements

// Tier is the prestige level of an achievement.
type Tier string

const (
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
)

// DisplayName returns a human-readable label for the tier.
func (t Tier) DisplayName() string {
	switch t {
	case TierBronze:
		return "Bronze"
	case TierSilver:
		return "Silver"
	case TierGold:
		return "Gold"
	case TierPlatinum:
		return "Platinum"
	default:
		return string(t)
	}
}

// Icon returns the display icon for the tier.
func (t Tier) Icon() string {
	switch t {
	case TierBronze:
		return "🥉"
	case TierSilver:
		return "🥈"
	case TierGold:
		return "🥇"
	case TierPlatinum:
		return "🏆"
	default:
		return "✦"
	}
}

// Criterion is the progress signal an achievement is measured against.
type Criterion string

const (
	CriterionLessons Criterion = "lessons" // completed lesson count
	CriterionStreak  Criterion = "streak"  // daily streak length
)

// Definition describes an unlockable achievement.
type Definition struct {
	ID          string
	Name        string
	Description string
	Tier        Tier
	Criterion   Criterion
	Threshold   int
}

// Catalog is an ordered list of achievement definitions.
type Catalog []Definition

// Achievement IDs in the default catalog.
const (
	IDFirstLesson = "first-lesson"
	IDTenLessons  = "ten-lessons"
	IDWeekStreak  = "week-streak"
	IDMonthStreak = "month-streak"
)

// DefaultCatalog returns the standard four achievements.
func DefaultCatalog() Catalog {
	return Catalog{
		{
			ID:          IDFirstLesson,
			Name:        "First Steps",
			Description: "Complete your first lesson",
			Tier:        TierBronze,
			Criterion:   CriterionLessons,
			Threshold:   1,
		},
		{
			ID:          IDTenLessons,
			Name:        "Dedicated Learner",
			Description: "Complete 10 lessons",
			Tier:        TierSilver,
			Criterion:   CriterionLessons,
			Threshold:   10,
		},
		{
			ID:          IDWeekStreak,
			Name:        "Week Warrior",
			Description: "Practice 7 days in a row",
			Tier:        TierGold,
			Criterion:   CriterionStreak,
			Threshold:   7,
		},
		{
			ID:          IDMonthStreak,
			Name:        "Monthly Master",
			Description: "Practice 30 days in a row",
			Tier:        TierPlatinum,
			Criterion:   CriterionStreak,
			Threshold:   30,
		},
	}
}
