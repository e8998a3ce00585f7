package progress

// levelThresholds[i] is the XP needed to reach level i+1.
var levelThresholds = [...]int{0, 100, 250, 500, 1000, 2000, 4000, 8000}

// MaxLevel is the highest reachable level.
const MaxLevel = len(levelThresholds)

// LevelForXP returns the highest level whose threshold does not exceed xp.
func LevelForXP(xp int) int {
	level := 1
	for i, t := range levelThresholds {
		if xp >= t {
			level = i + 1
		}
	}
	return level
}

// LevelThreshold returns the XP required to reach level. Levels outside
// [1, MaxLevel] are clamped.
func LevelThreshold(level int) int {
	switch {
	case level < 1:
		level = 1
	case level > MaxLevel:
		level = MaxLevel
	}
	return levelThresholds[level-1]
}
