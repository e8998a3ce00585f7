// Package fuzzy scores how close two strings are by edit distance.
package fuzzy

import "github.com/agext/levenshtein"

// Similarity returns 1 - Distance(a, b)/max(len(a), len(b)) in [0, 1],
// measuring length in runes.
//
// If either string is empty the result is 0, including when both are.
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1.0
	}

	maxLen := max(len([]rune(a)), len([]rune(b)))
	return 1.0 - float64(Distance(a, b))/float64(maxLen)
}

// Distance returns the Levenshtein distance between a and b: the minimum
// number of single-rune insertions, deletions and substitutions.
func Distance(a, b string) int {
	// Nil params mean unit costs and no cost cap.
	return levenshtein.Distance(a, b, nil)
}
