package sema

import (
	"unicode/utf8"
)

// similarityThreshold is the largest normalized edit distance that still
// counts as a likely typo.
const similarityThreshold = 0.5

// levenshtein returns the edit distance between a and b in runes.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}

// normalizedDistance divides the edit distance by the longer length.
func normalizedDistance(a, b string) float64 {
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 0
	}
	return float64(levenshtein(a, b)) / float64(longest)
}

// closestName returns the candidate nearest to name below the threshold.
// Ties keep the earlier candidate.
func closestName(name string, candidates []string) (string, bool) {
	best, bestDist := "", similarityThreshold
	for _, c := range candidates {
		if c == "" || c == name {
			continue
		}
		if d := normalizedDistance(name, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, best != ""
}
