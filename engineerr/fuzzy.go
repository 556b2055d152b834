package engineerr

import (
	"sort"
	"strings"
)

// Suggest returns up to max entries from known whose normalized
// similarity to input meets cutoff, most-similar first. This mirrors the
// reference calculator's "Did you mean...?" lookup (difflib's
// get_close_matches, cutoff 0.6, n 3) — no Go package in the retrieval
// pack wraps a SequenceMatcher-style ratio, so the ratio is computed
// directly here from Levenshtein distance rather than pulling in an
// unrelated fuzzy-matching dependency.
func Suggest(input string, known []string, max int, cutoff float64) []string {
	if max <= 0 {
		max = 3
	}
	if cutoff <= 0 {
		cutoff = 0.6
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	type candidate struct {
		name  string
		score float64
	}
	var candidates []candidate
	for _, k := range known {
		score := similarity(normalized, strings.ToLower(k))
		if score >= cutoff {
			candidates = append(candidates, candidate{k, score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].score > candidates[j].score })
	if len(candidates) > max {
		candidates = candidates[:max]
	}

	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.name
	}
	return out
}

// similarity is a normalized edit-distance ratio in [0, 1]: 1 for an
// exact match, 0 for no characters in common, the same shape of score
// difflib.SequenceMatcher.ratio() produces.
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	return 1 - float64(levenshtein(a, b))/float64(maxLen)
}

// levenshtein is the classic two-row edit-distance computation.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost
			m := del
			if ins < m {
				m = ins
			}
			if sub < m {
				m = sub
			}
			curr[j] = m
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}
