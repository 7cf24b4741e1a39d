package ui

import "github.com/sahilm/fuzzy"

// SuggestClosest returns the candidate that best fuzzy-matches input,
// or "" when nothing is close. Used for "did you mean" hints on
// unknown branch names.
func SuggestClosest(input string, candidates []string) string {
	matches := fuzzy.Find(input, candidates)
	if len(matches) == 0 {
		return ""
	}
	return candidates[matches[0].Index]
}
