package match

// DefaultMinScore is the similarity floor below which a near miss is not
// worth suggesting.
const DefaultMinScore = 0.75

// Closest returns the candidate most similar to name, or false when no
// candidate reaches DefaultMinScore. Ties keep the earlier candidate, so
// callers passing sorted input get deterministic suggestions.
func Closest(name string, candidates []string) (string, bool) {
	best := ""
	bestScore := 0.0

	for _, c := range candidates {
		if score := NormalizedLevenshteinScore(name, c); score > bestScore {
			best, bestScore = c, score
		}
	}

	if bestScore < DefaultMinScore {
		return "", false
	}

	return best, true
}
