package match

import (
	"cmp"
	"slices"
)

// DefaultThreshold is the minimum Similarity for a suggestion.
const DefaultThreshold = 0.6

// MaxSuggestions caps the number of suggestions returned by Suggest.
const MaxSuggestions = 3

type scored struct {
	name  string
	score float64
}

// Suggest returns the candidates most similar to name, best first. Exact
// matches and candidates below threshold are left out. Ties keep the
// candidates' order.
func Suggest(name string, candidates []string, threshold float64) []string {
	var ranked []scored

	for _, c := range candidates {
		if c == name {
			continue
		}

		if s := Similarity(name, c); s >= threshold {
			ranked = append(ranked, scored{name: c, score: s})
		}
	}

	slices.SortStableFunc(ranked, func(a, b scored) int {
		return cmp.Compare(b.score, a.score)
	})

	out := make([]string, 0, min(len(ranked), MaxSuggestions))
	for _, r := range ranked {
		if len(out) == MaxSuggestions {
			break
		}

		out = append(out, r.name)
	}

	return out
}
