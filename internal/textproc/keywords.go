package textproc

import "sort"

const (
	maxKeywords      = 20
	minKeywordWeight = 0.1
)

// RankKeywords computes per-call term weights for one token list treated
// as a single document and returns the top descriptive terms: weight
// greater than 0.1, at most 20 terms, ranked by weight descending with
// first-appearance order breaking ties.
//
// The frequency accumulator is a local value scoped to this call. Sharing
// an accumulator across invocations would make results depend on every
// document scored before, which breaks determinism and concurrent use.
func RankKeywords(tokens []string) []string {
	if len(tokens) == 0 {
		return []string{}
	}

	counts := make(map[string]int, len(tokens))
	firstSeen := make(map[string]int, len(tokens))
	for i, tok := range tokens {
		if _, ok := counts[tok]; !ok {
			firstSeen[tok] = i
		}
		counts[tok]++
	}

	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	type weighted struct {
		term   string
		weight float64
	}

	// Weight is frequency normalized by the most frequent term, so the
	// dominant term always weighs 1.0 and the 0.1 floor scales with
	// document shape rather than absolute length.
	ranked := make([]weighted, 0, len(counts))
	for term, c := range counts {
		w := float64(c) / float64(maxCount)
		if w > minKeywordWeight {
			ranked = append(ranked, weighted{term: term, weight: w})
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].weight != ranked[j].weight {
			return ranked[i].weight > ranked[j].weight
		}
		return firstSeen[ranked[i].term] < firstSeen[ranked[j].term]
	})

	if len(ranked) > maxKeywords {
		ranked = ranked[:maxKeywords]
	}

	keywords := make([]string, len(ranked))
	for i, r := range ranked {
		keywords[i] = r.term
	}
	return keywords
}
