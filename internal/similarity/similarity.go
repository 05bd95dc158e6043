// Package similarity implements the token-set overlap score and
// sentence-level phrase matching used across the scoring pipeline.
package similarity

import (
	"math"
	"strings"

	"github.com/jonathan/resume-scorer/internal/textproc"
	"github.com/jonathan/resume-scorer/internal/types"
)

// phraseThreshold is the sentence-pair overlap above which the source
// sentence is recorded as a matched phrase.
const phraseThreshold = 0.6

// Overlap computes the overlap coefficient between two token lists:
// |SA ∩ SB| / (sqrt(|SA|) * sqrt(|SB|)) over the distinct token sets.
// This is not cosine similarity on weighted vectors; the formula is the
// contract. Returns 0 when either set is empty. Symmetric in its
// arguments.
func Overlap(tokensA, tokensB []string) float64 {
	setA := toSet(tokensA)
	setB := toSet(tokensB)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for tok := range setA {
		if setB[tok] {
			intersection++
		}
	}

	return float64(intersection) / (math.Sqrt(float64(len(setA))) * math.Sqrt(float64(len(setB))))
}

// Calculate processes both texts and returns the overall overlap score
// together with matched phrases: for every sentence pair whose token
// overlap exceeds 0.6, the source sentence is recorded (trimmed,
// deduplicated).
func Calculate(text1, text2 string) *types.SimilarityResult {
	p1 := textproc.Process(text1)
	p2 := textproc.Process(text2)

	matched := []string{}
	seen := make(map[string]bool)
	for _, s1 := range p1.Sentences {
		tokens1 := textproc.Tokenize(s1)
		for _, s2 := range p2.Sentences {
			if Overlap(tokens1, textproc.Tokenize(s2)) > phraseThreshold {
				phrase := strings.TrimSpace(s1)
				if !seen[phrase] {
					seen[phrase] = true
					matched = append(matched, phrase)
				}
			}
		}
	}

	return &types.SimilarityResult{
		Score:          Overlap(p1.Tokens, p2.Tokens),
		MatchedPhrases: matched,
		SourceText:     text1,
		TargetText:     text2,
	}
}

func toSet(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return set
}
