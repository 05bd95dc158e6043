package skills

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-scorer/internal/types"
)

// Extract matches a processed text against the fixed skill vocabulary.
// Two passes: every token whose lowercase form is a single-word
// vocabulary entry, then every multi-word phrase found as a
// case-insensitive substring of the cleaned text. The result is a
// deduplicated set, sorted for stable output.
func Extract(processed *types.ProcessedText) []string {
	found := make(map[string]bool)

	for _, tok := range processed.Tokens {
		if singleWordVocab[tok] {
			found[tok] = true
		}
	}

	cleanedLower := strings.ToLower(processed.Cleaned)
	for _, phrase := range phraseVocab {
		if strings.Contains(cleanedLower, phrase) {
			found[phrase] = true
		}
	}

	result := make([]string, 0, len(found))
	for skill := range found {
		result = append(result, skill)
	}
	sort.Strings(result)
	return result
}
