// Package textproc provides text normalization, tokenization, stemming,
// and sentence splitting for the scoring pipeline. Every function is a
// pure function of its inputs; nothing in this package holds state
// across calls.
package textproc

import (
	"regexp"
	"strings"
)

var (
	// noiseChars matches any character outside the retained set. The set
	// deliberately keeps . , ! ? ; : ( ) - + # so that technical tokens
	// like "c++", "c#", and "node.js" survive normalization.
	noiseChars = regexp.MustCompile(`[^\w\s.,!?;:()\-+#]`)

	whitespaceRuns = regexp.MustCompile(`\s+`)

	// validToken matches retained tokens after lowercasing.
	validToken = regexp.MustCompile(`^[a-zA-Z0-9+#.-]+$`)

	sentenceBoundary = regexp.MustCompile(`[.!?]+`)
)

// stopwords filters common English words that add noise to matching.
// Tokens retained by the character filter already skew toward technical
// terms, so the list stays deliberately generic.
var stopwords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "been": true, "but": true, "by": true, "can": true,
	"do": true, "for": true, "from": true, "had": true, "has": true,
	"have": true, "he": true, "her": true, "his": true, "how": true,
	"if": true, "in": true, "into": true, "is": true, "it": true,
	"its": true, "more": true, "not": true, "of": true, "on": true,
	"or": true, "our": true, "she": true, "should": true, "such": true,
	"than": true, "that": true, "the": true, "their": true, "them": true,
	"then": true, "there": true, "these": true, "they": true, "this": true,
	"to": true, "was": true, "we": true, "were": true, "what": true,
	"when": true, "where": true, "which": true, "while": true, "who": true,
	"will": true, "with": true, "would": true, "you": true, "your": true,
}

// Normalize strips noise characters and collapses whitespace: any
// character outside the retained set is replaced with a space, runs of
// whitespace collapse to one space, and the result is trimmed.
func Normalize(text string) string {
	cleaned := noiseChars.ReplaceAllString(text, " ")
	cleaned = whitespaceRuns.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// Tokenize lowercases text and splits it into tokens, treating + # . -
// as word characters so "c++", "c#", and "node.js" survive intact.
// Tokens of length <= 1, tokens not matching [a-zA-Z0-9+#.-]+, and
// stopwords are discarded. Trailing dots are trimmed so sentence-final
// words do not differ from their mid-sentence form.
func Tokenize(text string) []string {
	var tokens []string
	var word strings.Builder

	flush := func() {
		w := strings.TrimRight(word.String(), ".")
		word.Reset()
		if len(w) <= 1 || !validToken.MatchString(w) {
			return
		}
		if stopwords[w] {
			return
		}
		tokens = append(tokens, w)
	}

	for _, r := range strings.ToLower(text) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '+' || r == '#' || r == '.' || r == '-' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	if tokens == nil {
		return []string{}
	}
	return tokens
}

// Stem reduces a token by deterministic suffix stripping. It normalizes
// common plural and verb forms well enough for internal matching; stems
// are never surfaced in output.
func Stem(token string) string {
	switch {
	case strings.HasSuffix(token, "sses"):
		return strings.TrimSuffix(token, "es")
	case strings.HasSuffix(token, "ies") && len(token) > 4:
		return strings.TrimSuffix(token, "ies") + "i"
	case strings.HasSuffix(token, "ss"):
		return token
	case strings.HasSuffix(token, "ing") && len(token) > 5:
		return strings.TrimSuffix(token, "ing")
	case strings.HasSuffix(token, "ed") && len(token) > 4:
		return strings.TrimSuffix(token, "ed")
	case strings.HasSuffix(token, "s") && len(token) > 3:
		return strings.TrimSuffix(token, "s")
	default:
		return token
	}
}

// StemAll applies Stem to every token, preserving order.
func StemAll(tokens []string) []string {
	stems := make([]string, len(tokens))
	for i, t := range tokens {
		stems[i] = Stem(t)
	}
	return stems
}

// SplitSentences splits cleaned text on runs of '.', '!', '?' and keeps
// fragments whose trimmed length exceeds 10 characters. Fragments are
// never merged across boundaries.
func SplitSentences(text string) []string {
	parts := sentenceBoundary.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if len(trimmed) > 10 {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}
