package textproc

import (
	"github.com/jonathan/resume-scorer/internal/types"
)

// Process runs the full text-processing stage on one document:
// normalization, tokenization, stemming, sentence splitting, and keyword
// ranking. Entities start empty; the skill recognizer and entity
// extractor fill them in later pipeline stages.
func Process(text string) *types.ProcessedText {
	cleaned := Normalize(text)
	tokens := Tokenize(cleaned)

	return &types.ProcessedText{
		Original:  text,
		Cleaned:   cleaned,
		Tokens:    tokens,
		Stems:     StemAll(tokens),
		Sentences: SplitSentences(cleaned),
		Keywords:  RankKeywords(tokens),
		Entities:  types.NewEntities(),
	}
}
