package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// entityPrompt asks for verbatim extraction of named entities. The
// output carries no strict correctness contract; callers treat it as
// best-effort.
const entityPrompt = `You are an expert resume parser. Extract named entities from the text below.
COPY TEXT VERBATIM - do not paraphrase, summarize, or invent entries.

Return ONLY valid JSON matching this exact structure:
{
  "organizations": ["string"], // company, school, and institution names
  "locations": ["string"],     // cities, states, countries
  "dates": ["string"]          // date ranges and standalone dates as written
}

IMPORTANT:
- Extract information directly from the text, do not invent or summarize.
- Return ONLY the JSON object, no markdown, no explanation, no code blocks.

Input text:
"""
%s
"""
`

// entityResponse mirrors the JSON shape the model is asked for.
type entityResponse struct {
	Organizations []string `json:"organizations"`
	Locations     []string `json:"locations"`
	Dates         []string `json:"dates"`
}

// GeminiExtractor extracts organizations, locations, and dates from
// free-form text. It implements the skills.EntityExtractor interface.
type GeminiExtractor struct {
	client Client
}

// NewGeminiExtractor wraps an LLM client as an entity extractor.
func NewGeminiExtractor(client Client) *GeminiExtractor {
	return &GeminiExtractor{client: client}
}

// ExtractEntities sends the text to the lite model tier and parses the
// JSON response. The returned lists are never nil on success.
func (e *GeminiExtractor) ExtractEntities(ctx context.Context, text string) ([]string, []string, []string, error) {
	prompt := fmt.Sprintf(entityPrompt, text)

	raw, err := e.client.GenerateJSON(ctx, prompt, TierLite)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("entity extraction failed: %w", err)
	}

	var resp entityResponse
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &resp); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to parse entity response: %w", err)
	}

	return emptyIfNil(resp.Organizations), emptyIfNil(resp.Locations), emptyIfNil(resp.Dates), nil
}

func emptyIfNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
