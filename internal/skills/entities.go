package skills

import "context"

// EntityExtractor is the boundary to free-form entity extraction.
// Implementations are best-effort: the returned lists carry no
// correctness guarantee and callers must treat empty output as normal.
// The scoring core never fails because an extractor failed.
type EntityExtractor interface {
	ExtractEntities(ctx context.Context, text string) (organizations, locations, dates []string, err error)
}

// NoopExtractor returns empty entity lists. It is the default when no
// external extractor is configured.
type NoopExtractor struct{}

// ExtractEntities implements EntityExtractor with empty results.
func (NoopExtractor) ExtractEntities(_ context.Context, _ string) ([]string, []string, []string, error) {
	return []string{}, []string{}, []string{}, nil
}
