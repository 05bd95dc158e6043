package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-scorer/internal/types"
)

// SaveSourceTexts stores the resume and job description for a run
func (db *DB) SaveSourceTexts(ctx context.Context, runID uuid.UUID, resumeText, jobText string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO score_sources (run_id, resume_text, job_text)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (run_id) DO UPDATE SET resume_text = $2, job_text = $3`,
		runID, resumeText, jobText,
	)
	if err != nil {
		return fmt.Errorf("failed to save source texts: %w", err)
	}
	return nil
}

// GetSourceTexts retrieves the stored texts for a run
func (db *DB) GetSourceTexts(ctx context.Context, runID uuid.UUID) (resumeText, jobText string, err error) {
	err = db.pool.QueryRow(ctx,
		`SELECT resume_text, job_text FROM score_sources WHERE run_id = $1`,
		runID,
	).Scan(&resumeText, &jobText)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", "", nil
		}
		return "", "", fmt.Errorf("failed to get source texts: %w", err)
	}
	return resumeText, jobText, nil
}

// SaveResult stores the full score result as JSONB
func (db *DB) SaveResult(ctx context.Context, runID uuid.UUID, result *types.ScoreResult) error {
	jsonBytes, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal score result: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO score_results (run_id, overall, result)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (run_id) DO UPDATE SET overall = $2, result = $3, created_at = NOW()`,
		runID, result.Overall, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save score result: %w", err)
	}
	return nil
}

// GetResult retrieves the score result for a run; nil when not found
func (db *DB) GetResult(ctx context.Context, runID uuid.UUID) (*types.ScoreResult, error) {
	var jsonBytes []byte
	err := db.pool.QueryRow(ctx,
		`SELECT result FROM score_results WHERE run_id = $1`,
		runID,
	).Scan(&jsonBytes)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get score result: %w", err)
	}

	var result types.ScoreResult
	if err := json.Unmarshal(jsonBytes, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal score result: %w", err)
	}
	return &result, nil
}
