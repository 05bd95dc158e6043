package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-scorer/internal/db"
	"github.com/jonathan/resume-scorer/internal/pipeline"
	"github.com/jonathan/resume-scorer/internal/suggestions"
	"github.com/jonathan/resume-scorer/internal/types"
)

// maxBulkResumes caps the number of resumes scored in one bulk request.
const maxBulkResumes = 50

// handleScore scores one resume against one job description.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req types.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	opts := pipeline.RunOptions{
		ResumeText:   req.ResumeText,
		JobText:      req.JobText,
		Weights:      req.Weights,
		Synonyms:     req.Synonyms,
		Extractor:    s.extractor,
		IncludeDebug: req.IncludeDebug,
	}
	if req.Persist {
		// Reuse the server's pool; without one the run is not persisted.
		opts.Database = s.db
	}

	result, err := pipeline.Run(r.Context(), opts)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// bulkScoreResponse wraps the ordered results of a bulk scoring call.
type bulkScoreResponse struct {
	Results []*types.ScoreResult `json:"results"`
	Count   int                  `json:"count"`
}

// handleBulkScore scores several resumes against one job description.
func (s *Server) handleBulkScore(w http.ResponseWriter, r *http.Request) {
	var req types.BulkScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(req.ResumeTexts) > maxBulkResumes {
		s.errorResponse(w, http.StatusBadRequest, "too many resumes in one request")
		return
	}

	pairs := make([]types.ScoreRequest, len(req.ResumeTexts))
	for i, resumeText := range req.ResumeTexts {
		pairs[i] = types.ScoreRequest{
			ResumeText: resumeText,
			JobText:    req.JobText,
			Weights:    req.Weights,
		}
	}

	results, err := pipeline.RunBatch(r.Context(), pairs, pipeline.RunOptions{
		Weights:   req.Weights,
		Extractor: s.extractor,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, bulkScoreResponse{
		Results: results,
		Count:   len(results),
	})
}

// handleBullets generates templated resume bullets for a keyword list.
func (s *Server) handleBullets(w http.ResponseWriter, r *http.Request) {
	var req types.BulletsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	bullets := suggestions.Generate(req.Keywords, req.ExperienceLevel, nil)
	s.jsonResponse(w, http.StatusOK, map[string][]string{"bullets": bullets})
}

// handleListRuns lists persisted score runs, newest first.
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrDatabaseUnavailable{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	filters := db.RunFilters{
		Status: r.URL.Query().Get("status"),
	}

	runs, err := s.db.ListRuns(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list runs")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"runs":  runs,
		"count": len(runs),
	})
}

// runDetailResponse is the payload for GET /runs/{id}.
type runDetailResponse struct {
	Run    *db.Run            `json:"run"`
	Result *types.ScoreResult `json:"result,omitempty"`
}

// handleGetRun returns one run with its score result when available.
func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrDatabaseUnavailable{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	runID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid run ID")
		return
	}

	run, err := s.db.GetRun(r.Context(), runID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to get run")
		return
	}
	if run == nil {
		notFound := &ErrRunNotFound{RunID: runID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	// Result is best-effort: a run may exist without one.
	result, err := s.db.GetResult(r.Context(), runID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to get result")
		return
	}

	s.jsonResponse(w, http.StatusOK, runDetailResponse{Run: run, Result: result})
}

// handleDeleteRun deletes a run and its associated rows.
func (s *Server) handleDeleteRun(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrDatabaseUnavailable{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	runID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid run ID")
		return
	}

	if err := s.db.DeleteRun(r.Context(), runID); err != nil {
		notFound := &ErrRunNotFound{RunID: runID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
