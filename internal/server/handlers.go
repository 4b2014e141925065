package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/openclo/openclo/internal/types"
)

// AnalyzeRequest is the request body for /api/analyze.
type AnalyzeRequest struct {
	Profile     *types.UserProfile `json:"profile" validate:"required"`
	Experiences []types.Experience `json:"experiences" validate:"required,min=1,max=50,dive"`
}

// ChecklistRequest is the request body for /api/checklist.
type ChecklistRequest struct {
	ActionPlanTitle string `json:"actionPlanTitle" validate:"required"`
	Description     string `json:"description"`
}

// SuggestRequest is the request body for /api/suggest.
type SuggestRequest struct {
	Profile        *types.UserProfile       `json:"profile" validate:"required"`
	Category       types.ExperienceCategory `json:"category" validate:"required"`
	ExistingTitles []string                 `json:"existingTitles"`
}

// ChecklistResponse is the response body for /api/checklist.
type ChecklistResponse struct {
	Checklist []types.ChecklistItem `json:"checklist"`
}

// SuggestResponse is the response body for /api/suggest.
type SuggestResponse struct {
	Suggestions []string `json:"suggestions"`
}

// handleAnalyze runs the full experience analysis. The finished result is
// persisted into the store and returned; responses are never cached.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if msg, ok := s.validateRequest(req); !ok {
		s.errorResponse(w, http.StatusBadRequest, msg)
		return
	}

	result, err := s.analyzer.Analyze(r.Context(), *req.Profile, req.Experiences)
	if err != nil {
		s.pipelineError(w, "analyze", err)
		return
	}

	s.store.SetAnalysisResult(r.Context(), *result)

	// Always serve a live analysis, never a cached one.
	w.Header().Set("Cache-Control", "no-store")
	s.jsonResponse(w, http.StatusOK, result)
}

// handleChecklist generates checklist items for an action plan.
func (s *Server) handleChecklist(w http.ResponseWriter, r *http.Request) {
	var req ChecklistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if msg, ok := s.validateRequest(req); !ok {
		s.errorResponse(w, http.StatusBadRequest, msg)
		return
	}

	checklist, err := s.analyzer.Checklist(r.Context(), req.ActionPlanTitle, req.Description)
	if err != nil {
		s.pipelineError(w, "checklist", err)
		return
	}

	s.jsonResponse(w, http.StatusOK, ChecklistResponse{Checklist: checklist})
}

// handleSuggest generates experience title suggestions for a category.
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var req SuggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if msg, ok := s.validateRequest(req); !ok {
		s.errorResponse(w, http.StatusBadRequest, msg)
		return
	}
	if !req.Category.Valid() {
		s.errorResponse(w, http.StatusBadRequest, "category: invalid value")
		return
	}

	suggestions, err := s.analyzer.Suggest(r.Context(), *req.Profile, req.Category, req.ExistingTitles)
	if err != nil {
		s.pipelineError(w, "suggest", err)
		return
	}

	s.jsonResponse(w, http.StatusOK, SuggestResponse{Suggestions: suggestions})
}

// validateRequest runs struct validation and renders the first violation as
// a field-specific message.
func (s *Server) validateRequest(req any) (string, bool) {
	if err := s.validate.Struct(req); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			return verrs[0].Namespace() + ": " + verrs[0].Tag(), false
		}
		return msgInvalidBody, false
	}
	return "", true
}

// pipelineError maps a pipeline error to an HTTP response and logs it.
func (s *Server) pipelineError(w http.ResponseWriter, kind string, err error) {
	status := HTTPStatus(err)
	s.logger.Error("pipeline request failed",
		zap.String("kind", kind),
		zap.Int("status", status),
		zap.Error(err),
	)
	if status == http.StatusTooManyRequests {
		w.Header().Set("Retry-After", "60")
	}
	s.errorResponse(w, status, userMessage(err))
}
