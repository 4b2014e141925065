package server

import (
	"encoding/json"
	"net/http"

	"github.com/openclo/openclo/internal/store"
	"github.com/openclo/openclo/internal/types"
)

// handleGetState returns a snapshot of the application state, including the
// hydration flag. Clients must not treat absent data as meaningful until
// isHydrated is true.
func (s *Server) handleGetState(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.store.Snapshot())
}

// handleSetProfile replaces the profile wholesale.
func (s *Server) handleSetProfile(w http.ResponseWriter, r *http.Request) {
	var profile types.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		s.errorResponse(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if msg, ok := s.validateRequest(profile); !ok {
		s.errorResponse(w, http.StatusBadRequest, msg)
		return
	}
	if !profile.Status.Valid() {
		s.errorResponse(w, http.StatusBadRequest, "status: invalid value")
		return
	}

	s.store.SetProfile(r.Context(), profile)
	s.jsonResponse(w, http.StatusOK, profile)
}

// handleAddExperience appends an experience. The client supplies the id.
func (s *Server) handleAddExperience(w http.ResponseWriter, r *http.Request) {
	var experience types.Experience
	if err := json.NewDecoder(r.Body).Decode(&experience); err != nil {
		s.errorResponse(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if msg, ok := s.validateRequest(experience); !ok {
		s.errorResponse(w, http.StatusBadRequest, msg)
		return
	}
	if !experience.Category.Valid() {
		s.errorResponse(w, http.StatusBadRequest, "category: invalid value")
		return
	}

	s.store.AddExperience(r.Context(), experience)
	s.jsonResponse(w, http.StatusCreated, experience)
}

// handleUpdateExperience merges a partial update into the matching
// experience. Unknown ids are a silent no-op.
func (s *Server) handleUpdateExperience(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		s.errorResponse(w, http.StatusBadRequest, "experience id is required")
		return
	}

	var patch store.ExperiencePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		s.errorResponse(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	s.store.UpdateExperience(r.Context(), id, patch)
	w.WriteHeader(http.StatusNoContent)
}

// handleRemoveExperience deletes the matching experience. Unknown ids are a
// silent no-op.
func (s *Server) handleRemoveExperience(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		s.errorResponse(w, http.StatusBadRequest, "experience id is required")
		return
	}

	s.store.RemoveExperience(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}

// handleToggleActionPlan flips the completed flag of an action plan in the
// current analysis result.
func (s *Server) handleToggleActionPlan(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		s.errorResponse(w, http.StatusBadRequest, "plan id is required")
		return
	}

	s.store.ToggleActionPlan(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}

// handleGetVocabulary returns the fixed vocabularies the client offers
// during onboarding and experience entry.
func (s *Server) handleGetVocabulary(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"statuses":       types.AllStatuses(),
		"categories":     types.AllCategories(),
		"categoryColors": types.CategoryColors,
		"emotions":       types.EmotionOptions,
		"skills":         types.SkillSuggestions,
	})
}

// handleReset clears all state for a full restart.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.store.ResetAll(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
