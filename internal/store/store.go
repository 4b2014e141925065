package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/openclo/openclo/internal/types"
)

// Store is the single process-wide mutable container for the profile, the
// experience timeline and the latest analysis result. It is constructed once
// at application start and injected into consumers.
//
// Mutations are total functions over the state: unknown ids are silent
// no-ops and nothing is ever returned as an error. Each mutation and its
// durable mirror write happen under one lock, so no two mutations
// interleave. Backend write failures are logged and swallowed to keep the
// application interactive on storage trouble.
type Store struct {
	mu             sync.Mutex
	profile        *types.UserProfile
	experiences    []types.Experience
	analysisResult *types.AnalysisResult
	hydrated       bool

	hydrateOnce sync.Once
	backend     Backend
	logger      *zap.Logger
}

// Snapshot is a point-in-time copy of the state for readers. Consumers must
// treat IsHydrated == false as "state not yet trustworthy" and must not act
// on absent data until hydration completes.
type Snapshot struct {
	Profile        *types.UserProfile    `json:"profile"`
	Experiences    []types.Experience    `json:"experiences"`
	AnalysisResult *types.AnalysisResult `json:"analysisResult"`
	IsHydrated     bool                  `json:"isHydrated"`
}

// New creates an empty, not-yet-hydrated store over backend.
func New(backend Backend, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		experiences: []types.Experience{},
		backend:     backend,
		logger:      logger,
	}
}

// Hydrate promotes persisted state into live state. It runs exactly once;
// later calls are no-ops. A failed load leaves the state empty but still
// marks the store hydrated so the application stays usable.
func (s *Store) Hydrate(ctx context.Context) {
	s.hydrateOnce.Do(func() {
		state, err := s.backend.Load(ctx)

		s.mu.Lock()
		defer s.mu.Unlock()

		if err != nil {
			s.logger.Warn("failed to load persisted state, starting empty", zap.Error(err))
		} else if state != nil {
			s.profile = state.Profile
			if state.Experiences != nil {
				s.experiences = state.Experiences
			}
			s.analysisResult = state.AnalysisResult
		}
		s.hydrated = true
	})
}

// IsHydrated reports whether hydration has completed.
func (s *Store) IsHydrated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hydrated
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	experiences := make([]types.Experience, len(s.experiences))
	copy(experiences, s.experiences)

	return Snapshot{
		Profile:        s.profile,
		Experiences:    experiences,
		AnalysisResult: s.analysisResult,
		IsHydrated:     s.hydrated,
	}
}

// SetProfile replaces the profile wholesale.
func (s *Store) SetProfile(ctx context.Context, profile types.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = &profile
	s.persist(ctx)
}

// AddExperience appends an experience. The caller supplies a unique id.
func (s *Store) AddExperience(ctx context.Context, experience types.Experience) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.experiences = append(s.experiences, experience)
	s.persist(ctx)
}

// ExperiencePatch is a partial experience update. Nil fields are left
// unchanged; nil slices mean "unchanged", not "cleared".
type ExperiencePatch struct {
	Title        *string                   `json:"title"`
	StartYear    *int                      `json:"startYear"`
	StartMonth   *int                      `json:"startMonth"`
	EndYear      *int                      `json:"endYear"`
	EndMonth     *int                      `json:"endMonth"`
	IsOngoing    *bool                     `json:"isOngoing"`
	Description  *string                   `json:"description"`
	Category     *types.ExperienceCategory `json:"category"`
	Satisfaction *int                      `json:"satisfaction"`
	Emotions     []string                  `json:"emotions"`
	Skills       []string                  `json:"skills"`
	Achievement  *string                   `json:"achievement"`
}

// UpdateExperience merges patch into the experience with the given id.
// Silent no-op when the id is not found.
func (s *Store) UpdateExperience(ctx context.Context, id string, patch ExperiencePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.experiences {
		if s.experiences[i].ID != id {
			continue
		}
		applyPatch(&s.experiences[i], patch)
		s.persist(ctx)
		return
	}
}

// RemoveExperience deletes the experience with the given id. Silent no-op
// when the id is not found.
func (s *Store) RemoveExperience(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.experiences {
		if s.experiences[i].ID == id {
			s.experiences = append(s.experiences[:i], s.experiences[i+1:]...)
			s.persist(ctx)
			return
		}
	}
}

// SetAnalysisResult replaces the analysis result wholesale. When two
// analysis requests race, the last completed call wins.
func (s *Store) SetAnalysisResult(ctx context.Context, result types.AnalysisResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analysisResult = &result
	s.persist(ctx)
}

// ToggleActionPlan flips the completed flag of the matching action plan in
// the current analysis result. Silent no-op when no result is loaded or the
// plan id is not found.
func (s *Store) ToggleActionPlan(ctx context.Context, planID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.analysisResult == nil {
		return
	}
	for i := range s.analysisResult.ActionPlans {
		if s.analysisResult.ActionPlans[i].ID == planID {
			s.analysisResult.ActionPlans[i].Completed = !s.analysisResult.ActionPlans[i].Completed
			s.persist(ctx)
			return
		}
	}
}

// ResetAll clears profile, experiences and analysis result for a full
// restart.
func (s *Store) ResetAll(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile = nil
	s.experiences = []types.Experience{}
	s.analysisResult = nil
	s.persist(ctx)
}

// persist mirrors the current state to the backend. Callers hold s.mu.
// Failures are logged, never surfaced: a storage quota problem must not
// break interactivity. Last write wins; there is no undo or versioning.
func (s *Store) persist(ctx context.Context) {
	state := &PersistedState{
		Profile:        s.profile,
		Experiences:    s.experiences,
		AnalysisResult: s.analysisResult,
	}
	if err := s.backend.Save(ctx, state); err != nil {
		s.logger.Warn("failed to persist state", zap.Error(err))
	}
}

func applyPatch(exp *types.Experience, patch ExperiencePatch) {
	if patch.Title != nil {
		exp.Title = *patch.Title
	}
	if patch.StartYear != nil {
		exp.StartYear = *patch.StartYear
	}
	if patch.StartMonth != nil {
		exp.StartMonth = *patch.StartMonth
	}
	if patch.EndYear != nil {
		exp.EndYear = patch.EndYear
	}
	if patch.EndMonth != nil {
		exp.EndMonth = patch.EndMonth
	}
	if patch.IsOngoing != nil {
		exp.IsOngoing = *patch.IsOngoing
		if exp.IsOngoing {
			// Ongoing experiences carry no end date.
			exp.EndYear = nil
			exp.EndMonth = nil
		}
	}
	if patch.Description != nil {
		exp.Description = *patch.Description
	}
	if patch.Category != nil {
		exp.Category = *patch.Category
	}
	if patch.Satisfaction != nil {
		exp.Satisfaction = *patch.Satisfaction
	}
	if patch.Emotions != nil {
		exp.Emotions = patch.Emotions
	}
	if patch.Skills != nil {
		exp.Skills = patch.Skills
	}
	if patch.Achievement != nil {
		exp.Achievement = *patch.Achievement
	}
}
