// Package store holds the single process-wide mutable application state and
// mirrors every mutation to a durable persistence backend.
package store

import (
	"context"

	"github.com/openclo/openclo/internal/types"
)

// PersistedState is the serialized mirror of live state: a single blob kept
// under one fixed key, loaded once at startup and overwritten on every
// mutation.
type PersistedState struct {
	Profile        *types.UserProfile    `json:"profile"`
	Experiences    []types.Experience    `json:"experiences"`
	AnalysisResult *types.AnalysisResult `json:"analysisResult"`
}

// StorageKey is the fixed key the state blob lives under.
const StorageKey = "openclo-storage"

// Backend abstracts the durable storage for the state blob.
type Backend interface {
	// Load reads the persisted state. A nil state with nil error means
	// nothing has been persisted yet.
	Load(ctx context.Context) (*PersistedState, error)
	// Save overwrites the persisted state.
	Save(ctx context.Context, state *PersistedState) error
	// Close releases backend resources.
	Close() error
}
