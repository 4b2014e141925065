package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openclo/openclo/internal/types"
)

func TestFileBackend_RoundTrip(t *testing.T) {
	backend, err := NewFileBackend(t.TempDir())
	require.NoError(t, err)

	state := &PersistedState{
		Profile:     &types.UserProfile{Name: "지민", Status: types.StatusStudent, Major: "컴퓨터공학"},
		Experiences: []types.Experience{sampleExperience("e1")},
		AnalysisResult: &types.AnalysisResult{
			Summary:      "성장 가능성이 높다",
			AnalysisDate: "2026-08-28T12:00:00Z",
		},
	}
	require.NoError(t, backend.Save(context.Background(), state))

	loaded, err := backend.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "지민", loaded.Profile.Name)
	assert.Equal(t, "e1", loaded.Experiences[0].ID)
	assert.Equal(t, "성장 가능성이 높다", loaded.AnalysisResult.Summary)
}

func TestFileBackend_MissingFileIsEmpty(t *testing.T) {
	backend, err := NewFileBackend(t.TempDir())
	require.NoError(t, err)

	state, err := backend.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestFileBackend_SaveOverwrites(t *testing.T) {
	backend, err := NewFileBackend(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, backend.Save(context.Background(), &PersistedState{
		Experiences: []types.Experience{sampleExperience("e1"), sampleExperience("e2")},
	}))
	require.NoError(t, backend.Save(context.Background(), &PersistedState{
		Experiences: []types.Experience{sampleExperience("e3")},
	}))

	loaded, err := backend.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded.Experiences, 1)
	assert.Equal(t, "e3", loaded.Experiences[0].ID)
}

func TestFileBackend_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	backend, err := NewFileBackend(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, StorageKey+".json"), []byte("{broken"), 0o644))

	_, err = backend.Load(context.Background())
	assert.Error(t, err)
}

func TestFileBackend_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	_, err := NewFileBackend(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewFileBackend_EmptyDir(t *testing.T) {
	_, err := NewFileBackend("")
	assert.Error(t, err)
}
