package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "store.json")

	store, err := NewFile(path)
	require.NoError(t, err)

	_, _, err = store.UpsertProfile(ctx, ProfilePatch{
		Name:   strPtr("Ada Film"),
		Skills: []string{"editing"},
	})
	require.NoError(t, err)

	v, err := store.CreateVideo(ctx, VideoFields{Title: "Reel", Status: StatusPublished})
	require.NoError(t, err)

	reopened, err := NewFile(path)
	require.NoError(t, err)

	prof, err := reopened.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ada Film", prof.Name)
	assert.Equal(t, []string{"editing"}, prof.Skills)

	videos, err := reopened.ListVideos(ctx, VideoFilter{})
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, v.ID, videos[0].ID)
	assert.Equal(t, "Reel", videos[0].Title)
}

func TestFileStoreNextIDSurvivesDeleteAndReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.json")

	store, err := NewFile(path)
	require.NoError(t, err)

	first, err := store.CreateVideo(ctx, VideoFields{Title: "one", Status: StatusPublished})
	require.NoError(t, err)
	require.NoError(t, store.DeleteVideo(ctx, first.ID))

	reopened, err := NewFile(path)
	require.NoError(t, err)

	second, err := reopened.CreateVideo(ctx, VideoFields{Title: "two", Status: StatusPublished})
	require.NoError(t, err)
	assert.Equal(t, first.ID+1, second.ID)
}

func TestFileStoreMissingFileStartsEmpty(t *testing.T) {
	store, err := NewFile(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)

	_, err = store.GetProfile(context.Background())
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
