package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
func intPtr(i int) *int       { return &i }

func TestMemoryProfileLifecycle(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()

	_, err := mem.GetProfile(ctx)
	assert.ErrorIs(t, err, ErrProfileNotFound)

	prof, created, err := mem.UpsertProfile(ctx, ProfilePatch{
		Name:  strPtr("Ada Film"),
		Title: strPtr("Director"),
		SocialLinks: map[string]string{
			"vimeo":     "https://vimeo.com/ada",
			"instagram": "https://instagram.com/ada",
		},
		Skills: []string{"editing", "color grading"},
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 1, prof.ID)
	assert.Equal(t, "Ada Film", prof.Name)

	// Second upsert is an update, untouched fields survive.
	prof, created, err = mem.UpsertProfile(ctx, ProfilePatch{
		Bio: strPtr("Fifteen years behind the camera."),
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "Ada Film", prof.Name)
	assert.Equal(t, "Fifteen years behind the camera.", prof.Bio)
	assert.Len(t, prof.SocialLinks, 2)
}

func TestMemoryProfileSocialLinksReplacedWholesale(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()

	_, _, err := mem.UpsertProfile(ctx, ProfilePatch{
		SocialLinks: map[string]string{
			"vimeo":   "https://vimeo.com/ada",
			"youtube": "https://youtube.com/@ada",
		},
	})
	require.NoError(t, err)

	// A new map replaces the old one, it is not merged key by key.
	prof, _, err := mem.UpsertProfile(ctx, ProfilePatch{
		SocialLinks: map[string]string{"vimeo": "https://vimeo.com/new"},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"vimeo": "https://vimeo.com/new"}, prof.SocialLinks)
	assert.NotContains(t, prof.SocialLinks, "youtube")
}

func TestMemoryVideoCRUD(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()

	v, err := mem.CreateVideo(ctx, VideoFields{
		Title:     "Brand Film",
		VideoURL:  "https://youtube.com/watch?v=abc",
		VideoType: TypeYouTube,
		Status:    StatusPublished,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, v.ID)
	assert.False(t, v.CreatedAt.IsZero())

	updated, err := mem.UpdateVideo(ctx, v.ID, VideoPatch{Featured: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, updated.Featured)
	assert.Equal(t, "Brand Film", updated.Title)

	require.NoError(t, mem.DeleteVideo(ctx, v.ID))
	assert.ErrorIs(t, mem.DeleteVideo(ctx, v.ID), ErrVideoNotFound)

	_, err = mem.UpdateVideo(ctx, v.ID, VideoPatch{Title: strPtr("x")})
	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestMemoryVideoIDsNeverReused(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()

	first, err := mem.CreateVideo(ctx, VideoFields{Title: "one", Status: StatusPublished})
	require.NoError(t, err)
	require.NoError(t, mem.DeleteVideo(ctx, first.ID))

	second, err := mem.CreateVideo(ctx, VideoFields{Title: "two", Status: StatusPublished})
	require.NoError(t, err)
	assert.Equal(t, first.ID+1, second.ID)
}

func TestMemoryListVideosOrderingAndFilter(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()

	_, err := mem.CreateVideo(ctx, VideoFields{Title: "old plain", Status: StatusPublished, SortOrder: 5})
	require.NoError(t, err)
	_, err = mem.CreateVideo(ctx, VideoFields{Title: "draft cut", Status: StatusDraft, SortOrder: 8})
	require.NoError(t, err)
	_, err = mem.CreateVideo(ctx, VideoFields{Title: "featured reel", Status: StatusPublished, Featured: true, SortOrder: 9})
	require.NoError(t, err)
	_, err = mem.CreateVideo(ctx, VideoFields{Title: "new plain", Status: StatusPublished, SortOrder: 2})
	require.NoError(t, err)

	all, err := mem.ListVideos(ctx, VideoFilter{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	// Featured first, then ascending sort_order.
	assert.Equal(t, "featured reel", all[0].Title)
	assert.Equal(t, "new plain", all[1].Title)
	assert.Equal(t, "old plain", all[2].Title)

	published, err := mem.ListVideos(ctx, VideoFilter{PublishedOnly: true})
	require.NoError(t, err)
	require.Len(t, published, 3)
	for _, v := range published {
		assert.Equal(t, StatusPublished, v.Status)
	}
}

func TestMemoryListVideosEmptyIsSlice(t *testing.T) {
	videos, err := NewMemory().ListVideos(context.Background(), VideoFilter{})
	require.NoError(t, err)
	assert.NotNil(t, videos)
	assert.Empty(t, videos)
}
