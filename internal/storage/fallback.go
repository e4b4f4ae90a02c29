package storage

import (
	"context"

	"showreel-backend/pkg/logger"
)

// Fallback wraps a primary store with a secondary one. When the
// primary fails with anything other than a not-found, the call is
// retried against the fallback so the site stays up while the real
// backend is down. Writes that land in the fallback are not replayed.
type Fallback struct {
	primary  Store
	fallback Store
}

func NewFallback(primary, fallback Store) *Fallback {
	return &Fallback{primary: primary, fallback: fallback}
}

// shouldFailover treats not-found as a real answer, not an outage.
func shouldFailover(err error) bool {
	return err != nil && !IsNotFound(err)
}

func (f *Fallback) GetProfile(ctx context.Context) (*Profile, error) {
	prof, err := f.primary.GetProfile(ctx)
	if shouldFailover(err) {
		logger.Warn("Primary storage failed, using fallback", map[string]interface{}{
			"op":    "get_profile",
			"error": err.Error(),
		})
		return f.fallback.GetProfile(ctx)
	}
	return prof, err
}

func (f *Fallback) UpsertProfile(ctx context.Context, patch ProfilePatch) (*Profile, bool, error) {
	prof, created, err := f.primary.UpsertProfile(ctx, patch)
	if shouldFailover(err) {
		logger.Warn("Primary storage failed, using fallback", map[string]interface{}{
			"op":    "upsert_profile",
			"error": err.Error(),
		})
		return f.fallback.UpsertProfile(ctx, patch)
	}
	return prof, created, err
}

func (f *Fallback) ListVideos(ctx context.Context, filter VideoFilter) ([]Video, error) {
	videos, err := f.primary.ListVideos(ctx, filter)
	if shouldFailover(err) {
		logger.Warn("Primary storage failed, using fallback", map[string]interface{}{
			"op":    "list_videos",
			"error": err.Error(),
		})
		return f.fallback.ListVideos(ctx, filter)
	}
	return videos, err
}

func (f *Fallback) CreateVideo(ctx context.Context, fields VideoFields) (*Video, error) {
	video, err := f.primary.CreateVideo(ctx, fields)
	if shouldFailover(err) {
		logger.Warn("Primary storage failed, using fallback", map[string]interface{}{
			"op":    "create_video",
			"error": err.Error(),
		})
		return f.fallback.CreateVideo(ctx, fields)
	}
	return video, err
}

func (f *Fallback) UpdateVideo(ctx context.Context, id int, patch VideoPatch) (*Video, error) {
	video, err := f.primary.UpdateVideo(ctx, id, patch)
	if shouldFailover(err) {
		logger.Warn("Primary storage failed, using fallback", map[string]interface{}{
			"op":    "update_video",
			"error": err.Error(),
		})
		return f.fallback.UpdateVideo(ctx, id, patch)
	}
	return video, err
}

func (f *Fallback) DeleteVideo(ctx context.Context, id int) error {
	err := f.primary.DeleteVideo(ctx, id)
	if shouldFailover(err) {
		logger.Warn("Primary storage failed, using fallback", map[string]interface{}{
			"op":    "delete_video",
			"error": err.Error(),
		})
		return f.fallback.DeleteVideo(ctx, id)
	}
	return err
}
