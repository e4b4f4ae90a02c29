package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
)

// File persists the memory store's state as a JSON snapshot after
// every mutation. Good enough for a single-admin site; not a database.
type File struct {
	mem  *Memory
	path string
}

// fileSnapshot is the on-disk layout. NextID is persisted so ids are
// never reused across restarts.
type fileSnapshot struct {
	Profile *Profile `json:"profile"`
	Videos  []Video  `json:"videos"`
	NextID  int      `json:"next_id"`
}

// NewFile loads the snapshot at path if it exists.
func NewFile(path string) (*File, error) {
	f := &File{
		mem:  NewMemory(),
		path: path,
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var snap fileSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode store file: %w", err)
	}

	f.mem.restore(snap.Profile, snap.Videos, snap.NextID)
	return f, nil
}

func (f *File) GetProfile(ctx context.Context) (*Profile, error) {
	return f.mem.GetProfile(ctx)
}

func (f *File) UpsertProfile(ctx context.Context, patch ProfilePatch) (*Profile, bool, error) {
	p, created, err := f.mem.UpsertProfile(ctx, patch)
	if err != nil {
		return nil, false, err
	}
	if err := f.persist(); err != nil {
		return nil, false, err
	}
	return p, created, nil
}

func (f *File) ListVideos(ctx context.Context, filter VideoFilter) ([]Video, error) {
	return f.mem.ListVideos(ctx, filter)
}

func (f *File) CreateVideo(ctx context.Context, fields VideoFields) (*Video, error) {
	v, err := f.mem.CreateVideo(ctx, fields)
	if err != nil {
		return nil, err
	}
	if err := f.persist(); err != nil {
		return nil, err
	}
	return v, nil
}

func (f *File) UpdateVideo(ctx context.Context, id int, patch VideoPatch) (*Video, error) {
	v, err := f.mem.UpdateVideo(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if err := f.persist(); err != nil {
		return nil, err
	}
	return v, nil
}

func (f *File) DeleteVideo(ctx context.Context, id int) error {
	if err := f.mem.DeleteVideo(ctx, id); err != nil {
		return err
	}
	return f.persist()
}

// persist writes the snapshot via a temp file + rename so a crash
// mid-write cannot truncate the store.
func (f *File) persist() error {
	profile, videos, nextID := f.mem.snapshot()

	data, err := json.MarshalIndent(fileSnapshot{
		Profile: profile,
		Videos:  videos,
		NextID:  nextID,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace store file: %w", err)
	}

	return nil
}
