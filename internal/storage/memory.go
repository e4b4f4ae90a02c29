package storage

import (
	"context"
	"sync"
	"time"
)

// Memory is the in-process store. State lives for the process
// lifetime and is reset on restart; durability is explicitly not part
// of this variant's contract. It also serves as the fallback target
// when a remote backend is unreachable.
type Memory struct {
	mu      sync.Mutex
	profile *Profile
	videos  map[int]Video
	nextID  int
}

// NewMemory returns an empty store with the id counter at 1.
func NewMemory() *Memory {
	return &Memory{
		videos: make(map[int]Video),
		nextID: 1,
	}
}

func (m *Memory) GetProfile(ctx context.Context) (*Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.profile == nil {
		return nil, ErrProfileNotFound
	}
	p := cloneProfile(*m.profile)
	return &p, nil
}

func (m *Memory) UpsertProfile(ctx context.Context, patch ProfilePatch) (*Profile, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	created := false
	if m.profile == nil {
		m.profile = &Profile{ID: 1, SocialLinks: map[string]string{}}
		created = true
	}

	applyProfilePatch(m.profile, patch, time.Now().UTC())

	p := cloneProfile(*m.profile)
	return &p, created, nil
}

func (m *Memory) ListVideos(ctx context.Context, filter VideoFilter) ([]Video, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	videos := make([]Video, 0, len(m.videos))
	for _, v := range m.videos {
		if filter.PublishedOnly && v.Status != StatusPublished {
			continue
		}
		videos = append(videos, v)
	}

	sortVideos(videos)
	return videos, nil
}

func (m *Memory) CreateVideo(ctx context.Context, fields VideoFields) (*Video, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	v := Video{
		ID:                m.nextID,
		Title:             fields.Title,
		Description:       fields.Description,
		VideoURL:          fields.VideoURL,
		VideoType:         fields.VideoType,
		ThumbnailURL:      fields.ThumbnailURL,
		ThumbnailFilePath: fields.ThumbnailFilePath,
		Category:          fields.Category,
		Client:            fields.Client,
		ProjectDate:       fields.ProjectDate,
		Status:            fields.Status,
		Featured:          fields.Featured,
		SortOrder:         fields.SortOrder,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	// The counter only moves forward, so ids are never reused even
	// after a delete.
	m.nextID++
	m.videos[v.ID] = v

	return &v, nil
}

func (m *Memory) UpdateVideo(ctx context.Context, id int, patch VideoPatch) (*Video, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.videos[id]
	if !ok {
		return nil, ErrVideoNotFound
	}

	applyVideoPatch(&v, patch, time.Now().UTC())
	m.videos[id] = v

	return &v, nil
}

func (m *Memory) DeleteVideo(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.videos[id]; !ok {
		return ErrVideoNotFound
	}

	delete(m.videos, id)
	return nil
}

// snapshot copies the full state under lock; used by the file store.
func (m *Memory) snapshot() (profile *Profile, videos []Video, nextID int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.profile != nil {
		p := cloneProfile(*m.profile)
		profile = &p
	}
	videos = make([]Video, 0, len(m.videos))
	for _, v := range m.videos {
		videos = append(videos, v)
	}
	sortVideos(videos)
	return profile, videos, m.nextID
}

// restore replaces the full state; used by the file store on load.
func (m *Memory) restore(profile *Profile, videos []Video, nextID int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.profile = profile
	m.videos = make(map[int]Video, len(videos))
	for _, v := range videos {
		m.videos[v.ID] = v
		if v.ID >= nextID {
			nextID = v.ID + 1
		}
	}
	if nextID < 1 {
		nextID = 1
	}
	m.nextID = nextID
}

// cloneProfile deep-copies so callers cannot mutate shared state.
func cloneProfile(p Profile) Profile {
	if p.SocialLinks != nil {
		links := make(map[string]string, len(p.SocialLinks))
		for k, v := range p.SocialLinks {
			links[k] = v
		}
		p.SocialLinks = links
	}
	if p.Skills != nil {
		p.Skills = append([]string(nil), p.Skills...)
	}
	if p.Services != nil {
		p.Services = append([]string(nil), p.Services...)
	}
	return p
}
