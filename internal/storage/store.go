package storage

import (
	"context"
	"errors"
	"sort"
	"time"
)

// Store is the uniform contract over the profile record and the video
// collection. Handlers depend on this interface only; the concrete
// backend (memory, JSON file, PostgreSQL, hosted REST service) is an
// injected decision made once at process start.
type Store interface {
	// GetProfile returns ErrProfileNotFound before the first upsert.
	GetProfile(ctx context.Context) (*Profile, error)

	// UpsertProfile merges the given fields into the existing profile,
	// creating it when absent. The returned bool is true when this
	// call created the record. SocialLinks, Skills and Services are
	// replaced wholesale when present in the patch (shallow replace,
	// never a key-by-key merge).
	UpsertProfile(ctx context.Context, patch ProfilePatch) (*Profile, bool, error)

	// ListVideos returns videos ordered by featured desc,
	// sort_order asc, created_at desc.
	ListVideos(ctx context.Context, filter VideoFilter) ([]Video, error)

	// CreateVideo assigns the next id and stamps the timestamps.
	// Ids are monotonically increasing and never reused after delete.
	CreateVideo(ctx context.Context, fields VideoFields) (*Video, error)

	// UpdateVideo shallow-merges the patch and re-stamps updated_at.
	UpdateVideo(ctx context.Context, id int, patch VideoPatch) (*Video, error)

	// DeleteVideo removes the row. Hard delete, no tombstone.
	DeleteVideo(ctx context.Context, id int) error
}

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrVideoNotFound   = errors.New("video not found")
)

// IsNotFound reports whether err is one of the domain not-found
// sentinels. The fallback composite must not treat these as backend
// failures.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProfileNotFound) || errors.Is(err, ErrVideoNotFound)
}

// Profile is the single administrator/business-owner record shown on
// the public site. Exactly one exists at any time; id is always 1.
type Profile struct {
	ID          int               `json:"id"`
	Name        string            `json:"name"`
	Title       string            `json:"title"`
	Bio         string            `json:"bio"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone"`
	Location    string            `json:"location"`
	Website     string            `json:"website"`
	SocialLinks map[string]string `json:"social_links"`
	Skills      []string          `json:"skills"`
	Services    []string          `json:"services"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// ProfilePatch carries the fields of a partial update. Nil means
// "leave unchanged".
type ProfilePatch struct {
	Name        *string
	Title       *string
	Bio         *string
	Email       *string
	Phone       *string
	Location    *string
	Website     *string
	SocialLinks map[string]string
	Skills      []string
	Services    []string
}

// Video statuses and types.
const (
	StatusPublished = "published"
	StatusDraft     = "draft"

	TypeYouTube = "youtube"
	TypeFile    = "file"
)

// Video is one portfolio entry, either a YouTube reference or an
// uploaded file.
type Video struct {
	ID                int       `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	VideoURL          string    `json:"video_url"`
	VideoType         string    `json:"video_type"`
	ThumbnailURL      string    `json:"thumbnail_url"`
	ThumbnailFilePath string    `json:"thumbnail_file_path"`
	Category          string    `json:"category"`
	Client            string    `json:"client"`
	ProjectDate       string    `json:"project_date"`
	Status            string    `json:"status"`
	Featured          bool      `json:"featured"`
	SortOrder         int       `json:"sort_order"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// VideoFields holds the values for a create.
type VideoFields struct {
	Title             string
	Description       string
	VideoURL          string
	VideoType         string
	ThumbnailURL      string
	ThumbnailFilePath string
	Category          string
	Client            string
	ProjectDate       string
	Status            string
	Featured          bool
	SortOrder         int
}

// VideoPatch carries the fields of a partial update; nil leaves the
// field unchanged.
type VideoPatch struct {
	Title             *string `json:"title,omitempty"`
	Description       *string `json:"description,omitempty"`
	VideoURL          *string `json:"video_url,omitempty"`
	VideoType         *string `json:"video_type,omitempty"`
	ThumbnailURL      *string `json:"thumbnail_url,omitempty"`
	ThumbnailFilePath *string `json:"thumbnail_file_path,omitempty"`
	Category          *string `json:"category,omitempty"`
	Client            *string `json:"client,omitempty"`
	ProjectDate       *string `json:"project_date,omitempty"`
	Status            *string `json:"status,omitempty"`
	Featured          *bool   `json:"featured,omitempty"`
	SortOrder         *int    `json:"sort_order,omitempty"`
}

// VideoFilter narrows ListVideos. PublishedOnly hides drafts from
// unauthenticated callers.
type VideoFilter struct {
	PublishedOnly bool
}

// applyProfilePatch merges the patch into p. Slices and the social
// links map are replaced wholesale; this matches the front end's
// expectation that a PUT with social_links discards the old map.
func applyProfilePatch(p *Profile, patch ProfilePatch, now time.Time) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Bio != nil {
		p.Bio = *patch.Bio
	}
	if patch.Email != nil {
		p.Email = *patch.Email
	}
	if patch.Phone != nil {
		p.Phone = *patch.Phone
	}
	if patch.Location != nil {
		p.Location = *patch.Location
	}
	if patch.Website != nil {
		p.Website = *patch.Website
	}
	if patch.SocialLinks != nil {
		p.SocialLinks = patch.SocialLinks
	}
	if patch.Skills != nil {
		p.Skills = patch.Skills
	}
	if patch.Services != nil {
		p.Services = patch.Services
	}
	p.UpdatedAt = now
}

func applyVideoPatch(v *Video, patch VideoPatch, now time.Time) {
	if patch.Title != nil {
		v.Title = *patch.Title
	}
	if patch.Description != nil {
		v.Description = *patch.Description
	}
	if patch.VideoURL != nil {
		v.VideoURL = *patch.VideoURL
	}
	if patch.VideoType != nil {
		v.VideoType = *patch.VideoType
	}
	if patch.ThumbnailURL != nil {
		v.ThumbnailURL = *patch.ThumbnailURL
	}
	if patch.ThumbnailFilePath != nil {
		v.ThumbnailFilePath = *patch.ThumbnailFilePath
	}
	if patch.Category != nil {
		v.Category = *patch.Category
	}
	if patch.Client != nil {
		v.Client = *patch.Client
	}
	if patch.ProjectDate != nil {
		v.ProjectDate = *patch.ProjectDate
	}
	if patch.Status != nil {
		v.Status = *patch.Status
	}
	if patch.Featured != nil {
		v.Featured = *patch.Featured
	}
	if patch.SortOrder != nil {
		v.SortOrder = *patch.SortOrder
	}
	v.UpdatedAt = now
}

// sortVideos orders by featured desc, sort_order asc, created_at desc.
func sortVideos(videos []Video) {
	sort.SliceStable(videos, func(i, j int) bool {
		if videos[i].Featured != videos[j].Featured {
			return videos[i].Featured
		}
		if videos[i].SortOrder != videos[j].SortOrder {
			return videos[i].SortOrder < videos[j].SortOrder
		}
		return videos[i].CreatedAt.After(videos[j].CreatedAt)
	})
}
