package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

// REST talks to a hosted PostgREST-style data API. Rows live in the
// same two collections the postgres backend uses: /profiles and
// /videos, filtered with the eq. operator.
type REST struct {
	client *resty.Client
}

// NewREST builds the store for the given base URL. The key, when set,
// is sent both as the apikey header and as a bearer token, which is
// what hosted PostgREST providers expect.
func NewREST(baseURL, key string) *REST {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	if key != "" {
		client.SetHeader("apikey", key)
		client.SetAuthToken(key)
	}

	return &REST{client: client}
}

func (r *REST) GetProfile(ctx context.Context) (*Profile, error) {
	var rows []Profile
	resp, err := r.client.R().
		SetContext(ctx).
		SetQueryParam("id", "eq.1").
		SetResult(&rows).
		Get("/profiles")
	if err != nil {
		return nil, fmt.Errorf("rest storage: get profile: %w", err)
	}
	if resp.IsError() {
		return nil, restError("get profile", resp)
	}
	if len(rows) == 0 {
		return nil, ErrProfileNotFound
	}
	return &rows[0], nil
}

func (r *REST) UpsertProfile(ctx context.Context, patch ProfilePatch) (*Profile, bool, error) {
	created := false
	prof, err := r.GetProfile(ctx)
	if err != nil {
		if !IsNotFound(err) {
			return nil, false, err
		}
		prof = &Profile{ID: 1, SocialLinks: map[string]string{}}
		created = true
	}

	applyProfilePatch(prof, patch, time.Now().UTC())
	if prof.Skills == nil {
		prof.Skills = []string{}
	}
	if prof.Services == nil {
		prof.Services = []string{}
	}

	var rows []Profile
	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Prefer", "resolution=merge-duplicates,return=representation").
		SetBody([]Profile{*prof}).
		SetResult(&rows).
		Post("/profiles")
	if err != nil {
		return nil, false, fmt.Errorf("rest storage: upsert profile: %w", err)
	}
	if resp.IsError() {
		return nil, false, restError("upsert profile", resp)
	}
	if len(rows) > 0 {
		prof = &rows[0]
	}

	return prof, created, nil
}

func (r *REST) ListVideos(ctx context.Context, filter VideoFilter) ([]Video, error) {
	req := r.client.R().
		SetContext(ctx).
		SetQueryParam("order", "featured.desc,sort_order.asc,created_at.desc")
	if filter.PublishedOnly {
		req.SetQueryParam("status", "eq."+StatusPublished)
	}

	var rows []Video
	resp, err := req.SetResult(&rows).Get("/videos")
	if err != nil {
		return nil, fmt.Errorf("rest storage: list videos: %w", err)
	}
	if resp.IsError() {
		return nil, restError("list videos", resp)
	}
	if rows == nil {
		rows = []Video{}
	}
	return rows, nil
}

func (r *REST) CreateVideo(ctx context.Context, fields VideoFields) (*Video, error) {
	now := time.Now().UTC()
	body := map[string]interface{}{
		"title":               fields.Title,
		"description":         fields.Description,
		"video_url":           fields.VideoURL,
		"video_type":          fields.VideoType,
		"thumbnail_url":       fields.ThumbnailURL,
		"thumbnail_file_path": fields.ThumbnailFilePath,
		"category":            fields.Category,
		"client":              fields.Client,
		"project_date":        fields.ProjectDate,
		"status":              fields.Status,
		"featured":            fields.Featured,
		"sort_order":          fields.SortOrder,
		"created_at":          now,
		"updated_at":          now,
	}

	var rows []Video
	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Prefer", "return=representation").
		SetBody(body).
		SetResult(&rows).
		Post("/videos")
	if err != nil {
		return nil, fmt.Errorf("rest storage: create video: %w", err)
	}
	if resp.IsError() {
		return nil, restError("create video", resp)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("rest storage: create video: empty response")
	}
	return &rows[0], nil
}

func (r *REST) UpdateVideo(ctx context.Context, id int, patch VideoPatch) (*Video, error) {
	body := videoPatchBody(patch)
	body["updated_at"] = time.Now().UTC()

	var rows []Video
	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Prefer", "return=representation").
		SetQueryParam("id", fmt.Sprintf("eq.%d", id)).
		SetBody(body).
		SetResult(&rows).
		Patch("/videos")
	if err != nil {
		return nil, fmt.Errorf("rest storage: update video: %w", err)
	}
	if resp.IsError() {
		return nil, restError("update video", resp)
	}
	if len(rows) == 0 {
		return nil, ErrVideoNotFound
	}
	return &rows[0], nil
}

func (r *REST) DeleteVideo(ctx context.Context, id int) error {
	var rows []Video
	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Prefer", "return=representation").
		SetQueryParam("id", fmt.Sprintf("eq.%d", id)).
		SetResult(&rows).
		Delete("/videos")
	if err != nil {
		return fmt.Errorf("rest storage: delete video: %w", err)
	}
	if resp.IsError() {
		return restError("delete video", resp)
	}
	if len(rows) == 0 {
		return ErrVideoNotFound
	}
	return nil
}

// videoPatchBody keeps absent fields out of the PATCH payload so the
// remote row only changes where the caller asked.
func videoPatchBody(patch VideoPatch) map[string]interface{} {
	body := map[string]interface{}{}
	raw, err := json.Marshal(patch)
	if err != nil {
		return body
	}
	_ = json.Unmarshal(raw, &body)
	return body
}

func restError(op string, resp *resty.Response) error {
	return fmt.Errorf("rest storage: %s: status %d: %s", op, resp.StatusCode(), resp.String())
}
