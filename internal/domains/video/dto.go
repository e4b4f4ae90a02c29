package video

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"showreel-backend/internal/storage"
)

// CreateVideoRequest accepts youtube_url as an alias for video_url
// because older admin clients still send it.
type CreateVideoRequest struct {
	Title             string `json:"title"`
	Description       string `json:"description"`
	VideoURL          string `json:"video_url"`
	YouTubeURL        string `json:"youtube_url"`
	VideoType         string `json:"video_type"`
	ThumbnailURL      string `json:"thumbnail_url"`
	ThumbnailFilePath string `json:"thumbnail_file_path"`
	Category          string `json:"category"`
	Client            string `json:"client"`
	ProjectDate       string `json:"project_date"`
	Status            string `json:"status"`
	Featured          bool   `json:"featured"`
	SortOrder         int    `json:"sort_order"`
}

// normalize fills defaults and resolves the url alias before
// validation runs.
func (r *CreateVideoRequest) normalize() {
	if r.VideoURL == "" {
		r.VideoURL = r.YouTubeURL
	}
	if r.VideoType == "" {
		r.VideoType = storage.TypeYouTube
	}
	if r.Status == "" {
		r.Status = storage.StatusPublished
	}
}

func (r CreateVideoRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 300),
		),
		validation.Field(&r.VideoType,
			validation.In(storage.TypeYouTube, storage.TypeFile).Error("video_type must be youtube or file"),
		),
		validation.Field(&r.VideoURL,
			validation.When(r.VideoType == storage.TypeYouTube,
				validation.Required.Error("video_url is required for youtube videos"),
			),
		),
		validation.Field(&r.Status,
			validation.In(storage.StatusPublished, storage.StatusDraft).Error("status must be published or draft"),
		),
	)
}

func (r CreateVideoRequest) fields() storage.VideoFields {
	return storage.VideoFields{
		Title:             r.Title,
		Description:       r.Description,
		VideoURL:          r.VideoURL,
		VideoType:         r.VideoType,
		ThumbnailURL:      r.ThumbnailURL,
		ThumbnailFilePath: r.ThumbnailFilePath,
		Category:          r.Category,
		Client:            r.Client,
		ProjectDate:       r.ProjectDate,
		Status:            r.Status,
		Featured:          r.Featured,
		SortOrder:         r.SortOrder,
	}
}

// UpdateVideoRequest is a partial update, nil fields stay as stored.
type UpdateVideoRequest struct {
	Title             *string `json:"title"`
	Description       *string `json:"description"`
	VideoURL          *string `json:"video_url"`
	VideoType         *string `json:"video_type"`
	ThumbnailURL      *string `json:"thumbnail_url"`
	ThumbnailFilePath *string `json:"thumbnail_file_path"`
	Category          *string `json:"category"`
	Client            *string `json:"client"`
	ProjectDate       *string `json:"project_date"`
	Status            *string `json:"status"`
	Featured          *bool   `json:"featured"`
	SortOrder         *int    `json:"sort_order"`
}

func (r UpdateVideoRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.When(r.Title != nil, validation.Length(1, 300)),
		),
		validation.Field(&r.VideoType,
			validation.When(r.VideoType != nil,
				validation.In(storage.TypeYouTube, storage.TypeFile).Error("video_type must be youtube or file"),
			),
		),
		validation.Field(&r.Status,
			validation.When(r.Status != nil,
				validation.In(storage.StatusPublished, storage.StatusDraft).Error("status must be published or draft"),
			),
		),
	)
}

func (r UpdateVideoRequest) patch() storage.VideoPatch {
	return storage.VideoPatch{
		Title:             r.Title,
		Description:       r.Description,
		VideoURL:          r.VideoURL,
		VideoType:         r.VideoType,
		ThumbnailURL:      r.ThumbnailURL,
		ThumbnailFilePath: r.ThumbnailFilePath,
		Category:          r.Category,
		Client:            r.Client,
		ProjectDate:       r.ProjectDate,
		Status:            r.Status,
		Featured:          r.Featured,
		SortOrder:         r.SortOrder,
	}
}

type DeleteVideoResponse struct {
	Message string `json:"message"`
}
