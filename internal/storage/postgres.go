package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres backs the store with two tables: profiles (a single row,
// id fixed at 1) and videos (serial id, so ids are never reused after
// a hard delete).
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres ensures the schema exists and returns the store.
func NewPostgres(ctx context.Context, pool *pgxpool.Pool) (*Postgres, error) {
	p := &Postgres{pool: pool}
	if err := p.ensureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return p, nil
}

func (p *Postgres) ensureSchema(ctx context.Context) error {
	_, err := p.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS profiles (
			id            INT PRIMARY KEY,
			name          TEXT NOT NULL DEFAULT '',
			title         TEXT NOT NULL DEFAULT '',
			bio           TEXT NOT NULL DEFAULT '',
			email         TEXT NOT NULL DEFAULT '',
			phone         TEXT NOT NULL DEFAULT '',
			location      TEXT NOT NULL DEFAULT '',
			website       TEXT NOT NULL DEFAULT '',
			social_links  JSONB NOT NULL DEFAULT '{}',
			skills        TEXT[] NOT NULL DEFAULT '{}',
			services      TEXT[] NOT NULL DEFAULT '{}',
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE TABLE IF NOT EXISTS videos (
			id                  SERIAL PRIMARY KEY,
			title               TEXT NOT NULL,
			description         TEXT NOT NULL DEFAULT '',
			video_url           TEXT NOT NULL DEFAULT '',
			video_type          TEXT NOT NULL DEFAULT 'youtube',
			thumbnail_url       TEXT NOT NULL DEFAULT '',
			thumbnail_file_path TEXT NOT NULL DEFAULT '',
			category            TEXT NOT NULL DEFAULT '',
			client              TEXT NOT NULL DEFAULT '',
			project_date        TEXT NOT NULL DEFAULT '',
			status              TEXT NOT NULL DEFAULT 'published',
			featured            BOOLEAN NOT NULL DEFAULT false,
			sort_order          INT NOT NULL DEFAULT 0,
			created_at          TIMESTAMPTZ NOT NULL,
			updated_at          TIMESTAMPTZ NOT NULL
		);
	`)
	return err
}

func (p *Postgres) GetProfile(ctx context.Context) (*Profile, error) {
	query := `
		SELECT id, name, title, bio, email, phone, location, website,
			social_links, skills, services, updated_at
		FROM profiles
		WHERE id = 1
	`

	var prof Profile
	err := p.pool.QueryRow(ctx, query).Scan(
		&prof.ID,
		&prof.Name,
		&prof.Title,
		&prof.Bio,
		&prof.Email,
		&prof.Phone,
		&prof.Location,
		&prof.Website,
		&prof.SocialLinks,
		&prof.Skills,
		&prof.Services,
		&prof.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	return &prof, nil
}

func (p *Postgres) UpsertProfile(ctx context.Context, patch ProfilePatch) (*Profile, bool, error) {
	// Read-merge-write keeps the shallow merge semantics identical
	// across backends. Single admin, so the race window is accepted.
	created := false
	prof, err := p.GetProfile(ctx)
	if err != nil {
		if !errors.Is(err, ErrProfileNotFound) {
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

	query := `
		INSERT INTO profiles (
			id, name, title, bio, email, phone, location, website,
			social_links, skills, services, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			title = EXCLUDED.title,
			bio = EXCLUDED.bio,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			location = EXCLUDED.location,
			website = EXCLUDED.website,
			social_links = EXCLUDED.social_links,
			skills = EXCLUDED.skills,
			services = EXCLUDED.services,
			updated_at = EXCLUDED.updated_at
	`

	_, err = p.pool.Exec(ctx, query,
		prof.ID,
		prof.Name,
		prof.Title,
		prof.Bio,
		prof.Email,
		prof.Phone,
		prof.Location,
		prof.Website,
		prof.SocialLinks,
		prof.Skills,
		prof.Services,
		prof.UpdatedAt,
	)
	if err != nil {
		return nil, false, err
	}

	return prof, created, nil
}

func (p *Postgres) ListVideos(ctx context.Context, filter VideoFilter) ([]Video, error) {
	query := `
		SELECT id, title, description, video_url, video_type,
			thumbnail_url, thumbnail_file_path, category, client,
			project_date, status, featured, sort_order,
			created_at, updated_at
		FROM videos
	`
	args := []interface{}{}
	if filter.PublishedOnly {
		query += ` WHERE status = $1`
		args = append(args, StatusPublished)
	}
	query += ` ORDER BY featured DESC, sort_order ASC, created_at DESC`

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	videos := []Video{}
	for rows.Next() {
		var v Video
		if err := rows.Scan(
			&v.ID,
			&v.Title,
			&v.Description,
			&v.VideoURL,
			&v.VideoType,
			&v.ThumbnailURL,
			&v.ThumbnailFilePath,
			&v.Category,
			&v.Client,
			&v.ProjectDate,
			&v.Status,
			&v.Featured,
			&v.SortOrder,
			&v.CreatedAt,
			&v.UpdatedAt,
		); err != nil {
			return nil, err
		}
		videos = append(videos, v)
	}

	return videos, rows.Err()
}

func (p *Postgres) CreateVideo(ctx context.Context, fields VideoFields) (*Video, error) {
	now := time.Now().UTC()
	v := Video{
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

	query := `
		INSERT INTO videos (
			title, description, video_url, video_type,
			thumbnail_url, thumbnail_file_path, category, client,
			project_date, status, featured, sort_order,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`

	err := p.pool.QueryRow(ctx, query,
		v.Title,
		v.Description,
		v.VideoURL,
		v.VideoType,
		v.ThumbnailURL,
		v.ThumbnailFilePath,
		v.Category,
		v.Client,
		v.ProjectDate,
		v.Status,
		v.Featured,
		v.SortOrder,
		v.CreatedAt,
		v.UpdatedAt,
	).Scan(&v.ID)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

func (p *Postgres) UpdateVideo(ctx context.Context, id int, patch VideoPatch) (*Video, error) {
	v, err := p.getVideo(ctx, id)
	if err != nil {
		return nil, err
	}

	applyVideoPatch(v, patch, time.Now().UTC())

	query := `
		UPDATE videos SET
			title = $2, description = $3, video_url = $4,
			video_type = $5, thumbnail_url = $6,
			thumbnail_file_path = $7, category = $8, client = $9,
			project_date = $10, status = $11, featured = $12,
			sort_order = $13, updated_at = $14
		WHERE id = $1
	`

	tag, err := p.pool.Exec(ctx, query,
		v.ID,
		v.Title,
		v.Description,
		v.VideoURL,
		v.VideoType,
		v.ThumbnailURL,
		v.ThumbnailFilePath,
		v.Category,
		v.Client,
		v.ProjectDate,
		v.Status,
		v.Featured,
		v.SortOrder,
		v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrVideoNotFound
	}

	return v, nil
}

func (p *Postgres) DeleteVideo(ctx context.Context, id int) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrVideoNotFound
	}
	return nil
}

func (p *Postgres) getVideo(ctx context.Context, id int) (*Video, error) {
	query := `
		SELECT id, title, description, video_url, video_type,
			thumbnail_url, thumbnail_file_path, category, client,
			project_date, status, featured, sort_order,
			created_at, updated_at
		FROM videos
		WHERE id = $1
	`

	var v Video
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&v.ID,
		&v.Title,
		&v.Description,
		&v.VideoURL,
		&v.VideoType,
		&v.ThumbnailURL,
		&v.ThumbnailFilePath,
		&v.Category,
		&v.Client,
		&v.ProjectDate,
		&v.Status,
		&v.Featured,
		&v.SortOrder,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	return &v, nil
}
