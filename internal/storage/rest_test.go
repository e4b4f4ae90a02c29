package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDataAPI emulates the hosted PostgREST-style endpoint the rest
// backend talks to.
func fakeDataAPI(t *testing.T) (*httptest.Server, *[]Video) {
	t.Helper()
	videos := &[]Video{}

	mux := http.NewServeMux()
	mux.HandleFunc("/profiles", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode([]Profile{})
		case http.MethodPost:
			var rows []Profile
			_ = json.NewDecoder(r.Body).Decode(&rows)
			_ = json.NewEncoder(w).Encode(rows)
		}
	})
	mux.HandleFunc("/videos", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodGet:
			out := *videos
			if r.URL.Query().Get("status") == "eq.published" {
				out = nil
				for _, v := range *videos {
					if v.Status == StatusPublished {
						out = append(out, v)
					}
				}
			}
			if out == nil {
				out = []Video{}
			}
			_ = json.NewEncoder(w).Encode(out)
		case http.MethodPost:
			var row map[string]interface{}
			_ = json.NewDecoder(r.Body).Decode(&row)
			v := Video{ID: len(*videos) + 1, Title: row["title"].(string)}
			if s, ok := row["status"].(string); ok {
				v.Status = s
			}
			*videos = append(*videos, v)
			_ = json.NewEncoder(w).Encode([]Video{v})
		case http.MethodPatch, http.MethodDelete:
			// No row matches on the empty/fixed fixture.
			_ = json.NewEncoder(w).Encode([]Video{})
		}
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, videos
}

func TestRESTGetProfileNotFound(t *testing.T) {
	srv, _ := fakeDataAPI(t)
	store := NewREST(srv.URL, "service-key")

	_, err := store.GetProfile(context.Background())
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestRESTCreateAndListVideos(t *testing.T) {
	srv, _ := fakeDataAPI(t)
	store := NewREST(srv.URL, "")

	v, err := store.CreateVideo(context.Background(), VideoFields{
		Title:  "Reel",
		Status: StatusPublished,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, v.ID)

	videos, err := store.ListVideos(context.Background(), VideoFilter{PublishedOnly: true})
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "Reel", videos[0].Title)
}

func TestRESTUpdateAndDeleteMissingVideo(t *testing.T) {
	srv, _ := fakeDataAPI(t)
	store := NewREST(srv.URL, "")

	_, err := store.UpdateVideo(context.Background(), 99, VideoPatch{Title: strPtr("x")})
	assert.ErrorIs(t, err, ErrVideoNotFound)

	assert.ErrorIs(t, store.DeleteVideo(context.Background(), 99), ErrVideoNotFound)
}

func TestRESTSurfacesServerErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	store := NewREST(srv.URL, "")
	_, err := store.ListVideos(context.Background(), VideoFilter{})
	require.Error(t, err)
	assert.False(t, IsNotFound(err))
}
