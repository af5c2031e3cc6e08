package spotify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/entity"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeSpotify(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		id, secret, ok := r.BasicAuth()
		if !ok || id != "id" || secret != "secret" {
			http.Error(w, "bad client", http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok","token_type":"bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/v1/playlists/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if r.URL.Path != "/v1/playlists/37i9dQZF1DWSqBruwoIXkA/tracks" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[
			{"track":{"id":"t1","name":"Someone Like You","artists":[{"name":"Adele"}],"external_urls":{"spotify":"https://open.spotify.com/track/t1"},"album":{"images":[{"url":"https://img/t1"}]}}},
			{"track":null}
		]}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestGetRecommendations(t *testing.T) {
	t.Parallel()

	srv := fakeSpotify(t)
	c, err := New(context.Background(), Config{
		ClientID:     "id",
		ClientSecret: "secret",
		TokenURL:     srv.URL + "/token",
		APIURL:       srv.URL + "/v1",
	}, profile.Default())
	require.NoError(t, err)

	rec, err := c.GetRecommendations(context.Background(), entity.CategorySad)
	require.NoError(t, err)
	assert.Equal(t, "spotify", rec.Provider)
	assert.Equal(t, "https://open.spotify.com/playlist/37i9dQZF1DWSqBruwoIXkA", rec.PlaylistURL)
	require.Len(t, rec.Tracks, 1)
	assert.Equal(t, "Someone Like You", rec.Tracks[0].Title)
	assert.Equal(t, "Adele", rec.Tracks[0].Artist)
	assert.Equal(t, "https://img/t1", rec.Tracks[0].Thumbnail)

	_, err = c.GetRecommendations(context.Background(), entity.CategoryHappy)
	assert.Error(t, err)
}

func TestNew_RequiresCredentials(t *testing.T) {
	t.Parallel()

	_, err := New(context.Background(), Config{ClientID: "id"}, profile.Default())
	assert.ErrorIs(t, err, ErrNotConfigured)
}
