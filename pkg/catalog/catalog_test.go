package catalog

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/entity"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/profile"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type flakyProvider struct {
	name  string
	err   error
	calls int
}

func (f *flakyProvider) Name() string { return f.name }

func (f *flakyProvider) GetRecommendations(_ context.Context, c entity.Category) (Recommendation, error) {
	f.calls++
	if f.err != nil {
		return Recommendation{}, f.err
	}
	return Recommendation{Provider: f.name, Emotion: c, Tracks: []Track{{Title: "remote"}}}, nil
}

type memStore struct {
	mu   sync.Mutex
	data map[string]string
	sets int
}

func (m *memStore) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return "", errors.New("miss")
	}
	return v, nil
}

func (m *memStore) Set(_ context.Context, key, value string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		m.data = map[string]string{}
	}
	m.data[key] = value
	m.sets++
	return nil
}

func TestSplitTrack(t *testing.T) {
	t.Parallel()

	title, artist := SplitTrack("September - Earth, Wind & Fire")
	assert.Equal(t, "September", title)
	assert.Equal(t, "Earth, Wind & Fire", artist)

	title, artist = SplitTrack("Untitled")
	assert.Equal(t, "Untitled", title)
	assert.Empty(t, artist)
}

func TestStatic(t *testing.T) {
	t.Parallel()

	s := NewStatic(profile.Default())

	rec, err := s.GetRecommendations(context.Background(), entity.CategoryHappy)
	require.NoError(t, err)
	assert.Equal(t, "static", rec.Provider)
	assert.Equal(t, "Happy & Uplifting Music", rec.PlaylistName)
	require.NotEmpty(t, rec.Tracks)
	assert.Equal(t, "Happy", rec.Tracks[0].Title)
	assert.Equal(t, "Pharrell Williams", rec.Tracks[0].Artist)
	assert.Contains(t, rec.Tracks[0].URL, "search_query=Happy+-+Pharrell+Williams")
	assert.Contains(t, rec.Genres, "Pop")

	rec, err = s.GetRecommendations(context.Background(), entity.Category("bored"))
	require.NoError(t, err)
	assert.Equal(t, "General Music", rec.PlaylistName)
	assert.Len(t, rec.Tracks, len(profile.Default().FallbackMusic().Tracks))
}

func TestResilient_FallsBackAndOpens(t *testing.T) {
	t.Parallel()

	primary := &flakyProvider{name: "youtube", err: errors.New("quota")}
	cfg := DefaultBreakerConfig()
	cfg.FailureThreshold = 2
	r := NewResilient(primary, NewStatic(profile.Default()), cfg, quietLogger())

	for i := 0; i < 4; i++ {
		rec, err := r.GetRecommendations(context.Background(), entity.CategorySad)
		require.NoError(t, err)
		assert.Equal(t, "static", rec.Provider)
	}

	// The breaker opened after two failures and shields the primary.
	assert.Equal(t, 2, primary.calls)
	assert.Equal(t, "open", r.State())
}

func TestResilient_NoFallback(t *testing.T) {
	t.Parallel()

	r := NewResilient(&flakyProvider{name: "spotify", err: errors.New("down")}, nil, DefaultBreakerConfig(), quietLogger())
	_, err := r.GetRecommendations(context.Background(), entity.CategorySad)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestCached(t *testing.T) {
	t.Parallel()

	primary := &flakyProvider{name: "youtube"}
	store := &memStore{}
	c := NewCached(primary, store, time.Minute, quietLogger())

	for i := 0; i < 3; i++ {
		rec, err := c.GetRecommendations(context.Background(), entity.CategoryCalm)
		require.NoError(t, err)
		assert.Equal(t, "remote", rec.Tracks[0].Title)
		assert.Equal(t, entity.CategoryCalm, rec.Emotion)
	}
	assert.Equal(t, 1, primary.calls)
	assert.Contains(t, store.data, "catalog:youtube:calm")
}

func TestCached_SkipsFallbackAnswers(t *testing.T) {
	t.Parallel()

	r := NewResilient(&flakyProvider{name: "youtube", err: errors.New("quota")}, NewStatic(profile.Default()), DefaultBreakerConfig(), quietLogger())
	store := &memStore{}
	c := NewCached(r, store, time.Minute, quietLogger())

	rec, err := c.GetRecommendations(context.Background(), entity.CategoryCalm)
	require.NoError(t, err)
	assert.Equal(t, "static", rec.Provider)
	assert.Zero(t, store.sets)
}
