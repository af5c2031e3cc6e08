package timelineRepository_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/database/sqlite"
	timelineRepository "github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/timeline/repository"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/entity"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func sampleEntries() []entity.TimelineEntry {
	at := time.Date(2024, 6, 10, 14, 30, 5, 0, time.UTC)
	return []entity.TimelineEntry{
		entity.NewTimelineEntry("01HZX0000000000000000000A1", entity.CategoryHappy, 0.91, at, map[string]interface{}{"strategy": "deep"}),
		entity.NewTimelineEntry("01HZX0000000000000000000A2", entity.CategoryStressed, 0.42, at.Add(time.Minute), nil),
		entity.NewTimelineEntry("01HZX0000000000000000000A3", entity.CategoryCalm, 0.6, at.Add(2*time.Minute), nil),
	}
}

func exerciseRepository(t *testing.T, repo timelineRepository.Repository) {
	t.Helper()
	ctx := context.Background()

	empty, err := repo.ReadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	want := sampleEntries()
	for _, e := range want {
		require.NoError(t, repo.Append(ctx, e))
	}

	got, err := repo.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].Emotion, got[i].Emotion)
		assert.InDelta(t, want[i].Confidence, got[i].Confidence, 1e-9)
		assert.True(t, want[i].Timestamp.Equal(got[i].Timestamp))
		assert.Equal(t, want[i].Date, got[i].Date)
		assert.Equal(t, want[i].Time, got[i].Time)
		assert.Equal(t, want[i].Hour, got[i].Hour)
		assert.Equal(t, want[i].DayOfWeek, got[i].DayOfWeek)
	}
	assert.Equal(t, "deep", got[0].Extra["strategy"])
	assert.Nil(t, got[1].Extra)

	require.NoError(t, repo.Clear(ctx))
	require.NoError(t, repo.Clear(ctx))

	after, err := repo.ReadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, after)
}

func TestFileRepository(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "emotion_data.json")
	repo, err := timelineRepository.NewFile(path, quietLogger())
	require.NoError(t, err)
	assert.Equal(t, timelineRepository.BackendFile, repo.Backend())

	_, err = os.Stat(path)
	require.NoError(t, err)

	exerciseRepository(t, repo)
}

func TestFileRepositoryKeepsExistingData(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "emotion_data.json")
	first, err := timelineRepository.NewFile(path, quietLogger())
	require.NoError(t, err)
	require.NoError(t, first.Append(context.Background(), sampleEntries()[0]))

	reopened, err := timelineRepository.NewFile(path, quietLogger())
	require.NoError(t, err)

	got, err := reopened.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestFileRepositoryRejectsCorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "emotion_data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	repo, err := timelineRepository.NewFile(path, quietLogger())
	require.NoError(t, err)

	_, err = repo.ReadAll(context.Background())
	assert.Error(t, err)
	assert.Error(t, repo.Append(context.Background(), sampleEntries()[0]))
}

func TestSQLiteRepository(t *testing.T) {
	t.Parallel()

	db, err := sqlite.New(filepath.Join(t.TempDir(), "timeline.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, timelineRepository.Migrate(db.DB, timelineRepository.BackendSQLite))
	// A second run finds nothing to do.
	require.NoError(t, timelineRepository.Migrate(db.DB, timelineRepository.BackendSQLite))

	repo := timelineRepository.NewSQL(db, timelineRepository.BackendSQLite, quietLogger())
	assert.Equal(t, timelineRepository.BackendSQLite, repo.Backend())

	exerciseRepository(t, repo)
}

func TestMigrateRejectsNonSQLBackend(t *testing.T) {
	t.Parallel()

	db, err := sqlite.New(filepath.Join(t.TempDir(), "timeline.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	assert.Error(t, timelineRepository.Migrate(db.DB, timelineRepository.BackendRedis))
}
