package youtube

import (
	"context"
	"errors"
	"fmt"

	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/entity"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/profile"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/catalog"
	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"
)

const (
	musicCategoryID = "10"
	DefaultLimit    = 10
	MaxLimit        = 50
)

var ErrNotConfigured = errors.New("youtube API key not configured")

type IYouTube interface {
	catalog.Provider
	Available() bool
	Search(ctx context.Context, query string, limit int) ([]catalog.Track, error)
	PlaylistTracks(ctx context.Context, playlistID string, limit int) ([]catalog.Track, error)
}

type youtubeClient struct {
	svc   *yt.Service
	table *profile.Table
}

// New builds the client. Without an API key the client stays usable but
// every call returns ErrNotConfigured.
func New(ctx context.Context, apiKey string, table *profile.Table, opts ...option.ClientOption) (IYouTube, error) {
	c := &youtubeClient{table: table}
	if apiKey == "" {
		return c, nil
	}

	svc, err := yt.NewService(ctx, append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}
	c.svc = svc
	return c, nil
}

func (c *youtubeClient) Name() string { return "youtube" }

func (c *youtubeClient) Available() bool { return c.svc != nil }

func clampLimit(limit int) int64 {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return int64(limit)
}

func (c *youtubeClient) Search(ctx context.Context, query string, limit int) ([]catalog.Track, error) {
	if c.svc == nil {
		return nil, ErrNotConfigured
	}

	res, err := c.svc.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		VideoCategoryId(musicCategoryID).
		MaxResults(clampLimit(limit)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("youtube search: %w", err)
	}

	tracks := make([]catalog.Track, 0, len(res.Items))
	for _, item := range res.Items {
		if item.Id == nil || item.Snippet == nil {
			continue
		}
		tracks = append(tracks, catalog.Track{
			ID:        item.Id.VideoId,
			Title:     item.Snippet.Title,
			Artist:    item.Snippet.ChannelTitle,
			URL:       watchURL(item.Id.VideoId),
			Thumbnail: thumbnail(item.Snippet.Thumbnails),
		})
	}
	return tracks, nil
}

func (c *youtubeClient) PlaylistTracks(ctx context.Context, playlistID string, limit int) ([]catalog.Track, error) {
	if c.svc == nil {
		return nil, ErrNotConfigured
	}

	res, err := c.svc.PlaylistItems.List([]string{"snippet"}).
		PlaylistId(playlistID).
		MaxResults(clampLimit(limit)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("youtube playlist %s: %w", playlistID, err)
	}

	tracks := make([]catalog.Track, 0, len(res.Items))
	for _, item := range res.Items {
		s := item.Snippet
		if s == nil || s.ResourceId == nil {
			continue
		}
		tracks = append(tracks, catalog.Track{
			ID:        s.ResourceId.VideoId,
			Title:     s.Title,
			Artist:    s.VideoOwnerChannelTitle,
			URL:       watchURL(s.ResourceId.VideoId),
			Thumbnail: thumbnail(s.Thumbnails),
		})
	}
	return tracks, nil
}

func (c *youtubeClient) GetRecommendations(ctx context.Context, category entity.Category) (catalog.Recommendation, error) {
	rec := catalog.Base(c.table, c.Name(), category)

	query := "relaxing music playlist"
	if p, ok := c.table.Lookup(category); ok {
		query = p.Catalog.SearchQuery
	}

	tracks, err := c.Search(ctx, query, DefaultLimit)
	if err != nil {
		return catalog.Recommendation{}, err
	}
	if len(tracks) == 0 {
		return catalog.Recommendation{}, fmt.Errorf("youtube search %q returned nothing", query)
	}

	rec.Tracks = tracks
	rec.PlaylistURL = catalog.SearchURL(query)
	return rec, nil
}

func watchURL(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}

func thumbnail(t *yt.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	for _, th := range []*yt.Thumbnail{t.Medium, t.High, t.Default} {
		if th != nil && th.Url != "" {
			return th.Url
		}
	}
	return ""
}
