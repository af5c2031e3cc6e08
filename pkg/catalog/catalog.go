// Package catalog resolves an emotion category to concrete tracks from a
// music provider.
package catalog

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/entity"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/profile"
)

var ErrUnavailable = errors.New("music catalog unavailable")

type Track struct {
	ID        string `json:"id,omitempty"`
	Title     string `json:"title"`
	Artist    string `json:"artist,omitempty"`
	URL       string `json:"url,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

type Recommendation struct {
	Provider        string          `json:"provider"`
	Emotion         entity.Category `json:"emotion"`
	PlaylistName    string          `json:"playlist_name"`
	Description     string          `json:"description"`
	PlaylistURL     string          `json:"playlist_url,omitempty"`
	Tracks          []Track         `json:"tracks"`
	Genres          []string        `json:"genres"`
	Characteristics string          `json:"characteristics"`
}

type Provider interface {
	Name() string
	GetRecommendations(ctx context.Context, category entity.Category) (Recommendation, error)
}

// Base fills the provider-independent part of a recommendation from the
// profile table. Unknown categories use the fallback music profile.
func Base(table *profile.Table, provider string, category entity.Category) Recommendation {
	rec := Recommendation{Provider: provider, Emotion: category}
	p, ok := table.Lookup(category)
	if !ok {
		m := table.FallbackMusic()
		rec.Genres, rec.Characteristics = m.Genres, m.Characteristics
		rec.PlaylistName = "General Music"
		rec.Description = m.Reason
		return rec
	}
	rec.PlaylistName = p.Catalog.PlaylistName
	rec.Description = p.Catalog.Description
	rec.Genres = p.Music.Genres
	rec.Characteristics = p.Music.Characteristics
	return rec
}

// SplitTrack turns "Title - Artist" into its parts.
func SplitTrack(s string) (title, artist string) {
	if i := strings.Index(s, " - "); i >= 0 {
		return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+3:])
	}
	return strings.TrimSpace(s), ""
}

func SearchURL(query string) string {
	return "https://www.youtube.com/results?search_query=" + url.QueryEscape(query)
}

// Static serves the built-in track lists with YouTube search links.
type Static struct {
	table *profile.Table
}

func NewStatic(table *profile.Table) *Static {
	return &Static{table: table}
}

func (s *Static) Name() string { return "static" }

func (s *Static) GetRecommendations(_ context.Context, category entity.Category) (Recommendation, error) {
	rec := Base(s.table, s.Name(), category)

	tracks := s.table.FallbackMusic().Tracks
	if p, ok := s.table.Lookup(category); ok {
		tracks = p.Music.Tracks
		rec.PlaylistURL = SearchURL(p.Catalog.SearchQuery)
	}

	rec.Tracks = make([]Track, 0, len(tracks))
	for _, t := range tracks {
		title, artist := SplitTrack(t)
		rec.Tracks = append(rec.Tracks, Track{Title: title, Artist: artist, URL: SearchURL(t)})
	}
	return rec, nil
}
