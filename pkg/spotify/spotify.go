package spotify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/entity"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/profile"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/catalog"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	DefaultTokenURL = "https://accounts.spotify.com/api/token"
	DefaultAPIURL   = "https://api.spotify.com/v1"
	trackLimit      = 20
)

var ErrNotConfigured = errors.New("spotify credentials not configured")

type Config struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	APIURL       string
}

type playlistTracks struct {
	Items []struct {
		Track *struct {
			ID      string `json:"id"`
			Name    string `json:"name"`
			Artists []struct {
				Name string `json:"name"`
			} `json:"artists"`
			ExternalURLs struct {
				Spotify string `json:"spotify"`
			} `json:"external_urls"`
			Album struct {
				Images []struct {
					URL string `json:"url"`
				} `json:"images"`
			} `json:"album"`
		} `json:"track"`
	} `json:"items"`
}

// Client reads playlist tracks from the Spotify Web API using the client
// credentials grant.
type Client struct {
	http   *http.Client
	apiURL string
	table  *profile.Table
}

func New(ctx context.Context, cfg Config, table *profile.Table) (*Client, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, ErrNotConfigured
	}
	if cfg.TokenURL == "" {
		cfg.TokenURL = DefaultTokenURL
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}

	cc := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
	}
	return &Client{http: cc.Client(ctx), apiURL: cfg.APIURL, table: table}, nil
}

func (c *Client) Name() string { return "spotify" }

func (c *Client) PlaylistTracks(ctx context.Context, playlistID string) ([]catalog.Track, error) {
	endpoint := fmt.Sprintf("%s/playlists/%s/tracks?%s", c.apiURL, url.PathEscape(playlistID), url.Values{
		"limit":  {fmt.Sprint(trackLimit)},
		"fields": {"items(track(id,name,artists(name),external_urls,album(images)))"},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("spotify playlist %s: %w", playlistID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("spotify playlist %s: unexpected status %d", playlistID, resp.StatusCode)
	}

	var body playlistTracks
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode spotify playlist: %w", err)
	}

	tracks := make([]catalog.Track, 0, len(body.Items))
	for _, item := range body.Items {
		t := item.Track
		if t == nil {
			continue
		}
		track := catalog.Track{ID: t.ID, Title: t.Name, URL: t.ExternalURLs.Spotify}
		if len(t.Artists) > 0 {
			track.Artist = t.Artists[0].Name
		}
		if len(t.Album.Images) > 0 {
			track.Thumbnail = t.Album.Images[0].URL
		}
		tracks = append(tracks, track)
	}
	return tracks, nil
}

func (c *Client) GetRecommendations(ctx context.Context, category entity.Category) (catalog.Recommendation, error) {
	rec := catalog.Base(c.table, c.Name(), category)

	p, ok := c.table.Lookup(category)
	if !ok || p.Catalog.SpotifyPlaylistID == "" {
		return catalog.Recommendation{}, fmt.Errorf("no spotify playlist for %q", category)
	}

	tracks, err := c.PlaylistTracks(ctx, p.Catalog.SpotifyPlaylistID)
	if err != nil {
		return catalog.Recommendation{}, err
	}

	rec.Tracks = tracks
	rec.PlaylistURL = "https://open.spotify.com/playlist/" + p.Catalog.SpotifyPlaylistID
	return rec, nil
}
