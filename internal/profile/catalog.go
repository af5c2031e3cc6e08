package profile

import "github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/entity"

const (
	spotifyHappyHits  = "37i9dQZF1DXbpR3uCBnjpF"
	spotifySadSongs   = "37i9dQZF1DWSqBruwoIXkA"
	spotifyChillFocus = "37i9dQZF1DX4PP3DA4J0N8"
)

var catalogProfiles = map[entity.Category]Catalog{
	entity.CategoryHappy: {
		PlaylistName:      "Happy & Uplifting Music",
		Description:       "Energetic and joyful tracks to boost your mood",
		SearchQuery:       "happy uplifting music playlist",
		SpotifyPlaylistID: spotifyHappyHits,
	},
	entity.CategorySad: {
		PlaylistName:      "Emotional & Reflective Music",
		Description:       "Melancholic and introspective songs for processing emotions",
		SearchQuery:       "sad emotional music playlist",
		SpotifyPlaylistID: spotifySadSongs,
	},
	entity.CategoryStressed: {
		PlaylistName:      "Calming & Stress Relief Music",
		Description:       "Relaxing music to reduce stress and anxiety",
		SearchQuery:       "stress relief calming music playlist",
		SpotifyPlaylistID: spotifyChillFocus,
	},
	entity.CategoryNeutral: {
		PlaylistName:      "Chill & Background Music",
		Description:       "Easy listening music for everyday moments",
		SearchQuery:       "chill background music playlist",
		SpotifyPlaylistID: spotifyChillFocus,
	},
	entity.CategoryExcited: {
		PlaylistName:      "Energetic & Motivational Music",
		Description:       "High-energy tracks to keep you motivated and pumped up",
		SearchQuery:       "energetic motivational music playlist",
		SpotifyPlaylistID: spotifyHappyHits,
	},
	entity.CategoryCalm: {
		PlaylistName:      "Peaceful & Ambient Music",
		Description:       "Soft and tranquil music for relaxation and peace",
		SearchQuery:       "peaceful ambient music playlist",
		SpotifyPlaylistID: spotifyChillFocus,
	},
	entity.CategoryFocused: {
		PlaylistName:      "Concentration & Study Music",
		Description:       "Instrumental music to help you focus and concentrate",
		SearchQuery:       "concentration study music playlist",
		SpotifyPlaylistID: spotifyChillFocus,
	},
	entity.CategoryTired: {
		PlaylistName:      "Sleep & Relaxation Music",
		Description:       "Gentle music for rest and peaceful sleep",
		SearchQuery:       "sleep relaxation music playlist",
		SpotifyPlaylistID: spotifyChillFocus,
	},
}
