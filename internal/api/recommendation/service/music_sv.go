package recommendationService

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/recommendation"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/entity"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/profile"
)

const unknownEmotion = "unknown"

// transitions lists the intermediate moods for regulated transitions.
var transitions = map[[2]entity.Category][]entity.Category{
	{entity.CategoryStressed, entity.CategoryNeutral}: {entity.CategoryStressed, entity.CategoryNeutral},
	{entity.CategorySad, entity.CategoryNeutral}:      {entity.CategorySad, entity.CategoryNeutral},
	{entity.CategorySad, entity.CategoryHappy}:        {entity.CategorySad, entity.CategoryNeutral, entity.CategoryHappy},
	{entity.CategoryStressed, entity.CategoryHappy}:   {entity.CategoryStressed, entity.CategoryNeutral, entity.CategoryHappy},
}

func (s *recommendationService) Recommend(category entity.Category, count int) recommendation.MusicRecommendation {
	if count <= 0 {
		count = recommendation.DefaultTrackCount
	}

	p, ok := s.table.Lookup(category)
	if !ok {
		m := s.table.FallbackMusic()
		return recommendation.MusicRecommendation{
			Emotion:              unknownEmotion,
			Tracks:               s.sample(m.Tracks, count),
			Genres:               m.Genres,
			Characteristics:      m.Characteristics,
			MusicProfile:         musicProfile(m),
			RecommendationReason: m.Reason,
		}
	}

	return recommendation.MusicRecommendation{
		Emotion:              string(category),
		Tracks:               s.selectTracks(p.Music, count),
		Genres:               p.Music.Genres,
		Characteristics:      p.Music.Characteristics,
		MusicProfile:         musicProfile(p.Music),
		RecommendationReason: p.Music.Reason,
	}
}

// selectTracks ranks tracks by score, keeps the best count that scored
// above zero and pads with a random sample of the rest.
func (s *recommendationService) selectTracks(m profile.Music, count int) []string {
	type scored struct {
		track string
		score float64
	}

	var ranked []scored
	for _, t := range m.Tracks {
		if sc := TrackScore(t, m); sc > 0 {
			ranked = append(ranked, scored{t, sc})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	if len(ranked) > count {
		ranked = ranked[:count]
	}
	selected := make([]string, 0, count)
	used := make(map[string]bool, len(ranked))
	for _, r := range ranked {
		selected = append(selected, r.track)
		used[r.track] = true
	}

	if len(selected) < count {
		var rest []string
		for _, t := range m.Tracks {
			if !used[t] {
				rest = append(rest, t)
			}
		}
		selected = append(selected, s.sample(rest, count-len(selected))...)
	}
	return selected
}

// TrackScore weighs how well a "Title - Artist" string matches a music
// profile: primary genre 0.4, secondary genre 0.2, artist keyword 0.3,
// mood 0.2 and instrument 0.1 per match.
func TrackScore(track string, m profile.Music) float64 {
	t := strings.ToLower(track)
	score := 0.0
	for _, g := range m.PrimaryGenres {
		if strings.Contains(t, strings.ToLower(g)) {
			score += 0.4
		}
	}
	for _, g := range m.SecondaryGenres {
		if strings.Contains(t, strings.ToLower(g)) {
			score += 0.2
		}
	}
	for _, k := range m.ArtistKeywords {
		if strings.Contains(t, k) {
			score += 0.3
		}
	}
	for _, k := range m.MoodCharacteristics {
		if strings.Contains(t, k) {
			score += 0.2
		}
	}
	for _, k := range m.Instruments {
		if strings.Contains(t, k) {
			score += 0.1
		}
	}
	return score
}

func musicProfile(m profile.Music) recommendation.MusicProfile {
	return recommendation.MusicProfile{
		TempoRange:          m.TempoRange,
		EnergyLevel:         m.EnergyLevel,
		PrimaryGenres:       nonNil(m.PrimaryGenres),
		SecondaryGenres:     nonNil(m.SecondaryGenres),
		MoodCharacteristics: nonNil(m.MoodCharacteristics),
		Instruments:         nonNil(m.Instruments),
		RecommendedFor:      nonNil(m.RecommendedFor),
	}
}

func (s *recommendationService) MoodPlaylist(category entity.Category, minutes int) recommendation.MoodPlaylist {
	if minutes <= 0 {
		minutes = recommendation.DefaultPlaylistMins
	}
	songs := int(float64(minutes) / recommendation.AverageSongMinutes)
	if songs < recommendation.MinPlaylistTracks {
		songs = recommendation.MinPlaylistTracks
	}

	rec := s.Recommend(category, songs)

	benefits := s.table.FallbackMusic().StudyBenefits
	if p, ok := s.table.Lookup(category); ok && len(p.Music.StudyBenefits) > 0 {
		benefits = p.Music.StudyBenefits
	}

	return recommendation.MoodPlaylist{
		PlaylistName:    titleCase(string(category)) + " Study Session",
		DurationMinutes: minutes,
		TotalTracks:     len(rec.Tracks),
		Tracks:          rec.Tracks,
		MoodDescription: rec.Characteristics,
		StudyBenefits:   benefits,
	}
}

func (s *recommendationService) TransitionPlaylist(from, to entity.Category) recommendation.TransitionPlaylist {
	label := fmt.Sprintf("%s → %s", from, to)

	sequence, ok := transitions[[2]entity.Category{from, to}]
	if !ok {
		direct := s.Recommend(to, recommendation.DirectTransitionSize)
		return recommendation.TransitionPlaylist{Transition: label, Direct: &direct}
	}

	out := recommendation.TransitionPlaylist{
		Transition:  label,
		Description: fmt.Sprintf("Gradual transition from %s to %s mood", from, to),
	}
	for _, c := range sequence {
		tracks := s.Recommend(c, recommendation.TransitionStageSize).Tracks
		out.Stages = append(out.Stages, recommendation.TransitionStage{Emotion: string(c), Tracks: tracks})
		out.Playlist = append(out.Playlist, tracks...)
	}
	return out
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
