// Package profile holds the static knowledge every recommender reads:
// one entry per emotion category covering music, study subjects and the
// external catalog hints used by the YouTube and Spotify providers.
package profile

import (
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/entity"
)

type Music struct {
	Genres              []string
	Tracks              []string
	Characteristics     string
	PrimaryGenres       []string
	SecondaryGenres     []string
	TempoRange          string
	EnergyLevel         string
	MoodCharacteristics []string
	Instruments         []string
	RecommendedFor      []string
	ArtistKeywords      []string
	Reason              string
	StudyBenefits       []string
}

type Subjects struct {
	Primary        []string
	Secondary      []string
	Reasoning      string
	Duration       string
	Tips           []string
	BreakFrequency string
	FocusAreas     []string
}

type Catalog struct {
	PlaylistName      string
	Description       string
	SearchQuery       string
	SpotifyPlaylistID string
}

type Profile struct {
	Category entity.Category
	Music    Music
	// Subjects is nil for categories without a dedicated study profile.
	Subjects *Subjects
	Catalog  Catalog
}

type TimePeriod string

const (
	PeriodMorning   TimePeriod = "morning"
	PeriodAfternoon TimePeriod = "afternoon"
	PeriodEvening   TimePeriod = "evening"
	PeriodNight     TimePeriod = "night"
)

// PeriodOf buckets an hour of day: morning 6-11, afternoon 12-16,
// evening 17-20, night otherwise.
func PeriodOf(hour int) TimePeriod {
	switch {
	case hour >= 6 && hour < 12:
		return PeriodMorning
	case hour >= 12 && hour < 17:
		return PeriodAfternoon
	case hour >= 17 && hour < 21:
		return PeriodEvening
	default:
		return PeriodNight
	}
}

const DefaultBranch = "computer_science"

type Table struct {
	profiles         map[entity.Category]Profile
	fallbackMusic    Music
	fallbackSubjects Subjects
	timeSubjects     map[TimePeriod][]string
	branchSubjects   map[string][]string
}

// Default returns the built-in knowledge table.
func Default() *Table {
	profiles := make(map[entity.Category]Profile, len(entity.Categories))
	for _, c := range entity.Categories {
		p := Profile{
			Category: c,
			Music:    musicProfiles[c],
			Catalog:  catalogProfiles[c],
		}
		if s, ok := subjectProfiles[c]; ok {
			p.Subjects = &s
		}
		profiles[c] = p
	}

	return &Table{
		profiles:         profiles,
		fallbackMusic:    fallbackMusic,
		fallbackSubjects: fallbackSubjects,
		timeSubjects:     timeSubjects,
		branchSubjects:   branchSubjects,
	}
}

func (t *Table) Lookup(c entity.Category) (Profile, bool) {
	p, ok := t.profiles[c]
	return p, ok
}

func (t *Table) FallbackMusic() Music {
	return t.fallbackMusic
}

func (t *Table) FallbackSubjects() Subjects {
	return t.fallbackSubjects
}

func (t *Table) TimeSubjects(p TimePeriod) []string {
	return t.timeSubjects[p]
}

// BranchSubjects returns nil for an unknown branch.
func (t *Table) BranchSubjects(branch string) []string {
	return t.branchSubjects[branch]
}

func (t *Table) Branches() []string {
	out := make([]string, 0, len(t.branchSubjects))
	for b := range t.branchSubjects {
		out = append(out, b)
	}
	return out
}
