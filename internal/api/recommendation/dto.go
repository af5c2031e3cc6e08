package recommendation

import "github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/catalog"

const (
	DefaultTrackCount    = 5
	MaxTrackCount        = 50
	DefaultPlaylistMins  = 30
	TransitionStageSize  = 3
	DirectTransitionSize = 8
	MinPlaylistTracks    = 8

	// AverageSongMinutes sizes mood playlists.
	AverageSongMinutes = 3.5
)

type MusicProfile struct {
	TempoRange          string   `json:"tempo_range"`
	EnergyLevel         string   `json:"energy_level"`
	PrimaryGenres       []string `json:"primary_genres"`
	SecondaryGenres     []string `json:"secondary_genres"`
	MoodCharacteristics []string `json:"mood_characteristics"`
	Instruments         []string `json:"instruments"`
	RecommendedFor      []string `json:"recommended_for"`
}

type MusicRecommendation struct {
	Emotion              string       `json:"emotion"`
	Tracks               []string     `json:"tracks"`
	Genres               []string     `json:"genres"`
	Characteristics      string       `json:"characteristics"`
	MusicProfile         MusicProfile `json:"music_profile"`
	RecommendationReason string       `json:"recommendation_reason"`
}

type MoodPlaylist struct {
	PlaylistName    string   `json:"playlist_name"`
	DurationMinutes int      `json:"duration_minutes"`
	TotalTracks     int      `json:"total_tracks"`
	Tracks          []string `json:"tracks"`
	MoodDescription string   `json:"mood_description"`
	StudyBenefits   []string `json:"study_benefits"`
}

type TransitionStage struct {
	Emotion string   `json:"emotion"`
	Tracks  []string `json:"tracks"`
}

// TransitionPlaylist is either a staged transition or, for pairs without a
// known path, a Direct recommendation for the target.
type TransitionPlaylist struct {
	Transition  string               `json:"transition"`
	Stages      []TransitionStage    `json:"stages,omitempty"`
	Playlist    []string             `json:"playlist,omitempty"`
	Description string               `json:"description,omitempty"`
	Direct      *MusicRecommendation `json:"direct,omitempty"`
}

type SubjectSuggestion struct {
	PrimaryRecommendation string   `json:"primary_recommendation"`
	SecondaryOptions      []string `json:"secondary_options"`
	Emotion               string   `json:"emotion"`
	Reasoning             string   `json:"reasoning"`
	TimeBasedSuggestion   *string  `json:"time_based_suggestion,omitempty"`
	BranchSpecific        []string `json:"branch_specific,omitempty"`
	StudyDuration         string   `json:"study_duration"`
	StudyTips             []string `json:"study_tips"`
	BreakFrequency        string   `json:"break_frequency"`
}

type StudyDay struct {
	Day           string `json:"day"`
	MainSubject   string `json:"main_subject"`
	BranchSubject string `json:"branch_subject"`
	Duration      string `json:"duration"`
	FocusArea     string `json:"focus_area"`
}

type WeeklyPlan struct {
	WeekPlan        []StudyDay `json:"week_plan"`
	DominantEmotion string     `json:"dominant_emotion"`
	GeneralAdvice   string     `json:"general_advice"`
	SuccessTips     []string   `json:"success_tips"`
}

type CatalogStatus struct {
	Provider     string `json:"provider"`
	YouTube      bool   `json:"youtube_available"`
	BreakerState string `json:"breaker_state,omitempty"`
}

type MusicQuery struct {
	Count int `query:"count" validate:"omitempty,min=1,max=50"`
}

type MoodPlaylistQuery struct {
	Minutes int `query:"minutes" validate:"omitempty,min=1,max=600"`
}

type TransitionQuery struct {
	From string `query:"from" validate:"required"`
	To   string `query:"to" validate:"required"`
}

type SubjectQuery struct {
	Branch string `query:"branch" validate:"omitempty,max=64"`
}

type SearchQuery struct {
	Q     string `query:"q" validate:"required,max=200"`
	Limit int    `query:"limit" validate:"omitempty,min=1,max=50"`
}

type MusicResponse struct {
	Data MusicRecommendation `json:"data"`
}

type CatalogResponse struct {
	Data catalog.Recommendation `json:"data"`
}

type TracksResponse struct {
	Data []catalog.Track `json:"data"`
}
