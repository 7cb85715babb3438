package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActivityOutfitID is the sentinel OutfitID marking a log that records a
// free-text activity instead of a worn outfit.
const ActivityOutfitID = "activity"

// ActivityOther is the Activity value under which CustomActivity applies.
const ActivityOther = "other"

// OutfitLog records that an outfit (or a free-text activity) was worn or
// planned on a given calendar date. It is the only entity the engine owns.
type OutfitLog struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	OutfitID  string    `json:"outfit_id"` // ActivityOutfitID for activity-only logs
	Date      time.Time `json:"date"`
	TimeOfDay TimeOfDay `json:"time_of_day"`

	Activity       string `json:"activity,omitempty"`
	CustomActivity string `json:"custom_activity,omitempty"`

	// Free-form annotations, never interpreted by the engine.
	Notes            string   `json:"notes,omitempty"`
	WeatherCondition string   `json:"weather_condition,omitempty"`
	Temperature      *float64 `json:"temperature,omitempty"`

	AskForAISuggestion   bool        `json:"ask_for_ai_suggestion"`
	AISuggested          bool        `json:"ai_suggested"`
	AISuggestionFeedback *AIFeedback `json:"ai_suggestion_feedback,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// IsActivity reports whether the log records an activity rather than an outfit.
func (l *OutfitLog) IsActivity() bool {
	return l.OutfitID == ActivityOutfitID
}

// EffectiveActivity returns the occasion label of the log: the Activity field,
// substituting CustomActivity when Activity is "other". Empty when the log
// carries no activity.
func (l *OutfitLog) EffectiveActivity() string {
	if l.Activity == ActivityOther && l.CustomActivity != "" {
		return l.CustomActivity
	}
	return l.Activity
}
