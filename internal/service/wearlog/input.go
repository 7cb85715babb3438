package wearlog

import (
	"time"

	"github.com/outfitly/wardrobe-backend/internal/domain"
)

// AddLogInput holds the parameters for creating an outfit log.
type AddLogInput struct {
	OutfitID  string
	Date      time.Time
	TimeOfDay domain.TimeOfDay

	Activity       string
	CustomActivity string

	Notes            string
	WeatherCondition string
	Temperature      *float64

	AskForAISuggestion bool
	AISuggested        bool
}

// Validate checks all fields and collects all errors.
func (i *AddLogInput) Validate() error {
	var errs []domain.FieldError

	if i.OutfitID == "" {
		errs = append(errs, domain.FieldError{Field: "outfit_id", Message: "required (use the activity sentinel for activity-only logs)"})
	}
	if i.OutfitID == domain.ActivityOutfitID && i.Activity == "" {
		errs = append(errs, domain.FieldError{Field: "activity", Message: "required for activity logs"})
	}
	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	if !i.TimeOfDay.IsValid() {
		errs = append(errs, domain.FieldError{Field: "time_of_day", Message: "must be MORNING, AFTERNOON, EVENING, NIGHT, or ALL_DAY"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateLogInput holds a partial update. Nil fields keep their prior value.
type UpdateLogInput struct {
	OutfitID  *string
	Date      *time.Time
	TimeOfDay *domain.TimeOfDay

	Activity       *string
	CustomActivity *string

	Notes            *string
	WeatherCondition *string
	Temperature      *float64

	AskForAISuggestion   *bool
	AISuggested          *bool
	AISuggestionFeedback *domain.AIFeedback
}

// Validate checks all provided fields and collects all errors.
func (i *UpdateLogInput) Validate() error {
	var errs []domain.FieldError

	if i.OutfitID != nil && *i.OutfitID == "" {
		errs = append(errs, domain.FieldError{Field: "outfit_id", Message: "must not be empty"})
	}
	if i.Date != nil && i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "must not be zero"})
	}
	if i.TimeOfDay != nil && !i.TimeOfDay.IsValid() {
		errs = append(errs, domain.FieldError{Field: "time_of_day", Message: "must be MORNING, AFTERNOON, EVENING, NIGHT, or ALL_DAY"})
	}
	if i.AISuggestionFeedback != nil && !i.AISuggestionFeedback.IsValid() {
		errs = append(errs, domain.FieldError{Field: "ai_suggestion_feedback", Message: "must be POSITIVE or NEGATIVE"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// apply merges the provided fields into log.
func (i *UpdateLogInput) apply(log *domain.OutfitLog) {
	if i.OutfitID != nil {
		log.OutfitID = *i.OutfitID
	}
	if i.Date != nil {
		log.Date = *i.Date
	}
	if i.TimeOfDay != nil {
		log.TimeOfDay = *i.TimeOfDay
	}
	if i.Activity != nil {
		log.Activity = *i.Activity
	}
	if i.CustomActivity != nil {
		log.CustomActivity = *i.CustomActivity
	}
	if i.Notes != nil {
		log.Notes = *i.Notes
	}
	if i.WeatherCondition != nil {
		log.WeatherCondition = *i.WeatherCondition
	}
	if i.Temperature != nil {
		log.Temperature = i.Temperature
	}
	if i.AskForAISuggestion != nil {
		log.AskForAISuggestion = *i.AskForAISuggestion
	}
	if i.AISuggested != nil {
		log.AISuggested = *i.AISuggested
	}
	if i.AISuggestionFeedback != nil {
		log.AISuggestionFeedback = i.AISuggestionFeedback
	}
}
