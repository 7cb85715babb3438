package domain

import "time"

// ItemWearCount pairs a catalog item with the number of logged wears.
type ItemWearCount struct {
	Item  ClothingItem `json:"item"`
	Count int          `json:"count"`
}

// DistributionSlice is one labeled share of a percentage distribution.
type DistributionSlice struct {
	Label      string `json:"label"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// CategoryCounts splits a trend bucket into the fixed occasion categories.
// Other absorbs logs not matched by a named category and is clamped at zero
// when the named categories overcount (an outfit may match several).
type CategoryCounts struct {
	Casual   int `json:"casual"`
	Business int `json:"business"`
	Formal   int `json:"formal"`
	Party    int `json:"party"`
	Other    int `json:"other"`
}

// TrendBucket is one time slot of a usage trend.
type TrendBucket struct {
	Label      string         `json:"label"`
	Start      time.Time      `json:"start"`
	Total      int            `json:"total"`
	Categories CategoryCounts `json:"categories"`
}

// WearPartition splits the catalog's outfits by how often they were worn.
type WearPartition struct {
	Frequently []Outfit `json:"frequently"`
	Rarely     []Outfit `json:"rarely"`
}

// AIAssistStats aggregates the AI-suggestion flags found on outfit logs.
type AIAssistStats struct {
	Requested        int `json:"requested"`
	Suggested        int `json:"suggested"`
	PositiveFeedback int `json:"positive_feedback"`
	NegativeFeedback int `json:"negative_feedback"`
	// SatisfactionRate is positive/(positive+negative)*100, 0 without feedback.
	SatisfactionRate float64 `json:"satisfaction_rate"`
}

// CalendarDay is one render-ready date of a calendar projection.
type CalendarDay struct {
	Date    time.Time    `json:"date"`
	Logs    []*OutfitLog `json:"logs"`
	InMonth bool         `json:"in_month"`
}
