package domain

// TimeOfDay represents the part of the day an outfit log covers.
type TimeOfDay string

const (
	TimeOfDayMorning   TimeOfDay = "MORNING"
	TimeOfDayAfternoon TimeOfDay = "AFTERNOON"
	TimeOfDayEvening   TimeOfDay = "EVENING"
	TimeOfDayNight     TimeOfDay = "NIGHT"
	TimeOfDayAllDay    TimeOfDay = "ALL_DAY"
)

func (t TimeOfDay) String() string { return string(t) }

func (t TimeOfDay) IsValid() bool {
	switch t {
	case TimeOfDayMorning, TimeOfDayAfternoon, TimeOfDayEvening, TimeOfDayNight, TimeOfDayAllDay:
		return true
	}
	return false
}

// AIFeedback represents the user's reaction to an AI outfit suggestion.
type AIFeedback string

const (
	AIFeedbackPositive AIFeedback = "POSITIVE"
	AIFeedbackNegative AIFeedback = "NEGATIVE"
)

func (f AIFeedback) String() string { return string(f) }

func (f AIFeedback) IsValid() bool {
	switch f {
	case AIFeedbackPositive, AIFeedbackNegative:
		return true
	}
	return false
}

// CalendarGranularity selects the calendar projection window.
type CalendarGranularity string

const (
	GranularityDay   CalendarGranularity = "DAY"
	GranularityWeek  CalendarGranularity = "WEEK"
	GranularityMonth CalendarGranularity = "MONTH"
)

func (g CalendarGranularity) String() string { return string(g) }

func (g CalendarGranularity) IsValid() bool {
	switch g {
	case GranularityDay, GranularityWeek, GranularityMonth:
		return true
	}
	return false
}

// TrendWindow selects the usage-trend bucketing window.
type TrendWindow string

const (
	TrendWindowWeek  TrendWindow = "WEEK"  // last 7 days, one bucket per day
	TrendWindowMonth TrendWindow = "MONTH" // last 30 days, one bucket per day
	TrendWindowYear  TrendWindow = "YEAR"  // last 12 calendar months, one bucket per month
)

func (w TrendWindow) String() string { return string(w) }

func (w TrendWindow) IsValid() bool {
	switch w {
	case TrendWindowWeek, TrendWindowMonth, TrendWindowYear:
		return true
	}
	return false
}
