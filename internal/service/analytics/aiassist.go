package analytics

import (
	"github.com/outfitly/wardrobe-backend/internal/domain"
)

// AIAssistStats counts the AI-suggestion flags across logs. The satisfaction
// rate is positive feedback over all feedback, as a percentage; without any
// feedback it is 0.
func (s *Service) AIAssistStats(logs []*domain.OutfitLog) domain.AIAssistStats {
	var stats domain.AIAssistStats

	for _, l := range logs {
		if l.AskForAISuggestion {
			stats.Requested++
		}
		if l.AISuggested {
			stats.Suggested++
		}
		if l.AISuggestionFeedback == nil {
			continue
		}
		switch *l.AISuggestionFeedback {
		case domain.AIFeedbackPositive:
			stats.PositiveFeedback++
		case domain.AIFeedbackNegative:
			stats.NegativeFeedback++
		}
	}

	if total := stats.PositiveFeedback + stats.NegativeFeedback; total > 0 {
		stats.SatisfactionRate = float64(stats.PositiveFeedback) / float64(total) * 100
	}
	return stats
}
