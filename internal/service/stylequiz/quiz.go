package stylequiz

import (
	"fmt"

	"github.com/outfitly/wardrobe-backend/internal/domain"
)

// Question is one quiz step shown to the user.
type Question struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}

// DefaultQuestions returns the built-in quiz.
func DefaultQuestions() []Question {
	return []Question{
		{
			ID:     QuestionStyle,
			Prompt: "Which style feels most like you?",
			Options: []string{
				"Classic & timeless",
				"Bold & trendy",
				"Relaxed & casual",
				"Elegant & refined",
			},
		},
		{
			ID:     QuestionActivity,
			Prompt: "What's on the agenda today?",
			Options: []string{
				"Work meetings",
				"Dinner out",
				"Errands around town",
				"Party tonight",
			},
		},
		{
			ID:     "weather",
			Prompt: "How's the weather looking?",
			Options: []string{
				"Warm and sunny",
				"Cool and breezy",
				"Cold",
				"Rainy",
			},
		},
	}
}

// Quiz is a plain serializable state machine over a fixed question list. It is
// either in progress at some question index or complete; answering the last
// question completes it. Re-answering requires Restart.
type Quiz struct {
	Questions []Question        `json:"questions"`
	Answers   map[string]string `json:"answers"`
	Index     int               `json:"index"`
	Complete  bool              `json:"complete"`
}

// NewQuiz starts a quiz over the given questions, or the built-in set when
// questions is empty.
func NewQuiz(questions []Question) *Quiz {
	if len(questions) == 0 {
		questions = DefaultQuestions()
	}
	return &Quiz{
		Questions: questions,
		Answers:   make(map[string]string, len(questions)),
	}
}

// Current returns the question awaiting an answer, false once complete.
func (q *Quiz) Current() (Question, bool) {
	if q.Complete {
		return Question{}, false
	}
	return q.Questions[q.Index], true
}

// Answer records text for the current question and advances. Answering the
// last question transitions the quiz to complete. Answering a complete quiz
// or the wrong question is a validation error.
func (q *Quiz) Answer(questionID, text string) error {
	if q.Complete {
		return fmt.Errorf("answer quiz: already complete: %w", domain.ErrValidation)
	}
	current := q.Questions[q.Index]
	if current.ID != questionID {
		return domain.NewValidationError("question_id",
			fmt.Sprintf("expected %q, got %q", current.ID, questionID))
	}
	if text == "" {
		return domain.NewValidationError("answer", "must not be empty")
	}

	q.Answers[questionID] = text
	if q.Index == len(q.Questions)-1 {
		q.Complete = true
		return nil
	}
	q.Index++
	return nil
}

// Restart clears all answers and returns to the first question. A prior match
// stays valid; restarting just allows a new one.
func (q *Quiz) Restart() {
	q.Answers = make(map[string]string, len(q.Questions))
	q.Index = 0
	q.Complete = false
}
