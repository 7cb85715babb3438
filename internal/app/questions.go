package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/outfitly/wardrobe-backend/internal/config"
	"github.com/outfitly/wardrobe-backend/internal/service/stylequiz"
)

// loadQuestions reads the quiz question set from the configured JSON file.
// An empty path means the built-in questions are used.
func loadQuestions(cfg config.QuizConfig) ([]stylequiz.Question, error) {
	if cfg.QuestionsPath == "" {
		return nil, nil
	}

	data, err := os.ReadFile(cfg.QuestionsPath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", cfg.QuestionsPath, err)
	}

	var questions []stylequiz.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("parse %s: %w", cfg.QuestionsPath, err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("%s contains no questions", cfg.QuestionsPath)
	}
	return questions, nil
}
