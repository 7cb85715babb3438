package rest

import (
	"log/slog"
	"net/http"

	"github.com/outfitly/wardrobe-backend/internal/catalog"
	"github.com/outfitly/wardrobe-backend/internal/service/stylequiz"
)

// QuizHandler serves the style quiz endpoints. Matching runs against the full
// outfit catalog; no user session is needed.
type QuizHandler struct {
	log       *slog.Logger
	matcher   *stylequiz.Matcher
	catalog   catalog.Provider
	questions []stylequiz.Question
}

// NewQuizHandler creates a QuizHandler. questions may be nil to use the
// built-in set.
func NewQuizHandler(log *slog.Logger, matcher *stylequiz.Matcher, cat catalog.Provider, questions []stylequiz.Question) *QuizHandler {
	if len(questions) == 0 {
		questions = stylequiz.DefaultQuestions()
	}
	return &QuizHandler{log: log, matcher: matcher, catalog: cat, questions: questions}
}

// Questions handles GET /api/quiz/questions.
func (h *QuizHandler) Questions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.questions)
}

// matchRequest is the POST /api/quiz/match payload.
type matchRequest struct {
	Answers map[string]string `json:"answers"`
}

// Match handles POST /api/quiz/match.
func (h *QuizHandler) Match(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	outfit, err := h.matcher.Match(req.Answers, h.catalog.Outfits())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, outfit)
}
