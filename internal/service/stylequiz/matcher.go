// Package stylequiz implements the style quiz flow and the matcher that turns
// accumulated quiz answers into a single outfit pick.
package stylequiz

import (
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/outfitly/wardrobe-backend/internal/domain"
)

// Answer keys the matcher inspects, in priority order.
const (
	QuestionStyle    = "style"
	QuestionActivity = "activity"
)

// Matcher selects one outfit from a candidate pool based on quiz answers.
type Matcher struct {
	log *slog.Logger
	rng *rand.Rand
}

// NewMatcher creates a matcher. rng may be nil; a time-seeded source is used
// then. Tests pass a fixed-seed source for determinism.
func NewMatcher(log *slog.Logger, rng *rand.Rand) *Matcher {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Matcher{
		log: log.With("service", "stylequiz"),
		rng: rng,
	}
}

// Match picks exactly one outfit from pool. The style answer is tried first,
// then the activity answer, each by matching the answer's first word against
// the outfit tags (case-insensitive substring, first pool-order hit wins).
// When neither answer matches anything, a uniformly random pool element is
// returned, so a non-empty pool always yields a result.
func (m *Matcher) Match(answers map[string]string, pool []domain.Outfit) (*domain.Outfit, error) {
	if len(pool) == 0 {
		return nil, fmt.Errorf("match outfit: empty candidate pool: %w", domain.ErrNotFound)
	}

	for _, question := range []string{QuestionStyle, QuestionActivity} {
		word := firstWord(answers[question])
		if word == "" {
			continue
		}
		for i := range pool {
			if pool[i].HasTagContaining(word) {
				m.log.Debug("quiz answer matched outfit",
					"question", question, "word", word, "outfit_id", pool[i].ID)
				return &pool[i], nil
			}
		}
	}

	pick := &pool[m.rng.Intn(len(pool))]
	m.log.Debug("quiz answers matched nothing, random fallback", "outfit_id", pick.ID)
	return pick, nil
}

// firstWord returns the first whitespace-separated word of s, or "".
func firstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
