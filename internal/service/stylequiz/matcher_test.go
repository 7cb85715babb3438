package stylequiz

import (
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outfitly/wardrobe-backend/internal/domain"
)

func newTestMatcher(seed int64) *Matcher {
	return NewMatcher(slog.Default(), rand.New(rand.NewSource(seed)))
}

func testPool() []domain.Outfit {
	return []domain.Outfit{
		{ID: "o1", Name: "Office", Tags: []string{"classic", "work"}},
		{ID: "o2", Name: "Night out", Tags: []string{"bold", "evening"}},
		{ID: "o3", Name: "Lazy Sunday", Tags: []string{"relaxed", "cozy"}},
	}
}

func TestMatcher_Match_StyleAnswerFirstWord(t *testing.T) {
	t.Parallel()

	m := newTestMatcher(1)
	answers := map[string]string{"style": "Bold & trendy"}

	got, err := m.Match(answers, testPool())
	require.NoError(t, err)
	assert.Equal(t, "o2", got.ID, `first word "Bold" matches tag "bold"`)
}

func TestMatcher_Match_StyleBeatsActivity(t *testing.T) {
	t.Parallel()

	m := newTestMatcher(1)
	answers := map[string]string{
		"style":    "Relaxed & casual",
		"activity": "Work meetings",
	}

	got, err := m.Match(answers, testPool())
	require.NoError(t, err)
	assert.Equal(t, "o3", got.ID)
}

func TestMatcher_Match_ActivityFallback(t *testing.T) {
	t.Parallel()

	m := newTestMatcher(1)
	answers := map[string]string{
		"style":    "Avant-garde",
		"activity": "Work meetings",
	}

	got, err := m.Match(answers, testPool())
	require.NoError(t, err)
	assert.Equal(t, "o1", got.ID, `style misses, first word "Work" matches tag "work"`)
}

func TestMatcher_Match_FirstPoolOrderHitWins(t *testing.T) {
	t.Parallel()

	pool := []domain.Outfit{
		{ID: "a", Tags: []string{"bold"}},
		{ID: "b", Tags: []string{"bold"}},
	}
	m := newTestMatcher(1)

	got, err := m.Match(map[string]string{"style": "bold"}, pool)
	require.NoError(t, err)
	assert.Equal(t, "a", got.ID)
}

func TestMatcher_Match_SubstringNotExact(t *testing.T) {
	t.Parallel()

	pool := []domain.Outfit{
		{ID: "a", Tags: []string{"streetwear"}},
	}
	m := newTestMatcher(1)

	got, err := m.Match(map[string]string{"style": "street style"}, pool)
	require.NoError(t, err)
	assert.Equal(t, "a", got.ID, `"street" is contained in tag "streetwear"`)
}

func TestMatcher_Match_RandomFallbackTotality(t *testing.T) {
	t.Parallel()

	pool := testPool()
	ids := map[string]bool{}
	for _, o := range pool {
		ids[o.ID] = true
	}

	m := newTestMatcher(42)
	for i := 0; i < 50; i++ {
		got, err := m.Match(map[string]string{"weather": "Rainy"}, pool)
		require.NoError(t, err)
		assert.True(t, ids[got.ID], "fallback must return a pool element")
	}
}

func TestMatcher_Match_RandomFallbackSeeded(t *testing.T) {
	t.Parallel()

	pool := testPool()
	a, err := newTestMatcher(7).Match(nil, pool)
	require.NoError(t, err)
	b, err := newTestMatcher(7).Match(nil, pool)
	require.NoError(t, err)

	assert.Equal(t, a.ID, b.ID, "same seed, same pick")
}

func TestMatcher_Match_EmptyPool(t *testing.T) {
	t.Parallel()

	m := newTestMatcher(1)
	_, err := m.Match(map[string]string{"style": "bold"}, nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMatcher_Match_EmptyAnswerIgnored(t *testing.T) {
	t.Parallel()

	pool := []domain.Outfit{{ID: "only", Tags: []string{"x"}}}
	m := newTestMatcher(1)

	got, err := m.Match(map[string]string{"style": "   "}, pool)
	require.NoError(t, err)
	assert.Equal(t, "only", got.ID)
}
