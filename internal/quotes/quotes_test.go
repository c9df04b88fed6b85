package quotes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finla-app/finla/internal/date"
	"github.com/finla-app/finla/internal/quotes"
)

func TestForDayDeterministic(t *testing.T) {
	day := date.MustParse("2025-07-15")

	first := quotes.ForDay(day)
	second := quotes.ForDay(day)

	assert.Equal(t, first, second)
	assert.NotEmpty(t, first.Text)
	assert.NotEmpty(t, first.Author)
	assert.NotEmpty(t, first.Category)
}

func TestForDayRotates(t *testing.T) {
	a := quotes.ForDay(date.MustParse("2025-07-15"))
	b := quotes.ForDay(date.MustParse("2025-07-16"))

	assert.NotEqual(t, a, b)
}

func TestWeek(t *testing.T) {
	start := date.MustParse("2025-07-14")

	week := quotes.Week(start)

	require.Len(t, week, 7)
	assert.Equal(t, quotes.ForDay(start), week[0])
	assert.Equal(t, quotes.ForDay(start.Add(6)), week[6])
}

func TestByCategory(t *testing.T) {
	savings := quotes.ByCategory("savings")

	require.NotEmpty(t, savings)
	for _, q := range savings {
		assert.Equal(t, "savings", q.Category)
	}

	assert.Nil(t, quotes.ByCategory("no-such-category"))
}

func TestCategories(t *testing.T) {
	cats := quotes.Categories()

	require.NotEmpty(t, cats)
	assert.Contains(t, cats, "savings")
	assert.Contains(t, cats, "wisdom")

	seen := map[string]bool{}
	for _, c := range cats {
		assert.False(t, seen[c], "duplicate category %q", c)
		seen[c] = true
	}
}

func TestSearch(t *testing.T) {
	byAuthor := quotes.Search("buffett")
	require.NotEmpty(t, byAuthor)
	for _, q := range byAuthor {
		assert.Equal(t, "Warren Buffett", q.Author)
	}

	byText := quotes.Search("RUPEE")
	require.NotEmpty(t, byText)

	assert.Empty(t, quotes.Search("zzzzzz"))
	assert.Nil(t, quotes.Search("   "))
}
