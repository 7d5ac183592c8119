package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jobfinder/internal/model"
)

func testPipeline(windowHours int, now time.Time) *Pipeline {
	pl := New(testClassifier(), windowHours, zap.NewNop())
	pl.now = func() time.Time { return now }
	return pl
}

func TestRunEndToEnd(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	postedNow := now.Add(-10 * time.Minute)

	postings := []model.Posting{
		{
			Title:    "Junior AI Engineer",
			Company:  "Acme",
			URL:      "https://x/1",
			Location: "Berlin, Germany",
			Board:    "LinkedIn",
			PostedAt: &postedNow,
		},
		// Duplicate of the first, must be collapsed before filtering.
		{
			Title:    "Junior AI Engineer",
			Company:  "Acme",
			URL:      "https://x/1",
			Location: "Berlin, Germany",
			Board:    "LinkedIn",
			PostedAt: &postedNow,
		},
		// Wrong country.
		{
			Title:    "Junior AI Engineer",
			Company:  "Baguette SA",
			URL:      "https://x/2",
			Location: "Paris, France",
			PostedAt: &postedNow,
		},
		// Not entry-level: no positive marker, "senior" branch never
		// reached with a different outcome.
		{
			Title:    "Senior Data Scientist",
			Company:  "Acme",
			URL:      "https://x/3",
			Location: "Hamburg, Germany",
			PostedAt: &postedNow,
		},
		// No technical keyword.
		{
			Title:    "Junior Accountant",
			Company:  "Acme",
			URL:      "https://x/4",
			Location: "Berlin, Germany",
			PostedAt: &postedNow,
		},
		// Unknown date is kept, weaker score than the fresh posting.
		{
			Title:    "Graduate Python Developer",
			Company:  "Beta GmbH",
			URL:      "https://x/5",
			Location: "Bayern",
			Board:    "Stepstone",
		},
	}

	got := testPipeline(24, now).Run(postings)

	require.Len(t, got, 2)

	// Score 35 (10 keyword + 5 "ai" in title + 20 recency) beats 10.
	assert.Equal(t, "Junior AI Engineer", got[0].Title)
	assert.Equal(t, 1, got[0].Rank)
	assert.Equal(t, []string{"ai"}, got[0].KeywordMatches)
	assert.Equal(t, "Entry Level / Junior", got[0].JobLevel)

	assert.Equal(t, "Graduate Python Developer", got[1].Title)
	assert.Equal(t, 2, got[1].Rank)
	assert.Nil(t, got[1].PostedAt)
}

func TestRunFilterIsSubset(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	postings := []model.Posting{
		{Title: "Junior AI Engineer", URL: "https://x/1", Location: "Berlin"},
		{Title: "Plumber", URL: "https://x/2", Location: "Berlin"},
		{Title: "Junior Python Developer", URL: "https://x/3", Location: "Madrid"},
		{Title: "Junior ML Engineer", URL: "https://x/4", Location: "Hamburg"},
	}

	got := testPipeline(24, now).Run(postings)

	assert.LessOrEqual(t, len(got), len(postings))
	inputURLs := make(map[string]bool)
	for _, p := range postings {
		inputURLs[p.URL] = true
	}
	for _, c := range got {
		assert.True(t, inputURLs[c.URL], "output posting %q must come from the input", c.URL)
	}
}

func TestRunRankIsPermutation(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	var postings []model.Posting
	titles := []string{
		"Junior AI Engineer", "Junior Python Developer", "Graduate ML Engineer",
		"Junior Data Scientist", "Entry Level Backend Developer",
	}
	for i, title := range titles {
		postings = append(postings, model.Posting{
			Title:    title,
			URL:      "https://x/" + string(rune('a'+i)),
			Location: "Berlin, Germany",
		})
	}

	got := testPipeline(24, now).Run(postings)

	seen := make(map[int]bool)
	for _, c := range got {
		assert.False(t, seen[c.Rank], "rank %d assigned twice", c.Rank)
		seen[c.Rank] = true
		assert.GreaterOrEqual(t, c.Rank, 1)
		assert.LessOrEqual(t, c.Rank, len(got))
	}
}

func TestRunStaleDatedPostingExcluded(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	stale := now.Add(-72 * time.Hour)

	postings := []model.Posting{
		{Title: "Junior AI Engineer", URL: "https://x/1", Location: "Berlin", PostedAt: &stale},
	}

	assert.Empty(t, testPipeline(24, now).Run(postings))
}

func TestRunEmptyBatch(t *testing.T) {
	got := testPipeline(24, time.Now()).Run(nil)
	assert.Empty(t, got)
}

func TestNormalizeDefaults(t *testing.T) {
	r := Ranked{
		Match: Match{
			Posting: model.Posting{
				Title:   "  Junior AI Engineer  ",
				Company: " Acme ",
				URL:     " https://x/1 ",
			},
			Keywords: []string{"ai", "python"},
		},
		Rank: 3,
	}

	got := Normalize(r)

	assert.Equal(t, "Junior AI Engineer", got.Title)
	assert.Equal(t, "Acme", got.Company)
	assert.Equal(t, "https://x/1", got.URL)
	assert.Equal(t, "Unknown", got.Board)
	assert.Equal(t, "Unknown", got.Location)
	assert.Equal(t, JobLevel, got.JobLevel)
	assert.Equal(t, "ai, python", got.KeywordList())
	assert.Equal(t, "Unknown", got.PostedAtDisplay())
	assert.Equal(t, 3, got.Rank)
}
