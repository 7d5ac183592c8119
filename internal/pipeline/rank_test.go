package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"jobfinder/internal/model"
)

func TestScore(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	ts := func(d time.Duration) *time.Time {
		t := now.Add(d)
		return &t
	}

	tests := []struct {
		name  string
		match Match
		want  int
	}{
		{
			// 10 (keyword) + 5 ("ai" in title) + 20 (age < 1h).
			name: "junior ai engineer posted now",
			match: Match{
				Posting:  model.Posting{Title: "Junior AI Engineer", PostedAt: ts(-30 * time.Minute)},
				Keywords: []string{"ai"},
			},
			want: 35,
		},
		{
			name: "two keywords no date",
			match: Match{
				Posting:  model.Posting{Title: "Junior Backend Developer"},
				Keywords: []string{"python", "backend"},
			},
			want: 20,
		},
		{
			// Phrase bonuses read the title only: description mentions
			// ignored here even though the classifier matched on them.
			name: "phrases in description give no bonus",
			match: Match{
				Posting: model.Posting{
					Title:       "Junior Developer",
					Description: "machine learning, data science, artificial intelligence",
				},
				Keywords: []string{"machine learning", "data science"},
			},
			want: 20,
		},
		{
			// 10 + 5 (data scientist) + 5 (ml engineer phrase absent) -> only
			// one phrase bonus each: +5 scientist, recency 6h..12h -> +10.
			name: "data scientist posted 8h ago",
			match: Match{
				Posting:  model.Posting{Title: "Graduate Data Scientist", PostedAt: ts(-8 * time.Hour)},
				Keywords: []string{"data science"},
			},
			want: 25,
		},
		{
			name: "stale posting gets no recency bonus",
			match: Match{
				Posting:  model.Posting{Title: "Junior Machine Learning Engineer", PostedAt: ts(-48 * time.Hour)},
				Keywords: []string{"machine learning"},
			},
			want: 15,
		},
		{
			name: "recency tier under six hours",
			match: Match{
				Posting:  model.Posting{Title: "Junior Developer", PostedAt: ts(-2 * time.Hour)},
				Keywords: []string{"python"},
			},
			want: 25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.match, now))
		})
	}
}

func TestRankAssignsDenseRanks(t *testing.T) {
	now := time.Now()

	matches := []Match{
		{Posting: model.Posting{Title: "Junior Developer"}, Keywords: []string{"python"}},
		{Posting: model.Posting{Title: "Junior AI Engineer"}, Keywords: []string{"ai", "python"}},
		{Posting: model.Posting{Title: "Junior Tester"}, Keywords: []string{"python"}},
	}

	ranked := Rank(matches, now)

	assert.Len(t, ranked, 3)
	assert.Equal(t, "Junior AI Engineer", ranked[0].Posting.Title)
	for i, r := range ranked {
		assert.Equal(t, i+1, r.Rank)
	}
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
}

func TestRankStableOnTies(t *testing.T) {
	now := time.Now()

	// B and A score identically; input order [B, A] must survive.
	b := Match{Posting: model.Posting{Title: "Junior Developer B"}, Keywords: []string{"python"}}
	a := Match{Posting: model.Posting{Title: "Junior Developer A"}, Keywords: []string{"python"}}

	ranked := Rank([]Match{b, a}, now)

	assert.Equal(t, "Junior Developer B", ranked[0].Posting.Title)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, "Junior Developer A", ranked[1].Posting.Title)
	assert.Equal(t, 2, ranked[1].Rank)
	assert.Equal(t, ranked[0].Score, ranked[1].Score)
}

func TestRankEmptyInput(t *testing.T) {
	assert.Empty(t, Rank(nil, time.Now()))
}
