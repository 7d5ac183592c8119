package pipeline

import (
	"sort"
	"strings"
	"time"

	"jobfinder/internal/model"
)

// Match pairs a posting that survived filtering with the technical
// keywords found in it.
type Match struct {
	Posting  model.Posting
	Keywords []string
}

// Ranked is a match annotated with its relevance score and final rank.
type Ranked struct {
	Match
	Score int
	Rank  int
}

// Score computes the relevance score for one match. Every term is
// independent and additive. The phrase bonuses look at the title only,
// while keyword matching upstream covers title and description; that
// asymmetry is deliberate and pinned by tests.
func Score(m Match, now time.Time) int {
	score := 10 * len(m.Keywords)

	title := strings.ToLower(m.Posting.Title)
	if strings.Contains(title, "ai") || strings.Contains(title, "artificial intelligence") {
		score += 5
	}
	if strings.Contains(title, "data scientist") || strings.Contains(title, "data science") {
		score += 5
	}
	if strings.Contains(title, "machine learning") || strings.Contains(title, "ml engineer") {
		score += 5
	}

	if m.Posting.PostedAt != nil {
		switch age := now.Sub(*m.Posting.PostedAt); {
		case age < time.Hour:
			score += 20
		case age < 6*time.Hour:
			score += 15
		case age < 12*time.Hour:
			score += 10
		}
	}
	return score
}

// Rank orders matches by descending relevance score and assigns dense
// 1-based ranks. The sort is stable, so score ties keep their input order.
func Rank(matches []Match, now time.Time) []Ranked {
	ranked := make([]Ranked, len(matches))
	for i, m := range matches {
		ranked[i] = Ranked{Match: m, Score: Score(m, now)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}
