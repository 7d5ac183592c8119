package pipeline

import (
	"strings"

	"jobfinder/internal/model"
)

// JobLevel is the constant level label this pipeline targets.
const JobLevel = "Entry Level / Junior"

// Normalize maps a ranked posting into the cleaned, export-ready record.
// It is a pure field remap: whitespace trimming, "Unknown" defaults for a
// missing board and location, the constant job level. No filtering or
// scoring happens here.
func Normalize(r Ranked) model.CleanedPosting {
	board := r.Posting.Board
	if board == "" {
		board = "Unknown"
	}
	location := r.Posting.Location
	if location == "" {
		location = "Unknown"
	}
	return model.CleanedPosting{
		Company:        strings.TrimSpace(r.Posting.Company),
		Title:          strings.TrimSpace(r.Posting.Title),
		URL:            strings.TrimSpace(r.Posting.URL),
		PostedAt:       r.Posting.PostedAt,
		Board:          board,
		Location:       location,
		JobLevel:       JobLevel,
		KeywordMatches: r.Keywords,
		Rank:           r.Rank,
	}
}
