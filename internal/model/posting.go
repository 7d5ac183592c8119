package model

import (
	"strings"
	"time"
)

// Posting is a single raw job listing as produced by any source scraper.
// Title, Company, URL and Board are always set, possibly to the empty
// string when extraction failed. PostedAt is nil when the source provides
// no date or the date string could not be parsed.
type Posting struct {
	Title       string
	Company     string
	URL         string
	Location    string
	Description string
	Board       string
	PostedAt    *time.Time
}

// FullText returns title and description concatenated in lowercase, the
// text the classifier matches level markers and keywords against.
func (p Posting) FullText() string {
	return strings.ToLower(p.Title + " " + p.Description)
}
