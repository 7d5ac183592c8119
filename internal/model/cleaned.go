package model

import (
	"strings"
	"time"
)

// CleanedPosting is the export-ready record produced by the pipeline.
// KeywordMatches keeps the matched technical keywords as a list; tabular
// exporters use KeywordList for the joined display form.
type CleanedPosting struct {
	Company        string
	Title          string
	URL            string
	PostedAt       *time.Time
	Board          string
	Location       string
	JobLevel       string
	KeywordMatches []string
	Rank           int
}

// KeywordList returns the matched keywords as one comma-separated string.
func (c CleanedPosting) KeywordList() string {
	return strings.Join(c.KeywordMatches, ", ")
}

// PostedAtDisplay formats the posting date for reports, or "Unknown" when
// no date was extracted.
func (c CleanedPosting) PostedAtDisplay() string {
	if c.PostedAt == nil {
		return "Unknown"
	}
	return c.PostedAt.Format("02.01.2006 15:04")
}
