// Package export renders the cleaned, ranked postings to the configured
// destinations: console table, CSV and Excel files, Telegram and Discord.
package export

import (
	"time"

	"jobfinder/internal/model"
)

// Report bundles the pipeline result with the run metadata the writers
// render alongside it.
type Report struct {
	Postings    []model.CleanedPosting
	GeneratedAt time.Time
	WindowHours int
	TotalFound  int
}

// BoardCounts returns how many postings each board contributed.
func (r Report) BoardCounts() map[string]int {
	counts := make(map[string]int)
	for _, p := range r.Postings {
		counts[p.Board]++
	}
	return counts
}

// ResultWriter defines how a report is presented or stored.
type ResultWriter interface {
	WriteReport(r Report) error
}
