package pipeline

import "time"

// IsRecent reports whether a posting's timestamp falls within the last
// windowHours before now. Postings without a date pass: many boards expose
// no parseable date, and excluding those would silently drop otherwise
// valid listings. The check fails open.
func IsRecent(postedAt *time.Time, windowHours int, now time.Time) bool {
	if postedAt == nil {
		return true
	}
	cutoff := now.Add(-time.Duration(windowHours) * time.Hour)
	return !postedAt.Before(cutoff)
}
