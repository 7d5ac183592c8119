package scraper

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var explicitLayouts = []string{"2006-01-02", "02.01.2006", "02/01/2006"}

var relativeRe = regexp.MustCompile(`(\d+)\+?\s*(minutes?|minuten?|hours?|stunden?|days?|tagen?|weeks?|wochen?)`)

// ParsePostedDate turns the free-text posted-date strings boards emit into
// a timestamp. It handles ISO and German numeric dates plus English and
// German relative phrases ("3 hours ago", "vor 3 Stunden", "heute",
// "gestern"). Unparseable input yields nil, which the temporal filter
// treats optimistically.
func ParsePostedDate(raw string, now time.Time) *time.Time {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return nil
	}

	for _, layout := range explicitLayouts {
		if len(s) < len(layout) {
			continue
		}
		if t, err := time.Parse(layout, s[:len(layout)]); err == nil {
			return clampFuture(t, now)
		}
	}

	switch {
	case strings.Contains(s, "today"), strings.Contains(s, "heute"), strings.Contains(s, "just posted"), strings.Contains(s, "gerade eben"):
		t := now
		return &t
	case strings.Contains(s, "yesterday"), strings.Contains(s, "gestern"):
		t := now.Add(-24 * time.Hour)
		return &t
	}

	if m := relativeRe.FindStringSubmatch(s); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			var d time.Duration
			switch unit := m[2]; {
			case strings.HasPrefix(unit, "minute"):
				d = time.Duration(n) * time.Minute
			case strings.HasPrefix(unit, "hour"), strings.HasPrefix(unit, "stunde"):
				d = time.Duration(n) * time.Hour
			case strings.HasPrefix(unit, "day"), strings.HasPrefix(unit, "tag"):
				d = time.Duration(n) * 24 * time.Hour
			case strings.HasPrefix(unit, "week"), strings.HasPrefix(unit, "woche"):
				d = time.Duration(n) * 7 * 24 * time.Hour
			}
			t := now.Add(-d)
			return &t
		}
	}

	if t, err := dateparse.ParseAny(raw); err == nil {
		return clampFuture(t, now)
	}
	return nil
}

// clampFuture rejects timestamps more than two days ahead of now; those
// only occur when a source emits garbage or a timezone is wildly off.
func clampFuture(t, now time.Time) *time.Time {
	if t.After(now.Add(48 * time.Hour)) {
		return nil
	}
	return &t
}
