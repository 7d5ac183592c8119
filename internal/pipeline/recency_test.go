package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsRecent(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	ts := func(d time.Duration) *time.Time {
		t := now.Add(d)
		return &t
	}

	tests := []struct {
		name     string
		postedAt *time.Time
		hours    int
		want     bool
	}{
		{"nil date passes regardless of window", nil, 24, true},
		{"posted just now", ts(0), 24, true},
		{"posted 23h ago", ts(-23 * time.Hour), 24, true},
		{"posted exactly at cutoff", ts(-24 * time.Hour), 24, true},
		{"posted 25h ago", ts(-25 * time.Hour), 24, false},
		{"narrow window", ts(-2 * time.Hour), 1, false},
		{"future date passes", ts(time.Hour), 24, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRecent(tt.postedAt, tt.hours, now))
		})
	}
}
