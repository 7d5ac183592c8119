// Package pipeline is the filter-rank-deduplicate core of the job finder.
// Given one already materialized batch of raw postings it produces the
// ranked, cleaned records handed to the exporters. Every stage is a pure
// transform over its input: no I/O, no shared mutable state.
package pipeline

import (
	"time"

	"go.uber.org/zap"

	"jobfinder/internal/model"
)

type Pipeline struct {
	classifier  *Classifier
	windowHours int
	logger      *zap.Logger
	now         func() time.Time
}

func New(classifier *Classifier, windowHours int, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		classifier:  classifier,
		windowHours: windowHours,
		logger:      logger,
		now:         time.Now,
	}
}

// Run executes dedupe, the combined classifier and recency filter, ranking
// and normalization over one batch. An empty result is a valid outcome,
// not an error; the caller decides whether to report it.
func (pl *Pipeline) Run(postings []model.Posting) []model.CleanedPosting {
	now := pl.now()

	unique := Dedupe(postings)
	pl.logger.Info("deduplicated postings",
		zap.Int("before", len(postings)),
		zap.Int("after", len(unique)))

	var matches []Match
	for _, p := range unique {
		c := pl.classifier.Classify(p)
		if !c.Relevant() {
			continue
		}
		if !IsRecent(p.PostedAt, pl.windowHours, now) {
			continue
		}
		matches = append(matches, Match{Posting: p, Keywords: c.Keywords})
	}
	pl.logger.Info("filtered postings",
		zap.Int("window_hours", pl.windowHours),
		zap.Int("kept", len(matches)))

	ranked := Rank(matches, now)

	cleaned := make([]model.CleanedPosting, len(ranked))
	for i, r := range ranked {
		cleaned[i] = Normalize(r)
	}
	return cleaned
}
