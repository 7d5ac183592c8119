// Package scraper gathers raw postings from the job boards and company
// career pages. Every scraper produces model.Posting records; all judgment
// about them lives in the pipeline, not here.
package scraper

import (
	"context"
	"net/url"

	"go.uber.org/zap"

	"jobfinder/internal/config"
	"jobfinder/internal/httpclient"
	"jobfinder/internal/model"
)

// Scraper defines the contract every posting source must satisfy.
type Scraper interface {
	// Name returns a human-readable identifier for this source.
	Name() string

	// Search fetches the source's configured queries and returns the raw
	// postings it could extract. Partial results with an error are valid:
	// the caller keeps what was found.
	Search(ctx context.Context) ([]model.Posting, error)
}

// Registry returns the scrapers enabled by the configuration, all sharing
// the anti-ban HTTP client.
func Registry(client *httpclient.Client, cfg *config.Config, logger *zap.Logger) []Scraper {
	var scrapers []Scraper

	if bc, ok := cfg.Boards["linkedin"]; ok {
		scrapers = append(scrapers, NewLinkedIn(client, bc))
	}
	if bc, ok := cfg.Boards["stepstone"]; ok {
		scrapers = append(scrapers, NewStepstone(client, bc))
	}
	if bc, ok := cfg.Boards["xing"]; ok {
		scrapers = append(scrapers, NewXing(client, bc))
	}
	if bc, ok := cfg.Boards["indeed"]; ok {
		scrapers = append(scrapers, NewIndeed(client, bc))
	}
	if bc, ok := cfg.Boards["google"]; ok {
		scrapers = append(scrapers, NewGoogleJobs(client, bc))
	}
	if len(cfg.Companies) > 0 {
		scrapers = append(scrapers, NewCompanyPages(cfg.Companies, logger))
	}

	return scrapers
}

// resolveURL joins a relative listing link against the board's base URL.
// On parse failure the original href is returned as-is.
func resolveURL(base, href string) string {
	b, err := url.Parse(base)
	if err != nil {
		return href
	}
	h, err := url.Parse(href)
	if err != nil {
		return href
	}
	return b.ResolveReference(h).String()
}
