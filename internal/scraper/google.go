package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"jobfinder/internal/config"
	"jobfinder/internal/httpclient"
	"jobfinder/internal/model"
)

// GoogleJobs scrapes Google web-search results restricted to job listings.
// Result snippets carry no usable company or date, so those fields stay
// empty and the pipeline fills in its defaults.
type GoogleJobs struct {
	client  *httpclient.Client
	baseURL string
	queries []string
}

func NewGoogleJobs(client *httpclient.Client, bc config.BoardConfig) *GoogleJobs {
	return &GoogleJobs{
		client:  client,
		baseURL: "https://www.google.com/search",
		queries: bc.Queries,
	}
}

func (g *GoogleJobs) Name() string {
	return "Google"
}

func (g *GoogleJobs) Search(ctx context.Context) ([]model.Posting, error) {
	var postings []model.Posting
	var firstErr error

	for _, query := range g.queries {
		found, err := g.searchQuery(ctx, query)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		postings = append(postings, found...)
	}

	if len(postings) == 0 && firstErr != nil {
		return nil, firstErr
	}
	return postings, nil
}

func (g *GoogleJobs) searchQuery(ctx context.Context, query string) ([]model.Posting, error) {
	params := url.Values{}
	params.Set("q", fmt.Sprintf("%s jobs Germany", query))

	searchURL := fmt.Sprintf("%s?%s", g.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("google: building request: %w", err)
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("google: executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google: unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("google: parsing HTML: %w", err)
	}

	var postings []model.Posting
	doc.Find("div.g").Each(func(i int, s *goquery.Selection) {
		title := strings.TrimSpace(s.Find("h3").First().Text())
		link, _ := s.Find("a").First().Attr("href")

		if title == "" || link == "" {
			return
		}
		postings = append(postings, model.Posting{
			Title:    title,
			URL:      link,
			Location: "Germany",
			Board:    "Google",
		})
	})

	return postings, nil
}
