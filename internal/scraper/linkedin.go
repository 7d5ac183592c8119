package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"jobfinder/internal/config"
	"jobfinder/internal/httpclient"
	"jobfinder/internal/model"
)

type LinkedIn struct {
	client   *httpclient.Client
	baseURL  string
	queries  []string
	location string
}

func NewLinkedIn(client *httpclient.Client, bc config.BoardConfig) *LinkedIn {
	location := bc.Location
	if location == "" {
		location = "Germany"
	}
	return &LinkedIn{
		client:   client,
		baseURL:  "https://www.linkedin.com/jobs/search/",
		queries:  bc.Queries,
		location: location,
	}
}

func (l *LinkedIn) Name() string {
	return "LinkedIn"
}

func (l *LinkedIn) Search(ctx context.Context) ([]model.Posting, error) {
	var postings []model.Posting
	var firstErr error

	for _, query := range l.queries {
		found, err := l.searchQuery(ctx, query)
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

func (l *LinkedIn) searchQuery(ctx context.Context, query string) ([]model.Posting, error) {
	params := url.Values{}
	params.Set("keywords", query)
	params.Set("location", l.location)
	params.Set("sort", "date")
	params.Set("f_TPR", "r86400") // posted within the last 24h

	searchURL := fmt.Sprintf("%s?%s", l.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("linkedin: building request: %w", err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("linkedin: executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("linkedin: unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("linkedin: parsing HTML: %w", err)
	}

	now := time.Now()
	var postings []model.Posting
	doc.Find("div.base-card").Each(func(i int, s *goquery.Selection) {
		title := strings.TrimSpace(s.Find("h3.base-search-card__title").Text())
		company := strings.TrimSpace(s.Find("h4.base-search-card__subtitle").Text())
		link, _ := s.Find("a.base-card__full-link").Attr("href")

		var postedAt *time.Time
		if datetime, ok := s.Find("time").Attr("datetime"); ok {
			postedAt = ParsePostedDate(datetime, now)
		}

		if title == "" {
			return
		}
		postings = append(postings, model.Posting{
			Title:    title,
			Company:  company,
			URL:      link,
			Location: l.location,
			Board:    "LinkedIn",
			PostedAt: postedAt,
		})
	})

	return postings, nil
}
