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

type Indeed struct {
	client  *httpclient.Client
	baseURL string
	queries []string
}

func NewIndeed(client *httpclient.Client, bc config.BoardConfig) *Indeed {
	return &Indeed{
		client:  client,
		baseURL: "https://de.indeed.com/jobs",
		queries: bc.Queries,
	}
}

func (in *Indeed) Name() string {
	return "Indeed"
}

func (in *Indeed) Search(ctx context.Context) ([]model.Posting, error) {
	var postings []model.Posting
	var firstErr error

	for _, query := range in.queries {
		found, err := in.searchQuery(ctx, query)
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

func (in *Indeed) searchQuery(ctx context.Context, query string) ([]model.Posting, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("l", "Germany")
	params.Set("sort", "date")
	params.Set("fromage", "1") // posted within the last day

	searchURL := fmt.Sprintf("%s?%s", in.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("indeed: building request: %w", err)
	}
	resp, err := in.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("indeed: executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("indeed: unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("indeed: parsing HTML: %w", err)
	}

	now := time.Now()
	var postings []model.Posting
	doc.Find("div.job_seen_beacon").Each(func(i int, s *goquery.Selection) {
		title := strings.TrimSpace(s.Find("h2.jobTitle span").Text())
		company := strings.TrimSpace(s.Find("span.companyName").Text())
		link, _ := s.Find("a.jcs-JobTitle").Attr("href")
		if link != "" && !strings.HasPrefix(link, "http") {
			link = resolveURL(in.baseURL, link)
		}

		var postedAt *time.Time
		if date := strings.TrimSpace(s.Find("span.date").Text()); date != "" {
			postedAt = ParsePostedDate(date, now)
		}

		if title == "" {
			return
		}
		postings = append(postings, model.Posting{
			Title:    title,
			Company:  company,
			URL:      link,
			Location: "Germany",
			Board:    "Indeed",
			PostedAt: postedAt,
		})
	})

	return postings, nil
}
