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

type Stepstone struct {
	client  *httpclient.Client
	baseURL string
	queries []string
}

func NewStepstone(client *httpclient.Client, bc config.BoardConfig) *Stepstone {
	return &Stepstone{
		client:  client,
		baseURL: "https://www.stepstone.de/jobs",
		queries: bc.Queries,
	}
}

func (st *Stepstone) Name() string {
	return "Stepstone"
}

func (st *Stepstone) Search(ctx context.Context) ([]model.Posting, error) {
	var postings []model.Posting
	var firstErr error

	for _, query := range st.queries {
		found, err := st.searchQuery(ctx, query)
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

func (st *Stepstone) searchQuery(ctx context.Context, query string) ([]model.Posting, error) {
	params := url.Values{}
	params.Set("fulltext", query)
	params.Set("sort", "jobPostDate-desc")

	searchURL := fmt.Sprintf("%s?%s", st.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("stepstone: building request: %w", err)
	}
	resp, err := st.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("stepstone: executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stepstone: unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("stepstone: parsing HTML: %w", err)
	}

	now := time.Now()
	var postings []model.Posting
	doc.Find("article.listing").Each(func(i int, s *goquery.Selection) {
		title := strings.TrimSpace(s.Find("h2.listing-job-headline").Text())
		company := strings.TrimSpace(s.Find("p.listing-company-name").Text())
		link, _ := s.Find("a.listing-link").Attr("href")
		if link != "" && !strings.HasPrefix(link, "http") {
			link = resolveURL(st.baseURL, link)
		}

		var postedAt *time.Time
		if date := strings.TrimSpace(s.Find("span.listing-publish-date").Text()); date != "" {
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
			Board:    "Stepstone",
			PostedAt: postedAt,
		})
	})

	return postings, nil
}
