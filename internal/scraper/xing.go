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

type Xing struct {
	client  *httpclient.Client
	baseURL string
	queries []string
}

func NewXing(client *httpclient.Client, bc config.BoardConfig) *Xing {
	return &Xing{
		client:  client,
		baseURL: "https://www.xing.com/jobs",
		queries: bc.Queries,
	}
}

func (x *Xing) Name() string {
	return "XING"
}

func (x *Xing) Search(ctx context.Context) ([]model.Posting, error) {
	var postings []model.Posting
	var firstErr error

	for _, query := range x.queries {
		found, err := x.searchQuery(ctx, query)
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

func (x *Xing) searchQuery(ctx context.Context, query string) ([]model.Posting, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("location[country]", "de")
	params.Set("sort", "date")

	searchURL := fmt.Sprintf("%s?%s", x.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("xing: building request: %w", err)
	}
	resp, err := x.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("xing: executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("xing: unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("xing: parsing HTML: %w", err)
	}

	now := time.Now()
	var postings []model.Posting
	doc.Find("article.job-item").Each(func(i int, s *goquery.Selection) {
		title := strings.TrimSpace(s.Find("h2.job-item__title").Text())
		company := strings.TrimSpace(s.Find("p.job-item__company").Text())
		link, _ := s.Find("a.job-item__link").Attr("href")
		if link != "" && !strings.HasPrefix(link, "http") {
			link = resolveURL(x.baseURL, link)
		}

		var postedAt *time.Time
		if date := strings.TrimSpace(s.Find("span.job-item__date").Text()); date != "" {
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
			Board:    "XING",
			PostedAt: postedAt,
		})
	})

	return postings, nil
}
