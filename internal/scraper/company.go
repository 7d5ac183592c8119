package scraper

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/gocolly/colly"
	"go.uber.org/zap"

	"jobfinder/internal/model"
)

// jobLinkHints mark anchor text that looks like a job listing. Career
// pages have no common markup, so this stays a deliberately generic
// heuristic; the pipeline filters out the noise it lets through.
var jobLinkHints = []string{"job", "position", "vacancy", "opening", "stelle", "karriere"}

// CompanyPages crawls the configured company career pages and harvests
// anchors that look like job listings.
type CompanyPages struct {
	companies map[string]string
	logger    *zap.Logger
	delay     time.Duration
}

func NewCompanyPages(companies map[string]string, logger *zap.Logger) *CompanyPages {
	return &CompanyPages{
		companies: companies,
		logger:    logger,
		delay:     time.Second,
	}
}

func (cp *CompanyPages) Name() string {
	return "Company Websites"
}

func (cp *CompanyPages) Search(ctx context.Context) ([]model.Posting, error) {
	// Deterministic crawl order.
	names := make([]string, 0, len(cp.companies))
	for name := range cp.companies {
		names = append(names, name)
	}
	sort.Strings(names)

	var postings []model.Posting
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return postings, err
		}
		found := cp.crawlCompany(name, cp.companies[name])
		postings = append(postings, found...)
	}
	return postings, nil
}

func (cp *CompanyPages) crawlCompany(company, careersURL string) []model.Posting {
	c := colly.NewCollector(
		colly.UserAgent("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"),
		colly.MaxDepth(1),
	)
	c.SetRequestTimeout(20 * time.Second)
	c.Limit(&colly.LimitRule{
		DomainGlob:  "*",
		Delay:       cp.delay,
		RandomDelay: cp.delay / 2,
	})

	var postings []model.Posting
	c.OnHTML("a[href]", func(e *colly.HTMLElement) {
		text := strings.TrimSpace(e.Text)
		if text == "" || !looksLikeJobLink(text) {
			return
		}
		link := e.Request.AbsoluteURL(e.Attr("href"))
		if link == "" {
			return
		}
		postings = append(postings, model.Posting{
			Title:    truncate(text, 100),
			Company:  company,
			URL:      link,
			Location: "Germany",
			Board:    "Company Website",
		})
	})

	c.OnError(func(r *colly.Response, err error) {
		cp.logger.Debug("career page fetch failed",
			zap.String("company", company),
			zap.String("url", careersURL),
			zap.Error(err))
	})

	if err := c.Visit(careersURL); err != nil {
		cp.logger.Debug("career page visit failed",
			zap.String("company", company),
			zap.Error(err))
		return nil
	}

	cp.logger.Debug("crawled career page",
		zap.String("company", company),
		zap.Int("postings", len(postings)))
	return postings
}

func looksLikeJobLink(text string) bool {
	lower := strings.ToLower(text)
	for _, hint := range jobLinkHints {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
