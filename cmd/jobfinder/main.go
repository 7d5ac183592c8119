package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"jobfinder/internal/cache"
	"jobfinder/internal/config"
	"jobfinder/internal/export"
	"jobfinder/internal/httpclient"
	"jobfinder/internal/model"
	"jobfinder/internal/pipeline"
	"jobfinder/internal/scraper"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to the YAML configuration file")
	hours := flag.Int("hours", 0, "Override the recency window in hours")
	outDir := flag.String("out", "", "Override the output directory for CSV/Excel reports")
	boards := flag.String("boards", "", "Comma-separated board names to scrape (default: all configured)")
	noCache := flag.Bool("no-cache", false, "Skip the Redis result cache even when enabled in config")
	debug := flag.Bool("debug", false, "Verbose development logging")
	timeout := flag.Duration("timeout", 5*time.Minute, "Overall scraping deadline")
	flag.Parse()

	logger := newLogger(*debug)
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("loading configuration", zap.Error(err))
	}
	if *hours > 0 {
		cfg.HoursBack = *hours
	}
	if *outDir != "" {
		cfg.OutputDir = *outDir
	}
	if *boards != "" {
		keepBoards(cfg, *boards)
	}

	client, err := httpclient.New(httpclient.Options{
		ProxyURL:   cfg.HTTP.ProxyURL,
		Timeout:    time.Duration(cfg.HTTP.TimeoutSec) * time.Second,
		MinDelay:   time.Duration(cfg.HTTP.MinDelayMS) * time.Millisecond,
		MaxDelay:   time.Duration(cfg.HTTP.MaxDelayMS) * time.Millisecond,
		MaxRetries: cfg.HTTP.MaxRetries,
		Logger:     logger,
	})
	if err != nil {
		logger.Fatal("building HTTP client", zap.Error(err))
	}

	var results *cache.Cache
	if cfg.Cache.Enabled && !*noCache {
		results, err = cache.New(cfg.Cache.RedisURL, time.Duration(cfg.Cache.TTLHours)*time.Hour)
		if err != nil {
			logger.Warn("cache unavailable, scraping without it", zap.Error(err))
			results = nil
		} else {
			defer results.Close()
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	postings := gather(ctx, scraper.Registry(client, cfg, logger), results, cfg, logger)

	pl := pipeline.New(pipeline.NewClassifier(pipeline.Options{
		LevelMarkers:      cfg.Filter.LevelMarkers,
		TechnicalKeywords: cfg.Filter.TechnicalKeywords,
		GermanLocations:   cfg.Filter.GermanLocations,
	}), cfg.HoursBack, logger)

	cleaned := pl.Run(postings)

	report := export.Report{
		Postings:    cleaned,
		GeneratedAt: time.Now(),
		WindowHours: cfg.HoursBack,
		TotalFound:  len(postings),
	}

	for _, w := range writers(cfg) {
		if err := w.WriteReport(report); err != nil {
			logger.Error("writing report", zap.Error(err))
		}
	}

	top := cleaned
	if len(top) > 5 {
		top = top[:5]
	}
	for _, p := range top {
		logger.Info("top match",
			zap.Int("rank", p.Rank),
			zap.String("title", p.Title),
			zap.String("company", p.Company),
			zap.String("url", p.URL))
	}
	logger.Info("run complete",
		zap.Int("scraped", len(postings)),
		zap.Int("matched", len(cleaned)),
		zap.Any("by_board", report.BoardCounts()))
}

func newLogger(debug bool) *zap.Logger {
	var logger *zap.Logger
	var err error
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "building logger: %v\n", err)
		os.Exit(1)
	}
	return logger
}

// keepBoards restricts cfg.Boards to the comma-separated names given on
// the command line.
func keepBoards(cfg *config.Config, list string) {
	want := make(map[string]bool)
	for _, name := range strings.Split(list, ",") {
		want[strings.ToLower(strings.TrimSpace(name))] = true
	}
	for name := range cfg.Boards {
		if !want[name] {
			delete(cfg.Boards, name)
		}
	}
	if !want["companies"] {
		cfg.Companies = nil
	}
}

// gather runs every scraper concurrently and collects their postings. A
// failed scraper costs a warning, not the run.
func gather(ctx context.Context, scrapers []scraper.Scraper, results *cache.Cache, cfg *config.Config, logger *zap.Logger) []model.Posting {
	var (
		mu       sync.Mutex
		postings []model.Posting
		wg       sync.WaitGroup
	)

	for _, s := range scrapers {
		wg.Add(1)
		go func(s scraper.Scraper) {
			defer wg.Done()

			queries := boardQueries(cfg, s.Name())
			if results != nil {
				if cached, ok := results.Get(ctx, s.Name(), queries); ok {
					logger.Info("using cached results",
						zap.String("board", s.Name()),
						zap.Int("postings", len(cached)))
					mu.Lock()
					postings = append(postings, cached...)
					mu.Unlock()
					return
				}
			}

			logger.Info("scraping", zap.String("board", s.Name()))
			found, err := s.Search(ctx)
			if err != nil {
				logger.Warn("scraper failed",
					zap.String("board", s.Name()),
					zap.Error(err))
				return
			}

			if results != nil {
				if err := results.Set(ctx, s.Name(), queries, found); err != nil {
					logger.Warn("caching results failed",
						zap.String("board", s.Name()),
						zap.Error(err))
				}
			}

			mu.Lock()
			postings = append(postings, found...)
			mu.Unlock()
		}(s)
	}
	wg.Wait()

	return postings
}

func boardQueries(cfg *config.Config, name string) []string {
	if bc, ok := cfg.Boards[strings.ToLower(name)]; ok {
		return bc.Queries
	}
	return nil
}

func writers(cfg *config.Config) []export.ResultWriter {
	ws := []export.ResultWriter{export.NewConsolePrinter()}

	if cfg.OutputDir != "" {
		ws = append(ws,
			export.NewCSVWriter(cfg.OutputDir),
			export.NewExcelWriter(cfg.OutputDir))
	}
	if cfg.Notify.TelegramToken != "" && cfg.Notify.TelegramChatID != "" {
		ws = append(ws, export.NewTelegramWriter(cfg.Notify.TelegramToken, cfg.Notify.TelegramChatID))
	}
	if cfg.Notify.DiscordWebhook != "" {
		ws = append(ws, export.NewDiscordWriter(cfg.Notify.DiscordWebhook))
	}
	return ws
}
