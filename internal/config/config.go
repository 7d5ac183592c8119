// Package config loads the finder configuration from a YAML file with
// built-in defaults and environment overrides for secrets.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// HoursBack is the recency window: postings older than this many hours
	// are dropped (postings without a date always pass).
	HoursBack int    `yaml:"hours_back"`
	OutputDir string `yaml:"output_dir"`

	Filter    FilterConfig           `yaml:"filter"`
	HTTP      HTTPConfig             `yaml:"http"`
	Cache     CacheConfig            `yaml:"cache"`
	Boards    map[string]BoardConfig `yaml:"boards"`
	Companies map[string]string      `yaml:"companies"`
	Notify    NotifyConfig           `yaml:"notify"`
}

// FilterConfig holds the three keyword lists the classifier is built from.
type FilterConfig struct {
	LevelMarkers      []string `yaml:"level_markers"`
	TechnicalKeywords []string `yaml:"technical_keywords"`
	GermanLocations   []string `yaml:"german_locations"`
}

type HTTPConfig struct {
	ProxyURL   string `yaml:"proxy_url"`
	TimeoutSec int    `yaml:"timeout_sec"`
	MinDelayMS int    `yaml:"min_delay_ms"`
	MaxDelayMS int    `yaml:"max_delay_ms"`
	MaxRetries int    `yaml:"max_retries"`
}

// CacheConfig controls the optional Redis cache for raw per-board scrape
// results. It only caches upstream fetches; the pipeline itself remains
// stateless per run.
type CacheConfig struct {
	Enabled  bool   `yaml:"enabled"`
	RedisURL string `yaml:"redis_url"`
	TTLHours int    `yaml:"ttl_hours"`
}

type BoardConfig struct {
	Queries  []string `yaml:"queries"`
	Location string   `yaml:"location"`
}

type NotifyConfig struct {
	TelegramToken  string `yaml:"telegram_token"`
	TelegramChatID string `yaml:"telegram_chat_id"`
	DiscordWebhook string `yaml:"discord_webhook"`
}

// Load reads the YAML file at path on top of the built-in defaults, then
// applies environment overrides. A missing file is not an error: the
// defaults cover a full search for German entry-level tech roles.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Defaults()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		c.Notify.TelegramToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		c.Notify.TelegramChatID = v
	}
	if v := os.Getenv("DISCORD_WEBHOOK_URL"); v != "" {
		c.Notify.DiscordWebhook = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		c.Cache.RedisURL = v
	}
	if v := os.Getenv("HTTP_PROXY_URL"); v != "" {
		c.HTTP.ProxyURL = v
	}
}

func (c *Config) validate() error {
	if c.HoursBack <= 0 {
		return fmt.Errorf("config: hours_back must be positive, got %d", c.HoursBack)
	}
	if len(c.Filter.LevelMarkers) == 0 {
		return fmt.Errorf("config: filter.level_markers must not be empty")
	}
	if len(c.Filter.TechnicalKeywords) == 0 {
		return fmt.Errorf("config: filter.technical_keywords must not be empty")
	}
	if len(c.Filter.GermanLocations) == 0 {
		return fmt.Errorf("config: filter.german_locations must not be empty")
	}
	return nil
}
