package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"meetmatch/internal/domain/availability"
)

type Config struct {
	DatabaseURL     string
	HTTPAddr        string
	LogLevel        string
	DefaultLocale   string
	RedisURL        string
	ResultsCacheTTL time.Duration
	DiscordToken    string
	DiscordGuildID  string
	PublicBaseURL   string
	Grid            availability.Grid
	TopN            int
	RunMigrations   bool
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	// .env is optional when variables come from the environment (Docker, CI, ...).
	_ = godotenv.Load()
	return load(os.Getenv)
}

func load(getenv func(string) string) (*Config, error) {
	env := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		DatabaseURL:    env("DATABASE_URL", "postgres://localhost:5432/meetmatch?sslmode=disable"),
		HTTPAddr:       env("HTTP_ADDR", ":8080"),
		LogLevel:       strings.ToLower(env("LOG_LEVEL", "info")),
		DefaultLocale:  env("DEFAULT_LOCALE", "en"),
		RedisURL:       env("REDIS_URL", ""),
		DiscordToken:   env("DISCORD_TOKEN", ""),
		DiscordGuildID: env("DISCORD_GUILD_ID", ""),
		PublicBaseURL:  strings.TrimRight(env("PUBLIC_BASE_URL", "http://localhost:8080"), "/"),
	}

	ttl, err := time.ParseDuration(env("RESULTS_CACHE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("config: RESULTS_CACHE_TTL is not a duration: %w", err)
	}
	cfg.ResultsCacheTTL = ttl

	grid, err := availability.NewGrid(env("GRID_START", "07:00"), env("GRID_END", "24:00"))
	if err != nil {
		return nil, fmt.Errorf("config: GRID_START/GRID_END: %w", err)
	}
	cfg.Grid = grid

	topN, err := strconv.Atoi(env("TOP_N", "5"))
	if err != nil {
		return nil, fmt.Errorf("config: TOP_N must be an integer: %w", err)
	}
	cfg.TopN = topN

	runMigrations, err := strconv.ParseBool(env("RUN_MIGRATIONS", "true"))
	if err != nil {
		return nil, fmt.Errorf("config: RUN_MIGRATIONS must be a boolean: %w", err)
	}
	cfg.RunMigrations = runMigrations

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate applies the rules that span more than one variable or need parsing.
func (c *Config) validate() error {
	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
	}

	if c.RedisURL != "" {
		if u, err := url.Parse(c.RedisURL); err != nil || (u.Scheme != "redis" && u.Scheme != "rediss") {
			return fmt.Errorf("config: REDIS_URL must be a redis:// or rediss:// URL")
		}
	}
	if c.ResultsCacheTTL <= 0 {
		return fmt.Errorf("config: RESULTS_CACHE_TTL must be positive")
	}

	for _, r := range c.DiscordGuildID {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: DISCORD_GUILD_ID must be a Discord guild id (digits only)")
		}
	}

	if c.TopN < 1 {
		return fmt.Errorf("config: TOP_N must be at least 1")
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: LOG_LEVEL must be one of debug, info, warn, error")
	}
	return nil
}

// DiscordEnabled reports whether the bot should start.
func (c *Config) DiscordEnabled() bool {
	return c.DiscordToken != ""
}

// ShareLink builds the public link for a share code.
func (c *Config) ShareLink(code string) string {
	return c.PublicBaseURL + "/e/" + code
}
