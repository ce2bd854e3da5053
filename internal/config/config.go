// Package config loads the bot's configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds everything the bot reads from the environment
type Config struct {
	// RedisAddr is the Redis host and port
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`

	// RedisPassword is the Redis password, empty for none
	RedisPassword string `env:"REDIS_PASSWORD"`

	// DiscordToken is the bot's Discord token
	DiscordToken string `env:"DISCORD_TOKEN,required"`

	// GuildID is the league's Discord server
	GuildID string `env:"GUILD_ID,required"`

	// MatchCategoryID is the category match channels are created under,
	// empty for the server root
	MatchCategoryID string `env:"MATCH_CATEGORY_ID"`

	// AlertsChannelID receives operator alerts
	AlertsChannelID string `env:"ALERTS_CHANNEL_ID"`

	// MatchResultsChannelID receives closed match results
	MatchResultsChannelID string `env:"MATCH_RESULTS_CHANNEL_ID"`

	// ScheduledMatchesChannelID receives scheduling notices
	ScheduledMatchesChannelID string `env:"SCHEDULED_MATCHES_CHANNEL_ID"`

	// StandingsChannelID holds the pinned season standings
	StandingsChannelID string `env:"STANDINGS_CHANNEL_ID"`

	// ReportGraceWindow is how far before the scheduled time a match may
	// be reported
	ReportGraceWindow time.Duration `env:"REPORT_GRACE_WINDOW" envDefault:"5m"`

	// LogLevel is the zerolog level name
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses the configuration from the environment
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	return &cfg, nil
}
