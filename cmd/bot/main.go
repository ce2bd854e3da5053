package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/cenkalti/backoff/v4"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/noitanemesis/nnnbot/internal/config"
	"github.com/noitanemesis/nnnbot/internal/notify"
	challengerepo "github.com/noitanemesis/nnnbot/internal/repositories/challenge"
	playerrepo "github.com/noitanemesis/nnnbot/internal/repositories/player"
	ratingrepo "github.com/noitanemesis/nnnbot/internal/repositories/rating"
	seasonrepo "github.com/noitanemesis/nnnbot/internal/repositories/season"
	challengesvc "github.com/noitanemesis/nnnbot/internal/services/challenge"
	"github.com/noitanemesis/nnnbot/internal/services/messaging"
	ratingsvc "github.com/noitanemesis/nnnbot/internal/services/rating"
	"github.com/noitanemesis/nnnbot/internal/tasks"
)

func main() {
	// A missing .env is fine in production, where the environment is real
	_ = godotenv.Load()

	bootLog := zerolog.New(os.Stderr)
	cfg, err := config.Load()
	if err != nil {
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	// Redis may still be coming up alongside the bot
	pingCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err = backoff.Retry(func() error {
		return redisClient.Ping(pingCtx).Err()
	}, backoff.WithContext(backoff.NewExponentialBackOff(), pingCtx))
	if err != nil {
		logger.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("failed to connect to Redis")
	}

	playerRepo, err := playerrepo.NewRedis(&playerrepo.Config{RedisClient: redisClient})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create player repository")
	}

	seasonRepo, err := seasonrepo.NewRedis(&seasonrepo.Config{RedisClient: redisClient})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create season repository")
	}

	challengeRepo, err := challengerepo.NewRedis(&challengerepo.Config{RedisClient: redisClient})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create challenge repository")
	}

	ratingRepo, err := ratingrepo.NewRedis(&ratingrepo.Config{RedisClient: redisClient})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create rating repository")
	}

	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create Discord session")
	}

	notifier, err := notify.NewDiscord(&notify.Config{
		Session:    session,
		GuildID:    cfg.GuildID,
		CategoryID: cfg.MatchCategoryID,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create notifier")
	}

	messages, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create messaging service")
	}

	runner, err := tasks.NewRunner(&tasks.Config{Logger: logger})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create runner")
	}

	ratingService, err := ratingsvc.New(&ratingsvc.Config{
		ChallengeRepo:      challengeRepo,
		RatingRepo:         ratingRepo,
		SeasonRepo:         seasonRepo,
		PlayerRepo:         playerRepo,
		Notifier:           notifier,
		Messages:           messages,
		Logger:             logger,
		StandingsChannelID: cfg.StandingsChannelID,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create rating service")
	}

	challengeService, err := challengesvc.New(&challengesvc.Config{
		ChallengeRepo:             challengeRepo,
		PlayerRepo:                playerRepo,
		SeasonRepo:                seasonRepo,
		RatingService:             ratingService,
		Notifier:                  notifier,
		Messages:                  messages,
		Runner:                    runner,
		Logger:                    logger,
		ReportGraceWindow:         cfg.ReportGraceWindow,
		AlertsChannelID:           cfg.AlertsChannelID,
		MatchResultsChannelID:     cfg.MatchResultsChannelID,
		ScheduledMatchesChannelID: cfg.ScheduledMatchesChannelID,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create challenge service")
	}

	// The gateway handler that feeds commands into the challenge service
	// is deployed separately; constructing the service here makes a
	// misconfigured environment fail at startup instead of on first use.
	_ = challengeService

	// Make sure the current season's ratings are fresh, in case the bot
	// went down between a close and its recalculation
	startCtx, startCancel := context.WithTimeout(context.Background(), 10*time.Second)
	season, err := seasonRepo.GetSeasonFromDate(startCtx, &seasonrepo.GetSeasonFromDateInput{Date: time.Now()})
	startCancel()
	switch {
	case errors.Is(err, seasonrepo.ErrSeasonNotFound):
		// A fresh league has no seasons until the first one is created
		logger.Warn().Msg("no season covers the current date, skipping startup recalculation")
	case err != nil:
		logger.Fatal().Err(err).Msg("failed to resolve current season")
	default:
		runner.Run("recalculate-season", func(ctx context.Context) error {
			return ratingService.RecalculateSeason(ctx, &ratingsvc.RecalculateSeasonInput{Season: season.ID})
		})
	}

	logger.Info().Str("guild", cfg.GuildID).Msg("bot is running")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.Info().Msg("shutting down")
	runner.Wait()

	if err := redisClient.Close(); err != nil {
		logger.Error().Err(err).Msg("failed to close Redis client")
	}
}
