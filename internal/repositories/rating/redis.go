package rating

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/noitanemesis/nnnbot/internal/models"
)

const (
	// Key prefix for the per-season rating sorted sets
	ratingKeyPrefix = "rating:season:"

	// DefaultTopPlayerLimit is how many players a standings listing shows
	DefaultTopPlayerLimit = 20
)

// ErrRatingNotFound is returned when a player has no rating for a season
var ErrRatingNotFound = errors.New("rating not found")

// Config holds configuration for the Redis rating repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis. Each
// season's ratings live in one sorted set scored by rating, which makes
// rank and top-player queries single commands.
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed rating repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// GetForPlayerBySeason retrieves a player's rating and rank for a season.
// The rank counts players with a strictly greater rating plus one, so tied
// players share a rank.
func (r *redisRepository) GetForPlayerBySeason(ctx context.Context, input *GetForPlayerBySeasonInput) (*models.RankAndRating, error) {
	if input == nil || input.PlayerID == 0 || input.Season == 0 {
		return nil, errors.New("input, player ID, and season cannot be empty")
	}

	key := seasonRatingKey(input.Season)
	member := strconv.FormatInt(input.PlayerID, 10)

	score, err := r.client.ZScore(ctx, key, member).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRatingNotFound
		}
		return nil, fmt.Errorf("failed to get rating: %w", err)
	}

	greater, err := r.client.ZCount(ctx, key, "("+strconv.FormatFloat(score, 'f', -1, 64), "+inf").Result()
	if err != nil {
		return nil, fmt.Errorf("failed to count higher ratings: %w", err)
	}

	return &models.RankAndRating{
		Rank:   int(greater) + 1,
		Rating: score,
	}, nil
}

// GetTopPlayers retrieves a season's highest-rated players, best first
func (r *redisRepository) GetTopPlayers(ctx context.Context, input *GetTopPlayersInput) ([]*models.Rating, error) {
	if input == nil || input.Season == 0 {
		return nil, errors.New("input and season cannot be empty")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultTopPlayerLimit
	}

	entries, err := r.client.ZRevRangeWithScores(ctx, seasonRatingKey(input.Season), 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get top players: %w", err)
	}

	ratings := make([]*models.Rating, 0, len(entries))
	for _, entry := range entries {
		member, ok := entry.Member.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected rating member type %T", entry.Member)
		}

		playerID, err := strconv.ParseInt(member, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse player ID %q: %w", member, err)
		}

		ratings = append(ratings, &models.Rating{
			PlayerID: playerID,
			Season:   input.Season,
			Rating:   entry.Score,
		})
	}

	return ratings, nil
}

// UpdateRatingsForSeason replaces the season's rating set. A full replace
// keeps the set consistent with the season's games even when a voided
// match removed a player's only game.
func (r *redisRepository) UpdateRatingsForSeason(ctx context.Context, input *UpdateRatingsForSeasonInput) error {
	if input == nil || input.Season == 0 {
		return errors.New("input and season cannot be empty")
	}

	key := seasonRatingKey(input.Season)

	pipe := r.client.Pipeline()
	pipe.Del(ctx, key)

	if len(input.Ratings) > 0 {
		members := make([]redis.Z, 0, len(input.Ratings))
		for _, rating := range input.Ratings {
			members = append(members, redis.Z{
				Score:  rating.Rating,
				Member: strconv.FormatInt(rating.PlayerID, 10),
			})
		}
		pipe.ZAdd(ctx, key, members...)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update season ratings: %w", err)
	}

	return nil
}

func seasonRatingKey(season int64) string {
	return fmt.Sprintf("%s%d", ratingKeyPrefix, season)
}
