package season

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/noitanemesis/nnnbot/internal/models"
)

const (
	// Key prefixes for Redis
	seasonKeyPrefix = "season:"
	seasonIndexKey  = "seasons"
)

// ErrSeasonNotFound is returned when no season contains the requested date
// or season number
var ErrSeasonNotFound = errors.New("season not found")

// Config holds configuration for the Redis season repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed season repository
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

// GetSeason retrieves a season by season number from Redis
func (r *redisRepository) GetSeason(ctx context.Context, input *GetSeasonInput) (*models.Season, error) {
	if input == nil || input.Season == 0 {
		return nil, errors.New("input and season number cannot be empty")
	}

	seasonKey := fmt.Sprintf("%s%d", seasonKeyPrefix, input.Season)
	seasonJSON, err := r.client.Get(ctx, seasonKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSeasonNotFound
		}
		return nil, fmt.Errorf("failed to get season: %w", err)
	}

	var season models.Season
	if err := json.Unmarshal([]byte(seasonJSON), &season); err != nil {
		return nil, fmt.Errorf("failed to unmarshal season: %w", err)
	}

	return &season, nil
}

// GetSeasonFromDate retrieves the season whose [startDate, endDate) range
// contains the date. When the date falls after every known season, new
// two-month seasons are appended from the latest end date, inheriting the
// latest K-factor, until one contains the date. Seasons stay contiguous:
// this never returns a season with a gap before it.
func (r *redisRepository) GetSeasonFromDate(ctx context.Context, input *GetSeasonFromDateInput) (*models.Season, error) {
	if input == nil || input.Date.IsZero() {
		return nil, errors.New("input and date cannot be empty")
	}

	seasons, err := r.getAllSeasons(ctx)
	if err != nil {
		return nil, err
	}

	if len(seasons) == 0 {
		return nil, ErrSeasonNotFound
	}

	// Dates before the first season belong to no season
	if input.Date.Before(seasons[0].StartDate) {
		return nil, ErrSeasonNotFound
	}

	for _, season := range seasons {
		if season.Contains(input.Date) {
			return season, nil
		}
	}

	// The date is past the latest season, extend until it is covered
	latest := seasons[len(seasons)-1]
	for !latest.Contains(input.Date) {
		next, err := r.CreateSeason(ctx, &CreateSeasonInput{
			StartDate: latest.EndDate,
			EndDate:   latest.EndDate.AddDate(0, 2, 0),
			K:         latest.K,
		})
		if err != nil {
			return nil, err
		}

		latest = next
	}

	return latest, nil
}

// GetSeasonNumbers retrieves all season numbers in ascending order
func (r *redisRepository) GetSeasonNumbers(ctx context.Context) ([]int64, error) {
	members, err := r.client.ZRange(ctx, seasonIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get season numbers: %w", err)
	}

	numbers := make([]int64, 0, len(members))
	for _, member := range members {
		number, err := strconv.ParseInt(member, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse season number %q: %w", member, err)
		}
		numbers = append(numbers, number)
	}

	return numbers, nil
}

// CreateSeason persists a new season with the next sequential season number
func (r *redisRepository) CreateSeason(ctx context.Context, input *CreateSeasonInput) (*models.Season, error) {
	if input == nil || input.StartDate.IsZero() || input.EndDate.IsZero() {
		return nil, errors.New("input, start date, and end date cannot be empty")
	}

	if !input.EndDate.After(input.StartDate) {
		return nil, errors.New("end date must be after start date")
	}

	numbers, err := r.GetSeasonNumbers(ctx)
	if err != nil {
		return nil, err
	}

	var id int64 = 1
	if len(numbers) > 0 {
		id = numbers[len(numbers)-1] + 1
	}

	season := &models.Season{
		ID:        id,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		K:         input.K,
	}

	seasonJSON, err := json.Marshal(season)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal season: %w", err)
	}

	pipe := r.client.Pipeline()

	seasonKey := fmt.Sprintf("%s%d", seasonKeyPrefix, season.ID)
	pipe.Set(ctx, seasonKey, seasonJSON, 0)
	pipe.ZAdd(ctx, seasonIndexKey, redis.Z{
		Score:  float64(season.ID),
		Member: strconv.FormatInt(season.ID, 10),
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to save season: %w", err)
	}

	return season, nil
}

// getAllSeasons loads every season in ascending season-number order
func (r *redisRepository) getAllSeasons(ctx context.Context) ([]*models.Season, error) {
	numbers, err := r.GetSeasonNumbers(ctx)
	if err != nil {
		return nil, err
	}

	seasons := make([]*models.Season, 0, len(numbers))
	for _, number := range numbers {
		season, err := r.GetSeason(ctx, &GetSeasonInput{Season: number})
		if err != nil {
			return nil, err
		}
		seasons = append(seasons, season)
	}

	return seasons, nil
}
