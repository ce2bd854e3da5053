package player

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/noitanemesis/nnnbot/internal/models"
)

const (
	// Key prefixes for Redis
	playerKeyPrefix  = "player:"
	discordKeyPrefix = "player:discord:"
	playerIDCounter  = "player:id"
)

// ErrPlayerNotFound is returned when a player is not found
var ErrPlayerNotFound = errors.New("player not found")

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed player repository
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

// CreatePlayer allocates the next player ID and persists the player
func (r *redisRepository) CreatePlayer(ctx context.Context, input *CreatePlayerInput) (*models.Player, error) {
	if input == nil || input.DiscordID == "" {
		return nil, errors.New("input and Discord ID cannot be empty")
	}

	id, err := r.client.Incr(ctx, playerIDCounter).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to allocate player ID: %w", err)
	}

	player := &models.Player{
		ID:        id,
		DiscordID: input.DiscordID,
		Name:      input.Name,
		Timezone:  input.Timezone,
		Active:    true,
	}

	if err := r.SavePlayer(ctx, &SavePlayerInput{Player: player}); err != nil {
		return nil, err
	}

	return player, nil
}

// SavePlayer persists a player to Redis
func (r *redisRepository) SavePlayer(ctx context.Context, input *SavePlayerInput) error {
	if input == nil || input.Player == nil {
		return errors.New("input and player cannot be nil")
	}

	playerJSON, err := json.Marshal(input.Player)
	if err != nil {
		return fmt.Errorf("failed to marshal player: %w", err)
	}

	pipe := r.client.Pipeline()

	playerKey := fmt.Sprintf("%s%d", playerKeyPrefix, input.Player.ID)
	pipe.Set(ctx, playerKey, playerJSON, 0)

	if input.Player.DiscordID != "" {
		discordKey := fmt.Sprintf("%s%s", discordKeyPrefix, input.Player.DiscordID)
		pipe.Set(ctx, discordKey, input.Player.ID, 0)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}

	return nil
}

// GetPlayer retrieves a player by ID from Redis
func (r *redisRepository) GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error) {
	if input == nil || input.PlayerID == 0 {
		return nil, errors.New("input and player ID cannot be empty")
	}

	playerKey := fmt.Sprintf("%s%d", playerKeyPrefix, input.PlayerID)
	playerJSON, err := r.client.Get(ctx, playerKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	var player models.Player
	if err := json.Unmarshal([]byte(playerJSON), &player); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player: %w", err)
	}

	return &player, nil
}

// GetPlayerByDiscordID retrieves a player by Discord user ID from Redis
func (r *redisRepository) GetPlayerByDiscordID(ctx context.Context, input *GetPlayerByDiscordIDInput) (*models.Player, error) {
	if input == nil || input.DiscordID == "" {
		return nil, errors.New("input and Discord ID cannot be empty")
	}

	discordKey := fmt.Sprintf("%s%s", discordKeyPrefix, input.DiscordID)
	playerID, err := r.client.Get(ctx, discordKey).Int64()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player ID for Discord ID: %w", err)
	}

	return r.GetPlayer(ctx, &GetPlayerInput{
		PlayerID: playerID,
	})
}
