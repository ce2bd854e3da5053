package challenge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/noitanemesis/nnnbot/internal/models"
)

const (
	// Key prefixes for Redis
	challengeKeyPrefix = "challenge:"
	openPairKeyPrefix  = "challenge:open:"
	playerSetKeyPrefix = "challenge:player:"
	seasonSetKeyPrefix = "challenge:season:"
	counterKey         = "challenge:id"
)

// ErrChallengeNotFound is returned when a challenge doesn't exist
var ErrChallengeNotFound = errors.New("challenge not found")

// Config holds configuration for the Redis challenge repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed challenge repository
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

// AddChallenge allocates the next challenge ID and persists a fresh
// challenge between the two players
func (r *redisRepository) AddChallenge(ctx context.Context, input *AddChallengeInput) (*models.Challenge, error) {
	if input == nil || input.ChallengingPlayerID == 0 || input.ChallengedPlayerID == 0 {
		return nil, errors.New("input and both player IDs cannot be empty")
	}

	id, err := r.client.Incr(ctx, counterKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to allocate challenge ID: %w", err)
	}

	challenge := &models.Challenge{
		ID:                  id,
		ChallengingPlayerID: input.ChallengingPlayerID,
		ChallengedPlayerID:  input.ChallengedPlayerID,
	}

	if err := r.saveChallenge(ctx, challenge); err != nil {
		return nil, err
	}

	return challenge, nil
}

// GetChallenge retrieves a challenge by ID from Redis
func (r *redisRepository) GetChallenge(ctx context.Context, input *GetChallengeInput) (*models.Challenge, error) {
	if input == nil || input.ChallengeID == 0 {
		return nil, errors.New("input and challenge ID cannot be empty")
	}

	return r.getChallenge(ctx, input.ChallengeID)
}

// FindChallenge retrieves the open challenge between two players via the
// open-pair index. The index is keyed on the ordered player ID pair, so the
// players can be given in either order.
func (r *redisRepository) FindChallenge(ctx context.Context, input *FindChallengeInput) (*models.Challenge, error) {
	if input == nil || input.Player1ID == 0 || input.Player2ID == 0 {
		return nil, errors.New("input and both player IDs cannot be empty")
	}

	idStr, err := r.client.Get(ctx, openPairKey(input.Player1ID, input.Player2ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrChallengeNotFound
		}
		return nil, fmt.Errorf("failed to look up open challenge: %w", err)
	}

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse challenge ID %q: %w", idStr, err)
	}

	return r.getChallenge(ctx, id)
}

// GetPendingForPlayer retrieves all non-closed challenges involving the
// player, oldest first
func (r *redisRepository) GetPendingForPlayer(ctx context.Context, input *GetPendingForPlayerInput) ([]*models.Challenge, error) {
	if input == nil || input.PlayerID == 0 {
		return nil, errors.New("input and player ID cannot be empty")
	}

	challenges, err := r.getSetMembers(ctx, playerSetKey(input.PlayerID))
	if err != nil {
		return nil, err
	}

	sort.Slice(challenges, func(i, j int) bool {
		return challenges[i].ID < challenges[j].ID
	})

	return challenges, nil
}

// GetCompletedGamesForSeason retrieves the season's games that count toward
// ratings: confirmed, closed, not voided, and not postseason. Games are
// ordered by match time ascending, with the challenge ID breaking ties.
func (r *redisRepository) GetCompletedGamesForSeason(ctx context.Context, input *GetCompletedGamesForSeasonInput) ([]*models.Challenge, error) {
	if input == nil || input.Season == 0 {
		return nil, errors.New("input and season cannot be empty")
	}

	challenges, err := r.getSetMembers(ctx, seasonSetKey(input.Season))
	if err != nil {
		return nil, err
	}

	games := make([]*models.Challenge, 0, len(challenges))
	for _, c := range challenges {
		if c.Season != input.Season || c.Postseason || c.Voided() {
			continue
		}
		if c.ConfirmedTime == nil || c.CloseTime == nil {
			continue
		}
		games = append(games, c)
	}

	sort.Slice(games, func(i, j int) bool {
		ti, tj := matchTimeOrZero(games[i]), matchTimeOrZero(games[j])
		if ti.Equal(tj) {
			return games[i].ID < games[j].ID
		}
		return ti.Before(tj)
	})

	return games, nil
}

// SetChannelID records the challenge's provisioned channel
func (r *redisRepository) SetChannelID(ctx context.Context, input *SetChannelIDInput) (*models.Challenge, error) {
	if input == nil || input.ChallengeID == 0 || input.ChannelID == "" {
		return nil, errors.New("input, challenge ID, and channel ID cannot be empty")
	}

	return r.mutate(ctx, input.ChallengeID, func(c *models.Challenge) {
		c.ChannelID = input.ChannelID
	})
}

// SuggestTime records a suggested match time and the suggesting player
func (r *redisRepository) SuggestTime(ctx context.Context, input *SuggestTimeInput) (*models.Challenge, error) {
	if input == nil || input.ChallengeID == 0 || input.PlayerID == 0 || input.Date.IsZero() {
		return nil, errors.New("input, challenge ID, player ID, and date cannot be empty")
	}

	return r.mutate(ctx, input.ChallengeID, func(c *models.Challenge) {
		c.SuggestedTime = &input.Date
		c.SuggestedByPlayerID = input.PlayerID
	})
}

// SetTime sets the agreed match time and clears any pending suggestion
func (r *redisRepository) SetTime(ctx context.Context, input *SetTimeInput) (*models.Challenge, error) {
	if input == nil || input.ChallengeID == 0 || input.Date.IsZero() {
		return nil, errors.New("input, challenge ID, and date cannot be empty")
	}

	return r.mutate(ctx, input.ChallengeID, func(c *models.Challenge) {
		c.MatchTime = &input.Date
		c.SuggestedTime = nil
		c.SuggestedByPlayerID = 0
	})
}

// ReportMatch records the report time and both players' win flags
func (r *redisRepository) ReportMatch(ctx context.Context, input *ReportMatchInput) (*models.Challenge, error) {
	if input == nil || input.ChallengeID == 0 || input.ReportTime.IsZero() {
		return nil, errors.New("input, challenge ID, and report time cannot be empty")
	}

	return r.mutate(ctx, input.ChallengeID, func(c *models.Challenge) {
		c.ReportTime = &input.ReportTime
		setResult(c, input.ChallengingPlayerWon)
	})
}

// ConfirmMatch records the confirmation time
func (r *redisRepository) ConfirmMatch(ctx context.Context, input *ConfirmMatchInput) (*models.Challenge, error) {
	if input == nil || input.ChallengeID == 0 || input.ConfirmedTime.IsZero() {
		return nil, errors.New("input, challenge ID, and confirmed time cannot be empty")
	}

	return r.mutate(ctx, input.ChallengeID, func(c *models.Challenge) {
		c.ConfirmedTime = &input.ConfirmedTime
	})
}

// SetWinner records the result together with report and confirmation times
func (r *redisRepository) SetWinner(ctx context.Context, input *SetWinnerInput) (*models.Challenge, error) {
	if input == nil || input.ChallengeID == 0 || input.ReportTime.IsZero() || input.ConfirmedTime.IsZero() {
		return nil, errors.New("input, challenge ID, report time, and confirmed time cannot be empty")
	}

	return r.mutate(ctx, input.ChallengeID, func(c *models.Challenge) {
		c.ReportTime = &input.ReportTime
		c.ConfirmedTime = &input.ConfirmedTime
		setResult(c, input.ChallengingPlayerWon)
	})
}

// SetStat records one player's depth, time, and completion
func (r *redisRepository) SetStat(ctx context.Context, input *SetStatInput) (*models.Challenge, error) {
	if input == nil || input.ChallengeID == 0 {
		return nil, errors.New("input and challenge ID cannot be empty")
	}

	return r.mutate(ctx, input.ChallengeID, func(c *models.Challenge) {
		stats := sideStats(c, input.UseChallengingPlayer)
		depth, duration, completed := input.Depth, input.Time, input.Completed
		stats.Depth = &depth
		stats.Time = &duration
		stats.Completed = &completed
	})
}

// RemoveStat clears one player's depth, time, and completion, leaving the
// result and comment in place
func (r *redisRepository) RemoveStat(ctx context.Context, input *RemoveStatInput) (*models.Challenge, error) {
	if input == nil || input.ChallengeID == 0 {
		return nil, errors.New("input and challenge ID cannot be empty")
	}

	return r.mutate(ctx, input.ChallengeID, func(c *models.Challenge) {
		stats := sideStats(c, input.UseChallengingPlayer)
		stats.Depth = nil
		stats.Time = nil
		stats.Completed = nil
	})
}

// SetComment records one player's match comment
func (r *redisRepository) SetComment(ctx context.Context, input *SetCommentInput) (*models.Challenge, error) {
	if input == nil || input.ChallengeID == 0 {
		return nil, errors.New("input and challenge ID cannot be empty")
	}

	return r.mutate(ctx, input.ChallengeID, func(c *models.Challenge) {
		sideStats(c, input.UseChallengingPlayer).Comment = input.Comment
	})
}

// SetTitle sets or clears the challenge title
func (r *redisRepository) SetTitle(ctx context.Context, input *SetTitleInput) (*models.Challenge, error) {
	if input == nil || input.ChallengeID == 0 {
		return nil, errors.New("input and challenge ID cannot be empty")
	}

	return r.mutate(ctx, input.ChallengeID, func(c *models.Challenge) {
		c.Title = input.Title
	})
}

// SetPostseason sets the postseason flag
func (r *redisRepository) SetPostseason(ctx context.Context, input *SetPostseasonInput) (*models.Challenge, error) {
	if input == nil || input.ChallengeID == 0 {
		return nil, errors.New("input and challenge ID cannot be empty")
	}

	return r.mutate(ctx, input.ChallengeID, func(c *models.Challenge) {
		c.Postseason = input.Postseason
	})
}

// Void sets or clears the void time
func (r *redisRepository) Void(ctx context.Context, input *VoidInput) (*models.Challenge, error) {
	if input == nil || input.ChallengeID == 0 {
		return nil, errors.New("input and challenge ID cannot be empty")
	}

	return r.mutate(ctx, input.ChallengeID, func(c *models.Challenge) {
		c.VoidTime = input.VoidTime
	})
}

// Close records the close time and the assigned season. A voided
// challenge without a match time closes with no season.
func (r *redisRepository) Close(ctx context.Context, input *CloseInput) (*models.Challenge, error) {
	if input == nil || input.ChallengeID == 0 || input.CloseTime.IsZero() {
		return nil, errors.New("input, challenge ID, and close time cannot be empty")
	}

	return r.mutate(ctx, input.ChallengeID, func(c *models.Challenge) {
		c.CloseTime = &input.CloseTime
		c.Season = input.Season
	})
}

// RequestRematch records which player requested a rematch
func (r *redisRepository) RequestRematch(ctx context.Context, input *RequestRematchInput) (*models.Challenge, error) {
	if input == nil || input.ChallengeID == 0 || input.PlayerID == 0 {
		return nil, errors.New("input, challenge ID, and player ID cannot be empty")
	}

	return r.mutate(ctx, input.ChallengeID, func(c *models.Challenge) {
		c.RematchRequestedByPlayerID = input.PlayerID
	})
}

// CreateRematch stamps the challenge as having spawned a rematch
func (r *redisRepository) CreateRematch(ctx context.Context, input *CreateRematchInput) (*models.Challenge, error) {
	if input == nil || input.ChallengeID == 0 || input.RematchedTime.IsZero() {
		return nil, errors.New("input, challenge ID, and rematched time cannot be empty")
	}

	return r.mutate(ctx, input.ChallengeID, func(c *models.Challenge) {
		c.RematchedTime = &input.RematchedTime
	})
}

// SetRatings writes recalculated rating changes onto each challenge
func (r *redisRepository) SetRatings(ctx context.Context, input *SetRatingsInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	for challengeID, ratings := range input.Ratings {
		ratings := ratings
		if _, err := r.mutate(ctx, challengeID, func(c *models.Challenge) {
			c.Ratings = &ratings
		}); err != nil {
			return err
		}
	}

	return nil
}

// mutate loads a challenge, applies the change, and saves it back along
// with its indexes
func (r *redisRepository) mutate(ctx context.Context, challengeID int64, apply func(*models.Challenge)) (*models.Challenge, error) {
	challenge, err := r.getChallenge(ctx, challengeID)
	if err != nil {
		return nil, err
	}

	apply(challenge)

	if err := r.saveChallenge(ctx, challenge); err != nil {
		return nil, err
	}

	return challenge, nil
}

func (r *redisRepository) getChallenge(ctx context.Context, challengeID int64) (*models.Challenge, error) {
	challengeJSON, err := r.client.Get(ctx, challengeKey(challengeID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrChallengeNotFound
		}
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}

	var challenge models.Challenge
	if err := json.Unmarshal([]byte(challengeJSON), &challenge); err != nil {
		return nil, fmt.Errorf("failed to unmarshal challenge: %w", err)
	}

	return &challenge, nil
}

// saveChallenge writes the challenge document and keeps its indexes in
// step: the open-pair pointer, both players' pending sets, and the season
// membership set.
func (r *redisRepository) saveChallenge(ctx context.Context, challenge *models.Challenge) error {
	challengeJSON, err := json.Marshal(challenge)
	if err != nil {
		return fmt.Errorf("failed to marshal challenge: %w", err)
	}

	idStr := strconv.FormatInt(challenge.ID, 10)

	pipe := r.client.Pipeline()
	pipe.Set(ctx, challengeKey(challenge.ID), challengeJSON, 0)

	pairKey := openPairKey(challenge.ChallengingPlayerID, challenge.ChallengedPlayerID)
	if challenge.Open() {
		pipe.Set(ctx, pairKey, idStr, 0)
	} else {
		pipe.Del(ctx, pairKey)
	}

	challengingKey := playerSetKey(challenge.ChallengingPlayerID)
	challengedKey := playerSetKey(challenge.ChallengedPlayerID)
	if challenge.CloseTime == nil {
		pipe.SAdd(ctx, challengingKey, idStr)
		pipe.SAdd(ctx, challengedKey, idStr)
	} else {
		pipe.SRem(ctx, challengingKey, idStr)
		pipe.SRem(ctx, challengedKey, idStr)
	}

	if challenge.Season != 0 {
		pipe.SAdd(ctx, seasonSetKey(challenge.Season), idStr)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save challenge: %w", err)
	}

	return nil
}

// getSetMembers loads every challenge listed in a set index
func (r *redisRepository) getSetMembers(ctx context.Context, key string) ([]*models.Challenge, error) {
	members, err := r.client.SMembers(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get challenge index %q: %w", key, err)
	}

	challenges := make([]*models.Challenge, 0, len(members))
	for _, member := range members {
		id, err := strconv.ParseInt(member, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse challenge ID %q: %w", member, err)
		}

		challenge, err := r.getChallenge(ctx, id)
		if err != nil {
			return nil, err
		}
		challenges = append(challenges, challenge)
	}

	return challenges, nil
}

// setResult writes both players' win flags from the challenging player's
// perspective
func setResult(c *models.Challenge, challengingPlayerWon bool) {
	c.EnsureStats()

	won := challengingPlayerWon
	lost := !challengingPlayerWon
	c.Stats.ChallengingPlayer.Won = &won
	c.Stats.ChallengedPlayer.Won = &lost
}

func sideStats(c *models.Challenge, useChallengingPlayer bool) *models.PlayerStats {
	c.EnsureStats()

	if useChallengingPlayer {
		return c.Stats.ChallengingPlayer
	}

	return c.Stats.ChallengedPlayer
}

func matchTimeOrZero(c *models.Challenge) time.Time {
	if c.MatchTime == nil {
		return time.Time{}
	}

	return *c.MatchTime
}

func challengeKey(challengeID int64) string {
	return fmt.Sprintf("%s%d", challengeKeyPrefix, challengeID)
}

// openPairKey builds the open-challenge index key for a player pair. The
// lower ID always comes first so the key is order independent.
func openPairKey(player1ID, player2ID int64) string {
	lo, hi := player1ID, player2ID
	if lo > hi {
		lo, hi = hi, lo
	}

	return fmt.Sprintf("%s%d:%d", openPairKeyPrefix, lo, hi)
}

func playerSetKey(playerID int64) string {
	return fmt.Sprintf("%s%d", playerSetKeyPrefix, playerID)
}

func seasonSetKey(season int64) string {
	return fmt.Sprintf("%s%d", seasonSetKeyPrefix, season)
}
