package rating

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/noitanemesis/nnnbot/internal/common/clock"
	"github.com/noitanemesis/nnnbot/internal/elo"
	"github.com/noitanemesis/nnnbot/internal/models"
	"github.com/noitanemesis/nnnbot/internal/notify"
	challengerepo "github.com/noitanemesis/nnnbot/internal/repositories/challenge"
	playerrepo "github.com/noitanemesis/nnnbot/internal/repositories/player"
	ratingrepo "github.com/noitanemesis/nnnbot/internal/repositories/rating"
	seasonrepo "github.com/noitanemesis/nnnbot/internal/repositories/season"
	"github.com/noitanemesis/nnnbot/internal/services/messaging"
)

const (
	// baselineRating is where every player starts a season
	baselineRating = 1500

	// experiencedGameCount is the game count past which a player's
	// K-factor bonus has fully decayed
	experiencedGameCount = 20
)

// Config holds configuration for the rating service
type Config struct {
	ChallengeRepo challengerepo.Repository
	RatingRepo    ratingrepo.Repository
	SeasonRepo    seasonrepo.Repository
	PlayerRepo    playerrepo.Repository
	Notifier      notify.Notifier
	Messages      messaging.Service
	Clock         clock.Clock
	Logger        zerolog.Logger

	// StandingsChannelID is where the pinned standings live. When empty,
	// recalculations skip the standings refresh.
	StandingsChannelID string
}

// service implements the Service interface
type service struct {
	challengeRepo      challengerepo.Repository
	ratingRepo         ratingrepo.Repository
	seasonRepo         seasonrepo.Repository
	playerRepo         playerrepo.Repository
	notifier           notify.Notifier
	messages           messaging.Service
	clock              clock.Clock
	logger             zerolog.Logger
	standingsChannelID string

	// recalcGroup collapses concurrent recalculations of the same season
	recalcGroup singleflight.Group
}

// New creates a new rating service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.ChallengeRepo == nil {
		return nil, errors.New("challenge repository cannot be nil")
	}

	if cfg.RatingRepo == nil {
		return nil, errors.New("rating repository cannot be nil")
	}

	if cfg.SeasonRepo == nil {
		return nil, errors.New("season repository cannot be nil")
	}

	if cfg.PlayerRepo == nil {
		return nil, errors.New("player repository cannot be nil")
	}

	if cfg.Notifier == nil {
		return nil, errors.New("notifier cannot be nil")
	}

	if cfg.Messages == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	if cfg.Clock == nil {
		cfg.Clock = &clock.DefaultClock{}
	}

	return &service{
		challengeRepo:      cfg.ChallengeRepo,
		ratingRepo:         cfg.RatingRepo,
		seasonRepo:         cfg.SeasonRepo,
		playerRepo:         cfg.PlayerRepo,
		notifier:           cfg.Notifier,
		messages:           cfg.Messages,
		clock:              cfg.Clock,
		logger:             cfg.Logger,
		standingsChannelID: cfg.StandingsChannelID,
	}, nil
}

// RecalculateSeason rebuilds a season's ratings by replaying its completed
// games in match order. Every player starts from the baseline, so the
// result depends only on the season's current game set, never on previous
// recalculations. Concurrent calls for the same season share one run.
func (s *service) RecalculateSeason(ctx context.Context, input *RecalculateSeasonInput) error {
	if input == nil || input.Season == 0 {
		return errors.New("input and season cannot be empty")
	}

	_, err, _ := s.recalcGroup.Do(strconv.FormatInt(input.Season, 10), func() (interface{}, error) {
		return nil, s.recalculateSeason(ctx, input.Season)
	})

	return err
}

func (s *service) recalculateSeason(ctx context.Context, seasonNumber int64) error {
	season, err := s.seasonRepo.GetSeason(ctx, &seasonrepo.GetSeasonInput{Season: seasonNumber})
	if err != nil {
		return fmt.Errorf("failed to get season %d: %w", seasonNumber, err)
	}

	games, err := s.challengeRepo.GetCompletedGamesForSeason(ctx, &challengerepo.GetCompletedGamesForSeasonInput{
		Season: seasonNumber,
	})
	if err != nil {
		return fmt.Errorf("failed to get completed games for season %d: %w", seasonNumber, err)
	}

	ratings := make(map[int64]float64)
	gamesPlayed := make(map[int64]int)
	changes := make(map[int64]models.ChallengeRatings, len(games))

	for _, game := range games {
		winnerID, ok := game.WinnerID()
		if !ok {
			// A confirmed game always has a result; skip rather than
			// poison the whole replay if one record is damaged
			s.logger.Warn().Int64("challenge_id", game.ID).Msg("completed game has no result, skipping")
			continue
		}

		challengingID, challengedID := game.ChallengingPlayerID, game.ChallengedPlayerID

		challengingRating := ratingOrBaseline(ratings, challengingID)
		challengedRating := ratingOrBaseline(ratings, challengedID)

		k := dynamicK(season.K, gamesPlayed[challengingID], gamesPlayed[challengedID])

		challengingActual := 0.0
		if winnerID == challengingID {
			challengingActual = 1.0
		}

		newChallenging := elo.Update(elo.Expected(challengingRating, challengedRating), challengingActual, challengingRating, k)
		newChallenged := elo.Update(elo.Expected(challengedRating, challengingRating), 1-challengingActual, challengedRating, k)

		changes[game.ID] = models.ChallengeRatings{
			ChallengingPlayerRating: newChallenging,
			ChallengedPlayerRating:  newChallenged,
			Change:                  newChallenging - challengingRating,
		}

		ratings[challengingID] = newChallenging
		ratings[challengedID] = newChallenged
		gamesPlayed[challengingID]++
		gamesPlayed[challengedID]++
	}

	seasonRatings := make([]*models.Rating, 0, len(ratings))
	for playerID, value := range ratings {
		seasonRatings = append(seasonRatings, &models.Rating{
			PlayerID: playerID,
			Season:   seasonNumber,
			Rating:   value,
		})
	}

	if err := s.ratingRepo.UpdateRatingsForSeason(ctx, &ratingrepo.UpdateRatingsForSeasonInput{
		Season:  seasonNumber,
		Ratings: seasonRatings,
	}); err != nil {
		return fmt.Errorf("failed to update ratings for season %d: %w", seasonNumber, err)
	}

	if err := s.challengeRepo.SetRatings(ctx, &challengerepo.SetRatingsInput{
		Ratings: changes,
	}); err != nil {
		return fmt.Errorf("failed to set challenge ratings for season %d: %w", seasonNumber, err)
	}

	// The standings refresh is cosmetic, a failure must not undo or fail
	// the recalculation
	if err := s.refreshStandings(ctx); err != nil {
		s.logger.Error().Err(err).Int64("season", seasonNumber).Msg("failed to refresh standings")
	}

	return nil
}

// GetForPlayerBySeason retrieves a player's rating and rank for a season
func (s *service) GetForPlayerBySeason(ctx context.Context, input *GetForPlayerBySeasonInput) (*GetForPlayerBySeasonOutput, error) {
	if input == nil || input.PlayerID == 0 || input.Season == 0 {
		return nil, errors.New("input, player ID, and season cannot be empty")
	}

	result, err := s.ratingRepo.GetForPlayerBySeason(ctx, &ratingrepo.GetForPlayerBySeasonInput{
		PlayerID: input.PlayerID,
		Season:   input.Season,
	})
	if err != nil {
		return nil, err
	}

	return &GetForPlayerBySeasonOutput{
		Rank:   result.Rank,
		Rating: result.Rating,
	}, nil
}

// GetTopPlayers retrieves a season's standings, enriched with each
// player's Discord ID and win-loss record
func (s *service) GetTopPlayers(ctx context.Context, input *GetTopPlayersInput) (*GetTopPlayersOutput, error) {
	if input == nil || input.Season == 0 {
		return nil, errors.New("input and season cannot be empty")
	}

	top, err := s.ratingRepo.GetTopPlayers(ctx, &ratingrepo.GetTopPlayersInput{
		Season: input.Season,
		Limit:  input.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get top players: %w", err)
	}

	games, err := s.challengeRepo.GetCompletedGamesForSeason(ctx, &challengerepo.GetCompletedGamesForSeasonInput{
		Season: input.Season,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get completed games: %w", err)
	}

	won := make(map[int64]int)
	lost := make(map[int64]int)
	for _, game := range games {
		winnerID, ok := game.WinnerID()
		if !ok {
			continue
		}
		won[winnerID]++
		lost[game.OpponentID(winnerID)]++
	}

	standings := make([]*models.Standing, 0, len(top))
	for _, entry := range top {
		p, err := s.playerRepo.GetPlayer(ctx, &playerrepo.GetPlayerInput{
			PlayerID: entry.PlayerID,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to get player %d: %w", entry.PlayerID, err)
		}

		standings = append(standings, &models.Standing{
			PlayerID:  entry.PlayerID,
			DiscordID: p.DiscordID,
			Rating:    entry.Rating,
			Won:       won[entry.PlayerID],
			Lost:      lost[entry.PlayerID],
		})
	}

	return &GetTopPlayersOutput{
		Standings: standings,
	}, nil
}

// refreshStandings reposts and repins the standings for the season
// containing today
func (s *service) refreshStandings(ctx context.Context) error {
	if s.standingsChannelID == "" {
		return nil
	}

	currentSeason, err := s.seasonRepo.GetSeasonFromDate(ctx, &seasonrepo.GetSeasonFromDateInput{
		Date: s.clock.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to resolve current season: %w", err)
	}

	top, err := s.GetTopPlayers(ctx, &GetTopPlayersInput{Season: currentSeason.ID})
	if err != nil {
		return err
	}

	message, err := s.messages.GetStandingsMessage(ctx, &messaging.GetStandingsMessageInput{
		Standings: top.Standings,
	})
	if err != nil {
		return err
	}

	sent, err := s.notifier.SendMessage(ctx, &notify.SendMessageInput{
		ChannelID: s.standingsChannelID,
		Content:   message.Message,
	})
	if err != nil {
		return fmt.Errorf("failed to post standings: %w", err)
	}

	if err := s.notifier.PinMessage(ctx, &notify.PinMessageInput{
		ChannelID: s.standingsChannelID,
		MessageID: sent.MessageID,
	}); err != nil {
		return fmt.Errorf("failed to pin standings: %w", err)
	}

	return nil
}

// dynamicK raises the season's base K-factor for inexperienced players.
// Each player contributes a bonus that decays linearly over their first
// twenty games.
func dynamicK(baseK, challengingGames, challengedGames int) float64 {
	return float64(baseK) + (float64(experiencedGameCount) -
		float64(min(experiencedGameCount, challengingGames)+min(experiencedGameCount, challengedGames))/2)
}

func ratingOrBaseline(ratings map[int64]float64, playerID int64) float64 {
	if rating, ok := ratings[playerID]; ok {
		return rating
	}

	return baselineRating
}
