package rating

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/noitanemesis/nnnbot/internal/services/rating Service

import "context"

// Service defines the interface for season rating operations
type Service interface {
	// RecalculateSeason replays a season's completed games from scratch
	// and persists the resulting ratings. Safe to call repeatedly; only
	// one recalculation per season runs at a time.
	RecalculateSeason(ctx context.Context, input *RecalculateSeasonInput) error

	// GetForPlayerBySeason retrieves a player's rating and rank for a
	// season
	GetForPlayerBySeason(ctx context.Context, input *GetForPlayerBySeasonInput) (*GetForPlayerBySeasonOutput, error)

	// GetTopPlayers retrieves a season's standings, best player first
	GetTopPlayers(ctx context.Context, input *GetTopPlayersInput) (*GetTopPlayersOutput, error)
}
