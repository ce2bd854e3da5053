package rating

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/noitanemesis/nnnbot/internal/repositories/rating Repository

import (
	"context"

	"github.com/noitanemesis/nnnbot/internal/models"
)

// Repository defines the interface for season rating persistence
type Repository interface {
	// GetForPlayerBySeason retrieves a player's rating and rank for a
	// season
	GetForPlayerBySeason(ctx context.Context, input *GetForPlayerBySeasonInput) (*models.RankAndRating, error)

	// GetTopPlayers retrieves a season's highest-rated players in
	// descending rating order
	GetTopPlayers(ctx context.Context, input *GetTopPlayersInput) ([]*models.Rating, error)

	// UpdateRatingsForSeason replaces a season's ratings with a freshly
	// recalculated set
	UpdateRatingsForSeason(ctx context.Context, input *UpdateRatingsForSeasonInput) error
}
