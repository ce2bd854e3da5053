package season

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/noitanemesis/nnnbot/internal/repositories/season Repository

import (
	"context"

	"github.com/noitanemesis/nnnbot/internal/models"
)

// Repository defines the interface for season data persistence
type Repository interface {
	// GetSeason retrieves a season by season number
	GetSeason(ctx context.Context, input *GetSeasonInput) (*models.Season, error)

	// GetSeasonFromDate retrieves the season containing the date,
	// lazily creating future seasons as needed
	GetSeasonFromDate(ctx context.Context, input *GetSeasonFromDateInput) (*models.Season, error)

	// GetSeasonNumbers retrieves all season numbers in ascending order
	GetSeasonNumbers(ctx context.Context) ([]int64, error)

	// CreateSeason persists a new season immediately following the
	// latest known season
	CreateSeason(ctx context.Context, input *CreateSeasonInput) (*models.Season, error)
}
