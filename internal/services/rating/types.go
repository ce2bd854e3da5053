package rating

import "github.com/noitanemesis/nnnbot/internal/models"

type RecalculateSeasonInput struct {
	Season int64
}

type GetForPlayerBySeasonInput struct {
	PlayerID int64
	Season   int64
}

type GetForPlayerBySeasonOutput struct {
	Rank   int
	Rating float64
}

type GetTopPlayersInput struct {
	Season int64

	// Limit caps the standings length, the store default when zero
	Limit int
}

type GetTopPlayersOutput struct {
	Standings []*models.Standing
}
