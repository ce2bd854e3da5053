package rating

import "github.com/noitanemesis/nnnbot/internal/models"

type GetForPlayerBySeasonInput struct {
	PlayerID int64
	Season   int64
}

type GetTopPlayersInput struct {
	Season int64

	// Limit caps the number of players returned, DefaultTopPlayerLimit
	// when zero
	Limit int
}

type UpdateRatingsForSeasonInput struct {
	Season  int64
	Ratings []*models.Rating
}
