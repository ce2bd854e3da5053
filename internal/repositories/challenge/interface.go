package challenge

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/noitanemesis/nnnbot/internal/repositories/challenge Repository

import (
	"context"

	"github.com/noitanemesis/nnnbot/internal/models"
)

// Repository defines the interface for challenge data persistence. The
// field-level operations mirror the challenge lifecycle: each one patches
// the stored record and returns the updated challenge.
type Repository interface {
	// AddChallenge allocates an ID for a new challenge between two
	// players and persists it
	AddChallenge(ctx context.Context, input *AddChallengeInput) (*models.Challenge, error)

	// GetChallenge retrieves a challenge by ID
	GetChallenge(ctx context.Context, input *GetChallengeInput) (*models.Challenge, error)

	// FindChallenge retrieves the open challenge between two players,
	// in either order
	FindChallenge(ctx context.Context, input *FindChallengeInput) (*models.Challenge, error)

	// GetPendingForPlayer retrieves all non-closed challenges involving
	// a player
	GetPendingForPlayer(ctx context.Context, input *GetPendingForPlayerInput) ([]*models.Challenge, error)

	// GetCompletedGamesForSeason retrieves the season's confirmed,
	// closed, non-voided, regular-season challenges in chronological
	// order
	GetCompletedGamesForSeason(ctx context.Context, input *GetCompletedGamesForSeasonInput) ([]*models.Challenge, error)

	// SetChannelID records the challenge's provisioned channel
	SetChannelID(ctx context.Context, input *SetChannelIDInput) (*models.Challenge, error)

	// SuggestTime records a suggested match time and who suggested it
	SuggestTime(ctx context.Context, input *SuggestTimeInput) (*models.Challenge, error)

	// SetTime sets the match time, clearing any suggestion
	SetTime(ctx context.Context, input *SetTimeInput) (*models.Challenge, error)

	// ReportMatch records the report time and the match result
	ReportMatch(ctx context.Context, input *ReportMatchInput) (*models.Challenge, error)

	// ConfirmMatch records the confirmation time
	ConfirmMatch(ctx context.Context, input *ConfirmMatchInput) (*models.Challenge, error)

	// SetWinner records report and confirmation together with the result
	SetWinner(ctx context.Context, input *SetWinnerInput) (*models.Challenge, error)

	// SetStat records one player's depth, time, and completion
	SetStat(ctx context.Context, input *SetStatInput) (*models.Challenge, error)

	// RemoveStat clears one player's depth, time, and completion
	RemoveStat(ctx context.Context, input *RemoveStatInput) (*models.Challenge, error)

	// SetComment records one player's match comment
	SetComment(ctx context.Context, input *SetCommentInput) (*models.Challenge, error)

	// SetTitle sets or clears the challenge title
	SetTitle(ctx context.Context, input *SetTitleInput) (*models.Challenge, error)

	// SetPostseason sets the postseason flag
	SetPostseason(ctx context.Context, input *SetPostseasonInput) (*models.Challenge, error)

	// Void sets or clears the void time
	Void(ctx context.Context, input *VoidInput) (*models.Challenge, error)

	// Close records the close time and the assigned season
	Close(ctx context.Context, input *CloseInput) (*models.Challenge, error)

	// RequestRematch records who requested a rematch
	RequestRematch(ctx context.Context, input *RequestRematchInput) (*models.Challenge, error)

	// CreateRematch stamps the challenge as rematched
	CreateRematch(ctx context.Context, input *CreateRematchInput) (*models.Challenge, error)

	// SetRatings bulk-writes per-match rating changes onto challenges
	SetRatings(ctx context.Context, input *SetRatingsInput) error
}
