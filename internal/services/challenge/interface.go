package challenge

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/noitanemesis/nnnbot/internal/services/challenge Service

import "context"

// Service defines the interface for the challenge lifecycle. Every
// operation validates the transition, persists it, and then announces it.
// A *NotificationError return means the state was persisted and only the
// announcement failed; the output is still populated in that case.
type Service interface {
	// CreateChallenge issues a new challenge between two players and
	// provisions their private match channel
	CreateChallenge(ctx context.Context, input *CreateChallengeInput) (*CreateChallengeOutput, error)

	// GetChallenge retrieves a challenge
	GetChallenge(ctx context.Context, input *GetChallengeInput) (*GetChallengeOutput, error)

	// GetPendingForPlayer retrieves a player's non-closed challenges
	GetPendingForPlayer(ctx context.Context, input *GetPendingForPlayerInput) (*GetPendingForPlayerOutput, error)

	// SuggestTime proposes a match time to the opponent
	SuggestTime(ctx context.Context, input *SuggestTimeInput) (*SuggestTimeOutput, error)

	// ConfirmTime accepts the opponent's suggested time as the match time
	ConfirmTime(ctx context.Context, input *ConfirmTimeInput) (*ConfirmTimeOutput, error)

	// SetTime forces the match time, bypassing the two-party agreement
	SetTime(ctx context.Context, input *SetTimeInput) (*SetTimeOutput, error)

	// ReportMatch records a loss for the reporting player
	ReportMatch(ctx context.Context, input *ReportMatchInput) (*ReportMatchOutput, error)

	// ConfirmMatch locks in a reported result, confirmed by the winner
	ConfirmMatch(ctx context.Context, input *ConfirmMatchInput) (*ConfirmMatchOutput, error)

	// SetWinner forces the result, bypassing the report and confirm
	// two-step
	SetWinner(ctx context.Context, input *SetWinnerInput) (*SetWinnerOutput, error)

	// SetStat records a player's depth, time, and completion
	SetStat(ctx context.Context, input *SetStatInput) (*SetStatOutput, error)

	// RemoveStat clears a player's depth, time, and completion
	RemoveStat(ctx context.Context, input *RemoveStatInput) (*RemoveStatOutput, error)

	// SetComment records a player's match comment
	SetComment(ctx context.Context, input *SetCommentInput) (*SetCommentOutput, error)

	// SetTitle sets or clears the challenge title
	SetTitle(ctx context.Context, input *SetTitleInput) (*SetTitleOutput, error)

	// SetPostseason marks the match as postseason or regular season
	SetPostseason(ctx context.Context, input *SetPostseasonInput) (*SetPostseasonOutput, error)

	// RequestRematch asks the opponent for a rematch
	RequestRematch(ctx context.Context, input *RequestRematchInput) (*RequestRematchOutput, error)

	// CreateRematch accepts a rematch request and creates the new
	// challenge
	CreateRematch(ctx context.Context, input *CreateRematchInput) (*CreateRematchOutput, error)

	// Void excludes the challenge from all aggregates, or restores it
	Void(ctx context.Context, input *VoidInput) (*VoidOutput, error)

	// Close ends the challenge, assigns its season, and triggers the
	// season's rating recalculation
	Close(ctx context.Context, input *CloseInput) (*CloseOutput, error)
}
