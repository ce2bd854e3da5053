package challenge

import (
	"time"

	"github.com/noitanemesis/nnnbot/internal/models"
)

type CreateChallengeInput struct {
	ChallengingPlayerID int64
	ChallengedPlayerID  int64
}

type CreateChallengeOutput struct {
	Challenge *models.Challenge
}

type GetChallengeInput struct {
	ChallengeID int64
}

type GetChallengeOutput struct {
	Challenge *models.Challenge
}

type GetPendingForPlayerInput struct {
	PlayerID int64
}

type GetPendingForPlayerOutput struct {
	Challenges []*models.Challenge
}

type SuggestTimeInput struct {
	ChallengeID int64

	// PlayerID is the player suggesting the time
	PlayerID int64

	Date time.Time
}

type SuggestTimeOutput struct {
	Challenge *models.Challenge
}

type ConfirmTimeInput struct {
	ChallengeID int64

	// PlayerID is the player agreeing to the suggestion
	PlayerID int64
}

type ConfirmTimeOutput struct {
	Challenge *models.Challenge
}

type SetTimeInput struct {
	ChallengeID int64
	Date        time.Time
}

type SetTimeOutput struct {
	Challenge *models.Challenge
}

type ReportMatchInput struct {
	ChallengeID int64

	// PlayerID is the reporting player, recorded as the loser
	PlayerID int64
}

type ReportMatchOutput struct {
	Challenge *models.Challenge
}

type ConfirmMatchInput struct {
	ChallengeID int64

	// PlayerID is the confirming player, which must be the reported
	// winner
	PlayerID int64
}

type ConfirmMatchOutput struct {
	Challenge *models.Challenge
}

type SetWinnerInput struct {
	ChallengeID int64

	// WinnerPlayerID is credited with the win
	WinnerPlayerID int64
}

type SetWinnerOutput struct {
	Challenge *models.Challenge
}

type SetStatInput struct {
	ChallengeID int64
	PlayerID    int64
	Depth       int
	Time        int
	Completed   bool
}

type SetStatOutput struct {
	Challenge *models.Challenge
}

type RemoveStatInput struct {
	ChallengeID int64
	PlayerID    int64
}

type RemoveStatOutput struct {
	Challenge *models.Challenge
}

type SetCommentInput struct {
	ChallengeID int64
	PlayerID    int64
	Comment     string
}

type SetCommentOutput struct {
	Challenge *models.Challenge
}

type SetTitleInput struct {
	ChallengeID int64
	Title       string
}

type SetTitleOutput struct {
	Challenge *models.Challenge
}

type SetPostseasonInput struct {
	ChallengeID int64
	Postseason  bool
}

type SetPostseasonOutput struct {
	Challenge *models.Challenge
}

type RequestRematchInput struct {
	ChallengeID int64
	PlayerID    int64
}

type RequestRematchOutput struct {
	Challenge *models.Challenge
}

type CreateRematchInput struct {
	ChallengeID int64

	// PlayerID is the player accepting the rematch request
	PlayerID int64
}

type CreateRematchOutput struct {
	// Challenge is the original, now stamped as rematched
	Challenge *models.Challenge

	// Rematch is the newly created challenge
	Rematch *models.Challenge
}

type VoidInput struct {
	ChallengeID int64

	// Voiding voids the challenge when true and restores it when false
	Voiding bool
}

type VoidOutput struct {
	Challenge *models.Challenge
}

type CloseInput struct {
	ChallengeID int64
}

type CloseOutput struct {
	Challenge *models.Challenge
}
