package challenge

import (
	"time"

	"github.com/noitanemesis/nnnbot/internal/models"
)

type AddChallengeInput struct {
	ChallengingPlayerID int64
	ChallengedPlayerID  int64
}

type GetChallengeInput struct {
	ChallengeID int64
}

type FindChallengeInput struct {
	Player1ID int64
	Player2ID int64
}

type GetPendingForPlayerInput struct {
	PlayerID int64
}

type GetCompletedGamesForSeasonInput struct {
	Season int64
}

type SetChannelIDInput struct {
	ChallengeID int64
	ChannelID   string
}

type SuggestTimeInput struct {
	ChallengeID int64
	PlayerID    int64
	Date        time.Time
}

type SetTimeInput struct {
	ChallengeID int64
	Date        time.Time
}

type ReportMatchInput struct {
	ChallengeID          int64
	ReportTime           time.Time
	ChallengingPlayerWon bool
}

type ConfirmMatchInput struct {
	ChallengeID   int64
	ConfirmedTime time.Time
}

type SetWinnerInput struct {
	ChallengeID          int64
	ReportTime           time.Time
	ConfirmedTime        time.Time
	ChallengingPlayerWon bool
}

type SetStatInput struct {
	ChallengeID          int64
	UseChallengingPlayer bool
	Depth                int
	Time                 int
	Completed            bool
}

type RemoveStatInput struct {
	ChallengeID          int64
	UseChallengingPlayer bool
}

type SetCommentInput struct {
	ChallengeID          int64
	UseChallengingPlayer bool
	Comment              string
}

type SetTitleInput struct {
	ChallengeID int64
	Title       string
}

type SetPostseasonInput struct {
	ChallengeID int64
	Postseason  bool
}

type VoidInput struct {
	ChallengeID int64

	// VoidTime sets the void time when non-nil and clears it when nil
	VoidTime *time.Time
}

type CloseInput struct {
	ChallengeID int64
	CloseTime   time.Time
	Season      int64
}

type RequestRematchInput struct {
	ChallengeID int64
	PlayerID    int64
}

type CreateRematchInput struct {
	ChallengeID   int64
	RematchedTime time.Time
}

type SetRatingsInput struct {
	// Ratings maps challenge IDs to their recalculated rating changes
	Ratings map[int64]models.ChallengeRatings
}
