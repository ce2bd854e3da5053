package messaging

import (
	"time"

	"github.com/noitanemesis/nnnbot/internal/models"
)

// GetMessageOutput carries formatted text for one announcement
type GetMessageOutput struct {
	Message string
}

type GetChallengeCreatedMessageInput struct {
	ChallengingPlayerName string
	ChallengedPlayerName  string
}

type GetChannelNameInput struct {
	ChallengingPlayerName string
	ChallengedPlayerName  string
	ChallengeID           int64

	// Title replaces the player-based name when set
	Title string
}

type GetChannelTopicInput struct {
	ChallengingPlayerName string
	ChallengedPlayerName  string
}

type GetTimeSuggestedMessageInput struct {
	SuggestingPlayerName string
	OpponentName         string
	SuggestedTime        time.Time
}

type GetMatchScheduledMessageInput struct {
	MatchTime time.Time
}

type GetMatchReportedMessageInput struct {
	ReportingPlayerName string
	OpponentDiscordID   string
}

type GetMatchConfirmedMessageInput struct {
	WinnerDiscordID string
}

type GetMatchConfirmedAlertMessageInput struct {
	ChannelID string
}

type GetMatchResultMessageInput struct {
	ChallengingPlayerName string
	ChallengedPlayerName  string
	ChallengingPlayerWon  bool
}

type GetRematchRequestedMessageInput struct {
	RequestingPlayerName string
	OpponentDiscordID    string
}

type GetRematchCreatedMessageInput struct {
	ChannelID string
}

type GetTitleSetMessageInput struct {
	Title string
}

type GetVoidStatusMessageInput struct {
	Voided bool
}

type GetStandingsMessageInput struct {
	Standings []*models.Standing
}
