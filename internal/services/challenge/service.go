package challenge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/noitanemesis/nnnbot/internal/common/clock"
	"github.com/noitanemesis/nnnbot/internal/models"
	"github.com/noitanemesis/nnnbot/internal/notify"
	challengerepo "github.com/noitanemesis/nnnbot/internal/repositories/challenge"
	playerrepo "github.com/noitanemesis/nnnbot/internal/repositories/player"
	seasonrepo "github.com/noitanemesis/nnnbot/internal/repositories/season"
	"github.com/noitanemesis/nnnbot/internal/services/messaging"
	ratingsvc "github.com/noitanemesis/nnnbot/internal/services/rating"
	"github.com/noitanemesis/nnnbot/internal/tasks"
)

// defaultReportGraceWindow is how far before the scheduled time a match
// may already be reported
const defaultReportGraceWindow = 5 * time.Minute

// Config holds configuration for the challenge service
type Config struct {
	ChallengeRepo challengerepo.Repository
	PlayerRepo    playerrepo.Repository
	SeasonRepo    seasonrepo.Repository
	RatingService ratingsvc.Service
	Notifier      notify.Notifier
	Messages      messaging.Service
	Runner        tasks.Runner
	Clock         clock.Clock
	Logger        zerolog.Logger

	// ReportGraceWindow overrides defaultReportGraceWindow when positive
	ReportGraceWindow time.Duration

	// AlertsChannelID receives operator alerts, optional
	AlertsChannelID string

	// MatchResultsChannelID receives closed match results, optional
	MatchResultsChannelID string

	// ScheduledMatchesChannelID receives scheduling notices, optional
	ScheduledMatchesChannelID string
}

// service implements the Service interface
type service struct {
	challengeRepo challengerepo.Repository
	playerRepo    playerrepo.Repository
	seasonRepo    seasonrepo.Repository
	ratingService ratingsvc.Service
	notifier      notify.Notifier
	messages      messaging.Service
	runner        tasks.Runner
	clock         clock.Clock
	logger        zerolog.Logger

	reportGraceWindow         time.Duration
	alertsChannelID           string
	matchResultsChannelID     string
	scheduledMatchesChannelID string
}

// New creates a new challenge service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.ChallengeRepo == nil {
		return nil, errors.New("challenge repository cannot be nil")
	}

	if cfg.PlayerRepo == nil {
		return nil, errors.New("player repository cannot be nil")
	}

	if cfg.SeasonRepo == nil {
		return nil, errors.New("season repository cannot be nil")
	}

	if cfg.RatingService == nil {
		return nil, errors.New("rating service cannot be nil")
	}

	if cfg.Notifier == nil {
		return nil, errors.New("notifier cannot be nil")
	}

	if cfg.Messages == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	if cfg.Runner == nil {
		return nil, errors.New("runner cannot be nil")
	}

	if cfg.Clock == nil {
		cfg.Clock = &clock.DefaultClock{}
	}

	graceWindow := cfg.ReportGraceWindow
	if graceWindow <= 0 {
		graceWindow = defaultReportGraceWindow
	}

	return &service{
		challengeRepo:             cfg.ChallengeRepo,
		playerRepo:                cfg.PlayerRepo,
		seasonRepo:                cfg.SeasonRepo,
		ratingService:             cfg.RatingService,
		notifier:                  cfg.Notifier,
		messages:                  cfg.Messages,
		runner:                    cfg.Runner,
		clock:                     cfg.Clock,
		logger:                    cfg.Logger,
		reportGraceWindow:         graceWindow,
		alertsChannelID:           cfg.AlertsChannelID,
		matchResultsChannelID:     cfg.MatchResultsChannelID,
		scheduledMatchesChannelID: cfg.ScheduledMatchesChannelID,
	}, nil
}

// CreateChallenge issues a new challenge between two players. A pair can
// only have one open challenge at a time.
func (s *service) CreateChallenge(ctx context.Context, input *CreateChallengeInput) (*CreateChallengeOutput, error) {
	if input == nil || input.ChallengingPlayerID == 0 || input.ChallengedPlayerID == 0 {
		return nil, errors.New("input and both player IDs cannot be empty")
	}

	if input.ChallengingPlayerID == input.ChallengedPlayerID {
		return nil, ErrSelfChallenge
	}

	_, err := s.challengeRepo.FindChallenge(ctx, &challengerepo.FindChallengeInput{
		Player1ID: input.ChallengingPlayerID,
		Player2ID: input.ChallengedPlayerID,
	})
	if err == nil {
		return nil, ErrExistingChallenge
	}
	if !errors.Is(err, challengerepo.ErrChallengeNotFound) {
		return nil, fmt.Errorf("failed to check for existing challenge: %w", err)
	}

	challenging, err := s.playerRepo.GetPlayer(ctx, &playerrepo.GetPlayerInput{PlayerID: input.ChallengingPlayerID})
	if err != nil {
		return nil, fmt.Errorf("failed to get challenging player: %w", err)
	}

	challenged, err := s.playerRepo.GetPlayer(ctx, &playerrepo.GetPlayerInput{PlayerID: input.ChallengedPlayerID})
	if err != nil {
		return nil, fmt.Errorf("failed to get challenged player: %w", err)
	}

	created, err := s.challengeRepo.AddChallenge(ctx, &challengerepo.AddChallengeInput{
		ChallengingPlayerID: input.ChallengingPlayerID,
		ChallengedPlayerID:  input.ChallengedPlayerID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add challenge: %w", err)
	}

	output := &CreateChallengeOutput{Challenge: created}

	channelName, err := s.messages.GetChannelName(ctx, &messaging.GetChannelNameInput{
		ChallengingPlayerName: challenging.Name,
		ChallengedPlayerName:  challenged.Name,
		ChallengeID:           created.ID,
	})
	if err != nil {
		return output, &NotificationError{Err: err}
	}

	channelTopic, err := s.messages.GetChannelTopic(ctx, &messaging.GetChannelTopicInput{
		ChallengingPlayerName: challenging.Name,
		ChallengedPlayerName:  challenged.Name,
	})
	if err != nil {
		return output, &NotificationError{Err: err}
	}

	channel, err := s.notifier.CreatePrivateChannel(ctx, &notify.CreatePrivateChannelInput{
		Name:                  channelName.Message,
		Topic:                 channelTopic.Message,
		ParticipantDiscordIDs: []string{challenging.DiscordID, challenged.DiscordID},
	})
	if err != nil {
		return output, &NotificationError{Err: err}
	}

	updated, err := s.challengeRepo.SetChannelID(ctx, &challengerepo.SetChannelIDInput{
		ChallengeID: created.ID,
		ChannelID:   channel.ChannelID,
	})
	if err != nil {
		return output, fmt.Errorf("failed to save channel ID: %w", err)
	}
	output.Challenge = updated

	announcement, err := s.messages.GetChallengeCreatedMessage(ctx, &messaging.GetChallengeCreatedMessageInput{
		ChallengingPlayerName: challenging.Name,
		ChallengedPlayerName:  challenged.Name,
	})
	if err != nil {
		return output, &NotificationError{Err: err}
	}

	// The announcement stays pinned so the channel topic can point at it
	sent, err := s.notifier.SendMessage(ctx, &notify.SendMessageInput{
		ChannelID: channel.ChannelID,
		Content:   announcement.Message,
	})
	if err != nil {
		return output, &NotificationError{Err: err}
	}

	if err := s.notifier.PinMessage(ctx, &notify.PinMessageInput{
		ChannelID: channel.ChannelID,
		MessageID: sent.MessageID,
	}); err != nil {
		return output, &NotificationError{Err: err}
	}

	return output, nil
}

// GetChallenge retrieves a challenge
func (s *service) GetChallenge(ctx context.Context, input *GetChallengeInput) (*GetChallengeOutput, error) {
	if input == nil || input.ChallengeID == 0 {
		return nil, errors.New("input and challenge ID cannot be empty")
	}

	c, err := s.challengeRepo.GetChallenge(ctx, &challengerepo.GetChallengeInput{ChallengeID: input.ChallengeID})
	if err != nil {
		return nil, err
	}

	return &GetChallengeOutput{Challenge: c}, nil
}

// GetPendingForPlayer retrieves a player's non-closed challenges
func (s *service) GetPendingForPlayer(ctx context.Context, input *GetPendingForPlayerInput) (*GetPendingForPlayerOutput, error) {
	if input == nil || input.PlayerID == 0 {
		return nil, errors.New("input and player ID cannot be empty")
	}

	challenges, err := s.challengeRepo.GetPendingForPlayer(ctx, &challengerepo.GetPendingForPlayerInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, err
	}

	return &GetPendingForPlayerOutput{Challenges: challenges}, nil
}

// SuggestTime proposes a match time. An existing match time stays in
// place until the suggestion is confirmed.
func (s *service) SuggestTime(ctx context.Context, input *SuggestTimeInput) (*SuggestTimeOutput, error) {
	if input == nil || input.ChallengeID == 0 || input.PlayerID == 0 || input.Date.IsZero() {
		return nil, errors.New("input, challenge ID, player ID, and date cannot be empty")
	}

	c, err := s.loadActive(ctx, input.ChallengeID)
	if err != nil {
		return nil, err
	}

	if !c.Involves(input.PlayerID) {
		return nil, ErrNotAParticipant
	}

	if c.ConfirmedTime != nil {
		return nil, ErrAlreadyConfirmed
	}

	updated, err := s.challengeRepo.SuggestTime(ctx, &challengerepo.SuggestTimeInput{
		ChallengeID: input.ChallengeID,
		PlayerID:    input.PlayerID,
		Date:        input.Date,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to suggest time: %w", err)
	}

	output := &SuggestTimeOutput{Challenge: updated}

	suggester, opponent, err := s.getPlayers(ctx, updated, input.PlayerID)
	if err != nil {
		return output, &NotificationError{Err: err}
	}

	message, err := s.messages.GetTimeSuggestedMessage(ctx, &messaging.GetTimeSuggestedMessageInput{
		SuggestingPlayerName: suggester.Name,
		OpponentName:         opponent.Name,
		SuggestedTime:        input.Date,
	})
	if err != nil {
		return output, &NotificationError{Err: err}
	}

	if notifyErr := s.announce(ctx, updated.ChannelID, message.Message); notifyErr != nil {
		return output, notifyErr
	}

	return output, nil
}

// ConfirmTime accepts the pending suggestion. Only the player who did not
// make the suggestion can accept it.
func (s *service) ConfirmTime(ctx context.Context, input *ConfirmTimeInput) (*ConfirmTimeOutput, error) {
	if input == nil || input.ChallengeID == 0 || input.PlayerID == 0 {
		return nil, errors.New("input, challenge ID, and player ID cannot be empty")
	}

	c, err := s.loadActive(ctx, input.ChallengeID)
	if err != nil {
		return nil, err
	}

	if !c.Involves(input.PlayerID) {
		return nil, ErrNotAParticipant
	}

	if c.ConfirmedTime != nil {
		return nil, ErrAlreadyConfirmed
	}

	if c.SuggestedTime == nil {
		return nil, ErrNoSuggestedTime
	}

	if c.SuggestedByPlayerID == input.PlayerID {
		return nil, ErrOwnSuggestion
	}

	updated, err := s.challengeRepo.SetTime(ctx, &challengerepo.SetTimeInput{
		ChallengeID: input.ChallengeID,
		Date:        *c.SuggestedTime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set match time: %w", err)
	}

	output := &ConfirmTimeOutput{Challenge: updated}

	if notifyErr := s.announceScheduled(ctx, updated); notifyErr != nil {
		return output, notifyErr
	}

	return output, nil
}

// SetTime forces the match time without the opponent's agreement
func (s *service) SetTime(ctx context.Context, input *SetTimeInput) (*SetTimeOutput, error) {
	if input == nil || input.ChallengeID == 0 || input.Date.IsZero() {
		return nil, errors.New("input, challenge ID, and date cannot be empty")
	}

	c, err := s.loadActive(ctx, input.ChallengeID)
	if err != nil {
		return nil, err
	}

	if c.ConfirmedTime != nil {
		return nil, ErrAlreadyConfirmed
	}

	updated, err := s.challengeRepo.SetTime(ctx, &challengerepo.SetTimeInput{
		ChallengeID: input.ChallengeID,
		Date:        input.Date,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set match time: %w", err)
	}

	output := &SetTimeOutput{Challenge: updated}

	if notifyErr := s.announceScheduled(ctx, updated); notifyErr != nil {
		return output, notifyErr
	}

	return output, nil
}

// ReportMatch records a loss for the reporting player. The loser reports,
// the winner confirms.
func (s *service) ReportMatch(ctx context.Context, input *ReportMatchInput) (*ReportMatchOutput, error) {
	if input == nil || input.ChallengeID == 0 || input.PlayerID == 0 {
		return nil, errors.New("input, challenge ID, and player ID cannot be empty")
	}

	c, err := s.loadActive(ctx, input.ChallengeID)
	if err != nil {
		return nil, err
	}

	if !c.Involves(input.PlayerID) {
		return nil, ErrNotAParticipant
	}

	if c.ConfirmedTime != nil {
		return nil, ErrAlreadyConfirmed
	}

	if c.MatchTime == nil {
		return nil, ErrNoMatchTime
	}

	now := s.clock.Now()
	if now.Before(c.MatchTime.Add(-s.reportGraceWindow)) {
		return nil, ErrMatchNotPlayed
	}

	updated, err := s.challengeRepo.ReportMatch(ctx, &challengerepo.ReportMatchInput{
		ChallengeID:          input.ChallengeID,
		ReportTime:           now,
		ChallengingPlayerWon: !c.IsChallengingPlayer(input.PlayerID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to report match: %w", err)
	}

	output := &ReportMatchOutput{Challenge: updated}

	reporter, opponent, err := s.getPlayers(ctx, updated, input.PlayerID)
	if err != nil {
		return output, &NotificationError{Err: err}
	}

	message, err := s.messages.GetMatchReportedMessage(ctx, &messaging.GetMatchReportedMessageInput{
		ReportingPlayerName: reporter.Name,
		OpponentDiscordID:   opponent.DiscordID,
	})
	if err != nil {
		return output, &NotificationError{Err: err}
	}

	if notifyErr := s.announce(ctx, updated.ChannelID, message.Message); notifyErr != nil {
		return output, notifyErr
	}

	return output, nil
}

// ConfirmMatch locks in the reported result. Only the player credited
// with the win can confirm, so a player can never confirm their own
// report.
func (s *service) ConfirmMatch(ctx context.Context, input *ConfirmMatchInput) (*ConfirmMatchOutput, error) {
	if input == nil || input.ChallengeID == 0 || input.PlayerID == 0 {
		return nil, errors.New("input, challenge ID, and player ID cannot be empty")
	}

	c, err := s.loadActive(ctx, input.ChallengeID)
	if err != nil {
		return nil, err
	}

	if !c.Involves(input.PlayerID) {
		return nil, ErrNotAParticipant
	}

	if c.ConfirmedTime != nil {
		return nil, ErrAlreadyConfirmed
	}

	if c.ReportTime == nil {
		return nil, ErrNotReported
	}

	winnerID, ok := c.WinnerID()
	if !ok || winnerID != input.PlayerID {
		return nil, ErrNotTheWinner
	}

	updated, err := s.challengeRepo.ConfirmMatch(ctx, &challengerepo.ConfirmMatchInput{
		ChallengeID:   input.ChallengeID,
		ConfirmedTime: s.clock.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to confirm match: %w", err)
	}

	output := &ConfirmMatchOutput{Challenge: updated}

	if notifyErr := s.announceConfirmed(ctx, updated); notifyErr != nil {
		return output, notifyErr
	}

	return output, nil
}

// SetWinner forces the result, setting report and confirmation together
func (s *service) SetWinner(ctx context.Context, input *SetWinnerInput) (*SetWinnerOutput, error) {
	if input == nil || input.ChallengeID == 0 || input.WinnerPlayerID == 0 {
		return nil, errors.New("input, challenge ID, and winner cannot be empty")
	}

	c, err := s.loadActive(ctx, input.ChallengeID)
	if err != nil {
		return nil, err
	}

	if !c.Involves(input.WinnerPlayerID) {
		return nil, ErrNotAParticipant
	}

	now := s.clock.Now()
	updated, err := s.challengeRepo.SetWinner(ctx, &challengerepo.SetWinnerInput{
		ChallengeID:          input.ChallengeID,
		ReportTime:           now,
		ConfirmedTime:        now,
		ChallengingPlayerWon: c.IsChallengingPlayer(input.WinnerPlayerID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set winner: %w", err)
	}

	output := &SetWinnerOutput{Challenge: updated}

	if notifyErr := s.announceConfirmed(ctx, updated); notifyErr != nil {
		return output, notifyErr
	}

	return output, nil
}

// SetStat records one player's result details
func (s *service) SetStat(ctx context.Context, input *SetStatInput) (*SetStatOutput, error) {
	if input == nil || input.ChallengeID == 0 || input.PlayerID == 0 {
		return nil, errors.New("input, challenge ID, and player ID cannot be empty")
	}

	c, err := s.loadActive(ctx, input.ChallengeID)
	if err != nil {
		return nil, err
	}

	if !c.Involves(input.PlayerID) {
		return nil, ErrNotAParticipant
	}

	updated, err := s.challengeRepo.SetStat(ctx, &challengerepo.SetStatInput{
		ChallengeID:          input.ChallengeID,
		UseChallengingPlayer: c.IsChallengingPlayer(input.PlayerID),
		Depth:                input.Depth,
		Time:                 input.Time,
		Completed:            input.Completed,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set stat: %w", err)
	}

	return &SetStatOutput{Challenge: updated}, nil
}

// RemoveStat clears one player's result details
func (s *service) RemoveStat(ctx context.Context, input *RemoveStatInput) (*RemoveStatOutput, error) {
	if input == nil || input.ChallengeID == 0 || input.PlayerID == 0 {
		return nil, errors.New("input, challenge ID, and player ID cannot be empty")
	}

	c, err := s.loadActive(ctx, input.ChallengeID)
	if err != nil {
		return nil, err
	}

	if !c.Involves(input.PlayerID) {
		return nil, ErrNotAParticipant
	}

	updated, err := s.challengeRepo.RemoveStat(ctx, &challengerepo.RemoveStatInput{
		ChallengeID:          input.ChallengeID,
		UseChallengingPlayer: c.IsChallengingPlayer(input.PlayerID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to remove stat: %w", err)
	}

	return &RemoveStatOutput{Challenge: updated}, nil
}

// SetComment records one player's match comment
func (s *service) SetComment(ctx context.Context, input *SetCommentInput) (*SetCommentOutput, error) {
	if input == nil || input.ChallengeID == 0 || input.PlayerID == 0 {
		return nil, errors.New("input, challenge ID, and player ID cannot be empty")
	}

	c, err := s.loadActive(ctx, input.ChallengeID)
	if err != nil {
		return nil, err
	}

	if !c.Involves(input.PlayerID) {
		return nil, ErrNotAParticipant
	}

	updated, err := s.challengeRepo.SetComment(ctx, &challengerepo.SetCommentInput{
		ChallengeID:          input.ChallengeID,
		UseChallengingPlayer: c.IsChallengingPlayer(input.PlayerID),
		Comment:              input.Comment,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set comment: %w", err)
	}

	return &SetCommentOutput{Challenge: updated}, nil
}

// SetTitle sets or clears the challenge title and renames the match
// channel to follow it
func (s *service) SetTitle(ctx context.Context, input *SetTitleInput) (*SetTitleOutput, error) {
	if input == nil || input.ChallengeID == 0 {
		return nil, errors.New("input and challenge ID cannot be empty")
	}

	_, err := s.loadActive(ctx, input.ChallengeID)
	if err != nil {
		return nil, err
	}

	updated, err := s.challengeRepo.SetTitle(ctx, &challengerepo.SetTitleInput{
		ChallengeID: input.ChallengeID,
		Title:       input.Title,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set title: %w", err)
	}

	output := &SetTitleOutput{Challenge: updated}

	if notifyErr := s.renameChannel(ctx, updated); notifyErr != nil {
		return output, notifyErr
	}

	message, err := s.messages.GetTitleSetMessage(ctx, &messaging.GetTitleSetMessageInput{Title: input.Title})
	if err != nil {
		return output, &NotificationError{Err: err}
	}

	if notifyErr := s.announce(ctx, updated.ChannelID, message.Message); notifyErr != nil {
		return output, notifyErr
	}

	return output, nil
}

// SetPostseason marks the match as postseason or regular season
func (s *service) SetPostseason(ctx context.Context, input *SetPostseasonInput) (*SetPostseasonOutput, error) {
	if input == nil || input.ChallengeID == 0 {
		return nil, errors.New("input and challenge ID cannot be empty")
	}

	_, err := s.loadActive(ctx, input.ChallengeID)
	if err != nil {
		return nil, err
	}

	updated, err := s.challengeRepo.SetPostseason(ctx, &challengerepo.SetPostseasonInput{
		ChallengeID: input.ChallengeID,
		Postseason:  input.Postseason,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set postseason: %w", err)
	}

	return &SetPostseasonOutput{Challenge: updated}, nil
}

// RequestRematch asks the opponent for a rematch of a confirmed match
func (s *service) RequestRematch(ctx context.Context, input *RequestRematchInput) (*RequestRematchOutput, error) {
	if input == nil || input.ChallengeID == 0 || input.PlayerID == 0 {
		return nil, errors.New("input, challenge ID, and player ID cannot be empty")
	}

	c, err := s.loadActive(ctx, input.ChallengeID)
	if err != nil {
		return nil, err
	}

	if !c.Involves(input.PlayerID) {
		return nil, ErrNotAParticipant
	}

	if c.ConfirmedTime == nil {
		return nil, ErrNotConfirmed
	}

	if c.RematchedTime != nil {
		return nil, ErrAlreadyRematched
	}

	updated, err := s.challengeRepo.RequestRematch(ctx, &challengerepo.RequestRematchInput{
		ChallengeID: input.ChallengeID,
		PlayerID:    input.PlayerID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to request rematch: %w", err)
	}

	output := &RequestRematchOutput{Challenge: updated}

	requester, opponent, err := s.getPlayers(ctx, updated, input.PlayerID)
	if err != nil {
		return output, &NotificationError{Err: err}
	}

	message, err := s.messages.GetRematchRequestedMessage(ctx, &messaging.GetRematchRequestedMessageInput{
		RequestingPlayerName: requester.Name,
		OpponentDiscordID:    opponent.DiscordID,
	})
	if err != nil {
		return output, &NotificationError{Err: err}
	}

	if notifyErr := s.announce(ctx, updated.ChannelID, message.Message); notifyErr != nil {
		return output, notifyErr
	}

	return output, nil
}

// CreateRematch accepts a rematch request: the original is stamped as
// rematched and a new challenge between the same pair is created and
// scheduled immediately.
func (s *service) CreateRematch(ctx context.Context, input *CreateRematchInput) (*CreateRematchOutput, error) {
	if input == nil || input.ChallengeID == 0 || input.PlayerID == 0 {
		return nil, errors.New("input, challenge ID, and player ID cannot be empty")
	}

	c, err := s.loadActive(ctx, input.ChallengeID)
	if err != nil {
		return nil, err
	}

	if !c.Involves(input.PlayerID) {
		return nil, ErrNotAParticipant
	}

	if c.ConfirmedTime == nil {
		return nil, ErrNotConfirmed
	}

	if c.RematchedTime != nil {
		return nil, ErrAlreadyRematched
	}

	if c.RematchRequestedByPlayerID == 0 {
		return nil, ErrNoRematchRequested
	}

	if c.RematchRequestedByPlayerID == input.PlayerID {
		return nil, ErrOwnRematchRequest
	}

	now := s.clock.Now()
	updated, err := s.challengeRepo.CreateRematch(ctx, &challengerepo.CreateRematchInput{
		ChallengeID:   input.ChallengeID,
		RematchedTime: now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to stamp rematch: %w", err)
	}

	// A failed channel setup or announcement must still surface after the
	// rematch is scheduled
	var pendingNotify *NotificationError
	rematchOut, err := s.CreateChallenge(ctx, &CreateChallengeInput{
		ChallengingPlayerID: c.ChallengingPlayerID,
		ChallengedPlayerID:  c.ChallengedPlayerID,
	})
	if err != nil && !errors.As(err, &pendingNotify) {
		return nil, fmt.Errorf("failed to create rematch challenge: %w", err)
	}

	output := &CreateRematchOutput{
		Challenge: updated,
		Rematch:   rematchOut.Challenge,
	}

	// A rematch is played right away
	scheduled, err := s.challengeRepo.SetTime(ctx, &challengerepo.SetTimeInput{
		ChallengeID: rematchOut.Challenge.ID,
		Date:        now,
	})
	if err != nil {
		return output, fmt.Errorf("failed to schedule rematch: %w", err)
	}
	output.Rematch = scheduled

	if pendingNotify != nil {
		return output, pendingNotify
	}

	message, err := s.messages.GetRematchCreatedMessage(ctx, &messaging.GetRematchCreatedMessageInput{
		ChannelID: scheduled.ChannelID,
	})
	if err != nil {
		return output, &NotificationError{Err: err}
	}

	if notifyErr := s.announce(ctx, updated.ChannelID, message.Message); notifyErr != nil {
		return output, notifyErr
	}

	return output, nil
}

// Void voids the challenge or restores a voided one. Voiding a voided
// challenge, or restoring an unvoided one, is an invalid transition.
func (s *service) Void(ctx context.Context, input *VoidInput) (*VoidOutput, error) {
	if input == nil || input.ChallengeID == 0 {
		return nil, errors.New("input and challenge ID cannot be empty")
	}

	c, err := s.challengeRepo.GetChallenge(ctx, &challengerepo.GetChallengeInput{ChallengeID: input.ChallengeID})
	if err != nil {
		return nil, err
	}

	if c.CloseTime != nil {
		return nil, ErrChallengeClosed
	}

	if input.Voiding && c.Voided() {
		return nil, ErrChallengeVoided
	}

	if !input.Voiding && !c.Voided() {
		return nil, ErrChallengeNotVoided
	}

	var voidTime *time.Time
	if input.Voiding {
		now := s.clock.Now()
		voidTime = &now
	}

	updated, err := s.challengeRepo.Void(ctx, &challengerepo.VoidInput{
		ChallengeID: input.ChallengeID,
		VoidTime:    voidTime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to void challenge: %w", err)
	}

	output := &VoidOutput{Challenge: updated}

	message, err := s.messages.GetVoidStatusMessage(ctx, &messaging.GetVoidStatusMessageInput{Voided: input.Voiding})
	if err != nil {
		return output, &NotificationError{Err: err}
	}

	if notifyErr := s.announce(ctx, updated.ChannelID, message.Message); notifyErr != nil {
		return output, notifyErr
	}

	return output, nil
}

// Close ends the challenge. A challenge must be confirmed or voided
// before it can close. Closing assigns the season from the match time,
// tears down the match channel, and hands the season's recalculation to
// the background runner.
func (s *service) Close(ctx context.Context, input *CloseInput) (*CloseOutput, error) {
	if input == nil || input.ChallengeID == 0 {
		return nil, errors.New("input and challenge ID cannot be empty")
	}

	c, err := s.challengeRepo.GetChallenge(ctx, &challengerepo.GetChallengeInput{ChallengeID: input.ChallengeID})
	if err != nil {
		return nil, err
	}

	if c.CloseTime != nil {
		return nil, ErrChallengeClosed
	}

	if c.ConfirmedTime == nil && !c.Voided() {
		return nil, ErrNotCloseable
	}

	var seasonNumber int64
	if c.MatchTime != nil {
		season, err := s.seasonRepo.GetSeasonFromDate(ctx, &seasonrepo.GetSeasonFromDateInput{Date: *c.MatchTime})
		if err != nil {
			return nil, fmt.Errorf("failed to resolve season: %w", err)
		}

		// Postseason matches count toward the season before the one
		// containing the match time
		seasonNumber = season.ID
		if c.Postseason {
			seasonNumber--
		}
	}

	updated, err := s.challengeRepo.Close(ctx, &challengerepo.CloseInput{
		ChallengeID: input.ChallengeID,
		CloseTime:   s.clock.Now(),
		Season:      seasonNumber,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to close challenge: %w", err)
	}

	output := &CloseOutput{Challenge: updated}

	// The close has succeeded: the recalculation runs in the background
	// and its failures are logged, never surfaced to the closer
	if updated.ConfirmedTime != nil && !updated.Voided() && seasonNumber > 0 {
		s.logger.Info().
			Int64("challenge", updated.ID).
			Int64("season", seasonNumber).
			Msg("challenge closed, scheduling recalculation")

		s.runner.Run("recalculate-season", func(jobCtx context.Context) error {
			return s.ratingService.RecalculateSeason(jobCtx, &ratingsvc.RecalculateSeasonInput{
				Season: seasonNumber,
			})
		})
	}

	if notifyErr := s.announceClosed(ctx, updated); notifyErr != nil {
		return output, notifyErr
	}

	return output, nil
}

// loadActive loads a challenge and rejects operations on voided or
// closed ones
func (s *service) loadActive(ctx context.Context, challengeID int64) (*models.Challenge, error) {
	c, err := s.challengeRepo.GetChallenge(ctx, &challengerepo.GetChallengeInput{ChallengeID: challengeID})
	if err != nil {
		return nil, err
	}

	if c.CloseTime != nil {
		return nil, ErrChallengeClosed
	}

	if c.Voided() {
		return nil, ErrChallengeVoided
	}

	return c, nil
}

// getPlayers loads the acting player and their opponent
func (s *service) getPlayers(ctx context.Context, c *models.Challenge, actingPlayerID int64) (*models.Player, *models.Player, error) {
	acting, err := s.playerRepo.GetPlayer(ctx, &playerrepo.GetPlayerInput{PlayerID: actingPlayerID})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get player: %w", err)
	}

	opponent, err := s.playerRepo.GetPlayer(ctx, &playerrepo.GetPlayerInput{PlayerID: c.OpponentID(actingPlayerID)})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get opponent: %w", err)
	}

	return acting, opponent, nil
}

// renameChannel renames the match channel after a title change
func (s *service) renameChannel(ctx context.Context, c *models.Challenge) error {
	if c.ChannelID == "" {
		return nil
	}

	challenging, err := s.playerRepo.GetPlayer(ctx, &playerrepo.GetPlayerInput{PlayerID: c.ChallengingPlayerID})
	if err != nil {
		return &NotificationError{Err: err}
	}

	challenged, err := s.playerRepo.GetPlayer(ctx, &playerrepo.GetPlayerInput{PlayerID: c.ChallengedPlayerID})
	if err != nil {
		return &NotificationError{Err: err}
	}

	channelName, err := s.messages.GetChannelName(ctx, &messaging.GetChannelNameInput{
		ChallengingPlayerName: challenging.Name,
		ChallengedPlayerName:  challenged.Name,
		ChallengeID:           c.ID,
		Title:                 c.Title,
	})
	if err != nil {
		return &NotificationError{Err: err}
	}

	if err := s.notifier.RenameChannel(ctx, &notify.RenameChannelInput{
		ChannelID: c.ChannelID,
		Name:      channelName.Message,
	}); err != nil {
		return &NotificationError{Err: err}
	}

	return nil
}

// announce sends a message to a channel, classifying any failure as a
// notification error. Challenges without a channel skip announcements.
func (s *service) announce(ctx context.Context, channelID, content string) error {
	if channelID == "" {
		return nil
	}

	if _, err := s.notifier.SendMessage(ctx, &notify.SendMessageInput{
		ChannelID: channelID,
		Content:   content,
	}); err != nil {
		return &NotificationError{Err: err}
	}

	return nil
}

// announceScheduled posts the scheduling notice to the match channel and
// the league's scheduled matches channel
func (s *service) announceScheduled(ctx context.Context, c *models.Challenge) error {
	message, err := s.messages.GetMatchScheduledMessage(ctx, &messaging.GetMatchScheduledMessageInput{
		MatchTime: *c.MatchTime,
	})
	if err != nil {
		return &NotificationError{Err: err}
	}

	if notifyErr := s.announce(ctx, c.ChannelID, message.Message); notifyErr != nil {
		return notifyErr
	}

	return s.announce(ctx, s.scheduledMatchesChannelID, message.Message)
}

// announceConfirmed posts the confirmation to the match channel and an
// alert asking for stats and closure
func (s *service) announceConfirmed(ctx context.Context, c *models.Challenge) error {
	winnerID, ok := c.WinnerID()
	if !ok {
		return &NotificationError{Err: errors.New("confirmed match has no winner")}
	}

	winner, err := s.playerRepo.GetPlayer(ctx, &playerrepo.GetPlayerInput{PlayerID: winnerID})
	if err != nil {
		return &NotificationError{Err: err}
	}

	message, err := s.messages.GetMatchConfirmedMessage(ctx, &messaging.GetMatchConfirmedMessageInput{
		WinnerDiscordID: winner.DiscordID,
	})
	if err != nil {
		return &NotificationError{Err: err}
	}

	if notifyErr := s.announce(ctx, c.ChannelID, message.Message); notifyErr != nil {
		return notifyErr
	}

	if s.alertsChannelID == "" || c.ChannelID == "" {
		return nil
	}

	alert, err := s.messages.GetMatchConfirmedAlertMessage(ctx, &messaging.GetMatchConfirmedAlertMessageInput{
		ChannelID: c.ChannelID,
	})
	if err != nil {
		return &NotificationError{Err: err}
	}

	return s.announce(ctx, s.alertsChannelID, alert.Message)
}

// announceClosed posts the result summary to the league's match results
// channel and deletes the match channel
func (s *service) announceClosed(ctx context.Context, c *models.Challenge) error {
	if c.ConfirmedTime != nil && !c.Voided() && s.matchResultsChannelID != "" {
		challenging, err := s.playerRepo.GetPlayer(ctx, &playerrepo.GetPlayerInput{PlayerID: c.ChallengingPlayerID})
		if err != nil {
			return &NotificationError{Err: err}
		}

		challenged, err := s.playerRepo.GetPlayer(ctx, &playerrepo.GetPlayerInput{PlayerID: c.ChallengedPlayerID})
		if err != nil {
			return &NotificationError{Err: err}
		}

		winnerID, _ := c.WinnerID()
		message, err := s.messages.GetMatchResultMessage(ctx, &messaging.GetMatchResultMessageInput{
			ChallengingPlayerName: challenging.Name,
			ChallengedPlayerName:  challenged.Name,
			ChallengingPlayerWon:  winnerID == c.ChallengingPlayerID,
		})
		if err != nil {
			return &NotificationError{Err: err}
		}

		if notifyErr := s.announce(ctx, s.matchResultsChannelID, message.Message); notifyErr != nil {
			return notifyErr
		}
	}

	if c.ChannelID == "" {
		return nil
	}

	if err := s.notifier.DeleteChannel(ctx, &notify.DeleteChannelInput{ChannelID: c.ChannelID}); err != nil {
		return &NotificationError{Err: err}
	}

	return nil
}
