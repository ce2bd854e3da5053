package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// matchTimeLayout is how match times appear in announcements, always UTC
const matchTimeLayout = "Mon, Jan 2, 2006 3:04 PM MST"

// service implements the Service interface
type service struct{}

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct{}

// NewService creates a new messaging service
func NewService(cfg *ServiceConfig) (Service, error) {
	return &service{}, nil
}

func (s *service) GetChallengeCreatedMessage(ctx context.Context, input *GetChallengeCreatedMessageInput) (*GetMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return &GetMessageOutput{
		Message: fmt.Sprintf("%s challenged %s.", input.ChallengingPlayerName, input.ChallengedPlayerName),
	}, nil
}

// GetChannelName builds a channel-safe name from both players and the
// challenge ID, or from the challenge title once one is set
func (s *service) GetChannelName(ctx context.Context, input *GetChannelNameInput) (*GetMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Title != "" {
		return &GetMessageOutput{
			Message: fmt.Sprintf("%s-%d", channelSafe(input.Title), input.ChallengeID),
		}, nil
	}

	return &GetMessageOutput{
		Message: fmt.Sprintf("%s-%s-%d",
			channelSafe(input.ChallengingPlayerName),
			channelSafe(input.ChallengedPlayerName),
			input.ChallengeID),
	}, nil
}

func (s *service) GetChannelTopic(ctx context.Context, input *GetChannelTopicInput) (*GetMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return &GetMessageOutput{
		Message: fmt.Sprintf("%s vs %s - View the pinned post for challenge information.",
			input.ChallengingPlayerName, input.ChallengedPlayerName),
	}, nil
}

func (s *service) GetTimeSuggestedMessage(ctx context.Context, input *GetTimeSuggestedMessageInput) (*GetMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return &GetMessageOutput{
		Message: fmt.Sprintf("**%s** is suggesting to play the match at %s.  **%s**, use `!confirmtime` to agree to this suggestion.",
			input.SuggestingPlayerName,
			input.SuggestedTime.UTC().Format(matchTimeLayout),
			input.OpponentName),
	}, nil
}

func (s *service) GetMatchScheduledMessage(ctx context.Context, input *GetMatchScheduledMessageInput) (*GetMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return &GetMessageOutput{
		Message: fmt.Sprintf("This match is scheduled for %s.", input.MatchTime.UTC().Format(matchTimeLayout)),
	}, nil
}

func (s *service) GetMatchReportedMessage(ctx context.Context, input *GetMatchReportedMessageInput) (*GetMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return &GetMessageOutput{
		Message: fmt.Sprintf("%s has reported this match as a loss.  <@%s>, type `!confirm` to lock in the win!",
			input.ReportingPlayerName, input.OpponentDiscordID),
	}, nil
}

func (s *service) GetMatchConfirmedMessage(ctx context.Context, input *GetMatchConfirmedMessageInput) (*GetMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return &GetMessageOutput{
		Message: fmt.Sprintf("This match has been confirmed as a win for **<@%s>**.  Interested in playing another right now?  Use the `!rematch` command!",
			input.WinnerDiscordID),
	}, nil
}

func (s *service) GetMatchConfirmedAlertMessage(ctx context.Context, input *GetMatchConfirmedAlertMessageInput) (*GetMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return &GetMessageOutput{
		Message: fmt.Sprintf("The match at <#%s> has been confirmed.  Please add stats and close the channel.",
			input.ChannelID),
	}, nil
}

func (s *service) GetMatchResultMessage(ctx context.Context, input *GetMatchResultMessageInput) (*GetMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	challengingScore, challengedScore := 0, 1
	if input.ChallengingPlayerWon {
		challengingScore, challengedScore = 1, 0
	}

	return &GetMessageOutput{
		Message: fmt.Sprintf("%s %d-%d %s",
			input.ChallengingPlayerName, challengingScore,
			challengedScore, input.ChallengedPlayerName),
	}, nil
}

func (s *service) GetRematchRequestedMessage(ctx context.Context, input *GetRematchRequestedMessageInput) (*GetMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return &GetMessageOutput{
		Message: fmt.Sprintf("%s is requesting a rematch!  <@%s>, do you accept?  The match will be scheduled immediately.  Use the `!rematch` command, and the new challenge will be created!",
			input.RequestingPlayerName, input.OpponentDiscordID),
	}, nil
}

func (s *service) GetRematchCreatedMessage(ctx context.Context, input *GetRematchCreatedMessageInput) (*GetMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return &GetMessageOutput{
		Message: fmt.Sprintf("The rematch has been created!  Visit <#%s> to get started.", input.ChannelID),
	}, nil
}

func (s *service) GetTitleSetMessage(ctx context.Context, input *GetTitleSetMessageInput) (*GetMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Title == "" {
		return &GetMessageOutput{
			Message: "The title of this challenge has been unset.",
		}, nil
	}

	return &GetMessageOutput{
		Message: fmt.Sprintf("The title of this challenge has been set to **%s**.", input.Title),
	}, nil
}

func (s *service) GetVoidStatusMessage(ctx context.Context, input *GetVoidStatusMessageInput) (*GetMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Voided {
		return &GetMessageOutput{
			Message: "This match has been voided and will be closed shortly.",
		}, nil
	}

	return &GetMessageOutput{
		Message: "This match has been restored.  See the pinned post for instructions on how to proceed.",
	}, nil
}

// GetStandingsMessage formats the season standings. Tied players share a
// rank: every row after the first of a tie shows --- instead of a number.
func (s *service) GetStandingsMessage(ctx context.Context, input *GetStandingsMessageInput) (*GetMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var sb strings.Builder
	sb.WriteString("**Top Noitas**\n")

	for i, standing := range input.Standings {
		rank := fmt.Sprintf("%d)", i+1)
		if i > 0 && standing.Rating == input.Standings[i-1].Rating {
			rank = "---"
		}

		sb.WriteString(fmt.Sprintf("\n%s %.0f - %d-%d <@%s>",
			rank, standing.Rating, standing.Won, standing.Lost, standing.DiscordID))
	}

	return &GetMessageOutput{
		Message: sb.String(),
	}, nil
}

// channelSafe lowercases a name and strips everything Discord disallows in
// channel names
func channelSafe(name string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			sb.WriteRune('-')
		}
	}

	return sb.String()
}
