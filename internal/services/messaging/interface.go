package messaging

import "context"

// Service defines the interface for league announcement text. It is pure
// formatting: the challenge and rating services decide when to announce,
// this service decides the wording.
type Service interface {
	// GetChallengeCreatedMessage returns the announcement for a new
	// challenge
	GetChallengeCreatedMessage(ctx context.Context, input *GetChallengeCreatedMessageInput) (*GetMessageOutput, error)

	// GetChannelName returns the name for a challenge's private channel
	GetChannelName(ctx context.Context, input *GetChannelNameInput) (*GetMessageOutput, error)

	// GetChannelTopic returns the topic for a challenge's private channel
	GetChannelTopic(ctx context.Context, input *GetChannelTopicInput) (*GetMessageOutput, error)

	// GetTimeSuggestedMessage returns the announcement for a suggested
	// match time
	GetTimeSuggestedMessage(ctx context.Context, input *GetTimeSuggestedMessageInput) (*GetMessageOutput, error)

	// GetMatchScheduledMessage returns the announcement for an agreed
	// match time
	GetMatchScheduledMessage(ctx context.Context, input *GetMatchScheduledMessageInput) (*GetMessageOutput, error)

	// GetMatchReportedMessage returns the announcement for a reported
	// loss
	GetMatchReportedMessage(ctx context.Context, input *GetMatchReportedMessageInput) (*GetMessageOutput, error)

	// GetMatchConfirmedMessage returns the announcement for a confirmed
	// result
	GetMatchConfirmedMessage(ctx context.Context, input *GetMatchConfirmedMessageInput) (*GetMessageOutput, error)

	// GetMatchConfirmedAlertMessage returns the alert asking for stats
	// and closure after a result is confirmed
	GetMatchConfirmedAlertMessage(ctx context.Context, input *GetMatchConfirmedAlertMessageInput) (*GetMessageOutput, error)

	// GetMatchResultMessage returns the closed match's result summary
	GetMatchResultMessage(ctx context.Context, input *GetMatchResultMessageInput) (*GetMessageOutput, error)

	// GetRematchRequestedMessage returns the announcement for a rematch
	// request
	GetRematchRequestedMessage(ctx context.Context, input *GetRematchRequestedMessageInput) (*GetMessageOutput, error)

	// GetRematchCreatedMessage returns the announcement for a created
	// rematch
	GetRematchCreatedMessage(ctx context.Context, input *GetRematchCreatedMessageInput) (*GetMessageOutput, error)

	// GetTitleSetMessage returns the announcement for a set or cleared
	// title
	GetTitleSetMessage(ctx context.Context, input *GetTitleSetMessageInput) (*GetMessageOutput, error)

	// GetVoidStatusMessage returns the announcement for a voided or
	// restored challenge
	GetVoidStatusMessage(ctx context.Context, input *GetVoidStatusMessageInput) (*GetMessageOutput, error)

	// GetStandingsMessage returns the season standings text
	GetStandingsMessage(ctx context.Context, input *GetStandingsMessageInput) (*GetMessageOutput, error)
}
