package notify

//go:generate mockgen -package=mocks -destination=mocks/mock_notifier.go github.com/noitanemesis/nnnbot/internal/notify Notifier

import "context"

// Notifier defines the interface for the league's Discord side effects.
// Services call it after persisting state; a notifier failure never rolls
// back what was persisted.
type Notifier interface {
	// CreatePrivateChannel creates a text channel visible only to the
	// given participants
	CreatePrivateChannel(ctx context.Context, input *CreatePrivateChannelInput) (*CreatePrivateChannelOutput, error)

	// SendMessage posts a message to a channel
	SendMessage(ctx context.Context, input *SendMessageInput) (*SendMessageOutput, error)

	// RenameChannel renames a channel
	RenameChannel(ctx context.Context, input *RenameChannelInput) error

	// DeleteChannel deletes a channel
	DeleteChannel(ctx context.Context, input *DeleteChannelInput) error

	// PinMessage pins a message to a channel, replacing any existing pins
	PinMessage(ctx context.Context, input *PinMessageInput) error
}
