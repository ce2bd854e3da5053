package notify

type CreatePrivateChannelInput struct {
	// Name is the channel name
	Name string

	// Topic is the channel topic, optional
	Topic string

	// ParticipantDiscordIDs are the Discord users allowed to see the
	// channel
	ParticipantDiscordIDs []string
}

type CreatePrivateChannelOutput struct {
	ChannelID string
}

type SendMessageInput struct {
	ChannelID string
	Content   string
}

type SendMessageOutput struct {
	MessageID string
}

type RenameChannelInput struct {
	ChannelID string
	Name      string
}

type DeleteChannelInput struct {
	ChannelID string
}

type PinMessageInput struct {
	ChannelID string
	MessageID string
}
