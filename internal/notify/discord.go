package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Config holds configuration for the Discord notifier
type Config struct {
	// Discord session
	Session *discordgo.Session

	// GuildID is the league's Discord server
	GuildID string

	// CategoryID is the category match channels are created under,
	// optional
	CategoryID string
}

// discordNotifier implements the Notifier interface against the Discord
// REST API
type discordNotifier struct {
	session    *discordgo.Session
	guildID    string
	categoryID string
}

// NewDiscord creates a new Discord-backed notifier
func NewDiscord(cfg *Config) (*discordNotifier, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	if cfg.GuildID == "" {
		return nil, errors.New("guild ID cannot be empty")
	}

	return &discordNotifier{
		session:    cfg.Session,
		guildID:    cfg.GuildID,
		categoryID: cfg.CategoryID,
	}, nil
}

// CreatePrivateChannel creates a text channel hidden from the guild at
// large and visible to the participants. The @everyone role shares its ID
// with the guild.
func (n *discordNotifier) CreatePrivateChannel(ctx context.Context, input *CreatePrivateChannelInput) (*CreatePrivateChannelOutput, error) {
	if input == nil || input.Name == "" || len(input.ParticipantDiscordIDs) == 0 {
		return nil, errors.New("input, name, and participants cannot be empty")
	}

	overwrites := []*discordgo.PermissionOverwrite{
		{
			ID:   n.guildID,
			Type: discordgo.PermissionOverwriteTypeRole,
			Deny: discordgo.PermissionViewChannel,
		},
	}
	for _, discordID := range input.ParticipantDiscordIDs {
		overwrites = append(overwrites, &discordgo.PermissionOverwrite{
			ID:    discordID,
			Type:  discordgo.PermissionOverwriteTypeMember,
			Allow: discordgo.PermissionViewChannel | discordgo.PermissionSendMessages,
		})
	}

	channel, err := n.session.GuildChannelCreateComplex(n.guildID, discordgo.GuildChannelCreateData{
		Name:                 input.Name,
		Topic:                input.Topic,
		Type:                 discordgo.ChannelTypeGuildText,
		ParentID:             n.categoryID,
		PermissionOverwrites: overwrites,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}

	return &CreatePrivateChannelOutput{
		ChannelID: channel.ID,
	}, nil
}

// SendMessage posts a message to a channel
func (n *discordNotifier) SendMessage(ctx context.Context, input *SendMessageInput) (*SendMessageOutput, error) {
	if input == nil || input.ChannelID == "" || input.Content == "" {
		return nil, errors.New("input, channel ID, and content cannot be empty")
	}

	message, err := n.session.ChannelMessageSend(input.ChannelID, input.Content, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	return &SendMessageOutput{
		MessageID: message.ID,
	}, nil
}

// RenameChannel renames a channel
func (n *discordNotifier) RenameChannel(ctx context.Context, input *RenameChannelInput) error {
	if input == nil || input.ChannelID == "" || input.Name == "" {
		return errors.New("input, channel ID, and name cannot be empty")
	}

	if _, err := n.session.ChannelEdit(input.ChannelID, &discordgo.ChannelEdit{
		Name: input.Name,
	}, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to rename channel: %w", err)
	}

	return nil
}

// DeleteChannel deletes a channel
func (n *discordNotifier) DeleteChannel(ctx context.Context, input *DeleteChannelInput) error {
	if input == nil || input.ChannelID == "" {
		return errors.New("input and channel ID cannot be empty")
	}

	if _, err := n.session.ChannelDelete(input.ChannelID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to delete channel: %w", err)
	}

	return nil
}

// PinMessage pins a message, unpinning anything already pinned so the
// channel carries exactly one pinned message
func (n *discordNotifier) PinMessage(ctx context.Context, input *PinMessageInput) error {
	if input == nil || input.ChannelID == "" || input.MessageID == "" {
		return errors.New("input, channel ID, and message ID cannot be empty")
	}

	pinned, err := n.session.ChannelMessagesPinned(input.ChannelID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to list pinned messages: %w", err)
	}

	for _, message := range pinned {
		if message.ID == input.MessageID {
			continue
		}
		if err := n.session.ChannelMessageUnpin(input.ChannelID, message.ID, discordgo.WithContext(ctx)); err != nil {
			return fmt.Errorf("failed to unpin message: %w", err)
		}
	}

	if err := n.session.ChannelMessagePin(input.ChannelID, input.MessageID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to pin message: %w", err)
	}

	return nil
}
