package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/noitanemesis/nnnbot/internal/repositories/player Repository

import (
	"context"

	"github.com/noitanemesis/nnnbot/internal/models"
)

// Repository defines the interface for player data persistence
type Repository interface {
	// CreatePlayer allocates an ID for a new player and persists them
	CreatePlayer(ctx context.Context, input *CreatePlayerInput) (*models.Player, error)

	// SavePlayer persists a player
	SavePlayer(ctx context.Context, input *SavePlayerInput) error

	// GetPlayer retrieves a player by ID
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error)

	// GetPlayerByDiscordID retrieves a player by their Discord user ID
	GetPlayerByDiscordID(ctx context.Context, input *GetPlayerByDiscordIDInput) (*models.Player, error)
}
