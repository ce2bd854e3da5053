package player

import "github.com/noitanemesis/nnnbot/internal/models"

type CreatePlayerInput struct {
	DiscordID string
	Name      string
	Timezone  string
}

type SavePlayerInput struct {
	Player *models.Player
}

type GetPlayerInput struct {
	PlayerID int64
}

type GetPlayerByDiscordIDInput struct {
	DiscordID string
}
