package models

// Player represents a league member
type Player struct {
	// ID is the unique identifier for the player
	ID int64

	// DiscordID is the Discord user ID of the player
	DiscordID string

	// Name is the display name of the player
	Name string

	// Timezone is the player's preferred IANA timezone, if set
	Timezone string

	// Active indicates if the player is currently active in the league
	Active bool
}
