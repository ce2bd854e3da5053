package models

// Rating represents a player's rating for one season. There is exactly one
// rating per (player, season); recalculation overwrites it wholesale.
type Rating struct {
	// PlayerID is the player the rating belongs to
	PlayerID int64

	// Season is the season the rating belongs to
	Season int64

	// Rating is the player's Elo rating for the season
	Rating float64
}

// RankAndRating is a player's rating along with their rank within a season.
// Players with equal ratings share a rank.
type RankAndRating struct {
	Rank   int
	Rating float64
}

// Standing represents one row of a season's leaderboard
type Standing struct {
	// PlayerID is the player the standing belongs to
	PlayerID int64

	// DiscordID is the player's Discord user ID
	DiscordID string

	// Rating is the player's rating for the season
	Rating float64

	// Won is the number of confirmed, non-voided matches the player won
	Won int

	// Lost is the number of confirmed, non-voided matches the player lost
	Lost int
}
