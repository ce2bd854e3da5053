package models

import (
	"time"
)

// ChallengeState represents how far a challenge has progressed through its
// lifecycle. The state is derived from the lifecycle timestamps rather than
// stored, so a record can never carry a state that disagrees with its
// timestamps.
type ChallengeState string

const (
	// ChallengeStateCreated indicates a challenge has been issued but no
	// time has been suggested yet
	ChallengeStateCreated ChallengeState = "created"

	// ChallengeStateTimeSuggested indicates one player has suggested a
	// match time that awaits the opponent's confirmation
	ChallengeStateTimeSuggested ChallengeState = "time_suggested"

	// ChallengeStateScheduled indicates a match time has been agreed on
	ChallengeStateScheduled ChallengeState = "scheduled"

	// ChallengeStateReported indicates the loser has reported the match
	ChallengeStateReported ChallengeState = "reported"

	// ChallengeStateConfirmed indicates the winner has confirmed the result
	ChallengeStateConfirmed ChallengeState = "confirmed"

	// ChallengeStateClosed indicates the challenge is terminal
	ChallengeStateClosed ChallengeState = "closed"
)

// PlayerStats holds one player's result for a match
type PlayerStats struct {
	// Won indicates if this player won the match, once reported
	Won *bool

	// Depth is how deep the player got, in meters
	Depth *int

	// Time is the length of the player's run, in seconds
	Time *int

	// Completed indicates if the player completed the game
	Completed *bool

	// Comment is the player's free-form match comment
	Comment string
}

// ChallengeStats holds both players' results for a match. When present,
// both sides are always present, possibly with all fields empty.
type ChallengeStats struct {
	ChallengingPlayer *PlayerStats
	ChallengedPlayer  *PlayerStats
}

// ChallengeRatings holds the rating changes for a match, populated only by
// a season-wide rating recalculation that included the match.
type ChallengeRatings struct {
	// ChallengingPlayerRating is the challenging player's rating after
	// the match
	ChallengingPlayerRating float64

	// ChallengedPlayerRating is the challenged player's rating after
	// the match
	ChallengedPlayerRating float64

	// Change is the rating change from the challenging player's
	// perspective
	Change float64
}

// Challenge represents one scheduled or completed match between two players
type Challenge struct {
	// ID is the unique identifier for the challenge
	ID int64

	// ChallengingPlayerID is the player who issued the challenge
	ChallengingPlayerID int64

	// ChallengedPlayerID is the player who received the challenge
	ChallengedPlayerID int64

	// ChannelID is the challenge's private Discord channel, once
	// provisioned
	ChannelID string

	// Title is an optional name for the match
	Title string

	// SuggestedTime is a match time proposed by one player
	SuggestedTime *time.Time

	// SuggestedByPlayerID is the player who proposed SuggestedTime
	SuggestedByPlayerID int64

	// MatchTime is the agreed time of the match
	MatchTime *time.Time

	// ReportTime is when the loser reported the match
	ReportTime *time.Time

	// ConfirmedTime is when the winner confirmed the result
	ConfirmedTime *time.Time

	// CloseTime is when the challenge was closed
	CloseTime *time.Time

	// VoidTime is when the challenge was voided, if it is voided
	VoidTime *time.Time

	// RematchedTime is when a rematch was created from this challenge
	RematchedTime *time.Time

	// RematchRequestedByPlayerID is the player who requested a rematch
	RematchRequestedByPlayerID int64

	// Season is the season the match counts toward, assigned at close time
	Season int64

	// Postseason marks the match as played outside the regular season
	// window
	Postseason bool

	// Stats holds both players' results, once any are recorded
	Stats *ChallengeStats

	// Ratings holds the match's rating changes, once recalculated
	Ratings *ChallengeRatings
}

// State returns the challenge's lifecycle state
func (c *Challenge) State() ChallengeState {
	switch {
	case c.CloseTime != nil:
		return ChallengeStateClosed
	case c.ConfirmedTime != nil:
		return ChallengeStateConfirmed
	case c.ReportTime != nil:
		return ChallengeStateReported
	case c.MatchTime != nil:
		return ChallengeStateScheduled
	case c.SuggestedTime != nil:
		return ChallengeStateTimeSuggested
	default:
		return ChallengeStateCreated
	}
}

// Voided reports whether the challenge is voided. Voiding is orthogonal to
// the lifecycle state: a voided challenge is excluded from every standings
// and rating aggregate regardless of its other timestamps.
func (c *Challenge) Voided() bool {
	return c.VoidTime != nil
}

// Open reports whether the challenge still blocks a new challenge between
// the same pair of players.
func (c *Challenge) Open() bool {
	return c.ConfirmedTime == nil && c.CloseTime == nil && c.VoidTime == nil
}

// Involves reports whether the player is one of the challenge's two players
func (c *Challenge) Involves(playerID int64) bool {
	return playerID == c.ChallengingPlayerID || playerID == c.ChallengedPlayerID
}

// IsChallengingPlayer reports whether the player is the challenging side
func (c *Challenge) IsChallengingPlayer(playerID int64) bool {
	return playerID == c.ChallengingPlayerID
}

// OpponentID returns the other player of the challenge
func (c *Challenge) OpponentID(playerID int64) int64 {
	if playerID == c.ChallengingPlayerID {
		return c.ChallengedPlayerID
	}

	return c.ChallengingPlayerID
}

// EnsureStats makes sure the stats scaffold exists with both sides present.
// Nothing may write into a side's stats without going through this first.
func (c *Challenge) EnsureStats() {
	if c.Stats == nil {
		c.Stats = &ChallengeStats{}
	}

	if c.Stats.ChallengingPlayer == nil {
		c.Stats.ChallengingPlayer = &PlayerStats{}
	}

	if c.Stats.ChallengedPlayer == nil {
		c.Stats.ChallengedPlayer = &PlayerStats{}
	}
}

// SideStats returns the stats for one side of the challenge, creating the
// scaffold if needed.
func (c *Challenge) SideStats(playerID int64) *PlayerStats {
	c.EnsureStats()

	if c.IsChallengingPlayer(playerID) {
		return c.Stats.ChallengingPlayer
	}

	return c.Stats.ChallengedPlayer
}

// WinnerID returns the winning player's ID, if a result has been recorded
func (c *Challenge) WinnerID() (int64, bool) {
	if c.Stats == nil || c.Stats.ChallengingPlayer == nil || c.Stats.ChallengingPlayer.Won == nil {
		return 0, false
	}

	if *c.Stats.ChallengingPlayer.Won {
		return c.ChallengingPlayerID, true
	}

	return c.ChallengedPlayerID, true
}
