// Package elo implements the Elo rating math used by the season rating
// recalculation.
package elo

import (
	"math"
)

// Expected returns the expected score for a player rated a against a player
// rated b. Expected(a, b) + Expected(b, a) == 1.
func Expected(a, b float64) float64 {
	return 1 / (1 + math.Pow(10, (b-a)/400))
}

// Update returns the new rating after a match. expected is the expected
// score, actual is 1 for a win and 0 for a loss, and k is the K-factor for
// the match.
func Update(expected, actual, rating, k float64) float64 {
	return rating + k*(actual-expected)
}
