package models

import (
	"time"
)

// Season represents one ranked season of the league. Seasons are
// contiguous: every point in time from the first season's start onward
// belongs to exactly one season.
type Season struct {
	// ID is the season number, allocated sequentially
	ID int64

	// StartDate is when the season begins, inclusive
	StartDate time.Time

	// EndDate is when the season ends, exclusive
	EndDate time.Time

	// K is the base K-factor used for rating changes during the season
	K int
}

// Contains reports whether the date falls within the season's
// [StartDate, EndDate) range.
func (s *Season) Contains(date time.Time) bool {
	return !date.Before(s.StartDate) && date.Before(s.EndDate)
}
