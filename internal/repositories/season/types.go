package season

import "time"

type GetSeasonInput struct {
	Season int64
}

type GetSeasonFromDateInput struct {
	Date time.Time
}

type CreateSeasonInput struct {
	StartDate time.Time
	EndDate   time.Time
	K         int
}
