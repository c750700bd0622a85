package domain

import "time"

// SportEvent is one scheduled broadcast in the sports feed.
// Date and time are kept as the strings the feed delivers.
type SportEvent struct {
	ID          int64
	DayName     string
	EventDate   string
	Sport       string
	Time        string
	Competition string
	Event       string
	Channel     *string
	CreatedAt   time.Time
}
