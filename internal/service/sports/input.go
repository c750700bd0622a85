package sports

import (
	"fmt"
	"unicode/utf8"

	"github.com/heartmarshall/editorial-backend/internal/domain"
)

// EventInput is one event as delivered by the feed.
type EventInput struct {
	DayName     string
	EventDate   string
	Sport       string
	Time        string
	Competition string
	Event       string
	Channel     *string
}

// field limits follow the sport_events column sizes, counted in characters.
// Empty values are accepted; presence is checked when the batch is decoded.
var eventFields = []struct {
	name string
	max  int
	get  func(EventInput) string
}{
	{"dia", 20, func(e EventInput) string { return e.DayName }},
	{"fecha", 50, func(e EventInput) string { return e.EventDate }},
	{"deporte", 50, func(e EventInput) string { return e.Sport }},
	{"hora", 10, func(e EventInput) string { return e.Time }},
	{"competicion", 200, func(e EventInput) string { return e.Competition }},
	{"evento", 500, func(e EventInput) string { return e.Event }},
}

const maxChannelLen = 100

func validateEvents(events []EventInput) error {
	var errs []domain.FieldError

	for i, e := range events {
		for _, f := range eventFields {
			if utf8.RuneCountInString(f.get(e)) > f.max {
				errs = append(errs, domain.FieldError{Field: fmt.Sprintf("[%d].%s", i, f.name), Message: "too long"})
			}
		}
		if e.Channel != nil && utf8.RuneCountInString(*e.Channel) > maxChannelLen {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("[%d].canal", i), Message: "too long"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (e EventInput) toDomain() domain.SportEvent {
	return domain.SportEvent{
		DayName:     e.DayName,
		EventDate:   e.EventDate,
		Sport:       e.Sport,
		Time:        e.Time,
		Competition: e.Competition,
		Event:       e.Event,
		Channel:     e.Channel,
	}
}
