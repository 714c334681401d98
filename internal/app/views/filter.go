package views

import (
	"strings"

	"github.com/kartavya/website/internal/app/models"
)

// EventFilter selects which events are shown
type EventFilter string

// Filters offered on the events section
const (
	FilterAll      EventFilter = "all"
	FilterUpcoming EventFilter = "upcoming"
	FilterPast     EventFilter = "past"
)

// EventFilters lists the filters in button order.
var EventFilters = []EventFilter{FilterAll, FilterUpcoming, FilterPast}

// ParseEventFilter maps unknown or empty input to FilterAll.
func ParseEventFilter(s string) EventFilter {
	switch f := EventFilter(strings.ToLower(strings.TrimSpace(s))); f {
	case FilterUpcoming, FilterPast:
		return f
	default:
		return FilterAll
	}
}

// Label is the button text for the filter.
func (f EventFilter) Label() string {
	switch f {
	case FilterUpcoming:
		return "Upcoming"
	case FilterPast:
		return "Past Events"
	default:
		return "All Events"
	}
}

// FilterEvents keeps the events matching f in their original order. FilterAll
// returns a copy of the input; ongoing events only ever appear under it.
func FilterEvents(events []models.Event, f EventFilter) []models.Event {
	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if f == FilterAll || e.Status == models.EventStatus(f) {
			out = append(out, e)
		}
	}
	return out
}

// EventsEmptyMessage is the empty-state text for the filtered events list.
func EventsEmptyMessage(f EventFilter) string {
	if f == FilterAll || f == "" {
		return emptyMessages[SectionEvents]
	}
	return "No " + string(f) + " events found."
}
