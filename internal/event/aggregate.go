package event

import (
	"sort"
	"time"
)

// Filter narrows the aggregated event set. The zero value passes
// everything through.
type Filter struct {
	// OnlyMine, when non-empty, keeps only meetings whose assignee list
	// contains this user ID. Reminders always pass: they are not
	// assignable in this model. A meeting with an empty assignee list is
	// excluded under the filter, never silently included.
	OnlyMine string
}

// Aggregate merges all modules' normalized events into CalendarEvents,
// classifying every reminder's urgency and computing FutureMeeting for
// every meeting against the supplied now. It is a pure projection:
// identical inputs and an identical now yield identical output, and the
// result carries no sort guarantee (views sort for display). Events that
// fail validation are dropped and counted rather than crashing the
// render path.
func Aggregate(perModule [][]RawEvent, f Filter, now time.Time) (events []CalendarEvent, dropped int) {
	for _, raws := range perModule {
		for _, raw := range raws {
			if !raw.Valid() {
				dropped++
				continue
			}
			if f.OnlyMine != "" && raw.Kind == KindMeeting && !assignedTo(raw, f.OnlyMine) {
				continue
			}
			ce := CalendarEvent{RawEvent: raw}
			switch raw.Kind {
			case KindReminder:
				ce.Urgency = Classify(raw.Timestamp, now)
			case KindMeeting:
				ce.FutureMeeting = raw.Timestamp.After(now)
			}
			events = append(events, ce)
		}
	}
	return events, dropped
}

func assignedTo(e RawEvent, userID string) bool {
	for _, a := range e.Assignees {
		if a.UserID == userID {
			return true
		}
	}
	return false
}

// SortByTime orders events chronologically, in place. Rendering layers
// call this for list and agenda views; Aggregate itself stays order-free.
func SortByTime(events []CalendarEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.Before(events[j].Timestamp)
	})
}

// OnDay returns the events whose timestamp falls on the same calendar day
// as day, preserving input order.
func OnDay(events []CalendarEvent, day time.Time) []CalendarEvent {
	dy, dm, dd := day.Date()
	var out []CalendarEvent
	for _, ev := range events {
		y, m, d := ev.Timestamp.Date()
		if y == dy && m == dm && d == dd {
			out = append(out, ev)
		}
	}
	return out
}
