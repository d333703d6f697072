package tui

import "github.com/pumicestone/caldesk/internal/event"

// Route is the navigation target opening a selected event resolves to.
type Route int

const (
	// RouteContactDetail opens the contact's detail card. Reminders land
	// here: they are not independently editable from the calendar, the
	// follow-up is changed on the contact.
	RouteContactDetail Route = iota

	// RouteMeetingEdit opens the meeting editor. Only future meetings
	// resolve here — a scheduled meeting is still mutable agenda.
	RouteMeetingEdit

	// RouteMeetingHistory opens the contact card scrolled to its meeting
	// history. Completed meetings are historical record and are edited
	// there, not on the calendar.
	RouteMeetingHistory
)

// String names the route for messages and tests.
func (r Route) String() string {
	switch r {
	case RouteContactDetail:
		return "contact-detail"
	case RouteMeetingEdit:
		return "meeting-edit"
	case RouteMeetingHistory:
		return "meeting-history"
	default:
		return "unknown"
	}
}

// Resolve maps a selected event to its navigation target. The three-way
// branch is the calendar's click contract: reminder → contact, future
// meeting → editor, past meeting → history.
func Resolve(ev event.CalendarEvent) Route {
	if ev.Kind != event.KindMeeting {
		return RouteContactDetail
	}
	if ev.FutureMeeting {
		return RouteMeetingEdit
	}
	return RouteMeetingHistory
}
