// Package event holds the calendar's unified event model: the normalized
// RawEvent shape every module adapter produces, the derived CalendarEvent
// the views render, and the pure functions (urgency classification,
// aggregation) that connect the two. Nothing here touches the clock or the
// store directly; "now" is always an explicit parameter.
package event

import (
	"time"

	"github.com/pumicestone/caldesk/internal/module"
)

// Kind distinguishes the two event flavors on the calendar.
type Kind int

const (
	// KindReminder is a scheduled follow-up date attached to a contact.
	// Reminders are date-only; their timestamp is start-of-day.
	KindReminder Kind = iota
	// KindMeeting is a meeting-history entry, either already held or
	// scheduled for a future date/time.
	KindMeeting
)

// String returns the lowercase name used in tooltips and logs.
func (k Kind) String() string {
	switch k {
	case KindReminder:
		return "reminder"
	case KindMeeting:
		return "meeting"
	default:
		return "unknown"
	}
}

// ContactRef is a read-only snapshot of the contact an event concerns.
// The calendar never mutates it; the owning module's records are the truth.
type ContactRef struct {
	ID    string
	Name  string
	Role  string
	Email string
	Phone string
}

// Assignee is a user accountable for a meeting. Reminders carry no
// assignees; they represent an organization-level follow-up, not a
// personal task.
type Assignee struct {
	UserID      string
	DisplayName string
}

// RawEvent is the module-tagged shape every adapter normalizes into.
type RawEvent struct {
	Module       module.Tag
	Kind         Kind
	Contact      ContactRef
	Timestamp    time.Time
	MeetingID    string // meeting kind only; required for mutations
	Notes        string // meeting kind only
	Participants string // meeting kind only
	Assignees    []Assignee
}

// Valid reports whether the event carries every field the calendar needs.
// Invalid events are dropped (and counted) rather than propagated into
// date arithmetic.
func (e RawEvent) Valid() bool {
	if !e.Module.Valid() || e.Timestamp.IsZero() || e.Contact.ID == "" {
		return false
	}
	if e.Kind == KindMeeting && e.MeetingID == "" {
		return false
	}
	return true
}

// CalendarEvent is a RawEvent plus attributes derived at render time.
// Urgency and FutureMeeting are functions of wall-clock "now" and are
// recomputed on every aggregation pass, never cached.
type CalendarEvent struct {
	RawEvent

	// Urgency is the overdue/due-soon/future bucket, reminder kind only.
	// Meetings always carry UrgencyNone.
	Urgency Urgency

	// FutureMeeting is true only for meeting-kind events whose timestamp
	// is strictly after now. It decides whether selecting the event routes
	// to the meeting editor (mutable agenda) or the contact's history
	// section (completed record).
	FutureMeeting bool
}
