// Package gateway defines the scheduling data-access boundary the calendar
// core consumes, plus the local SQLite implementation that backs it. The
// core only ever talks to the Gateway interface; everything behind it is
// the system of record.
package gateway

import (
	"context"
	"errors"
	"time"

	"github.com/pumicestone/caldesk/internal/event"
	"github.com/pumicestone/caldesk/internal/module"
	"github.com/pumicestone/caldesk/internal/search"
)

// ErrMeetingNotFound is returned by mutations that target a meeting ID the
// store does not hold for the given contact.
var ErrMeetingNotFound = errors.New("meeting not found")

// ErrContactNotFound is returned when a mutation references an unknown contact.
var ErrContactNotFound = errors.New("contact not found")

// Meeting is the record returned by every meeting mutation.
type Meeting struct {
	MeetingID    string
	ContactID    string
	Module       module.Tag
	Timestamp    time.Time
	Notes        string
	Participants string
	Assignees    []event.Assignee
}

// CreateMeetingParams carries everything needed to record a meeting.
// NextFollowUp is optional; when non-zero the contact's reminder is moved
// to that date in the same transaction.
type CreateMeetingParams struct {
	ContactID        string
	OrganizationType module.Tag
	Timestamp        time.Time
	Notes            string
	Participants     string
	NextFollowUp     time.Time
	AssigneeIDs      []string
}

// RescheduleParams moves an existing meeting to a new timestamp.
type RescheduleParams struct {
	ContactID        string
	MeetingID        string
	OrganizationType module.Tag
	NewTimestamp     time.Time
}

// UpdateNoteParams rewrites a meeting's notes and, when non-nil,
// its participants. A non-zero NextFollowUp also moves the contact's
// reminder.
type UpdateNoteParams struct {
	ContactID    string
	MeetingID    string
	Notes        string
	Participants *string
	NextFollowUp time.Time
}

// DeleteNoteParams identifies a meeting record to remove.
type DeleteNoteParams struct {
	ContactID string
	MeetingID string
}

// Gateway is the scheduling boundary. Every operation that takes an
// organization type accepts all four module tags; callers are responsible
// for deriving the tag from the event or contact they act on. All calls
// honor context cancellation.
type Gateway interface {
	// Reminders returns one record per contact in the module, including
	// contacts with no follow-up scheduled (zero Due).
	Reminders(ctx context.Context, tag module.Tag) ([]event.ReminderRecord, error)

	// MeetingHistory returns each contact's meeting entries for the module.
	MeetingHistory(ctx context.Context, tag module.Tag) ([]event.ContactHistory, error)

	// Contacts returns all contacts across every module, tagged, for the
	// creation-flow search.
	Contacts(ctx context.Context) ([]search.Contact, error)

	CreateMeeting(ctx context.Context, p CreateMeetingParams) (Meeting, error)
	RescheduleMeeting(ctx context.Context, p RescheduleParams) (Meeting, error)
	UpdateMeetingNote(ctx context.Context, p UpdateNoteParams) (Meeting, error)
	DeleteMeetingNote(ctx context.Context, p DeleteNoteParams) error
}
