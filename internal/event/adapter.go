package event

import (
	"time"

	"github.com/pumicestone/caldesk/internal/module"
)

// ReminderRecord is a module's raw follow-up row as fetched from the
// gateway. A zero Due means the contact has no follow-up scheduled; that
// is a normal state, not an error.
type ReminderRecord struct {
	Contact ContactRef
	Due     time.Time

	// BadDue marks a row whose stored due date exists but could not be
	// parsed. Distinct from a zero Due: corruption is a counted drop,
	// absence is not.
	BadDue bool
}

// HistoryEntry is one meeting in a contact's meeting history.
type HistoryEntry struct {
	MeetingID    string
	When         time.Time
	Notes        string
	Participants string
	Assignees    []Assignee
}

// ContactHistory groups a contact's meeting entries as the gateway
// returns them. A contact may contribute zero or many entries.
type ContactHistory struct {
	Contact ContactRef
	Entries []HistoryEntry
}

// Normalize converts one module's raw reminder and meeting-history rows
// into RawEvents. It never panics on missing optional fields; records that
// cannot occupy a calendar slot (zero meeting date, corrupt due date,
// missing meeting ID or contact ref) are skipped and counted in dropped so
// the caller can surface a non-fatal warning. Reminders with a zero due
// date are simply not emitted and do not count as drops.
func Normalize(tag module.Tag, reminders []ReminderRecord, history []ContactHistory) (events []RawEvent, dropped int) {
	for _, r := range reminders {
		if r.BadDue {
			dropped++
			continue
		}
		if r.Due.IsZero() {
			continue
		}
		ev := RawEvent{
			Module:    tag,
			Kind:      KindReminder,
			Contact:   r.Contact,
			Timestamp: startOfDay(r.Due),
		}
		if !ev.Valid() {
			dropped++
			continue
		}
		events = append(events, ev)
	}

	for _, ch := range history {
		for _, entry := range ch.Entries {
			ev := RawEvent{
				Module:       tag,
				Kind:         KindMeeting,
				Contact:      ch.Contact,
				Timestamp:    entry.When,
				MeetingID:    entry.MeetingID,
				Notes:        entry.Notes,
				Participants: entry.Participants,
				Assignees:    entry.Assignees,
			}
			if !ev.Valid() {
				dropped++
				continue
			}
			events = append(events, ev)
		}
	}

	return events, dropped
}

// startOfDay truncates t to midnight in its own location. Reminder
// timestamps are date-only; the time of day is meaningless.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
