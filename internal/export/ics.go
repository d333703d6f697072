// Package export serializes the aggregated calendar to iCalendar so the
// event stream can be pulled into external calendar clients.
package export

import (
	"fmt"
	"io"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/pumicestone/caldesk/internal/event"
)

// defaultMeetingLength pads meetings with no recorded end time so calendar
// clients render a visible block.
const defaultMeetingLength = time.Hour

// WriteICS renders events as a VCALENDAR on w. Reminders become all-day
// entries on their due date; meetings carry their time of day and a
// one-hour duration.
func WriteICS(w io.Writer, events []event.CalendarEvent) error {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//caldesk//calendar export//EN")

	for _, ev := range events {
		ve := cal.AddEvent(uidFor(ev))
		ve.SetDtStampTime(time.Now().UTC())
		ve.SetSummary(summaryFor(ev))
		if desc := descriptionFor(ev); desc != "" {
			ve.SetDescription(desc)
		}

		switch ev.Kind {
		case event.KindReminder:
			ve.SetAllDayStartAt(ev.Timestamp)
			ve.SetAllDayEndAt(ev.Timestamp.AddDate(0, 0, 1))
		case event.KindMeeting:
			ve.SetStartAt(ev.Timestamp)
			ve.SetEndAt(ev.Timestamp.Add(defaultMeetingLength))
		}
	}

	if err := cal.SerializeTo(w); err != nil {
		return fmt.Errorf("export: serialize calendar: %w", err)
	}
	return nil
}

// uidFor builds a stable UID: meetings reuse their meeting ID, reminders
// derive from the contact and due date.
func uidFor(ev event.CalendarEvent) string {
	if ev.Kind == event.KindMeeting {
		return ev.MeetingID + "@caldesk"
	}
	return fmt.Sprintf("reminder-%s-%s@caldesk", ev.Contact.ID, ev.Timestamp.Format("20060102"))
}

func summaryFor(ev event.CalendarEvent) string {
	switch ev.Kind {
	case event.KindReminder:
		return fmt.Sprintf("Follow up: %s (%s)", ev.Contact.Name, ev.Module.Label())
	default:
		return fmt.Sprintf("Meeting: %s (%s)", ev.Contact.Name, ev.Module.Label())
	}
}

func descriptionFor(ev event.CalendarEvent) string {
	if ev.Kind != event.KindMeeting {
		return ""
	}
	desc := ev.Notes
	if ev.Participants != "" {
		if desc != "" {
			desc += "\n"
		}
		desc += "Participants: " + ev.Participants
	}
	return desc
}
