package export

import (
	"strings"
	"testing"
	"time"

	"github.com/pumicestone/caldesk/internal/event"
	"github.com/pumicestone/caldesk/internal/module"
)

func TestWriteICS(t *testing.T) {
	t.Parallel()
	events := []event.CalendarEvent{
		{RawEvent: event.RawEvent{
			Module:    module.Counsel,
			Kind:      event.KindReminder,
			Contact:   event.ContactRef{ID: "c-1", Name: "Jane Doe"},
			Timestamp: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		}},
		{RawEvent: event.RawEvent{
			Module:       module.Agent,
			Kind:         event.KindMeeting,
			Contact:      event.ContactRef{ID: "c-2", Name: "John Smith"},
			Timestamp:    time.Date(2025, time.March, 2, 14, 0, 0, 0, time.UTC),
			MeetingID:    "m-1",
			Notes:        "pipeline sync",
			Participants: "John, Desk",
		}},
	}

	var sb strings.Builder
	if err := WriteICS(&sb, events); err != nil {
		t.Fatalf("WriteICS: %v", err)
	}
	out := sb.String()

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"END:VCALENDAR",
		"Follow up: Jane Doe (Counsel)",
		"Meeting: John Smith (Agent)",
		"m-1@caldesk",
		"pipeline sync",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if got := strings.Count(out, "BEGIN:VEVENT"); got != 2 {
		t.Errorf("VEVENT count = %d, want 2", got)
	}
}

func TestWriteICSEmpty(t *testing.T) {
	t.Parallel()
	var sb strings.Builder
	if err := WriteICS(&sb, nil); err != nil {
		t.Fatalf("WriteICS(nil): %v", err)
	}
	if !strings.Contains(sb.String(), "BEGIN:VCALENDAR") {
		t.Error("empty export is not a valid calendar")
	}
}
