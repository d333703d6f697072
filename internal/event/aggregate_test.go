package event

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/pumicestone/caldesk/internal/module"
)

func fixedNow() time.Time {
	return time.Date(2025, time.January, 10, 9, 0, 0, 0, time.UTC)
}

// fixtureModules builds a small two-module input set around fixedNow.
func fixtureModules() [][]RawEvent {
	now := fixedNow()
	return [][]RawEvent{
		{
			{Module: module.CapitalPartner, Kind: KindReminder, Contact: jane,
				Timestamp: date(2025, time.January, 8)}, // overdue
			{Module: module.CapitalPartner, Kind: KindMeeting, Contact: jane,
				MeetingID: "m-past", Timestamp: now.AddDate(0, 0, -3),
				Assignees: []Assignee{{UserID: "u-1", DisplayName: "Ana"}}},
		},
		{
			{Module: module.Agent, Kind: KindReminder, Contact: john,
				Timestamp: date(2025, time.January, 13)}, // due-soon
			{Module: module.Agent, Kind: KindMeeting, Contact: john,
				MeetingID: "m-future", Timestamp: now.AddDate(0, 0, 2)},
		},
	}
}

func TestAggregateDerivesUrgencyAndFutureFlag(t *testing.T) {
	t.Parallel()
	events, dropped := Aggregate(fixtureModules(), Filter{}, fixedNow())
	if dropped != 0 {
		t.Fatalf("dropped = %d, want 0", dropped)
	}
	if len(events) != 4 {
		t.Fatalf("len(events) = %d, want 4", len(events))
	}

	byID := map[string]CalendarEvent{}
	for _, ev := range events {
		key := ev.MeetingID
		if key == "" {
			key = ev.Contact.ID + "/reminder"
		}
		byID[key] = ev
	}

	if got := byID["c-1/reminder"].Urgency; got != UrgencyOverdue {
		t.Errorf("capital-partner reminder urgency = %s, want overdue", got)
	}
	if got := byID["c-2/reminder"].Urgency; got != UrgencyDueSoon {
		t.Errorf("agent reminder urgency = %s, want due-soon", got)
	}
	if byID["m-past"].FutureMeeting {
		t.Error("past meeting flagged as future")
	}
	if !byID["m-future"].FutureMeeting {
		t.Error("future meeting not flagged")
	}
	if got := byID["m-past"].Urgency; got != UrgencyNone {
		t.Errorf("meeting urgency = %s, want none", got)
	}
}

func TestAggregateIsPure(t *testing.T) {
	t.Parallel()
	in := fixtureModules()
	first, _ := Aggregate(in, Filter{}, fixedNow())
	second, _ := Aggregate(in, Filter{}, fixedNow())
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated aggregation differs (-first +second):\n%s", diff)
	}
}

func TestAggregateOnlyMine(t *testing.T) {
	t.Parallel()
	events, _ := Aggregate(fixtureModules(), Filter{OnlyMine: "u-1"}, fixedNow())

	var reminders, meetings int
	for _, ev := range events {
		switch ev.Kind {
		case KindReminder:
			reminders++
		case KindMeeting:
			meetings++
			if ev.MeetingID != "m-past" {
				t.Errorf("unexpected meeting %q passed the filter", ev.MeetingID)
			}
		}
	}
	// Reminders always pass; the unassigned m-future meeting is excluded
	// even though it exists — an empty assignee list never counts as mine.
	if reminders != 2 {
		t.Errorf("reminders = %d, want 2", reminders)
	}
	if meetings != 1 {
		t.Errorf("meetings = %d, want 1", meetings)
	}
}

func TestAggregateOnlyMineExcludesUnassigned(t *testing.T) {
	t.Parallel()
	in := [][]RawEvent{{
		{Module: module.Sponsor, Kind: KindMeeting, Contact: jane,
			MeetingID: "m-own", Timestamp: fixedNow().AddDate(0, 0, 1)},
	}}
	events, _ := Aggregate(in, Filter{OnlyMine: "u-9"}, fixedNow())
	if len(events) != 0 {
		t.Errorf("unassigned meeting passed only-mine filter: %+v", events)
	}
}

func TestAggregateDropsInvalid(t *testing.T) {
	t.Parallel()
	in := [][]RawEvent{{
		{Module: module.Counsel, Kind: KindMeeting, Contact: jane, MeetingID: "", Timestamp: fixedNow()},
		{Module: module.Counsel, Kind: KindReminder, Contact: jane, Timestamp: time.Time{}},
		{Module: module.Counsel, Kind: KindReminder, Contact: jane, Timestamp: date(2025, time.March, 1)},
	}}
	events, dropped := Aggregate(in, Filter{}, fixedNow())
	if dropped != 2 {
		t.Errorf("dropped = %d, want 2", dropped)
	}
	if len(events) != 1 {
		t.Errorf("len(events) = %d, want 1", len(events))
	}
}

func TestSortByTime(t *testing.T) {
	t.Parallel()
	events, _ := Aggregate(fixtureModules(), Filter{}, fixedNow())
	SortByTime(events)
	for i := 1; i < len(events); i++ {
		if events[i].Timestamp.Before(events[i-1].Timestamp) {
			t.Fatalf("events out of order at %d: %s before %s",
				i, events[i].Timestamp, events[i-1].Timestamp)
		}
	}
}

func TestOnDay(t *testing.T) {
	t.Parallel()
	events, _ := Aggregate(fixtureModules(), Filter{}, fixedNow())
	day := date(2025, time.January, 13)
	got := OnDay(events, day)
	if len(got) != 1 || got[0].Contact.ID != "c-2" {
		t.Errorf("OnDay(%s) = %+v, want john's reminder", day.Format("2006-01-02"), got)
	}
}
