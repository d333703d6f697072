package gateway

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/pumicestone/caldesk/internal/module"
)

// testGateway creates a temporary SQLite gateway and registers cleanup.
func testGateway(t *testing.T) *SQLite {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.caldesk.db")
	g, err := OpenSQLite(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite(%q): %v", dbPath, err)
	}
	t.Cleanup(func() { g.Close() })
	return g
}

// seedFixture loads two contacts (counsel + agent) with one follow-up and
// one assigned meeting.
func seedFixture(t *testing.T, g *SQLite) {
	t.Helper()
	sf := &SeedFile{Contacts: []SeedContact{
		{
			ID: "c-jane", Module: "counsel", Name: "Jane Doe", Role: "Partner",
			Organization: "Baker LLP", FollowUp: "2025-03-01",
			Meetings: []SeedMeeting{{
				When:         "2025-01-15T10:00:00Z",
				Notes:        "kickoff discussion",
				Participants: "Jane, Ops",
				Assignees:    []string{"u-1", "u-2"},
			}},
		},
		{
			ID: "c-john", Module: "agent", Name: "John Smith",
			Organization: "ABC Fund",
		},
	}}
	if err := g.Seed(context.Background(), sf); err != nil {
		t.Fatalf("Seed: %v", err)
	}
}

func TestOpenSQLiteIdempotent(t *testing.T) {
	t.Parallel()
	dbPath := filepath.Join(t.TempDir(), "idempotent.db")

	g1, err := OpenSQLite(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	g1.Close()

	g2, err := OpenSQLite(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	g2.Close()
}

func TestRemindersIncludeContactsWithoutFollowUp(t *testing.T) {
	t.Parallel()
	g := testGateway(t)
	seedFixture(t, g)

	counsel, err := g.Reminders(context.Background(), module.Counsel)
	if err != nil {
		t.Fatalf("Reminders(counsel): %v", err)
	}
	if len(counsel) != 1 || counsel[0].Due.IsZero() {
		t.Errorf("counsel reminders = %+v, want Jane with a due date", counsel)
	}

	agent, err := g.Reminders(context.Background(), module.Agent)
	if err != nil {
		t.Fatalf("Reminders(agent): %v", err)
	}
	if len(agent) != 1 || !agent[0].Due.IsZero() {
		t.Errorf("agent reminders = %+v, want John with zero due", agent)
	}
}

func TestRemindersFlagCorruptDueDate(t *testing.T) {
	t.Parallel()
	g := testGateway(t)
	seedFixture(t, g)

	if _, err := g.db.ExecContext(context.Background(),
		`UPDATE reminders SET due_at = 'not-a-date' WHERE contact_id = 'c-jane'`); err != nil {
		t.Fatalf("corrupting due_at: %v", err)
	}

	reminders, err := g.Reminders(context.Background(), module.Counsel)
	if err != nil {
		t.Fatalf("Reminders: %v", err)
	}
	if len(reminders) != 1 || !reminders[0].BadDue || !reminders[0].Due.IsZero() {
		t.Errorf("reminders = %+v, want Jane flagged with a bad due date", reminders)
	}
}

func TestRemindersRejectsUnknownModule(t *testing.T) {
	t.Parallel()
	g := testGateway(t)
	if _, err := g.Reminders(context.Background(), module.Tag("vendor")); err == nil {
		t.Error("Reminders(vendor) succeeded, want error")
	}
}

func TestMeetingHistory(t *testing.T) {
	t.Parallel()
	g := testGateway(t)
	seedFixture(t, g)

	history, err := g.MeetingHistory(context.Background(), module.Counsel)
	if err != nil {
		t.Fatalf("MeetingHistory: %v", err)
	}
	if len(history) != 1 || len(history[0].Entries) != 1 {
		t.Fatalf("history = %+v, want one contact with one entry", history)
	}
	entry := history[0].Entries[0]
	if entry.Notes != "kickoff discussion" {
		t.Errorf("notes = %q", entry.Notes)
	}
	if len(entry.Assignees) != 2 || entry.Assignees[0].UserID != "u-1" {
		t.Errorf("assignees = %+v, want u-1 then u-2", entry.Assignees)
	}
	want := time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)
	if !entry.When.Equal(want) {
		t.Errorf("when = %s, want %s", entry.When, want)
	}
}

func TestCreateMeetingRoundTrip(t *testing.T) {
	t.Parallel()
	g := testGateway(t)
	seedFixture(t, g)

	when := time.Date(2025, time.April, 2, 15, 30, 0, 0, time.UTC)
	m, err := g.CreateMeeting(context.Background(), CreateMeetingParams{
		ContactID:        "c-john",
		OrganizationType: module.Agent,
		Timestamp:        when,
		Notes:            "intro call",
		Participants:     "John",
		NextFollowUp:     time.Date(2025, time.April, 9, 0, 0, 0, 0, time.UTC),
		AssigneeIDs:      []string{"u-1"},
	})
	if err != nil {
		t.Fatalf("CreateMeeting: %v", err)
	}
	if m.MeetingID == "" || m.Module != module.Agent {
		t.Errorf("meeting = %+v", m)
	}

	history, err := g.MeetingHistory(context.Background(), module.Agent)
	if err != nil {
		t.Fatalf("MeetingHistory: %v", err)
	}
	if len(history) != 1 || len(history[0].Entries) != 1 {
		t.Fatalf("history after create = %+v", history)
	}
	if !history[0].Entries[0].When.Equal(when) {
		t.Errorf("stored when = %s, want %s", history[0].Entries[0].When, when)
	}

	// The next follow-up must land on John's reminder.
	reminders, err := g.Reminders(context.Background(), module.Agent)
	if err != nil {
		t.Fatalf("Reminders: %v", err)
	}
	if len(reminders) != 1 || reminders[0].Due.IsZero() {
		t.Errorf("reminders after create = %+v, want John with due date", reminders)
	}
}

func TestCreateMeetingRejectsWrongModule(t *testing.T) {
	t.Parallel()
	g := testGateway(t)
	seedFixture(t, g)

	_, err := g.CreateMeeting(context.Background(), CreateMeetingParams{
		ContactID:        "c-john", // agent contact
		OrganizationType: module.Sponsor,
		Timestamp:        time.Now(),
	})
	if err == nil {
		t.Error("CreateMeeting with mismatched organization type succeeded")
	}
}

func TestRescheduleMeeting(t *testing.T) {
	t.Parallel()
	g := testGateway(t)
	seedFixture(t, g)

	history, _ := g.MeetingHistory(context.Background(), module.Counsel)
	meetingID := history[0].Entries[0].MeetingID

	newWhen := time.Date(2025, time.February, 20, 9, 0, 0, 0, time.UTC)
	m, err := g.RescheduleMeeting(context.Background(), RescheduleParams{
		ContactID:        "c-jane",
		MeetingID:        meetingID,
		OrganizationType: module.Counsel,
		NewTimestamp:     newWhen,
	})
	if err != nil {
		t.Fatalf("RescheduleMeeting: %v", err)
	}
	if !m.Timestamp.Equal(newWhen) {
		t.Errorf("timestamp = %s, want %s", m.Timestamp, newWhen)
	}
	// Notes and assignees survive the move.
	if m.Notes != "kickoff discussion" || len(m.Assignees) != 2 {
		t.Errorf("meeting after reschedule = %+v", m)
	}
}

func TestRescheduleUnknownMeeting(t *testing.T) {
	t.Parallel()
	g := testGateway(t)
	seedFixture(t, g)

	_, err := g.RescheduleMeeting(context.Background(), RescheduleParams{
		ContactID:        "c-jane",
		MeetingID:        "nope",
		OrganizationType: module.Counsel,
		NewTimestamp:     time.Now(),
	})
	if !errors.Is(err, ErrMeetingNotFound) {
		t.Errorf("err = %v, want ErrMeetingNotFound", err)
	}
}

func TestUpdateAndDeleteMeetingNote(t *testing.T) {
	t.Parallel()
	g := testGateway(t)
	seedFixture(t, g)

	history, _ := g.MeetingHistory(context.Background(), module.Counsel)
	meetingID := history[0].Entries[0].MeetingID

	people := "Jane, Counsel team"
	m, err := g.UpdateMeetingNote(context.Background(), UpdateNoteParams{
		ContactID:    "c-jane",
		MeetingID:    meetingID,
		Notes:        "revised summary",
		Participants: &people,
	})
	if err != nil {
		t.Fatalf("UpdateMeetingNote: %v", err)
	}
	if m.Notes != "revised summary" || m.Participants != people {
		t.Errorf("updated meeting = %+v", m)
	}

	if err := g.DeleteMeetingNote(context.Background(), DeleteNoteParams{
		ContactID: "c-jane", MeetingID: meetingID,
	}); err != nil {
		t.Fatalf("DeleteMeetingNote: %v", err)
	}
	err = g.DeleteMeetingNote(context.Background(), DeleteNoteParams{
		ContactID: "c-jane", MeetingID: meetingID,
	})
	if !errors.Is(err, ErrMeetingNotFound) {
		t.Errorf("second delete err = %v, want ErrMeetingNotFound", err)
	}
}

func TestContacts(t *testing.T) {
	t.Parallel()
	g := testGateway(t)
	seedFixture(t, g)

	contacts, err := g.Contacts(context.Background())
	if err != nil {
		t.Fatalf("Contacts: %v", err)
	}
	if len(contacts) != 2 {
		t.Fatalf("contacts = %+v, want 2", contacts)
	}
	// Sorted by name: Jane before John.
	if contacts[0].Name != "Jane Doe" || contacts[0].Module != module.Counsel ||
		contacts[0].Organization != "Baker LLP" {
		t.Errorf("contacts[0] = %+v", contacts[0])
	}
}
