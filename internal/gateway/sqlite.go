package gateway

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure-Go SQLite driver.

	"github.com/pumicestone/caldesk/internal/event"
	"github.com/pumicestone/caldesk/internal/module"
	"github.com/pumicestone/caldesk/internal/search"
)

// schema contains the DDL executed on every open. IF NOT EXISTS makes it
// safe to run repeatedly.
const schema = `
CREATE TABLE IF NOT EXISTS contacts (
    id           TEXT PRIMARY KEY,
    module       TEXT NOT NULL,
    name         TEXT NOT NULL,
    role         TEXT NOT NULL DEFAULT '',
    email        TEXT NOT NULL DEFAULT '',
    phone        TEXT NOT NULL DEFAULT '',
    organization TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS reminders (
    contact_id TEXT PRIMARY KEY REFERENCES contacts(id),
    due_at     TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS meetings (
    id           TEXT PRIMARY KEY,
    contact_id   TEXT NOT NULL REFERENCES contacts(id),
    held_at      TEXT NOT NULL,
    notes        TEXT NOT NULL DEFAULT '',
    participants TEXT NOT NULL DEFAULT '',
    created_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS meeting_assignees (
    meeting_id   TEXT NOT NULL REFERENCES meetings(id) ON DELETE CASCADE,
    user_id      TEXT NOT NULL,
    display_name TEXT NOT NULL DEFAULT '',
    position     INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (meeting_id, user_id)
);
`

// SQLite implements Gateway against a local SQLite database in WAL mode.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at dbPath, enables WAL mode
// and a busy timeout, and creates the schema if missing.
func OpenSQLite(ctx context.Context, dbPath string) (*SQLite, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("gateway: open database: %w", err)
	}

	// Limit to one connection. SQLite only supports a single writer; one
	// connection avoids SQLITE_BUSY contention between pooled connections
	// that each need their own PRAGMA setup.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("gateway: %s: %w", pragma, err)
		}
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("gateway: create schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Close releases the underlying database handle.
func (g *SQLite) Close() error {
	return g.db.Close()
}

// newMeetingID mints the identifier for a meeting row.
func newMeetingID() string {
	return uuid.NewString()
}

// timeLayout is the canonical on-disk timestamp format.
const timeLayout = time.RFC3339

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timeLayout)
}

// parseTime returns the zero time for empty values. ok is false only for
// non-empty values that fail to parse; the caller decides whether that
// means a counted drop (reminders) or an invalid event the adapters drop
// (meetings). Either way the calendar keeps rendering.
func parseTime(s string) (t time.Time, ok bool) {
	if s == "" {
		return time.Time{}, true
	}
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Reminders returns one record per contact in the module. Contacts without
// a reminders row come back with a zero Due.
func (g *SQLite) Reminders(ctx context.Context, tag module.Tag) ([]event.ReminderRecord, error) {
	if !tag.Valid() {
		return nil, fmt.Errorf("gateway: reminders: unknown module %q", tag)
	}
	const q = `
		SELECT c.id, c.name, c.role, c.email, c.phone, COALESCE(r.due_at, '')
		FROM contacts c
		LEFT JOIN reminders r ON r.contact_id = c.id
		WHERE c.module = ?
		ORDER BY c.name`
	rows, err := g.db.QueryContext(ctx, q, string(tag))
	if err != nil {
		return nil, fmt.Errorf("gateway: query reminders for %s: %w", tag, err)
	}
	defer rows.Close()

	var out []event.ReminderRecord
	for rows.Next() {
		var rec event.ReminderRecord
		var due string
		if err := rows.Scan(&rec.Contact.ID, &rec.Contact.Name, &rec.Contact.Role,
			&rec.Contact.Email, &rec.Contact.Phone, &due); err != nil {
			return nil, fmt.Errorf("gateway: scan reminder: %w", err)
		}
		var ok bool
		rec.Due, ok = parseTime(due)
		rec.BadDue = !ok
		out = append(out, rec)
	}
	return out, rows.Err()
}

// MeetingHistory returns each contact's meeting entries for the module,
// assignees in stored order.
func (g *SQLite) MeetingHistory(ctx context.Context, tag module.Tag) ([]event.ContactHistory, error) {
	if !tag.Valid() {
		return nil, fmt.Errorf("gateway: meeting history: unknown module %q", tag)
	}
	const q = `
		SELECT c.id, c.name, c.role, c.email, c.phone,
		       m.id, m.held_at, m.notes, m.participants
		FROM contacts c
		JOIN meetings m ON m.contact_id = c.id
		WHERE c.module = ?
		ORDER BY c.name, m.held_at`
	rows, err := g.db.QueryContext(ctx, q, string(tag))
	if err != nil {
		return nil, fmt.Errorf("gateway: query meeting history for %s: %w", tag, err)
	}
	defer rows.Close()

	byContact := map[string]int{}
	var out []event.ContactHistory
	for rows.Next() {
		var contact event.ContactRef
		var entry event.HistoryEntry
		var heldAt string
		if err := rows.Scan(&contact.ID, &contact.Name, &contact.Role,
			&contact.Email, &contact.Phone,
			&entry.MeetingID, &heldAt, &entry.Notes, &entry.Participants); err != nil {
			return nil, fmt.Errorf("gateway: scan meeting: %w", err)
		}
		entry.When, _ = parseTime(heldAt)

		idx, ok := byContact[contact.ID]
		if !ok {
			idx = len(out)
			byContact[contact.ID] = idx
			out = append(out, event.ContactHistory{Contact: contact})
		}
		out[idx].Entries = append(out[idx].Entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		for j := range out[i].Entries {
			assignees, err := g.assignees(ctx, out[i].Entries[j].MeetingID)
			if err != nil {
				return nil, err
			}
			out[i].Entries[j].Assignees = assignees
		}
	}
	return out, nil
}

func (g *SQLite) assignees(ctx context.Context, meetingID string) ([]event.Assignee, error) {
	const q = `
		SELECT user_id, display_name FROM meeting_assignees
		WHERE meeting_id = ? ORDER BY position`
	rows, err := g.db.QueryContext(ctx, q, meetingID)
	if err != nil {
		return nil, fmt.Errorf("gateway: query assignees for %s: %w", meetingID, err)
	}
	defer rows.Close()

	var out []event.Assignee
	for rows.Next() {
		var a event.Assignee
		if err := rows.Scan(&a.UserID, &a.DisplayName); err != nil {
			return nil, fmt.Errorf("gateway: scan assignee: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Contacts returns every contact across all modules, tagged for search.
func (g *SQLite) Contacts(ctx context.Context) ([]search.Contact, error) {
	const q = `
		SELECT id, module, name, role, email, phone, organization
		FROM contacts ORDER BY name`
	rows, err := g.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("gateway: query contacts: %w", err)
	}
	defer rows.Close()

	var out []search.Contact
	for rows.Next() {
		var c search.Contact
		var tag string
		if err := rows.Scan(&c.ID, &tag, &c.Name, &c.Role, &c.Email, &c.Phone, &c.Organization); err != nil {
			return nil, fmt.Errorf("gateway: scan contact: %w", err)
		}
		c.Module = module.Tag(tag)
		out = append(out, c)
	}
	return out, rows.Err()
}

// CreateMeeting records a meeting (and optionally moves the contact's
// reminder) in one transaction. The meeting ID is minted here.
func (g *SQLite) CreateMeeting(ctx context.Context, p CreateMeetingParams) (Meeting, error) {
	if !p.OrganizationType.Valid() {
		return Meeting{}, fmt.Errorf("gateway: create meeting: unknown organization type %q", p.OrganizationType)
	}
	if p.Timestamp.IsZero() {
		return Meeting{}, errors.New("gateway: create meeting: timestamp required")
	}

	tx, err := g.db.BeginTx(ctx, nil)
	if err != nil {
		return Meeting{}, fmt.Errorf("gateway: begin create tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if err := g.checkContact(ctx, tx, p.ContactID, p.OrganizationType); err != nil {
		return Meeting{}, err
	}

	id := newMeetingID()
	const ins = `
		INSERT INTO meetings (id, contact_id, held_at, notes, participants)
		VALUES (?, ?, ?, ?, ?)`
	if _, err := tx.ExecContext(ctx, ins, id, p.ContactID, formatTime(p.Timestamp), p.Notes, p.Participants); err != nil {
		return Meeting{}, fmt.Errorf("gateway: insert meeting: %w", err)
	}

	var assignees []event.Assignee
	for i, userID := range p.AssigneeIDs {
		const insA = `
			INSERT INTO meeting_assignees (meeting_id, user_id, display_name, position)
			VALUES (?, ?, '', ?)`
		if _, err := tx.ExecContext(ctx, insA, id, userID, i); err != nil {
			return Meeting{}, fmt.Errorf("gateway: insert assignee %q: %w", userID, err)
		}
		assignees = append(assignees, event.Assignee{UserID: userID})
	}

	if !p.NextFollowUp.IsZero() {
		if err := upsertReminder(ctx, tx, p.ContactID, p.NextFollowUp); err != nil {
			return Meeting{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return Meeting{}, fmt.Errorf("gateway: commit create: %w", err)
	}

	return Meeting{
		MeetingID:    id,
		ContactID:    p.ContactID,
		Module:       p.OrganizationType,
		Timestamp:    p.Timestamp.UTC(),
		Notes:        p.Notes,
		Participants: p.Participants,
		Assignees:    assignees,
	}, nil
}

// RescheduleMeeting moves a meeting to a new timestamp.
func (g *SQLite) RescheduleMeeting(ctx context.Context, p RescheduleParams) (Meeting, error) {
	if !p.OrganizationType.Valid() {
		return Meeting{}, fmt.Errorf("gateway: reschedule: unknown organization type %q", p.OrganizationType)
	}
	if p.NewTimestamp.IsZero() {
		return Meeting{}, errors.New("gateway: reschedule: new timestamp required")
	}

	const q = `
		UPDATE meetings SET held_at = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND contact_id = ?`
	res, err := g.db.ExecContext(ctx, q, formatTime(p.NewTimestamp), p.MeetingID, p.ContactID)
	if err != nil {
		return Meeting{}, fmt.Errorf("gateway: reschedule meeting %s: %w", p.MeetingID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return Meeting{}, fmt.Errorf("gateway: reschedule meeting %s: %w", p.MeetingID, ErrMeetingNotFound)
	}
	return g.meeting(ctx, p.ContactID, p.MeetingID)
}

// UpdateMeetingNote rewrites notes (and optionally participants and the
// contact's follow-up) on an existing meeting.
func (g *SQLite) UpdateMeetingNote(ctx context.Context, p UpdateNoteParams) (Meeting, error) {
	tx, err := g.db.BeginTx(ctx, nil)
	if err != nil {
		return Meeting{}, fmt.Errorf("gateway: begin update tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var res sql.Result
	if p.Participants != nil {
		const q = `
			UPDATE meetings SET notes = ?, participants = ?, updated_at = CURRENT_TIMESTAMP
			WHERE id = ? AND contact_id = ?`
		res, err = tx.ExecContext(ctx, q, p.Notes, *p.Participants, p.MeetingID, p.ContactID)
	} else {
		const q = `
			UPDATE meetings SET notes = ?, updated_at = CURRENT_TIMESTAMP
			WHERE id = ? AND contact_id = ?`
		res, err = tx.ExecContext(ctx, q, p.Notes, p.MeetingID, p.ContactID)
	}
	if err != nil {
		return Meeting{}, fmt.Errorf("gateway: update meeting %s: %w", p.MeetingID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return Meeting{}, fmt.Errorf("gateway: update meeting %s: %w", p.MeetingID, ErrMeetingNotFound)
	}

	if !p.NextFollowUp.IsZero() {
		if err := upsertReminder(ctx, tx, p.ContactID, p.NextFollowUp); err != nil {
			return Meeting{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return Meeting{}, fmt.Errorf("gateway: commit update: %w", err)
	}
	return g.meeting(ctx, p.ContactID, p.MeetingID)
}

// DeleteMeetingNote removes a meeting record and its assignees.
func (g *SQLite) DeleteMeetingNote(ctx context.Context, p DeleteNoteParams) error {
	const q = `DELETE FROM meetings WHERE id = ? AND contact_id = ?`
	res, err := g.db.ExecContext(ctx, q, p.MeetingID, p.ContactID)
	if err != nil {
		return fmt.Errorf("gateway: delete meeting %s: %w", p.MeetingID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("gateway: delete meeting %s: %w", p.MeetingID, ErrMeetingNotFound)
	}
	return nil
}

// meeting loads a single meeting row with its assignees and module tag.
func (g *SQLite) meeting(ctx context.Context, contactID, meetingID string) (Meeting, error) {
	const q = `
		SELECT m.id, m.contact_id, c.module, m.held_at, m.notes, m.participants
		FROM meetings m JOIN contacts c ON c.id = m.contact_id
		WHERE m.id = ? AND m.contact_id = ?`
	var m Meeting
	var tag, heldAt string
	err := g.db.QueryRowContext(ctx, q, meetingID, contactID).
		Scan(&m.MeetingID, &m.ContactID, &tag, &heldAt, &m.Notes, &m.Participants)
	if errors.Is(err, sql.ErrNoRows) {
		return Meeting{}, fmt.Errorf("gateway: meeting %s: %w", meetingID, ErrMeetingNotFound)
	}
	if err != nil {
		return Meeting{}, fmt.Errorf("gateway: load meeting %s: %w", meetingID, err)
	}
	m.Module = module.Tag(tag)
	m.Timestamp, _ = parseTime(heldAt)
	m.Assignees, err = g.assignees(ctx, meetingID)
	return m, err
}

func (g *SQLite) checkContact(ctx context.Context, tx *sql.Tx, contactID string, tag module.Tag) error {
	var gotTag string
	err := tx.QueryRowContext(ctx, "SELECT module FROM contacts WHERE id = ?", contactID).Scan(&gotTag)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("gateway: contact %s: %w", contactID, ErrContactNotFound)
	}
	if err != nil {
		return fmt.Errorf("gateway: look up contact %s: %w", contactID, err)
	}
	if gotTag != string(tag) {
		return fmt.Errorf("gateway: contact %s is %s, not %s", contactID, gotTag, tag)
	}
	return nil
}

func upsertReminder(ctx context.Context, tx *sql.Tx, contactID string, due time.Time) error {
	const q = `
		INSERT INTO reminders (contact_id, due_at) VALUES (?, ?)
		ON CONFLICT(contact_id) DO UPDATE SET due_at = excluded.due_at`
	if _, err := tx.ExecContext(ctx, q, contactID, formatTime(due)); err != nil {
		return fmt.Errorf("gateway: upsert reminder for %s: %w", contactID, err)
	}
	return nil
}
