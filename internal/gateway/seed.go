package gateway

import (
	"context"
	"fmt"
	"os"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/pumicestone/caldesk/internal/module"
)

// SeedFile is the TOML fixture format accepted by `caldesk seed`.
type SeedFile struct {
	Contacts []SeedContact `toml:"contacts"`
}

// SeedContact declares one contact, its optional follow-up date, and its
// meeting history. Organization holds whichever module-specific name field
// applies (see module.Tag.OrgField).
type SeedContact struct {
	ID           string        `toml:"id"`
	Module       string        `toml:"module"`
	Name         string        `toml:"name"`
	Role         string        `toml:"role"`
	Email        string        `toml:"email"`
	Phone        string        `toml:"phone"`
	Organization string        `toml:"organization"`
	FollowUp     string        `toml:"follow_up"` // YYYY-MM-DD, empty for none
	Meetings     []SeedMeeting `toml:"meetings"`
}

// SeedMeeting declares one history entry. When accepts RFC3339 or a bare
// YYYY-MM-DD date.
type SeedMeeting struct {
	When         string   `toml:"when"`
	Notes        string   `toml:"notes"`
	Participants string   `toml:"participants"`
	Assignees    []string `toml:"assignees"`
}

// LoadSeedFile reads and parses a TOML seed fixture.
func LoadSeedFile(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gateway: reading seed file: %w", err)
	}
	var sf SeedFile
	if err := toml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("gateway: parsing seed file: %w", err)
	}
	return &sf, nil
}

// Seed inserts the fixture's contacts, reminders, and meetings. Existing
// contacts with the same ID are replaced wholesale.
func (g *SQLite) Seed(ctx context.Context, sf *SeedFile) error {
	tx, err := g.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("gateway: begin seed tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, c := range sf.Contacts {
		tag, err := module.Parse(c.Module)
		if err != nil {
			return fmt.Errorf("gateway: seed contact %q: %w", c.Name, err)
		}
		if c.ID == "" || c.Name == "" {
			return fmt.Errorf("gateway: seed contact %q: id and name are required", c.Name)
		}

		const insC = `
			INSERT INTO contacts (id, module, name, role, email, phone, organization)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				module = excluded.module, name = excluded.name, role = excluded.role,
				email = excluded.email, phone = excluded.phone, organization = excluded.organization`
		if _, err := tx.ExecContext(ctx, insC, c.ID, string(tag), c.Name, c.Role, c.Email, c.Phone, c.Organization); err != nil {
			return fmt.Errorf("gateway: seed contact %q: %w", c.Name, err)
		}

		if c.FollowUp != "" {
			due, err := parseSeedTime(c.FollowUp)
			if err != nil {
				return fmt.Errorf("gateway: seed contact %q follow_up: %w", c.Name, err)
			}
			if err := upsertReminder(ctx, tx, c.ID, due); err != nil {
				return err
			}
		}

		for _, m := range c.Meetings {
			when, err := parseSeedTime(m.When)
			if err != nil {
				return fmt.Errorf("gateway: seed meeting for %q: %w", c.Name, err)
			}
			id := newMeetingID()
			const insM = `
				INSERT INTO meetings (id, contact_id, held_at, notes, participants)
				VALUES (?, ?, ?, ?, ?)`
			if _, err := tx.ExecContext(ctx, insM, id, c.ID, formatTime(when), m.Notes, m.Participants); err != nil {
				return fmt.Errorf("gateway: seed meeting for %q: %w", c.Name, err)
			}
			for i, userID := range m.Assignees {
				const insA = `
					INSERT INTO meeting_assignees (meeting_id, user_id, display_name, position)
					VALUES (?, ?, '', ?)`
				if _, err := tx.ExecContext(ctx, insA, id, userID, i); err != nil {
					return fmt.Errorf("gateway: seed assignee %q: %w", userID, err)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("gateway: commit seed: %w", err)
	}
	return nil
}

func parseSeedTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("want RFC3339 or YYYY-MM-DD, got %q", s)
	}
	return t, nil
}
