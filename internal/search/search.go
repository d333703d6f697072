// Package search ranks contacts from all four modules against a free-text
// query for the calendar's creation flow.
package search

import (
	"strings"

	"github.com/pumicestone/caldesk/internal/module"
)

// MaxResults caps the result set so the picker never shows hundreds of
// unfiltered contacts.
const MaxResults = 10

// Contact is a module-tagged contact record flattened for searching.
// Organization holds the module-specific organization name (capital
// partner name, sponsor name, firm name, or agent name) — exactly one of
// those source fields is populated per contact, selected by the tag.
type Contact struct {
	ID           string
	Module       module.Tag
	Name         string
	Role         string
	Email        string
	Phone        string
	Organization string
}

// WithModule tags a batch of contacts with their source module, returning
// the same slice. Per-module loaders share this instead of re-implementing
// the tagging loop four times.
func WithModule(contacts []Contact, tag module.Tag) []Contact {
	for i := range contacts {
		contacts[i].Module = tag
	}
	return contacts
}

// Search returns at most MaxResults contacts whose name, role, or
// organization contains the query, case-insensitively. An empty or
// all-whitespace query returns nothing: the creation flow has no
// browse-all fallback.
func Search(query string, contacts []Contact) []Contact {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var out []Contact
	for _, c := range contacts {
		if matches(c, q) {
			out = append(out, c)
			if len(out) == MaxResults {
				break
			}
		}
	}
	return out
}

func matches(c Contact, q string) bool {
	for _, field := range []string{c.Name, c.Role, c.Organization} {
		if field != "" && strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
