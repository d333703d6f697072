// Package module defines the four relationship categories that every other
// package discriminates on. All cross-module branching (labels, colors,
// routing, organization-name selection) switches on a single Tag value
// rather than probing which optional field happens to be set.
package module

import "fmt"

// Tag identifies one of the four contact categories. The string values
// double as the organization-type discriminator the scheduling gateway
// accepts, so they must stay stable.
type Tag string

const (
	CapitalPartner Tag = "capital_partner"
	Sponsor        Tag = "sponsor"
	Counsel        Tag = "counsel"
	Agent          Tag = "agent"
)

// All returns the four tags in display order.
func All() []Tag {
	return []Tag{CapitalPartner, Sponsor, Counsel, Agent}
}

// Valid reports whether t is one of the four known tags.
func (t Tag) Valid() bool {
	switch t {
	case CapitalPartner, Sponsor, Counsel, Agent:
		return true
	}
	return false
}

// Label returns the human-readable name shown in the UI.
func (t Tag) Label() string {
	switch t {
	case CapitalPartner:
		return "Capital Partner"
	case Sponsor:
		return "Sponsor"
	case Counsel:
		return "Counsel"
	case Agent:
		return "Agent"
	default:
		return "Unknown"
	}
}

// OrgField returns the name of the module-specific organization column.
// Exactly one of these is populated per contact; seed files and the search
// index use this to pick the right source field.
func (t Tag) OrgField() string {
	switch t {
	case CapitalPartner:
		return "capital_partner_name"
	case Sponsor:
		return "sponsor_name"
	case Counsel:
		return "firm_name"
	case Agent:
		return "agent_name"
	default:
		return ""
	}
}

// Parse converts a raw string into a Tag, rejecting unknown values.
func Parse(s string) (Tag, error) {
	t := Tag(s)
	if !t.Valid() {
		return "", fmt.Errorf("module: unknown tag %q", s)
	}
	return t, nil
}
