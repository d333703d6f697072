package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/pumicestone/caldesk/internal/event"
	"github.com/pumicestone/caldesk/internal/module"
)

// Urgency color families. Urgent reminders override module identity:
// an overdue counsel follow-up must read as overdue first, counsel second.
var (
	colorOverdueBg = lipgloss.Color("#B71C1C")
	colorOverdue   = lipgloss.Color("#FF5252")
	colorDueSoonBg = lipgloss.Color("#E65100")
	colorDueSoon   = lipgloss.Color("#FFA726")
)

// Module base color families.
var (
	colorCapitalBg = lipgloss.Color("#1B5E20")
	colorCapital   = lipgloss.Color("#66BB6A")
	colorSponsorBg = lipgloss.Color("#4A148C")
	colorSponsor   = lipgloss.Color("#AB47BC")
	colorCounselBg = lipgloss.Color("#311B92")
	colorCounsel   = lipgloss.Color("#7E57C2")
	colorAgentBg   = lipgloss.Color("#006064")
	colorAgent     = lipgloss.Color("#26C6DA")
)

// notesPreviewLen is how much of a meeting's notes the tooltip shows.
const notesPreviewLen = 50

// EventStyle is the derived presentation of one calendar event.
type EventStyle struct {
	Background lipgloss.Color
	Border     lipgloss.Color
	Tooltip    string
}

// StyleFor derives an event's visual attributes from its kind, urgency,
// and module. Precedence, first match wins:
//
//  1. overdue reminder  → red family, regardless of module
//  2. due-soon reminder → orange family, regardless of module
//  3. everything else   → the module's base color family
func StyleFor(ev event.CalendarEvent) EventStyle {
	st := EventStyle{Tooltip: tooltipFor(ev)}

	switch {
	case ev.Kind == event.KindReminder && ev.Urgency == event.UrgencyOverdue:
		st.Background, st.Border = colorOverdueBg, colorOverdue
	case ev.Kind == event.KindReminder && ev.Urgency == event.UrgencyDueSoon:
		st.Background, st.Border = colorDueSoonBg, colorDueSoon
	default:
		st.Background, st.Border = moduleColors(ev.Module)
	}
	return st
}

func moduleColors(tag module.Tag) (bg, border lipgloss.Color) {
	switch tag {
	case module.CapitalPartner:
		return colorCapitalBg, colorCapital
	case module.Sponsor:
		return colorSponsorBg, colorSponsor
	case module.Counsel:
		return colorCounselBg, colorCounsel
	case module.Agent:
		return colorAgentBg, colorAgent
	default:
		return colorSurface, colorMuted
	}
}

// tooltipFor builds the hover/detail line: module label and contact name
// always; meetings add a truncated notes preview and the participants
// string (or an explicit N/A).
func tooltipFor(ev event.CalendarEvent) string {
	head := fmt.Sprintf("%s · %s", ev.Module.Label(), ev.Contact.Name)
	if ev.Kind != event.KindMeeting {
		return head
	}

	notes := truncateNotes(ev.Notes)
	if notes == "" {
		notes = "(no notes)"
	}
	participants := ev.Participants
	if participants == "" {
		participants = "N/A"
	}
	return fmt.Sprintf("%s · %s · Participants: %s", head, notes, participants)
}

// truncateNotes keeps the first notesPreviewLen runes, appending an
// ellipsis when anything was cut.
func truncateNotes(notes string) string {
	runes := []rune(notes)
	if len(runes) <= notesPreviewLen {
		return notes
	}
	return string(runes[:notesPreviewLen]) + "…"
}

// chip renders the single-character day-grid marker for an event.
func chip(ev event.CalendarEvent) string {
	st := StyleFor(ev)
	return lipgloss.NewStyle().Foreground(st.Border).Render("●")
}
