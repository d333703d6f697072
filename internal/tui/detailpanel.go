package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/pumicestone/caldesk/internal/event"
)

// agendaView lists a day's events chronologically under the grid. The
// rendering layer owns the sort; aggregation is order-free.
func agendaView(day time.Time, events []event.CalendarEvent, selected int, viewing bool) string {
	var b strings.Builder
	b.WriteString(styleDetailTitle.Render(day.Format("Mon Jan 2")))
	b.WriteString("\n")

	dayEvents := event.OnDay(events, day)
	event.SortByTime(dayEvents)
	if len(dayEvents) == 0 {
		b.WriteString(styleDetailDim.Render("no events — press n to schedule a meeting"))
		return styleDetailBorder.Render(b.String())
	}

	for i, ev := range dayEvents {
		line := agendaLine(ev)
		if viewing && i == selected {
			line = styleRowSelected.Render("▎" + line)
		} else {
			line = " " + line
		}
		b.WriteString(line + "\n")
	}

	if viewing && selected < len(dayEvents) {
		b.WriteString("\n")
		b.WriteString(eventDetail(dayEvents[selected]))
	}
	return styleDetailBorder.Render(strings.TrimRight(b.String(), "\n"))
}

func agendaLine(ev event.CalendarEvent) string {
	st := StyleFor(ev)
	when := "all day"
	if ev.Kind == event.KindMeeting {
		when = ev.Timestamp.Format("15:04")
	}
	return fmt.Sprintf("%s %s  %s", chip(ev), when, st.Tooltip)
}

// eventDetail expands the selected event with its urgency and the action
// the enter key resolves to.
func eventDetail(ev event.CalendarEvent) string {
	var lines []string

	switch ev.Kind {
	case event.KindReminder:
		lines = append(lines, styleFieldLabel.Render("Follow-up reminder — "+ev.Urgency.String()))
		lines = append(lines, styleDetailDim.Render("enter: open contact (follow-ups are edited on the contact)"))
	case event.KindMeeting:
		if ev.FutureMeeting {
			lines = append(lines, styleFieldLabel.Render("Scheduled meeting"))
			lines = append(lines, styleDetailDim.Render("enter/e: edit · m: move · d: delete"))
		} else {
			lines = append(lines, styleFieldLabel.Render("Meeting record"))
			lines = append(lines, styleDetailDim.Render("enter: open contact history · m: move"))
		}
	}
	return strings.Join(lines, "\n")
}

// contactCard renders the navigation target for reminder clicks and past
// meetings: the contact's details, with the meeting history section
// emphasized when the route asks for it.
func contactCard(contact event.ContactRef, history []event.CalendarEvent, route Route) string {
	var b strings.Builder
	b.WriteString(styleDetailTitle.Render(contact.Name))
	b.WriteString("\n")

	if contact.Role != "" {
		b.WriteString(styleFieldLabel.Render("Role: ") + contact.Role + "\n")
	}
	if contact.Email != "" {
		b.WriteString(styleFieldLabel.Render("Email: ") + contact.Email + "\n")
	}
	if contact.Phone != "" {
		b.WriteString(styleFieldLabel.Render("Phone: ") + contact.Phone + "\n")
	}

	title := "Meeting history"
	if route == RouteMeetingHistory {
		title = "Meeting history ◂"
	}
	b.WriteString("\n" + styleFieldLabel.Render(title) + "\n")

	var meetings []event.CalendarEvent
	for _, ev := range history {
		if ev.Kind == event.KindMeeting && ev.Contact.ID == contact.ID {
			meetings = append(meetings, ev)
		}
	}
	event.SortByTime(meetings)
	if len(meetings) == 0 {
		b.WriteString(styleDetailDim.Render("no meetings recorded"))
	}
	for _, m := range meetings {
		notes := truncateNotes(m.Notes)
		if notes == "" {
			notes = "(no notes)"
		}
		b.WriteString(fmt.Sprintf("%s  %s\n", m.Timestamp.Format("2006-01-02 15:04"), notes))
	}

	b.WriteString("\n" + styleDetailDim.Render("esc: back"))
	return styleDetailBorder.Render(strings.TrimRight(b.String(), "\n"))
}
