package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/pumicestone/caldesk/internal/event"
)

// dayCellWidth is the rendered width of one grid cell: two digits, a
// space, and up to three event chips.
const dayCellWidth = 7

// maxChipsPerDay caps the per-cell event markers; busier days get a "+".
const maxChipsPerDay = 3

// MonthView renders one month as a grid with a day cursor, today
// highlighting, and per-event colored chips. During a move gesture the
// drag target is highlighted instead of the cursor.
type MonthView struct {
	Month      time.Time // any time within the displayed month
	Cursor     time.Time
	Today      time.Time
	DragTarget *time.Time
	Events     []event.CalendarEvent
}

// View renders the grid.
func (v MonthView) View() string {
	var b strings.Builder

	first := time.Date(v.Month.Year(), v.Month.Month(), 1, 0, 0, 0, 0, v.Month.Location())
	b.WriteString(styleDetailTitle.Render(first.Format("January 2006")))
	b.WriteString("\n")

	var heads []string
	for _, d := range []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"} {
		heads = append(heads, styleDayHeading.Render(pad(d)))
	}
	b.WriteString(strings.Join(heads, ""))
	b.WriteString("\n")

	// Back up to the Monday on or before the 1st.
	day := first.AddDate(0, 0, -mondayOffset(first.Weekday()))
	for week := 0; week < 6; week++ {
		var cells []string
		for i := 0; i < 7; i++ {
			cells = append(cells, v.cell(day, first.Month()))
			day = day.AddDate(0, 0, 1)
		}
		b.WriteString(strings.Join(cells, ""))
		b.WriteString("\n")
		if day.Month() != first.Month() && week >= 3 {
			break
		}
	}
	return b.String()
}

func (v MonthView) cell(day time.Time, month time.Month) string {
	label := fmt.Sprintf("%2d", day.Day())

	dayEvents := event.OnDay(v.Events, day)
	chips := ""
	for i, ev := range dayEvents {
		if i == maxChipsPerDay {
			chips += "+"
			break
		}
		chips += chip(ev)
	}

	var style lipgloss.Style
	switch {
	case v.DragTarget != nil && sameDay(day, *v.DragTarget):
		style = styleDragTarget
	case sameDay(day, v.Cursor):
		style = styleDayCursor
	case sameDay(day, v.Today):
		style = styleDayToday
	case day.Month() != month:
		style = styleDayOutside
	default:
		style = styleDayCell
	}

	cell := style.Render(label) + " " + chips
	return padTo(cell, dayCellWidth, lipgloss.Width(cell))
}

// mondayOffset converts Go's Sunday-first weekday to days since Monday.
func mondayOffset(w time.Weekday) int {
	return (int(w) + 6) % 7
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func pad(s string) string {
	return padTo(s, dayCellWidth, len(s))
}

func padTo(s string, width, used int) string {
	if used >= width {
		return s
	}
	return s + strings.Repeat(" ", width-used)
}
