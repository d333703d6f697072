package tui

import (
	"fmt"
	"strings"
)

// StatusBar renders the persistent top bar: app name, event count, the
// only-mine filter state, and warning count from the last load.
type StatusBar struct {
	EventCount int
	OnlyMine   bool
	UserName   string
	Warnings   int
	Loading    bool
	Width      int
}

// View renders the status bar as a single line.
func (s StatusBar) View() string {
	segments := []string{
		styleStatusLabel.Render("caldesk"),
		fmt.Sprintf("%d events", s.EventCount),
	}

	if s.OnlyMine {
		who := s.UserName
		if who == "" {
			who = "me"
		}
		segments = append(segments, styleStatusLabel.Render("filter: ")+who)
	}
	if s.Warnings > 0 {
		segments = append(segments, styleStatusWarn.Render(fmt.Sprintf("⚠ %d warning(s)", s.Warnings)))
	}
	if s.Loading {
		segments = append(segments, styleStatusWarn.Render("loading…"))
	}

	bar := strings.Join(segments, "  │  ")
	return styleStatusBar.Width(max(s.Width, 0)).Render(bar)
}
