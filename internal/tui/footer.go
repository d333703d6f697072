package tui

import "strings"

// footerView renders the context-sensitive key help line.
func footerView(state flowState, width int) string {
	var keys []string
	switch state {
	case stateDragging:
		keys = []string{"←↑↓→ move", "enter drop", "esc cancel"}
	case stateCreating, stateEditingNote:
		keys = []string{"tab field", "ctrl+s save", "esc cancel"}
	case stateConfirmDelete:
		keys = []string{"y delete", "n/esc keep"}
	case stateViewing, stateContact:
		keys = []string{"enter open", "tab next", "m move", "e edit", "d delete", "esc back"}
	default:
		keys = []string{"←↑↓→ day", "[/] month", "enter select", "n new", "o only mine", "r refresh", "q quit"}
	}
	return styleFooter.Width(max(width, 0)).Render(strings.Join(keys, " · "))
}
