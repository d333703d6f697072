package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pumicestone/caldesk/internal/event"
	"github.com/pumicestone/caldesk/internal/gateway"
)

// EditForm edits a future meeting's notes and participants in place.
// Past meetings never reach this form; they are historical record.
type EditForm struct {
	Seq     int
	Meeting event.CalendarEvent

	Notes        textarea.Model
	Participants textinput.Model
	focus        int // 0 = notes, 1 = participants

	Submitting bool
	Err        string
}

// NewEditForm builds the overlay pre-filled with the meeting's current
// fields.
func NewEditForm(seq int, ev event.CalendarEvent) *EditForm {
	notes := textarea.New()
	notes.SetHeight(4)
	notes.CharLimit = 2000
	notes.SetValue(ev.Notes)
	notes.Focus()

	participants := textinput.New()
	participants.CharLimit = 256
	participants.SetValue(ev.Participants)

	return &EditForm{Seq: seq, Meeting: ev, Notes: notes, Participants: participants}
}

// Update feeds one key into the form, returning the update params on a
// valid save.
func (f *EditForm) Update(msg tea.KeyMsg) (*gateway.UpdateNoteParams, tea.Cmd) {
	if f.Submitting {
		return nil, nil
	}

	switch msg.String() {
	case "tab", "shift+tab":
		if f.focus == 0 {
			f.focus = 1
			f.Notes.Blur()
			f.Participants.Focus()
		} else {
			f.focus = 0
			f.Participants.Blur()
			f.Notes.Focus()
		}
		return nil, nil
	case "ctrl+s":
		if strings.TrimSpace(f.Notes.Value()) == "" {
			f.Err = "notes are required"
			return nil, nil
		}
		f.Err = ""
		participants := f.Participants.Value()
		return &gateway.UpdateNoteParams{
			ContactID:    f.Meeting.Contact.ID,
			MeetingID:    f.Meeting.MeetingID,
			Notes:        f.Notes.Value(),
			Participants: &participants,
		}, nil
	}

	var cmd tea.Cmd
	if f.focus == 0 {
		f.Notes, cmd = f.Notes.Update(msg)
	} else {
		f.Participants, cmd = f.Participants.Update(msg)
	}
	return nil, cmd
}

// View renders the overlay.
func (f *EditForm) View() string {
	var b strings.Builder
	b.WriteString(styleOverlayTitle.Render(fmt.Sprintf("Edit meeting — %s, %s",
		f.Meeting.Contact.Name, f.Meeting.Timestamp.Format("Jan 2 15:04"))))
	b.WriteString("\n\n")
	b.WriteString(styleFieldLabel.Render("Notes (required)") + "\n" + f.Notes.View() + "\n")
	b.WriteString(styleFieldLabel.Render("Participants") + " " + f.Participants.View() + "\n")
	b.WriteString("\n" + styleDetailDim.Render("tab: next field · ctrl+s: save · esc: cancel"))

	if f.Submitting {
		b.WriteString("\n" + styleMessage.Render("saving…"))
	}
	if f.Err != "" {
		b.WriteString("\n" + styleError.Render(f.Err))
	}
	return styleOverlay.Render(lipgloss.NewStyle().Width(overlayWidth).Render(b.String()))
}
