package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pumicestone/caldesk/internal/gateway"
	"github.com/pumicestone/caldesk/internal/search"
)

// formPhase tracks where the creation flow is: picking a contact, then
// filling in the meeting details.
type formPhase int

const (
	phaseSearch formPhase = iota
	phaseDetails
)

// Detail-field focus order.
const (
	fieldNotes = iota
	fieldParticipants
	fieldTime
	fieldFollowUp
	fieldCount
)

// defaultMeetingTime fills the time input for new meetings.
const defaultMeetingTime = "10:00"

// CreateForm is the slot-selection → creation overlay. It searches
// contacts across all four modules, binds the chosen contact (carrying
// its module tag forward as the organization-type discriminator), and
// collects the meeting fields. Whether the chosen day is past or future
// only changes labeling and framing; the submitted shape is identical.
type CreateForm struct {
	Seq  int
	Day  time.Time
	Past bool // day is strictly before today

	contacts  []search.Contact
	Query     textinput.Model
	Results   []search.Contact
	resultIdx int
	Target    *search.Contact
	phase     formPhase

	Notes        textarea.Model
	Participants textinput.Model
	Time         textinput.Model
	FollowUp     textinput.Model
	focus        int

	assigneeID string

	Submitting bool
	Err        string
}

// NewCreateForm builds the overlay for the chosen day. assigneeID (the
// configured user) becomes the meeting's initial assignee when set.
func NewCreateForm(seq int, day time.Time, past bool, contacts []search.Contact, assigneeID string) *CreateForm {
	query := textinput.New()
	query.Prompt = "▸ "
	query.Placeholder = "search contacts by name, role, or organization"
	query.CharLimit = 128
	query.Focus()

	notes := textarea.New()
	notes.SetHeight(4)
	notes.CharLimit = 2000

	participants := textinput.New()
	participants.CharLimit = 256

	timeInput := textinput.New()
	timeInput.CharLimit = 5
	timeInput.SetValue(defaultMeetingTime)

	followUp := textinput.New()
	followUp.Placeholder = "YYYY-MM-DD (optional)"
	followUp.CharLimit = 10

	return &CreateForm{
		Seq:          seq,
		Day:          day,
		Past:         past,
		contacts:     contacts,
		Query:        query,
		Notes:        notes,
		Participants: participants,
		Time:         timeInput,
		FollowUp:     followUp,
		assigneeID:   assigneeID,
	}
}

// Update feeds one key into the form. It returns the submission params
// once the form is complete and valid; until then params is nil.
func (f *CreateForm) Update(msg tea.KeyMsg) (params *gateway.CreateMeetingParams, cmd tea.Cmd) {
	if f.Submitting {
		return nil, nil
	}
	if f.phase == phaseSearch {
		return nil, f.updateSearch(msg)
	}
	return f.updateDetails(msg)
}

func (f *CreateForm) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up":
		if f.resultIdx > 0 {
			f.resultIdx--
		}
		return nil
	case "down":
		if f.resultIdx < len(f.Results)-1 {
			f.resultIdx++
		}
		return nil
	case "enter":
		if f.resultIdx < len(f.Results) {
			target := f.Results[f.resultIdx]
			f.Target = &target
			f.phase = phaseDetails
			f.focus = fieldNotes
			f.Notes.Focus()
		}
		return nil
	}

	var cmd tea.Cmd
	f.Query, cmd = f.Query.Update(msg)
	f.Results = search.Search(f.Query.Value(), f.contacts)
	if f.resultIdx >= len(f.Results) {
		f.resultIdx = 0
	}
	return cmd
}

func (f *CreateForm) updateDetails(msg tea.KeyMsg) (*gateway.CreateMeetingParams, tea.Cmd) {
	switch msg.String() {
	case "tab":
		f.setFocus((f.focus + 1) % fieldCount)
		return nil, nil
	case "shift+tab":
		f.setFocus((f.focus + fieldCount - 1) % fieldCount)
		return nil, nil
	case "ctrl+s":
		return f.submit()
	}

	var cmd tea.Cmd
	switch f.focus {
	case fieldNotes:
		f.Notes, cmd = f.Notes.Update(msg)
	case fieldParticipants:
		f.Participants, cmd = f.Participants.Update(msg)
	case fieldTime:
		f.Time, cmd = f.Time.Update(msg)
	case fieldFollowUp:
		f.FollowUp, cmd = f.FollowUp.Update(msg)
	}
	return nil, cmd
}

func (f *CreateForm) setFocus(focus int) {
	f.focus = focus
	f.Notes.Blur()
	f.Participants.Blur()
	f.Time.Blur()
	f.FollowUp.Blur()
	switch focus {
	case fieldNotes:
		f.Notes.Focus()
	case fieldParticipants:
		f.Participants.Focus()
	case fieldTime:
		f.Time.Focus()
	case fieldFollowUp:
		f.FollowUp.Focus()
	}
}

// submit validates the form and builds the gateway params. Notes are
// required for past and future meetings alike; only the framing differs.
func (f *CreateForm) submit() (*gateway.CreateMeetingParams, tea.Cmd) {
	if f.Target == nil {
		f.Err = "pick a contact first"
		return nil, nil
	}
	if strings.TrimSpace(f.Notes.Value()) == "" {
		if f.Past {
			f.Err = "notes are required: record what happened"
		} else {
			f.Err = "notes are required: set the agenda"
		}
		return nil, nil
	}

	when, err := f.timestamp()
	if err != nil {
		f.Err = err.Error()
		return nil, nil
	}

	var followUp time.Time
	if v := strings.TrimSpace(f.FollowUp.Value()); v != "" {
		followUp, err = time.ParseInLocation("2006-01-02", v, f.Day.Location())
		if err != nil {
			f.Err = fmt.Sprintf("follow-up: want YYYY-MM-DD, got %q", v)
			return nil, nil
		}
	}

	var assignees []string
	if f.assigneeID != "" {
		assignees = []string{f.assigneeID}
	}

	f.Err = ""
	return &gateway.CreateMeetingParams{
		ContactID:        f.Target.ID,
		OrganizationType: f.Target.Module,
		Timestamp:        when,
		Notes:            f.Notes.Value(),
		Participants:     f.Participants.Value(),
		NextFollowUp:     followUp,
		AssigneeIDs:      assignees,
	}, nil
}

// timestamp combines the chosen day with the time-of-day input.
func (f *CreateForm) timestamp() (time.Time, error) {
	v := strings.TrimSpace(f.Time.Value())
	if v == "" {
		v = defaultMeetingTime
	}
	hm, err := time.Parse("15:04", v)
	if err != nil {
		return time.Time{}, fmt.Errorf("time: want HH:MM, got %q", v)
	}
	y, m, d := f.Day.Date()
	return time.Date(y, m, d, hm.Hour(), hm.Minute(), 0, 0, f.Day.Location()), nil
}

// View renders the overlay.
func (f *CreateForm) View() string {
	var b strings.Builder

	title := fmt.Sprintf("Schedule meeting — %s", f.Day.Format("Mon Jan 2, 2006"))
	if f.Past {
		title = fmt.Sprintf("Record past meeting — %s", f.Day.Format("Mon Jan 2, 2006"))
	}
	b.WriteString(styleOverlayTitle.Render(title))
	b.WriteString("\n\n")

	if f.phase == phaseSearch {
		b.WriteString(f.Query.View())
		b.WriteString("\n")
		if strings.TrimSpace(f.Query.Value()) == "" {
			b.WriteString(styleDetailDim.Render("type to search across all modules"))
		} else if len(f.Results) == 0 {
			b.WriteString(styleDetailDim.Render("no matches"))
		}
		for i, c := range f.Results {
			line := fmt.Sprintf("%s — %s (%s)", c.Name, c.Organization, c.Module.Label())
			if i == f.resultIdx {
				line = styleRowSelected.Render("▎" + line)
			} else {
				line = styleDayCell.Render(" " + line)
			}
			b.WriteString("\n" + line)
		}
	} else {
		b.WriteString(styleFieldLabel.Render(fmt.Sprintf("with %s (%s)",
			f.Target.Name, f.Target.Module.Label())))
		b.WriteString("\n\n")

		notesLabel := "Agenda (required)"
		if f.Past {
			notesLabel = "What happened (required)"
		}
		b.WriteString(styleFieldLabel.Render(notesLabel) + "\n" + f.Notes.View() + "\n")
		b.WriteString(styleFieldLabel.Render("Participants") + " " + f.Participants.View() + "\n")
		b.WriteString(styleFieldLabel.Render("Time") + " " + f.Time.View() + "\n")
		b.WriteString(styleFieldLabel.Render("Next follow-up") + " " + f.FollowUp.View() + "\n")
		b.WriteString("\n" + styleDetailDim.Render("tab: next field · ctrl+s: save · esc: cancel"))
	}

	if f.Submitting {
		b.WriteString("\n" + styleMessage.Render("saving…"))
	}
	if f.Err != "" {
		b.WriteString("\n" + styleError.Render(f.Err))
	}

	return styleOverlay.Render(lipgloss.NewStyle().Width(overlayWidth).Render(b.String()))
}

// overlayWidth keeps overlays readable regardless of terminal width.
const overlayWidth = 56
