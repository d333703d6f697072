package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pumicestone/caldesk/internal/event"
	"github.com/pumicestone/caldesk/internal/gateway"
	"github.com/pumicestone/caldesk/internal/search"
)

// flowState is the calendar's interaction state machine.
//
//	idle → creating                        (slot selected, form open)
//	idle → viewing → contact               (event selected, resolved)
//	idle → viewing → dragging → rescheduling → {idle | reverted}
type flowState int

const (
	stateIdle flowState = iota
	stateViewing
	stateContact
	stateCreating
	stateDragging
	stateRescheduling
	stateEditingNote
	stateConfirmDelete
)

// rescheduleRejection is shown when a non-meeting event is grabbed.
const rescheduleRejection = "only meetings can be rescheduled; edit the contact to change a follow-up"

// tickInterval drives urgency recomputation. Buckets are functions of
// "now" and may never be cached across renders.
const tickInterval = 30 * time.Second

// maxMessages bounds the info/error message ring.
const maxMessages = 3

// dragState tracks a grabbed meeting during the move gesture. The
// original timestamp is kept so a failed reschedule can put the event
// back where it was, leaving no partial state on screen.
type dragState struct {
	ev       event.CalendarEvent
	original time.Time
	target   time.Time
}

// AppModel is the root BubbleTea model: it owns the aggregated event set
// and the interaction state machine, and it is the only place gateway
// failures are converted into user-visible messages.
type AppModel struct {
	Gateway gateway.Gateway
	Keys    KeyMap

	// Now is the render clock, injectable for tests.
	Now func() time.Time

	UserID   string
	UserName string
	OnlyMine bool

	Width  int
	Height int

	state    flowState
	month    time.Time
	cursor   time.Time
	snapshot *gateway.Snapshot
	events   []event.CalendarEvent
	contacts []search.Contact
	warnings []string
	messages []string

	selected int
	route    Route
	contact  event.ContactRef

	drag *dragState
	form *CreateForm
	edit *EditForm

	deleteTarget *event.CalendarEvent
	deleteSeq    int

	// seq numbers each mutation gesture; pending maps a meeting ID to the
	// gesture that owns its in-flight mutation. The entry lives until the
	// result message arrives, so no second mutation can start for the same
	// meeting even after the user dismisses the flow. Dismissed gestures
	// are remembered by seq; their results release the pending entry but
	// produce no UI update.
	seq       int
	pending   map[string]int
	dismissed map[int]struct{}

	// watch delivers external-change notifications from the db watcher.
	watch <-chan struct{}

	loading bool
}

// NewAppModel creates the root model. The first load starts in Init.
func NewAppModel(gw gateway.Gateway, userID, userName string, onlyMine bool) AppModel {
	now := time.Now()
	return AppModel{
		Gateway:   gw,
		Keys:      DefaultKeyMap(),
		Now:       time.Now,
		UserID:    userID,
		UserName:  userName,
		OnlyMine:  onlyMine,
		month:     now,
		cursor:    now,
		pending:   map[string]int{},
		dismissed: map[int]struct{}{},
		loading:   true,
	}
}

// SetWatch wires the external-change channel before the program starts.
func (m *AppModel) SetWatch(ch <-chan struct{}) {
	m.watch = ch
}

// Init kicks off the initial load, the render clock, and the watcher.
func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadCmd(), tickCmd()}
	if m.watch != nil {
		cmds = append(cmds, m.watchCmd())
	}
	return tea.Batch(cmds...)
}

// --- Commands ---

func (m AppModel) loadCmd() tea.Cmd {
	gw := m.Gateway
	return func() tea.Msg {
		snap, err := gateway.LoadAll(context.Background(), gw)
		if err != nil {
			return MsgLoadFailed{Err: err}
		}
		return MsgEventsLoaded{Snapshot: snap}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return MsgTick{Time: t}
	})
}

func (m AppModel) watchCmd() tea.Cmd {
	ch := m.watch
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return MsgExternalChange{}
	}
}

func (m AppModel) rescheduleCmd(seq int, p gateway.RescheduleParams) tea.Cmd {
	gw := m.Gateway
	return func() tea.Msg {
		_, err := gw.RescheduleMeeting(context.Background(), p)
		return MsgRescheduleDone{Seq: seq, MeetingID: p.MeetingID, Err: err}
	}
}

func (m AppModel) createCmd(seq int, p gateway.CreateMeetingParams) tea.Cmd {
	gw := m.Gateway
	return func() tea.Msg {
		_, err := gw.CreateMeeting(context.Background(), p)
		return MsgCreateDone{Seq: seq, Err: err}
	}
}

func (m AppModel) updateNoteCmd(seq int, p gateway.UpdateNoteParams) tea.Cmd {
	gw := m.Gateway
	return func() tea.Msg {
		_, err := gw.UpdateMeetingNote(context.Background(), p)
		return MsgNoteSaved{Seq: seq, MeetingID: p.MeetingID, Err: err}
	}
}

func (m AppModel) deleteCmd(seq int, p gateway.DeleteNoteParams) tea.Cmd {
	gw := m.Gateway
	return func() tea.Msg {
		err := gw.DeleteMeetingNote(context.Background(), p)
		return MsgMeetingDeleted{Seq: seq, MeetingID: p.MeetingID, Err: err}
	}
}

// --- Update ---

// Update handles all messages.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case MsgEventsLoaded:
		m.snapshot = msg.Snapshot
		m.contacts = msg.Snapshot.Contacts
		m.loading = false
		m.recompute()
		return m, nil

	case MsgLoadFailed:
		m.loading = false
		m.addMessage("load failed: %v", msg.Err)
		return m, nil

	case MsgTick:
		m.recompute()
		return m, tickCmd()

	case MsgExternalChange:
		m.loading = true
		return m, tea.Batch(m.loadCmd(), m.watchCmd())

	case MsgRescheduleDone:
		return m.handleRescheduleDone(msg)

	case MsgCreateDone:
		return m.handleCreateDone(msg)

	case MsgNoteSaved:
		return m.handleNoteSaved(msg)

	case MsgMeetingDeleted:
		return m.handleMeetingDeleted(msg)
	}
	return m, nil
}

// recompute re-derives CalendarEvents from the current snapshot, filter,
// and clock. Fetch-then-replace: the previous slice is discarded.
func (m *AppModel) recompute() {
	if m.snapshot == nil {
		return
	}
	var filter event.Filter
	if m.OnlyMine {
		filter.OnlyMine = m.UserID
	}
	events, dropped := event.Aggregate(m.snapshot.PerModule, filter, m.Now())
	event.SortByTime(events)
	m.events = events

	// A recompute mid-reschedule must not snap the meeting back to its
	// snapshot slot; the optimistic placement holds until the result lands.
	if d := m.drag; d != nil {
		if _, inFlight := m.pending[d.ev.MeetingID]; inFlight {
			m.applyTimestamp(d.ev.MeetingID, d.target)
		}
	}

	m.warnings = m.snapshot.Warnings
	if dropped > 0 {
		m.warnings = append(m.warnings, fmt.Sprintf("%d invalid record(s) dropped", dropped))
	}
	m.clampSelection()
}

func (m *AppModel) clampSelection() {
	n := len(m.cursorEvents())
	if m.selected >= n {
		m.selected = 0
	}
	if n == 0 && (m.state == stateViewing || m.state == stateContact) {
		m.state = stateIdle
	}
}

// cursorEvents returns the cursor day's events in display order.
func (m AppModel) cursorEvents() []event.CalendarEvent {
	evs := event.OnDay(m.events, m.cursor)
	event.SortByTime(evs)
	return evs
}

func (m AppModel) selectedEvent() (event.CalendarEvent, bool) {
	evs := m.cursorEvents()
	if m.selected < len(evs) {
		return evs[m.selected], true
	}
	return event.CalendarEvent{}, false
}

func (m *AppModel) addMessage(format string, args ...any) {
	m.messages = append(m.messages, fmt.Sprintf(format, args...))
	if len(m.messages) > maxMessages {
		m.messages = m.messages[len(m.messages)-maxMessages:]
	}
}

func (m *AppModel) nextSeq() int {
	m.seq++
	return m.seq
}

// --- Key handling ---

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.state {
	case stateIdle:
		return m.handleIdleKey(msg)
	case stateViewing:
		return m.handleViewingKey(msg)
	case stateContact:
		if msg.String() == "esc" {
			m.state = stateViewing
		}
		return m, nil
	case stateCreating:
		return m.handleCreatingKey(msg)
	case stateDragging:
		return m.handleDraggingKey(msg)
	case stateRescheduling:
		if msg.String() == "esc" {
			m.dismissReschedule()
		}
		return m, nil
	case stateEditingNote:
		return m.handleEditingKey(msg)
	case stateConfirmDelete:
		return m.handleConfirmDeleteKey(msg)
	}
	return m, nil
}

func (m AppModel) handleIdleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.Keys
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.Left):
		m.moveCursor(0, -1)
	case key.Matches(msg, k.Right):
		m.moveCursor(0, 1)
	case key.Matches(msg, k.Up):
		m.moveCursor(0, -7)
	case key.Matches(msg, k.Down):
		m.moveCursor(0, 7)
	case key.Matches(msg, k.PrevMonth):
		m.moveCursor(-1, 0)
	case key.Matches(msg, k.NextMonth):
		m.moveCursor(1, 0)
	case key.Matches(msg, k.Today):
		m.cursor = m.Now()
		m.month = m.cursor
	case key.Matches(msg, k.Enter), key.Matches(msg, k.NextEvent):
		if len(m.cursorEvents()) > 0 {
			m.state = stateViewing
			m.selected = 0
		}
	case key.Matches(msg, k.New):
		return m.openCreateForm()
	case key.Matches(msg, k.OnlyMine):
		m.OnlyMine = !m.OnlyMine
		m.recompute()
	case key.Matches(msg, k.Refresh):
		m.loading = true
		return m, m.loadCmd()
	}
	return m, nil
}

func (m *AppModel) moveCursor(months, days int) {
	m.cursor = m.cursor.AddDate(0, months, days)
	m.month = m.cursor
	m.selected = 0
}

// openCreateForm captures the cursor day as the chosen slot and opens the
// creation flow. A day strictly before today flips the form into
// record-of-what-happened framing.
func (m AppModel) openCreateForm() (tea.Model, tea.Cmd) {
	now := m.Now()
	past := event.DaysUntil(m.cursor, now) < 0
	m.form = NewCreateForm(m.nextSeq(), m.cursor, past, m.contacts, m.UserID)
	m.state = stateCreating
	return m, nil
}

func (m AppModel) handleViewingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.Keys
	evs := m.cursorEvents()

	switch {
	case key.Matches(msg, k.Back):
		m.state = stateIdle
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.Down), key.Matches(msg, k.NextEvent):
		if len(evs) > 0 {
			m.selected = (m.selected + 1) % len(evs)
		}
	case key.Matches(msg, k.Up):
		if len(evs) > 0 {
			m.selected = (m.selected + len(evs) - 1) % len(evs)
		}
	case key.Matches(msg, k.Enter):
		return m.resolveSelection()
	case key.Matches(msg, k.Move):
		return m.grabSelection()
	case key.Matches(msg, k.Edit):
		return m.editSelection()
	case key.Matches(msg, k.Delete):
		return m.deleteSelection()
	case key.Matches(msg, k.New):
		return m.openCreateForm()
	}
	return m, nil
}

// resolveSelection is the event-click contract: reminders open the
// contact, future meetings open the editor, past meetings open the
// contact's meeting history.
func (m AppModel) resolveSelection() (tea.Model, tea.Cmd) {
	ev, ok := m.selectedEvent()
	if !ok {
		return m, nil
	}
	switch Resolve(ev) {
	case RouteMeetingEdit:
		return m.editSelection()
	case RouteMeetingHistory:
		m.route = RouteMeetingHistory
		m.contact = ev.Contact
		m.state = stateContact
	default:
		m.route = RouteContactDetail
		m.contact = ev.Contact
		m.state = stateContact
	}
	return m, nil
}

// grabSelection starts the move gesture. Only meetings are draggable;
// grabbing a reminder is rejected with no gateway call.
func (m AppModel) grabSelection() (tea.Model, tea.Cmd) {
	ev, ok := m.selectedEvent()
	if !ok {
		return m, nil
	}
	if ev.Kind != event.KindMeeting {
		m.addMessage("%s", rescheduleRejection)
		return m, nil
	}
	if _, busy := m.pending[ev.MeetingID]; busy {
		m.addMessage("a change for this meeting is already in flight")
		return m, nil
	}
	m.drag = &dragState{ev: ev, original: ev.Timestamp, target: ev.Timestamp}
	m.state = stateDragging
	return m, nil
}

func (m AppModel) editSelection() (tea.Model, tea.Cmd) {
	ev, ok := m.selectedEvent()
	if !ok {
		return m, nil
	}
	if ev.Kind != event.KindMeeting || !ev.FutureMeeting {
		m.addMessage("completed meetings are edited from the contact's history")
		return m, nil
	}
	if _, busy := m.pending[ev.MeetingID]; busy {
		m.addMessage("a change for this meeting is already in flight")
		return m, nil
	}
	m.edit = NewEditForm(m.nextSeq(), ev)
	m.state = stateEditingNote
	return m, nil
}

func (m AppModel) deleteSelection() (tea.Model, tea.Cmd) {
	ev, ok := m.selectedEvent()
	if !ok {
		return m, nil
	}
	if ev.Kind != event.KindMeeting {
		m.addMessage("reminders cannot be deleted from the calendar")
		return m, nil
	}
	if !ev.FutureMeeting {
		m.addMessage("completed meetings are part of the contact's history")
		return m, nil
	}
	if _, busy := m.pending[ev.MeetingID]; busy {
		m.addMessage("a change for this meeting is already in flight")
		return m, nil
	}
	m.deleteTarget = &ev
	m.state = stateConfirmDelete
	return m, nil
}

func (m AppModel) handleCreatingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		// Cancel. Any in-flight submission keeps running but its result
		// no longer matches a live form and will be dropped.
		m.form = nil
		m.state = stateIdle
		return m, nil
	}

	params, cmd := m.form.Update(msg)
	if params == nil {
		return m, cmd
	}
	m.form.Submitting = true
	return m, m.createCmd(m.form.Seq, *params)
}

func (m AppModel) handleDraggingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.Keys
	switch {
	case key.Matches(msg, k.Back):
		m.drag = nil
		m.state = stateViewing
	case key.Matches(msg, k.Left):
		m.drag.target = m.drag.target.AddDate(0, 0, -1)
	case key.Matches(msg, k.Right):
		m.drag.target = m.drag.target.AddDate(0, 0, 1)
	case key.Matches(msg, k.Up):
		m.drag.target = m.drag.target.AddDate(0, 0, -7)
	case key.Matches(msg, k.Down):
		m.drag.target = m.drag.target.AddDate(0, 0, 7)
	case key.Matches(msg, k.Enter):
		return m.dropSelection()
	}
	return m, nil
}

// dropSelection commits the move gesture: the event is optimistically
// shown at the target slot and the reschedule call goes out. A same-slot
// drop is a no-op cancel.
func (m AppModel) dropSelection() (tea.Model, tea.Cmd) {
	d := m.drag
	if d == nil {
		m.state = stateIdle
		return m, nil
	}
	if sameDay(d.target, d.original) {
		m.drag = nil
		m.state = stateViewing
		return m, nil
	}

	m.applyTimestamp(d.ev.MeetingID, d.target)

	seq := m.nextSeq()
	m.pending[d.ev.MeetingID] = seq
	m.state = stateRescheduling
	m.cursor = d.target
	m.month = d.target
	m.selected = 0

	return m, m.rescheduleCmd(seq, gateway.RescheduleParams{
		ContactID:        d.ev.Contact.ID,
		MeetingID:        d.ev.MeetingID,
		OrganizationType: d.ev.Module,
		NewTimestamp:     d.target,
	})
}

// applyTimestamp moves a meeting in the local event set (optimistic
// placement, and the revert path on failure).
func (m *AppModel) applyTimestamp(meetingID string, ts time.Time) {
	for i := range m.events {
		if m.events[i].MeetingID == meetingID {
			m.events[i].Timestamp = ts
		}
	}
	event.SortByTime(m.events)
}

// dismissReschedule abandons a reschedule that is still in flight. The
// call completes server-side but its result is ignored; the optimistic
// placement is undone so the screen shows only confirmed state. The
// pending entry stays until the result arrives, keeping the meeting
// locked against a second mutation racing the dismissed one.
func (m *AppModel) dismissReschedule() {
	if d := m.drag; d != nil {
		m.applyTimestamp(d.ev.MeetingID, d.original)
		if seq, ok := m.pending[d.ev.MeetingID]; ok {
			m.dismissed[seq] = struct{}{}
		}
		m.cursor = d.original
		m.month = d.original
	}
	m.drag = nil
	m.state = stateIdle
	m.addMessage("reschedule dismissed; refresh to see the outcome")
}

// consumeDismissed reports whether seq belongs to a dismissed gesture,
// forgetting it on the way out.
func (m *AppModel) consumeDismissed(seq int) bool {
	if _, ok := m.dismissed[seq]; !ok {
		return false
	}
	delete(m.dismissed, seq)
	return true
}

func (m AppModel) handleEditingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		// An in-flight save keeps its pending entry; the meeting stays
		// locked until the result arrives and is then discarded.
		if f := m.edit; f != nil && f.Submitting {
			m.dismissed[f.Seq] = struct{}{}
		}
		m.edit = nil
		m.state = stateViewing
		return m, nil
	}
	params, cmd := m.edit.Update(msg)
	if params == nil {
		return m, cmd
	}
	m.edit.Submitting = true
	m.pending[params.MeetingID] = m.edit.Seq
	return m, m.updateNoteCmd(m.edit.Seq, *params)
}

func (m AppModel) handleConfirmDeleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		ev := m.deleteTarget
		if ev == nil {
			m.state = stateIdle
			return m, nil
		}
		m.deleteSeq = m.nextSeq()
		m.pending[ev.MeetingID] = m.deleteSeq
		return m, m.deleteCmd(m.deleteSeq, gateway.DeleteNoteParams{
			ContactID: ev.Contact.ID,
			MeetingID: ev.MeetingID,
		})
	case "n", "esc":
		if ev := m.deleteTarget; ev != nil {
			if seq, ok := m.pending[ev.MeetingID]; ok && seq == m.deleteSeq {
				m.dismissed[seq] = struct{}{}
			}
		}
		m.deleteTarget = nil
		m.state = stateViewing
	}
	return m, nil
}

// --- Mutation results ---

func (m AppModel) handleRescheduleDone(msg MsgRescheduleDone) (tea.Model, tea.Cmd) {
	seq, live := m.pending[msg.MeetingID]
	if !live || seq != msg.Seq {
		return m, nil
	}
	delete(m.pending, msg.MeetingID)
	if m.consumeDismissed(msg.Seq) {
		// Dismissed flow; the entry is released but no UI update may
		// target it.
		return m, nil
	}

	d := m.drag
	m.drag = nil
	if msg.Err != nil {
		// Reverted: the event returns to its original slot.
		if d != nil {
			m.applyTimestamp(msg.MeetingID, d.original)
			m.cursor = d.original
			m.month = d.original
		}
		m.state = stateIdle
		m.addMessage("reschedule failed: %v", msg.Err)
		return m, nil
	}

	// Success: full refetch, not an incremental patch — derived state
	// (for example recalculated follow-ups) may have moved too.
	m.state = stateIdle
	m.loading = true
	m.addMessage("meeting rescheduled")
	return m, m.loadCmd()
}

func (m AppModel) handleCreateDone(msg MsgCreateDone) (tea.Model, tea.Cmd) {
	if m.form == nil || m.form.Seq != msg.Seq {
		return m, nil
	}
	if msg.Err != nil {
		m.form.Submitting = false
		m.form.Err = fmt.Sprintf("save failed: %v", msg.Err)
		return m, nil
	}
	m.form = nil
	m.state = stateIdle
	m.loading = true
	m.addMessage("meeting saved")
	return m, m.loadCmd()
}

func (m AppModel) handleNoteSaved(msg MsgNoteSaved) (tea.Model, tea.Cmd) {
	seq, live := m.pending[msg.MeetingID]
	if !live || seq != msg.Seq {
		return m, nil
	}
	delete(m.pending, msg.MeetingID)
	if m.consumeDismissed(msg.Seq) {
		return m, nil
	}
	if m.edit == nil || m.edit.Seq != msg.Seq {
		return m, nil
	}
	if msg.Err != nil {
		m.edit.Submitting = false
		m.edit.Err = fmt.Sprintf("save failed: %v", msg.Err)
		return m, nil
	}
	m.edit = nil
	m.state = stateViewing
	m.loading = true
	m.addMessage("meeting updated")
	return m, m.loadCmd()
}

func (m AppModel) handleMeetingDeleted(msg MsgMeetingDeleted) (tea.Model, tea.Cmd) {
	seq, live := m.pending[msg.MeetingID]
	if !live || seq != msg.Seq {
		return m, nil
	}
	delete(m.pending, msg.MeetingID)
	if m.consumeDismissed(msg.Seq) {
		return m, nil
	}
	m.deleteTarget = nil

	if msg.Err != nil {
		m.state = stateViewing
		m.addMessage("delete failed: %v", msg.Err)
		return m, nil
	}
	m.state = stateIdle
	m.loading = true
	m.addMessage("meeting deleted")
	return m, m.loadCmd()
}

// --- View ---

// View renders status bar, month grid, the contextual panel or overlay,
// recent messages, and the key help footer.
func (m AppModel) View() string {
	var b strings.Builder

	b.WriteString(StatusBar{
		EventCount: len(m.events),
		OnlyMine:   m.OnlyMine,
		UserName:   m.UserName,
		Warnings:   len(m.warnings),
		Loading:    m.loading,
		Width:      m.Width,
	}.View())
	b.WriteString("\n\n")

	mv := MonthView{
		Month:  m.month,
		Cursor: m.cursor,
		Today:  m.Now(),
		Events: m.events,
	}
	if m.state == stateDragging && m.drag != nil {
		target := m.drag.target
		mv.DragTarget = &target
		mv.Month = target
	}
	b.WriteString(mv.View())
	b.WriteString("\n")

	switch m.state {
	case stateCreating:
		b.WriteString(m.form.View())
	case stateEditingNote:
		b.WriteString(m.edit.View())
	case stateConfirmDelete:
		b.WriteString(m.confirmDeleteView())
	case stateContact:
		b.WriteString(contactCard(m.contact, m.events, m.route))
	case stateDragging:
		b.WriteString(m.draggingView())
	default:
		b.WriteString(agendaView(m.cursor, m.events, m.selected, m.state == stateViewing))
	}
	b.WriteString("\n")

	for _, w := range m.warnings {
		b.WriteString(styleStatusWarn.Render("⚠ "+w) + "\n")
	}
	for _, msg := range m.messages {
		b.WriteString(styleMessage.Render(msg) + "\n")
	}

	b.WriteString(footerView(m.state, m.Width))
	return b.String()
}

func (m AppModel) draggingView() string {
	d := m.drag
	if d == nil {
		return ""
	}
	return styleDetailBorder.Render(fmt.Sprintf("moving %s\n%s → %s",
		StyleFor(d.ev).Tooltip,
		d.original.Format("Mon Jan 2"),
		styleDragTarget.Render(d.target.Format("Mon Jan 2"))))
}

func (m AppModel) confirmDeleteView() string {
	ev := m.deleteTarget
	if ev == nil {
		return ""
	}
	return styleOverlayDanger.Render(fmt.Sprintf(
		"Delete meeting with %s on %s?\n\ny: delete · n: keep",
		ev.Contact.Name, ev.Timestamp.Format("Jan 2 15:04")))
}
