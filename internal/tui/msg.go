package tui

import (
	"time"

	"github.com/pumicestone/caldesk/internal/gateway"
)

// MsgEventsLoaded carries one fetch-then-replace snapshot. The previous
// event set is discarded wholesale; there is no incremental merge across
// refetches.
type MsgEventsLoaded struct {
	Snapshot *gateway.Snapshot
}

// MsgLoadFailed is sent when the load itself could not run (for example a
// cancelled context). Per-module failures never produce this; they arrive
// as Snapshot warnings instead.
type MsgLoadFailed struct {
	Err error
}

// MsgRescheduleDone reports the outcome of an in-flight reschedule.
// Seq identifies the gesture that started it; results from dismissed
// flows are dropped.
type MsgRescheduleDone struct {
	Seq       int
	MeetingID string
	Err       error
}

// MsgCreateDone reports the outcome of a create-meeting submission.
type MsgCreateDone struct {
	Seq int
	Err error
}

// MsgNoteSaved reports the outcome of a meeting-note update.
type MsgNoteSaved struct {
	Seq       int
	MeetingID string
	Err       error
}

// MsgMeetingDeleted reports the outcome of a meeting deletion.
type MsgMeetingDeleted struct {
	Seq       int
	MeetingID string
	Err       error
}

// MsgTick drives the render clock: urgency buckets are functions of
// "now" and must be recomputed, never cached across renders.
type MsgTick struct {
	Time time.Time
}

// MsgExternalChange is sent when the database watcher sees another
// process write the store.
type MsgExternalChange struct{}
