package event

import "time"

// Urgency buckets a reminder's due date relative to "now".
type Urgency int

const (
	// UrgencyNone applies to meetings, which have no due-date semantics.
	UrgencyNone Urgency = iota
	UrgencyOverdue
	UrgencyDueSoon
	UrgencyFuture
)

// String returns the lowercase bucket name.
func (u Urgency) String() string {
	switch u {
	case UrgencyOverdue:
		return "overdue"
	case UrgencyDueSoon:
		return "due-soon"
	case UrgencyFuture:
		return "future"
	default:
		return "none"
	}
}

// dueSoonDays is the inclusive upper bound of the due-soon window.
// Day 0 (due today) through day 7 are both due-soon; day 8 is future.
// This is a product rule, not an implementation convenience.
const dueSoonDays = 7

// Classify buckets target against now by whole calendar days.
func Classify(target, now time.Time) Urgency {
	days := DaysUntil(target, now)
	switch {
	case days < 0:
		return UrgencyOverdue
	case days <= dueSoonDays:
		return UrgencyDueSoon
	default:
		return UrgencyFuture
	}
}

// DaysUntil returns the calendar-day delta from now's date to target's
// date: negative for past dates, zero for today. Both dates are
// re-anchored to UTC midnight so the arithmetic stays exact across DST
// transitions.
func DaysUntil(target, now time.Time) int {
	return int(midnightUTC(target).Sub(midnightUTC(now)) / (24 * time.Hour))
}

func midnightUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
