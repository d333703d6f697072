package event

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestClassifyBoundaries(t *testing.T) {
	t.Parallel()
	now := date(2025, time.January, 10)

	tests := []struct {
		name   string
		target time.Time
		want   Urgency
	}{
		{"due today is due-soon", date(2025, time.January, 10), UrgencyDueSoon},
		{"day 7 is still due-soon", date(2025, time.January, 17), UrgencyDueSoon},
		{"day 8 is future", date(2025, time.January, 18), UrgencyFuture},
		{"yesterday is overdue", date(2025, time.January, 9), UrgencyOverdue},
		{"far past is overdue", date(2024, time.June, 1), UrgencyOverdue},
		{"far future is future", date(2025, time.December, 25), UrgencyFuture},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Classify(tt.target, now); got != tt.want {
				t.Errorf("Classify(%s) = %s, want %s",
					tt.target.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestClassifyIgnoresTimeOfDay(t *testing.T) {
	t.Parallel()
	// 23:59 now vs 00:01 target on the same day must still be day 0.
	now := time.Date(2025, time.January, 10, 23, 59, 0, 0, time.UTC)
	target := time.Date(2025, time.January, 10, 0, 1, 0, 0, time.UTC)
	if got := Classify(target, now); got != UrgencyDueSoon {
		t.Errorf("same-day classification = %s, want due-soon", got)
	}
}

func TestDaysUntil(t *testing.T) {
	t.Parallel()
	now := date(2025, time.March, 15)
	tests := []struct {
		target time.Time
		want   int
	}{
		{date(2025, time.March, 15), 0},
		{date(2025, time.March, 16), 1},
		{date(2025, time.March, 14), -1},
		{date(2025, time.April, 15), 31},
	}
	for _, tt := range tests {
		if got := DaysUntil(tt.target, now); got != tt.want {
			t.Errorf("DaysUntil(%s) = %d, want %d",
				tt.target.Format("2006-01-02"), got, tt.want)
		}
	}
}

func TestDaysUntilAcrossLocations(t *testing.T) {
	t.Parallel()
	// Dates are compared by their own calendar day, so a target in a
	// different zone still counts whole days.
	est := time.FixedZone("EST", -5*3600)
	now := time.Date(2025, time.January, 10, 12, 0, 0, 0, time.UTC)
	target := time.Date(2025, time.January, 12, 1, 0, 0, 0, est)
	if got := DaysUntil(target, now); got != 2 {
		t.Errorf("DaysUntil = %d, want 2", got)
	}
}

func TestUrgencyString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		u    Urgency
		want string
	}{
		{UrgencyNone, "none"},
		{UrgencyOverdue, "overdue"},
		{UrgencyDueSoon, "due-soon"},
		{UrgencyFuture, "future"},
	}
	for _, tt := range tests {
		if got := tt.u.String(); got != tt.want {
			t.Errorf("Urgency(%d).String() = %q, want %q", tt.u, got, tt.want)
		}
	}
}
