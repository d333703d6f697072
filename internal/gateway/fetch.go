package gateway

import (
	"context"
	"fmt"
	"sync"

	"github.com/pumicestone/caldesk/internal/event"
	"github.com/pumicestone/caldesk/internal/module"
	"github.com/pumicestone/caldesk/internal/search"
)

// Snapshot is one fetch-then-replace load of everything the calendar
// renders. PerModule is indexed in module.All() order; a module whose
// fetch failed contributes an empty slice and a warning, never an error.
type Snapshot struct {
	PerModule [][]event.RawEvent
	Contacts  []search.Contact
	Dropped   int      // records skipped during normalization
	Warnings  []string // partial-fetch failures and drop summaries
}

// LoadAll fetches reminders and meeting history for all four modules
// concurrently, normalizes each module's records, and fetches the contact
// list for search. The aggregate never starts before all four module
// fetches settle, and a failure in one module degrades to zero events for
// that module rather than blanking the calendar. The only returned error
// is context cancellation.
func LoadAll(ctx context.Context, g Gateway) (*Snapshot, error) {
	tags := module.All()

	type moduleResult struct {
		events  []event.RawEvent
		dropped int
		warning string
	}
	results := make([]moduleResult, len(tags))

	var wg sync.WaitGroup
	for i, tag := range tags {
		wg.Add(1)
		go func(i int, tag module.Tag) {
			defer wg.Done()
			reminders, err := g.Reminders(ctx, tag)
			if err != nil {
				results[i].warning = fmt.Sprintf("%s: reminders unavailable: %v", tag.Label(), err)
				return
			}
			history, err := g.MeetingHistory(ctx, tag)
			if err != nil {
				results[i].warning = fmt.Sprintf("%s: meeting history unavailable: %v", tag.Label(), err)
				return
			}
			results[i].events, results[i].dropped = event.Normalize(tag, reminders, history)
		}(i, tag)
	}

	contacts, contactsErr := g.Contacts(ctx)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snap := &Snapshot{PerModule: make([][]event.RawEvent, len(tags))}
	for i, r := range results {
		snap.PerModule[i] = r.events
		snap.Dropped += r.dropped
		if r.warning != "" {
			snap.Warnings = append(snap.Warnings, r.warning)
		}
	}
	if snap.Dropped > 0 {
		snap.Warnings = append(snap.Warnings,
			fmt.Sprintf("%d record(s) skipped: missing date, contact, or meeting ID", snap.Dropped))
	}

	if contactsErr != nil {
		snap.Warnings = append(snap.Warnings, fmt.Sprintf("contact search unavailable: %v", contactsErr))
	} else {
		snap.Contacts = contacts
	}

	return snap, nil
}
