package Ledger

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Hpoinseaux/Assmatapp/Models"
)

// Append adds one event to the activity log and persists the full table.
// The log is append-only; nothing is ever edited in place.
func (s *Service) Append(ctx context.Context, event Models.ActivityEvent) error {
	table, err := s.drive.GetTable(ctx, Models.ActivityTable)
	if err != nil {
		return fmt.Errorf("loading activity table: %w", err)
	}
	if len(table.Header) == 0 {
		table.Header = Models.ActivityHeader
	}
	table.Rows = append(table.Rows, event.Row())
	if err := s.drive.PutTable(ctx, Models.ActivityTable, table); err != nil {
		return fmt.Errorf("saving activity table: %w", err)
	}
	return nil
}

// History returns activity events sorted by timestamp descending, filtered to
// one child when given. Events with unreadable timestamps sort last but are
// kept.
func (s *Service) History(ctx context.Context, child string) ([]Models.ActivityEvent, error) {
	events, err := s.events(ctx)
	if err != nil {
		return nil, err
	}
	if child != "" {
		kept := events[:0]
		for _, e := range events {
			if e.Child == child {
				kept = append(kept, e)
			}
		}
		events = kept
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].At.After(events[j].At)
	})
	return events, nil
}

// DayActivities returns the routine (non-need) events of one child on one
// day, newest first.
func (s *Service) DayActivities(ctx context.Context, child string, day time.Time) ([]Models.ActivityEvent, error) {
	events, err := s.History(ctx, child)
	if err != nil {
		return nil, err
	}
	out := events[:0]
	for _, e := range events {
		if e.Kind == Models.ActivityNeedNote {
			continue
		}
		if !sameDay(e.At, day) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// NeedNotes returns the caregiver's need-note texts for one child and day, in
// insertion order.
func (s *Service) NeedNotes(ctx context.Context, child string, day time.Time) ([]string, error) {
	events, err := s.events(ctx)
	if err != nil {
		return nil, err
	}
	var notes []string
	for _, e := range events {
		if e.Child != child || e.Kind != Models.ActivityNeedNote {
			continue
		}
		if !sameDay(e.At, day) {
			continue
		}
		notes = append(notes, e.Note)
	}
	return notes, nil
}

func (s *Service) events(ctx context.Context) ([]Models.ActivityEvent, error) {
	table, err := s.drive.GetTable(ctx, Models.ActivityTable)
	if err != nil {
		return nil, fmt.Errorf("loading activity table: %w", err)
	}
	events := make([]Models.ActivityEvent, 0, len(table.Rows))
	for _, row := range table.Rows {
		if e, ok := Models.ActivityFromRow(row); ok {
			events = append(events, e)
		}
	}
	return events, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
