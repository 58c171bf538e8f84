package Ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Hpoinseaux/Assmatapp/Models"
	"github.com/Hpoinseaux/Assmatapp/Storage"
)

// ErrNoArrivalFound is returned when a departure is recorded for a
// (child, date) pair with no open arrival. Nothing is written.
var ErrNoArrivalFound = errors.New("no arrival recorded for this child today")

// Service wraps the two drive tables behind typed operations. Each mutation
// re-reads the table, applies the change and writes the whole table back
// before returning.
type Service struct {
	drive          Storage.Drive
	allowOvernight bool
}

func NewService(drive Storage.Drive, allowOvernight bool) *Service {
	return &Service{drive: drive, allowOvernight: allowOvernight}
}

// RecordArrival opens the day's attendance record for a child. Any existing
// record for the same (child, date) is replaced, dropping its departure and
// duration: re-arriving overwrites, it never stacks duplicates.
func (s *Service) RecordArrival(ctx context.Context, child string, day time.Time, clock Models.ClockTime) error {
	records, err := s.Records(ctx)
	if err != nil {
		return err
	}

	date := day.Format(Models.DateLayout)
	kept := records[:0]
	for _, r := range records {
		if r.Child == child && r.Date == date {
			continue
		}
		kept = append(kept, r)
	}
	kept = append(kept, Models.AttendanceRecord{
		Child:   child,
		Date:    date,
		Arrival: clock.String(),
	})

	return s.saveAttendance(ctx, kept)
}

// RecordDeparture closes the day's record and computes its duration. A
// failed duration computation still stores the departure time — the ledger
// stays usable, only the duration cell is left unset and the error surfaced.
func (s *Service) RecordDeparture(ctx context.Context, child string, day time.Time, clock Models.ClockTime) (Models.AttendanceRecord, error) {
	records, err := s.Records(ctx)
	if err != nil {
		return Models.AttendanceRecord{}, err
	}

	date := day.Format(Models.DateLayout)
	idx := -1
	for i, r := range records {
		if r.Child == child && r.Date == date {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Models.AttendanceRecord{}, ErrNoArrivalFound
	}

	records[idx].Departure = clock.String()

	var durErr error
	arrival, err := Models.ParseClock(records[idx].Arrival)
	if err != nil {
		durErr = err
	} else if d, err := ComputeDuration(arrival, clock, s.allowOvernight); err != nil {
		durErr = err
	} else {
		records[idx].Duration = Models.FormatDuration(d)
	}

	if err := s.saveAttendance(ctx, records); err != nil {
		return Models.AttendanceRecord{}, err
	}
	return records[idx], durErr
}

// Records loads the full attendance ledger in stored order. Unusable rows are
// dropped, not fatal.
func (s *Service) Records(ctx context.Context) ([]Models.AttendanceRecord, error) {
	table, err := s.drive.GetTable(ctx, Models.AttendanceTable)
	if err != nil {
		return nil, fmt.Errorf("loading attendance table: %w", err)
	}
	records := make([]Models.AttendanceRecord, 0, len(table.Rows))
	for _, row := range table.Rows {
		if r, ok := Models.AttendanceFromRow(row); ok {
			records = append(records, r)
		}
	}
	return records, nil
}

// RecordsFor filters the ledger to one child, stored order preserved.
func (s *Service) RecordsFor(ctx context.Context, child string) ([]Models.AttendanceRecord, error) {
	records, err := s.Records(ctx)
	if err != nil {
		return nil, err
	}
	out := records[:0]
	for _, r := range records {
		if r.Child == child {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Service) saveAttendance(ctx context.Context, records []Models.AttendanceRecord) error {
	table := Storage.Table{Header: Models.AttendanceHeader}
	for _, r := range records {
		table.Rows = append(table.Rows, r.Row())
	}
	if err := s.drive.PutTable(ctx, Models.AttendanceTable, table); err != nil {
		return fmt.Errorf("saving attendance table: %w", err)
	}
	return nil
}
