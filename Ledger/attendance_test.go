package Ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Hpoinseaux/Assmatapp/Models"
	"github.com/Hpoinseaux/Assmatapp/Storage"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := Models.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestRecordArrivalReplacesExistingDay(t *testing.T) {
	drive := Storage.NewMemDrive()
	svc := NewService(drive, true)
	ctx := context.Background()
	monday := day(t, "03/03/2025")

	require.NoError(t, svc.RecordArrival(ctx, "Caly", monday, clock(t, "08:00")))
	_, err := svc.RecordDeparture(ctx, "Caly", monday, clock(t, "12:00"))
	require.NoError(t, err)

	// Re-arriving overwrites: one record, second arrival wins, departure and
	// duration cleared.
	require.NoError(t, svc.RecordArrival(ctx, "Caly", monday, clock(t, "13:30")))

	records, err := svc.Records(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "Caly", records[0].Child)
	require.Equal(t, "13:30", records[0].Arrival)
	require.Empty(t, records[0].Departure)
	require.Empty(t, records[0].Duration)
}

func TestRecordArrivalKeepsOtherChildrenAndDays(t *testing.T) {
	drive := Storage.NewMemDrive()
	svc := NewService(drive, true)
	ctx := context.Background()

	require.NoError(t, svc.RecordArrival(ctx, "Caly", day(t, "03/03/2025"), clock(t, "08:00")))
	require.NoError(t, svc.RecordArrival(ctx, "Nate", day(t, "03/03/2025"), clock(t, "08:30")))
	require.NoError(t, svc.RecordArrival(ctx, "Caly", day(t, "04/03/2025"), clock(t, "09:00")))

	records, err := svc.Records(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
}

func TestRecordDepartureComputesDuration(t *testing.T) {
	drive := Storage.NewMemDrive()
	svc := NewService(drive, true)
	ctx := context.Background()
	monday := day(t, "03/03/2025")

	require.NoError(t, svc.RecordArrival(ctx, "Caly", monday, clock(t, "08:00")))
	record, err := svc.RecordDeparture(ctx, "Caly", monday, clock(t, "17:30"))
	require.NoError(t, err)
	require.Equal(t, "17:30", record.Departure)
	require.Equal(t, "09:30:00", record.Duration)

	// The departure is persisted, not just returned.
	records, err := svc.Records(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "09:30:00", records[0].Duration)
}

func TestRecordDepartureWithoutArrival(t *testing.T) {
	drive := Storage.NewMemDrive()
	svc := NewService(drive, true)
	ctx := context.Background()

	require.NoError(t, svc.RecordArrival(ctx, "Nate", day(t, "03/03/2025"), clock(t, "08:00")))

	_, err := svc.RecordDeparture(ctx, "Caly", day(t, "03/03/2025"), clock(t, "17:00"))
	require.ErrorIs(t, err, ErrNoArrivalFound)

	// Ledger unchanged.
	records, err := svc.Records(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "Nate", records[0].Child)
	require.Empty(t, records[0].Departure)
}

func TestRecordDepartureKeepsRowOnBadArrival(t *testing.T) {
	drive := Storage.NewMemDrive()
	ctx := context.Background()

	// Seed a corrupt arrival cell directly in the table.
	require.NoError(t, drive.PutTable(ctx, Models.AttendanceTable, Storage.Table{
		Header: Models.AttendanceHeader,
		Rows:   [][]string{{"Caly", "03/03/2025", "8h00", "", ""}},
	}))

	svc := NewService(drive, true)
	record, err := svc.RecordDeparture(ctx, "Caly", day(t, "03/03/2025"), clock(t, "17:00"))
	require.ErrorIs(t, err, Models.ErrInvalidTimeFormat)

	// Departure stored anyway, duration left unset.
	require.Equal(t, "17:00", record.Departure)
	require.Empty(t, record.Duration)

	records, err := svc.Records(ctx)
	require.NoError(t, err)
	require.Equal(t, "17:00", records[0].Departure)
	require.Empty(t, records[0].Duration)
}

func TestRecordDepartureOvernight(t *testing.T) {
	drive := Storage.NewMemDrive()
	svc := NewService(drive, true)
	ctx := context.Background()
	monday := day(t, "03/03/2025")

	require.NoError(t, svc.RecordArrival(ctx, "Caly", monday, clock(t, "22:00")))
	record, err := svc.RecordDeparture(ctx, "Caly", monday, clock(t, "06:00"))
	require.NoError(t, err)
	require.Equal(t, "08:00:00", record.Duration)
}
