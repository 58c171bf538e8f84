package Ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Hpoinseaux/Assmatapp/Models"
	"github.com/Hpoinseaux/Assmatapp/Storage"
)

func stamp(t *testing.T, s string) time.Time {
	t.Helper()
	at, ok := Models.ParseStamp(s)
	require.True(t, ok)
	return at
}

func TestHistorySortsDescending(t *testing.T) {
	drive := Storage.NewMemDrive()
	svc := NewService(drive, true)
	ctx := context.Background()

	require.NoError(t, svc.Append(ctx, Models.NewActivityEvent("Caly", Models.ActivityMeal, stamp(t, "03/03/2025 12:00"), "")))
	require.NoError(t, svc.Append(ctx, Models.NewActivityEvent("Caly", Models.ActivityNapStart, stamp(t, "03/03/2025 13:00"), "")))
	require.NoError(t, svc.Append(ctx, Models.NewActivityEvent("Nate", Models.ActivitySnack, stamp(t, "03/03/2025 16:00"), "")))
	require.NoError(t, svc.Append(ctx, Models.NewActivityEvent("Caly", Models.ActivityNapEnd, stamp(t, "03/03/2025 15:00"), "")))

	events, err := svc.History(ctx, "Caly")
	require.NoError(t, err)
	require.Len(t, events, 3)
	require.Equal(t, Models.ActivityNapEnd, events[0].Kind)
	require.Equal(t, Models.ActivityNapStart, events[1].Kind)
	require.Equal(t, Models.ActivityMeal, events[2].Kind)

	all, err := svc.History(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 4)
}

func TestHistoryKeepsRowsWithBadTimestamps(t *testing.T) {
	drive := Storage.NewMemDrive()
	ctx := context.Background()

	require.NoError(t, drive.PutTable(ctx, Models.ActivityTable, Storage.Table{
		Header: Models.ActivityHeader,
		Rows: [][]string{
			{"Caly", "Repas", "03/03/2025 12:00", ""},
			{"Caly", "Change", "corrupted", "note kept"},
		},
	}))

	svc := NewService(drive, true)
	events, err := svc.History(ctx, "Caly")
	require.NoError(t, err)
	require.Len(t, events, 2)

	// The corrupt row sorts last with a zero sentinel.
	require.Equal(t, Models.ActivityDiaperChange, events[1].Kind)
	require.True(t, events[1].At.IsZero())
	require.Equal(t, "note kept", events[1].Note)
}

func TestDayActivitiesExcludesNeedNotes(t *testing.T) {
	drive := Storage.NewMemDrive()
	svc := NewService(drive, true)
	ctx := context.Background()

	require.NoError(t, svc.Append(ctx, Models.NewActivityEvent("Caly", Models.ActivityMeal, stamp(t, "03/03/2025 12:00"), "")))
	require.NoError(t, svc.Append(ctx, Models.NewActivityEvent("Caly", Models.ActivityNeedNote, stamp(t, "03/03/2025 16:00"), "couches")))
	require.NoError(t, svc.Append(ctx, Models.NewActivityEvent("Caly", Models.ActivitySnack, stamp(t, "04/03/2025 10:00"), "")))

	activities, err := svc.DayActivities(ctx, "Caly", day(t, "03/03/2025"))
	require.NoError(t, err)
	require.Len(t, activities, 1)
	require.Equal(t, Models.ActivityMeal, activities[0].Kind)
}

func TestNeedNotesInsertionOrder(t *testing.T) {
	drive := Storage.NewMemDrive()
	svc := NewService(drive, true)
	ctx := context.Background()

	require.NoError(t, svc.Append(ctx, Models.NewActivityEvent("Caly", Models.ActivityNeedNote, stamp(t, "03/03/2025 16:00"), "couches")))
	require.NoError(t, svc.Append(ctx, Models.NewActivityEvent("Caly", Models.ActivityNeedNote, stamp(t, "03/03/2025 09:00"), "lait")))
	require.NoError(t, svc.Append(ctx, Models.NewActivityEvent("Nate", Models.ActivityNeedNote, stamp(t, "03/03/2025 10:00"), "autre enfant")))

	notes, err := svc.NeedNotes(ctx, "Caly", day(t, "03/03/2025"))
	require.NoError(t, err)
	// Insertion order, not timestamp order.
	require.Equal(t, []string{"couches", "lait"}, notes)
}
