package Reports

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Hpoinseaux/Assmatapp/Models"
)

func rec(child, date, arrival, departure, duration string) Models.AttendanceRecord {
	return Models.AttendanceRecord{
		Child: child, Date: date, Arrival: arrival, Departure: departure, Duration: duration,
	}
}

// dayFraction reads a duration cell's raw stored value (a fraction of a day).
func dayFraction(t *testing.T, f *excelize.File, sheet, cell string) float64 {
	t.Helper()
	v, err := f.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	got, err := strconv.ParseFloat(v, 64)
	require.NoError(t, err)
	return got
}

func TestFilename(t *testing.T) {
	require.Equal(t, "recap_2025-03.xlsx", Filename(2025, time.March))
	require.Equal(t, "recap_2024-12.xlsx", Filename(2024, time.December))
}

func TestGenerateNoData(t *testing.T) {
	records := []Models.AttendanceRecord{
		rec("Caly", "03/02/2025", "08:00", "17:00", "9:00:00"),
		rec("Caly", "03/03/2024", "08:00", "17:00", "9:00:00"),
	}
	_, err := Generate(records, time.March, 2025)
	require.ErrorIs(t, err, ErrNoDataForPeriod)
}

func TestGenerateMonthlySheets(t *testing.T) {
	records := []Models.AttendanceRecord{
		// Two raw rows share Caly's first day: the sheet groups them.
		rec("Caly", "03/03/2025", "08:00", "10:00", "2:00:00"),
		rec("Caly", "03/03/2025", "13:00", "16:30", "3:30:00"),
		rec("Caly", "04/03/2025", "09:00", "10:00", "1:00:00"),
		// Outside the period, must not appear.
		rec("Caly", "03/02/2025", "08:00", "17:00", "9:00:00"),
		rec("Nate", "05/03/2025", "08:30", "12:30", "4:00:00"),
	}

	f, err := Generate(records, time.March, 2025)
	require.NoError(t, err)

	require.ElementsMatch(t, []string{"Caly", "Nate"}, f.GetSheetList())

	v, err := f.GetCellValue("Caly", "A1")
	require.NoError(t, err)
	require.Equal(t, "Date", v)

	v, err = f.GetCellValue("Caly", "A2")
	require.NoError(t, err)
	require.Equal(t, "03/03/2025", v)

	// The grouped day shows the widest span.
	v, err = f.GetCellValue("Caly", "B2")
	require.NoError(t, err)
	require.Equal(t, "08:00", v)
	v, err = f.GetCellValue("Caly", "C2")
	require.NoError(t, err)
	require.Equal(t, "16:30", v)

	// Durations are stored as day fractions: 5h30 then 1h, summing to 6:30.
	require.InDelta(t, 5.5/24, dayFraction(t, f, "Caly", "D2"), 1e-9)

	v, err = f.GetCellValue("Caly", "A3")
	require.NoError(t, err)
	require.Equal(t, "04/03/2025", v)
	require.InDelta(t, 1.0/24, dayFraction(t, f, "Caly", "D3"), 1e-9)

	// Total row: label plus a live SUM formula over the duration column.
	v, err = f.GetCellValue("Caly", "C4")
	require.NoError(t, err)
	require.Equal(t, "Total", v)

	formula, err := f.GetCellFormula("Caly", "D4")
	require.NoError(t, err)
	require.Equal(t, "SUM(D2:D3)", formula)

	// Nate has a single row and its own total.
	v, err = f.GetCellValue("Nate", "A2")
	require.NoError(t, err)
	require.Equal(t, "05/03/2025", v)
	formula, err = f.GetCellFormula("Nate", "D3")
	require.NoError(t, err)
	require.Equal(t, "SUM(D2:D2)", formula)
}

func TestGenerateRowWithoutDuration(t *testing.T) {
	records := []Models.AttendanceRecord{
		rec("Caly", "03/03/2025", "08:00", "", ""),
		rec("Caly", "04/03/2025", "09:00", "10:00", "1:00:00"),
	}

	f, err := Generate(records, time.March, 2025)
	require.NoError(t, err)

	// The open day still gets a row, with an empty duration cell.
	v, err := f.GetCellValue("Caly", "A2")
	require.NoError(t, err)
	require.Equal(t, "03/03/2025", v)
	v, err = f.GetCellValue("Caly", "D2")
	require.NoError(t, err)
	require.Empty(t, v)

	// Arrival shows even while the day is open; departure stays empty.
	v, err = f.GetCellValue("Caly", "B2")
	require.NoError(t, err)
	require.Equal(t, "08:00", v)
	v, err = f.GetCellValue("Caly", "C2")
	require.NoError(t, err)
	require.Empty(t, v)
}

func TestWorkbookBytes(t *testing.T) {
	f, err := Generate([]Models.AttendanceRecord{
		rec("Caly", "03/03/2025", "08:00", "17:30", "9:30:00"),
	}, time.March, 2025)
	require.NoError(t, err)

	data, err := WorkbookBytes(f)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	// xlsx files are zip archives.
	require.Equal(t, []byte{'P', 'K'}, data[:2])
}
