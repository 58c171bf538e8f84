// Package Reports builds the monthly attendance workbook: one sheet per
// child, one row per attended day, durations shown as elapsed time with a
// live total formula so the file stays consistent if edited afterwards.
package Reports

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Hpoinseaux/Assmatapp/Models"
)

// ErrNoDataForPeriod is returned when the ledger has no record in the
// requested month. Informational: the caller shows a message, no file is
// produced.
var ErrNoDataForPeriod = errors.New("no attendance data for the requested period")

var sheetHeader = []string{"Date", "Arrival", "Departure", "Duration"}

// Filename returns the deterministic workbook name for a period,
// e.g. recap_2025-03.xlsx.
func Filename(year int, month time.Month) string {
	return fmt.Sprintf("recap_%d-%02d.xlsx", year, int(month))
}

type dayRow struct {
	day       time.Time
	arrival   Models.ClockTime
	hasArr    bool
	departure Models.ClockTime
	hasDep    bool
	total     time.Duration
	hasTotal  bool
}

// Generate builds the workbook for one (month, year) over the full ledger.
// Records whose date cell does not parse are skipped; records without a
// readable duration appear as rows but are excluded from the sums.
func Generate(records []Models.AttendanceRecord, month time.Month, year int) (*excelize.File, error) {
	perChild := make(map[string]map[string]*dayRow)
	for _, r := range records {
		day, err := r.Day()
		if err != nil {
			continue
		}
		if day.Month() != month || day.Year() != year {
			continue
		}

		days := perChild[r.Child]
		if days == nil {
			days = make(map[string]*dayRow)
			perChild[r.Child] = days
		}
		row := days[r.Date]
		if row == nil {
			row = &dayRow{day: day}
			days[r.Date] = row
		}

		// Several raw rows can share a day in old data; display the widest
		// span and sum the durations.
		if arr, err := Models.ParseClock(r.Arrival); err == nil {
			if !row.hasArr || arr.Minutes() < row.arrival.Minutes() {
				row.arrival = arr
				row.hasArr = true
			}
		}
		if dep, err := Models.ParseClock(r.Departure); err == nil {
			if !row.hasDep || dep.Minutes() > row.departure.Minutes() {
				row.departure = dep
				row.hasDep = true
			}
		}
		if d, ok := r.DurationValue(); ok {
			row.total += d
			row.hasTotal = true
		}
	}

	if len(perChild) == 0 {
		return nil, ErrNoDataForPeriod
	}

	children := make([]string, 0, len(perChild))
	for child := range perChild {
		children = append(children, child)
	}
	sort.Strings(children)

	f := excelize.NewFile()
	durationFmt := "[h]:mm:ss"
	durationStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &durationFmt})
	if err != nil {
		return nil, fmt.Errorf("creating duration style: %v", err)
	}

	for _, child := range children {
		if _, err := f.NewSheet(child); err != nil {
			return nil, fmt.Errorf("creating sheet %s: %v", child, err)
		}

		rows := make([]*dayRow, 0, len(perChild[child]))
		for _, row := range perChild[child] {
			rows = append(rows, row)
		}
		sort.Slice(rows, func(i, j int) bool { return rows[i].day.Before(rows[j].day) })

		for i, h := range sheetHeader {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(child, cell, h)
		}

		for i, row := range rows {
			n := i + 2
			f.SetCellValue(child, fmt.Sprintf("A%d", n), row.day.Format(Models.DateLayout))
			if row.hasArr {
				f.SetCellValue(child, fmt.Sprintf("B%d", n), row.arrival.String())
			}
			if row.hasDep {
				f.SetCellValue(child, fmt.Sprintf("C%d", n), row.departure.String())
			}
			if row.hasTotal {
				// Excel stores elapsed time as a fraction of a day.
				f.SetCellValue(child, fmt.Sprintf("D%d", n), row.total.Hours()/24)
			}
		}

		lastDataRow := len(rows) + 1
		totalRow := lastDataRow + 1
		f.SetCellValue(child, fmt.Sprintf("C%d", totalRow), "Total")
		f.SetCellFormula(child, fmt.Sprintf("D%d", totalRow), fmt.Sprintf("SUM(D2:D%d)", lastDataRow))

		f.SetCellStyle(child, "D2", fmt.Sprintf("D%d", totalRow), durationStyle)
		f.SetColWidth(child, "A", "C", 12)
		f.SetColWidth(child, "D", "D", 12)
	}

	f.DeleteSheet("Sheet1")
	return f, nil
}

// WorkbookBytes renders the workbook for download or upload.
func WorkbookBytes(f *excelize.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("writing workbook: %v", err)
	}
	return buf.Bytes(), nil
}
