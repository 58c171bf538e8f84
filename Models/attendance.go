package Models

import "time"

// AttendanceTable is the drive object holding the attendance ledger.
const AttendanceTable = "presence.csv"

// AttendanceHeader is the column contract of the attendance table.
var AttendanceHeader = []string{"Name", "Date", "Arrival", "Departure", "Duration"}

// AttendanceRecord is one ledger row. Arrival, Departure and Duration are the
// raw table cells; empty means unset. At most one record exists per
// (Child, Date) pair — a new arrival replaces the old row.
type AttendanceRecord struct {
	Child     string `json:"name"`
	Date      string `json:"date"`      // dd/mm/yyyy
	Arrival   string `json:"arrival"`   // HH:MM
	Departure string `json:"departure"` // HH:MM
	Duration  string `json:"duration"`  // H:MM:SS
}

// Day parses the record's date cell.
func (r AttendanceRecord) Day() (time.Time, error) {
	return ParseDate(r.Date)
}

// DurationValue parses the duration cell. ok is false when the cell is empty
// or unreadable.
func (r AttendanceRecord) DurationValue() (time.Duration, bool) {
	return ParseStoredDuration(r.Duration)
}

// Row serializes the record in table column order.
func (r AttendanceRecord) Row() []string {
	return []string{r.Child, r.Date, r.Arrival, r.Departure, r.Duration}
}

// AttendanceFromRow builds a record from a raw table row. Rows too short to
// carry a name and date are reported unusable and dropped by the caller.
func AttendanceFromRow(row []string) (AttendanceRecord, bool) {
	if len(row) < 2 || row[0] == "" {
		return AttendanceRecord{}, false
	}
	var r AttendanceRecord
	r.Child = row[0]
	r.Date = row[1]
	if len(row) > 2 {
		r.Arrival = row[2]
	}
	if len(row) > 3 {
		r.Departure = row[3]
	}
	if len(row) > 4 {
		r.Duration = row[4]
	}
	return r, true
}
