package Models

import "time"

// ActivityTable is the drive object holding the activity log.
const ActivityTable = "suivi.csv"

// ActivityHeader is the column contract of the activity table. The lowercase
// last column is historical: the original tables were created that way and
// existing data must keep loading.
var ActivityHeader = []string{"Name", "Activity", "Time", "observation"}

// ActivityKind is the stored activity label. Values are the French labels the
// tables have always used.
type ActivityKind string

const (
	ActivityMeal         ActivityKind = "Repas"
	ActivityNapStart     ActivityKind = "Début Sieste"
	ActivityNapEnd       ActivityKind = "Fin Sieste"
	ActivityDiaperChange ActivityKind = "Change"
	ActivitySnack        ActivityKind = "Goûter"
	// ActivityNeedNote carries caregiver-to-parent free text and is filtered
	// out of the routine activity feed.
	ActivityNeedNote ActivityKind = "Besoins"
)

// RoutineKinds are the kinds a caregiver records with the activity buttons.
var RoutineKinds = []ActivityKind{
	ActivityMeal, ActivityNapStart, ActivityNapEnd, ActivityDiaperChange, ActivitySnack,
}

// Valid reports whether k is a known activity kind.
func (k ActivityKind) Valid() bool {
	return k == ActivityNeedNote || k.Routine()
}

// Routine reports whether k is one of the activity-button kinds.
func (k ActivityKind) Routine() bool {
	for _, r := range RoutineKinds {
		if k == r {
			return true
		}
	}
	return false
}

// ActivityEvent is one appended log row. Stamp is the raw table cell; At is
// its parsed value, zero when the cell does not parse (the row is kept).
type ActivityEvent struct {
	Child string       `json:"name"`
	Kind  ActivityKind `json:"activity"`
	Stamp string       `json:"time"` // dd/mm/yyyy HH:MM
	Note  string       `json:"observation"`

	At time.Time `json:"-"`
}

// NewActivityEvent stamps an event with the given wall-clock time.
func NewActivityEvent(child string, kind ActivityKind, at time.Time, note string) ActivityEvent {
	return ActivityEvent{
		Child: child,
		Kind:  kind,
		Stamp: at.Format(StampLayout),
		Note:  note,
		At:    at,
	}
}

// Row serializes the event in table column order.
func (e ActivityEvent) Row() []string {
	return []string{e.Child, string(e.Kind), e.Stamp, e.Note}
}

// ActivityFromRow builds an event from a raw table row, coercing unreadable
// timestamps to the zero sentinel rather than dropping the row.
func ActivityFromRow(row []string) (ActivityEvent, bool) {
	if len(row) < 2 || row[0] == "" {
		return ActivityEvent{}, false
	}
	var e ActivityEvent
	e.Child = row[0]
	e.Kind = ActivityKind(row[1])
	if len(row) > 2 {
		e.Stamp = row[2]
		e.At, _ = ParseStamp(e.Stamp)
	}
	if len(row) > 3 {
		e.Note = row[3]
	}
	return e, true
}
