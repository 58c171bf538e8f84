package Ledger

import (
	"time"

	"github.com/Hpoinseaux/Assmatapp/Models"
)

// VisibleToParent reports whether a parent may already see the day's records.
// Disclosure is held back until the configured time of day so the caregiver's
// shift is presumed over; it never gates caregiver writes.
func VisibleToParent(now time.Time, cutoff Models.ClockTime) bool {
	return Models.ClockOf(now).Minutes() >= cutoff.Minutes()
}
