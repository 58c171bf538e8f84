// Package Ledger holds the daycare's two record stores — the attendance
// ledger and the activity log — plus the duration and visibility rules that
// go with them. All persistence is whole-table writes through the drive.
package Ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/Hpoinseaux/Assmatapp/Models"
)

// ErrDepartureBeforeArrival is returned instead of the 24h wrap when the
// overnight policy is disabled.
var ErrDepartureBeforeArrival = errors.New("departure is not after arrival")

// ComputeDuration returns the elapsed time between an arrival and a departure
// on the same shift. A departure at or before the arrival time is treated as
// next-day when allowOvernight is set: the pair 22:00 → 06:00 yields 8h, and
// an equal pair wraps to a full day rather than zero.
func ComputeDuration(arrival, departure Models.ClockTime, allowOvernight bool) (time.Duration, error) {
	minutes := departure.Minutes() - arrival.Minutes()
	if minutes <= 0 {
		if !allowOvernight {
			return 0, fmt.Errorf("%w: %s -> %s", ErrDepartureBeforeArrival, arrival, departure)
		}
		minutes += 24 * 60
	}
	return time.Duration(minutes) * time.Minute, nil
}
