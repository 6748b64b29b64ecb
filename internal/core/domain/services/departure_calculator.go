package services

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/carrier"
)

// ErrNoDepartureWindows is returned when a departure is requested against an
// empty window list. Schedules reject empty lists at construction, so hitting
// this from repository-backed data indicates a consistency bug.
var ErrNoDepartureWindows = errors.New("no departure windows")

// DepartureCalculator resolves the next valid departure instant for a ready
// package against a weekly departure schedule, and derives the guaranteed
// delivery instant from the carrier transit time.
//
// All instants are naive clock readings: the caller expresses the ready time
// on the warehouse-local clock before calling NextDeparture and converts the
// result back to the base clock by applying the warehouse UTC offset.
type DepartureCalculator struct{}

// NewDepartureCalculator creates a DepartureCalculator.
func NewDepartureCalculator() DepartureCalculator {
	return DepartureCalculator{}
}

// NextDeparture returns the earliest departure instant on or after readyLocal
// across all weekly windows, on the warehouse-local clock.
//
// For each window, only the hour of readyLocal is compared against the window
// hour: when the ready hour is strictly earlier the same day may be used,
// otherwise the window moves to the next weekly occurrence strictly after the
// current date. Minutes are deliberately ignored in that branch decision even
// though the window minute is applied to the result; a package ready at 10:05
// therefore misses a 10:30 window until the following week.
func (DepartureCalculator) NextDeparture(readyLocal time.Time, windows []carrier.ShippingHour) (time.Time, error) {
	if len(windows) == 0 {
		return time.Time{}, ErrNoDepartureWindows
	}

	var best time.Time
	for _, w := range windows {
		days := (int(w.Day()) - int(readyLocal.Weekday()) + 7) % 7
		if readyLocal.Hour() >= w.Hour() && days == 0 {
			days = 7
		}

		candidate := time.Date(
			readyLocal.Year(), readyLocal.Month(), readyLocal.Day()+days,
			w.Hour(), w.Minute(), 0, 0,
			readyLocal.Location(),
		)

		if best.IsZero() || candidate.Before(best) {
			best = candidate
		}
	}

	return best, nil
}

// GuaranteedDelivery returns the delivery instant: the departure plus the
// carrier transit time in whole hours.
func (DepartureCalculator) GuaranteedDelivery(departure time.Time, transitHours int) time.Time {
	return departure.Add(time.Duration(transitHours) * time.Hour)
}
