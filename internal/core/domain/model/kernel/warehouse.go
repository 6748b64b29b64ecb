package kernel

import (
	"time"

	"fulfillment/internal/pkg/errs"
)

// ErrWarehouseIsInvalid is returned when a Warehouse value is outside the
// closed set of known fulfillment origins.
var ErrWarehouseIsInvalid = errs.NewValueIsInvalidError(
	"warehouse must be one of the known fulfillment origins")

// Warehouse identifies one of a fixed, closed set of fulfillment origins.
// Each warehouse carries a fixed UTC offset used to express order timestamps
// in warehouse-local time. The set is deliberately an enumeration rather than
// an open string lookup so that exhaustiveness stays checkable.
//
// The zero value is NewYork, which is a valid warehouse; values read from
// external input must come through WarehouseFromName.
type Warehouse int

const (
	// NewYork is the east-coast fulfillment origin (UTC-4).
	NewYork Warehouse = iota
	// SanFrancisco is the west-coast fulfillment origin (UTC-7).
	SanFrancisco
)

// AllWarehouses returns every warehouse in the closed set, in declaration order.
func AllWarehouses() []Warehouse {
	return []Warehouse{NewYork, SanFrancisco}
}

// WarehouseFromName resolves a warehouse from its display name as it appears
// in reference data ("New York", "San Francisco").
// Returns ErrWarehouseIsInvalid for any other input.
func WarehouseFromName(name string) (Warehouse, error) {
	switch name {
	case "New York":
		return NewYork, nil
	case "San Francisco":
		return SanFrancisco, nil
	}
	return 0, ErrWarehouseIsInvalid
}

// Name returns the display name used in reference data and shipment reports.
func (w Warehouse) Name() string {
	switch w {
	case NewYork:
		return "New York"
	case SanFrancisco:
		return "San Francisco"
	}
	return ""
}

// String returns the symbolic code of the warehouse, used in logs and
// natural-key formatting.
func (w Warehouse) String() string {
	switch w {
	case NewYork:
		return "NEW_YORK"
	case SanFrancisco:
		return "SAN_FRANCISCO"
	}
	return ""
}

// TimeZoneOffset returns the fixed UTC offset of the warehouse as a duration.
// Adding the offset to a base-clock instant yields warehouse-local time;
// subtracting it converts back.
func (w Warehouse) TimeZoneOffset() time.Duration {
	return time.Duration(w.offsetHours()) * time.Hour
}

func (w Warehouse) offsetHours() int {
	switch w {
	case NewYork:
		return -4
	case SanFrancisco:
		return -7
	}
	return 0
}

// Validate checks that the warehouse belongs to the closed set.
func (w Warehouse) Validate() error {
	switch w {
	case NewYork, SanFrancisco:
		return nil
	}
	return ErrWarehouseIsInvalid
}
