package carrier

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// DepartureSchedule is the ordered set of weekly departure windows a carrier
// offers on one route. Windows are kept in the order they were declared in
// reference data; the departure calculator picks the earliest candidate, so
// declaration order only matters as a deterministic tie-break.
type DepartureSchedule struct {
	warehouse   kernel.Warehouse
	targetState string
	hours       []ShippingHour
}

// NewDepartureSchedule creates a departure schedule for a route.
// At least one shipping hour is required: a route without windows can never
// produce a departure, which is a reference-data defect better rejected at
// load time than discovered during allocation.
func NewDepartureSchedule(
	warehouse kernel.Warehouse,
	targetState string,
	hours []ShippingHour,
) (*DepartureSchedule, error) {
	ds := &DepartureSchedule{}

	if err := errors.Join(
		ds.setRoute(warehouse, targetState),
		ds.setHours(hours),
	); err != nil {
		return nil, err
	}

	return ds, nil
}

// Warehouse returns the origin of the route.
func (d *DepartureSchedule) Warehouse() kernel.Warehouse {
	return d.warehouse
}

// TargetState returns the destination state of the route.
func (d *DepartureSchedule) TargetState() string {
	return d.targetState
}

// Hours returns the weekly departure windows in declaration order.
// The returned slice is a copy; mutating it does not affect the schedule.
func (d *DepartureSchedule) Hours() []ShippingHour {
	hours := make([]ShippingHour, len(d.hours))
	copy(hours, d.hours)
	return hours
}

func (d *DepartureSchedule) setRoute(warehouse kernel.Warehouse, targetState string) error {
	if err := warehouse.Validate(); err != nil {
		return err
	}
	if targetState == "" {
		return errs.NewValueIsRequiredError("targetState")
	}
	d.warehouse = warehouse
	d.targetState = targetState
	return nil
}

func (d *DepartureSchedule) setHours(hours []ShippingHour) error {
	if len(hours) == 0 {
		return errs.NewValueIsRequiredError("shippingHours")
	}
	for _, h := range hours {
		if err := h.Validate(); err != nil {
			return err
		}
	}
	d.hours = make([]ShippingHour, len(hours))
	copy(d.hours, hours)
	return nil
}
