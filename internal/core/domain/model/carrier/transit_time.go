package carrier

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// TransitTime is the fixed carrier transit duration on one route, in whole
// hours from departure to guaranteed delivery.
type TransitTime struct {
	warehouse   kernel.Warehouse
	targetState string
	hours       int
}

// NewTransitTime creates a transit time record for a route.
func NewTransitTime(warehouse kernel.Warehouse, targetState string, hours int) (*TransitTime, error) {
	tt := &TransitTime{}

	if err := errors.Join(
		tt.setRoute(warehouse, targetState),
		tt.setHours(hours),
	); err != nil {
		return nil, err
	}

	return tt, nil
}

// Warehouse returns the origin of the route.
func (t *TransitTime) Warehouse() kernel.Warehouse {
	return t.warehouse
}

// TargetState returns the destination state of the route.
func (t *TransitTime) TargetState() string {
	return t.targetState
}

// Hours returns the transit duration in whole hours.
func (t *TransitTime) Hours() int {
	return t.hours
}

func (t *TransitTime) setRoute(warehouse kernel.Warehouse, targetState string) error {
	if err := warehouse.Validate(); err != nil {
		return err
	}
	if targetState == "" {
		return errs.NewValueIsRequiredError("targetState")
	}
	t.warehouse = warehouse
	t.targetState = targetState
	return nil
}

func (t *TransitTime) setHours(hours int) error {
	if hours < 0 {
		return errs.NewValueIsInvalidErrorWithCause("carrierTime",
			fmt.Errorf("%d hours is negative", hours))
	}
	t.hours = hours
	return nil
}
