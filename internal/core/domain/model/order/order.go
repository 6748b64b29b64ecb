// Package order provides the Order entity for the fulfillment system.
//
// An order is a request to ship one unit of one item to a destination state.
// It carries the timestamp at which it was placed on the caller's reference
// clock; batch processing is strictly ordered by that timestamp, so the
// entity is immutable once parsed.
package order

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/pkg/errs"
)

// Order is a customer order awaiting allocation to a warehouse, box and
// carrier route. Immutable after construction.
type Order struct {
	id          int64
	placedAt    time.Time
	itemID      string
	targetState string
}

// NewOrder creates an Order, validating that the identifier is positive, the
// timestamp is set and the item and destination are present.
func NewOrder(id int64, placedAt time.Time, itemID, targetState string) (*Order, error) {
	o := &Order{}

	if err := errors.Join(
		o.setID(id),
		o.setPlacedAt(placedAt),
		o.setItemID(itemID),
		o.setTargetState(targetState),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// ID returns the order identifier.
func (o *Order) ID() int64 {
	return o.id
}

// PlacedAt returns the order timestamp on the caller's reference clock.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// ItemID returns the identifier of the ordered item.
func (o *Order) ItemID() string {
	return o.itemID
}

// TargetState returns the destination state of the shipment.
func (o *Order) TargetState() string {
	return o.targetState
}

func (o *Order) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}

func (o *Order) setPlacedAt(placedAt time.Time) error {
	if placedAt.IsZero() {
		return errs.NewValueIsRequiredError("orderDate")
	}
	o.placedAt = placedAt
	return nil
}

func (o *Order) setItemID(itemID string) error {
	if itemID == "" {
		return errs.NewValueIsRequiredError("itemId")
	}
	o.itemID = itemID
	return nil
}

func (o *Order) setTargetState(targetState string) error {
	if targetState == "" {
		return errs.NewValueIsRequiredError("targetState")
	}
	o.targetState = targetState
	return nil
}
