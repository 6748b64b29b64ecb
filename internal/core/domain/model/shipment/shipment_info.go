// Package shipment provides ShipmentInfo, the result of allocating one order:
// the chosen warehouse, the guaranteed delivery instant, the selected box and
// the two price components. A ShipmentInfo is created once per order and
// never mutated afterwards.
package shipment

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// Info is the outcome of allocating a single order. The carrier price and the
// experience price are both reported separately and summed into the total;
// the total itself is derived, never stored.
type Info struct {
	order              *order.Order
	warehouse          kernel.Warehouse
	guaranteedDelivery time.Time
	boxName            string
	carrierPrice       float64
	experiencePrice    float64
}

// NewInfo creates a shipment result for an order.
func NewInfo(
	o *order.Order,
	warehouse kernel.Warehouse,
	guaranteedDelivery time.Time,
	boxName string,
	carrierPrice float64,
	experiencePrice float64,
) (*Info, error) {
	info := &Info{}

	if err := errors.Join(
		info.setOrder(o),
		info.setWarehouse(warehouse),
		info.setGuaranteedDelivery(guaranteedDelivery),
		info.setBoxName(boxName),
		info.setPrices(carrierPrice, experiencePrice),
	); err != nil {
		return nil, err
	}

	return info, nil
}

// Order returns the originating order.
func (i *Info) Order() *order.Order {
	return i.order
}

// OrderID returns the identifier of the originating order.
func (i *Info) OrderID() int64 {
	return i.order.ID()
}

// ItemID returns the identifier of the shipped item.
func (i *Info) ItemID() string {
	return i.order.ItemID()
}

// Warehouse returns the fulfilling warehouse.
func (i *Info) Warehouse() kernel.Warehouse {
	return i.warehouse
}

// GuaranteedDelivery returns the guaranteed delivery instant on the caller's
// reference clock.
func (i *Info) GuaranteedDelivery() time.Time {
	return i.guaranteedDelivery
}

// BoxName returns the name of the selected box type.
func (i *Info) BoxName() string {
	return i.boxName
}

// CarrierPrice returns the volume-based carrier price component.
func (i *Info) CarrierPrice() float64 {
	return i.carrierPrice
}

// ExperiencePrice returns the surcharge proportional to the hours between
// order placement and guaranteed delivery.
func (i *Info) ExperiencePrice() float64 {
	return i.experiencePrice
}

// TotalPrice returns the sum of the carrier price and the experience price.
func (i *Info) TotalPrice() float64 {
	return i.carrierPrice + i.experiencePrice
}

func (i *Info) setOrder(o *order.Order) error {
	if o == nil {
		return errs.NewValueIsRequiredError("order")
	}
	i.order = o
	return nil
}

func (i *Info) setWarehouse(warehouse kernel.Warehouse) error {
	if err := warehouse.Validate(); err != nil {
		return err
	}
	i.warehouse = warehouse
	return nil
}

func (i *Info) setGuaranteedDelivery(guaranteedDelivery time.Time) error {
	if guaranteedDelivery.IsZero() {
		return errs.NewValueIsRequiredError("guaranteedDeliveryDate")
	}
	i.guaranteedDelivery = guaranteedDelivery
	return nil
}

func (i *Info) setBoxName(boxName string) error {
	if boxName == "" {
		return errs.NewValueIsRequiredError("boxType")
	}
	i.boxName = boxName
	return nil
}

func (i *Info) setPrices(carrierPrice, experiencePrice float64) error {
	if carrierPrice < 0 || experiencePrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%g/%g must not be negative", carrierPrice, experiencePrice))
	}
	i.carrierPrice = carrierPrice
	i.experiencePrice = experiencePrice
	return nil
}
