package carrier

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// Pricing is the price per unit volume charged by the carrier on one route.
type Pricing struct {
	warehouse   kernel.Warehouse
	targetState string
	volumePrice float64
}

// NewPricing creates a carrier pricing record for a route.
func NewPricing(warehouse kernel.Warehouse, targetState string, volumePrice float64) (*Pricing, error) {
	p := &Pricing{}

	if err := errors.Join(
		p.setRoute(warehouse, targetState),
		p.setVolumePrice(volumePrice),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Warehouse returns the origin of the route.
func (p *Pricing) Warehouse() kernel.Warehouse {
	return p.warehouse
}

// TargetState returns the destination state of the route.
func (p *Pricing) TargetState() string {
	return p.targetState
}

// VolumePrice returns the price charged per unit of box volume.
func (p *Pricing) VolumePrice() float64 {
	return p.volumePrice
}

func (p *Pricing) setRoute(warehouse kernel.Warehouse, targetState string) error {
	if err := warehouse.Validate(); err != nil {
		return err
	}
	if targetState == "" {
		return errs.NewValueIsRequiredError("targetState")
	}
	p.warehouse = warehouse
	p.targetState = targetState
	return nil
}

func (p *Pricing) setVolumePrice(volumePrice float64) error {
	if volumePrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("volumePrice",
			fmt.Errorf("%g is negative", volumePrice))
	}
	p.volumePrice = volumePrice
	return nil
}
