package services

import (
	"fmt"
	"time"

	"fulfillment/internal/pkg/errs"
)

// PricingCalculator computes the two price components of a shipment: the
// volume-based carrier price and the experience price, a surcharge
// proportional to the hours between order placement and guaranteed delivery.
type PricingCalculator struct {
	ratePerHour float64
}

// NewPricingCalculator creates a pricing calculator with the given experience
// rate per elapsed hour.
func NewPricingCalculator(ratePerHour float64) (PricingCalculator, error) {
	if ratePerHour < 0 {
		return PricingCalculator{}, errs.NewValueIsInvalidErrorWithCause("experienceRatePerHour",
			fmt.Errorf("%g is negative", ratePerHour))
	}
	return PricingCalculator{ratePerHour: ratePerHour}, nil
}

// CarrierPrice returns the carrier component: the route's price per unit
// volume times the declared volume of the selected box.
func (c PricingCalculator) CarrierPrice(volumePrice, boxVolume float64) float64 {
	return volumePrice * boxVolume
}

// ExperiencePrice returns the experience component: the truncated count of
// whole hours from order placement to guaranteed delivery times the rate.
func (c PricingCalculator) ExperiencePrice(placedAt, guaranteedDelivery time.Time) float64 {
	hours := int64(guaranteedDelivery.Sub(placedAt).Hours())
	return float64(hours) * c.ratePerHour
}
