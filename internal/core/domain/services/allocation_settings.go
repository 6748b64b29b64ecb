package services

import (
	"fmt"
	"time"

	"fulfillment/internal/pkg/errs"
)

const (
	// DefaultPreparationTime is how long a warehouse needs to pack an order
	// before it can catch a departure window.
	DefaultPreparationTime = 4 * time.Hour

	// DefaultExperienceRatePerHour is the experience price charged per hour
	// between order placement and guaranteed delivery.
	DefaultExperienceRatePerHour = 0.03
)

// AllocationSettings carries the tunable parameters of the allocation engine.
// They are explicit constructor inputs rather than process-wide constants so
// the engine stays pure and testable with varied parameters.
type AllocationSettings struct {
	// PreparationTime is added to the order timestamp to obtain the instant
	// the package is ready to depart.
	PreparationTime time.Duration

	// ExperienceRatePerHour prices each elapsed hour between order placement
	// and guaranteed delivery.
	ExperienceRatePerHour float64
}

// DefaultAllocationSettings returns the production parameters.
func DefaultAllocationSettings() AllocationSettings {
	return AllocationSettings{
		PreparationTime:       DefaultPreparationTime,
		ExperienceRatePerHour: DefaultExperienceRatePerHour,
	}
}

// Validate checks that both parameters are non-negative.
func (s AllocationSettings) Validate() error {
	if s.PreparationTime < 0 {
		return errs.NewValueIsInvalidErrorWithCause("preparationTime",
			fmt.Errorf("%s is negative", s.PreparationTime))
	}
	if s.ExperienceRatePerHour < 0 {
		return errs.NewValueIsInvalidErrorWithCause("experienceRatePerHour",
			fmt.Errorf("%g is negative", s.ExperienceRatePerHour))
	}
	return nil
}
