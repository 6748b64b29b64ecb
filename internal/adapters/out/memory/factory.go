package memory

import (
	"fulfillment/internal/core/ports"
)

// Factory builds a fresh in-memory repository set from a record snapshot.
type Factory struct{}

// NewFactory creates a repository factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Create builds the full repository set. Any duplicate natural key in the
// snapshot fails the build.
func (f *Factory) Create(data ports.ReferenceData) (ports.Repositories, error) {
	items, err := NewItemRepository(data.Items)
	if err != nil {
		return ports.Repositories{}, err
	}

	boxTypes, err := NewBoxTypeRepository(data.BoxTypes)
	if err != nil {
		return ports.Repositories{}, err
	}

	pricings, err := NewCarrierPricingRepository(data.CarrierPricings)
	if err != nil {
		return ports.Repositories{}, err
	}

	schedules, err := NewDepartureScheduleRepository(data.DepartureSchedules)
	if err != nil {
		return ports.Repositories{}, err
	}

	transitTimes, err := NewTransitTimeRepository(data.TransitTimes)
	if err != nil {
		return ports.Repositories{}, err
	}

	ledger, err := NewStockLedger(data.Stocks)
	if err != nil {
		return ports.Repositories{}, err
	}

	return ports.Repositories{
		Items:              items,
		BoxTypes:           boxTypes,
		CarrierPricings:    pricings,
		DepartureSchedules: schedules,
		TransitTimes:       transitTimes,
		Ledger:             ledger,
	}, nil
}
