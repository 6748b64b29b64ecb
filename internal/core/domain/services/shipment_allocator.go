package services

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// ErrNoSuitableWarehouse is returned when no warehouse can fulfill an order:
// either no warehouse holds stock of the item, or none exists at all.
var ErrNoSuitableWarehouse = errors.New("no warehouse with stock and delivery options")

// ShipmentAllocator is the allocation engine. For one order it enumerates
// every warehouse holding stock of the ordered item, computes a full shipment
// candidate per warehouse (box, departure, delivery, prices), picks the
// candidate with the lowest total price, and commits the winning stock
// decrement.
//
// The tie-break on equal total price prefers the warehouse currently holding
// strictly more remaining stock of the item, spreading depletion away from
// scarce stock. Because the decision reads the ledger and the commit writes
// it, allocations must not interleave: callers process orders strictly one at
// a time.
type ShipmentAllocator struct {
	repos       ports.Repositories
	boxSelector BoxSelector
	departures  DepartureCalculator
	pricing     PricingCalculator
	preparation time.Duration
}

// NewShipmentAllocator creates an allocation engine over the given
// repositories with the given settings.
func NewShipmentAllocator(repos ports.Repositories, settings AllocationSettings) (*ShipmentAllocator, error) {
	if err := validateRepositories(repos); err != nil {
		return nil, err
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	boxSelector, err := NewBoxSelector(repos.BoxTypes)
	if err != nil {
		return nil, err
	}

	pricing, err := NewPricingCalculator(settings.ExperienceRatePerHour)
	if err != nil {
		return nil, err
	}

	return &ShipmentAllocator{
		repos:       repos,
		boxSelector: boxSelector,
		departures:  NewDepartureCalculator(),
		pricing:     pricing,
		preparation: settings.PreparationTime,
	}, nil
}

// Allocate finds the best shipment for the order and commits the stock
// decrement against the winning warehouse. The ledger mutation makes
// subsequent allocations order-dependent.
//
// Returns ErrNoSuitableWarehouse when no warehouse holds stock of the item,
// ErrNoSuitableBox when the item fits no box, and an integrity error when a
// reference lookup fails for a warehouse that does hold stock.
func (a *ShipmentAllocator) Allocate(o *order.Order) (*shipment.Info, error) {
	best, err := a.findBestShipment(o)
	if err != nil {
		return nil, err
	}

	// The entry was seen during enumeration; a failed decrement here is a
	// consistency bug, not bad input.
	if err = a.repos.Ledger.Decrement(best.ItemID(), best.Warehouse()); err != nil {
		return nil, fmt.Errorf("commit stock decrement for order %d: %w", o.ID(), err)
	}

	return best, nil
}

// Quote computes the best shipment for the order without committing a stock
// decrement. The ledger is read but never written, so a quote does not affect
// subsequent allocations.
func (a *ShipmentAllocator) Quote(o *order.Order) (*shipment.Info, error) {
	return a.findBestShipment(o)
}

func (a *ShipmentAllocator) findBestShipment(o *order.Order) (*shipment.Info, error) {
	if o == nil {
		return nil, errs.NewValueIsRequiredError("order")
	}

	var (
		best        *shipment.Info
		bestStockAt int
	)

	for _, st := range a.repos.Ledger.AvailableForItem(o.ItemID()) {
		candidate, err := a.buildCandidate(o, st.Warehouse())
		if err != nil {
			return nil, err
		}

		stockAt, err := a.repos.Ledger.QuantityAt(o.ItemID(), st.Warehouse())
		if err != nil {
			return nil, err
		}

		if best == nil || candidateWins(candidate, stockAt, best, bestStockAt) {
			best = candidate
			bestStockAt = stockAt
		}
	}

	if best == nil {
		return nil, fmt.Errorf("%w: item %s to state %s",
			ErrNoSuitableWarehouse, o.ItemID(), o.TargetState())
	}

	return best, nil
}

// buildCandidate computes the full shipment the warehouse would produce for
// the order. Missing reference data for a stocked warehouse is malformed
// static input and aborts the allocation.
func (a *ShipmentAllocator) buildCandidate(o *order.Order, warehouse kernel.Warehouse) (*shipment.Info, error) {
	it, err := a.repos.Items.FindByID(o.ItemID())
	if err != nil {
		return nil, err
	}

	boxType, err := a.boxSelector.SelectBox(it)
	if err != nil {
		return nil, err
	}

	pricing, err := a.repos.CarrierPricings.FindByRoute(warehouse, o.TargetState())
	if err != nil {
		return nil, err
	}
	carrierPrice := a.pricing.CarrierPrice(pricing.VolumePrice(), boxType.Volume())

	schedule, err := a.repos.DepartureSchedules.FindByRoute(warehouse, o.TargetState())
	if err != nil {
		return nil, err
	}

	readyLocal := o.PlacedAt().Add(a.preparation).Add(warehouse.TimeZoneOffset())
	departureLocal, err := a.departures.NextDeparture(readyLocal, schedule.Hours())
	if err != nil {
		return nil, err
	}
	departure := departureLocal.Add(-warehouse.TimeZoneOffset())

	transit, err := a.repos.TransitTimes.FindByRoute(warehouse, o.TargetState())
	if err != nil {
		return nil, err
	}
	delivery := a.departures.GuaranteedDelivery(departure, transit.Hours())

	experiencePrice := a.pricing.ExperiencePrice(o.PlacedAt(), delivery)

	return shipment.NewInfo(o, warehouse, delivery, boxType.Name(), carrierPrice, experiencePrice)
}

// candidateWins reports whether the candidate beats the current best:
// strictly lower total price, or on an exact price tie, strictly more
// remaining stock at its warehouse.
func candidateWins(candidate *shipment.Info, candidateStock int, best *shipment.Info, bestStock int) bool {
	if candidate.TotalPrice() != best.TotalPrice() {
		return candidate.TotalPrice() < best.TotalPrice()
	}
	return candidateStock > bestStock
}

func validateRepositories(repos ports.Repositories) error {
	if repos.Items == nil {
		return errs.NewValueIsRequiredError("itemRepository")
	}
	if repos.BoxTypes == nil {
		return errs.NewValueIsRequiredError("boxTypeRepository")
	}
	if repos.CarrierPricings == nil {
		return errs.NewValueIsRequiredError("carrierPricingRepository")
	}
	if repos.DepartureSchedules == nil {
		return errs.NewValueIsRequiredError("departureScheduleRepository")
	}
	if repos.TransitTimes == nil {
		return errs.NewValueIsRequiredError("transitTimeRepository")
	}
	if repos.Ledger == nil {
		return errs.NewValueIsRequiredError("stockLedger")
	}
	return nil
}
