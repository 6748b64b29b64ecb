// Package ports defines the contracts between the allocation engine and its
// reference-data providers. Repositories are read-only lookup tables built
// once before processing; the stock ledger is the single mutable collaborator
// and every lookup against it reflects the allocations committed so far.
//
// All operations are synchronous in-memory computations; a failed lookup
// returns an errs.ObjectNotFoundError and marks malformed reference data,
// not an unfulfillable order.
package ports

import (
	"fulfillment/internal/core/domain/model/box"
	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/item"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/stock"
)

// ItemRepository is the item catalog, keyed by item identifier.
type ItemRepository interface {
	// FindByID resolves an item by its identifier.
	FindByID(itemID string) (*item.Item, error)
}

// BoxTypeRepository is the shipping-box catalog.
type BoxTypeRepository interface {
	// All returns every box type in catalog declaration order. The order is
	// part of the contract: box selection breaks volume ties by first
	// encounter.
	All() []*box.Type
}

// CarrierPricingRepository resolves the volume price of a route.
type CarrierPricingRepository interface {
	// FindByRoute resolves the pricing record for a (warehouse, targetState) pair.
	FindByRoute(warehouse kernel.Warehouse, targetState string) (*carrier.Pricing, error)
}

// DepartureScheduleRepository resolves the weekly departure windows of a route.
type DepartureScheduleRepository interface {
	// FindByRoute resolves the departure schedule for a (warehouse, targetState) pair.
	FindByRoute(warehouse kernel.Warehouse, targetState string) (*carrier.DepartureSchedule, error)
}

// TransitTimeRepository resolves the carrier transit duration of a route.
type TransitTimeRepository interface {
	// FindByRoute resolves the transit time for a (warehouse, targetState) pair.
	FindByRoute(warehouse kernel.Warehouse, targetState string) (*carrier.TransitTime, error)
}

// StockLedger is the mutable remaining-quantity table. Reads and the single
// write (Decrement) must not interleave across allocations: the engine
// processes orders one at a time and each decision depends on the ledger
// state at decision time.
type StockLedger interface {
	// AvailableForItem returns the entries for an item with quantity > 0,
	// in ledger declaration order.
	AvailableForItem(itemID string) []*stock.Stock

	// QuantityAt returns the current remaining quantity for an (item,
	// warehouse) pair. A missing entry is an integrity error.
	QuantityAt(itemID string, warehouse kernel.Warehouse) (int, error)

	// Decrement commits one allocation against an (item, warehouse) pair,
	// reducing its quantity by exactly one. A missing or exhausted entry is
	// a consistency error: the caller necessarily saw the entry during
	// candidate enumeration.
	Decrement(itemID string, warehouse kernel.Warehouse) error
}

// Repositories bundles every collaborator the allocation engine needs.
type Repositories struct {
	Items              ItemRepository
	BoxTypes           BoxTypeRepository
	CarrierPricings    CarrierPricingRepository
	DepartureSchedules DepartureScheduleRepository
	TransitTimes       TransitTimeRepository
	Ledger             StockLedger
}

// ReferenceData is the raw record snapshot a repository factory turns into
// Repositories: the five read-only reference tables plus the initial stock
// of the ledger.
type ReferenceData struct {
	Items              []*item.Item
	BoxTypes           []*box.Type
	CarrierPricings    []*carrier.Pricing
	DepartureSchedules []*carrier.DepartureSchedule
	TransitTimes       []*carrier.TransitTime
	Stocks             []*stock.Stock
}

// RepositoryFactory builds a fresh repository set from a record snapshot.
// Natural-key uniqueness is checked during construction, so malformed
// reference data fails at load time rather than at first lookup.
type RepositoryFactory interface {
	Create(data ReferenceData) (Repositories, error)
}
