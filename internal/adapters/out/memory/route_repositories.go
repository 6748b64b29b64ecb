package memory

import (
	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// CarrierPricingRepository is a map-backed pricing table keyed by route.
type CarrierPricingRepository struct {
	pricings map[routeKey]*carrier.Pricing
}

// NewCarrierPricingRepository builds the table, rejecting duplicate routes.
func NewCarrierPricingRepository(pricings []*carrier.Pricing) (*CarrierPricingRepository, error) {
	byRoute := make(map[routeKey]*carrier.Pricing, len(pricings))
	for _, p := range pricings {
		if p == nil {
			return nil, errs.NewValueIsRequiredError("carrierPricing")
		}
		key := routeKey{warehouse: p.Warehouse(), targetState: p.TargetState()}
		if _, exists := byRoute[key]; exists {
			return nil, errs.NewDuplicateKeyError("carrierPricing", key.String())
		}
		byRoute[key] = p
	}
	return &CarrierPricingRepository{pricings: byRoute}, nil
}

// FindByRoute resolves the pricing record for a (warehouse, targetState) pair.
func (r *CarrierPricingRepository) FindByRoute(warehouse kernel.Warehouse, targetState string) (*carrier.Pricing, error) {
	key := routeKey{warehouse: warehouse, targetState: targetState}
	p, ok := r.pricings[key]
	if !ok {
		return nil, errs.NewObjectNotFoundError("carrierPricing", key.String())
	}
	return p, nil
}

// DepartureScheduleRepository is a map-backed schedule table keyed by route.
type DepartureScheduleRepository struct {
	schedules map[routeKey]*carrier.DepartureSchedule
}

// NewDepartureScheduleRepository builds the table, rejecting duplicate routes.
func NewDepartureScheduleRepository(schedules []*carrier.DepartureSchedule) (*DepartureScheduleRepository, error) {
	byRoute := make(map[routeKey]*carrier.DepartureSchedule, len(schedules))
	for _, s := range schedules {
		if s == nil {
			return nil, errs.NewValueIsRequiredError("departureSchedule")
		}
		key := routeKey{warehouse: s.Warehouse(), targetState: s.TargetState()}
		if _, exists := byRoute[key]; exists {
			return nil, errs.NewDuplicateKeyError("departureSchedule", key.String())
		}
		byRoute[key] = s
	}
	return &DepartureScheduleRepository{schedules: byRoute}, nil
}

// FindByRoute resolves the departure schedule for a (warehouse, targetState) pair.
func (r *DepartureScheduleRepository) FindByRoute(warehouse kernel.Warehouse, targetState string) (*carrier.DepartureSchedule, error) {
	key := routeKey{warehouse: warehouse, targetState: targetState}
	s, ok := r.schedules[key]
	if !ok {
		return nil, errs.NewObjectNotFoundError("departureSchedule", key.String())
	}
	return s, nil
}

// TransitTimeRepository is a map-backed transit table keyed by route.
type TransitTimeRepository struct {
	times map[routeKey]*carrier.TransitTime
}

// NewTransitTimeRepository builds the table, rejecting duplicate routes.
func NewTransitTimeRepository(times []*carrier.TransitTime) (*TransitTimeRepository, error) {
	byRoute := make(map[routeKey]*carrier.TransitTime, len(times))
	for _, t := range times {
		if t == nil {
			return nil, errs.NewValueIsRequiredError("transitTime")
		}
		key := routeKey{warehouse: t.Warehouse(), targetState: t.TargetState()}
		if _, exists := byRoute[key]; exists {
			return nil, errs.NewDuplicateKeyError("transitTime", key.String())
		}
		byRoute[key] = t
	}
	return &TransitTimeRepository{times: byRoute}, nil
}

// FindByRoute resolves the transit time for a (warehouse, targetState) pair.
func (r *TransitTimeRepository) FindByRoute(warehouse kernel.Warehouse, targetState string) (*carrier.TransitTime, error) {
	key := routeKey{warehouse: warehouse, targetState: targetState}
	t, ok := r.times[key]
	if !ok {
		return nil, errs.NewObjectNotFoundError("transitTime", key.String())
	}
	return t, nil
}
