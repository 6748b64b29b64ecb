// Package services provides the domain services that turn an order into a
// shipment: box selection, departure and delivery calculation, pricing, and
// the allocation engine that ranks warehouse candidates and commits the
// winning stock decrement.
//
// The package distinguishes two error channels. Unfulfillable orders surface
// as the sentinels ErrNoSuitableBox and ErrNoSuitableWarehouse; missing or
// duplicated reference data surfaces as integrity errors from the ports
// layer. Both abort the batch, but callers can tell them apart.
package services
