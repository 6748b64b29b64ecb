// Package carrier provides the reference records describing how goods move
// from a warehouse to a destination state: the price per unit volume, the
// weekly departure windows of the carrier, and the fixed transit duration.
//
// All three record types share the same natural key, the (warehouse,
// targetState) route. They are loaded once from reference data and are
// immutable; at most one record per route may exist for each type, which the
// repositories enforce at load time.
package carrier
