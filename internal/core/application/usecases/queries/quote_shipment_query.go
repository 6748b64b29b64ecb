package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrQuoteShipmentQueryIsNotConstructed = errors.New(
	"QuoteShipmentQuery must be created via NewQuoteShipmentQuery constructor",
)

// QuoteShipmentQuery asks what shipment a single order would get against a
// reference-data snapshot, without committing any stock.
type QuoteShipmentQuery struct { //nolint:recvcheck //using for validation
	referenceData ports.ReferenceData
	order         *order.Order

	guard guard.ConstructorGuard
}

// NewQuoteShipmentQuery creates a quote query for one order.
func NewQuoteShipmentQuery(referenceData ports.ReferenceData, o *order.Order) (QuoteShipmentQuery, error) {
	if o == nil {
		return QuoteShipmentQuery{}, errs.NewValueIsRequiredError("order")
	}

	return QuoteShipmentQuery{
		referenceData: referenceData,
		order:         o,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrQuoteShipmentQueryIsNotConstructed if validation fails.
func (q QuoteShipmentQuery) Validate() error {
	return q.guard.Validate(ErrQuoteShipmentQueryIsNotConstructed)
}

// ReferenceData returns the catalogs and stock the quote is computed against.
func (q QuoteShipmentQuery) ReferenceData() ports.ReferenceData {
	return q.referenceData
}

// Order returns the order to quote.
func (q QuoteShipmentQuery) Order() *order.Order {
	return q.order
}
