package queries

import (
	"context"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// QuoteShipmentQueryResponse is the read model of a quoted shipment.
type QuoteShipmentQueryResponse struct {
	OrderID            int64
	Warehouse          string
	GuaranteedDelivery time.Time
	BoxName            string
	CarrierPrice       float64
	ExperiencePrice    float64
	TotalPrice         float64
}

// QuoteShipmentQueryHandler computes a shipment quote. Each query builds its
// own repository set from the snapshot, so quoting never observes or affects
// a running batch.
type QuoteShipmentQueryHandler struct {
	repoFactory ports.RepositoryFactory
	settings    services.AllocationSettings
}

// NewQuoteShipmentQueryHandler creates a handler for shipment quotes.
func NewQuoteShipmentQueryHandler(
	repoFactory ports.RepositoryFactory,
	settings services.AllocationSettings,
) (QuoteShipmentQueryHandler, error) {
	if repoFactory == nil {
		return QuoteShipmentQueryHandler{}, errs.NewValueIsRequiredError("repositoryFactory")
	}
	if err := settings.Validate(); err != nil {
		return QuoteShipmentQueryHandler{}, err
	}

	return QuoteShipmentQueryHandler{
		repoFactory: repoFactory,
		settings:    settings,
	}, nil
}

// Handle computes the quote for the query's order.
func (h QuoteShipmentQueryHandler) Handle(
	ctx context.Context,
	query QuoteShipmentQuery,
) (QuoteShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return QuoteShipmentQueryResponse{}, err
	}

	if err := ctx.Err(); err != nil {
		return QuoteShipmentQueryResponse{}, err
	}

	repos, err := h.repoFactory.Create(query.ReferenceData())
	if err != nil {
		return QuoteShipmentQueryResponse{}, fmt.Errorf("build repositories: %w", err)
	}

	allocator, err := services.NewShipmentAllocator(repos, h.settings)
	if err != nil {
		return QuoteShipmentQueryResponse{}, err
	}

	info, err := allocator.Quote(query.Order())
	if err != nil {
		return QuoteShipmentQueryResponse{}, err
	}

	return QuoteShipmentQueryResponse{
		OrderID:            info.OrderID(),
		Warehouse:          info.Warehouse().Name(),
		GuaranteedDelivery: info.GuaranteedDelivery(),
		BoxName:            info.BoxName(),
		CarrierPrice:       info.CarrierPrice(),
		ExperiencePrice:    info.ExperiencePrice(),
		TotalPrice:         info.TotalPrice(),
	}, nil
}
