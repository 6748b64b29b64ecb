package commands

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// ProcessBatchResult is the outcome of one batch run: the allocated shipments
// in processing order and the batch total.
type ProcessBatchResult struct {
	BatchID    kernel.UUID
	Shipments  []*shipment.Info
	TotalPrice float64
}

// ProcessBatchCommandHandler runs the allocation engine over a batch.
// Each run builds a fresh repository set from the command's snapshot, so
// handlers are reusable across batches and runs never share ledger state.
//
// Orders are processed in ascending placement-time order; ties keep their
// submission order. Any unallocatable order aborts the whole batch, since
// every allocation shifts the ledger and a partial result would misprice
// everything after the failure.
type ProcessBatchCommandHandler struct {
	repoFactory ports.RepositoryFactory
	settings    services.AllocationSettings
	logger      *slog.Logger
}

// NewProcessBatchCommandHandler creates a handler for batch allocation runs.
func NewProcessBatchCommandHandler(
	repoFactory ports.RepositoryFactory,
	settings services.AllocationSettings,
	logger *slog.Logger,
) (ProcessBatchCommandHandler, error) {
	if repoFactory == nil {
		return ProcessBatchCommandHandler{}, errs.NewValueIsRequiredError("repositoryFactory")
	}
	if err := settings.Validate(); err != nil {
		return ProcessBatchCommandHandler{}, err
	}
	if logger == nil {
		return ProcessBatchCommandHandler{}, errs.NewValueIsRequiredError("logger")
	}

	return ProcessBatchCommandHandler{
		repoFactory: repoFactory,
		settings:    settings,
		logger:      logger.With("component", "process_batch"),
	}, nil
}

// Handle allocates every order of the batch and returns the shipments with
// the batch total. The context is checked between allocations so a canceled
// run stops promptly.
func (h ProcessBatchCommandHandler) Handle(ctx context.Context, cmd ProcessBatchCommand) (ProcessBatchResult, error) {
	if err := cmd.Validate(); err != nil {
		return ProcessBatchResult{}, err
	}

	repos, err := h.repoFactory.Create(cmd.ReferenceData())
	if err != nil {
		return ProcessBatchResult{}, fmt.Errorf("build repositories: %w", err)
	}

	allocator, err := services.NewShipmentAllocator(repos, h.settings)
	if err != nil {
		return ProcessBatchResult{}, err
	}

	batchID := kernel.NewUUID()
	orders := sortedByPlacement(cmd.Orders())

	h.logger.Info("starting batch run",
		"batch_id", batchID.String(),
		"orders", len(orders),
	)

	result := ProcessBatchResult{
		BatchID:   batchID,
		Shipments: make([]*shipment.Info, 0, len(orders)),
	}

	for _, o := range orders {
		if err = ctx.Err(); err != nil {
			return ProcessBatchResult{}, err
		}

		info, allocErr := allocator.Allocate(o)
		if allocErr != nil {
			h.logger.Error("batch run aborted",
				"batch_id", batchID.String(),
				"order_id", o.ID(),
				"error", allocErr,
			)
			return ProcessBatchResult{}, fmt.Errorf("allocate order %d: %w", o.ID(), allocErr)
		}

		result.Shipments = append(result.Shipments, info)
		result.TotalPrice += info.TotalPrice()
	}

	h.logger.Info("batch run completed",
		"batch_id", batchID.String(),
		"shipments", len(result.Shipments),
		"total_price", result.TotalPrice,
	)

	return result, nil
}

// sortedByPlacement returns a copy ordered by placement time, keeping the
// submission order for equal timestamps.
func sortedByPlacement(orders []*order.Order) []*order.Order {
	sorted := make([]*order.Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PlacedAt().Before(sorted[j].PlacedAt())
	})
	return sorted
}
