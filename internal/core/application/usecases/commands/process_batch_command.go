package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrProcessBatchCommandIsNotConstructed = errors.New(
	"ProcessBatchCommand must be created via NewProcessBatchCommand constructor",
)

// ProcessBatchCommand represents a request to allocate a batch of orders
// against one reference-data snapshot. The snapshot carries the catalogs and
// the initial stock; the orders are allocated against it sequentially.
//
// Example:
//
//	cmd, err := NewProcessBatchCommand(data, orders)
//	if err != nil {
//	    return fmt.Errorf("invalid batch: %w", err)
//	}
//
//	handler := NewProcessBatchCommandHandler(factory, settings, logger)
//	result, err := handler.Handle(ctx, cmd)
type ProcessBatchCommand struct { //nolint:recvcheck //using for validation
	referenceData ports.ReferenceData
	orders        []*order.Order

	guard guard.ConstructorGuard
}

// NewProcessBatchCommand creates a batch allocation command. The batch may be
// empty; every present order must be constructed.
func NewProcessBatchCommand(referenceData ports.ReferenceData, orders []*order.Order) (ProcessBatchCommand, error) {
	cmd := ProcessBatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReferenceData(referenceData),
		cmd.setOrders(orders),
	); err != nil {
		return ProcessBatchCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrProcessBatchCommandIsNotConstructed if validation fails.
func (c ProcessBatchCommand) Validate() error {
	return c.guard.Validate(ErrProcessBatchCommandIsNotConstructed)
}

// ReferenceData returns the catalogs and initial stock of the batch.
func (c ProcessBatchCommand) ReferenceData() ports.ReferenceData {
	return c.referenceData
}

// Orders returns the orders of the batch in submission order.
func (c ProcessBatchCommand) Orders() []*order.Order {
	return c.orders
}

func (c *ProcessBatchCommand) setReferenceData(referenceData ports.ReferenceData) error {
	c.referenceData = referenceData
	return nil
}

func (c *ProcessBatchCommand) setOrders(orders []*order.Order) error {
	for _, o := range orders {
		if o == nil {
			return errs.NewValueIsRequiredError("order")
		}
	}

	c.orders = orders
	return nil
}
