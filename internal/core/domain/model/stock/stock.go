// Package stock provides the stock ledger entry, the only mutable state in
// the system. Each entry holds the remaining quantity of one item in one
// warehouse; successful allocations decrement it by exactly one and the
// quantity never goes negative.
package stock

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrStockExhausted is returned when a decrement is attempted on an entry
// whose remaining quantity is already zero.
var ErrStockExhausted = errors.New("stock is exhausted")

// Stock is one ledger entry: the remaining quantity of an item held in a
// warehouse. The (itemID, warehouse) pair is the natural key; at most one
// entry per pair may exist, which the ledger enforces at load time.
type Stock struct {
	itemID    string
	warehouse kernel.Warehouse
	quantity  int
}

// NewStock creates a ledger entry with a non-negative starting quantity.
func NewStock(itemID string, warehouse kernel.Warehouse, quantity int) (*Stock, error) {
	s := &Stock{}

	if err := errors.Join(
		s.setItemID(itemID),
		s.setWarehouse(warehouse),
		s.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// ItemID returns the item this entry counts.
func (s *Stock) ItemID() string {
	return s.itemID
}

// Warehouse returns the warehouse holding the stock.
func (s *Stock) Warehouse() kernel.Warehouse {
	return s.warehouse
}

// Quantity returns the remaining quantity.
func (s *Stock) Quantity() int {
	return s.quantity
}

// Decrement reduces the remaining quantity by exactly one.
// Returns ErrStockExhausted if the quantity is already zero, keeping the
// never-negative invariant.
func (s *Stock) Decrement() error {
	if s.quantity == 0 {
		return fmt.Errorf("%w: item %s at %s", ErrStockExhausted, s.itemID, s.warehouse)
	}
	s.quantity--
	return nil
}

func (s *Stock) setItemID(itemID string) error {
	if itemID == "" {
		return errs.NewValueIsRequiredError("itemId")
	}
	s.itemID = itemID
	return nil
}

func (s *Stock) setWarehouse(warehouse kernel.Warehouse) error {
	if err := warehouse.Validate(); err != nil {
		return err
	}
	s.warehouse = warehouse
	return nil
}

func (s *Stock) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", quantity))
	}
	s.quantity = quantity
	return nil
}
