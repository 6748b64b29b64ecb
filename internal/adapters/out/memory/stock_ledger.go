package memory

import (
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/stock"
	"fulfillment/internal/pkg/errs"
)

type stockKey struct {
	itemID    string
	warehouse kernel.Warehouse
}

func (k stockKey) String() string {
	return fmt.Sprintf("%s@%s", k.itemID, k.warehouse)
}

// StockLedger is the mutable remaining-quantity table. Entries keep their
// declaration order per item so candidate enumeration is deterministic.
type StockLedger struct {
	byKey  map[stockKey]*stock.Stock
	byItem map[string][]*stock.Stock
}

// NewStockLedger builds the ledger, rejecting duplicate (item, warehouse)
// keys. Entries are copied so decrements never leak back into the snapshot
// the ledger was built from.
func NewStockLedger(stocks []*stock.Stock) (*StockLedger, error) {
	ledger := &StockLedger{
		byKey:  make(map[stockKey]*stock.Stock, len(stocks)),
		byItem: make(map[string][]*stock.Stock),
	}
	for _, s := range stocks {
		if s == nil {
			return nil, errs.NewValueIsRequiredError("stock")
		}
		key := stockKey{itemID: s.ItemID(), warehouse: s.Warehouse()}
		if _, exists := ledger.byKey[key]; exists {
			return nil, errs.NewDuplicateKeyError("stock", key.String())
		}
		entry, err := stock.NewStock(s.ItemID(), s.Warehouse(), s.Quantity())
		if err != nil {
			return nil, err
		}
		ledger.byKey[key] = entry
		ledger.byItem[s.ItemID()] = append(ledger.byItem[s.ItemID()], entry)
	}
	return ledger, nil
}

// AvailableForItem returns the entries for an item with quantity > 0, in
// declaration order.
func (l *StockLedger) AvailableForItem(itemID string) []*stock.Stock {
	var available []*stock.Stock
	for _, s := range l.byItem[itemID] {
		if s.Quantity() > 0 {
			available = append(available, s)
		}
	}
	return available
}

// QuantityAt returns the current remaining quantity for an (item, warehouse)
// pair.
func (l *StockLedger) QuantityAt(itemID string, warehouse kernel.Warehouse) (int, error) {
	key := stockKey{itemID: itemID, warehouse: warehouse}
	s, ok := l.byKey[key]
	if !ok {
		return 0, errs.NewObjectNotFoundError("stock", key.String())
	}
	return s.Quantity(), nil
}

// Decrement commits one allocation against an (item, warehouse) pair.
func (l *StockLedger) Decrement(itemID string, warehouse kernel.Warehouse) error {
	key := stockKey{itemID: itemID, warehouse: warehouse}
	s, ok := l.byKey[key]
	if !ok {
		return errs.NewObjectNotFoundError("stock", key.String())
	}
	return s.Decrement()
}
