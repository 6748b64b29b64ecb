package memory

import (
	"fulfillment/internal/core/domain/model/item"
	"fulfillment/internal/pkg/errs"
)

// ItemRepository is a map-backed item catalog.
type ItemRepository struct {
	items map[string]*item.Item
}

// NewItemRepository builds the catalog, rejecting duplicate item identifiers.
func NewItemRepository(items []*item.Item) (*ItemRepository, error) {
	byID := make(map[string]*item.Item, len(items))
	for _, it := range items {
		if it == nil {
			return nil, errs.NewValueIsRequiredError("item")
		}
		if _, exists := byID[it.ID()]; exists {
			return nil, errs.NewDuplicateKeyError("item", it.ID())
		}
		byID[it.ID()] = it
	}
	return &ItemRepository{items: byID}, nil
}

// FindByID resolves an item by its identifier.
func (r *ItemRepository) FindByID(itemID string) (*item.Item, error) {
	it, ok := r.items[itemID]
	if !ok {
		return nil, errs.NewObjectNotFoundError("item", itemID)
	}
	return it, nil
}
