package services

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/box"
	"fulfillment/internal/core/domain/model/item"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// ErrNoSuitableBox is returned when an item exceeds the capacity or footprint
// of every box in the catalog. The order carrying the item cannot be
// fulfilled by any warehouse.
var ErrNoSuitableBox = errors.New("no suitable box")

// BoxSelector picks the shipping box for an item: the minimum-volume catalog
// entry that fits it. Volume ties are broken by catalog declaration order,
// which keeps selection deterministic for a fixed catalog.
type BoxSelector struct {
	boxTypes ports.BoxTypeRepository
}

// NewBoxSelector creates a box selector over the given catalog.
func NewBoxSelector(boxTypes ports.BoxTypeRepository) (BoxSelector, error) {
	if boxTypes == nil {
		return BoxSelector{}, errs.NewValueIsRequiredError("boxTypeRepository")
	}
	return BoxSelector{boxTypes: boxTypes}, nil
}

// SelectBox returns the fitting box with the smallest declared volume.
// Returns ErrNoSuitableBox if no catalog entry fits the item.
func (s BoxSelector) SelectBox(it *item.Item) (*box.Type, error) {
	if it == nil {
		return nil, errs.NewValueIsRequiredError("item")
	}

	var best *box.Type
	for _, bt := range s.boxTypes.All() {
		if !bt.Fits(it) {
			continue
		}
		// Strict comparison keeps the first-encountered box on equal volume.
		if best == nil || bt.Volume() < best.Volume() {
			best = bt
		}
	}

	if best == nil {
		return nil, fmt.Errorf("%w: item %s", ErrNoSuitableBox, it.ID())
	}

	return best, nil
}
