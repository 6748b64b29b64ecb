package memory

import (
	"fulfillment/internal/core/domain/model/box"
	"fulfillment/internal/pkg/errs"
)

// BoxTypeRepository is the box catalog. Declaration order of the backing
// slice is preserved because box selection breaks volume ties by first
// encounter.
type BoxTypeRepository struct {
	boxTypes []*box.Type
}

// NewBoxTypeRepository builds the catalog, rejecting duplicate box names.
func NewBoxTypeRepository(boxTypes []*box.Type) (*BoxTypeRepository, error) {
	seen := make(map[string]struct{}, len(boxTypes))
	for _, t := range boxTypes {
		if t == nil {
			return nil, errs.NewValueIsRequiredError("boxType")
		}
		if _, exists := seen[t.Name()]; exists {
			return nil, errs.NewDuplicateKeyError("boxType", t.Name())
		}
		seen[t.Name()] = struct{}{}
	}
	return &BoxTypeRepository{boxTypes: boxTypes}, nil
}

// All returns every box type in declaration order.
func (r *BoxTypeRepository) All() []*box.Type {
	return r.boxTypes
}
