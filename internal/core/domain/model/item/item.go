// Package item provides the Item entity: the immutable physical description
// of a sellable good, loaded once from reference data before any order is
// processed. Dimensions are in centimeters and weight in grams; they drive
// box selection only and are never mutated.
package item

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Item describes the physical characteristics of a sellable good.
// Instances are created once at reference-data load time and are immutable.
type Item struct {
	id     string
	weight int
	length int
	width  int
	height int
}

// NewItem creates an Item, validating that the identifier is present and all
// physical attributes are positive.
func NewItem(id string, weight, length, width, height int) (*Item, error) {
	it := &Item{}

	if err := errors.Join(
		it.setID(id),
		it.setWeight(weight),
		it.setDimensions(length, width, height),
	); err != nil {
		return nil, err
	}

	return it, nil
}

// ID returns the item identifier, the natural key of the item catalog.
func (i *Item) ID() string {
	return i.id
}

// Weight returns the item weight.
func (i *Item) Weight() int {
	return i.weight
}

// Length returns the longest horizontal footprint edge as declared in the catalog.
func (i *Item) Length() int {
	return i.length
}

// Width returns the other horizontal footprint edge.
func (i *Item) Width() int {
	return i.width
}

// Height returns the vertical dimension.
func (i *Item) Height() int {
	return i.height
}

func (i *Item) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("itemId")
	}
	i.id = id
	return nil
}

func (i *Item) setWeight(weight int) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%d is not greater than 0", weight))
	}
	i.weight = weight
	return nil
}

func (i *Item) setDimensions(length, width, height int) error {
	if length <= 0 || width <= 0 || height <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("dimensions",
			fmt.Errorf("%dx%dx%d must all be greater than 0", length, width, height))
	}
	i.length = length
	i.width = width
	i.height = height
	return nil
}
