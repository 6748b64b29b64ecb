// Package box provides the BoxType catalog entry and the fit predicate used
// by box selection. A box fits an item when the item's height and weight are
// within capacity and its footprint fits the box footprint, allowing a single
// 90-degree rotation. The declared volume is an authoritative input field and
// is never re-derived from the dimensions.
package box

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/item"
	"fulfillment/internal/pkg/errs"
)

// Type is a shipping-box catalog entry: interior footprint, weight capacity
// and declared volume. Instances are created once at reference-data load time
// and are immutable.
type Type struct {
	name      string
	maxWeight int
	length    int
	width     int
	height    int
	volume    float64
}

// NewType creates a box type, validating that the name is present, the
// capacity and dimensions are positive, and the declared volume is positive.
func NewType(name string, maxWeight, length, width, height int, volume float64) (*Type, error) {
	t := &Type{}

	if err := errors.Join(
		t.setName(name),
		t.setMaxWeight(maxWeight),
		t.setDimensions(length, width, height),
		t.setVolume(volume),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// Name returns the box type name, the natural key of the box catalog.
func (t *Type) Name() string {
	return t.name
}

// MaxWeight returns the maximum item weight the box can carry.
func (t *Type) MaxWeight() int {
	return t.maxWeight
}

// Length returns one interior footprint edge.
func (t *Type) Length() int {
	return t.length
}

// Width returns the other interior footprint edge.
func (t *Type) Width() int {
	return t.width
}

// Height returns the interior height.
func (t *Type) Height() int {
	return t.height
}

// Volume returns the declared volume of the box. It is an authoritative
// catalog field, consistent with the dimensions but not derived from them.
func (t *Type) Volume() float64 {
	return t.volume
}

// Fits reports whether the item can be packed into this box: the box height
// and weight capacity must cover the item, and the item footprint must fit
// the box footprint either directly or rotated by 90 degrees.
func (t *Type) Fits(it *item.Item) bool {
	if t.height < it.Height() || t.maxWeight < it.Weight() {
		return false
	}

	direct := t.length >= it.Length() && t.width >= it.Width()
	rotated := t.length >= it.Width() && t.width >= it.Length()
	return direct || rotated
}

func (t *Type) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("boxType")
	}
	t.name = name
	return nil
}

func (t *Type) setMaxWeight(maxWeight int) error {
	if maxWeight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("maxWeight",
			fmt.Errorf("%d is not greater than 0", maxWeight))
	}
	t.maxWeight = maxWeight
	return nil
}

func (t *Type) setDimensions(length, width, height int) error {
	if length <= 0 || width <= 0 || height <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("dimensions",
			fmt.Errorf("%dx%dx%d must all be greater than 0", length, width, height))
	}
	t.length = length
	t.width = width
	t.height = height
	return nil
}

func (t *Type) setVolume(volume float64) error {
	if volume <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("volume",
			fmt.Errorf("%g is not greater than 0", volume))
	}
	t.volume = volume
	return nil
}
