package services_test

import (
	"testing"

	"fulfillment/internal/adapters/out/memory"
	"fulfillment/internal/core/domain/model/box"
	"fulfillment/internal/core/domain/model/item"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBoxType(t *testing.T, name string, maxWeight, length, width, height int, volume float64) *box.Type {
	t.Helper()
	bt, err := box.NewType(name, maxWeight, length, width, height, volume)
	require.NoError(t, err)
	return bt
}

func newBoxSelector(t *testing.T, boxTypes ...*box.Type) services.BoxSelector {
	t.Helper()
	repo, err := memory.NewBoxTypeRepository(boxTypes)
	require.NoError(t, err)
	selector, err := services.NewBoxSelector(repo)
	require.NoError(t, err)
	return selector
}

func TestBoxSelectorSelectBox(t *testing.T) {
	t.Run("picks the smallest fitting box by volume", func(t *testing.T) {
		// Given
		selector := newBoxSelector(t,
			mustBoxType(t, "Large", 100, 80, 80, 80, 512.0),
			mustBoxType(t, "Small", 50, 30, 30, 30, 27.0),
			mustBoxType(t, "Medium", 80, 50, 50, 50, 125.0),
		)
		it, err := item.NewItem("tv", 20, 25, 25, 25)
		require.NoError(t, err)

		// When
		bt, err := selector.SelectBox(it)

		// Then
		require.NoError(t, err)
		assert.Equal(t, "Small", bt.Name())
	})

	t.Run("skips boxes the item exceeds by weight", func(t *testing.T) {
		selector := newBoxSelector(t,
			mustBoxType(t, "Small", 10, 30, 30, 30, 27.0),
			mustBoxType(t, "Sturdy", 100, 30, 30, 30, 28.0),
		)
		it, err := item.NewItem("anvil", 60, 25, 25, 25)
		require.NoError(t, err)

		bt, err := selector.SelectBox(it)

		require.NoError(t, err)
		assert.Equal(t, "Sturdy", bt.Name())
	})

	t.Run("keeps the first catalog entry on equal volume", func(t *testing.T) {
		selector := newBoxSelector(t,
			mustBoxType(t, "First", 50, 30, 30, 30, 27.0),
			mustBoxType(t, "Second", 50, 30, 30, 30, 27.0),
		)
		it, err := item.NewItem("radio", 5, 10, 10, 10)
		require.NoError(t, err)

		bt, err := selector.SelectBox(it)

		require.NoError(t, err)
		assert.Equal(t, "First", bt.Name())
	})

	t.Run("fails when no box fits", func(t *testing.T) {
		selector := newBoxSelector(t,
			mustBoxType(t, "Small", 50, 30, 30, 30, 27.0),
		)
		it, err := item.NewItem("piano", 200, 150, 100, 120)
		require.NoError(t, err)

		_, err = selector.SelectBox(it)

		require.ErrorIs(t, err, services.ErrNoSuitableBox)
	})
}
