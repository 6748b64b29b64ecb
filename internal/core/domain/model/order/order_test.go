package order_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	placedAt := time.Date(2019, time.May, 7, 12, 45, 0, 0, time.UTC)

	t.Run("creates a valid order", func(t *testing.T) {
		o, err := order.NewOrder(1001, placedAt, "I1", "CA")

		require.NoError(t, err)
		assert.Equal(t, int64(1001), o.ID())
		assert.Equal(t, placedAt, o.PlacedAt())
		assert.Equal(t, "I1", o.ItemID())
		assert.Equal(t, "CA", o.TargetState())
	})

	t.Run("rejects non-positive identifiers", func(t *testing.T) {
		_, err := order.NewOrder(0, placedAt, "I1", "CA")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.NewOrder(-1, placedAt, "I1", "CA")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("requires a timestamp", func(t *testing.T) {
		_, err := order.NewOrder(1001, time.Time{}, "I1", "CA")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires item and destination", func(t *testing.T) {
		_, err := order.NewOrder(1001, placedAt, "", "CA")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = order.NewOrder(1001, placedAt, "I1", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("aggregates all validation failures", func(t *testing.T) {
		_, err := order.NewOrder(0, time.Time{}, "", "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
