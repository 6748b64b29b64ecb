package kernel_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWarehouseFromName(t *testing.T) {
	t.Run("resolves known display names", func(t *testing.T) {
		ny, err := kernel.WarehouseFromName("New York")
		require.NoError(t, err)
		assert.Equal(t, kernel.NewYork, ny)

		sf, err := kernel.WarehouseFromName("San Francisco")
		require.NoError(t, err)
		assert.Equal(t, kernel.SanFrancisco, sf)
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := kernel.WarehouseFromName("Chicago")
		require.Error(t, err)
		require.ErrorIs(t, err, kernel.ErrWarehouseIsInvalid)
	})

	t.Run("names are case sensitive", func(t *testing.T) {
		_, err := kernel.WarehouseFromName("new york")
		require.Error(t, err)
	})
}

func TestWarehouse_Name(t *testing.T) {
	assert.Equal(t, "New York", kernel.NewYork.Name())
	assert.Equal(t, "San Francisco", kernel.SanFrancisco.Name())
}

func TestWarehouse_String(t *testing.T) {
	assert.Equal(t, "NEW_YORK", kernel.NewYork.String())
	assert.Equal(t, "SAN_FRANCISCO", kernel.SanFrancisco.String())
}

func TestWarehouse_TimeZoneOffset(t *testing.T) {
	assert.Equal(t, -4*time.Hour, kernel.NewYork.TimeZoneOffset())
	assert.Equal(t, -7*time.Hour, kernel.SanFrancisco.TimeZoneOffset())
}

func TestWarehouse_Validate(t *testing.T) {
	t.Run("members of the closed set are valid", func(t *testing.T) {
		for _, w := range kernel.AllWarehouses() {
			require.NoError(t, w.Validate())
		}
	})

	t.Run("values outside the set are invalid", func(t *testing.T) {
		err := kernel.Warehouse(42).Validate()
		require.Error(t, err)
		require.ErrorIs(t, err, kernel.ErrWarehouseIsInvalid)
	})
}

func TestAllWarehouses(t *testing.T) {
	assert.Equal(t, []kernel.Warehouse{kernel.NewYork, kernel.SanFrancisco}, kernel.AllWarehouses())
}
