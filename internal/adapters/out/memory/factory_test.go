package memory_test

import (
	"testing"
	"time"

	"fulfillment/internal/adapters/out/memory"
	"fulfillment/internal/core/domain/model/box"
	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/item"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/stock"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, id string) *item.Item {
	t.Helper()
	it, err := item.NewItem(id, 10, 20, 20, 20)
	require.NoError(t, err)
	return it
}

func mustStock(t *testing.T, itemID string, warehouse kernel.Warehouse, quantity int) *stock.Stock {
	t.Helper()
	s, err := stock.NewStock(itemID, warehouse, quantity)
	require.NoError(t, err)
	return s
}

func TestFactoryCreate(t *testing.T) {
	t.Run("builds a full repository set from a snapshot", func(t *testing.T) {
		// Given
		boxType, err := box.NewType("Small", 50, 30, 30, 30, 27.0)
		require.NoError(t, err)
		pricing, err := carrier.NewPricing(kernel.NewYork, "CA", 1.5)
		require.NoError(t, err)
		window, err := carrier.NewShippingHour(time.Monday, 10, 30)
		require.NoError(t, err)
		schedule, err := carrier.NewDepartureSchedule(kernel.NewYork, "CA", []carrier.ShippingHour{window})
		require.NoError(t, err)
		transit, err := carrier.NewTransitTime(kernel.NewYork, "CA", 72)
		require.NoError(t, err)

		data := ports.ReferenceData{
			Items:              []*item.Item{mustItem(t, "tv")},
			BoxTypes:           []*box.Type{boxType},
			CarrierPricings:    []*carrier.Pricing{pricing},
			DepartureSchedules: []*carrier.DepartureSchedule{schedule},
			TransitTimes:       []*carrier.TransitTime{transit},
			Stocks:             []*stock.Stock{mustStock(t, "tv", kernel.NewYork, 3)},
		}

		// When
		repos, err := memory.NewFactory().Create(data)

		// Then
		require.NoError(t, err)

		it, err := repos.Items.FindByID("tv")
		require.NoError(t, err)
		assert.Equal(t, "tv", it.ID())

		require.Len(t, repos.BoxTypes.All(), 1)

		p, err := repos.CarrierPricings.FindByRoute(kernel.NewYork, "CA")
		require.NoError(t, err)
		assert.InDelta(t, 1.5, p.VolumePrice(), 1e-9)

		s, err := repos.DepartureSchedules.FindByRoute(kernel.NewYork, "CA")
		require.NoError(t, err)
		assert.Len(t, s.Hours(), 1)

		tt, err := repos.TransitTimes.FindByRoute(kernel.NewYork, "CA")
		require.NoError(t, err)
		assert.Equal(t, 72, tt.Hours())

		qty, err := repos.Ledger.QuantityAt("tv", kernel.NewYork)
		require.NoError(t, err)
		assert.Equal(t, 3, qty)
	})

	t.Run("rejects duplicate item identifiers", func(t *testing.T) {
		data := ports.ReferenceData{
			Items: []*item.Item{mustItem(t, "tv"), mustItem(t, "tv")},
		}

		_, err := memory.NewFactory().Create(data)

		require.ErrorIs(t, err, errs.ErrDuplicateKey)
	})

	t.Run("rejects duplicate stock keys", func(t *testing.T) {
		data := ports.ReferenceData{
			Stocks: []*stock.Stock{
				mustStock(t, "tv", kernel.NewYork, 1),
				mustStock(t, "tv", kernel.NewYork, 2),
			},
		}

		_, err := memory.NewFactory().Create(data)

		require.ErrorIs(t, err, errs.ErrDuplicateKey)
	})
}

func TestStockLedger(t *testing.T) {
	t.Run("skips exhausted entries and keeps declaration order", func(t *testing.T) {
		ledger, err := memory.NewStockLedger([]*stock.Stock{
			mustStock(t, "tv", kernel.SanFrancisco, 2),
			mustStock(t, "tv", kernel.NewYork, 0),
			mustStock(t, "radio", kernel.NewYork, 5),
		})
		require.NoError(t, err)

		available := ledger.AvailableForItem("tv")

		require.Len(t, available, 1)
		assert.Equal(t, kernel.SanFrancisco, available[0].Warehouse())
	})

	t.Run("decrement reduces quantity and eventually exhausts the entry", func(t *testing.T) {
		ledger, err := memory.NewStockLedger([]*stock.Stock{
			mustStock(t, "tv", kernel.NewYork, 2),
		})
		require.NoError(t, err)

		require.NoError(t, ledger.Decrement("tv", kernel.NewYork))
		require.NoError(t, ledger.Decrement("tv", kernel.NewYork))

		qty, err := ledger.QuantityAt("tv", kernel.NewYork)
		require.NoError(t, err)
		assert.Equal(t, 0, qty)
		assert.Empty(t, ledger.AvailableForItem("tv"))

		require.ErrorIs(t, ledger.Decrement("tv", kernel.NewYork), stock.ErrStockExhausted)
	})

	t.Run("unknown keys are integrity errors", func(t *testing.T) {
		ledger, err := memory.NewStockLedger(nil)
		require.NoError(t, err)

		_, err = ledger.QuantityAt("tv", kernel.NewYork)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)

		require.ErrorIs(t, ledger.Decrement("tv", kernel.NewYork), errs.ErrObjectNotFound)
	})
}
