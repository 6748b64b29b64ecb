package services_test

import (
	"testing"
	"time"

	"fulfillment/internal/adapters/out/memory"
	"fulfillment/internal/core/domain/model/box"
	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/item"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/stock"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allocatorFixture describes one two-warehouse setup shipping item "tv" to
// state "CA". Reference orders are placed Wednesday 2019-02-13 10:00.
type allocatorFixture struct {
	volumePriceNY float64
	volumePriceSF float64
	windowNY      carrier.ShippingHour
	windowSF      carrier.ShippingHour
	stockNY       int
	stockSF       int

	// boxTypes overrides the default single "Small" box catalog.
	boxTypes []*box.Type
}

func (f allocatorFixture) build(t *testing.T) (*services.ShipmentAllocator, ports.Repositories) {
	t.Helper()

	it, err := item.NewItem("tv", 10, 20, 20, 20)
	require.NoError(t, err)

	pricingNY, err := carrier.NewPricing(kernel.NewYork, "CA", f.volumePriceNY)
	require.NoError(t, err)
	pricingSF, err := carrier.NewPricing(kernel.SanFrancisco, "CA", f.volumePriceSF)
	require.NoError(t, err)

	scheduleNY, err := carrier.NewDepartureSchedule(kernel.NewYork, "CA",
		[]carrier.ShippingHour{f.windowNY})
	require.NoError(t, err)
	scheduleSF, err := carrier.NewDepartureSchedule(kernel.SanFrancisco, "CA",
		[]carrier.ShippingHour{f.windowSF})
	require.NoError(t, err)

	transitNY, err := carrier.NewTransitTime(kernel.NewYork, "CA", 48)
	require.NoError(t, err)
	transitSF, err := carrier.NewTransitTime(kernel.SanFrancisco, "CA", 48)
	require.NoError(t, err)

	stockNY, err := stock.NewStock("tv", kernel.NewYork, f.stockNY)
	require.NoError(t, err)
	stockSF, err := stock.NewStock("tv", kernel.SanFrancisco, f.stockSF)
	require.NoError(t, err)

	boxTypes := f.boxTypes
	if boxTypes == nil {
		boxTypes = []*box.Type{mustBoxType(t, "Small", 50, 30, 30, 30, 27.0)}
	}

	repos, err := memory.NewFactory().Create(ports.ReferenceData{
		Items:              []*item.Item{it},
		BoxTypes:           boxTypes,
		CarrierPricings:    []*carrier.Pricing{pricingNY, pricingSF},
		DepartureSchedules: []*carrier.DepartureSchedule{scheduleNY, scheduleSF},
		TransitTimes:       []*carrier.TransitTime{transitNY, transitSF},
		Stocks:             []*stock.Stock{stockNY, stockSF},
	})
	require.NoError(t, err)

	allocator, err := services.NewShipmentAllocator(repos, services.AllocationSettings{
		PreparationTime:       4 * time.Hour,
		ExperienceRatePerHour: 0.03,
	})
	require.NoError(t, err)

	return allocator, repos
}

func tvOrder(t *testing.T, id int64) *order.Order {
	t.Helper()
	placed := time.Date(2019, 2, 13, 10, 0, 0, 0, time.UTC)
	o, err := order.NewOrder(id, placed, "tv", "CA")
	require.NoError(t, err)
	return o
}

func quantityAt(t *testing.T, repos ports.Repositories, warehouse kernel.Warehouse) int {
	t.Helper()
	qty, err := repos.Ledger.QuantityAt("tv", warehouse)
	require.NoError(t, err)
	return qty
}

func TestShipmentAllocatorAllocate(t *testing.T) {
	t.Run("picks the warehouse with the lowest total price", func(t *testing.T) {
		// Given identical Wednesday noon windows, San Francisco's package is
		// ready at 07:00 local and New York's at 10:00 local, so both catch
		// the same-day departure. San Francisco's cheaper lane wins despite
		// its later delivery.
		allocator, repos := allocatorFixture{
			volumePriceNY: 1.0,
			volumePriceSF: 0.5,
			windowNY:      mustWindow(t, time.Wednesday, 12, 0),
			windowSF:      mustWindow(t, time.Wednesday, 12, 0),
			stockNY:       3,
			stockSF:       3,
		}.build(t)

		// When
		info, err := allocator.Allocate(tvOrder(t, 1))

		// Then
		require.NoError(t, err)
		assert.Equal(t, kernel.SanFrancisco, info.Warehouse())
		assert.Equal(t, "Small", info.BoxName())
		assert.Equal(t, time.Date(2019, 2, 15, 19, 0, 0, 0, time.UTC), info.GuaranteedDelivery())
		assert.InDelta(t, 13.5, info.CarrierPrice(), 1e-9)
		assert.InDelta(t, 1.71, info.ExperiencePrice(), 1e-9)
		assert.InDelta(t, 15.21, info.TotalPrice(), 1e-9)

		assert.Equal(t, 2, quantityAt(t, repos, kernel.SanFrancisco))
		assert.Equal(t, 3, quantityAt(t, repos, kernel.NewYork))
	})

	t.Run("breaks a price tie by remaining stock", func(t *testing.T) {
		// Both lanes depart 16:00, deliver at the same instant and cost the
		// same, so only the deeper stock differs.
		fixture := allocatorFixture{
			volumePriceNY: 1.0,
			volumePriceSF: 1.0,
			windowNY:      mustWindow(t, time.Wednesday, 12, 0),
			windowSF:      mustWindow(t, time.Wednesday, 9, 0),
			stockNY:       1,
			stockSF:       5,
		}

		allocator, _ := fixture.build(t)
		info, err := allocator.Allocate(tvOrder(t, 1))
		require.NoError(t, err)
		assert.Equal(t, kernel.SanFrancisco, info.Warehouse())

		fixture.stockNY, fixture.stockSF = 5, 1
		allocator, _ = fixture.build(t)
		info, err = allocator.Allocate(tvOrder(t, 1))
		require.NoError(t, err)
		assert.Equal(t, kernel.NewYork, info.Warehouse())
	})

	t.Run("falls over to the next warehouse once the cheapest is exhausted", func(t *testing.T) {
		allocator, repos := allocatorFixture{
			volumePriceNY: 0.5,
			volumePriceSF: 1.0,
			windowNY:      mustWindow(t, time.Wednesday, 12, 0),
			windowSF:      mustWindow(t, time.Wednesday, 12, 0),
			stockNY:       1,
			stockSF:       5,
		}.build(t)

		first, err := allocator.Allocate(tvOrder(t, 1))
		require.NoError(t, err)
		assert.Equal(t, kernel.NewYork, first.Warehouse())

		second, err := allocator.Allocate(tvOrder(t, 2))
		require.NoError(t, err)
		assert.Equal(t, kernel.SanFrancisco, second.Warehouse())

		assert.Equal(t, 0, quantityAt(t, repos, kernel.NewYork))
		assert.Equal(t, 4, quantityAt(t, repos, kernel.SanFrancisco))
	})

	t.Run("fails when no warehouse holds stock", func(t *testing.T) {
		allocator, _ := allocatorFixture{
			volumePriceNY: 1.0,
			volumePriceSF: 1.0,
			windowNY:      mustWindow(t, time.Wednesday, 12, 0),
			windowSF:      mustWindow(t, time.Wednesday, 12, 0),
		}.build(t)

		_, err := allocator.Allocate(tvOrder(t, 1))

		require.ErrorIs(t, err, services.ErrNoSuitableWarehouse)
	})

	t.Run("fails when the item fits no box", func(t *testing.T) {
		allocator, _ := allocatorFixture{
			volumePriceNY: 1.0,
			volumePriceSF: 1.0,
			windowNY:      mustWindow(t, time.Wednesday, 12, 0),
			windowSF:      mustWindow(t, time.Wednesday, 12, 0),
			stockNY:       1,
			stockSF:       1,
			boxTypes:      []*box.Type{mustBoxType(t, "Tiny", 5, 10, 10, 10, 1.0)},
		}.build(t)

		_, err := allocator.Allocate(tvOrder(t, 1))

		require.ErrorIs(t, err, services.ErrNoSuitableBox)
	})
}

func TestShipmentAllocatorQuote(t *testing.T) {
	t.Run("quote leaves the ledger untouched", func(t *testing.T) {
		allocator, repos := allocatorFixture{
			volumePriceNY: 1.0,
			volumePriceSF: 0.5,
			windowNY:      mustWindow(t, time.Wednesday, 12, 0),
			windowSF:      mustWindow(t, time.Wednesday, 12, 0),
			stockNY:       3,
			stockSF:       3,
		}.build(t)

		quoted, err := allocator.Quote(tvOrder(t, 1))
		require.NoError(t, err)

		assert.Equal(t, 3, quantityAt(t, repos, kernel.SanFrancisco))
		assert.Equal(t, 3, quantityAt(t, repos, kernel.NewYork))

		allocated, err := allocator.Allocate(tvOrder(t, 1))
		require.NoError(t, err)
		assert.Equal(t, quoted.Warehouse(), allocated.Warehouse())
		assert.InDelta(t, quoted.TotalPrice(), allocated.TotalPrice(), 1e-9)
	})
}
