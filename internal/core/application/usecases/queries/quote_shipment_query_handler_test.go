package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/memory"
	"fulfillment/internal/core/application/usecases/queries"
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

func quoteHandler(t *testing.T) queries.QuoteShipmentQueryHandler {
	t.Helper()
	handler, err := queries.NewQuoteShipmentQueryHandler(
		memory.NewFactory(),
		services.DefaultAllocationSettings(),
	)
	require.NoError(t, err)
	return handler
}

// singleLaneData ships item "tv" to "CA" from New York only: Wednesday noon
// departure, 48h transit, one unit of stock.
func singleLaneData(t *testing.T) ports.ReferenceData {
	t.Helper()

	it, err := item.NewItem("tv", 10, 20, 20, 20)
	require.NoError(t, err)
	boxType, err := box.NewType("Small", 50, 30, 30, 30, 27.0)
	require.NoError(t, err)
	pricing, err := carrier.NewPricing(kernel.NewYork, "CA", 0.5)
	require.NoError(t, err)
	window, err := carrier.NewShippingHour(time.Wednesday, 12, 0)
	require.NoError(t, err)
	schedule, err := carrier.NewDepartureSchedule(kernel.NewYork, "CA", []carrier.ShippingHour{window})
	require.NoError(t, err)
	transit, err := carrier.NewTransitTime(kernel.NewYork, "CA", 48)
	require.NoError(t, err)
	st, err := stock.NewStock("tv", kernel.NewYork, 1)
	require.NoError(t, err)

	return ports.ReferenceData{
		Items:              []*item.Item{it},
		BoxTypes:           []*box.Type{boxType},
		CarrierPricings:    []*carrier.Pricing{pricing},
		DepartureSchedules: []*carrier.DepartureSchedule{schedule},
		TransitTimes:       []*carrier.TransitTime{transit},
		Stocks:             []*stock.Stock{st},
	}
}

func TestQuoteShipmentQueryHandler(t *testing.T) {
	placed := time.Date(2019, 2, 13, 10, 0, 0, 0, time.UTC)

	t.Run("returns the shipment read model", func(t *testing.T) {
		o, err := order.NewOrder(1, placed, "tv", "CA")
		require.NoError(t, err)
		query, err := queries.NewQuoteShipmentQuery(singleLaneData(t), o)
		require.NoError(t, err)

		response, err := quoteHandler(t).Handle(context.Background(), query)

		require.NoError(t, err)
		assert.Equal(t, int64(1), response.OrderID)
		assert.Equal(t, "New York", response.Warehouse)
		assert.Equal(t, "Small", response.BoxName)
		assert.Equal(t, time.Date(2019, 2, 15, 16, 0, 0, 0, time.UTC), response.GuaranteedDelivery)
		assert.InDelta(t, 13.5, response.CarrierPrice, 1e-9)
		assert.InDelta(t, 1.62, response.ExperiencePrice, 1e-9)
		assert.InDelta(t, 15.12, response.TotalPrice, 1e-9)
	})

	t.Run("quoting never depletes stock", func(t *testing.T) {
		// A single unit of stock serves any number of quotes.
		data := singleLaneData(t)
		handler := quoteHandler(t)

		for id := int64(1); id <= 3; id++ {
			o, err := order.NewOrder(id, placed, "tv", "CA")
			require.NoError(t, err)
			query, err := queries.NewQuoteShipmentQuery(data, o)
			require.NoError(t, err)

			response, err := handler.Handle(context.Background(), query)
			require.NoError(t, err)
			assert.Equal(t, "New York", response.Warehouse)
		}
	})

	t.Run("fails when no warehouse holds stock", func(t *testing.T) {
		data := singleLaneData(t)
		radio, err := item.NewItem("radio", 5, 10, 10, 10)
		require.NoError(t, err)
		data.Items = append(data.Items, radio)

		o, err := order.NewOrder(1, placed, "radio", "CA")
		require.NoError(t, err)
		query, err := queries.NewQuoteShipmentQuery(data, o)
		require.NoError(t, err)

		_, err = quoteHandler(t).Handle(context.Background(), query)

		require.ErrorIs(t, err, services.ErrNoSuitableWarehouse)
	})

	t.Run("rejects an unconstructed query", func(t *testing.T) {
		var query queries.QuoteShipmentQuery

		_, err := quoteHandler(t).Handle(context.Background(), query)

		require.ErrorIs(t, err, queries.ErrQuoteShipmentQueryIsNotConstructed)
	})
}
