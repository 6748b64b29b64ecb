// Package http exposes the allocation engine over HTTP. Batch and quote
// endpoints accept the flat-file interchange format as the request body and
// respond with JSON read models.
package http

import (
	"errors"
	"net/http"
	"time"

	"fulfillment/internal/adapters/in/flatfile"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// Error is the JSON error body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Shipment is the JSON read model of one allocated or quoted shipment.
type Shipment struct {
	OrderID            int64     `json:"order_id"`
	Warehouse          string    `json:"warehouse"`
	GuaranteedDelivery time.Time `json:"guaranteed_delivery"`
	Box                string    `json:"box"`
	CarrierPrice       float64   `json:"carrier_price"`
	ExperiencePrice    float64   `json:"experience_price"`
	TotalPrice         float64   `json:"total_price"`
}

// BatchResponse is the JSON body of a completed batch run.
type BatchResponse struct {
	BatchID    string     `json:"batch_id"`
	TotalPrice float64    `json:"total_price"`
	Shipments  []Shipment `json:"shipments"`
}

// QuoteResponse is the JSON body of a quote run: one quote per order in the
// request, none of them committed.
type QuoteResponse struct {
	Quotes []Shipment `json:"quotes"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	processBatchHandler commands.ProcessBatchCommandHandler
	quoteHandler        queries.QuoteShipmentQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	processBatchHandler commands.ProcessBatchCommandHandler,
	quoteHandler queries.QuoteShipmentQueryHandler,
) *Server {
	return &Server{
		processBatchHandler: processBatchHandler,
		quoteHandler:        quoteHandler,
	}
}

// RegisterRoutes attaches the server's endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.POST("/api/v1/batches", s.ProcessBatch)
	e.POST("/api/v1/quotes", s.QuoteShipments)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// ProcessBatch handles POST /api/v1/batches - allocates a full batch.
// The request body is a flat-file interchange document.
func (s *Server) ProcessBatch(ctx echo.Context) error {
	batch, err := flatfile.Parse(ctx.Request().Body)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid batch document: " + err.Error(),
		})
	}

	cmd, err := commands.NewProcessBatchCommand(batch.Data, batch.Orders)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid batch: " + err.Error(),
		})
	}

	result, err := s.processBatchHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return batchError(ctx, err)
	}

	response := BatchResponse{
		BatchID:    result.BatchID.String(),
		TotalPrice: result.TotalPrice,
		Shipments:  make([]Shipment, 0, len(result.Shipments)),
	}
	for _, info := range result.Shipments {
		response.Shipments = append(response.Shipments, Shipment{
			OrderID:            info.OrderID(),
			Warehouse:          info.Warehouse().Name(),
			GuaranteedDelivery: info.GuaranteedDelivery(),
			Box:                info.BoxName(),
			CarrierPrice:       info.CarrierPrice(),
			ExperiencePrice:    info.ExperiencePrice(),
			TotalPrice:         info.TotalPrice(),
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// QuoteShipments handles POST /api/v1/quotes - quotes every order of the
// document without committing stock. The request body is a flat-file
// interchange document.
func (s *Server) QuoteShipments(ctx echo.Context) error {
	batch, err := flatfile.Parse(ctx.Request().Body)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid batch document: " + err.Error(),
		})
	}

	response := QuoteResponse{Quotes: make([]Shipment, 0, len(batch.Orders))}
	for _, o := range batch.Orders {
		query, queryErr := queries.NewQuoteShipmentQuery(batch.Data, o)
		if queryErr != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid quote request: " + queryErr.Error(),
			})
		}

		quote, quoteErr := s.quoteHandler.Handle(ctx.Request().Context(), query)
		if quoteErr != nil {
			return batchError(ctx, quoteErr)
		}

		response.Quotes = append(response.Quotes, Shipment{
			OrderID:            quote.OrderID,
			Warehouse:          quote.Warehouse,
			GuaranteedDelivery: quote.GuaranteedDelivery,
			Box:                quote.BoxName,
			CarrierPrice:       quote.CarrierPrice,
			ExperiencePrice:    quote.ExperiencePrice,
			TotalPrice:         quote.TotalPrice,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// batchError maps allocation failures to 422 and everything else to 500.
func batchError(ctx echo.Context, err error) error {
	if errors.Is(err, services.ErrNoSuitableWarehouse) || errors.Is(err, services.ErrNoSuitableBox) {
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: "Batch cannot be fulfilled: " + err.Error(),
		})
	}
	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: "Batch processing failed: " + err.Error(),
	})
}
