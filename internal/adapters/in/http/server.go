package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"fulfillment/internal/core/application/dispatch"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/dialog"
	"fulfillment/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

const defaultCompletedOrdersLimit = 20

// Server exposes the fulfillment webhook over HTTP, plus the read-side
// endpoints for back-office surfaces. It translates the agent's wire
// format into dispatch requests and hands them to the intent router.
type Server struct {
	router *dispatch.Router

	getMenuHandler            queries.GetMenuQueryHandler
	getCompletedOrdersHandler queries.GetCompletedOrdersQueryHandler

	logger *slog.Logger
}

// NewServer creates an HTTP server around the intent router and the
// query handlers.
func NewServer(
	router *dispatch.Router,
	getMenuHandler queries.GetMenuQueryHandler,
	getCompletedOrdersHandler queries.GetCompletedOrdersQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		router:                    router,
		getMenuHandler:            getMenuHandler,
		getCompletedOrdersHandler: getCompletedOrdersHandler,
		logger:                    logger.With("component", "http"),
	}
}

// HandleWebhook handles POST /webhook - the agent's fulfillment callback.
// Malformed events get an apology response with HTTP 200: the agent relays
// fulfillment text verbatim and treats non-200 as an outage.
func (s *Server) HandleWebhook(ctx echo.Context) error {
	var req WebhookRequest
	if err := ctx.Bind(&req); err != nil {
		s.logger.ErrorContext(ctx.Request().Context(), "Failed to decode webhook payload", "error", err)
		return s.apologize(ctx)
	}

	sessionID, err := dialog.SessionIDFromContexts(toDomainContexts(req.QueryResult.OutputContexts))
	if err != nil {
		s.logger.ErrorContext(ctx.Request().Context(), "Failed to resolve session",
			"session", req.Session, "error", err)
		return s.apologize(ctx)
	}

	response := s.router.Dispatch(ctx.Request().Context(), dispatch.Request{
		Intent:    req.QueryResult.Intent.DisplayName,
		SessionID: sessionID,
		ProjectID: dialog.ProjectIDFromSession(req.Session),
		Params:    dialog.Params(req.QueryResult.Parameters),
		Contexts:  toDomainContexts(req.QueryResult.OutputContexts),
	})

	return ctx.JSON(http.StatusOK, response)
}

// HandleHealth handles GET /health - liveness probe.
func (s *Server) HandleHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetMenu handles GET /api/v1/menu - retrieves the full catalog.
func (s *Server) GetMenu(ctx echo.Context) error {
	items, err := s.getMenuHandler.Handle(ctx.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve menu",
		})
	}

	response := make([]MenuItemResponse, len(items))
	for i, item := range items {
		response[i] = MenuItemResponse{
			ID:        item.ID,
			Name:      item.Name,
			BasePrice: item.BasePrice,
			HasSize:   item.HasSize,
			Sizes:     item.Sizes,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCompletedOrders handles GET /api/v1/orders/completed - lists the most
// recently completed orders, newest first. The optional "limit" query
// parameter caps the listing.
func (s *Server) GetCompletedOrders(ctx echo.Context) error {
	limit := defaultCompletedOrdersLimit
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "Invalid limit: " + raw,
			})
		}
		limit = parsed
	}

	query, err := queries.NewGetCompletedOrdersQuery(limit)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid limit: " + err.Error(),
		})
	}

	orders, err := s.getCompletedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve completed orders",
		})
	}

	response := make([]CompletedOrderResponse, len(orders))
	for i, completed := range orders {
		response[i] = CompletedOrderResponse{
			ID:          completed.ID.String(),
			SessionID:   completed.SessionID,
			CompletedAt: completed.CompletedAt,
			TotalAmount: completed.TotalAmount,
			ItemCount:   completed.ItemCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) apologize(ctx echo.Context) error {
	response := dispatch.NewResponse(
		"Sorry, there was an error processing your request.",
		order.Snapshot{},
		nil,
	)
	return ctx.JSON(http.StatusOK, response)
}
