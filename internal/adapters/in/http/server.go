// Package http provides the REST adapter for the booking core.
// It translates HTTP requests into commands and queries, and domain errors
// into status codes: validation failures map to 400, missing objects to 404,
// and state conflicts (terminal flow, missing verification, locked queue,
// expired slot) to 409.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"ironweb/internal/core/application/usecases/commands"
	"ironweb/internal/core/application/usecases/queries"
	"ironweb/internal/core/domain/model/agentday"
	"ironweb/internal/core/domain/model/kernel"
	"ironweb/internal/core/domain/model/order"
	"ironweb/internal/core/domain/model/tier"
	"ironweb/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler    commands.CreateOrderCommandHandler
	advanceStepHandler    commands.AdvanceOrderStepCommandHandler
	assignAgentHandler    commands.AssignAgentCommandHandler
	swapOrdersHandler     commands.SwapAgentOrdersCommandHandler
	lockSequenceHandler   commands.LockAgentSequenceCommandHandler
	unlockSequenceHandler commands.UnlockAgentSequenceCommandHandler

	// Query handlers
	listItemsHandler      queries.ListBookableItemsQueryHandler
	availableSlotsHandler queries.GetAvailableSlotsQueryHandler
	priceQuoteHandler     queries.GetPriceQuoteQueryHandler
	agentOrdersHandler    queries.GetAgentOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	advanceStepHandler commands.AdvanceOrderStepCommandHandler,
	assignAgentHandler commands.AssignAgentCommandHandler,
	swapOrdersHandler commands.SwapAgentOrdersCommandHandler,
	lockSequenceHandler commands.LockAgentSequenceCommandHandler,
	unlockSequenceHandler commands.UnlockAgentSequenceCommandHandler,
	listItemsHandler queries.ListBookableItemsQueryHandler,
	availableSlotsHandler queries.GetAvailableSlotsQueryHandler,
	priceQuoteHandler queries.GetPriceQuoteQueryHandler,
	agentOrdersHandler queries.GetAgentOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:    createOrderHandler,
		advanceStepHandler:    advanceStepHandler,
		assignAgentHandler:    assignAgentHandler,
		swapOrdersHandler:     swapOrdersHandler,
		lockSequenceHandler:   lockSequenceHandler,
		unlockSequenceHandler: unlockSequenceHandler,
		listItemsHandler:      listItemsHandler,
		availableSlotsHandler: availableSlotsHandler,
		priceQuoteHandler:     priceQuoteHandler,
		agentOrdersHandler:    agentOrdersHandler,
	}
}

// requestTimeout bounds every API request. A stalled client or database
// call fails with a context deadline instead of holding the connection
// open indefinitely.
const requestTimeout = 30 * time.Second

// withRequestTimeout attaches a deadline to the request context so every
// downstream call (handlers, repositories, the database driver) aborts once
// the budget is spent.
func withRequestTimeout(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
		defer cancel()

		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

// RegisterRoutes mounts all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1", withRequestTimeout)

	api.GET("/items", s.GetItems)
	api.GET("/slots", s.GetSlots)
	api.POST("/quotes", s.CreateQuote)
	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/advance", s.AdvanceOrderStep)
	api.POST("/orders/:id/agent", s.AssignAgent)
	api.GET("/agents/:id/orders", s.GetAgentOrders)
	api.POST("/agents/:id/sequence/swap", s.SwapAgentOrders)
	api.POST("/agents/:id/sequence/lock", s.LockAgentSequence)
	api.POST("/agents/:id/sequence/unlock", s.UnlockAgentSequence)
}

// GetItems handles GET /api/v1/items - retrieves the garment catalog.
func (s *Server) GetItems(ctx echo.Context) error {
	query := queries.NewListBookableItemsQuery()

	items, err := s.listItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve catalog",
		})
	}

	response := make([]ItemResponse, len(items))
	for i, it := range items {
		response[i] = ItemResponse{
			ID:        it.ID.String(),
			Name:      it.Name,
			UnitPrice: it.UnitPrice.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetSlots handles GET /api/v1/slots?tier=... - retrieves bookable slots.
func (s *Server) GetSlots(ctx echo.Context) error {
	t, err := tier.TierFromString(ctx.QueryParam("tier"))
	if err != nil {
		return badRequest(ctx, "Invalid tier: "+err.Error())
	}

	query, err := queries.NewGetAvailableSlotsQuery(t)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	slots, err := s.availableSlotsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]SlotResponse, len(slots))
	for i, slot := range slots {
		response[i] = SlotResponse{
			StartMinute: slot.Window.StartMinute(),
			EndMinute:   slot.Window.EndMinute(),
			Label:       slot.Window.String(),
			Day:         slot.Day.String(),
			Date:        slot.Date.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateQuote handles POST /api/v1/quotes - prices a cart.
func (s *Server) CreateQuote(ctx echo.Context) error {
	var req QuoteRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	t, err := tier.TierFromString(req.Tier)
	if err != nil {
		return badRequest(ctx, "Invalid tier: "+err.Error())
	}

	selections := make([]queries.QuoteSelection, 0, len(req.Items))
	for _, line := range req.Items {
		itemID, idErr := kernel.UUIDFromString(line.ItemID)
		if idErr != nil {
			return badRequest(ctx, "Invalid item id: "+line.ItemID)
		}
		selections = append(selections, queries.QuoteSelection{
			ItemID:   itemID,
			Quantity: line.Quantity,
		})
	}

	query, err := queries.NewGetPriceQuoteQuery(selections, t)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	quote, err := s.priceQuoteHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, QuoteResponse{
		Subtotal:     quote.Subtotal.String(),
		DeliveryFee:  quote.DeliveryFee.String(),
		HandlingFee:  quote.HandlingFee.String(),
		Total:        quote.Total.String(),
		FreeDelivery: quote.FreeDelivery,
	})
}

// CreateOrder handles POST /api/v1/orders - books a pickup and delivery.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	t, err := tier.TierFromString(req.Tier)
	if err != nil {
		return badRequest(ctx, "Invalid tier: "+err.Error())
	}

	window, err := tier.NewTimeWindow(req.StartMinute, req.EndMinute)
	if err != nil {
		return badRequest(ctx, "Invalid window: "+err.Error())
	}

	date, err := kernel.DayDateFromString(req.Date)
	if err != nil {
		return badRequest(ctx, "Invalid date: "+err.Error())
	}

	paymentType, err := order.PaymentTypeFromString(req.PaymentType)
	if err != nil {
		return badRequest(ctx, "Invalid payment type: "+err.Error())
	}

	selections := make([]commands.ItemSelection, 0, len(req.Items))
	for _, line := range req.Items {
		itemID, idErr := kernel.UUIDFromString(line.ItemID)
		if idErr != nil {
			return badRequest(ctx, "Invalid item id: "+line.ItemID)
		}
		selections = append(selections, commands.ItemSelection{
			ItemID:   itemID,
			Quantity: line.Quantity,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, selections, t, window, date, paymentType)
	if err != nil {
		return badRequest(ctx, "Invalid booking: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.writeError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// AdvanceOrderStep handles POST /api/v1/orders/:id/advance - completes the
// next fulfillment step.
func (s *Server) AdvanceOrderStep(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req AdvanceStepRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	stepName, err := order.StepNameFromString(req.Step)
	if err != nil {
		return badRequest(ctx, "Invalid step: "+err.Error())
	}

	cmd, err := commands.NewAdvanceOrderStepCommand(orderID, stepName, req.Verified)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.advanceStepHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignAgent handles POST /api/v1/orders/:id/agent - assigns a delivery agent.
func (s *Server) AssignAgent(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req AssignAgentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	agentID, err := kernel.UUIDFromString(req.AgentID)
	if err != nil {
		return badRequest(ctx, "Invalid agent id")
	}

	cmd, err := commands.NewAssignAgentCommand(orderID, agentID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.assignAgentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAgentOrders handles GET /api/v1/agents/:id/orders - retrieves the
// agent's queue for the current day.
func (s *Server) GetAgentOrders(ctx echo.Context) error {
	agentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid agent id")
	}

	query, err := queries.NewGetAgentOrdersQuery(agentID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	queue, err := s.agentOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	orders := make([]AgentOrderResponse, len(queue.Orders))
	for i, o := range queue.Orders {
		steps := make([]AgentOrderStepResponse, len(o.Steps))
		for j, step := range o.Steps {
			steps[j] = AgentOrderStepResponse{
				Name:      step.Name.String(),
				Completed: step.Completed,
			}
		}

		orders[i] = AgentOrderResponse{
			ID:          o.ID.String(),
			Tier:        o.Tier.String(),
			Window:      o.Window.String(),
			PaymentType: o.PaymentType.String(),
			Total:       o.Total.String(),
			Steps:       steps,
		}
	}

	return ctx.JSON(http.StatusOK, AgentQueueResponse{
		Orders: orders,
		Locked: queue.Locked,
	})
}

// SwapAgentOrders handles POST /api/v1/agents/:id/sequence/swap - rotates the
// selected orders within the agent's queue.
func (s *Server) SwapAgentOrders(ctx echo.Context) error {
	agentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid agent id")
	}

	var req SwapOrdersRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	selection := make([]kernel.UUID, 0, len(req.OrderIDs))
	for _, raw := range req.OrderIDs {
		orderID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return badRequest(ctx, "Invalid order id: "+raw)
		}
		selection = append(selection, orderID)
	}

	cmd, err := commands.NewSwapAgentOrdersCommand(agentID, selection)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.swapOrdersHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// LockAgentSequence handles POST /api/v1/agents/:id/sequence/lock.
func (s *Server) LockAgentSequence(ctx echo.Context) error {
	agentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid agent id")
	}

	cmd, err := commands.NewLockAgentSequenceCommand(agentID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.lockSequenceHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UnlockAgentSequence handles POST /api/v1/agents/:id/sequence/unlock.
func (s *Server) UnlockAgentSequence(ctx echo.Context) error {
	agentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid agent id")
	}

	cmd, err := commands.NewUnlockAgentSequenceCommand(agentID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.unlockSequenceHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// writeError maps application and domain errors to HTTP responses.
func (s *Server) writeError(ctx echo.Context, err error) error {
	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	}

	switch {
	case errors.Is(err, order.ErrFlowAlreadyTerminal),
		errors.Is(err, order.ErrVerificationRequired),
		errors.Is(err, agentday.ErrSequenceLocked),
		errors.Is(err, commands.ErrStepMismatch),
		errors.Is(err, commands.ErrSlotNoLongerOfferable):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	}

	var invalid *errs.ValueIsInvalidError
	var required *errs.ValueIsRequiredError
	var outOfRange *errs.ValueIsOutOfRangeError
	if errors.As(err, &invalid) || errors.As(err, &required) || errors.As(err, &outOfRange) ||
		errors.Is(err, agentday.ErrSelectionTooSmall) ||
		errors.Is(err, commands.ErrNoItemsSelected) {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: "Internal error",
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
