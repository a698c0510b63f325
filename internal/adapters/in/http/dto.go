package http

// Request and response bodies for the REST API. All identifiers travel as
// canonical UUID strings, money as decimal strings, windows as minutes from
// midnight, and dates as "YYYY-MM-DD".

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ItemResponse is one garment catalog entry.
type ItemResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	UnitPrice string `json:"unitPrice"`
}

// SlotResponse is one bookable slot offer.
type SlotResponse struct {
	StartMinute int    `json:"startMinute"`
	EndMinute   int    `json:"endMinute"`
	Label       string `json:"label"`
	Day         string `json:"day"`
	Date        string `json:"date"`
}

// CartLineRequest is one cart entry in a quote or booking request.
type CartLineRequest struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// QuoteRequest asks for a price breakdown of a cart against a tier.
type QuoteRequest struct {
	Tier  string            `json:"tier"`
	Items []CartLineRequest `json:"items"`
}

// QuoteResponse is the price breakdown for a cart.
type QuoteResponse struct {
	Subtotal     string `json:"subtotal"`
	DeliveryFee  string `json:"deliveryFee"`
	HandlingFee  string `json:"handlingFee"`
	Total        string `json:"total"`
	FreeDelivery bool   `json:"freeDelivery"`
}

// CreateOrderRequest books a pickup and delivery.
// Unit prices are intentionally absent; the server resolves them from the
// catalog.
type CreateOrderRequest struct {
	Items       []CartLineRequest `json:"items"`
	Tier        string            `json:"tier"`
	StartMinute int               `json:"startMinute"`
	EndMinute   int               `json:"endMinute"`
	Date        string            `json:"date"`
	PaymentType string            `json:"paymentType"`
}

// CreateOrderResponse returns the identifier of the booked order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// AdvanceStepRequest completes the named fulfillment step of an order.
// Verified reports whether the agent passed verification during this
// interaction; it is consumed by the request and never stored.
type AdvanceStepRequest struct {
	Step     string `json:"step"`
	Verified bool   `json:"verified"`
}

// AssignAgentRequest assigns a delivery agent to an order.
type AssignAgentRequest struct {
	AgentID string `json:"agentId"`
}

// SwapOrdersRequest rotates the selected orders within the agent's queue.
type SwapOrdersRequest struct {
	OrderIDs []string `json:"orderIds"`
}

// AgentOrderStepResponse is one fulfillment step of a queued order.
type AgentOrderStepResponse struct {
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// AgentOrderResponse is one order in an agent's daily queue.
type AgentOrderResponse struct {
	ID          string                   `json:"id"`
	Tier        string                   `json:"tier"`
	Window      string                   `json:"window"`
	PaymentType string                   `json:"paymentType"`
	Total       string                   `json:"total"`
	Steps       []AgentOrderStepResponse `json:"steps"`
}

// AgentQueueResponse is an agent's queue for the current day.
type AgentQueueResponse struct {
	Orders []AgentOrderResponse `json:"orders"`
	Locked bool                 `json:"locked"`
}
