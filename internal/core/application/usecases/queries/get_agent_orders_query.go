package queries

import (
	"errors"

	"ironweb/internal/core/domain/model/kernel"
	"ironweb/internal/core/domain/model/order"
	"ironweb/internal/core/domain/model/tier"
	"ironweb/internal/pkg/guard"
)

var ErrGetAgentOrdersQueryIsNotConstructed = errors.New(
	"GetAgentOrdersQuery must be created via NewGetAgentOrdersQuery constructor",
)

// GetAgentOrdersQuery retrieves an agent's work queue for the current day:
// the orders assigned to them whose booked window falls on today, in the
// agent's stored ordering when one exists, otherwise in creation order.
//
// Example:
//
//	query, err := NewGetAgentOrdersQuery(agentID)
//	if err != nil {
//	    return err
//	}
//	queue, err := handler.Handle(ctx, query)
type GetAgentOrdersQuery struct { //nolint:recvcheck //using for validation
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAgentOrdersQuery creates a query for an agent's daily work queue.
func NewGetAgentOrdersQuery(agentID kernel.UUID) (GetAgentOrdersQuery, error) {
	query := GetAgentOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setAgentID(agentID); err != nil {
		return GetAgentOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAgentOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAgentOrdersQueryIsNotConstructed)
}

// AgentID returns the agent whose queue is requested.
func (q GetAgentOrdersQuery) AgentID() kernel.UUID {
	return q.agentID
}

func (q *GetAgentOrdersQuery) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	q.agentID = agentID
	return nil
}

// AgentOrderStepResponse is one fulfillment step of a queued order.
type AgentOrderStepResponse struct {
	Name      order.StepName
	Completed bool
}

// AgentOrderResponse is one order in the agent's daily queue.
type AgentOrderResponse struct {
	ID          kernel.UUID
	Tier        tier.Tier
	Window      tier.TimeWindow
	PaymentType order.PaymentType
	Total       kernel.Money
	Steps       []AgentOrderStepResponse
}

// GetAgentOrdersQueryResponse is the agent's queue for the day.
// Locked reports whether the agent froze the ordering; reads are always
// allowed, the lock only rejects further reordering.
type GetAgentOrdersQueryResponse struct {
	Orders []AgentOrderResponse
	Locked bool
}
