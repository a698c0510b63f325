package queries

import (
	"context"
	"database/sql"
	"errors"

	"ironweb/internal/core/domain/model/kernel"
	"ironweb/internal/core/domain/model/order"
	"ironweb/internal/core/domain/model/tier"
	"ironweb/internal/core/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetAgentOrdersQueryHandler reads an agent's daily queue from the database.
// The stored sequence, when present, dictates the order of the result;
// orders created after the sequence was stored are appended in creation
// order so nothing assigned to the agent ever disappears from the queue.
type GetAgentOrdersQueryHandler struct {
	db    *gorm.DB
	clock ports.Clock
}

// NewGetAgentOrdersQueryHandler creates a handler for agent queue queries.
// Requires a GORM database connection for query execution.
func NewGetAgentOrdersQueryHandler(db *gorm.DB, clock ports.Clock) GetAgentOrdersQueryHandler {
	return GetAgentOrdersQueryHandler{
		db:    db,
		clock: clock,
	}
}

// Handle returns the agent's queue for today. An agent with no assigned
// orders gets an empty, unlocked queue.
func (h GetAgentOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAgentOrdersQuery,
) (GetAgentOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAgentOrdersQueryResponse{}, err
	}

	today := kernel.NewDayDate(h.clock.Now())
	agentID := query.AgentID().Bytes()

	orders, err := h.loadOrders(ctx, agentID, today.String())
	if err != nil {
		return GetAgentOrdersQueryResponse{}, err
	}

	if err = h.attachSteps(ctx, orders); err != nil {
		return GetAgentOrdersQueryResponse{}, err
	}

	sequenceIDs, locked, err := h.loadSequence(ctx, agentID, today.String())
	if err != nil {
		return GetAgentOrdersQueryResponse{}, err
	}

	return GetAgentOrdersQueryResponse{
		Orders: applySequence(orders, sequenceIDs),
		Locked: locked,
	}, nil
}

func (h GetAgentOrdersQueryHandler) loadOrders(
	ctx context.Context,
	agentID uuid.UUID,
	date string,
) ([]AgentOrderResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			service_tier,
			window_start,
			window_end,
			payment_type,
			total
		FROM orders
		WHERE agent_id = ? AND window_date = ?
		ORDER BY created_at
	`, agentID, date).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]AgentOrderResponse, 0)

	for rows.Next() {
		var id uuid.UUID
		var serviceTier, windowStart, windowEnd, paymentType int
		var total decimal.Decimal

		err = rows.Scan(&id, &serviceTier, &windowStart, &windowEnd, &paymentType, &total)
		if err != nil {
			return nil, err
		}

		entry, scanErr := scanAgentOrder(id, serviceTier, windowStart, windowEnd, paymentType, total)
		if scanErr != nil {
			return nil, scanErr
		}

		orders = append(orders, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func (h GetAgentOrdersQueryHandler) attachSteps(ctx context.Context, orders []AgentOrderResponse) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(orders))
	index := make(map[string]int, len(orders))
	for i, o := range orders {
		ids = append(ids, o.ID.Bytes())
		index[o.ID.String()] = i
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			name,
			completed
		FROM order_steps
		WHERE order_id IN ?
		ORDER BY order_id, position
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID uuid.UUID
		var name int
		var completed bool

		if err = rows.Scan(&orderID, &name, &completed); err != nil {
			return err
		}

		i, ok := index[orderID.String()]
		if !ok {
			continue
		}

		step, scanErr := scanAgentOrderStep(name, completed)
		if scanErr != nil {
			return scanErr
		}

		orders[i].Steps = append(orders[i].Steps, step)
	}

	return rows.Err()
}

// loadSequence returns the agent's stored ordering for the day and its lock
// state. A missing row means no reordering happened yet.
func (h GetAgentOrdersQueryHandler) loadSequence(
	ctx context.Context,
	agentID uuid.UUID,
	date string,
) ([]kernel.UUID, bool, error) {
	var locked bool
	err := h.db.WithContext(ctx).Raw(`
		SELECT locked
		FROM agent_sequences
		WHERE agent_id = ? AND date = ?
	`, agentID, date).Row().Scan(&locked)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT order_id
		FROM agent_sequence_orders
		WHERE agent_id = ? AND date = ?
		ORDER BY position
	`, agentID, date).Rows()
	if err != nil {
		return nil, false, err
	}
	defer rows.Close()

	sequenceIDs := make([]kernel.UUID, 0)
	for rows.Next() {
		var orderID uuid.UUID
		if err = rows.Scan(&orderID); err != nil {
			return nil, false, err
		}

		id, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, false, idErr
		}
		sequenceIDs = append(sequenceIDs, id)
	}

	if err = rows.Err(); err != nil {
		return nil, false, err
	}

	return sequenceIDs, locked, nil
}

// scanAgentOrder converts one orders row into a queue entry. Enum columns
// are validated so a corrupt row fails the query instead of rendering as
// an unknown tier or payment type.
func scanAgentOrder(
	id uuid.UUID,
	serviceTier, windowStart, windowEnd, paymentType int,
	total decimal.Decimal,
) (AgentOrderResponse, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return AgentOrderResponse{}, err
	}

	rowTier := tier.Tier(serviceTier)
	if err = rowTier.Validate(); err != nil {
		return AgentOrderResponse{}, err
	}

	window, err := tier.NewTimeWindow(windowStart, windowEnd)
	if err != nil {
		return AgentOrderResponse{}, err
	}

	rowPayment := order.PaymentType(paymentType)
	if err = rowPayment.Validate(); err != nil {
		return AgentOrderResponse{}, err
	}

	money, err := kernel.NewMoney(total)
	if err != nil {
		return AgentOrderResponse{}, err
	}

	return AgentOrderResponse{
		ID:          orderID,
		Tier:        rowTier,
		Window:      window,
		PaymentType: rowPayment,
		Total:       money,
	}, nil
}

// scanAgentOrderStep converts one order_steps row, rejecting step names
// outside the closed set.
func scanAgentOrderStep(name int, completed bool) (AgentOrderStepResponse, error) {
	stepName := order.StepName(name)
	if err := stepName.Validate(); err != nil {
		return AgentOrderStepResponse{}, err
	}

	return AgentOrderStepResponse{
		Name:      stepName,
		Completed: completed,
	}, nil
}

// applySequence reorders the queue by the stored sequence. Orders missing
// from the sequence keep their creation order and follow the sequenced ones.
func applySequence(orders []AgentOrderResponse, sequenceIDs []kernel.UUID) []AgentOrderResponse {
	if len(sequenceIDs) == 0 {
		return orders
	}

	byID := make(map[string]AgentOrderResponse, len(orders))
	for _, o := range orders {
		byID[o.ID.String()] = o
	}

	result := make([]AgentOrderResponse, 0, len(orders))
	seen := make(map[string]bool, len(sequenceIDs))

	for _, id := range sequenceIDs {
		if o, ok := byID[id.String()]; ok {
			result = append(result, o)
			seen[id.String()] = true
		}
	}

	for _, o := range orders {
		if !seen[o.ID.String()] {
			result = append(result, o)
		}
	}

	return result
}
