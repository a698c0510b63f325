// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"ironweb/internal/core/domain/model/kernel"
	"ironweb/internal/core/domain/model/order"
	"ironweb/internal/core/domain/model/tier"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The booked window is stored as minutes from midnight plus a calendar date,
// pricing as decimal columns, and the fulfillment flow as a child table of
// ordered steps.
type OrderDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	AgentID      *uuid.UUID `gorm:"type:uuid;index"`
	ServiceTier  int
	WindowStart  int
	WindowEnd    int
	WindowDate   string `gorm:"type:varchar(10);index"`
	PaymentType  int
	Subtotal     decimal.Decimal `gorm:"type:numeric"`
	DeliveryFee  decimal.Decimal `gorm:"type:numeric"`
	HandlingFee  decimal.Decimal `gorm:"type:numeric"`
	Total        decimal.Decimal `gorm:"type:numeric"`
	FreeDelivery bool
	CreatedAt    time.Time `gorm:"autoCreateTime"`

	Items []ItemLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Steps []StepDTO     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemLineDTO represents one priced cart line of an order.
type ItemLineDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position  int
	Name      string
	UnitPrice decimal.Decimal `gorm:"type:numeric"`
	Quantity  int
}

// TableName specifies the database table name for order item lines.
func (ItemLineDTO) TableName() string {
	return "order_items"
}

// StepDTO represents one fulfillment step of an order.
// Position preserves the fixed flow order.
type StepDTO struct {
	OrderID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position    int       `gorm:"primaryKey"`
	Name        int
	Completed   bool
	CompletedAt *time.Time
}

// TableName specifies the database table name for order steps.
func (StepDTO) TableName() string {
	return "order_steps"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var agentID *uuid.UUID
	if id := aggregate.Agent(); id != nil {
		raw := id.Bytes()
		agentID = &raw
	}

	items := make([]ItemLineDTO, 0, len(aggregate.Items()))
	for i, line := range aggregate.Items() {
		items = append(items, ItemLineDTO{
			OrderID:   aggregate.ID().Bytes(),
			ItemID:    line.ItemID().Bytes(),
			Position:  i,
			Name:      line.Name(),
			UnitPrice: line.UnitPrice().Amount(),
			Quantity:  line.Quantity(),
		})
	}

	steps := make([]StepDTO, 0, len(aggregate.Flow().Steps()))
	for i, step := range aggregate.Flow().Steps() {
		steps = append(steps, StepDTO{
			OrderID:     aggregate.ID().Bytes(),
			Position:    i,
			Name:        int(step.Name()),
			Completed:   step.IsCompleted(),
			CompletedAt: step.CompletedAt(),
		})
	}

	pricing := aggregate.Pricing()

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		AgentID:      agentID,
		ServiceTier:  int(aggregate.Tier()),
		WindowStart:  aggregate.Window().StartMinute(),
		WindowEnd:    aggregate.Window().EndMinute(),
		WindowDate:   aggregate.WindowDate().String(),
		PaymentType:  int(aggregate.PaymentType()),
		Subtotal:     pricing.Subtotal().Amount(),
		DeliveryFee:  pricing.DeliveryFee().Amount(),
		HandlingFee:  pricing.HandlingFee().Amount(),
		Total:        pricing.Total().Amount(),
		FreeDelivery: pricing.IsFreeDelivery(),
		Items:        items,
		Steps:        steps,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including the fulfillment flow and
// optional agent assignment using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var agentID *kernel.UUID
	if dto.AgentID != nil {
		aID, agentErr := kernel.UUIDFromBytes((*dto.AgentID)[:])
		if agentErr != nil {
			return nil, agentErr
		}
		agentID = &aID
	}

	window, err := tier.NewTimeWindow(dto.WindowStart, dto.WindowEnd)
	if err != nil {
		return nil, err
	}

	windowDate, err := kernel.DayDateFromString(dto.WindowDate)
	if err != nil {
		return nil, err
	}

	items, err := itemLinesToDomain(dto.Items)
	if err != nil {
		return nil, err
	}

	pricing, err := pricingToDomain(dto)
	if err != nil {
		return nil, err
	}

	flow, err := flowToDomain(dto.Steps)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		items,
		tier.Tier(dto.ServiceTier),
		window,
		windowDate,
		order.PaymentType(dto.PaymentType),
		pricing,
		flow,
		agentID,
	)
}

func itemLinesToDomain(dtos []ItemLineDTO) ([]order.ItemLine, error) {
	items := make([]order.ItemLine, 0, len(dtos))
	for _, dto := range dtos {
		itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
		if err != nil {
			return nil, err
		}

		unitPrice, err := kernel.NewMoney(dto.UnitPrice)
		if err != nil {
			return nil, err
		}

		line, err := order.NewItemLine(itemID, dto.Name, unitPrice, dto.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, line)
	}

	return items, nil
}

func pricingToDomain(dto OrderDTO) (order.Pricing, error) {
	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return order.Pricing{}, err
	}

	deliveryFee, err := kernel.NewMoney(dto.DeliveryFee)
	if err != nil {
		return order.Pricing{}, err
	}

	handlingFee, err := kernel.NewMoney(dto.HandlingFee)
	if err != nil {
		return order.Pricing{}, err
	}

	return order.NewPricing(subtotal, deliveryFee, handlingFee, dto.FreeDelivery)
}

func flowToDomain(dtos []StepDTO) (order.Flow, error) {
	steps := make([]order.Step, 0, len(dtos))
	for _, dto := range dtos {
		step, err := order.RestoreStep(order.StepName(dto.Name), dto.Completed, dto.CompletedAt)
		if err != nil {
			return order.Flow{}, err
		}
		steps = append(steps, step)
	}

	return order.RestoreFlow(steps)
}
