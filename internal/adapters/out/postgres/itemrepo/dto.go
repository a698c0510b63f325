// Package itemrepo provides data transfer objects and mapping functions for
// the garment catalog. Items are reference data: the booking flow reads them
// to resolve authoritative names and unit prices.
package itemrepo

import (
	"ironweb/internal/core/domain/model/item"
	"ironweb/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemDTO represents the database structure for persisting catalog items.
type ItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	UnitPrice decimal.Decimal `gorm:"type:numeric"`
}

// TableName specifies the database table name for catalog items.
func (ItemDTO) TableName() string {
	return "items"
}

// fromDomain converts a catalog item to its database representation.
func fromDomain(entity *item.Item) ItemDTO {
	return ItemDTO{
		ID:        entity.ID().Bytes(),
		Name:      entity.Name(),
		UnitPrice: entity.UnitPrice().Amount(),
	}
}

// toDomain converts a database DTO to a catalog item.
func toDomain(dto ItemDTO) (*item.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return item.RestoreItem(id, dto.Name, unitPrice)
}
