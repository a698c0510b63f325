// Package sequencerepo provides data transfer objects and mapping functions for
// agent-day sequence persistence. A sequence row holds the agent's custom
// ordering of a day's orders and the lock state, keyed by agent and date.
package sequencerepo

import (
	"ironweb/internal/core/domain/model/agentday"
	"ironweb/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// SequenceDTO represents the database structure for persisting agent-day
// sequences. The ordering itself lives in a child table of positioned
// order references.
type SequenceDTO struct {
	AgentID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Date    string    `gorm:"type:varchar(10);primaryKey"`
	Locked  bool

	Entries []SequenceEntryDTO `gorm:"foreignKey:AgentID,Date;references:AgentID,Date;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for sequence entities.
func (SequenceDTO) TableName() string {
	return "agent_sequences"
}

// SequenceEntryDTO represents one positioned order reference in a sequence.
type SequenceEntryDTO struct {
	AgentID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Date     string    `gorm:"type:varchar(10);primaryKey"`
	Position int       `gorm:"primaryKey"`
	OrderID  uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for sequence entries.
func (SequenceEntryDTO) TableName() string {
	return "agent_sequence_orders"
}

// fromDomain converts a sequence aggregate to its database representation.
func fromDomain(aggregate *agentday.Sequence) SequenceDTO {
	agentID := aggregate.AgentID().Bytes()
	date := aggregate.Date().String()

	entries := make([]SequenceEntryDTO, 0, len(aggregate.OrderIDs()))
	for i, orderID := range aggregate.OrderIDs() {
		entries = append(entries, SequenceEntryDTO{
			AgentID:  agentID,
			Date:     date,
			Position: i,
			OrderID:  orderID.Bytes(),
		})
	}

	return SequenceDTO{
		AgentID: agentID,
		Date:    date,
		Locked:  aggregate.IsLocked(),
		Entries: entries,
	}
}

// toDomain converts a database DTO to a sequence aggregate.
func toDomain(dto SequenceDTO) (*agentday.Sequence, error) {
	agentID, err := kernel.UUIDFromBytes(dto.AgentID[:])
	if err != nil {
		return nil, err
	}

	date, err := kernel.DayDateFromString(dto.Date)
	if err != nil {
		return nil, err
	}

	orderIDs := make([]kernel.UUID, 0, len(dto.Entries))
	for _, entry := range dto.Entries {
		orderID, entryErr := kernel.UUIDFromBytes(entry.OrderID[:])
		if entryErr != nil {
			return nil, entryErr
		}
		orderIDs = append(orderIDs, orderID)
	}

	return agentday.RestoreSequence(agentID, date, orderIDs, dto.Locked)
}
