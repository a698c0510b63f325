package sequencerepo

import (
	"context"
	"errors"
	"fmt"

	"ironweb/internal/core/domain/model/agentday"
	"ironweb/internal/core/domain/model/kernel"
	"ironweb/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSequenceRepository implements SequenceRepository using GORM.
type GormSequenceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSequenceRepository creates a new GORM sequence repository.
func NewGormSequenceRepository(db *gorm.DB, tracker aggregateTracker) *GormSequenceRepository {
	return &GormSequenceRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new sequence with its positioned order references.
func (r *GormSequenceRepository) Add(ctx context.Context, aggregate *agentday.Sequence) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.AgentID(), aggregate)
	return nil
}

// Update saves an existing sequence. A swap rewrites the order references,
// so the entries are replaced wholesale within the transaction.
func (r *GormSequenceRepository) Update(ctx context.Context, aggregate *agentday.Sequence) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Model(&SequenceDTO{}).
		Where("agent_id = ? AND date = ?", dto.AgentID, dto.Date).
		Update("locked", dto.Locked)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	err := r.db.WithContext(ctx).
		Where("agent_id = ? AND date = ?", dto.AgentID, dto.Date).
		Delete(&SequenceEntryDTO{}).Error
	if err != nil {
		return err
	}

	if len(dto.Entries) > 0 {
		if err = r.db.WithContext(ctx).Create(&dto.Entries).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.AgentID(), aggregate)
	return nil
}

// GetByAgentAndDate retrieves the sequence for an agent and day.
func (r *GormSequenceRepository) GetByAgentAndDate(
	ctx context.Context,
	agentID kernel.UUID,
	date kernel.DayDate,
) (*agentday.Sequence, error) {
	if err := errors.Join(agentID.Validate(), date.Validate()); err != nil {
		return nil, err
	}

	var dto SequenceDTO
	err := r.db.WithContext(ctx).
		Preload("Entries", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto, "agent_id = ? AND date = ?", agentID.Bytes(), date.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("sequence",
				fmt.Sprintf("%s/%s", agentID, date))
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes the sequence for an agent and day together with its entries.
func (r *GormSequenceRepository) Delete(ctx context.Context, agentID kernel.UUID, date kernel.DayDate) error {
	if err := errors.Join(agentID.Validate(), date.Validate()); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).
		Where("agent_id = ? AND date = ?", agentID.Bytes(), date.String()).
		Delete(&SequenceEntryDTO{}).Error
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("agent_id = ? AND date = ?", agentID.Bytes(), date.String()).
		Delete(&SequenceDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("sequence",
			fmt.Sprintf("%s/%s", agentID, date))
	}

	return nil
}

// DeleteExpired removes every sequence dated before the given day and
// returns the number of sequences removed.
func (r *GormSequenceRepository) DeleteExpired(ctx context.Context, today kernel.DayDate) (int64, error) {
	if err := today.Validate(); err != nil {
		return 0, err
	}

	err := r.db.WithContext(ctx).
		Where("date < ?", today.String()).
		Delete(&SequenceEntryDTO{}).Error
	if err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).
		Where("date < ?", today.String()).
		Delete(&SequenceDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
