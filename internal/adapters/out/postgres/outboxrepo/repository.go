package outboxrepo

import (
	"context"
	"time"

	"orders/internal/core/domain/model/outbox"
	"orders/internal/pkg/errs"

	"gorm.io/gorm"
)

// leaseDuration is how long a claim holds a message. A dispatcher that dies
// mid-cycle loses its claim after this long and another instance picks the
// messages up.
const leaseDuration = time.Minute

// GormOutboxRepository implements OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

// NewGormOutboxRepository creates a new GORM outbox repository.
func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add persists pending messages within the caller's transaction.
func (r *GormOutboxRepository) Add(ctx context.Context, messages ...*outbox.Message) error {
	if len(messages) == 0 {
		return nil
	}

	dtos := make([]MessageDTO, 0, len(messages))
	for _, message := range messages {
		if err := message.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(message))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// ClaimPending atomically claims up to batchSize due pending messages for the
// given owner and returns them ordered by creation time ascending.
//
// The claim runs as a single UPDATE with a SKIP LOCKED subquery: rows already
// claimed by a live lease or row-locked by a concurrent claimer are skipped,
// so dispatcher instances never block each other.
func (r *GormOutboxRepository) ClaimPending(ctx context.Context, owner string, batchSize int) ([]*outbox.Message, error) {
	if batchSize <= 0 {
		return nil, errs.NewValueIsInvalidError("batch size")
	}

	now := time.Now().UTC()
	lease := now.Add(leaseDuration)

	err := r.db.WithContext(ctx).Exec(`
		UPDATE outbox_messages
		SET locked_by = ?, locked_until = ?
		WHERE id IN (
			SELECT id FROM outbox_messages
			WHERE processed_at IS NULL
			  AND poisoned = false
			  AND next_attempt_at <= ?
			  AND (locked_until IS NULL OR locked_until < ?)
			ORDER BY created_at
			LIMIT ?
			FOR UPDATE SKIP LOCKED
		)
	`, owner, lease, now, now, batchSize).Error
	if err != nil {
		return nil, err
	}

	var dtos []MessageDTO
	err = r.db.WithContext(ctx).
		Where("locked_by = ? AND locked_until = ?", owner, lease).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]*outbox.Message, 0, len(dtos))
	for _, dto := range dtos {
		message, toErr := toDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		messages = append(messages, message)
	}

	return messages, nil
}

// Update persists the dispatch outcome recorded on the message and releases
// the owner's claim.
func (r *GormOutboxRepository) Update(ctx context.Context, message *outbox.Message) error {
	if err := message.Validate(); err != nil {
		return err
	}

	dto := fromDomain(message)
	return r.db.WithContext(ctx).
		Model(&MessageDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"processed_at":    dto.ProcessedAt,
			"attempt_count":   dto.AttemptCount,
			"next_attempt_at": dto.NextAttemptAt,
			"poisoned":        dto.Poisoned,
			"locked_by":       nil,
			"locked_until":    nil,
		}).Error
}
