// Package outboxrepo persists outbox messages. Besides the message itself,
// each row carries the dispatcher's claim lease (locked_by, locked_until):
// a claimed row is invisible to other dispatcher instances until its lease
// expires, which keeps concurrent dispatchers off each other's messages
// without hard locks. The lease never lives on the domain message; it is a
// storage concern.
package outboxrepo

import (
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/outbox"
	"orders/internal/pkg/correlation"

	"github.com/google/uuid"
)

// MessageDTO represents the database structure for persisting outbox messages.
type MessageDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	MessageType string    `gorm:"index"`
	AggregateID uuid.UUID `gorm:"type:uuid;index"`
	Payload     []byte    `gorm:"type:jsonb"`

	CorrelationID string
	CausationID   string
	SagaID        string
	SpanContext   string

	CreatedAt     time.Time `gorm:"index"`
	ProcessedAt   *time.Time
	AttemptCount  int
	NextAttemptAt time.Time `gorm:"index"`
	Poisoned      bool

	LockedBy    *string
	LockedUntil *time.Time
}

// TableName specifies the database table name for outbox messages.
func (MessageDTO) TableName() string {
	return "outbox_messages"
}

func fromDomain(message *outbox.Message) MessageDTO {
	headers := message.Headers()
	return MessageDTO{
		ID:            message.ID().Bytes(),
		MessageType:   message.Type(),
		AggregateID:   message.AggregateID().Bytes(),
		Payload:       message.Payload(),
		CorrelationID: headers.CorrelationID,
		CausationID:   headers.CausationID,
		SagaID:        headers.SagaID,
		SpanContext:   headers.SpanContext,
		CreatedAt:     message.CreatedAt(),
		ProcessedAt:   message.ProcessedAt(),
		AttemptCount:  message.AttemptCount(),
		NextAttemptAt: message.NextAttemptAt(),
		Poisoned:      message.IsPoisoned(),
	}
}

func toDomain(dto MessageDTO) (*outbox.Message, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	aggregateID, err := kernel.UUIDFromBytes(dto.AggregateID[:])
	if err != nil {
		return nil, err
	}

	return outbox.RestoreMessage(
		id,
		dto.MessageType,
		aggregateID,
		dto.Payload,
		correlation.Context{
			CorrelationID: dto.CorrelationID,
			CausationID:   dto.CausationID,
			SagaID:        dto.SagaID,
			SpanContext:   dto.SpanContext,
		},
		dto.CreatedAt,
		dto.ProcessedAt,
		dto.AttemptCount,
		dto.NextAttemptAt,
		dto.Poisoned,
	)
}
