package usecase

import (
	"context"

	"github.com/DRSN-tech/billing-backend/pkg/e"
	"github.com/google/uuid"
)

// publishEvent записывает событие в outbox. Вызывается внутри транзакции изменения данных,
// доставку в Kafka выполняет OutboxWorker.
func publishEvent(ctx context.Context, outbox OutboxRepository, eventType OutboxEventType, aggregateID uuid.UUID, vendorID uuid.UUID, data any) error {
	const op = "usecase.publishEvent"

	event, err := NewOutboxEvent(eventType, aggregateID, vendorID, data)
	if err != nil {
		return e.Wrap(op, err)
	}

	if _, err := outbox.Create(ctx, event); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}
