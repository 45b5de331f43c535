package ports

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// OrderStatusChangedEvent is emitted after a status mutation commits.
// Consumers (notification service, analytics) are outside this core.
type OrderStatusChangedEvent struct {
	OrderID    kernel.UUID
	FromStatus order.Status
	ToStatus   order.Status
	UpdatedBy  kernel.UUID
	OccurredAt time.Time
}

// OrderEventPublisher publishes order lifecycle events to the message broker.
// Publishing is best-effort: a failed publish is logged, never propagated,
// because the mutation has already committed.
type OrderEventPublisher interface {
	PublishStatusChanged(ctx context.Context, event OrderStatusChangedEvent) error
}
