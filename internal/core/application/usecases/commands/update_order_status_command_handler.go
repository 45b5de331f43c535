package commands

import (
	"context"
	"log/slog"
	"time"

	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler handles order lifecycle transitions.
// Only the assigned delivery person or an administrator may move an order;
// the transition itself is validated by the aggregate against its current
// status. On success a status-changed event is published after commit.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.AccessPolicy,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the status update command. The write is conditional on
// the order's version, so two concurrent updates racing past the same
// transition check cannot both land: the loser gets a version conflict.
// Publishing happens only after the transaction commits and a publish
// failure is logged, never propagated.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	actor := cmd.Actor()
	if !h.policy.CanUpdateStatus(actor, aggregate) {
		return errs.NewForbiddenError(actor.ID.String(), "update order status")
	}

	fromStatus := aggregate.Status()
	if err = aggregate.ChangeStatus(cmd.Target(), actor.ID, cmd.Note(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	event := ports.OrderStatusChangedEvent{
		OrderID:    aggregate.ID(),
		FromStatus: fromStatus,
		ToStatus:   aggregate.Status(),
		UpdatedBy:  actor.ID,
		OccurredAt: aggregate.UpdatedAt(),
	}
	if err = h.publisher.PublishStatusChanged(ctx, event); err != nil {
		h.logger.WarnContext(ctx, "order status changed event not published",
			"orderId", aggregate.ID().String(), "error", err)
	}

	return nil
}
