package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/user"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"
)

// AssignDeliveryPersonCommandHandler handles delivery person assignment.
// Administrator-only; the target user must exist and hold the delivery role.
// Assignment does not change the order's status or append to its history.
type AssignDeliveryPersonCommandHandler struct {
	uowFactory OrderUserUoWFactory
	policy     services.AccessPolicy
}

// NewAssignDeliveryPersonCommandHandler creates a handler for assignments.
func NewAssignDeliveryPersonCommandHandler(
	uowFactory OrderUserUoWFactory,
	policy services.AccessPolicy,
) AssignDeliveryPersonCommandHandler {
	return AssignDeliveryPersonCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the assignment command. A missing order or user is
// reported as not found; an existing user without the delivery role is a
// validation error, distinct from not found.
func (h *AssignDeliveryPersonCommandHandler) Handle(ctx context.Context, cmd AssignDeliveryPersonCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor := cmd.Actor()
	if !h.policy.CanAssignDeliveryPerson(actor) {
		return errs.NewForbiddenError(actor.ID.String(), "assign delivery person")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	assignee, err := uow.UserRepository().Get(ctx, cmd.DeliveryPersonID())
	if err != nil {
		return err
	}
	if assignee.Role() != user.RoleDelivery {
		return errs.NewValueIsInvalidError("deliveryPersonID")
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.AssignDeliveryPerson(assignee.ID(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
