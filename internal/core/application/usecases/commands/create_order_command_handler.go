package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Prices the submitted lines against the active catalog and persists the
// order in REQUESTED status with its first history entry. If any line cannot
// be priced the whole command fails and nothing is persisted.
type CreateOrderCommandHandler struct {
	uowFactory     OrderCatalogUoWFactory
	deliveryCharge kernel.Money
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// deliveryCharge is the fixed per-order charge from configuration.
func NewCreateOrderCommandHandler(
	uowFactory OrderCatalogUoWFactory,
	deliveryCharge kernel.Money,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:     uowFactory,
		deliveryCharge: deliveryCharge,
	}
}

// Handle processes the order placement command.
// Resolves prices, builds the aggregate and persists it transactionally, so
// a pricing failure on any line leaves no trace in storage.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	calculator := services.NewPricingCalculator(uow.PriceCatalog())
	items, pricing, err := calculator.Price(ctx, cmd.Lines(), h.deliveryCharge)
	if err != nil {
		return err
	}

	details := order.Details{
		PickupAddress:       cmd.PickupAddress(),
		DeliveryAddress:     cmd.DeliveryAddress(),
		Notes:               cmd.Notes(),
		ScheduledPickupTime: cmd.ScheduledPickupTime(),
	}
	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), items, pricing, details, time.Now())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
