package services

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
)

// PricingLine is a raw, unpriced order line as submitted by a customer.
type PricingLine struct {
	ClothingItemID kernel.UUID
	Category       catalog.Category
	Services       []catalog.ServiceType
	Quantity       int
}

func (l PricingLine) validate() error {
	if err := l.ClothingItemID.Validate(); err != nil {
		return err
	}
	if err := l.Category.Validate(); err != nil {
		return err
	}
	if len(l.Services) == 0 {
		return errs.NewValueIsRequiredError("services")
	}
	for _, service := range l.Services {
		if err := service.Validate(); err != nil {
			return err
		}
	}
	if l.Quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", l.Quantity, 1, order.MaxLineQuantity)
	}
	return nil
}

// PricingCalculator prices order lines against the active price catalog.
// Each line is priced as the sum of the active prices of its requested
// services multiplied by the quantity.
type PricingCalculator struct {
	catalog ports.PriceCatalog
}

func NewPricingCalculator(priceCatalog ports.PriceCatalog) PricingCalculator {
	return PricingCalculator{catalog: priceCatalog}
}

// Price resolves every line against the catalog and returns the priced line
// items together with the order totals. Lines are resolved concurrently.
// A missing clothing item surfaces as an ObjectNotFoundError, a missing
// active price as a PricingUnavailableError.
func (c PricingCalculator) Price(ctx context.Context, lines []PricingLine,
	deliveryCharge kernel.Money) ([]order.LineItem, order.Pricing, error) {
	if len(lines) == 0 {
		return nil, order.Pricing{}, errs.NewValueIsRequiredError("lines")
	}
	if err := deliveryCharge.Validate(); err != nil {
		return nil, order.Pricing{}, err
	}
	for _, line := range lines {
		if err := line.validate(); err != nil {
			return nil, order.Pricing{}, err
		}
	}

	items := make([]order.LineItem, len(lines))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, line := range lines {
		group.Go(func() error {
			item, err := c.priceLine(groupCtx, line)
			if err != nil {
				return err
			}
			items[i] = item
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, order.Pricing{}, err
	}

	var itemsTotal kernel.Money
	for _, item := range items {
		itemsTotal += item.Subtotal()
	}
	pricing, err := order.NewPricing(itemsTotal, deliveryCharge)
	if err != nil {
		return nil, order.Pricing{}, err
	}
	return items, pricing, nil
}

func (c PricingCalculator) priceLine(ctx context.Context, line PricingLine) (order.LineItem, error) {
	item, err := c.catalog.GetItem(ctx, line.ClothingItemID)
	if err != nil {
		return order.LineItem{}, err
	}

	var unitPrice kernel.Money
	for _, service := range line.Services {
		price, err := c.catalog.ResolvePrice(ctx, line.ClothingItemID, service, line.Category)
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return order.LineItem{}, errs.NewPricingUnavailableError(
					item.Name(), service.String(), line.Category.String())
			}
			return order.LineItem{}, err
		}
		unitPrice += price
	}

	return order.NewLineItem(line.ClothingItemID, item.Name(), line.Category,
		line.Services, line.Quantity, unitPrice)
}
