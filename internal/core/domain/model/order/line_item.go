package order

import (
	"errors"
	"fmt"

	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created
// through NewLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one clothing-item entry within an order. It carries the
// denormalized display name and resolved unit price snapshotted from the
// catalog at creation time, so later catalog changes never retroactively
// change historical orders.
//
// The unit price is the sum of the per-service prices for the requested
// service set; the subtotal is always unitPrice multiplied by quantity.
type LineItem struct {
	clothingItemID kernel.UUID
	name           string
	category       catalog.Category
	services       []catalog.ServiceType
	quantity       int
	unitPrice      kernel.Money
	subtotal       kernel.Money

	isConstructed bool
}

// NewLineItem creates a validated LineItem. The service set must be non-empty
// and free of duplicates, quantity must be at least 1, and the unit price must
// not be negative. The subtotal is derived, never supplied.
func NewLineItem(
	clothingItemID kernel.UUID,
	name string,
	category catalog.Category,
	services []catalog.ServiceType,
	quantity int,
	unitPrice kernel.Money,
) (LineItem, error) {
	item := LineItem{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setClothingItemID(clothingItemID),
		item.setName(name),
		item.setCategory(category),
		item.setServices(services),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return LineItem{}, err
	}

	item.subtotal = unitPrice.Mul(quantity)
	return item, nil
}

// Validate ensures the line item was created via NewLineItem.
func (l LineItem) Validate() error {
	if !l.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// ClothingItemID returns the referenced catalog item's identifier.
func (l LineItem) ClothingItemID() kernel.UUID {
	return l.clothingItemID
}

// Name returns the display name snapshotted at order creation.
func (l LineItem) Name() string {
	return l.name
}

// Category returns the garment category the line was priced under.
func (l LineItem) Category() catalog.Category {
	return l.category
}

// Services returns a copy of the requested service set.
func (l LineItem) Services() []catalog.ServiceType {
	services := make([]catalog.ServiceType, len(l.services))
	copy(services, l.services)
	return services
}

// Quantity returns the number of garments on the line.
func (l LineItem) Quantity() int {
	return l.quantity
}

// UnitPrice returns the per-garment price resolved at creation.
func (l LineItem) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Subtotal returns unitPrice multiplied by quantity.
func (l LineItem) Subtotal() kernel.Money {
	return l.subtotal
}

func (l *LineItem) setClothingItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.clothingItemID = id
	return nil
}

func (l *LineItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("clothingItemName")
	}
	l.name = name
	return nil
}

func (l *LineItem) setCategory(category catalog.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	l.category = category
	return nil
}

func (l *LineItem) setServices(services []catalog.ServiceType) error {
	if len(services) == 0 {
		return errs.NewValueIsRequiredError("services")
	}

	seen := make(map[catalog.ServiceType]struct{}, len(services))
	for _, service := range services {
		if err := service.Validate(); err != nil {
			return err
		}
		if _, ok := seen[service]; ok {
			return errs.NewValueIsInvalidErrorWithCause(
				"services",
				fmt.Errorf("service %s is requested more than once", service),
			)
		}
		seen[service] = struct{}{}
	}

	l.services = make([]catalog.ServiceType, len(services))
	copy(l.services, services)
	return nil
}

func (l *LineItem) setQuantity(quantity int) error {
	if quantity < 1 || quantity > MaxLineQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxLineQuantity)
	}
	l.quantity = quantity
	return nil
}

func (l *LineItem) setUnitPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	l.unitPrice = price
	return nil
}

// MaxLineQuantity bounds a single line. Large drops are split across lines.
const MaxLineQuantity = 1000
