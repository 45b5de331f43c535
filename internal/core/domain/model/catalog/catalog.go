package catalog

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

var (
	// ErrClothingItemIsNotConstructed is returned when a ClothingItem was not
	// created through NewClothingItem.
	ErrClothingItemIsNotConstructed = errors.New("ClothingItem must be created via NewClothingItem constructor")

	// ErrPriceEntryIsNotConstructed is returned when a PriceEntry was not
	// created through NewPriceEntry.
	ErrPriceEntryIsNotConstructed = errors.New("PriceEntry must be created via NewPriceEntry constructor")
)

// ClothingItem is a catalog entry a customer can order services for.
// Orders copy its display name at creation time rather than referencing it,
// so later renames never change historical orders.
type ClothingItem struct {
	id          kernel.UUID
	name        string
	description string

	isConstructed bool
}

// NewClothingItem creates a validated ClothingItem.
func NewClothingItem(id kernel.UUID, name, description string) (*ClothingItem, error) {
	item := &ClothingItem{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
	); err != nil {
		return nil, err
	}

	item.description = description
	return item, nil
}

// Validate ensures the item was created via NewClothingItem.
func (i *ClothingItem) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrClothingItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *ClothingItem) ID() kernel.UUID {
	return i.id
}

// Name returns the item's display name.
func (i *ClothingItem) Name() string {
	return i.name
}

// Description returns the item's description. May be empty.
func (i *ClothingItem) Description() string {
	return i.description
}

func (i *ClothingItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *ClothingItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

// PriceEntry is a pricing fact: (clothing item, service type, category) maps
// to a price. At most one active entry exists per key tuple; that uniqueness
// is enforced by catalog administration and by the storage layer.
type PriceEntry struct {
	id             kernel.UUID
	clothingItemID kernel.UUID
	service        ServiceType
	category       Category
	price          kernel.Money
	active         bool

	isConstructed bool
}

// NewPriceEntry creates a validated, active PriceEntry.
func NewPriceEntry(
	id kernel.UUID,
	clothingItemID kernel.UUID,
	service ServiceType,
	category Category,
	price kernel.Money,
) (*PriceEntry, error) {
	entry := &PriceEntry{
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		entry.setID(id),
		entry.setClothingItemID(clothingItemID),
		entry.setService(service),
		entry.setCategory(category),
		entry.setPrice(price),
	); err != nil {
		return nil, err
	}

	return entry, nil
}

// RestorePriceEntry reconstructs a PriceEntry from persistence, including its
// active flag.
func RestorePriceEntry(
	id kernel.UUID,
	clothingItemID kernel.UUID,
	service ServiceType,
	category Category,
	price kernel.Money,
	active bool,
) (*PriceEntry, error) {
	entry, err := NewPriceEntry(id, clothingItemID, service, category, price)
	if err != nil {
		return nil, err
	}
	entry.active = active
	return entry, nil
}

// Validate ensures the entry was created via NewPriceEntry.
func (e *PriceEntry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrPriceEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e *PriceEntry) ID() kernel.UUID {
	return e.id
}

// ClothingItemID returns the priced item's identifier.
func (e *PriceEntry) ClothingItemID() kernel.UUID {
	return e.clothingItemID
}

// Service returns the priced service type.
func (e *PriceEntry) Service() ServiceType {
	return e.service
}

// Category returns the priced garment category.
func (e *PriceEntry) Category() Category {
	return e.category
}

// Price returns the unit price for the key tuple.
func (e *PriceEntry) Price() kernel.Money {
	return e.price
}

// Active reports whether this entry currently participates in pricing.
func (e *PriceEntry) Active() bool {
	return e.active
}

// Deactivate retires the entry from pricing. Historical orders are unaffected
// because they snapshot prices at creation.
func (e *PriceEntry) Deactivate() {
	e.active = false
}

func (e *PriceEntry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *PriceEntry) setClothingItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.clothingItemID = id
	return nil
}

func (e *PriceEntry) setService(service ServiceType) error {
	if err := service.Validate(); err != nil {
		return err
	}
	e.service = service
	return nil
}

func (e *PriceEntry) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	e.category = category
	return nil
}

func (e *PriceEntry) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	e.price = price
	return nil
}
