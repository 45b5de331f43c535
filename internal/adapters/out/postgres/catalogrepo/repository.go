package catalogrepo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// GormPriceCatalog implements ports.PriceCatalog using GORM. It also carries
// the write operations catalog seeding and tests use; the order engine only
// ever reads through the port.
type GormPriceCatalog struct {
	db *gorm.DB
}

// NewGormPriceCatalog creates a new GORM price catalog.
func NewGormPriceCatalog(db *gorm.DB) *GormPriceCatalog {
	return &GormPriceCatalog{db: db}
}

// GetItem retrieves a clothing item by ID.
func (r *GormPriceCatalog) GetItem(ctx context.Context, itemID kernel.UUID) (*catalog.ClothingItem, error) {
	if err := itemID.Validate(); err != nil {
		return nil, err
	}

	var dto ClothingItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", itemID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("clothing item", itemID.String())
		}
		return nil, err
	}

	return itemToDomain(dto)
}

// ResolvePrice returns the active price for the (item, service, category)
// key tuple. A missing or deactivated entry is reported as not found; the
// pricing calculator turns that into a pricing-unavailable failure.
func (r *GormPriceCatalog) ResolvePrice(
	ctx context.Context,
	itemID kernel.UUID,
	service catalog.ServiceType,
	category catalog.Category,
) (kernel.Money, error) {
	if err := errors.Join(itemID.Validate(), service.Validate(), category.Validate()); err != nil {
		return 0, err
	}

	var dto PriceEntryDTO
	err := r.db.WithContext(ctx).First(&dto,
		"clothing_item_id = ? AND service = ? AND category = ? AND active",
		itemID.Bytes(), service.String(), category.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			key := fmt.Sprintf("%s/%s/%s", itemID.String(), service.String(), category.String())
			return 0, errs.NewObjectNotFoundError("price entry", key)
		}
		return 0, err
	}

	return kernel.Money(dto.Price), nil
}

// AddItem saves a new clothing item. Used by catalog seeding and tests.
func (r *GormPriceCatalog) AddItem(ctx context.Context, item *catalog.ClothingItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := itemFromDomain(item)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// AddPriceEntry saves a new price entry, deactivating any previously active
// entry for the same key tuple so resolution stays unambiguous.
func (r *GormPriceCatalog) AddPriceEntry(ctx context.Context, entry *catalog.PriceEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := entryFromDomain(entry)
	if dto.Active {
		err := r.db.WithContext(ctx).Model(&PriceEntryDTO{}).
			Where("clothing_item_id = ? AND service = ? AND category = ? AND active",
				dto.ClothingItemID, dto.Service, dto.Category).
			Update("active", false).Error
		if err != nil {
			return err
		}
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}
