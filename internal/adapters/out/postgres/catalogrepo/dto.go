// Package catalogrepo provides data transfer objects and mapping functions
// for the clothing item catalog and its price entries. Pricing resolves one
// active entry per (item, service, category) key tuple.
package catalogrepo

import (
	"github.com/google/uuid"

	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"
)

// ClothingItemDTO represents the database structure for catalog items.
type ClothingItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	Description string
}

// TableName overrides GORM's default naming convention.
func (ClothingItemDTO) TableName() string {
	return "clothing_items"
}

// PriceEntryDTO represents the database structure for price entries.
// The key tuple is indexed for the resolve lookup; only one entry per tuple
// should be active at a time, which catalog administration maintains by
// deactivating the old entry before inserting a replacement.
type PriceEntryDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClothingItemID uuid.UUID `gorm:"type:uuid;index:idx_price_key"`
	Service        string    `gorm:"type:varchar(32);index:idx_price_key"`
	Category       string    `gorm:"type:varchar(32);index:idx_price_key"`
	Price          int64
	Active         bool
}

// TableName overrides GORM's default naming convention.
func (PriceEntryDTO) TableName() string {
	return "price_entries"
}

func itemFromDomain(item *catalog.ClothingItem) ClothingItemDTO {
	return ClothingItemDTO{
		ID:          item.ID().Bytes(),
		Name:        item.Name(),
		Description: item.Description(),
	}
}

func itemToDomain(dto ClothingItemDTO) (*catalog.ClothingItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return catalog.NewClothingItem(id, dto.Name, dto.Description)
}

func entryFromDomain(entry *catalog.PriceEntry) PriceEntryDTO {
	return PriceEntryDTO{
		ID:             entry.ID().Bytes(),
		ClothingItemID: entry.ClothingItemID().Bytes(),
		Service:        entry.Service().String(),
		Category:       entry.Category().String(),
		Price:          int64(entry.Price()),
		Active:         entry.Active(),
	}
}
