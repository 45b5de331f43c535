package ports

import (
	"context"

	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"
)

// PriceCatalog is the read contract the pricing calculator has on the
// catalog: display data for snapshotting and the active price per
// (item, service, category) key tuple. Catalog administration is an external
// collaborator; the order engine never writes through this port.
type PriceCatalog interface {
	// GetItem retrieves a clothing item for display-name snapshotting.
	// Returns *errs.ObjectNotFoundError when the item does not exist.
	GetItem(ctx context.Context, itemID kernel.UUID) (*catalog.ClothingItem, error)

	// ResolvePrice returns the active price for the key tuple.
	// Returns *errs.ObjectNotFoundError when no active entry exists; the
	// pricing calculator translates that into a pricing-unavailable failure
	// naming the combination.
	ResolvePrice(
		ctx context.Context,
		itemID kernel.UUID,
		service catalog.ServiceType,
		category catalog.Category,
	) (kernel.Money, error)
}
