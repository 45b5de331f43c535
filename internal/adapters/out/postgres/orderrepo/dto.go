// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
//
// An order is stored as a single row; line items and status history live in
// JSONB columns as ordered sequences, so the creation-time snapshot and the
// history-mirrors-lifecycle invariants survive without join-time drift.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by status for the unassigned pool scan and by customer and delivery
// person for the list queries. Version backs the conditional update.
type OrderDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID       uuid.UUID  `gorm:"type:uuid;index"`
	DeliveryPersonID *uuid.UUID `gorm:"type:uuid;index"`
	Status           string     `gorm:"type:varchar(32);index"`

	Items         LineItemsJSON     `gorm:"type:jsonb"`
	StatusHistory StatusHistoryJSON `gorm:"type:jsonb"`

	ItemsTotal     int64
	DeliveryCharge int64
	GrandTotal     int64

	PickupAddress         string
	DeliveryAddress       string
	Notes                 string
	ScheduledPickupTime   *time.Time
	EstimatedDeliveryTime *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
	Version   int
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemJSON is the JSONB encoding of one priced order line. The tags are
// the storage format the read-side queries decode, so they never change
// meaning once written.
type LineItemJSON struct {
	ClothingItemID uuid.UUID `json:"clothingItemId"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	Services       []string  `json:"services"`
	Quantity       int       `json:"quantity"`
	UnitPrice      int64     `json:"unitPrice"`
	Subtotal       int64     `json:"subtotal"`
}

// LineItemsJSON stores the ordered line items of one order as a JSONB array.
type LineItemsJSON []LineItemJSON

func (v LineItemsJSON) Value() (driver.Value, error) {
	return json.Marshal(v)
}

func (v *LineItemsJSON) Scan(src any) error {
	return scanJSON(src, v)
}

// StatusChangeJSON is the JSONB encoding of one status history entry.
type StatusChangeJSON struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note,omitempty"`
	UpdatedBy uuid.UUID `json:"updatedBy"`
}

// StatusHistoryJSON stores the append-only status history as a JSONB array.
type StatusHistoryJSON []StatusChangeJSON

func (v StatusHistoryJSON) Value() (driver.Value, error) {
	return json.Marshal(v)
}

func (v *StatusHistoryJSON) Scan(src any) error {
	return scanJSON(src, v)
}

func scanJSON(src, dest any) error {
	switch data := src.(type) {
	case []byte:
		return json.Unmarshal(data, dest)
	case string:
		return json.Unmarshal([]byte(data), dest)
	case nil:
		return nil
	default:
		return fmt.Errorf("unsupported jsonb source type %T", src)
	}
}

// fromDomain converts an order domain aggregate to its database
// representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var deliveryPersonID *uuid.UUID
	if id := aggregate.DeliveryPerson(); id != nil {
		raw := id.Bytes()
		deliveryPersonID = &raw
	}

	items := make(LineItemsJSON, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		services := make([]string, 0, len(item.Services()))
		for _, service := range item.Services() {
			services = append(services, service.String())
		}
		items = append(items, LineItemJSON{
			ClothingItemID: item.ClothingItemID().Bytes(),
			Name:           item.Name(),
			Category:       item.Category().String(),
			Services:       services,
			Quantity:       item.Quantity(),
			UnitPrice:      int64(item.UnitPrice()),
			Subtotal:       int64(item.Subtotal()),
		})
	}

	history := make(StatusHistoryJSON, 0, len(aggregate.History()))
	for _, change := range aggregate.History() {
		history = append(history, StatusChangeJSON{
			Status:    change.Status().String(),
			Timestamp: change.Timestamp(),
			Note:      change.Note(),
			UpdatedBy: change.UpdatedBy().Bytes(),
		})
	}

	details := aggregate.Details()
	pricing := aggregate.Pricing()

	return OrderDTO{
		ID:                    aggregate.ID().Bytes(),
		CustomerID:            aggregate.CustomerID().Bytes(),
		DeliveryPersonID:      deliveryPersonID,
		Status:                aggregate.Status().String(),
		Items:                 items,
		StatusHistory:         history,
		ItemsTotal:            int64(pricing.ItemsTotal),
		DeliveryCharge:        int64(pricing.DeliveryCharge),
		GrandTotal:            int64(pricing.GrandTotal),
		PickupAddress:         details.PickupAddress,
		DeliveryAddress:       details.DeliveryAddress,
		Notes:                 details.Notes,
		ScheduledPickupTime:   details.ScheduledPickupTime,
		EstimatedDeliveryTime: details.EstimatedDeliveryTime,
		CreatedAt:             aggregate.CreatedAt(),
		UpdatedAt:             aggregate.UpdatedAt(),
		Version:               aggregate.Version(),
	}
}

// toDomain converts a database DTO back to an order domain aggregate using
// RestoreOrder, which revalidates the structural invariants.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var deliveryPersonID *kernel.UUID
	if dto.DeliveryPersonID != nil {
		restored, idErr := kernel.UUIDFromBytes((*dto.DeliveryPersonID)[:])
		if idErr != nil {
			return nil, idErr
		}
		deliveryPersonID = &restored
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, raw := range dto.Items {
		item, itemErr := lineItemToDomain(raw)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	history := make([]order.StatusChange, 0, len(dto.StatusHistory))
	for _, raw := range dto.StatusHistory {
		change, changeErr := statusChangeToDomain(raw)
		if changeErr != nil {
			return nil, changeErr
		}
		history = append(history, change)
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	pricing, err := order.NewPricing(kernel.Money(dto.ItemsTotal), kernel.Money(dto.DeliveryCharge))
	if err != nil {
		return nil, err
	}

	details := order.Details{
		PickupAddress:         dto.PickupAddress,
		DeliveryAddress:       dto.DeliveryAddress,
		Notes:                 dto.Notes,
		ScheduledPickupTime:   dto.ScheduledPickupTime,
		EstimatedDeliveryTime: dto.EstimatedDeliveryTime,
	}

	return order.RestoreOrder(id, customerID, deliveryPersonID, items, pricing,
		status, history, details, dto.CreatedAt, dto.UpdatedAt, dto.Version)
}

func lineItemToDomain(raw LineItemJSON) (order.LineItem, error) {
	clothingItemID, err := kernel.UUIDFromBytes(raw.ClothingItemID[:])
	if err != nil {
		return order.LineItem{}, err
	}
	category, err := catalog.CategoryFromString(raw.Category)
	if err != nil {
		return order.LineItem{}, err
	}

	services := make([]catalog.ServiceType, 0, len(raw.Services))
	for _, s := range raw.Services {
		service, serviceErr := catalog.ServiceTypeFromString(s)
		if serviceErr != nil {
			return order.LineItem{}, serviceErr
		}
		services = append(services, service)
	}

	return order.NewLineItem(clothingItemID, raw.Name, category, services,
		raw.Quantity, kernel.Money(raw.UnitPrice))
}

func statusChangeToDomain(raw StatusChangeJSON) (order.StatusChange, error) {
	status, err := order.StatusFromString(raw.Status)
	if err != nil {
		return order.StatusChange{}, err
	}
	updatedBy, err := kernel.UUIDFromBytes(raw.UpdatedBy[:])
	if err != nil {
		return order.StatusChange{}, err
	}

	return order.NewStatusChange(status, raw.Timestamp, raw.Note, updatedBy)
}
