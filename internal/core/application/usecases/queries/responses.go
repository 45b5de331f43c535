// Package queries contains read-only operations for the order system.
// Implements the Query side of CQRS, reading directly from the database
// and returning response shapes the API boundary serializes as-is.
package queries

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// LineItemResponse is one priced order line. The JSON tags double as the
// storage encoding of the embedded items column, so reads decode the rows
// the write side produced.
type LineItemResponse struct {
	ClothingItemID uuid.UUID `json:"clothingItemId"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	Services       []string  `json:"services"`
	Quantity       int       `json:"quantity"`
	UnitPrice      int64     `json:"unitPrice"`
	Subtotal       int64     `json:"subtotal"`
}

// StatusChangeResponse is one status history entry.
type StatusChangeResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note,omitempty"`
	UpdatedBy uuid.UUID `json:"updatedBy"`
}

// OrderResponse is the full read model of an order.
type OrderResponse struct {
	ID                    uuid.UUID              `json:"id"`
	CustomerID            uuid.UUID              `json:"customerId"`
	DeliveryPersonID      *uuid.UUID             `json:"deliveryPersonId,omitempty"`
	Status                string                 `json:"status"`
	Items                 []LineItemResponse     `json:"items"`
	ItemsTotal            int64                  `json:"itemsTotal"`
	DeliveryCharge        int64                  `json:"deliveryCharge"`
	GrandTotal            int64                  `json:"grandTotal"`
	PickupAddress         string                 `json:"pickupAddress"`
	DeliveryAddress       string                 `json:"deliveryAddress"`
	Notes                 string                 `json:"notes,omitempty"`
	ScheduledPickupTime   *time.Time             `json:"scheduledPickupTime,omitempty"`
	EstimatedDeliveryTime *time.Time             `json:"estimatedDeliveryTime,omitempty"`
	StatusHistory         []StatusChangeResponse `json:"statusHistory"`
	CreatedAt             time.Time              `json:"createdAt"`
	UpdatedAt             time.Time              `json:"updatedAt"`
}

// orderColumns is the select list scanOrderRow expects, in scan order.
const orderColumns = `
	id,
	customer_id,
	delivery_person_id,
	status,
	items,
	status_history,
	items_total,
	delivery_charge,
	grand_total,
	pickup_address,
	delivery_address,
	notes,
	scheduled_pickup_time,
	estimated_delivery_time,
	created_at,
	updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderRow(row rowScanner) (OrderResponse, error) {
	var (
		resp                  OrderResponse
		deliveryPersonID      uuid.NullUUID
		itemsJSON             []byte
		historyJSON           []byte
		scheduledPickupTime   sql.NullTime
		estimatedDeliveryTime sql.NullTime
	)

	err := row.Scan(
		&resp.ID,
		&resp.CustomerID,
		&deliveryPersonID,
		&resp.Status,
		&itemsJSON,
		&historyJSON,
		&resp.ItemsTotal,
		&resp.DeliveryCharge,
		&resp.GrandTotal,
		&resp.PickupAddress,
		&resp.DeliveryAddress,
		&resp.Notes,
		&scheduledPickupTime,
		&estimatedDeliveryTime,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	if deliveryPersonID.Valid {
		id := deliveryPersonID.UUID
		resp.DeliveryPersonID = &id
	}
	if scheduledPickupTime.Valid {
		t := scheduledPickupTime.Time
		resp.ScheduledPickupTime = &t
	}
	if estimatedDeliveryTime.Valid {
		t := estimatedDeliveryTime.Time
		resp.EstimatedDeliveryTime = &t
	}

	if err = json.Unmarshal(itemsJSON, &resp.Items); err != nil {
		return OrderResponse{}, err
	}
	if err = json.Unmarshal(historyJSON, &resp.StatusHistory); err != nil {
		return OrderResponse{}, err
	}

	return resp, nil
}
