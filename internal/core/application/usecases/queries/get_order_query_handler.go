package queries

import (
	"context"

	"gorm.io/gorm"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"
)

// GetOrderQueryHandler reads a single order from the database and enforces
// the visibility rule before returning it. Permission failures are reported
// distinctly from not found, and only after the row is known to exist, so
// 403 never doubles as an existence probe for ids the caller guessed.
type GetOrderQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewGetOrderQueryHandler creates a handler for single order reads.
func NewGetOrderQueryHandler(db *gorm.DB, policy services.AccessPolicy) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, policy: policy}
}

// Handle executes the query. Returns ObjectNotFoundError when the order does
// not exist and ForbiddenError when the actor may not see it.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	resp, err := scanOrderRow(rows)
	if err != nil {
		return OrderResponse{}, err
	}

	customerID, err := kernel.UUIDFromBytes(resp.CustomerID[:])
	if err != nil {
		return OrderResponse{}, err
	}
	var deliveryPersonID *kernel.UUID
	if resp.DeliveryPersonID != nil {
		id, idErr := kernel.UUIDFromBytes(resp.DeliveryPersonID[:])
		if idErr != nil {
			return OrderResponse{}, idErr
		}
		deliveryPersonID = &id
	}

	actor := query.Actor()
	if !h.policy.CanViewOrderOwnedBy(actor, customerID, deliveryPersonID) {
		return OrderResponse{}, errs.NewForbiddenError(actor.ID.String(), "view order")
	}

	return resp, nil
}
