package queries

import (
	"context"

	"gorm.io/gorm"

	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"
)

// GetAssignedOrdersQueryHandler lists the current workload of one delivery
// person.
type GetAssignedOrdersQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewGetAssignedOrdersQueryHandler creates a handler for assigned order lists.
func NewGetAssignedOrdersQueryHandler(db *gorm.DB, policy services.AccessPolicy) GetAssignedOrdersQueryHandler {
	return GetAssignedOrdersQueryHandler{db: db, policy: policy}
}

// Handle executes the query, newest orders first.
func (h GetAssignedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAssignedOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor := query.Actor()
	if !h.policy.CanListAssignedOrders(actor, query.DeliveryPersonID()) {
		return nil, errs.NewForbiddenError(actor.ID.String(), "list assigned orders")
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE delivery_person_id = ?
		ORDER BY created_at DESC
	`, query.DeliveryPersonID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
