package queries

import (
	"context"

	"gorm.io/gorm"

	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"
)

// GetCustomerOrdersQueryHandler lists all orders placed by one customer.
type GetCustomerOrdersQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer order lists.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB, policy services.AccessPolicy) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db, policy: policy}
}

// Handle executes the query, newest orders first. An empty result is a valid
// empty slice, not an error.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor := query.Actor()
	if !h.policy.CanListCustomerOrders(actor, query.CustomerID()) {
		return nil, errs.NewForbiddenError(actor.ID.String(), "list customer orders")
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE customer_id = ?
		ORDER BY created_at DESC
	`, query.CustomerID().Bytes()).Rows()
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
