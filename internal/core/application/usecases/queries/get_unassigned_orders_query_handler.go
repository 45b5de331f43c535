package queries

import (
	"context"

	"gorm.io/gorm"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"
)

// GetUnassignedOrdersQueryHandler lists the pool of orders awaiting a
// delivery person.
type GetUnassignedOrdersQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewGetUnassignedOrdersQueryHandler creates a handler for the unassigned
// order pool.
func NewGetUnassignedOrdersQueryHandler(db *gorm.DB, policy services.AccessPolicy) GetUnassignedOrdersQueryHandler {
	return GetUnassignedOrdersQueryHandler{db: db, policy: policy}
}

// Handle executes the query, oldest orders first.
func (h GetUnassignedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnassignedOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor := query.Actor()
	if !h.policy.CanListUnassigned(actor) {
		return nil, errs.NewForbiddenError(actor.ID.String(), "list unassigned orders")
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE status = ? AND delivery_person_id IS NULL
		ORDER BY created_at
	`, order.StatusRequested.String()).Rows()
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
