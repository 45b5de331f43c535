package queries

import (
	"context"
	"time"

	"gorm.io/gorm"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"
)

// GetOrderStatsQueryHandler produces fleet-wide statistics. Admin only.
// Reads are aggregate-only and tolerate slight staleness; the composition
// root may wrap this handler in a short-lived cache.
type GetOrderStatsQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewGetOrderStatsQueryHandler creates a handler for fleet statistics.
func NewGetOrderStatsQueryHandler(db *gorm.DB, policy services.AccessPolicy) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db, policy: policy}
}

// Handle executes the aggregation. Today's bucket uses the server's local
// start of day against createdAt.
func (h GetOrderStatsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatsQuery,
) (OrderStatsResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderStatsResponse{}, err
	}

	actor := query.Actor()
	if !h.policy.CanViewFleetStats(actor) {
		return OrderStatsResponse{}, errs.NewForbiddenError(actor.ID.String(), "view fleet statistics")
	}

	statusCounts, err := h.countByStatus(ctx)
	if err != nil {
		return OrderStatsResponse{}, err
	}

	now := time.Now()
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var todayOrders int
	var todayRevenue int64
	row := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*), COALESCE(SUM(grand_total), 0)
		FROM orders
		WHERE created_at >= ?
	`, startOfToday).Row()
	if err = row.Scan(&todayOrders, &todayRevenue); err != nil {
		return OrderStatsResponse{}, err
	}

	return BuildOrderStats(statusCounts, todayOrders, todayRevenue), nil
}

func (h GetOrderStatsQueryHandler) countByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err = rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

// BuildOrderStats derives the fleet roll-ups from per-status bucket counts.
// Pending is REQUESTED, in progress spans pickup through delivery run,
// completed is DELIVERED, and the total is the sum of every bucket.
func BuildOrderStats(statusCounts map[string]int, todayOrders int, todayRevenue int64) OrderStatsResponse {
	resp := OrderStatsResponse{
		StatusCounts: statusCounts,
		TodayOrders:  todayOrders,
		TodayRevenue: todayRevenue,
	}
	if resp.StatusCounts == nil {
		resp.StatusCounts = make(map[string]int)
	}

	resp.PendingOrders = statusCounts[order.StatusRequested.String()]
	resp.InProgressOrders = statusCounts[order.StatusPickedUp.String()] +
		statusCounts[order.StatusInLaundry.String()] +
		statusCounts[order.StatusOutForDelivery.String()]
	resp.CompletedOrders = statusCounts[order.StatusDelivered.String()]
	resp.CancelledOrders = statusCounts[order.StatusCancelled.String()]

	for _, count := range statusCounts {
		resp.TotalOrders += count
	}

	return resp
}
