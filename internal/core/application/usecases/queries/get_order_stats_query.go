package queries

import (
	"errors"

	"laundry/internal/core/domain/model/user"
	"laundry/internal/pkg/guard"
)

var ErrGetOrderStatsQueryIsNotConstructed = errors.New(
	"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
)

// GetOrderStatsQuery produces fleet-wide order statistics for the admin
// dashboard: per-status counts, derived roll-ups, and today's volume and
// revenue.
type GetOrderStatsQuery struct {
	actor user.Actor

	guard guard.ConstructorGuard
}

// NewGetOrderStatsQuery creates a query for fleet-wide statistics.
func NewGetOrderStatsQuery(actor user.Actor) (GetOrderStatsQuery, error) {
	if err := errors.Join(actor.ID.Validate(), actor.Role.Validate()); err != nil {
		return GetOrderStatsQuery{}, err
	}
	return GetOrderStatsQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

// Actor returns the authenticated identity making the request.
func (q GetOrderStatsQuery) Actor() user.Actor {
	return q.actor
}

// OrderStatsResponse is the fleet-wide statistics read model.
// totalOrders always equals the sum of the status buckets.
type OrderStatsResponse struct {
	TotalOrders      int            `json:"totalOrders"`
	PendingOrders    int            `json:"pendingOrders"`
	InProgressOrders int            `json:"inProgressOrders"`
	CompletedOrders  int            `json:"completedOrders"`
	CancelledOrders  int            `json:"cancelledOrders"`
	StatusCounts     map[string]int `json:"statusCounts"`
	TodayOrders      int            `json:"todayOrders"`
	TodayRevenue     int64          `json:"todayRevenue"`
}
