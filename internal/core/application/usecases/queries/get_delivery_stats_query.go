package queries

import (
	"errors"

	"github.com/google/uuid"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/user"
	"laundry/internal/pkg/guard"
)

var ErrGetDeliveryStatsQueryIsNotConstructed = errors.New(
	"GetDeliveryStatsQuery must be created via NewGetDeliveryStatsQuery constructor",
)

// GetDeliveryStatsQuery produces per-delivery-person statistics. Delivery
// personnel read their own numbers, admins anyone's.
type GetDeliveryStatsQuery struct {
	deliveryPersonID kernel.UUID
	actor            user.Actor

	guard guard.ConstructorGuard
}

// NewGetDeliveryStatsQuery creates a query for one delivery person's
// statistics.
func NewGetDeliveryStatsQuery(deliveryPersonID kernel.UUID, actor user.Actor) (GetDeliveryStatsQuery, error) {
	if err := errors.Join(deliveryPersonID.Validate(), actor.ID.Validate(), actor.Role.Validate()); err != nil {
		return GetDeliveryStatsQuery{}, err
	}
	return GetDeliveryStatsQuery{
		deliveryPersonID: deliveryPersonID,
		actor:            actor,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryStatsQueryIsNotConstructed)
}

// DeliveryPersonID returns the delivery person the statistics are scoped to.
func (q GetDeliveryStatsQuery) DeliveryPersonID() kernel.UUID {
	return q.deliveryPersonID
}

// Actor returns the authenticated identity making the request.
func (q GetDeliveryStatsQuery) Actor() user.Actor {
	return q.actor
}

// DeliveryStatsResponse is the per-delivery-person statistics read model.
// Delivered windows are measured by updatedAt, which for a DELIVERED order
// is the delivery completion time. An empty DELIVERED set yields zeros.
type DeliveryStatsResponse struct {
	DeliveryPersonID     uuid.UUID      `json:"deliveryPersonId"`
	StatusCounts         map[string]int `json:"statusCounts"`
	DeliveredToday       int            `json:"deliveredToday"`
	DeliveredThisWeek    int            `json:"deliveredThisWeek"`
	DeliveredThisMonth   int            `json:"deliveredThisMonth"`
	TotalRevenue         int64          `json:"totalRevenue"`
	AverageDeliveryHours float64        `json:"averageDeliveryHours"`
}
