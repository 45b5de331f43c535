package queries

import (
	"context"
	"math"
	"time"

	"gorm.io/gorm"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"
)

// GetDeliveryStatsQueryHandler produces statistics for one delivery person:
// all-time status buckets, delivered counts over rolling windows, revenue
// over delivered orders and the average delivery duration.
type GetDeliveryStatsQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewGetDeliveryStatsQueryHandler creates a handler for per-person
// statistics.
func NewGetDeliveryStatsQueryHandler(db *gorm.DB, policy services.AccessPolicy) GetDeliveryStatsQueryHandler {
	return GetDeliveryStatsQueryHandler{db: db, policy: policy}
}

// Handle executes the aggregation. The day window starts at local midnight,
// the week window 7 days back, the month window one calendar month back.
func (h GetDeliveryStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryStatsQuery,
) (DeliveryStatsResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryStatsResponse{}, err
	}

	actor := query.Actor()
	if !h.policy.CanViewDeliveryStats(actor, query.DeliveryPersonID()) {
		return DeliveryStatsResponse{}, errs.NewForbiddenError(actor.ID.String(), "view delivery statistics")
	}

	deliveryPersonID := query.DeliveryPersonID().Bytes()

	statusCounts := make(map[string]int)
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM orders
		WHERE delivery_person_id = ?
		GROUP BY status
	`, deliveryPersonID).Rows()
	if err != nil {
		return DeliveryStatsResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int
		if err = rows.Scan(&status, &count); err != nil {
			return DeliveryStatsResponse{}, err
		}
		statusCounts[status] = count
	}
	if err = rows.Err(); err != nil {
		return DeliveryStatsResponse{}, err
	}

	now := time.Now()
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAgo := now.AddDate(0, 0, -7)
	monthAgo := now.AddDate(0, -1, 0)

	var deliveredToday, deliveredThisWeek, deliveredThisMonth int
	var totalRevenue int64
	var avgSeconds float64
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE updated_at >= ?),
			COUNT(*) FILTER (WHERE updated_at >= ?),
			COUNT(*) FILTER (WHERE updated_at >= ?),
			COALESCE(SUM(grand_total), 0),
			COALESCE(AVG(EXTRACT(EPOCH FROM (updated_at - created_at))), 0)
		FROM orders
		WHERE delivery_person_id = ? AND status = ?
	`, startOfToday, weekAgo, monthAgo, deliveryPersonID, order.StatusDelivered.String()).Row()
	if err = row.Scan(&deliveredToday, &deliveredThisWeek, &deliveredThisMonth,
		&totalRevenue, &avgSeconds); err != nil {
		return DeliveryStatsResponse{}, err
	}

	return BuildDeliveryStats(query, statusCounts, deliveredToday, deliveredThisWeek,
		deliveredThisMonth, totalRevenue, avgSeconds), nil
}

// BuildDeliveryStats assembles the response, converting the average delivery
// duration from seconds to hours rounded to two decimal places.
func BuildDeliveryStats(
	query GetDeliveryStatsQuery,
	statusCounts map[string]int,
	deliveredToday, deliveredThisWeek, deliveredThisMonth int,
	totalRevenue int64,
	avgDurationSeconds float64,
) DeliveryStatsResponse {
	if statusCounts == nil {
		statusCounts = make(map[string]int)
	}
	return DeliveryStatsResponse{
		DeliveryPersonID:     query.DeliveryPersonID().Bytes(),
		StatusCounts:         statusCounts,
		DeliveredToday:       deliveredToday,
		DeliveredThisWeek:    deliveredThisWeek,
		DeliveredThisMonth:   deliveredThisMonth,
		TotalRevenue:         totalRevenue,
		AverageDeliveryHours: math.Round(avgDurationSeconds/3600*100) / 100,
	}
}
