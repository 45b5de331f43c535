package queries_test

import (
	"testing"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOrderStats(t *testing.T) {
	t.Run("derives roll-ups from status buckets", func(t *testing.T) {
		counts := map[string]int{
			"REQUESTED": 3,
			"DELIVERED": 2,
			"CANCELLED": 1,
		}

		stats := queries.BuildOrderStats(counts, 4, 990)

		assert.Equal(t, 6, stats.TotalOrders)
		assert.Equal(t, 3, stats.PendingOrders)
		assert.Equal(t, 0, stats.InProgressOrders)
		assert.Equal(t, 2, stats.CompletedOrders)
		assert.Equal(t, 1, stats.CancelledOrders)
		assert.Equal(t, 4, stats.TodayOrders)
		assert.Equal(t, int64(990), stats.TodayRevenue)
	})

	t.Run("in progress spans pickup through delivery run", func(t *testing.T) {
		counts := map[string]int{
			"PICKED_UP":        2,
			"IN_LAUNDRY":       3,
			"OUT_FOR_DELIVERY": 1,
		}

		stats := queries.BuildOrderStats(counts, 0, 0)

		assert.Equal(t, 6, stats.InProgressOrders)
		assert.Equal(t, 6, stats.TotalOrders)
		assert.Equal(t, 0, stats.PendingOrders)
	})

	t.Run("total always equals the sum of buckets", func(t *testing.T) {
		counts := map[string]int{
			"REQUESTED":        1,
			"PICKED_UP":        2,
			"IN_LAUNDRY":       3,
			"OUT_FOR_DELIVERY": 4,
			"DELIVERED":        5,
			"CANCELLED":        6,
		}

		stats := queries.BuildOrderStats(counts, 0, 0)

		sum := stats.PendingOrders + stats.InProgressOrders +
			stats.CompletedOrders + stats.CancelledOrders
		assert.Equal(t, 21, stats.TotalOrders)
		assert.Equal(t, stats.TotalOrders, sum)
	})

	t.Run("empty collection yields zeros", func(t *testing.T) {
		stats := queries.BuildOrderStats(nil, 0, 0)

		assert.Zero(t, stats.TotalOrders)
		assert.Zero(t, stats.PendingOrders)
		assert.NotNil(t, stats.StatusCounts)
	})
}

func TestBuildDeliveryStats(t *testing.T) {
	courierID := kernel.NewUUID()
	admin := user.Actor{ID: kernel.NewUUID(), Role: user.RoleAdmin}
	query, err := queries.NewGetDeliveryStatsQuery(courierID, admin)
	require.NoError(t, err)

	t.Run("converts average duration to hours rounded to two decimals", func(t *testing.T) {
		// 9000 seconds is 2.5 hours
		stats := queries.BuildDeliveryStats(query, map[string]int{"DELIVERED": 2}, 1, 2, 2, 380, 9000)

		assert.Equal(t, courierID.Bytes(), stats.DeliveryPersonID)
		assert.Equal(t, 1, stats.DeliveredToday)
		assert.Equal(t, 2, stats.DeliveredThisWeek)
		assert.Equal(t, 2, stats.DeliveredThisMonth)
		assert.Equal(t, int64(380), stats.TotalRevenue)
		assert.InDelta(t, 2.5, stats.AverageDeliveryHours, 0.0001)
	})

	t.Run("rounds to two decimal places", func(t *testing.T) {
		// 5000 seconds is 1.3888... hours, rounds to 1.39
		stats := queries.BuildDeliveryStats(query, nil, 0, 0, 0, 0, 5000)

		assert.InDelta(t, 1.39, stats.AverageDeliveryHours, 0.0001)
	})

	t.Run("no delivered orders yields zero revenue and duration", func(t *testing.T) {
		stats := queries.BuildDeliveryStats(query, map[string]int{"PICKED_UP": 1}, 0, 0, 0, 0, 0)

		assert.Zero(t, stats.TotalRevenue)
		assert.Zero(t, stats.AverageDeliveryHours)
		assert.Equal(t, 1, stats.StatusCounts["PICKED_UP"])
	})
}
