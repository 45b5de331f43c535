package jobs

import (
	"context"
	"log/slog"
	"time"

	"laundry/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// UnassignedOrdersJob watches the assignment backlog. Runs every minute and
// warns about requested orders that have waited longer than the threshold
// without a delivery person, so operators notice a stalling queue.
type UnassignedOrdersJob struct {
	uowFactory commands.OrderUoWFactory
	threshold  time.Duration
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewUnassignedOrdersJob creates the backlog watcher. threshold is how long
// an order may sit unassigned before it is reported.
func NewUnassignedOrdersJob(
	uowFactory commands.OrderUoWFactory,
	threshold time.Duration,
	logger *slog.Logger,
) *UnassignedOrdersJob {
	return &UnassignedOrdersJob{
		uowFactory: uowFactory,
		threshold:  threshold,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "unassigned_orders_job"),
	}
}

// Start begins the backlog check, running at the top of every minute.
func (j *UnassignedOrdersJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		if err := j.run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Unassigned orders check failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Unassigned orders job started (running every minute)")
	return nil
}

// Stop stops the backlog check.
func (j *UnassignedOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Unassigned orders job stopped")
}

func (j *UnassignedOrdersJob) run(ctx context.Context) error {
	uow := j.uowFactory.Create()

	orders, err := uow.OrderRepository().GetUnassigned(ctx)
	if err != nil {
		return err
	}

	cutoff := time.Now().Add(-j.threshold)
	stale := 0
	for _, aggregate := range orders {
		if aggregate.CreatedAt().Before(cutoff) {
			stale++
			j.logger.WarnContext(ctx, "Order waiting too long for assignment",
				"order_id", aggregate.ID().String(),
				"waiting_since", aggregate.CreatedAt(),
			)
		}
	}

	j.logger.DebugContext(ctx, "Unassigned orders checked",
		"total", len(orders),
		"stale", stale,
	)
	return nil
}
