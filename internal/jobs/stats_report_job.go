package jobs

import (
	"context"
	"log/slog"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/user"

	"github.com/robfig/cron/v3"
)

// StatsReportJob writes an hourly fleet statistics snapshot to the log. The
// job reads through the same stats handler the API uses, acting as the
// system administrator account the service seeds on startup.
type StatsReportJob struct {
	handler queries.OrderStatsHandler
	actor   user.Actor
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStatsReportJob creates the hourly reporter. actor must carry the admin
// role or every run will be refused.
func NewStatsReportJob(
	handler queries.OrderStatsHandler,
	actor user.Actor,
	logger *slog.Logger,
) *StatsReportJob {
	return &StatsReportJob{
		handler: handler,
		actor:   actor,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stats_report_job"),
	}
}

// Start begins the reporter, running at the top of every hour.
func (j *StatsReportJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()
		if err := j.run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Stats report failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stats report job started (running hourly)")
	return nil
}

// Stop stops the reporter.
func (j *StatsReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stats report job stopped")
}

func (j *StatsReportJob) run(ctx context.Context) error {
	query, err := queries.NewGetOrderStatsQuery(j.actor)
	if err != nil {
		return err
	}

	stats, err := j.handler.Handle(ctx, query)
	if err != nil {
		return err
	}

	j.logger.InfoContext(ctx, "Fleet statistics",
		"total", stats.TotalOrders,
		"pending", stats.PendingOrders,
		"in_progress", stats.InProgressOrders,
		"completed", stats.CompletedOrders,
		"cancelled", stats.CancelledOrders,
		"today_orders", stats.TodayOrders,
		"today_revenue", stats.TodayRevenue,
	)
	return nil
}
