package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/user"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	unassignedOrdersJob *UnassignedOrdersJob
	statsReportJob      *StatsReportJob
}

// NewJobManager creates a new job manager with all required jobs wired.
// systemAdmin is the seeded administrator identity the stats reporter reads
// with; staleThreshold is how long an order may wait unassigned before the
// backlog watcher flags it.
func NewJobManager(
	uowFactory commands.OrderUoWFactory,
	statsHandler queries.OrderStatsHandler,
	systemAdmin user.Actor,
	staleThreshold time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		unassignedOrdersJob: NewUnassignedOrdersJob(uowFactory, staleThreshold, logger),
		statsReportJob:      NewStatsReportJob(statsHandler, systemAdmin, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.unassignedOrdersJob.Start(); err != nil {
		return fmt.Errorf("failed to start unassigned orders job: %w", err)
	}

	if err := jm.statsReportJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.unassignedOrdersJob.Stop()
		return fmt.Errorf("failed to start stats report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.unassignedOrdersJob.Stop()
	jm.statsReportJob.Stop()
}
