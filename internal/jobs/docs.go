// Package jobs provides scheduled background tasks for the laundry service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order backlog.
//
// # Available Jobs
//
// 1. UnassignedOrdersJob - Runs every minute and flags requested orders that
// have waited too long without a delivery person.
//
// 2. StatsReportJob - Runs hourly and writes a fleet statistics snapshot to
// the log.
package jobs
