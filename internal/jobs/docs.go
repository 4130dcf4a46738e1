// Package jobs provides scheduled background tasks for the kitchen service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. BacklogReportJob - Counts orders per status, logs the summary and
// publishes it as the kitchen_orders_by_status gauge.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(countHandler, metrics, "@every 30s", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the six-field cron syntax (seconds first) or descriptors such
// as "@every 30s". An invalid schedule makes StartAll fail.
//
// # Error Handling
//
// A failed run is logged and the previous gauge values are kept; the next
// run starts from scratch.
package jobs
