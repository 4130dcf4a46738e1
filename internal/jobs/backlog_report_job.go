package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

const backlogReportTimeout = 10 * time.Second

// CountOrdersByStatusHandler is the query the report is built from.
type CountOrdersByStatusHandler interface {
	Handle(ctx context.Context, query queries.CountOrdersByStatusQuery) (map[order.Status]int64, error)
}

// BacklogRecorder receives the per-status totals of every run.
type BacklogRecorder interface {
	SetBacklog(status string, count int64)
}

// BacklogReportJob periodically reports how many orders wait in each status.
type BacklogReportJob struct {
	handler  CountOrdersByStatusHandler
	recorder BacklogRecorder
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewBacklogReportJob creates the job. schedule is parsed when the job starts.
func NewBacklogReportJob(
	handler CountOrdersByStatusHandler,
	recorder BacklogRecorder,
	schedule string,
	logger *slog.Logger,
) *BacklogReportJob {
	return &BacklogReportJob{
		handler:  handler,
		recorder: recorder,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "backlog_report_job"),
	}
}

// Start registers the job on its schedule and starts the scheduler.
func (j *BacklogReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), backlogReportTimeout)
		defer cancel()

		if runErr := j.Run(ctx); runErr != nil {
			j.logger.ErrorContext(ctx, "Backlog report job failed", "error", runErr)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Backlog report job started", "schedule", j.schedule)
	return nil
}

// Run produces one report.
func (j *BacklogReportJob) Run(ctx context.Context) error {
	counts, err := j.handler.Handle(ctx, queries.NewCountOrdersByStatusQuery())
	if err != nil {
		return err
	}

	attrs := make([]any, 0, 2*len(order.Statuses()))
	for _, status := range order.Statuses() {
		j.recorder.SetBacklog(status.String(), counts[status])
		attrs = append(attrs, status.String(), counts[status])
	}
	j.logger.InfoContext(ctx, "Order backlog", attrs...)

	return nil
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *BacklogReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Backlog report job stopped")
}
