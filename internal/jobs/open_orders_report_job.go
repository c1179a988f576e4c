package jobs

import (
	"context"
	"log/slog"

	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// OpenOrdersReportJob periodically logs how many orders are waiting in the
// OPEN status. Purely observational; it never mutates state.
type OpenOrdersReportJob struct {
	handler queries.ListOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOpenOrdersReportJob creates a job that reports the open order backlog
// once a minute.
func NewOpenOrdersReportJob(handler queries.ListOrdersQueryHandler, logger *slog.Logger) *OpenOrdersReportJob {
	return &OpenOrdersReportJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "open_orders_report_job"),
	}
}

// Start begins the report job to run every minute.
func (j *OpenOrdersReportJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		openOrders, err := j.handler.Handle(ctx, queries.NewListOrdersQuery(nil, order.Open))
		if err != nil {
			j.logger.ErrorContext(ctx, "Open orders report job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Open orders backlog", "count", len(openOrders))
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Open orders report job started (running every minute)")
	return nil
}

// Stop stops the report job.
func (j *OpenOrdersReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Open orders report job stopped")
}
