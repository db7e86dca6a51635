// Package jobs contains the scheduled background work driven by cron.
package jobs

import (
	"context"
	"log/slog"
	"time"

	"foodorder/internal/core/ports"
	"foodorder/internal/notifier"

	"github.com/robfig/cron/v3"
)

// PickupReminderJob nudges customers whose Ready order has been waiting
// past its estimated pickup time. Runs every minute and dispatches a
// pickup_reminder payload to each affected customer's live sessions.
// Reminders are live-channel only and best effort: an offline customer
// simply misses the nudge.
type PickupReminderJob struct {
	orders     ports.OrderRepository
	dispatcher *notifier.Dispatcher
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewPickupReminderJob creates a new job for overdue pickup reminders.
func NewPickupReminderJob(
	orders ports.OrderRepository,
	dispatcher *notifier.Dispatcher,
	logger *slog.Logger,
) *PickupReminderJob {
	return &PickupReminderJob{
		orders:     orders,
		dispatcher: dispatcher,
		cron:       cron.New(),
		logger:     logger.With("component", "pickup_reminder_job"),
	}
}

// Start begins the pickup reminder job to run every minute.
func (j *PickupReminderJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		if err := j.remindOverdue(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Pickup reminder sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pickup reminder job started (running every minute)")
	return nil
}

// Stop stops the pickup reminder job.
func (j *PickupReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pickup reminder job stopped")
}

// remindOverdue performs one sweep: every Ready order whose estimated
// pickup time has passed gets exactly one pickup_reminder dispatch.
func (j *PickupReminderJob) remindOverdue(ctx context.Context) error {
	overdue, err := j.orders.GetAllReadyBefore(ctx, time.Now().UTC())
	if err != nil {
		return err
	}

	for _, o := range overdue {
		readySince := o.CreatedAt()
		if estimate := o.EstimatedPickupAt(); estimate != nil {
			readySince = *estimate
		}

		payload, err := notifier.NewPickupReminderPayload(
			o.ID().String(), o.OrderNumber(), readySince)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pickup reminder payload failed",
				"order", o.OrderNumber(), "error", err)
			continue
		}

		result := j.dispatcher.Dispatch(notifier.CustomerKey(o.CustomerID()), payload)
		j.logger.DebugContext(ctx, "Pickup reminder dispatched",
			"order", o.OrderNumber(), "delivered", result.Delivered)
	}

	return nil
}
