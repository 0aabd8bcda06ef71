package worker

import (
	"context"

	"github.com/campushub/portal-backend/internal/service"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Pending applications older than this many days are flagged in the
// daily maintenance log so faculty can clear the backlog.
const stalePendingDays = 14

// MaintenanceWorker runs the daily housekeeping jobs: purging expired
// notices and reporting stale pending leave applications.
type MaintenanceWorker struct {
	notices *service.NoticeService
	leaves  *service.LeaveService
	cron    *cron.Cron
	log     zerolog.Logger
}

// NewMaintenanceWorker creates a new MaintenanceWorker.
func NewMaintenanceWorker(notices *service.NoticeService, leaves *service.LeaveService, log zerolog.Logger) *MaintenanceWorker {
	return &MaintenanceWorker{
		notices: notices,
		leaves:  leaves,
		cron:    cron.New(),
		log:     log.With().Str("component", "maintenance_worker").Logger(),
	}
}

// Start schedules the daily job and begins the cron loop. Call Stop on
// shutdown.
func (w *MaintenanceWorker) Start() error {
	_, err := w.cron.AddFunc("@daily", func() {
		w.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	w.cron.Start()
	w.log.Info().Msg("Maintenance worker started")
	return nil
}

// Stop halts the cron scheduler and waits for a running job to finish.
func (w *MaintenanceWorker) Stop() {
	ctx := w.cron.Stop()
	<-ctx.Done()
	w.log.Info().Msg("Maintenance worker stopped")
}

// RunOnce executes the housekeeping pass. Exposed for manual runs.
func (w *MaintenanceWorker) RunOnce(ctx context.Context) {
	purged, err := w.notices.PurgeExpired(ctx)
	if err != nil {
		w.log.Error().Err(err).Msg("Expired notice purge failed")
	} else if purged > 0 {
		w.log.Info().Int64("purged", purged).Msg("Expired notices purged")
	}

	stale, err := w.leaves.CountStalePending(ctx, stalePendingDays)
	if err != nil {
		w.log.Error().Err(err).Msg("Stale leave check failed")
	} else if stale > 0 {
		w.log.Warn().
			Int("count", stale).
			Int("older_than_days", stalePendingDays).
			Msg("Pending leave applications need attention")
	}
}
