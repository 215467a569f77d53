// workers/scheduler.go
package workers

import (
	"context"
	"time"

	"oneearth/logger"
	"oneearth/repository"

	"github.com/go-co-op/gocron/v2"
)

// ScheduleOptions picks which jobs run. A zero interval or nil dependency disables a job.
type ScheduleOptions struct {
	Backup         *BackupWorker
	BackupInterval time.Duration

	Repos                *repository.Repositories
	GaugeRefreshInterval time.Duration
}

// StartScheduler registers the periodic jobs and starts them. Callers shut the scheduler down.
func StartScheduler(ctx context.Context, opts ScheduleOptions, l *logger.Logger) (gocron.Scheduler, error) {
	log := l.Component("scheduler")

	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	if opts.Backup != nil && opts.BackupInterval > 0 {
		_, err = sched.NewJob(
			gocron.DurationJob(opts.BackupInterval),
			gocron.NewTask(func() {
				if _, err := opts.Backup.Run(ctx); err != nil {
					log.WithError(err).Error("❌ [Scheduler] backup failed")
				}
			}),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		)
		if err != nil {
			return nil, err
		}
		log.Infof("✅ backup every %s", opts.BackupInterval)
	}

	if opts.Repos != nil && opts.GaugeRefreshInterval > 0 {
		_, err = sched.NewJob(
			gocron.DurationJob(opts.GaugeRefreshInterval),
			gocron.NewTask(func() {
				if err := RefreshGauges(ctx, opts.Repos); err != nil {
					log.WithError(err).Warn("⚠️ [Scheduler] gauge refresh failed")
				}
			}),
			gocron.WithStartAt(gocron.WithStartImmediately()),
		)
		if err != nil {
			return nil, err
		}
	}

	sched.Start()
	return sched, nil
}
