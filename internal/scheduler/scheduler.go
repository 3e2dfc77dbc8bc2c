package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/rogerio-castellano/retail-tracker/internal/alerts"
	"github.com/rogerio-castellano/retail-tracker/internal/archive"
	"github.com/rogerio-castellano/retail-tracker/internal/models"
)

const jobTimeout = 2 * time.Minute

// Scheduler runs the periodic alert digest and report archive jobs.
type Scheduler struct {
	cron     *cron.Cron
	notifier *alerts.Notifier
	archiver archive.Store
	source   alerts.ReportSource
	loc      *time.Location
	logger   *zap.Logger
}

// New creates a scheduler. A nil notifier or archiver disables that job.
func New(source alerts.ReportSource, notifier *alerts.Notifier, archiver archive.Store, loc *time.Location, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if loc == nil {
		loc = time.Local
	}

	return &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		notifier: notifier,
		archiver: archiver,
		source:   source,
		loc:      loc,
		logger:   logger,
	}
}

// Start registers the enabled jobs with their cron specs and starts the scheduler.
func (s *Scheduler) Start(alertsSpec, archiveSpec string) error {
	s.logger.Info("starting scheduler")

	if s.notifier != nil {
		if _, err := s.cron.AddFunc(alertsSpec, s.SendAlertDigest); err != nil {
			return err
		}
		s.logger.Info("alert digest scheduled", zap.String("cron", alertsSpec))
	}

	if s.archiver != nil {
		if _, err := s.cron.AddFunc(archiveSpec, s.ArchiveDailyReport); err != nil {
			return err
		}
		s.logger.Info("report archive scheduled", zap.String("cron", archiveSpec))
	}

	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for running jobs.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) today() models.Date {
	return models.DateOf(time.Now().In(s.loc))
}

func (s *Scheduler) SendAlertDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if _, err := s.notifier.SendDigest(ctx, s.today()); err != nil {
		s.logger.Error("failed to send alert digest", zap.Error(err))
	}
}

func (s *Scheduler) ArchiveDailyReport() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	today := s.today()
	report, err := s.source.Report(ctx, today)
	if err != nil {
		s.logger.Error("failed to build daily report", zap.Error(err))
		return
	}

	if err := s.archiver.SaveDailyReport(ctx, report); err != nil {
		s.logger.Error("failed to archive daily report", zap.Error(err))
		return
	}
	s.logger.Info("daily report archived", zap.Stringer("date", today))
}
