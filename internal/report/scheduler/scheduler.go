package scheduler

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-ledger-service/internal/model"
	"github.com/fekuna/omnipos-ledger-service/internal/report"
	"github.com/fekuna/omnipos-ledger-service/pkg/logger"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const runTimeout = 2 * time.Minute

// Notifier is satisfied by *notifier.WebhookNotifier.
type Notifier interface {
	Notify(ctx context.Context, payload interface{}) error
}

// Scheduler periodically checks for low stock and overdue attributions.
// It only reads; nothing it does changes ledger state.
type Scheduler struct {
	cron     *cron.Cron
	spec     string
	reports  report.UseCase
	notifier Notifier
	logger   logger.ZapLogger
}

// NewScheduler builds a scheduler for the given cron spec. notifier may be
// nil, in which case alerts are only logged.
func NewScheduler(spec string, reports report.UseCase, notifier Notifier, log logger.ZapLogger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithLogger(cronLogger{log: log})),
		spec:     spec,
		reports:  reports,
		notifier: notifier,
		logger:   log,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.run); err != nil {
		return err
	}
	s.logger.Info("starting alert scheduler", zap.String("schedule", s.spec))
	s.cron.Start()
	return nil
}

// Stop waits for a running job to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping alert scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	if _, err := s.RunOnce(ctx); err != nil {
		s.logger.Error("alert run failed", zap.Error(err))
	}
}

// RunOnce builds one alert report, logs it and forwards it to the
// notifier when there is something to report.
func (s *Scheduler) RunOnce(ctx context.Context) (*model.AlertReport, error) {
	alerts, err := s.reports.BuildAlerts(ctx)
	if err != nil {
		return nil, err
	}

	for _, rec := range alerts.LowStock {
		s.logger.Warn("low stock",
			zap.String("material_id", rec.MaterialID),
			zap.Int64("available", rec.Available()),
			zap.Int64("alert_threshold", rec.AlertThreshold),
		)
	}
	for _, a := range alerts.Overdue {
		s.logger.Warn("attribution overdue",
			zap.String("attribution_id", a.ID),
			zap.String("material_id", a.MaterialID),
			zap.String("requester_id", a.RequesterID),
			zap.Timep("due_date", a.DueDate),
		)
	}

	if alerts.Empty() || s.notifier == nil {
		return alerts, nil
	}
	if err := s.notifier.Notify(ctx, alerts); err != nil {
		return alerts, err
	}
	s.logger.Info("alert report sent",
		zap.Int("low_stock", len(alerts.LowStock)),
		zap.Int("overdue", len(alerts.Overdue)),
	)
	return alerts, nil
}

// cronLogger routes cron's own messages to zap.
type cronLogger struct {
	log logger.ZapLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Zap().Sugar().Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Zap().Sugar().Errorw(msg, append(keysAndValues, "error", err)...)
}
