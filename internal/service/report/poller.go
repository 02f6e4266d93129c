package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Poller runs Reconcile on a fixed interval. A run still in progress
// when the next tick fires causes that tick to be skipped.
type Poller struct {
	log      *slog.Logger
	svc      *Service
	interval time.Duration
	cron     *cron.Cron
}

// NewPoller creates a poller around svc with the given interval.
func NewPoller(logger *slog.Logger, svc *Service, interval time.Duration) *Poller {
	log := logger.With("component", "report_poller")
	return &Poller{
		log:      log,
		svc:      svc,
		interval: interval,
		cron: cron.New(cron.WithChain(
			cron.SkipIfStillRunning(cronLogger{log}),
		)),
	}
}

// Start runs one reconciliation immediately, then schedules the loop.
// The initial run's failure is logged, not returned: the schedule must
// survive a flaky external API.
func (p *Poller) Start(ctx context.Context) error {
	if _, err := p.svc.Reconcile(ctx); err != nil {
		p.log.WarnContext(ctx, "initial reconciliation failed", slog.String("error", err.Error()))
	}

	spec := fmt.Sprintf("@every %s", p.interval)
	_, err := p.cron.AddFunc(spec, func() {
		if _, err := p.svc.Reconcile(context.Background()); err != nil {
			p.log.Warn("scheduled reconciliation failed", slog.String("error", err.Error()))
		}
	})
	if err != nil {
		return fmt.Errorf("report.Poller schedule %q: %w", spec, err)
	}

	p.cron.Start()
	p.log.InfoContext(ctx, "report poller started", slog.Duration("interval", p.interval))
	return nil
}

// Stop halts the schedule and waits for an in-flight run to finish.
func (p *Poller) Stop() {
	<-p.cron.Stop().Done()
	p.log.Info("report poller stopped")
}

// cronLogger adapts slog to the cron.Logger interface.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Info(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error(msg, append([]interface{}{"error", err.Error()}, keysAndValues...)...)
}
