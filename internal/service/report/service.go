// Package report reconciles community incident reports from the external
// reports API into persisted fire-risk records.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/firewatch-bo/chiquitos-backend/internal/domain"
	"github.com/firewatch-bo/chiquitos-backend/internal/observability"
	"github.com/firewatch-bo/chiquitos-backend/internal/risk"
)

// reportsFetcher defines what the service needs from the external API client.
type reportsFetcher interface {
	FetchReports(ctx context.Context) ([]domain.IncidentReport, error)
}

// recordStore defines what the service needs from the record repository.
type recordStore interface {
	Create(ctx context.Context, rec *domain.FireRiskRecord) (*domain.FireRiskRecord, error)
	ExistsBySourceID(ctx context.Context, sourceID string) (bool, error)
	ExistsByCoordinates(ctx context.Context, lat, lng float64) (bool, error)
}

const (
	volunteersMin = 8
	volunteersMax = 50

	defaultReporterName = "Anónimo"
	defaultPlaceName    = "Ubicación desconocida"
	defaultDuration     = 60
	ignitionIntensity   = 50
)

// Service pulls incident reports and converts unseen ones into records.
type Service struct {
	log     *slog.Logger
	reports reportsFetcher
	records recordStore
	metrics *observability.Metrics
	clock   clockwork.Clock

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewService creates a reconciliation service. A nil clock uses the real one.
func NewService(
	logger *slog.Logger,
	reports reportsFetcher,
	records recordStore,
	metrics *observability.Metrics,
	clock clockwork.Clock,
	src rand.Source,
) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Service{
		log:     logger.With("service", "report"),
		reports: reports,
		records: records,
		metrics: metrics,
		clock:   clock,
		rnd:     rand.New(src),
	}
}

// Result summarizes one reconciliation run.
type Result struct {
	Fetched int
	Created int
	Skipped int
	Failed  int
}

// Reconcile fetches the current external report list and persists a
// fire-risk record for every report not seen before. A failure on one
// report is counted and logged but does not abort the run.
func (s *Service) Reconcile(ctx context.Context) (Result, error) {
	s.metrics.ReconcileRunning.Set(1)
	defer s.metrics.ReconcileRunning.Set(0)

	start := s.clock.Now()
	var res Result

	reports, err := s.reports.FetchReports(ctx)
	if err != nil {
		s.metrics.ReconcileRuns.WithLabelValues("error").Inc()
		return res, fmt.Errorf("report.Reconcile fetch: %w", err)
	}

	res.Fetched = len(reports)
	s.metrics.ReportsFetched.Add(float64(len(reports)))

	for _, rep := range reports {
		created, err := s.reconcileOne(ctx, rep)
		switch {
		case err != nil:
			res.Failed++
			s.metrics.ReportFailures.Inc()
			s.log.ErrorContext(ctx, "report reconciliation failed",
				slog.String("report_id", rep.ID),
				slog.String("error", err.Error()),
			)
		case created:
			res.Created++
		default:
			res.Skipped++
		}
	}

	s.metrics.RecordsCreated.Add(float64(res.Created))
	s.metrics.ReconcileRuns.WithLabelValues("success").Inc()
	s.metrics.RunDuration.Observe(s.clock.Since(start).Seconds())

	s.log.InfoContext(ctx, "reconciliation run finished",
		slog.Int("fetched", res.Fetched),
		slog.Int("created", res.Created),
		slog.Int("skipped", res.Skipped),
		slog.Int("failed", res.Failed),
	)

	return res, nil
}

// reconcileOne reports whether a new record was created for rep.
func (s *Service) reconcileOne(ctx context.Context, rep domain.IncidentReport) (bool, error) {
	exists, err := s.records.ExistsBySourceID(ctx, rep.ID)
	if err != nil {
		return false, fmt.Errorf("dedup by source id: %w", err)
	}
	if exists {
		return false, nil
	}

	// Records written before source ids were stored can only be matched
	// by their coordinates.
	exists, err = s.records.ExistsByCoordinates(ctx, rep.Coordinates.Lat, rep.Coordinates.Lng)
	if err != nil {
		return false, fmt.Errorf("dedup by coordinates: %w", err)
	}
	if exists {
		return false, nil
	}

	rec := s.toRecord(rep)
	if _, err := s.records.Create(ctx, rec); err != nil {
		return false, fmt.Errorf("create record: %w", err)
	}

	s.log.InfoContext(ctx, "record created from external report",
		slog.String("report_id", rep.ID),
		slog.String("location", rec.Location),
		slog.Float64("fire_risk", rec.FireRisk),
	)

	return true, nil
}

func (s *Service) toRecord(rep domain.IncidentReport) *domain.FireRiskRecord {
	sourceID := rep.ID
	fireRisk := risk.SeverityScore(rep.Severity)
	volunteers := s.randVolunteers()

	reporter := rep.ReporterName
	if reporter == "" {
		reporter = defaultReporterName
	}

	// A record must always carry a timestamp and location, even when the
	// external API delivers them empty.
	timestamp := rep.ReportedAt
	if timestamp == "" {
		timestamp = s.clock.Now().UTC().Format(time.RFC3339)
	}

	return &domain.FireRiskRecord{
		SourceID:      &sourceID,
		Timestamp:     timestamp,
		Location:      normalizePlaceName(rep.PlaceName),
		Duration:      defaultDuration,
		Name:          fmt.Sprintf("Reporte: %s", rep.IncidentType),
		Volunteers:    &volunteers,
		VolunteerName: &reporter,
		Coordinates:   rep.Coordinates,
		Weather: domain.Weather{
			Temperature: 30,
			Humidity:    40,
			WindSpeed:   15,
			WindDirection: func() *int {
				d := 180
				return &d
			}(),
		},
		EnvironmentalFactors: domain.DefaultEnvironmentalFactors(),
		FireRisk:             fireRisk,
		FireDetected:         true,
		InitialFires: []domain.InitialFire{{
			Lat:       rep.Coordinates.Lat,
			Lng:       rep.Coordinates.Lng,
			Intensity: ignitionIntensity,
		}},
	}
}

func (s *Service) randVolunteers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return volunteersMin + s.rnd.Intn(volunteersMax-volunteersMin+1)
}

// normalizePlaceName aligns external place names with the spelling used
// by the synthetic generator's gazetteer and substitutes a default for
// reports that arrive without one.
func normalizePlaceName(name string) string {
	if name == "" {
		return defaultPlaceName
	}
	if name == "San Jose de Chiquitos" {
		return "San Jose de Chiquitos."
	}
	return name
}
