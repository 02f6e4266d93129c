// Package record implements operations on fire-risk records: saving
// simulation results, serving synthetic demo data, and CRUD over the
// stored collection.
package record

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/firewatch-bo/chiquitos-backend/internal/domain"
	"github.com/firewatch-bo/chiquitos-backend/internal/risk"
)

// recordRepo defines what the service needs from the record repository.
type recordRepo interface {
	Create(ctx context.Context, rec *domain.FireRiskRecord) (*domain.FireRiskRecord, error)
	ListRecent(ctx context.Context, limit int) ([]domain.FireRiskRecord, error)
	UpdateName(ctx context.Context, id, name string) (*domain.FireRiskRecord, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// generator defines what the service needs from the synthetic generator.
type generator interface {
	Generate(count int, opts risk.Options) []domain.FireRiskRecord
}

// Service implements fire-risk record operations.
type Service struct {
	log     *slog.Logger
	records recordRepo
	gen     generator
}

// NewService creates a new record service instance.
func NewService(logger *slog.Logger, records recordRepo, gen generator) *Service {
	return &Service{
		log:     logger.With("service", "record"),
		records: records,
		gen:     gen,
	}
}

// List returns count synthetic records for the whole province.
func (s *Service) List(_ context.Context, count int) []domain.FireRiskRecord {
	return s.gen.Generate(count, risk.Options{})
}

// ListByLocation returns count synthetic records pinned to one site.
func (s *Service) ListByLocation(_ context.Context, location string, count int) []domain.FireRiskRecord {
	return s.gen.Generate(count, risk.Options{Location: location})
}

// HighRisk returns up to count synthetic records whose risk meets the
// threshold, highest risk first. Oversamples threefold to keep the
// result set populated for high thresholds.
func (s *Service) HighRisk(_ context.Context, threshold float64, count int) []domain.FireRiskRecord {
	all := s.gen.Generate(count*3, risk.Options{})

	matched := make([]domain.FireRiskRecord, 0, count)
	for _, r := range all {
		if r.FireRisk >= threshold {
			matched = append(matched, r)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].FireRisk > matched[j].FireRisk
	})

	if len(matched) > count {
		matched = matched[:count]
	}
	return matched
}

// Stored returns up to count persisted records, most recent first.
// Storage failures are returned as domain.ErrStorageUnavailable so the
// transport can surface a degraded-mode signal instead of silently
// substituting synthetic data.
func (s *Service) Stored(ctx context.Context, count int) ([]domain.FireRiskRecord, error) {
	if count <= 0 {
		count = 10
	}

	records, err := s.records.ListRecent(ctx, count)
	if err != nil {
		s.log.ErrorContext(ctx, "stored records query failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("record.Stored: %w: %w", domain.ErrStorageUnavailable, err)
	}

	return records, nil
}

// SaveSimulation validates and persists a simulation result.
func (s *Service) SaveSimulation(ctx context.Context, input SaveSimulationInput) (*domain.FireRiskRecord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	rec := input.toRecord()

	saved, err := s.records.Create(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("record.SaveSimulation create: %w", err)
	}

	s.log.InfoContext(ctx, "simulation saved",
		slog.String("id", saved.ID),
		slog.String("location", saved.Location),
		slog.Float64("fire_risk", saved.FireRisk),
	)

	return saved, nil
}

// Rename changes a record's display name.
// Returns domain.ErrNotFound for unknown ids.
func (s *Service) Rename(ctx context.Context, id, name string) (*domain.FireRiskRecord, error) {
	updated, err := s.records.UpdateName(ctx, id, name)
	if err != nil {
		return nil, fmt.Errorf("record.Rename %s: %w", id, err)
	}
	return updated, nil
}

// Delete removes a record. Unknown ids report false, not an error.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.records.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("record.Delete %s: %w", id, err)
	}
	if deleted {
		s.log.InfoContext(ctx, "record deleted", slog.String("id", id))
	}
	return deleted, nil
}
