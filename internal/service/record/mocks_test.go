package record

import (
	"context"
	"sync"

	"github.com/firewatch-bo/chiquitos-backend/internal/domain"
	"github.com/firewatch-bo/chiquitos-backend/internal/risk"
)

var _ recordRepo = &recordRepoMock{}

type recordRepoMock struct {
	CreateFunc     func(ctx context.Context, rec *domain.FireRiskRecord) (*domain.FireRiskRecord, error)
	ListRecentFunc func(ctx context.Context, limit int) ([]domain.FireRiskRecord, error)
	UpdateNameFunc func(ctx context.Context, id, name string) (*domain.FireRiskRecord, error)
	DeleteFunc     func(ctx context.Context, id string) (bool, error)

	calls struct {
		Create     []*domain.FireRiskRecord
		ListRecent []int
		UpdateName []struct{ ID, Name string }
		Delete     []string
	}
	mu sync.Mutex
}

func (m *recordRepoMock) Create(ctx context.Context, rec *domain.FireRiskRecord) (*domain.FireRiskRecord, error) {
	if m.CreateFunc == nil {
		panic("recordRepoMock.CreateFunc: method is nil but recordRepo.Create was just called")
	}
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, rec)
	m.mu.Unlock()
	return m.CreateFunc(ctx, rec)
}

func (m *recordRepoMock) CreateCalls() []*domain.FireRiskRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

func (m *recordRepoMock) ListRecent(ctx context.Context, limit int) ([]domain.FireRiskRecord, error) {
	if m.ListRecentFunc == nil {
		panic("recordRepoMock.ListRecentFunc: method is nil but recordRepo.ListRecent was just called")
	}
	m.mu.Lock()
	m.calls.ListRecent = append(m.calls.ListRecent, limit)
	m.mu.Unlock()
	return m.ListRecentFunc(ctx, limit)
}

func (m *recordRepoMock) ListRecentCalls() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.ListRecent
}

func (m *recordRepoMock) UpdateName(ctx context.Context, id, name string) (*domain.FireRiskRecord, error) {
	if m.UpdateNameFunc == nil {
		panic("recordRepoMock.UpdateNameFunc: method is nil but recordRepo.UpdateName was just called")
	}
	m.mu.Lock()
	m.calls.UpdateName = append(m.calls.UpdateName, struct{ ID, Name string }{id, name})
	m.mu.Unlock()
	return m.UpdateNameFunc(ctx, id, name)
}

func (m *recordRepoMock) Delete(ctx context.Context, id string) (bool, error) {
	if m.DeleteFunc == nil {
		panic("recordRepoMock.DeleteFunc: method is nil but recordRepo.Delete was just called")
	}
	m.mu.Lock()
	m.calls.Delete = append(m.calls.Delete, id)
	m.mu.Unlock()
	return m.DeleteFunc(ctx, id)
}

var _ generator = &generatorMock{}

type generatorMock struct {
	GenerateFunc func(count int, opts risk.Options) []domain.FireRiskRecord
}

func (m *generatorMock) Generate(count int, opts risk.Options) []domain.FireRiskRecord {
	if m.GenerateFunc == nil {
		panic("generatorMock.GenerateFunc: method is nil but generator.Generate was just called")
	}
	return m.GenerateFunc(count, opts)
}
