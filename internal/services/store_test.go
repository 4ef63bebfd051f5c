package services

import (
	"context"
	"sync"

	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/store"
)

// memStore is an in-memory store.Store for service tests.
type memStore struct {
	mu       sync.Mutex
	reports  map[models.ReportType][]models.Report
	analysts map[string]*models.Analyst
	findErr  error
}

func newMemStore() *memStore {
	return &memStore{
		reports:  map[models.ReportType][]models.Report{},
		analysts: map[string]*models.Analyst{},
	}
}

func (m *memStore) Create(_ context.Context, r models.Report) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reports[r.Type()] = append(m.reports[r.Type()], r)
	return nil
}

func (m *memStore) FindByID(_ context.Context, kind models.ReportType, id string) (models.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.findErr != nil {
		return nil, m.findErr
	}
	for _, r := range m.reports[kind] {
		if r.ReportID() == id {
			return r, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memStore) List(_ context.Context, kind models.ReportType) ([]models.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Report{}, m.reports[kind]...), nil
}

func (m *memStore) UpdateStatus(ctx context.Context, kind models.ReportType, id string, status models.ReportStatus) (models.Report, error) {
	r, err := m.FindByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	r.SetStatus(status)
	return r, nil
}

func (m *memStore) Ping(context.Context) error { return nil }

func (m *memStore) CreateAnalyst(_ context.Context, a *models.Analyst) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.analysts[a.Email]; ok {
		return store.ErrDuplicate
	}
	m.analysts[a.Email] = a
	return nil
}

func (m *memStore) FindAnalystByEmail(_ context.Context, email string) (*models.Analyst, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a, ok := m.analysts[email]; ok {
		return a, nil
	}
	return nil, store.ErrNotFound
}

func (m *memStore) FindAnalystByID(_ context.Context, id string) (*models.Analyst, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.analysts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, store.ErrNotFound
}
