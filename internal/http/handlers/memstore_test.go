package handlers

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/crimetrack/crimetrack-be/internal/models"
	"github.com/crimetrack/crimetrack-be/internal/storage"
)

// memStore is an in-memory storage.Store used by handler tests.
type memStore struct {
	mu        sync.Mutex
	nextID    int64
	clock     time.Time
	users     map[string]models.User
	criminals map[string]models.Criminal
}

var _ storage.Store = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{
		clock:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		users:     make(map[string]models.User),
		criminals: make(map[string]models.Criminal),
	}
}

// tick returns a strictly increasing timestamp so created_at ordering is
// deterministic.
func (m *memStore) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func (m *memStore) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.users[user.Username]; exists {
		return models.User{}, storage.ErrAlreadyExists
	}
	m.nextID++
	user.ID = m.nextID
	user.CreatedAt = m.tick()
	m.users[user.Username] = user
	return user, nil
}

func (m *memStore) FindByUsername(_ context.Context, username string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[username]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return user, nil
}

func (m *memStore) ListCriminals(_ context.Context, search string) ([]models.Criminal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	needle := strings.ToLower(search)
	out := []models.Criminal{}
	for _, record := range m.criminals {
		if needle == "" ||
			strings.Contains(strings.ToLower(record.FirstName), needle) ||
			strings.Contains(strings.ToLower(record.LastName), needle) {
			out = append(out, record)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memStore) GetCriminal(_ context.Context, id string) (models.Criminal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.criminals[id]
	if !ok {
		return models.Criminal{}, storage.ErrNotFound
	}
	return record, nil
}

func (m *memStore) CreateCriminal(_ context.Context, record models.Criminal) (models.Criminal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.tick()
	record.CreatedAt = now
	record.UpdatedAt = now
	m.criminals[record.ID] = record
	return record, nil
}

func (m *memStore) UpdateCriminal(_ context.Context, record models.Criminal) (models.Criminal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.criminals[record.ID]
	if !ok {
		return models.Criminal{}, storage.ErrNotFound
	}
	record.CreatedAt = existing.CreatedAt
	record.UpdatedAt = m.tick()
	m.criminals[record.ID] = record
	return record, nil
}

func (m *memStore) DeleteCriminal(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.criminals[id]; !ok {
		return storage.ErrNotFound
	}
	delete(m.criminals, id)
	return nil
}
