package handlers_test

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"umlwidget/internal/models"
	"umlwidget/internal/repositories"
)

type memoryStore struct {
	mu       sync.Mutex
	widgets  map[uuid.UUID]models.Widget
	values   map[uuid.UUID]map[string]json.RawMessage
	sessions map[string]models.EditorSession
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		widgets:  map[uuid.UUID]models.Widget{},
		values:   map[uuid.UUID]map[string]json.RawMessage{},
		sessions: map[string]models.EditorSession{},
	}
}

func (m *memoryStore) Create(_ context.Context, w *models.Widget) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	w.Prepare()
	w.CreatedAt = time.Now()
	w.UpdatedAt = w.CreatedAt
	m.widgets[w.ID] = *w
	return nil
}

func (m *memoryStore) FindByID(_ context.Context, id uuid.UUID) (*models.Widget, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.widgets[id]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (m *memoryStore) ListByDocument(_ context.Context, documentID string) ([]models.Widget, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Widget
	for _, w := range m.widgets {
		if w.DocumentID == documentID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (m *memoryStore) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.widgets[id]; !ok {
		return false, nil
	}
	delete(m.widgets, id)
	delete(m.values, id)
	return true, nil
}

func (m *memoryStore) Load(_ context.Context, id uuid.UUID) (map[string]json.RawMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := map[string]json.RawMessage{}
	for k, v := range m.values[id] {
		out[k] = v
	}
	return out, nil
}

func (m *memoryStore) Save(_ context.Context, id uuid.UUID, values map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.save(id, values)
}

func (m *memoryStore) Update(_ context.Context, id uuid.UUID, fn func(map[string]json.RawMessage) (map[string]any, error)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.widgets[id]; !ok {
		return repositories.ErrNotFound
	}
	current := map[string]json.RawMessage{}
	for k, v := range m.values[id] {
		current[k] = v
	}
	updates, err := fn(current)
	if err != nil {
		return err
	}
	return m.save(id, updates)
}

func (m *memoryStore) save(id uuid.UUID, values map[string]any) error {
	if m.values[id] == nil {
		m.values[id] = map[string]json.RawMessage{}
	}
	for k, v := range values {
		raw, err := json.Marshal(v)
		if err != nil {
			return err
		}
		m.values[id][k] = raw
	}
	return nil
}

func (m *memoryStore) StoreEditorSession(_ context.Context, s *models.EditorSession, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = *s
	return nil
}

func (m *memoryStore) TakeEditorSession(_ context.Context, id string) (*models.EditorSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, nil
	}
	delete(m.sessions, id)
	return &s, nil
}
