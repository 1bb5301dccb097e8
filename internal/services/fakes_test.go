package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"umlwidget/internal/models"
	"umlwidget/internal/repositories"
	"umlwidget/internal/tablemodel"
)

type memoryWidgets struct {
	mu      sync.Mutex
	widgets map[uuid.UUID]models.Widget
}

func (m *memoryWidgets) Create(_ context.Context, w *models.Widget) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	w.Prepare()
	w.CreatedAt = time.Now()
	w.UpdatedAt = w.CreatedAt
	m.widgets[w.ID] = *w
	return nil
}

func (m *memoryWidgets) FindByID(_ context.Context, id uuid.UUID) (*models.Widget, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.widgets[id]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (m *memoryWidgets) ListByDocument(_ context.Context, documentID string) ([]models.Widget, error) {
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

func (m *memoryWidgets) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.widgets[id]; !ok {
		return false, nil
	}
	delete(m.widgets, id)
	return true, nil
}

// memoryState mimics the synced_state table, including the widget existence
// check done by Update.
type memoryState struct {
	mu      sync.Mutex
	widgets *memoryWidgets
	values  map[uuid.UUID]map[string]json.RawMessage
	writes  []string

	// failUpdates makes the next n calls to Update fail
	failUpdates int
}

func (m *memoryState) Load(_ context.Context, id uuid.UUID) (map[string]json.RawMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.copyOf(id), nil
}

func (m *memoryState) Save(_ context.Context, id uuid.UUID, values map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.save(id, values)
}

func (m *memoryState) Update(_ context.Context, id uuid.UUID, fn func(map[string]json.RawMessage) (map[string]any, error)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failUpdates > 0 {
		m.failUpdates--
		return errors.New("connection reset")
	}
	if _, ok := m.widgets.widgets[id]; !ok {
		return repositories.ErrNotFound
	}
	updates, err := fn(m.copyOf(id))
	if err != nil {
		return err
	}
	return m.save(id, updates)
}

func (m *memoryState) set(id uuid.UUID, key string, raw string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values[id] == nil {
		m.values[id] = map[string]json.RawMessage{}
	}
	m.values[id][key] = json.RawMessage(raw)
}

func (m *memoryState) copyOf(id uuid.UUID) map[string]json.RawMessage {
	out := map[string]json.RawMessage{}
	for k, v := range m.values[id] {
		out[k] = v
	}
	return out
}

func (m *memoryState) save(id uuid.UUID, values map[string]any) error {
	if m.values[id] == nil {
		m.values[id] = map[string]json.RawMessage{}
	}
	for k, v := range values {
		raw, err := json.Marshal(v)
		if err != nil {
			return err
		}
		m.values[id][k] = raw
		m.writes = append(m.writes, k)
	}
	return nil
}

type memorySessions struct {
	mu       sync.Mutex
	sessions map[string]models.EditorSession
}

func (m *memorySessions) StoreEditorSession(_ context.Context, s *models.EditorSession, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = *s
	return nil
}

func (m *memorySessions) TakeEditorSession(_ context.Context, id string) (*models.EditorSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, nil
	}
	delete(m.sessions, id)
	return &s, nil
}

type fixture struct {
	widgets  *memoryWidgets
	state    *memoryState
	sessions *memorySessions
	service  *WidgetService
	editor   *EditorService
}

var testSecret = []byte("editor-secret")

func newFixture() *fixture {
	widgets := &memoryWidgets{widgets: map[uuid.UUID]models.Widget{}}
	state := &memoryState{widgets: widgets, values: map[uuid.UUID]map[string]json.RawMessage{}}
	sessions := &memorySessions{sessions: map[string]models.EditorSession{}}

	logger := zap.NewNop()
	editor := tablemodel.NewEditor(tablemodel.WithIDGenerator(tablemodel.NewCounterGenerator(0)))
	service := NewWidgetService(widgets, state, editor, logger)

	return &fixture{
		widgets:  widgets,
		state:    state,
		sessions: sessions,
		service:  service,
		editor:   NewEditorService(sessions, service, testSecret, time.Minute, logger),
	}
}
