package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"umlwidget/internal/menu"
	"umlwidget/internal/models"
	"umlwidget/internal/palette"
	"umlwidget/internal/render"
	"umlwidget/internal/repositories"
	"umlwidget/internal/tablemodel"
)

var (
	ErrWidgetNotFound    = errors.New("widget not found")
	ErrUnsupportedFormat = errors.New("unsupported render format")
	ErrNotExportable     = errors.New("table cannot be exported")
)

type WidgetStore interface {
	Create(ctx context.Context, widget *models.Widget) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Widget, error)
	ListByDocument(ctx context.Context, documentID string) ([]models.Widget, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type StateStore interface {
	Load(ctx context.Context, widgetID uuid.UUID) (map[string]json.RawMessage, error)
	Save(ctx context.Context, widgetID uuid.UUID, values map[string]any) error
	Update(ctx context.Context, widgetID uuid.UUID, fn func(map[string]json.RawMessage) (map[string]any, error)) error
}

type CreateWidgetRequest struct {
	DocumentID string `json:"document_id" binding:"required"`
	TableName  string `json:"table_name"`
	SeedColumn bool   `json:"seed_column"`
}

// StateView is the widget state as the host renders it.
type StateView struct {
	Table          tablemodel.Table     `json:"table"`
	SelectedColumn tablemodel.Selection `json:"selectedColumn"`
	HeaderColor    palette.Color        `json:"headerColor"`
	Menu           []menu.Item          `json:"menu"`
}

type WidgetView struct {
	models.Widget
	State StateView `json:"state"`
}

type ActionResult struct {
	Applied bool      `json:"applied"`
	State   StateView `json:"state"`
}

type WidgetService struct {
	widgets WidgetStore
	state   StateStore
	editor  *tablemodel.Editor
	logger  *zap.Logger
}

// NewWidgetService creates a new WidgetService
func NewWidgetService(widgets WidgetStore, state StateStore, editor *tablemodel.Editor, logger *zap.Logger) *WidgetService {
	return &WidgetService{
		widgets: widgets,
		state:   state,
		editor:  editor,
		logger:  logger,
	}
}

func newStateView(s tablemodel.State) StateView {
	return StateView{
		Table:          s.Table,
		SelectedColumn: s.Selection,
		HeaderColor:    headerColor(s.HeaderColor),
		Menu:           menu.Build(s),
	}
}

func (s *WidgetService) CreateWidget(ctx context.Context, req CreateWidgetRequest) (*WidgetView, error) {
	widget := &models.Widget{DocumentID: req.DocumentID}
	if err := s.widgets.Create(ctx, widget); err != nil {
		return nil, fmt.Errorf("failed to create widget: %w", err)
	}

	state := tablemodel.State{
		Table:       tablemodel.RenameTable(tablemodel.NewTable(), req.TableName),
		HeaderColor: palette.Default().Value,
	}
	if req.SeedColumn {
		state.Table, _ = s.editor.AddColumn(state.Table)
	}

	if err := s.state.Save(ctx, widget.ID, encodeState(state)); err != nil {
		return nil, fmt.Errorf("failed to save initial state: %w", err)
	}

	s.logger.Info("widget created",
		zap.String("widget_id", widget.ID.String()),
		zap.String("document_id", widget.DocumentID),
	)
	return &WidgetView{Widget: *widget, State: newStateView(state)}, nil
}

func (s *WidgetService) GetWidget(ctx context.Context, id uuid.UUID) (*WidgetView, error) {
	widget, err := s.widgets.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if widget == nil {
		return nil, ErrWidgetNotFound
	}

	state, err := s.loadState(ctx, id)
	if err != nil {
		return nil, err
	}
	return &WidgetView{Widget: *widget, State: newStateView(state)}, nil
}

func (s *WidgetService) ListWidgets(ctx context.Context, documentID string) ([]models.Widget, error) {
	widgets, err := s.widgets.ListByDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if widgets == nil {
		widgets = []models.Widget{}
	}
	return widgets, nil
}

func (s *WidgetService) DeleteWidget(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.widgets.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrWidgetNotFound
	}
	s.logger.Info("widget deleted", zap.String("widget_id", id.String()))
	return nil
}

// HandleMenuEvent decodes a host menu event and applies it. Events that do not
// decode are no-ops: the current state comes back with Applied false.
func (s *WidgetService) HandleMenuEvent(ctx context.Context, id uuid.UUID, ev menu.Event) (*ActionResult, error) {
	action, err := menu.Decode(ev)
	if err != nil {
		if !errors.Is(err, menu.ErrUnknownAction) && !errors.Is(err, menu.ErrInvalidPayload) {
			return nil, err
		}
		s.logger.Warn("ignoring menu event",
			zap.String("widget_id", id.String()),
			zap.String("property", ev.PropertyName),
			zap.Error(err),
		)
		view, err := s.GetWidget(ctx, id)
		if err != nil {
			return nil, err
		}
		return &ActionResult{Applied: false, State: view.State}, nil
	}
	return s.Apply(ctx, id, action)
}

// Apply runs one action against the stored state of the widget. Only the keys the
// action changed are written back.
func (s *WidgetService) Apply(ctx context.Context, id uuid.UUID, action tablemodel.Action) (*ActionResult, error) {
	var next tablemodel.State
	var applied bool

	err := s.state.Update(ctx, id, func(values map[string]json.RawMessage) (map[string]any, error) {
		stored, err := decodeState(values)
		if err != nil {
			return nil, err
		}
		// tables written before columns had ids get them on their first edit
		current := stored
		current.Table = legacyIDs(id, stored.Table)

		next, applied = s.editor.Apply(current, action)
		return encodeChanges(stored, next), nil
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrWidgetNotFound
		}
		return nil, fmt.Errorf("failed to apply %T: %w", action, err)
	}

	s.logger.Debug("action applied",
		zap.String("widget_id", id.String()),
		zap.String("action", fmt.Sprintf("%T", action)),
		zap.Bool("applied", applied),
	)
	return &ActionResult{Applied: applied, State: newStateView(next)}, nil
}

// Render returns the widget's table in the given format ("mermaid", "sql" or
// "text") together with its content type.
func (s *WidgetService) Render(ctx context.Context, id uuid.UUID, format string) (string, string, error) {
	view, err := s.GetWidget(ctx, id)
	if err != nil {
		return "", "", err
	}

	table := view.State.Table
	switch format {
	case "", "mermaid":
		return render.Mermaid(table), "text/vnd.mermaid; charset=utf-8", nil
	case "sql":
		out, err := render.SQL(table)
		if err != nil {
			return "", "", fmt.Errorf("%w: %v", ErrNotExportable, err)
		}
		return out, "application/sql; charset=utf-8", nil
	case "text":
		return render.Terminal(table, view.State.HeaderColor.Value), "text/plain; charset=utf-8", nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// loadState reads the stored state. Columns stored without ids are shown with the
// ids the next edit will persist, so menu options stay valid across reads.
func (s *WidgetService) loadState(ctx context.Context, id uuid.UUID) (tablemodel.State, error) {
	values, err := s.state.Load(ctx, id)
	if err != nil {
		return tablemodel.State{}, fmt.Errorf("failed to load state: %w", err)
	}
	state, err := decodeState(values)
	if err != nil {
		return state, err
	}
	state.Table = legacyIDs(id, state.Table)
	return state, nil
}

// legacyIDs gives id-less or duplicate columns an id derived from the widget and
// the column position. The same stored table always gets the same ids.
func legacyIDs(widgetID uuid.UUID, t tablemodel.Table) tablemodel.Table {
	return tablemodel.FillIDs(t, func(pos int) tablemodel.ColumnID {
		return tablemodel.ColumnID(uuid.NewSHA1(widgetID, []byte("column-"+strconv.Itoa(pos))).String())
	})
}
