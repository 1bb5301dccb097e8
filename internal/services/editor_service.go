package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"umlwidget/internal/models"
	"umlwidget/internal/tablemodel"
	"umlwidget/internal/utils"
)

var (
	ErrEditorSessionGone  = errors.New("editor session expired or already completed")
	ErrEditorTokenInvalid = errors.New("editor token does not match its session")
)

type EditorSessionStore interface {
	StoreEditorSession(ctx context.Context, session *models.EditorSession, ttl time.Duration) error
	TakeEditorSession(ctx context.Context, id string) (*models.EditorSession, error)
}

// EditorHandoff is what the side panel receives when it is opened.
type EditorHandoff struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expires_at"`
	Table     tablemodel.Table `json:"table"`
}

// EditorService runs the two-message exchange with the side-panel editor: open
// sends the current table out, submit replaces the table with what comes back.
type EditorService struct {
	sessions EditorSessionStore
	widgets  *WidgetService
	secret   []byte
	ttl      time.Duration
	logger   *zap.Logger
}

func NewEditorService(sessions EditorSessionStore, widgets *WidgetService, secret []byte, ttl time.Duration, logger *zap.Logger) *EditorService {
	return &EditorService{
		sessions: sessions,
		widgets:  widgets,
		secret:   secret,
		ttl:      ttl,
		logger:   logger,
	}
}

func (s *EditorService) OpenEditor(ctx context.Context, widgetID uuid.UUID) (*EditorHandoff, error) {
	view, err := s.widgets.GetWidget(ctx, widgetID)
	if err != nil {
		return nil, err
	}

	token, jti, err := utils.GenerateEditorToken(widgetID, s.ttl, s.secret)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session := &models.EditorSession{
		ID:       jti,
		WidgetID: widgetID,
		Table:    view.State.Table,
		OpenedAt: now,
	}
	if err := s.sessions.StoreEditorSession(ctx, session, s.ttl); err != nil {
		return nil, fmt.Errorf("failed to store editor session: %w", err)
	}

	s.logger.Info("editor opened",
		zap.String("widget_id", widgetID.String()),
		zap.String("session_id", jti),
	)
	return &EditorHandoff{
		Token:     token,
		ExpiresAt: now.Add(s.ttl),
		Table:     view.State.Table,
	}, nil
}

// SubmitEdit completes the session named by the verified claims. The received
// table replaces the stored one wholesale. A session completes at most once; a
// submit that fails to store the table leaves the session open until the token
// expires.
func (s *EditorService) SubmitEdit(ctx context.Context, claims *utils.EditorClaims, table tablemodel.Table) (*ActionResult, error) {
	widgetID, err := claims.WidgetID()
	if err != nil {
		return nil, ErrEditorTokenInvalid
	}

	session, err := s.sessions.TakeEditorSession(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to read editor session: %w", err)
	}
	if session == nil {
		return nil, ErrEditorSessionGone
	}
	if session.WidgetID != widgetID {
		return nil, ErrEditorTokenInvalid
	}

	result, err := s.widgets.Apply(ctx, widgetID, tablemodel.ReplaceTableAction{Table: table})
	if err != nil {
		if !errors.Is(err, ErrWidgetNotFound) {
			// the edit did not land; the same token may submit again
			s.restoreSession(ctx, session, claims)
		}
		return nil, err
	}

	s.logger.Info("editor submitted",
		zap.String("widget_id", widgetID.String()),
		zap.String("session_id", session.ID),
		zap.Bool("changed", result.Applied),
		zap.Duration("open_for", time.Since(session.OpenedAt)),
	)
	return result, nil
}

func (s *EditorService) restoreSession(ctx context.Context, session *models.EditorSession, claims *utils.EditorClaims) {
	if claims.ExpiresAt == nil {
		return
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return
	}
	if err := s.sessions.StoreEditorSession(ctx, session, ttl); err != nil {
		s.logger.Error("failed to restore editor session",
			zap.String("session_id", session.ID),
			zap.Error(err),
		)
	}
}
