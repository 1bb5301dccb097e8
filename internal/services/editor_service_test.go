package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"umlwidget/internal/tablemodel"
	"umlwidget/internal/utils"
)

func openEditor(t *testing.T, f *fixture, widgetID uuid.UUID) (*EditorHandoff, *utils.EditorClaims) {
	t.Helper()
	handoff, err := f.editor.OpenEditor(context.Background(), widgetID)
	require.NoError(t, err)
	claims, err := utils.VerifyEditorToken(handoff.Token, testSecret)
	require.NoError(t, err)
	return handoff, claims
}

func TestEditorRoundTrip(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	view, err := f.service.CreateWidget(ctx, CreateWidgetRequest{DocumentID: "doc", TableName: "orders", SeedColumn: true})
	require.NoError(t, err)

	handoff, claims := openEditor(t, f, view.ID)
	assert.True(t, handoff.Table.Equal(view.State.Table))
	assert.WithinDuration(t, time.Now().Add(time.Minute), handoff.ExpiresAt, 5*time.Second)
	assert.Len(t, f.sessions.sessions, 1)

	edited := handoff.Table.Clone()
	edited.Name = "purchase_orders"
	edited.Columns[0].Name = "id"
	edited.Columns[0].Key = "pk"
	edited.Columns = append(edited.Columns, tablemodel.Column{Name: "total", Type: "numeric"})

	res, err := f.editor.SubmitEdit(ctx, claims, edited)
	require.NoError(t, err)
	assert.True(t, res.Applied)
	assert.Equal(t, "purchase_orders", res.State.Table.Name)
	require.Len(t, res.State.Table.Columns, 2)
	assert.Equal(t, view.State.Table.Columns[0].ID, res.State.Table.Columns[0].ID)
	assert.NotEmpty(t, res.State.Table.Columns[1].ID)
	assert.Equal(t, "pk", res.State.Table.Columns[0].Key)
	assert.Empty(t, f.sessions.sessions)

	got, err := f.service.GetWidget(ctx, view.ID)
	require.NoError(t, err)
	assert.True(t, got.State.Table.Equal(res.State.Table))
}

func TestEditorSessionIsOneShot(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	view, err := f.service.CreateWidget(ctx, CreateWidgetRequest{DocumentID: "doc"})
	require.NoError(t, err)
	_, claims := openEditor(t, f, view.ID)

	_, err = f.editor.SubmitEdit(ctx, claims, tablemodel.Table{Name: "first"})
	require.NoError(t, err)

	_, err = f.editor.SubmitEdit(ctx, claims, tablemodel.Table{Name: "second"})
	assert.ErrorIs(t, err, ErrEditorSessionGone)

	got, err := f.service.GetWidget(ctx, view.ID)
	require.NoError(t, err)
	assert.Equal(t, "first", got.State.Table.Name)
}

func TestEditorRejectsMismatchedWidget(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	a, err := f.service.CreateWidget(ctx, CreateWidgetRequest{DocumentID: "doc", TableName: "a"})
	require.NoError(t, err)
	b, err := f.service.CreateWidget(ctx, CreateWidgetRequest{DocumentID: "doc", TableName: "b"})
	require.NoError(t, err)

	_, claims := openEditor(t, f, a.ID)
	claims.Subject = b.ID.String()

	_, err = f.editor.SubmitEdit(ctx, claims, tablemodel.Table{Name: "hijack"})
	assert.ErrorIs(t, err, ErrEditorTokenInvalid)

	got, err := f.service.GetWidget(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "b", got.State.Table.Name)
}

func TestOpenEditorUnknownWidget(t *testing.T) {
	f := newFixture()

	_, err := f.editor.OpenEditor(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrWidgetNotFound)
	assert.Empty(t, f.sessions.sessions)
}

func TestSubmitEditAfterWidgetDeleted(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	view, err := f.service.CreateWidget(ctx, CreateWidgetRequest{DocumentID: "doc"})
	require.NoError(t, err)
	_, claims := openEditor(t, f, view.ID)
	require.NoError(t, f.service.DeleteWidget(ctx, view.ID))

	_, err = f.editor.SubmitEdit(ctx, claims, tablemodel.Table{Name: "late"})
	assert.ErrorIs(t, err, ErrWidgetNotFound)
}

func TestSubmitEditRetryAfterStoreFailure(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	view, err := f.service.CreateWidget(ctx, CreateWidgetRequest{DocumentID: "doc", TableName: "draft"})
	require.NoError(t, err)
	_, claims := openEditor(t, f, view.ID)

	f.state.failUpdates = 1
	_, err = f.editor.SubmitEdit(ctx, claims, tablemodel.Table{Name: "final"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEditorSessionGone)
	assert.Len(t, f.sessions.sessions, 1)

	res, err := f.editor.SubmitEdit(ctx, claims, tablemodel.Table{Name: "final"})
	require.NoError(t, err)
	assert.True(t, res.Applied)
	assert.Equal(t, "final", res.State.Table.Name)

	_, err = f.editor.SubmitEdit(ctx, claims, tablemodel.Table{Name: "again"})
	assert.ErrorIs(t, err, ErrEditorSessionGone)
}
