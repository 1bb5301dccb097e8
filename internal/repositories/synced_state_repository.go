package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("record not found")

// SyncedStateRepository stores widget state as opaque JSON values per key.
type SyncedStateRepository struct {
	pool *pgxpool.Pool
}

func NewSyncedStateRepository(pool *pgxpool.Pool) *SyncedStateRepository {
	return &SyncedStateRepository{pool: pool}
}

// Load returns every stored key of the widget. Missing keys are simply absent.
func (r *SyncedStateRepository) Load(ctx context.Context, widgetID uuid.UUID) (map[string]json.RawMessage, error) {
	return loadValues(ctx, r.pool, widgetID)
}

// Save upserts the given keys.
func (r *SyncedStateRepository) Save(ctx context.Context, widgetID uuid.UUID, values map[string]any) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := saveValues(ctx, tx, widgetID, values); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Update loads the widget's values under a row lock on the widget, hands them to
// fn and stores whatever fn returns, all in one transaction. Concurrent updates of
// the same widget are serialised. Returns ErrNotFound if the widget does not exist.
func (r *SyncedStateRepository) Update(
	ctx context.Context,
	widgetID uuid.UUID,
	fn func(values map[string]json.RawMessage) (map[string]any, error),
) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var locked uuid.UUID
	err = tx.QueryRow(ctx, `SELECT id FROM widgets WHERE id = $1 FOR UPDATE`, widgetID).Scan(&locked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to lock widget: %w", err)
	}

	values, err := loadValues(ctx, tx, widgetID)
	if err != nil {
		return err
	}

	updates, err := fn(values)
	if err != nil {
		return err
	}

	if len(updates) > 0 {
		if err := saveValues(ctx, tx, widgetID, updates); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `UPDATE widgets SET updated_at = now() WHERE id = $1`, widgetID); err != nil {
			return fmt.Errorf("failed to touch widget: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func loadValues(ctx context.Context, q querier, widgetID uuid.UUID) (map[string]json.RawMessage, error) {
	rows, err := q.Query(ctx, `SELECT key, value FROM synced_state WHERE widget_id = $1`, widgetID)
	if err != nil {
		return nil, fmt.Errorf("failed to load synced state: %w", err)
	}
	defer rows.Close()

	values := make(map[string]json.RawMessage)
	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		values[key] = json.RawMessage(value)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

func saveValues(ctx context.Context, tx pgx.Tx, widgetID uuid.UUID, values map[string]any) error {
	const query = `
		INSERT INTO synced_state (widget_id, key, value, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (widget_id, key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`

	batch := &pgx.Batch{}
	for key, value := range values {
		raw, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to encode %q: %w", key, err)
		}
		batch.Queue(query, widgetID, key, string(raw))
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to save synced state: %w", err)
	}
	return nil
}
