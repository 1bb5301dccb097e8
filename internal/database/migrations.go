package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func RunMigrations(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	migrations := []string{
		createWidgetsTable,
		createSyncedStateTable,
	}

	for i, migration := range migrations {
		logger.Debug("running migration", zap.Int("step", i+1), zap.Int("total", len(migrations)))
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	logger.Info("all migrations completed successfully", zap.Int("count", len(migrations)))
	return nil
}

const createWidgetsTable = `
CREATE TABLE IF NOT EXISTS widgets (
  id UUID PRIMARY KEY,
  document_id TEXT NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_widgets_document_id ON widgets(document_id);
`

// synced_state is the host's key-value store: one JSON value per widget and key.
const createSyncedStateTable = `
CREATE TABLE IF NOT EXISTS synced_state (
  widget_id UUID NOT NULL REFERENCES widgets(id) ON DELETE CASCADE,
  key TEXT NOT NULL,
  value JSONB NOT NULL,
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  PRIMARY KEY (widget_id, key)
);
`
