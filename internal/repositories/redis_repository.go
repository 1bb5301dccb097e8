package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"umlwidget/internal/models"
)

type RedisRepository struct {
	rdb *redis.Client
}

func NewRedisRepository(rdb *redis.Client) *RedisRepository {
	return &RedisRepository{rdb: rdb}
}

func editorKey(id string) string {
	return "editor:" + id
}

// StoreEditorSession keeps the session until ttl expires or it is taken.
func (r *RedisRepository) StoreEditorSession(ctx context.Context, session *models.EditorSession, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode editor session: %w", err)
	}
	return r.rdb.Set(ctx, editorKey(session.ID), payload, ttl).Err()
}

// TakeEditorSession returns the session and deletes it atomically, so each
// session can be completed once. Returns nil, nil if it is gone or expired.
func (r *RedisRepository) TakeEditorSession(ctx context.Context, id string) (*models.EditorSession, error) {
	payload, err := r.rdb.GetDel(ctx, editorKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var session models.EditorSession
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("failed to decode editor session: %w", err)
	}
	return &session, nil
}
