package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ibeloyar/loangateway/internal/model"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "lw:session:"

// Repository хранит состояние покупателя между запросами: флаг отключенного
// шлюза и очередь уведомлений. Пустой идентификатор сессии (серверный
// callback) превращает все операции в no-op.
type Repository struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Repository {
	return &Repository{
		client: client,
		ttl:    ttl,
	}
}

func gatewayDisabledKey(sessionID string) string {
	return keyPrefix + sessionID + ":gateway_disabled"
}

func noticesKey(sessionID string) string {
	return keyPrefix + sessionID + ":notices"
}

func (r *Repository) DisableGateway(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	return r.client.Set(ctx, gatewayDisabledKey(sessionID), "1", r.ttl).Err()
}

func (r *Repository) IsGatewayDisabled(ctx context.Context, sessionID string) (bool, error) {
	if sessionID == "" {
		return false, nil
	}

	n, err := r.client.Exists(ctx, gatewayDisabledKey(sessionID)).Result()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

func (r *Repository) AddNotice(ctx context.Context, sessionID string, notice model.Notice) error {
	if sessionID == "" {
		return nil
	}

	raw, err := json.Marshal(notice)
	if err != nil {
		return fmt.Errorf("encode notice: %w", err)
	}

	key := noticesKey(sessionID)
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, string(raw))
		pipe.Expire(ctx, key, r.ttl)
		return nil
	})

	return err
}

// PopNotices атомарно забирает и очищает накопленные уведомления
func (r *Repository) PopNotices(ctx context.Context, sessionID string) ([]model.Notice, error) {
	result := make([]model.Notice, 0)
	if sessionID == "" {
		return result, nil
	}

	key := noticesKey(sessionID)

	var items *redis.StringSliceCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		items = pipe.LRange(ctx, key, 0, -1)
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, raw := range items.Val() {
		var n model.Notice
		if err := json.Unmarshal([]byte(raw), &n); err != nil {
			continue
		}
		result = append(result, n)
	}

	return result, nil
}
