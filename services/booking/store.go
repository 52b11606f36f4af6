package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"shutterbook/models"

	"github.com/go-redis/redis/v8"
)

// RedisDraftStore keeps booking drafts as JSON blobs under their session id.
type RedisDraftStore struct {
	Client *redis.Client
}

// NewRedisDraftStore wraps the given Redis client as a DraftStore.
func NewRedisDraftStore(client *redis.Client) *RedisDraftStore {
	return &RedisDraftStore{Client: client}
}

func (s *RedisDraftStore) Save(ctx context.Context, draft *models.BookingDraft, ttl time.Duration) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal booking draft: %w", err)
	}
	if err := s.Client.Set(ctx, draft.SessionID, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store booking draft: %w", err)
	}
	return nil
}

func (s *RedisDraftStore) Get(ctx context.Context, sessionID string) (*models.BookingDraft, error) {
	data, err := s.Client.Get(ctx, sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking draft: %w", err)
	}
	var draft models.BookingDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, fmt.Errorf("failed to parse booking draft: %w", err)
	}
	return &draft, nil
}

func (s *RedisDraftStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.Client.Del(ctx, sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete booking draft: %w", err)
	}
	return nil
}
