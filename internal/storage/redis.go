package storage

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"hostel-eats/internal/domain"

	"github.com/redis/go-redis/v9"
)

const pendingKeyPrefix = "checkout:pending:"

func pendingKey(orderID string) string {
	return pendingKeyPrefix + orderID
}

// PendingCommitStore holds staged cart+customer records in Redis while a
// payment is in flight. Records expire on their own; a committed order
// claims its record exactly once.
type PendingCommitStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewPendingCommitStore(client *redis.Client, ttl time.Duration) *PendingCommitStore {
	return &PendingCommitStore{Client: client, TTL: ttl}
}

func (s *PendingCommitStore) Stage(ctx context.Context, pending *domain.PendingCommit) error {
	payload, err := json.Marshal(pending)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, pendingKey(pending.OrderID), payload, s.TTL).Err()
}

// Claim atomically removes and returns the staged record. A concurrent
// second claim for the same order id finds nothing, which is what makes
// duplicate reconciliation attempts collapse.
func (s *PendingCommitStore) Claim(ctx context.Context, orderID string) (*domain.PendingCommit, error) {
	payload, err := s.Client.GetDel(ctx, pendingKey(orderID)).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var pending domain.PendingCommit
	if err := json.Unmarshal([]byte(payload), &pending); err != nil {
		return nil, err
	}
	return &pending, nil
}

// Restage puts a claimed record back after a failed commit so a later
// re-check can retry it.
func (s *PendingCommitStore) Restage(ctx context.Context, pending *domain.PendingCommit) error {
	return s.Stage(ctx, pending)
}

func (s *PendingCommitStore) Peek(ctx context.Context, orderID string) (*domain.PendingCommit, error) {
	payload, err := s.Client.Get(ctx, pendingKey(orderID)).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var pending domain.PendingCommit
	if err := json.Unmarshal([]byte(payload), &pending); err != nil {
		return nil, err
	}
	return &pending, nil
}

func (s *PendingCommitStore) Discard(ctx context.Context, orderID string) error {
	return s.Client.Del(ctx, pendingKey(orderID)).Err()
}

// PendingOrderIDs scans for staged records; the background sweep uses it
// to re-check payments whose client never came back.
func (s *PendingCommitStore) PendingOrderIDs(ctx context.Context) ([]string, error) {
	var (
		ids    []string
		cursor uint64
	)
	for {
		keys, next, err := s.Client.Scan(ctx, cursor, pendingKeyPrefix+"*", 64).Result()
		if err != nil {
			return nil, err
		}
		for _, key := range keys {
			ids = append(ids, strings.TrimPrefix(key, pendingKeyPrefix))
		}
		cursor = next
		if cursor == 0 {
			return ids, nil
		}
	}
}
