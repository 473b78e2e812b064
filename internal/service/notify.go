package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"hostel-eats/internal/domain"
)

var ErrMissingEndpoint = errors.New("subscription endpoint is required")

const defaultFanoutWorkers = 8

// NotificationService keeps the push-subscription registry and fans
// payloads out to it. Delivery is best effort: one dead endpoint never
// blocks the rest, and endpoints the transport reports gone are pruned.
type NotificationService struct {
	subs      SubscriptionRepository
	transport PushTransport
	workers   int
}

func NewNotificationService(subs SubscriptionRepository, transport PushTransport, workers int) *NotificationService {
	if workers <= 0 {
		workers = defaultFanoutWorkers
	}
	return &NotificationService{subs: subs, transport: transport, workers: workers}
}

// NotifyResult summarises one fan-out: every attempt completed, whether
// it delivered, failed in isolation, or pruned a stale endpoint.
type NotifyResult struct {
	Attempted int `json:"attempted"`
	Delivered int `json:"delivered"`
	Pruned    int `json:"pruned"`
}

func (s *NotificationService) Register(ctx context.Context, sub domain.PushSubscription) error {
	if sub.Endpoint == "" {
		return ErrMissingEndpoint
	}
	if sub.UserID == "" {
		sub.UserID = "unknown"
	}
	return s.subs.UpsertSubscription(ctx, &sub)
}

func (s *NotificationService) Broadcast(ctx context.Context, title, body string) (NotifyResult, error) {
	subs, err := s.subs.ListSubscriptions(ctx)
	if err != nil {
		return NotifyResult{}, err
	}
	return s.deliver(ctx, subs, title, body), nil
}

// NotifyUser pushes to every subscription registered for userID. Zero
// subscriptions is a no-op success.
func (s *NotificationService) NotifyUser(ctx context.Context, userID, title, body string) (NotifyResult, error) {
	subs, err := s.subs.ListSubscriptionsByUser(ctx, userID)
	if err != nil {
		return NotifyResult{}, err
	}
	return s.deliver(ctx, subs, title, body), nil
}

func (s *NotificationService) deliver(ctx context.Context, subs []domain.PushSubscription, title, body string) NotifyResult {
	payload, _ := json.Marshal(map[string]string{"title": title, "body": body})

	var (
		mu     sync.Mutex
		result = NotifyResult{Attempted: len(subs)}
		sem    = make(chan struct{}, s.workers)
		wg     sync.WaitGroup
	)
	for _, sub := range subs {
		wg.Add(1)
		sem <- struct{}{}
		go func(sub domain.PushSubscription) {
			defer wg.Done()
			defer func() { <-sem }()

			err := s.transport.Send(ctx, sub, payload)
			switch {
			case err == nil:
				mu.Lock()
				result.Delivered++
				mu.Unlock()
			case errors.Is(err, ErrSubscriptionGone):
				if delErr := s.subs.DeleteSubscription(ctx, sub.Endpoint); delErr != nil {
					log.Printf("WARNING: prune subscription %s: %v", sub.Endpoint, delErr)
				}
				mu.Lock()
				result.Pruned++
				mu.Unlock()
			default:
				log.Printf("push delivery to %s: %v", sub.Endpoint, err)
			}
		}(sub)
	}
	wg.Wait()
	return result
}

var _ NotificationServiceInterface = (*NotificationService)(nil)
