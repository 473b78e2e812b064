package service

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"hostel-eats/internal/domain"

	webpush "github.com/SherClockHolmes/webpush-go"
)

// ErrSubscriptionGone means the push endpoint no longer exists and the
// subscription should be removed from the registry.
var ErrSubscriptionGone = errors.New("push subscription gone")

const pushTimeout = 10 * time.Second

// WebPushTransport delivers payloads over the Web Push protocol with
// VAPID authentication.
type WebPushTransport struct {
	PublicKey  string
	PrivateKey string
	Subscriber string
}

func (t *WebPushTransport) Send(ctx context.Context, sub domain.PushSubscription, payload []byte) error {
	ctx, cancel := context.WithTimeout(ctx, pushTimeout)
	defer cancel()

	resp, err := webpush.SendNotificationWithContext(ctx, payload, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.Keys.P256dh,
			Auth:   sub.Keys.Auth,
		},
	}, &webpush.Options{
		Subscriber:      t.Subscriber,
		VAPIDPublicKey:  t.PublicKey,
		VAPIDPrivateKey: t.PrivateKey,
		TTL:             60,
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return ErrSubscriptionGone
	case resp.StatusCode >= 400:
		return errors.New("push endpoint returned " + resp.Status)
	}
	return nil
}

var _ PushTransport = (*WebPushTransport)(nil)
