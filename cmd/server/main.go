package main

import (
	"context"
	"log"
	"time"

	"hostel-eats/config"
	httpapi "hostel-eats/internal/api/http"
	"hostel-eats/internal/phonepe"
	"hostel-eats/internal/service"
	"hostel-eats/internal/storage"
)

const sweepInterval = 5 * time.Minute

func main() {
	cfg := config.MustLoadApp()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	pending := storage.NewPendingCommitStore(rdb, cfg.PendingTTL)

	kafkaWriter := config.NewKafkaWriter(config.OrderStatusTopic)
	defer kafkaWriter.Close()
	publisher := storage.NewKafkaPublisher(kafkaWriter)

	codec := phonepe.Codec{
		MerchantID: cfg.PhonePeMerchant,
		SaltKey:    cfg.PhonePeSaltKey,
		SaltIndex:  cfg.PhonePeSaltIndex,
	}
	gateway := phonepe.NewClient(codec, cfg.PhonePeBaseURL)

	transport := &service.WebPushTransport{
		PublicKey:  cfg.VAPIDPublicKey,
		PrivateKey: cfg.VAPIDPrivateKey,
		Subscriber: cfg.VAPIDSubscriber,
	}

	checkout := service.NewCheckoutService(repo, repo, repo, pending, gateway)
	fulfillment := service.NewFulfillmentService(repo, publisher)
	orders := service.NewOrderQueryService(repo, service.TrackingQRGenerator{BaseURL: cfg.TrackingBaseURL})
	store := service.NewStoreService(repo, repo, repo)
	notifications := service.NewNotificationService(repo, transport, 0)

	go sweepPending(checkout)

	handler := httpapi.NewHandler(checkout, fulfillment, orders, store, notifications,
		gateway, codec, cfg.VAPIDPublicKey)
	httpapi.StartServer(cfg.HTTPAddr, httpapi.NewRouter(handler))
}

// sweepPending retries reconciliation for staged commits whose customers
// never came back from the gateway redirect.
func sweepPending(checkout *service.CheckoutService) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for range ticker.C {
		if n := checkout.SweepPending(context.Background()); n > 0 {
			log.Printf("Pending sweep reconciled %d orders", n)
		}
	}
}
