package main

import (
	"context"
	"os/signal"
	"syscall"

	"hostel-eats/config"
	"hostel-eats/internal/notifier"
	"hostel-eats/internal/service"
	"hostel-eats/internal/storage"
)

func main() {
	cfg := config.MustLoadApp()

	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)

	transport := &service.WebPushTransport{
		PublicKey:  cfg.VAPIDPublicKey,
		PrivateKey: cfg.VAPIDPrivateKey,
		Subscriber: cfg.VAPIDSubscriber,
	}
	notifications := service.NewNotificationService(repo, transport, 0)

	reader := config.NewKafkaReader(config.OrderStatusTopic, "notifier")
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := notifier.NewConsumer(reader, notifications)
	consumer.Start(ctx)
}
