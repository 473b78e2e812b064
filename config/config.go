package config

import (
	"context"
	"database/sql"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

const (
	OrderStatusTopic = "order-status-events"

	defaultPendingTTL = 30 * time.Minute
)

// App holds the non-infrastructure settings read from the environment.
// Must-init constructors below cover Postgres, Redis and Kafka.
type App struct {
	HTTPAddr string

	PhonePeBaseURL   string
	PhonePeMerchant  string
	PhonePeSaltKey   string
	PhonePeSaltIndex string

	VAPIDPublicKey  string
	VAPIDPrivateKey string
	VAPIDSubscriber string

	TrackingBaseURL string
	PendingTTL      time.Duration
}

func MustLoadApp() App {
	cfg := App{
		HTTPAddr:         getenv("HTTP_ADDR", ":8080"),
		PhonePeBaseURL:   getenv("PHONEPE_BASE_URL", "https://api-preprod.phonepe.com/apis/pg-sandbox"),
		PhonePeMerchant:  os.Getenv("PHONEPE_MERCHANT_ID"),
		PhonePeSaltKey:   os.Getenv("PHONEPE_SALT_KEY"),
		PhonePeSaltIndex: getenv("PHONEPE_SALT_INDEX", "1"),
		VAPIDPublicKey:   os.Getenv("VAPID_PUBLIC_KEY"),
		VAPIDPrivateKey:  os.Getenv("VAPID_PRIVATE_KEY"),
		VAPIDSubscriber:  getenv("VAPID_SUBSCRIBER", "mailto:admin@hosteleats.local"),
		TrackingBaseURL:  getenv("TRACKING_BASE_URL", "http://localhost:8080"),
		PendingTTL:       defaultPendingTTL,
	}

	if ttl := os.Getenv("PENDING_COMMIT_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			log.Fatal("Invalid PENDING_COMMIT_TTL:", err)
		}
		cfg.PendingTTL = d
	}

	if cfg.PhonePeMerchant == "" || cfg.PhonePeSaltKey == "" {
		log.Fatal("PHONEPE_MERCHANT_ID and PHONEPE_SALT_KEY must be set")
	}
	if cfg.VAPIDPublicKey == "" || cfg.VAPIDPrivateKey == "" {
		log.Fatal("VAPID_PUBLIC_KEY and VAPID_PRIVATE_KEY must be set")
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func MustInitPostgres() *sql.DB {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")

	connStr := "host=" + dbHost + " port=" + dbPort + " user=" + dbUser +
		" password=" + dbPassword + " dbname=" + dbName + " sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_HOST") + ":" + os.Getenv("REDIS_PORT"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaReader(topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{os.Getenv("KAFKA_BROKER")},
		Topic:   topic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(os.Getenv("KAFKA_BROKER")),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}
