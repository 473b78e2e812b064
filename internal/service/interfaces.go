package service

import (
	"context"

	"hostel-eats/internal/domain"
	"hostel-eats/internal/phonepe"
	"hostel-eats/internal/storage"
)

type OrderRepository interface {
	CreateOrderWithStock(ctx context.Context, order *domain.Order) error
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	ListOrders(ctx context.Context, phone string, includeArchived bool) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
	SetArchived(ctx context.Context, id string, archived bool) error
	DeleteOrder(ctx context.Context, id string) error
	AttachFeedback(ctx context.Context, id string, feedback domain.Feedback) error
}

type InventoryRepository interface {
	CreateItem(ctx context.Context, item *domain.InventoryItem) error
	ListItems(ctx context.Context) ([]domain.InventoryItem, error)
	GetItems(ctx context.Context, ids []int) (map[int]domain.InventoryItem, error)
	AdjustStock(ctx context.Context, itemID int, delta int64) (int64, error)
}

type SettingsRepository interface {
	GetSettings(ctx context.Context) (*domain.StoreSettings, error)
	UpdateSettings(ctx context.Context, settings *domain.StoreSettings) error
}

type SubscriptionRepository interface {
	UpsertSubscription(ctx context.Context, sub *domain.PushSubscription) error
	ListSubscriptions(ctx context.Context) ([]domain.PushSubscription, error)
	ListSubscriptionsByUser(ctx context.Context, userID string) ([]domain.PushSubscription, error)
	DeleteSubscription(ctx context.Context, endpoint string) error
}

type PendingStore interface {
	Stage(ctx context.Context, pending *domain.PendingCommit) error
	Claim(ctx context.Context, orderID string) (*domain.PendingCommit, error)
	Restage(ctx context.Context, pending *domain.PendingCommit) error
	Discard(ctx context.Context, orderID string) error
	PendingOrderIDs(ctx context.Context) ([]string, error)
}

type PaymentGateway interface {
	Initiate(ctx context.Context, amount int64, userID, orderID, origin string) (string, error)
	CheckStatus(ctx context.Context, orderID string) (phonepe.StatusResult, error)
	RawStatus(ctx context.Context, orderID string) ([]byte, error)
}

type StatusPublisher interface {
	PublishStatus(ctx context.Context, msg domain.OrderStatusMessage) error
}

// PushTransport delivers one payload to one subscription.
type PushTransport interface {
	Send(ctx context.Context, sub domain.PushSubscription, payload []byte) error
}

type StatsRepository interface {
	Summary(ctx context.Context) (*storage.RevenueSummary, error)
}

type CheckoutServiceInterface interface {
	CommitCOD(ctx context.Context, cart domain.Cart, customer domain.Customer) (*domain.Order, error)
	StartOnlinePayment(ctx context.Context, cart domain.Cart, customer domain.Customer, orderID, origin string) (string, string, error)
	ReconcileOnline(ctx context.Context, orderID string) (*domain.Order, error)
	SweepPending(ctx context.Context) int
}

type FulfillmentServiceInterface interface {
	UpdateStatus(ctx context.Context, id string, next domain.OrderStatus) (*domain.Order, error)
	Complete(ctx context.Context, id, code string, confirmed bool) (*domain.Order, error)
	Archive(ctx context.Context, id string, archived bool) error
	Delete(ctx context.Context, id string, confirmed bool) error
	AttachFeedback(ctx context.Context, id string, rating int, comment string) error
}

type NotificationServiceInterface interface {
	Register(ctx context.Context, sub domain.PushSubscription) error
	Broadcast(ctx context.Context, title, body string) (NotifyResult, error)
	NotifyUser(ctx context.Context, userID, title, body string) (NotifyResult, error)
}

type OrderQueryServiceInterface interface {
	Get(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, phone string, includeArchived bool) ([]domain.Order, error)
	QRCode(ctx context.Context, id string) ([]byte, error)
}

type StoreServiceInterface interface {
	CreateItem(ctx context.Context, item *domain.InventoryItem) error
	ListItems(ctx context.Context) ([]domain.InventoryItem, error)
	AdjustStock(ctx context.Context, itemID int, delta int64) (int64, error)
	GetSettings(ctx context.Context) (*domain.StoreSettings, error)
	UpdateSettings(ctx context.Context, settings *domain.StoreSettings) error
	Summary(ctx context.Context) (*storage.RevenueSummary, error)
}

var (
	_ OrderRepository        = (*storage.PostgresRepository)(nil)
	_ InventoryRepository    = (*storage.PostgresRepository)(nil)
	_ SettingsRepository     = (*storage.PostgresRepository)(nil)
	_ SubscriptionRepository = (*storage.PostgresRepository)(nil)
	_ PendingStore           = (*storage.PendingCommitStore)(nil)
	_ PaymentGateway         = (*phonepe.Client)(nil)
	_ StatusPublisher        = (*storage.KafkaPublisher)(nil)
	_ StatsRepository        = (*storage.PostgresRepository)(nil)
)
