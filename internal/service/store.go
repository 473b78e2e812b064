package service

import (
	"context"
	"errors"

	"hostel-eats/internal/domain"
	"hostel-eats/internal/storage"
)

var (
	ErrInvalidItem         = errors.New("item needs a name and a positive price")
	ErrInvalidDeliveryMode = errors.New("delivery mode must be NOW or LATER")
)

// StoreService covers the staff surface: catalog items, stock
// corrections, settings, and the revenue summary.
type StoreService struct {
	inventory InventoryRepository
	settings  SettingsRepository
	stats     StatsRepository
}

func NewStoreService(inventory InventoryRepository, settings SettingsRepository, stats StatsRepository) *StoreService {
	return &StoreService{inventory: inventory, settings: settings, stats: stats}
}

func (s *StoreService) CreateItem(ctx context.Context, item *domain.InventoryItem) error {
	if item.Name == "" || item.Price < 1 {
		return ErrInvalidItem
	}
	if item.Stock < 0 {
		return storage.ErrInsufficientStock
	}
	return s.inventory.CreateItem(ctx, item)
}

func (s *StoreService) ListItems(ctx context.Context) ([]domain.InventoryItem, error) {
	return s.inventory.ListItems(ctx)
}

// AdjustStock is the staff restock/correction path. It shares the
// ledger's floor check: stock never goes negative.
func (s *StoreService) AdjustStock(ctx context.Context, itemID int, delta int64) (int64, error) {
	return s.inventory.AdjustStock(ctx, itemID, delta)
}

func (s *StoreService) GetSettings(ctx context.Context) (*domain.StoreSettings, error) {
	return s.settings.GetSettings(ctx)
}

func (s *StoreService) UpdateSettings(ctx context.Context, settings *domain.StoreSettings) error {
	if settings.DeliveryMode != domain.DeliveryNow && settings.DeliveryMode != domain.DeliveryLater {
		return ErrInvalidDeliveryMode
	}
	return s.settings.UpdateSettings(ctx, settings)
}

func (s *StoreService) Summary(ctx context.Context) (*storage.RevenueSummary, error) {
	return s.stats.Summary(ctx)
}

var _ StoreServiceInterface = (*StoreService)(nil)
