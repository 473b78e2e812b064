package service

import (
	"context"

	"hostel-eats/internal/domain"
)

// OrderQueryService is the customer-facing read path. It never exposes
// the delivery code: that code is proof of delivery and only the staff
// completion path may compare against it.
type OrderQueryService struct {
	orders OrderRepository
	qr     QRGenerator
}

func NewOrderQueryService(orders OrderRepository, qr QRGenerator) *OrderQueryService {
	return &OrderQueryService{orders: orders, qr: qr}
}

func (s *OrderQueryService) Get(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.orders.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	order.DeliveryCode = ""
	return order, nil
}

func (s *OrderQueryService) List(ctx context.Context, phone string, includeArchived bool) ([]domain.Order, error) {
	orders, err := s.orders.ListOrders(ctx, phone, includeArchived)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].DeliveryCode = ""
	}
	return orders, nil
}

func (s *OrderQueryService) QRCode(ctx context.Context, id string) ([]byte, error) {
	if _, err := s.orders.GetOrder(ctx, id); err != nil {
		return nil, err
	}
	return s.qr.Generate(id)
}

var _ OrderQueryServiceInterface = (*OrderQueryService)(nil)
