package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"

	"hostel-eats/internal/domain"
	"hostel-eats/internal/phonepe"
	"hostel-eats/internal/storage"

	"github.com/google/uuid"
)

var (
	ErrCODDisabled = errors.New("cash on delivery is disabled")
	ErrEmptyCart   = errors.New("cart is empty")
	ErrUnknownItem = errors.New("cart references an unknown item")
	ErrBadQuantity = errors.New("quantity must be at least 1")
	// ErrPaymentRejected is terminal: the gateway said the payment failed.
	ErrPaymentRejected = errors.New("payment rejected by gateway")
	// ErrPaymentUnverified means the gateway could not confirm the payment
	// yet. The pending record stays staged; the caller may retry.
	ErrPaymentUnverified = errors.New("payment not yet verified")
	ErrNoPendingCommit   = errors.New("no pending commit for order")
)

// CheckoutService is the reconciliation coordinator. It owns the only two
// paths that create orders and decrement stock, and it is the only place
// a lower-level failure turns into "no order was created".
type CheckoutService struct {
	orders    OrderRepository
	inventory InventoryRepository
	settings  SettingsRepository
	pending   PendingStore
	gateway   PaymentGateway
}

func NewCheckoutService(orders OrderRepository, inventory InventoryRepository,
	settings SettingsRepository, pending PendingStore, gateway PaymentGateway) *CheckoutService {
	return &CheckoutService{
		orders:    orders,
		inventory: inventory,
		settings:  settings,
		pending:   pending,
		gateway:   gateway,
	}
}

// snapshot freezes catalog prices into order lines. Stock is not checked
// here; the commit transaction enforces the floor atomically.
func (s *CheckoutService) snapshot(ctx context.Context, cart domain.Cart) ([]domain.OrderItem, int64, error) {
	if len(cart.Items) == 0 {
		return nil, 0, ErrEmptyCart
	}
	ids := make([]int, 0, len(cart.Items))
	for _, line := range cart.Items {
		if line.Quantity < 1 {
			return nil, 0, ErrBadQuantity
		}
		ids = append(ids, line.ItemID)
	}

	catalog, err := s.inventory.GetItems(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	var (
		items []domain.OrderItem
		total int64
	)
	for _, line := range cart.Items {
		item, ok := catalog[line.ItemID]
		if !ok {
			return nil, 0, fmt.Errorf("item %d: %w", line.ItemID, ErrUnknownItem)
		}
		items = append(items, domain.OrderItem{
			ItemID:    item.ID,
			Name:      item.Name,
			UnitPrice: item.Price,
			UnitCost:  item.Cost,
			Quantity:  line.Quantity,
		})
		total += item.Price * int64(line.Quantity)
	}
	return items, total, nil
}

// CommitCOD commits a cash-on-delivery order in one shot. The delivery
// code gates the staff completion step later.
func (s *CheckoutService) CommitCOD(ctx context.Context, cart domain.Cart, customer domain.Customer) (*domain.Order, error) {
	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	if !settings.CODEnabled {
		return nil, ErrCODDisabled
	}

	items, total, err := s.snapshot(ctx, cart)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		ID:           uuid.NewString(),
		Customer:     customer,
		Items:        items,
		TotalAmount:  total,
		PaymentMode:  domain.PaymentCOD,
		DeliveryCode: newDeliveryCode(),
		Status:       domain.StatusPending,
	}
	if err := s.orders.CreateOrderWithStock(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// StartOnlinePayment stages a pending-commit record and asks the gateway
// for a hosted-checkout redirect. A gateway failure here means nothing
// happened: the staged record is discarded and no order exists.
func (s *CheckoutService) StartOnlinePayment(ctx context.Context, cart domain.Cart, customer domain.Customer, orderID, origin string) (string, string, error) {
	items, total, err := s.snapshot(ctx, cart)
	if err != nil {
		return "", "", err
	}
	if orderID == "" {
		orderID = uuid.NewString()
	}

	if err := s.pending.Stage(ctx, &domain.PendingCommit{
		OrderID:  orderID,
		Customer: customer,
		Items:    items,
		Total:    total,
	}); err != nil {
		return "", "", err
	}

	redirect, err := s.gateway.Initiate(ctx, total, customer.Phone, orderID, origin)
	if err != nil {
		_ = s.pending.Discard(ctx, orderID)
		return "", "", err
	}
	return redirect, orderID, nil
}

// ReconcileOnline is the idempotent commit path for online payments. It
// is safe to call any number of times, concurrently or not: exactly one
// Order and one stock decrement result from a successful payment.
func (s *CheckoutService) ReconcileOnline(ctx context.Context, orderID string) (*domain.Order, error) {
	status, err := s.gateway.CheckStatus(ctx, orderID)
	if err != nil {
		log.Printf("reconcile %s: status check: %v", orderID, err)
	}

	switch status.State {
	case phonepe.StateSuccess:
		// fall through to commit
	case phonepe.StateFailed:
		return nil, ErrPaymentRejected
	default:
		// PENDING or UNKNOWN: leave the staged record for a retry.
		return nil, ErrPaymentUnverified
	}

	pending, err := s.pending.Claim(ctx, orderID)
	if errors.Is(err, storage.ErrNotFound) {
		// Already claimed, either by a finished commit or one in flight.
		if order, getErr := s.orders.GetOrder(ctx, orderID); getErr == nil {
			return order, nil
		}
		return nil, ErrNoPendingCommit
	}
	if err != nil {
		return nil, err
	}

	// The gateway's transaction id is the payment reference; older sandbox
	// responses omit it, in which case the merchant order id has to do.
	paymentRef := status.TransactionID
	if paymentRef == "" {
		paymentRef = orderID
	}

	order := &domain.Order{
		ID:           pending.OrderID,
		Customer:     pending.Customer,
		Items:        pending.Items,
		TotalAmount:  pending.Total,
		PaymentMode:  domain.PaymentOnline,
		PaymentRef:   paymentRef,
		DeliveryCode: newDeliveryCode(),
		Status:       domain.StatusPending,
	}
	err = s.orders.CreateOrderWithStock(ctx, order)
	if errors.Is(err, storage.ErrOrderExists) {
		return s.orders.GetOrder(ctx, orderID)
	}
	if err != nil {
		// Put the record back so a later re-check can retry the commit.
		if restageErr := s.pending.Restage(ctx, pending); restageErr != nil {
			log.Printf("WARNING: restage pending %s: %v", orderID, restageErr)
		}
		return nil, err
	}
	return order, nil
}

// SweepPending re-checks every staged record. It backs the periodic sweep
// so reconciliation does not depend on the client's return trip.
func (s *CheckoutService) SweepPending(ctx context.Context) int {
	ids, err := s.pending.PendingOrderIDs(ctx)
	if err != nil {
		log.Printf("pending sweep: %v", err)
		return 0
	}

	reconciled := 0
	for _, id := range ids {
		if _, err := s.ReconcileOnline(ctx, id); err == nil {
			reconciled++
		}
	}
	return reconciled
}

// newDeliveryCode returns a 4-digit one-time code for in-person handoff.
func newDeliveryCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		// crypto/rand failing is unrecoverable for a payment service.
		panic(err)
	}
	return fmt.Sprintf("%04d", n.Int64())
}

var _ CheckoutServiceInterface = (*CheckoutService)(nil)
