package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"hostel-eats/internal/domain"
)

var (
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrInvalidDeliveryCode  = errors.New("invalid delivery code")
	ErrConfirmationRequired = errors.New("explicit confirmation required")
	ErrInvalidRating        = errors.New("rating must be between 1 and 5")
	ErrNotCompleted         = errors.New("order is not completed")
	ErrFeedbackExists       = errors.New("feedback already submitted")
)

// FulfillmentService drives orders through the status machine and emits
// customer-visible transition events.
type FulfillmentService struct {
	orders    OrderRepository
	publisher StatusPublisher
}

func NewFulfillmentService(orders OrderRepository, publisher StatusPublisher) *FulfillmentService {
	return &FulfillmentService{orders: orders, publisher: publisher}
}

// UpdateStatus applies a non-completion transition. COMPLETED must go
// through Complete so the delivery-code gate cannot be skipped.
func (s *FulfillmentService) UpdateStatus(ctx context.Context, id string, next domain.OrderStatus) (*domain.Order, error) {
	if !next.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, next)
	}
	if next == domain.StatusCompleted {
		return nil, ErrConfirmationRequired
	}

	order, err := s.orders.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransition(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, next)
	}
	if err := s.orders.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}
	order.Status = next

	if next == domain.StatusDispatched {
		s.publishTransition(ctx, order)
	}
	return order, nil
}

// Complete finishes an order. Orders carrying a delivery code demand the
// exact code; the rest demand an explicit staff confirmation.
func (s *FulfillmentService) Complete(ctx context.Context, id, code string, confirmed bool) (*domain.Order, error) {
	order, err := s.orders.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransition(domain.StatusCompleted) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, domain.StatusCompleted)
	}

	if order.DeliveryCode != "" {
		if code != order.DeliveryCode {
			return nil, ErrInvalidDeliveryCode
		}
	} else if !confirmed {
		return nil, ErrConfirmationRequired
	}

	if err := s.orders.UpdateStatus(ctx, id, domain.StatusCompleted); err != nil {
		return nil, err
	}
	order.Status = domain.StatusCompleted
	s.publishTransition(ctx, order)
	return order, nil
}

func (s *FulfillmentService) publishTransition(ctx context.Context, order *domain.Order) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishStatus(ctx, domain.OrderStatusMessage{
		Type:      domain.StatusEventType,
		OrderID:   order.ID,
		Phone:     order.Customer.Phone,
		Status:    order.Status,
		Total:     order.TotalAmount,
		Timestamp: time.Now(),
	})
	if err != nil {
		// Notification delivery is best effort; the transition stands.
		log.Printf("WARNING: publish status event for order %s: %v", order.ID, err)
	}
}

// Archive toggles listing visibility only; status is untouched.
func (s *FulfillmentService) Archive(ctx context.Context, id string, archived bool) error {
	return s.orders.SetArchived(ctx, id, archived)
}

// Delete hard-deletes an order. Deleting a non-archived order is
// irreversible and requires the confirmed flag.
func (s *FulfillmentService) Delete(ctx context.Context, id string, confirmed bool) error {
	order, err := s.orders.GetOrder(ctx, id)
	if err != nil {
		return err
	}
	if !order.Archived && !confirmed {
		return ErrConfirmationRequired
	}
	return s.orders.DeleteOrder(ctx, id)
}

// AttachFeedback records customer feedback once, and only on a completed
// order.
func (s *FulfillmentService) AttachFeedback(ctx context.Context, id string, rating int, comment string) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}
	order, err := s.orders.GetOrder(ctx, id)
	if err != nil {
		return err
	}
	if order.Status != domain.StatusCompleted {
		return ErrNotCompleted
	}
	if order.Feedback != nil {
		return ErrFeedbackExists
	}
	return s.orders.AttachFeedback(ctx, id, domain.Feedback{Rating: rating, Comment: comment})
}

var _ FulfillmentServiceInterface = (*FulfillmentService)(nil)
