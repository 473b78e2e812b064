package tests

import (
	"context"
	"testing"

	"hostel-eats/internal/domain"
	"hostel-eats/internal/mocks"
	"hostel-eats/internal/service"
	"hostel-eats/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fulfillmentFixtures(t *testing.T) (*service.FulfillmentService, *mocks.OrderRepository, *mocks.StatusPublisher) {
	orders := mocks.NewOrderRepository(t)
	publisher := mocks.NewStatusPublisher(t)
	return service.NewFulfillmentService(orders, publisher), orders, publisher
}

func TestUpdateStatus_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		current domain.OrderStatus
		next    domain.OrderStatus
		allowed bool
	}{
		{"pending_to_accepted", domain.StatusPending, domain.StatusAccepted, true},
		{"pending_to_dispatched", domain.StatusPending, domain.StatusDispatched, true},
		{"pending_to_cancelled", domain.StatusPending, domain.StatusCancelled, true},
		{"accepted_to_preparing", domain.StatusAccepted, domain.StatusPreparing, true},
		{"preparing_to_ready", domain.StatusPreparing, domain.StatusReady, true},
		{"ready_to_dispatched", domain.StatusReady, domain.StatusDispatched, true},
		{"accepted_to_pending", domain.StatusAccepted, domain.StatusPending, false},
		{"dispatched_to_preparing", domain.StatusDispatched, domain.StatusPreparing, false},
		{"completed_is_frozen", domain.StatusCompleted, domain.StatusCancelled, false},
		{"cancelled_is_frozen", domain.StatusCancelled, domain.StatusAccepted, false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, orders, publisher := fulfillmentFixtures(t)
			ctx := context.Background()

			orders.On("GetOrder", ctx, "order-1").
				Return(&domain.Order{ID: "order-1", Status: testCase.current}, nil).Once()
			if testCase.allowed {
				orders.On("UpdateStatus", ctx, "order-1", testCase.next).Return(nil).Once()
				if testCase.next == domain.StatusDispatched {
					publisher.On("PublishStatus", ctx, mock.Anything).Return(nil).Once()
				}
			}

			order, err := svc.UpdateStatus(ctx, "order-1", testCase.next)
			if testCase.allowed {
				require.NoError(t, err)
				assert.Equal(t, testCase.next, order.Status)
			} else {
				assert.ErrorIs(t, err, service.ErrInvalidTransition)
			}
		})
	}
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	svc, _, _ := fulfillmentFixtures(t)

	_, err := svc.UpdateStatus(context.Background(), "order-1", "SHIPPED")
	assert.ErrorIs(t, err, service.ErrInvalidTransition)
}

func TestUpdateStatus_CompletionMustUseComplete(t *testing.T) {
	svc, _, _ := fulfillmentFixtures(t)

	_, err := svc.UpdateStatus(context.Background(), "order-1", domain.StatusCompleted)
	assert.ErrorIs(t, err, service.ErrConfirmationRequired)
}

func TestUpdateStatus_DispatchPublishesEvent(t *testing.T) {
	svc, orders, publisher := fulfillmentFixtures(t)
	ctx := context.Background()

	orders.On("GetOrder", ctx, "order-1").Return(&domain.Order{
		ID:          "order-1",
		Customer:    domain.Customer{Phone: "9876543210"},
		TotalAmount: 140,
		Status:      domain.StatusReady,
	}, nil).Once()
	orders.On("UpdateStatus", ctx, "order-1", domain.StatusDispatched).Return(nil).Once()
	publisher.On("PublishStatus", ctx, mock.MatchedBy(func(msg domain.OrderStatusMessage) bool {
		return msg.OrderID == "order-1" &&
			msg.Phone == "9876543210" &&
			msg.Status == domain.StatusDispatched &&
			msg.Type == domain.StatusEventType
	})).Return(nil).Once()

	_, err := svc.UpdateStatus(ctx, "order-1", domain.StatusDispatched)
	require.NoError(t, err)
}

func TestComplete_DeliveryCodeGate(t *testing.T) {
	tests := []struct {
		name          string
		order         *domain.Order
		code          string
		confirmed     bool
		expectedError error
	}{
		{
			name:  "correct_code",
			order: &domain.Order{ID: "order-1", Status: domain.StatusDispatched, DeliveryCode: "4821"},
			code:  "4821",
		},
		{
			name:          "wrong_code",
			order:         &domain.Order{ID: "order-1", Status: domain.StatusDispatched, DeliveryCode: "4821"},
			code:          "0000",
			expectedError: service.ErrInvalidDeliveryCode,
		},
		{
			name:          "confirmed_flag_does_not_bypass_code",
			order:         &domain.Order{ID: "order-1", Status: domain.StatusDispatched, DeliveryCode: "4821"},
			confirmed:     true,
			expectedError: service.ErrInvalidDeliveryCode,
		},
		{
			name:      "no_code_with_confirmation",
			order:     &domain.Order{ID: "order-1", Status: domain.StatusDispatched},
			confirmed: true,
		},
		{
			name:          "no_code_without_confirmation",
			order:         &domain.Order{ID: "order-1", Status: domain.StatusDispatched},
			expectedError: service.ErrConfirmationRequired,
		},
		{
			name:          "pending_cannot_complete",
			order:         &domain.Order{ID: "order-1", Status: domain.StatusPending, DeliveryCode: "4821"},
			code:          "4821",
			expectedError: service.ErrInvalidTransition,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, orders, publisher := fulfillmentFixtures(t)
			ctx := context.Background()

			orders.On("GetOrder", ctx, "order-1").Return(testCase.order, nil).Once()
			if testCase.expectedError == nil {
				orders.On("UpdateStatus", ctx, "order-1", domain.StatusCompleted).Return(nil).Once()
				publisher.On("PublishStatus", ctx, mock.Anything).Return(nil).Once()
			}

			order, err := svc.Complete(ctx, "order-1", testCase.code, testCase.confirmed)
			if testCase.expectedError == nil {
				require.NoError(t, err)
				assert.Equal(t, domain.StatusCompleted, order.Status)
			} else {
				assert.ErrorIs(t, err, testCase.expectedError)
			}
		})
	}
}

func TestComplete_PublishFailureDoesNotFailCompletion(t *testing.T) {
	svc, orders, publisher := fulfillmentFixtures(t)
	ctx := context.Background()

	orders.On("GetOrder", ctx, "order-1").
		Return(&domain.Order{ID: "order-1", Status: domain.StatusDispatched}, nil).Once()
	orders.On("UpdateStatus", ctx, "order-1", domain.StatusCompleted).Return(nil).Once()
	publisher.On("PublishStatus", ctx, mock.Anything).
		Return(assert.AnError).Once()

	order, err := svc.Complete(ctx, "order-1", "", true)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, order.Status)
}

func TestDelete_NonArchivedNeedsConfirmation(t *testing.T) {
	svc, orders, _ := fulfillmentFixtures(t)
	ctx := context.Background()

	orders.On("GetOrder", ctx, "order-1").
		Return(&domain.Order{ID: "order-1", Archived: false}, nil).Once()

	err := svc.Delete(ctx, "order-1", false)
	assert.ErrorIs(t, err, service.ErrConfirmationRequired)
}

func TestDelete_ArchivedDeletesDirectly(t *testing.T) {
	svc, orders, _ := fulfillmentFixtures(t)
	ctx := context.Background()

	orders.On("GetOrder", ctx, "order-1").
		Return(&domain.Order{ID: "order-1", Archived: true}, nil).Once()
	orders.On("DeleteOrder", ctx, "order-1").Return(nil).Once()

	assert.NoError(t, svc.Delete(ctx, "order-1", false))
}

func TestAttachFeedback(t *testing.T) {
	tests := []struct {
		name          string
		rating        int
		order         *domain.Order
		expectedError error
	}{
		{
			name:   "valid",
			rating: 5,
			order:  &domain.Order{ID: "order-1", Status: domain.StatusCompleted},
		},
		{
			name:          "rating_too_low",
			rating:        0,
			expectedError: service.ErrInvalidRating,
		},
		{
			name:          "rating_too_high",
			rating:        6,
			expectedError: service.ErrInvalidRating,
		},
		{
			name:          "not_completed",
			rating:        4,
			order:         &domain.Order{ID: "order-1", Status: domain.StatusDispatched},
			expectedError: service.ErrNotCompleted,
		},
		{
			name:          "already_submitted",
			rating:        4,
			order:         &domain.Order{ID: "order-1", Status: domain.StatusCompleted, Feedback: &domain.Feedback{Rating: 5}},
			expectedError: service.ErrFeedbackExists,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, orders, _ := fulfillmentFixtures(t)
			ctx := context.Background()

			if testCase.order != nil {
				orders.On("GetOrder", ctx, "order-1").Return(testCase.order, nil).Once()
			}
			if testCase.expectedError == nil {
				orders.On("AttachFeedback", ctx, "order-1",
					domain.Feedback{Rating: testCase.rating, Comment: "tasty"}).Return(nil).Once()
			}

			err := svc.AttachFeedback(ctx, "order-1", testCase.rating, "tasty")
			if testCase.expectedError == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, testCase.expectedError)
			}
		})
	}
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc, orders, _ := fulfillmentFixtures(t)
	ctx := context.Background()

	orders.On("GetOrder", ctx, "missing").Return(nil, storage.ErrNotFound).Once()

	_, err := svc.UpdateStatus(ctx, "missing", domain.StatusAccepted)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
