package tests

import (
	"context"
	"errors"
	"testing"

	"hostel-eats/internal/domain"
	"hostel-eats/internal/mocks"
	"hostel-eats/internal/notifier"
	"hostel-eats/internal/service"

	"github.com/stretchr/testify/mock"
)

func TestConsumer_ProcessStatus(t *testing.T) {
	tests := []struct {
		name         string
		inputMessage domain.OrderStatusMessage
		setupMock    func(*mocks.NotificationServiceInterface)
	}{
		{
			name: "dispatched",
			inputMessage: domain.OrderStatusMessage{
				Type:    domain.StatusEventType,
				OrderID: "order-1",
				Phone:   "9876543210",
				Status:  domain.StatusDispatched,
			},
			setupMock: func(notify *mocks.NotificationServiceInterface) {
				notify.On("NotifyUser", mock.Anything, "9876543210",
					"Order on the way", mock.Anything).
					Return(service.NotifyResult{Attempted: 1, Delivered: 1}, nil)
			},
		},
		{
			name: "completed",
			inputMessage: domain.OrderStatusMessage{
				Type:    domain.StatusEventType,
				OrderID: "order-1",
				Phone:   "9876543210",
				Status:  domain.StatusCompleted,
			},
			setupMock: func(notify *mocks.NotificationServiceInterface) {
				notify.On("NotifyUser", mock.Anything, "9876543210",
					"Order delivered", mock.Anything).
					Return(service.NotifyResult{Attempted: 1, Delivered: 1}, nil)
			},
		},
		{
			name: "notify error is swallowed",
			inputMessage: domain.OrderStatusMessage{
				Type:    domain.StatusEventType,
				OrderID: "order-1",
				Phone:   "9876543210",
				Status:  domain.StatusDispatched,
			},
			setupMock: func(notify *mocks.NotificationServiceInterface) {
				notify.On("NotifyUser", mock.Anything, "9876543210",
					mock.Anything, mock.Anything).
					Return(service.NotifyResult{}, errors.New("push service down"))
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			notify := mocks.NewNotificationServiceInterface(t)
			testCase.setupMock(notify)

			consumer := &notifier.Consumer{Notify: notify}
			consumer.ProcessStatus(context.Background(), testCase.inputMessage)
			notify.AssertExpectations(t)
		})
	}
}

func TestConsumer_SkipsMessageWithoutPhone(t *testing.T) {
	notify := mocks.NewNotificationServiceInterface(t)
	consumer := &notifier.Consumer{Notify: notify}

	consumer.ProcessStatus(context.Background(), domain.OrderStatusMessage{
		Type:    domain.StatusEventType,
		OrderID: "order-1",
		Status:  domain.StatusDispatched,
	})

	notify.AssertNotCalled(t, "NotifyUser")
}
