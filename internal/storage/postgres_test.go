package storage

import (
	"context"
	"testing"
	"time"

	"hostel-eats/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock
}

func testOrder() *domain.Order {
	return &domain.Order{
		ID: "order-1",
		Customer: domain.Customer{
			Name:  "Asha",
			Phone: "9876543210",
			Room:  "203",
			Block: "B",
		},
		Items: []domain.OrderItem{
			{ItemID: 1, Name: "Maggi", UnitPrice: 40, UnitCost: 25, Quantity: 2},
			{ItemID: 2, Name: "Cold Coffee", UnitPrice: 60, UnitCost: 35, Quantity: 1},
		},
		TotalAmount:  140,
		PaymentMode:  domain.PaymentCOD,
		DeliveryCode: "4821",
		Status:       domain.StatusPending,
	}
}

func TestCreateOrderWithStock_Success(t *testing.T) {
	repo, mock := setupTestDB(t)
	order := testOrder()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE inventory_items").
		WithArgs(1, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE inventory_items").
		WithArgs(2, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
	mock.ExpectExec("INSERT INTO order_items").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO order_items").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	err := repo.CreateOrderWithStock(context.Background(), order)
	require.NoError(t, err)
	assert.False(t, order.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrderWithStock_InsufficientStock(t *testing.T) {
	repo, mock := setupTestDB(t)
	order := testOrder()

	mock.ExpectBegin()
	// Floor check fails: no row satisfies stock >= quantity.
	mock.ExpectExec("UPDATE inventory_items").
		WithArgs(1, 2).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.CreateOrderWithStock(context.Background(), order)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrderWithStock_DuplicateOrder(t *testing.T) {
	repo, mock := setupTestDB(t)
	order := testOrder()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE inventory_items").
		WithArgs(1, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE inventory_items").
		WithArgs(2, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectRollback()

	err := repo.CreateOrderWithStock(context.Background(), order)
	assert.ErrorIs(t, err, ErrOrderExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOrder_NotFound(t *testing.T) {
	repo, mock := setupTestDB(t)

	mock.ExpectQuery("SELECT id, customer_name").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetOrder(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetOrder_WithFeedback(t *testing.T) {
	repo, mock := setupTestDB(t)
	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"id", "customer_name", "phone", "room", "block", "requested_time", "notes",
		"total_amount", "payment_mode", "payment_ref", "delivery_code", "status",
		"archived", "rating", "feedback_comment", "feedback_at", "created_at",
	}).AddRow("order-1", "Asha", "9876543210", "203", "B", "", "",
		140, "COD", "", "4821", "COMPLETED", false, 5, "great", now, now)

	mock.ExpectQuery("SELECT id, customer_name").
		WithArgs("order-1").
		WillReturnRows(rows)
	mock.ExpectQuery("SELECT item_id, name").
		WithArgs("order-1").
		WillReturnRows(sqlmock.NewRows([]string{"item_id", "name", "unit_price", "unit_cost", "quantity"}).
			AddRow(1, "Maggi", 40, 25, 2))

	order, err := repo.GetOrder(context.Background(), "order-1")
	require.NoError(t, err)
	require.NotNil(t, order.Feedback)
	assert.Equal(t, 5, order.Feedback.Rating)
	assert.Len(t, order.Items, 1)
	assert.Equal(t, "4821", order.DeliveryCode)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo, mock := setupTestDB(t)

	mock.ExpectExec("UPDATE orders SET status").
		WithArgs(domain.StatusAccepted, "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), "missing", domain.StatusAccepted)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAttachFeedback_GuardBlocksSecondWrite(t *testing.T) {
	repo, mock := setupTestDB(t)

	// rating IS NULL guard fails, zero rows touched.
	mock.ExpectExec("UPDATE orders").
		WithArgs(4, "ok", "order-1", domain.StatusCompleted).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.AttachFeedback(context.Background(), "order-1", domain.Feedback{Rating: 4, Comment: "ok"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAdjustStock_Success(t *testing.T) {
	repo, mock := setupTestDB(t)

	mock.ExpectQuery("UPDATE inventory_items").
		WithArgs(1, int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"stock"}).AddRow(12))

	stock, err := repo.AdjustStock(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(12), stock)
}

func TestAdjustStock_FloorViolation(t *testing.T) {
	repo, mock := setupTestDB(t)

	mock.ExpectQuery("UPDATE inventory_items").
		WithArgs(1, int64(-50)).
		WillReturnRows(sqlmock.NewRows([]string{"stock"}))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	_, err := repo.AdjustStock(context.Background(), 1, -50)
	assert.ErrorIs(t, err, ErrInsufficientStock)
}

func TestAdjustStock_UnknownItem(t *testing.T) {
	repo, mock := setupTestDB(t)

	mock.ExpectQuery("UPDATE inventory_items").
		WithArgs(99, int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"stock"}))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	_, err := repo.AdjustStock(context.Background(), 99, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListOrders_PhoneFilter(t *testing.T) {
	repo, mock := setupTestDB(t)
	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"id", "customer_name", "phone", "room", "block", "requested_time", "notes",
		"total_amount", "payment_mode", "payment_ref", "delivery_code", "status",
		"archived", "created_at",
	}).AddRow("order-1", "Asha", "9876543210", "", "", "", "", 140, "COD", "", "4821", "PENDING", false, now)

	mock.ExpectQuery("SELECT id, customer_name").
		WithArgs("9876543210").
		WillReturnRows(rows)

	orders, err := repo.ListOrders(context.Background(), "9876543210", false)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "order-1", orders[0].ID)
}

func TestUpsertSubscription(t *testing.T) {
	repo, mock := setupTestDB(t)

	mock.ExpectQuery("INSERT INTO push_subscriptions").
		WithArgs("https://push.example/ep1", "p256dh-key", "auth-key", "9876543210").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	sub := &domain.PushSubscription{
		Endpoint: "https://push.example/ep1",
		UserID:   "9876543210",
	}
	sub.Keys.P256dh = "p256dh-key"
	sub.Keys.Auth = "auth-key"

	err := repo.UpsertSubscription(context.Background(), sub)
	require.NoError(t, err)
	assert.False(t, sub.CreatedAt.IsZero())
}

func TestSummary(t *testing.T) {
	repo, mock := setupTestDB(t)

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(total_amount\), 0\)`).
		WithArgs(domain.StatusCompleted).
		WillReturnRows(sqlmock.NewRows([]string{"sum", "count"}).AddRow(1400, 10))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(\(oi.unit_price - oi.unit_cost\)`).
		WithArgs(domain.StatusCompleted).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(420))

	summary, err := repo.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1400), summary.Revenue)
	assert.Equal(t, int64(420), summary.Profit)
	assert.Equal(t, 10, summary.CompletedOrders)
}

func TestUpdateSettings_BumpsVersion(t *testing.T) {
	repo, mock := setupTestDB(t)

	mock.ExpectQuery("UPDATE store_settings").
		WithArgs(domain.DeliveryLater, "Back at 6pm", false).
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(3))

	settings := &domain.StoreSettings{
		DeliveryMode: domain.DeliveryLater,
		LaterMessage: "Back at 6pm",
		CODEnabled:   false,
	}
	err := repo.UpdateSettings(context.Background(), settings)
	require.NoError(t, err)
	assert.Equal(t, 3, settings.Version)
}
