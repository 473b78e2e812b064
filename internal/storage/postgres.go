package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hostel-eats/internal/domain"

	"github.com/lib/pq"
)

var (
	// ErrInsufficientStock means a decrement would drive stock below zero.
	// Nothing is written when it is returned.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrOrderExists is the idempotency backstop: the order id is already
	// committed.
	ErrOrderExists = errors.New("order already exists")
	ErrNotFound    = errors.New("not found")
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS inventory_items (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			price BIGINT NOT NULL,
			cost BIGINT,
			stock BIGINT NOT NULL DEFAULT 0 CHECK (stock >= 0),
			category TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id TEXT PRIMARY KEY,
			customer_name TEXT NOT NULL,
			phone TEXT NOT NULL,
			room TEXT,
			block TEXT,
			requested_time TEXT,
			notes TEXT,
			total_amount BIGINT NOT NULL,
			payment_mode TEXT NOT NULL,
			payment_ref TEXT,
			delivery_code TEXT,
			status TEXT NOT NULL,
			archived BOOLEAN NOT NULL DEFAULT FALSE,
			rating INT,
			feedback_comment TEXT,
			feedback_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			item_id INT NOT NULL,
			name TEXT NOT NULL,
			unit_price BIGINT NOT NULL,
			unit_cost BIGINT NOT NULL DEFAULT 0,
			quantity INT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS push_subscriptions (
			endpoint TEXT PRIMARY KEY,
			p256dh TEXT NOT NULL,
			auth TEXT NOT NULL,
			user_id TEXT NOT NULL DEFAULT 'unknown',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS store_settings (
			id INT PRIMARY KEY CHECK (id = 1),
			delivery_mode TEXT NOT NULL DEFAULT 'NOW',
			later_message TEXT NOT NULL DEFAULT '',
			cod_enabled BOOLEAN NOT NULL DEFAULT TRUE,
			version INT NOT NULL DEFAULT 1
		)`,
		`INSERT INTO store_settings (id) VALUES (1) ON CONFLICT (id) DO NOTHING`,
		`CREATE INDEX IF NOT EXISTS idx_orders_phone ON orders (phone)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items (order_id)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// CreateOrderWithStock commits the order and decrements stock in one
// transaction. Either every line item's stock is taken and the order row
// plus its items land, or nothing does. Row locks on inventory_items
// serialize concurrent decrements of the same item.
func (r *PostgresRepository) CreateOrderWithStock(ctx context.Context, order *domain.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, item := range order.Items {
		res, err := tx.ExecContext(ctx, `
			UPDATE inventory_items
			SET stock = stock - $2
			WHERE id = $1 AND stock >= $2
		`, item.ItemID, item.Quantity)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return fmt.Errorf("item %d: %w", item.ItemID, ErrInsufficientStock)
		}
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (id, customer_name, phone, room, block, requested_time, notes,
			total_amount, payment_mode, payment_ref, delivery_code, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at
	`, order.ID, order.Customer.Name, order.Customer.Phone, order.Customer.Room,
		order.Customer.Block, order.Customer.RequestedTime, order.Customer.Notes,
		order.TotalAmount, order.PaymentMode, order.PaymentRef, order.DeliveryCode,
		order.Status).Scan(&order.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrOrderExists
		}
		return err
	}

	for _, item := range order.Items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, item_id, name, unit_price, unit_cost, quantity)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, order.ID, item.ItemID, item.Name, item.UnitPrice, item.UnitCost, item.Quantity); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func (r *PostgresRepository) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	var (
		order   domain.Order
		rating  sql.NullInt64
		comment sql.NullString
		fbAt    sql.NullTime
	)
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, customer_name, phone, COALESCE(room, ''), COALESCE(block, ''),
			COALESCE(requested_time, ''), COALESCE(notes, ''), total_amount,
			payment_mode, COALESCE(payment_ref, ''), COALESCE(delivery_code, ''),
			status, archived, rating, feedback_comment, feedback_at, created_at
		FROM orders WHERE id = $1
	`, id).Scan(&order.ID, &order.Customer.Name, &order.Customer.Phone,
		&order.Customer.Room, &order.Customer.Block, &order.Customer.RequestedTime,
		&order.Customer.Notes, &order.TotalAmount, &order.PaymentMode,
		&order.PaymentRef, &order.DeliveryCode, &order.Status, &order.Archived,
		&rating, &comment, &fbAt, &order.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if rating.Valid {
		order.Feedback = &domain.Feedback{
			Rating:      int(rating.Int64),
			Comment:     comment.String,
			SubmittedAt: fbAt.Time,
		}
	}

	items, err := r.orderItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return &order, nil
}

func (r *PostgresRepository) orderItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT item_id, name, unit_price, unit_cost, quantity
		FROM order_items WHERE order_id = $1 ORDER BY id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ItemID, &item.Name, &item.UnitPrice, &item.UnitCost, &item.Quantity); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// ListOrders returns orders for a phone number, or every order when phone
// is empty. Archived orders are excluded unless asked for.
func (r *PostgresRepository) ListOrders(ctx context.Context, phone string, includeArchived bool) ([]domain.Order, error) {
	query := `
		SELECT id, customer_name, phone, COALESCE(room, ''), COALESCE(block, ''),
			COALESCE(requested_time, ''), COALESCE(notes, ''), total_amount,
			payment_mode, COALESCE(payment_ref, ''), COALESCE(delivery_code, ''),
			status, archived, created_at
		FROM orders WHERE 1=1`
	args := []interface{}{}
	if phone != "" {
		args = append(args, phone)
		query += fmt.Sprintf(" AND phone = $%d", len(args))
	}
	if !includeArchived {
		query += " AND archived = FALSE"
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.Customer.Name, &order.Customer.Phone,
			&order.Customer.Room, &order.Customer.Block, &order.Customer.RequestedTime,
			&order.Customer.Notes, &order.TotalAmount, &order.PaymentMode,
			&order.PaymentRef, &order.DeliveryCode, &order.Status, &order.Archived,
			&order.CreatedAt); err != nil {
			continue
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	res, err := r.DB.ExecContext(ctx, "UPDATE orders SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return err
	}
	return rowsOrNotFound(res)
}

func (r *PostgresRepository) SetArchived(ctx context.Context, id string, archived bool) error {
	res, err := r.DB.ExecContext(ctx, "UPDATE orders SET archived = $1 WHERE id = $2", archived, id)
	if err != nil {
		return err
	}
	return rowsOrNotFound(res)
}

func (r *PostgresRepository) DeleteOrder(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM orders WHERE id = $1", id)
	if err != nil {
		return err
	}
	return rowsOrNotFound(res)
}

// AttachFeedback records feedback exactly once. The WHERE guard keeps a
// second submission or a non-completed order from writing anything.
func (r *PostgresRepository) AttachFeedback(ctx context.Context, id string, feedback domain.Feedback) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE orders
		SET rating = $1, feedback_comment = $2, feedback_at = NOW()
		WHERE id = $3 AND status = $4 AND rating IS NULL
	`, feedback.Rating, feedback.Comment, id, domain.StatusCompleted)
	if err != nil {
		return err
	}
	return rowsOrNotFound(res)
}

func rowsOrNotFound(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// AdjustStock applies a floor-checked delta and returns the new stock.
// Decrements that would go negative fail with ErrInsufficientStock and
// leave the row untouched.
func (r *PostgresRepository) AdjustStock(ctx context.Context, itemID int, delta int64) (int64, error) {
	var stock int64
	err := r.DB.QueryRowContext(ctx, `
		UPDATE inventory_items
		SET stock = stock + $2
		WHERE id = $1 AND stock + $2 >= 0
		RETURNING stock
	`, itemID, delta).Scan(&stock)
	if err == sql.ErrNoRows {
		var exists bool
		if checkErr := r.DB.QueryRowContext(ctx,
			"SELECT EXISTS(SELECT 1 FROM inventory_items WHERE id = $1)", itemID).Scan(&exists); checkErr != nil {
			return 0, checkErr
		}
		if !exists {
			return 0, ErrNotFound
		}
		return 0, ErrInsufficientStock
	}
	if err != nil {
		return 0, err
	}
	return stock, nil
}

func (r *PostgresRepository) CreateItem(ctx context.Context, item *domain.InventoryItem) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO inventory_items (name, price, cost, stock, category)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, item.Name, item.Price, item.Cost, item.Stock, item.Category).
		Scan(&item.ID, &item.CreatedAt)
}

func (r *PostgresRepository) ListItems(ctx context.Context) ([]domain.InventoryItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, price, COALESCE(cost, 0), stock, COALESCE(category, ''), created_at
		FROM inventory_items ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.InventoryItem
	for rows.Next() {
		var item domain.InventoryItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Cost,
			&item.Stock, &item.Category, &item.CreatedAt); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// GetItems loads the catalog rows a cart references, keyed by id.
func (r *PostgresRepository) GetItems(ctx context.Context, ids []int) (map[int]domain.InventoryItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, price, COALESCE(cost, 0), stock, COALESCE(category, ''), created_at
		FROM inventory_items WHERE id = ANY($1)
	`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[int]domain.InventoryItem, len(ids))
	for rows.Next() {
		var item domain.InventoryItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Cost,
			&item.Stock, &item.Category, &item.CreatedAt); err != nil {
			continue
		}
		items[item.ID] = item
	}
	return items, nil
}

func (r *PostgresRepository) UpsertSubscription(ctx context.Context, sub *domain.PushSubscription) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO push_subscriptions (endpoint, p256dh, auth, user_id)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (endpoint) DO UPDATE
		SET p256dh = EXCLUDED.p256dh, auth = EXCLUDED.auth, user_id = EXCLUDED.user_id
		RETURNING created_at
	`, sub.Endpoint, sub.Keys.P256dh, sub.Keys.Auth, sub.UserID).Scan(&sub.CreatedAt)
}

func (r *PostgresRepository) ListSubscriptions(ctx context.Context) ([]domain.PushSubscription, error) {
	return r.querySubscriptions(ctx, `
		SELECT endpoint, p256dh, auth, user_id, created_at FROM push_subscriptions
	`)
}

func (r *PostgresRepository) ListSubscriptionsByUser(ctx context.Context, userID string) ([]domain.PushSubscription, error) {
	return r.querySubscriptions(ctx, `
		SELECT endpoint, p256dh, auth, user_id, created_at
		FROM push_subscriptions WHERE user_id = $1
	`, userID)
}

func (r *PostgresRepository) querySubscriptions(ctx context.Context, query string, args ...interface{}) ([]domain.PushSubscription, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []domain.PushSubscription
	for rows.Next() {
		var sub domain.PushSubscription
		if err := rows.Scan(&sub.Endpoint, &sub.Keys.P256dh, &sub.Keys.Auth,
			&sub.UserID, &sub.CreatedAt); err != nil {
			continue
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

func (r *PostgresRepository) DeleteSubscription(ctx context.Context, endpoint string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM push_subscriptions WHERE endpoint = $1", endpoint)
	return err
}

func (r *PostgresRepository) GetSettings(ctx context.Context) (*domain.StoreSettings, error) {
	var settings domain.StoreSettings
	err := r.DB.QueryRowContext(ctx, `
		SELECT delivery_mode, later_message, cod_enabled, version
		FROM store_settings WHERE id = 1
	`).Scan(&settings.DeliveryMode, &settings.LaterMessage, &settings.CODEnabled, &settings.Version)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *PostgresRepository) UpdateSettings(ctx context.Context, settings *domain.StoreSettings) error {
	return r.DB.QueryRowContext(ctx, `
		UPDATE store_settings
		SET delivery_mode = $1, later_message = $2, cod_enabled = $3, version = version + 1
		WHERE id = 1
		RETURNING version
	`, settings.DeliveryMode, settings.LaterMessage, settings.CODEnabled).Scan(&settings.Version)
}

// RevenueSummary aggregates completed orders, archived included.
type RevenueSummary struct {
	Revenue         int64 `json:"revenue"`
	Profit          int64 `json:"profit"`
	CompletedOrders int   `json:"completed_orders"`
}

func (r *PostgresRepository) Summary(ctx context.Context) (*RevenueSummary, error) {
	var summary RevenueSummary
	err := r.DB.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(total_amount), 0), COUNT(*)
		FROM orders WHERE status = $1
	`, domain.StatusCompleted).Scan(&summary.Revenue, &summary.CompletedOrders)
	if err != nil {
		return nil, err
	}

	err = r.DB.QueryRowContext(ctx, `
		SELECT COALESCE(SUM((oi.unit_price - oi.unit_cost) * oi.quantity), 0)
		FROM order_items oi
		JOIN orders o ON oi.order_id = o.id
		WHERE o.status = $1
	`, domain.StatusCompleted).Scan(&summary.Profit)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}
