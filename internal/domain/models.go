package domain

import "time"

// Order is the immutable commit record. Prices are snapshotted at commit
// time; later catalog changes never touch a placed order.
type Order struct {
	ID            string      `json:"id"`
	Customer      Customer    `json:"customer"`
	Items         []OrderItem `json:"items"`
	TotalAmount   int64       `json:"total_amount"`
	PaymentMode   PaymentMode `json:"payment_mode"`
	PaymentRef    string      `json:"payment_ref,omitempty"`
	DeliveryCode  string      `json:"delivery_code,omitempty"`
	Status        OrderStatus `json:"status"`
	Archived      bool        `json:"archived"`
	Feedback      *Feedback   `json:"feedback,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}

// Customer is the contact snapshot captured with the order. Notes is an
// opaque blob; the engine never interprets it.
type Customer struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Room          string `json:"room"`
	Block         string `json:"block"`
	RequestedTime string `json:"requested_time,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

type OrderItem struct {
	ItemID    int    `json:"item_id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	UnitCost  int64  `json:"unit_cost"`
	Quantity  int    `json:"quantity"`
}

type Feedback struct {
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type PaymentMode string

const (
	PaymentOnline PaymentMode = "ONLINE"
	PaymentCOD    PaymentMode = "COD"
)

type InventoryItem struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Price     int64     `json:"price"`
	Cost      int64     `json:"cost"`
	Stock     int64     `json:"stock"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

// PushSubscription mirrors a browser push registration. Keys is the opaque
// key blob handed straight to the push transport.
type PushSubscription struct {
	Endpoint  string    `json:"endpoint"`
	Keys      Keys      `json:"keys"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type Keys struct {
	P256dh string `json:"p256dh"`
	Auth   string `json:"auth"`
}

// StoreSettings is the staff-controlled configuration record read at commit
// time. Version bumps on every write.
type StoreSettings struct {
	DeliveryMode string `json:"delivery_mode"`
	LaterMessage string `json:"later_message,omitempty"`
	CODEnabled   bool   `json:"cod_enabled"`
	Version      int    `json:"version"`
}

const (
	DeliveryNow   = "NOW"
	DeliveryLater = "LATER"
)

// Cart is what a customer submits; quantities only, prices come from the
// catalog at commit time.
type Cart struct {
	Items []CartLine `json:"items"`
}

type CartLine struct {
	ItemID   int `json:"item_id"`
	Quantity int `json:"quantity"`
}

// PendingCommit is the staged cart+customer record awaiting payment
// confirmation. It is not an Order and never appears in order listings.
type PendingCommit struct {
	OrderID  string      `json:"order_id"`
	Customer Customer    `json:"customer"`
	Items    []OrderItem `json:"items"`
	Total    int64       `json:"total"`
	StagedAt time.Time   `json:"staged_at"`
}

// OrderStatusMessage is the event written to Kafka when a customer-visible
// transition happens; the notifier worker consumes it.
type OrderStatusMessage struct {
	Type      string      `json:"type"`
	OrderID   string      `json:"order_id"`
	Phone     string      `json:"phone"`
	Status    OrderStatus `json:"status"`
	Total     int64       `json:"total"`
	Timestamp time.Time   `json:"timestamp"`
}

const StatusEventType = "order_status"
