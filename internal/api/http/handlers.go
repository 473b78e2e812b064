package httpapi

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"hostel-eats/internal/domain"
	"hostel-eats/internal/phonepe"
	"hostel-eats/internal/service"
	"hostel-eats/internal/storage"

	"github.com/gorilla/mux"
)

var orderIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

type Handler struct {
	Checkout      service.CheckoutServiceInterface
	Fulfillment   service.FulfillmentServiceInterface
	Orders        service.OrderQueryServiceInterface
	Store         service.StoreServiceInterface
	Notifications service.NotificationServiceInterface
	Gateway       service.PaymentGateway
	Codec         phonepe.Codec
	VAPIDPublic   string
}

func NewHandler(
	checkout service.CheckoutServiceInterface,
	fulfillment service.FulfillmentServiceInterface,
	orders service.OrderQueryServiceInterface,
	store service.StoreServiceInterface,
	notifications service.NotificationServiceInterface,
	gateway service.PaymentGateway,
	codec phonepe.Codec,
	vapidPublic string,
) *Handler {
	return &Handler{
		Checkout:      checkout,
		Fulfillment:   fulfillment,
		Orders:        orders,
		Store:         store,
		Notifications: notifications,
		Gateway:       gateway,
		Codec:         codec,
		VAPIDPublic:   vapidPublic,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/orders/cod", h.commitCOD).Methods("POST")
	r.HandleFunc("/api/orders/payment/initiate", h.initiatePayment).Methods("POST")
	r.HandleFunc("/api/orders/payment/reconcile/{orderId}", h.reconcilePayment).Methods("POST")
	r.HandleFunc("/api/orders/payment/status/{orderId}", h.paymentStatus).Methods("GET")
	r.HandleFunc("/api/orders/payment/callback", h.paymentCallback).Methods("POST")

	r.HandleFunc("/api/orders", h.listOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", h.updateOrderStatus).Methods("PATCH")
	r.HandleFunc("/api/orders/{id}/complete", h.completeOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}/archive", h.archiveOrder).Methods("PATCH")
	r.HandleFunc("/api/orders/{id}", h.deleteOrder).Methods("DELETE")
	r.HandleFunc("/api/orders/{id}/feedback", h.submitFeedback).Methods("POST")

	r.HandleFunc("/api/items", h.createItem).Methods("POST")
	r.HandleFunc("/api/items", h.listItems).Methods("GET")
	r.HandleFunc("/api/items/{id}/stock", h.adjustStock).Methods("POST")

	r.HandleFunc("/api/settings", h.getSettings).Methods("GET")
	r.HandleFunc("/api/settings", h.updateSettings).Methods("PUT")

	r.HandleFunc("/api/analytics/summary", h.analyticsSummary).Methods("GET")

	r.HandleFunc("/api/notifications/subscribe", h.subscribe).Methods("POST")
	r.HandleFunc("/api/notifications/broadcast", h.broadcast).Methods("POST")
	r.HandleFunc("/api/notifications/notify-user", h.notifyUser).Methods("POST")
	r.HandleFunc("/api/notifications/vapid-public-key", h.vapidPublicKey).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "hostel-eats",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

type checkoutRequest struct {
	Cart     domain.Cart     `json:"cart"`
	Customer domain.Customer `json:"customer"`
}

func (h *Handler) commitCOD(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	order, err := h.Checkout.CommitCOD(r.Context(), req.Cart, req.Customer)
	if err != nil {
		http.Error(w, err.Error(), checkoutErrStatus(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(order)
}

type initiateRequest struct {
	Amount   int64           `json:"amount"`
	UserID   string          `json:"userId"`
	OrderID  string          `json:"orderId"`
	Cart     domain.Cart     `json:"cart"`
	Customer domain.Customer `json:"customer"`
}

func (h *Handler) initiatePayment(w http.ResponseWriter, r *http.Request) {
	var req initiateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Amount < 1 {
		http.Error(w, "amount must be at least 1", http.StatusBadRequest)
		return
	}
	if len(req.UserID) > 100 {
		http.Error(w, "userId too long", http.StatusBadRequest)
		return
	}
	if req.OrderID != "" && !orderIDPattern.MatchString(req.OrderID) {
		http.Error(w, "orderId may only contain letters, digits, '_' and '-'", http.StatusBadRequest)
		return
	}
	if req.UserID != "" && req.Customer.Phone == "" {
		req.Customer.Phone = req.UserID
	}

	origin := r.Header.Get("Origin")
	redirect, orderID, err := h.Checkout.StartOnlinePayment(r.Context(), req.Cart, req.Customer, req.OrderID, origin)
	if err != nil {
		http.Error(w, err.Error(), checkoutErrStatus(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"redirectUrl": redirect,
		"orderId":     orderID,
	})
}

func (h *Handler) reconcilePayment(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]
	if !orderIDPattern.MatchString(orderID) {
		http.Error(w, "invalid order id", http.StatusBadRequest)
		return
	}
	order, err := h.Checkout.ReconcileOnline(r.Context(), orderID)
	if errors.Is(err, service.ErrPaymentUnverified) {
		// Nothing committed yet; the staged record survives for a retry.
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]string{"status": "pending"})
		return
	}
	if err != nil {
		http.Error(w, err.Error(), reconcileErrStatus(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

func (h *Handler) paymentStatus(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]
	if !orderIDPattern.MatchString(orderID) {
		http.Error(w, "invalid order id", http.StatusBadRequest)
		return
	}
	raw, err := h.Gateway.RawStatus(r.Context(), orderID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(raw)
}

// paymentCallback handles the gateway's server-to-server notification. The
// body signature is checked before anything is trusted; a SUCCESS callback
// triggers the same reconcile path the browser return uses.
func (h *Handler) paymentCallback(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Response == "" {
		http.Error(w, "invalid callback body", http.StatusBadRequest)
		return
	}
	if !h.Codec.VerifyCallback(body.Response, r.Header.Get("X-VERIFY")) {
		http.Error(w, "signature mismatch", http.StatusUnauthorized)
		return
	}

	decoded, err := base64.StdEncoding.DecodeString(body.Response)
	if err != nil {
		http.Error(w, "invalid callback payload", http.StatusBadRequest)
		return
	}
	var payload struct {
		Code string `json:"code"`
		Data struct {
			MerchantTransactionID string `json:"merchantTransactionId"`
		} `json:"data"`
	}
	if err := json.Unmarshal(decoded, &payload); err != nil || payload.Data.MerchantTransactionID == "" {
		http.Error(w, "invalid callback payload", http.StatusBadRequest)
		return
	}

	if payload.Code == "PAYMENT_SUCCESS" {
		if _, err := h.Checkout.ReconcileOnline(r.Context(), payload.Data.MerchantTransactionID); err != nil {
			log.Printf("WARNING: callback reconcile failed for %s: %v", payload.Data.MerchantTransactionID, err)
		}
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	phone := r.URL.Query().Get("phone")
	includeArchived := r.URL.Query().Get("include_archived") == "true"
	orders, err := h.Orders.List(r.Context(), phone, includeArchived)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	qrCode, err := h.Orders.QRCode(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status domain.OrderStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	order, err := h.Fulfillment.UpdateStatus(r.Context(), mux.Vars(r)["id"], req.Status)
	if err != nil {
		http.Error(w, err.Error(), fulfillmentErrStatus(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

func (h *Handler) completeOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code      string `json:"code"`
		Confirmed bool   `json:"confirmed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	order, err := h.Fulfillment.Complete(r.Context(), mux.Vars(r)["id"], req.Code, req.Confirmed)
	if err != nil {
		http.Error(w, err.Error(), fulfillmentErrStatus(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

func (h *Handler) archiveOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Archived bool `json:"archived"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Fulfillment.Archive(r.Context(), mux.Vars(r)["id"], req.Archived); err != nil {
		http.Error(w, err.Error(), fulfillmentErrStatus(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	confirmed := r.URL.Query().Get("confirm") == "true"
	if err := h.Fulfillment.Delete(r.Context(), mux.Vars(r)["id"], confirmed); err != nil {
		http.Error(w, err.Error(), fulfillmentErrStatus(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) submitFeedback(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Fulfillment.AttachFeedback(r.Context(), mux.Vars(r)["id"], req.Rating, req.Comment); err != nil {
		http.Error(w, err.Error(), fulfillmentErrStatus(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	var item domain.InventoryItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Store.CreateItem(r.Context(), &item); err != nil {
		if errors.Is(err, service.ErrInvalidItem) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(item)
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Store.ListItems(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

func (h *Handler) adjustStock(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid item id", http.StatusBadRequest)
		return
	}
	var req struct {
		Delta int64 `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	stock, err := h.Store.AdjustStock(r.Context(), id, req.Delta)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			http.Error(w, "Item not found", http.StatusNotFound)
		case errors.Is(err, storage.ErrInsufficientStock):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int64{"stock": stock})
}

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Store.GetSettings(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(settings)
}

func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	var settings domain.StoreSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Store.UpdateSettings(r.Context(), &settings); err != nil {
		if errors.Is(err, service.ErrInvalidDeliveryMode) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(settings)
}

func (h *Handler) analyticsSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Store.Summary(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}

func (h *Handler) subscribe(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Subscription domain.PushSubscription `json:"subscription"`
		UserID       string                  `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.UserID != "" {
		req.Subscription.UserID = req.UserID
	}
	if err := h.Notifications.Register(r.Context(), req.Subscription); err != nil {
		if errors.Is(err, service.ErrMissingEndpoint) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

type notifyRequest struct {
	UserID  string `json:"userId"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type notifyResponse struct {
	Success   bool `json:"success"`
	Attempted int  `json:"attempted"`
	Delivered int  `json:"delivered"`
	Pruned    int  `json:"pruned"`
}

func (r notifyRequest) validate() string {
	if r.Title == "" || len(r.Title) > 50 {
		return "title is required and must be at most 50 characters"
	}
	if r.Message == "" || len(r.Message) > 200 {
		return "message is required and must be at most 200 characters"
	}
	return ""
}

func (h *Handler) broadcast(w http.ResponseWriter, r *http.Request) {
	var req notifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if msg := req.validate(); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	result, err := h.Notifications.Broadcast(r.Context(), req.Title, req.Message)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(notifyResponse{
		Success:   true,
		Attempted: result.Attempted,
		Delivered: result.Delivered,
		Pruned:    result.Pruned,
	})
}

func (h *Handler) notifyUser(w http.ResponseWriter, r *http.Request) {
	var req notifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.UserID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}
	if msg := req.validate(); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	result, err := h.Notifications.NotifyUser(r.Context(), req.UserID, req.Title, req.Message)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if result.Attempted == 0 {
		json.NewEncoder(w).Encode(map[string]string{"message": "no active subscriptions"})
		return
	}
	json.NewEncoder(w).Encode(notifyResponse{
		Success:   true,
		Attempted: result.Attempted,
		Delivered: result.Delivered,
		Pruned:    result.Pruned,
	})
}

func (h *Handler) vapidPublicKey(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"publicKey": h.VAPIDPublic})
}

func checkoutErrStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrCODDisabled),
		errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrUnknownItem),
		errors.Is(err, service.ErrBadQuantity):
		return http.StatusBadRequest
	case errors.Is(err, storage.ErrInsufficientStock):
		return http.StatusConflict
	case errors.Is(err, phonepe.ErrGateway):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func reconcileErrStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrPaymentRejected):
		return http.StatusPaymentRequired
	case errors.Is(err, service.ErrNoPendingCommit):
		return http.StatusNotFound
	case errors.Is(err, storage.ErrInsufficientStock):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func fulfillmentErrStatus(err error) int {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrInvalidRating),
		errors.Is(err, service.ErrNotCompleted):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidDeliveryCode),
		errors.Is(err, service.ErrConfirmationRequired):
		return http.StatusForbidden
	case errors.Is(err, service.ErrFeedbackExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
