package phonepe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// PaymentState is the adapter's view of a transaction. StateUnknown covers
// network and parse failures and must never be treated as success.
type PaymentState string

const (
	StateSuccess PaymentState = "SUCCESS"
	StatePending PaymentState = "PENDING"
	StateFailed  PaymentState = "FAILED"
	StateUnknown PaymentState = "UNKNOWN"
)

// ErrGateway marks initiation failures: the payment was never started and
// callers must not treat it as an order failure.
var ErrGateway = errors.New("payment gateway error")

const requestTimeout = 10 * time.Second

type Client struct {
	codec   Codec
	baseURL string
	http    *http.Client
}

func NewClient(codec Codec, baseURL string) *Client {
	return &Client{
		codec:   codec,
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

type initiateResponse struct {
	Success bool `json:"success"`
	Data    struct {
		InstrumentResponse struct {
			RedirectInfo struct {
				URL string `json:"url"`
			} `json:"redirectInfo"`
		} `json:"instrumentResponse"`
	} `json:"data"`
}

type statusResponse struct {
	Code string `json:"code"`
	Data struct {
		TransactionID string `json:"transactionId"`
	} `json:"data"`
}

// StatusResult pairs the classified state with the gateway's own
// transaction id, which becomes the order's payment reference.
type StatusResult struct {
	State         PaymentState
	TransactionID string
}

// Initiate starts a hosted-checkout payment and returns the redirect URL.
// Amount is in rupees; the gateway wants paise.
func (c *Client) Initiate(ctx context.Context, amount int64, userID, orderID, origin string) (string, error) {
	encoded, xVerify, err := c.codec.BuildPayRequest(PayRequest{
		MerchantID:            c.codec.MerchantID,
		MerchantTransactionID: orderID,
		MerchantUserID:        userID,
		Amount:                amount * 100,
		RedirectURL:           origin + "/payment/return?orderId=" + orderID,
		RedirectMode:          "REDIRECT",
		CallbackURL:           origin + "/api/orders/payment/callback",
		PaymentInstrument:     PaymentInstrument{Type: "PAY_PAGE"},
	})
	if err != nil {
		return "", fmt.Errorf("%w: build payload: %v", ErrGateway, err)
	}

	body, _ := json.Marshal(map[string]string{"request": encoded})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+payPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGateway, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-VERIFY", xVerify)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGateway, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: status %d", ErrGateway, resp.StatusCode)
	}

	var out initiateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrGateway, err)
	}
	redirect := out.Data.InstrumentResponse.RedirectInfo.URL
	if !out.Success || redirect == "" {
		return "", fmt.Errorf("%w: no redirect url in response", ErrGateway)
	}
	return redirect, nil
}

// CheckStatus asks the gateway for the transaction state. Anything the
// adapter cannot positively classify comes back as StateUnknown.
func (c *Client) CheckStatus(ctx context.Context, orderID string) (StatusResult, error) {
	raw, err := c.RawStatus(ctx, orderID)
	if err != nil {
		return StatusResult{State: StateUnknown}, err
	}

	var out statusResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return StatusResult{State: StateUnknown}, err
	}

	result := StatusResult{State: StateUnknown, TransactionID: out.Data.TransactionID}
	switch out.Code {
	case "PAYMENT_SUCCESS":
		result.State = StateSuccess
	case "PAYMENT_PENDING", "PAYMENT_INITIATED":
		result.State = StatePending
	case "PAYMENT_ERROR", "PAYMENT_DECLINED", "TIMED_OUT":
		result.State = StateFailed
	}
	return result, nil
}

// RawStatus returns the gateway's status payload verbatim for the
// passthrough endpoint.
func (c *Client) RawStatus(ctx context.Context, orderID string) ([]byte, error) {
	path, xVerify := c.codec.StatusRequest(orderID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-VERIFY", xVerify)
	req.Header.Set("X-MERCHANT-ID", c.codec.MerchantID)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("gateway status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
