package phonepe

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitiate_Success(t *testing.T) {
	codec := testCodec()

	var gotVerify string
	var gotRequest string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pg/v1/pay", r.URL.Path)
		gotVerify = r.Header.Get("X-VERIFY")

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		gotRequest = body["request"]

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"instrumentResponse": map[string]interface{}{
					"redirectInfo": map[string]string{"url": "https://pay.example/checkout"},
				},
			},
		})
	}))
	defer server.Close()

	client := NewClient(codec, server.URL)
	redirect, err := client.Initiate(context.Background(), 125, "9876543210", "order-1", "http://localhost")
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/checkout", redirect)

	// The signature must match the payload that was actually sent.
	_, expectVerify, err := codec.BuildPayRequest(decodePayRequest(t, gotRequest))
	require.NoError(t, err)
	assert.Equal(t, expectVerify, gotVerify)

	decoded := decodePayRequest(t, gotRequest)
	assert.Equal(t, int64(12500), decoded.Amount, "amount should be converted to paise")
	assert.Equal(t, "order-1", decoded.MerchantTransactionID)
}

func decodePayRequest(t *testing.T, encoded string) PayRequest {
	t.Helper()
	body, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	var req PayRequest
	require.NoError(t, json.Unmarshal(body, &req))
	return req
}

func TestInitiate_GatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(testCodec(), server.URL)
	_, err := client.Initiate(context.Background(), 100, "u", "order-1", "http://localhost")
	assert.ErrorIs(t, err, ErrGateway)
}

func TestInitiate_NoRedirectURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": map[string]interface{}{}})
	}))
	defer server.Close()

	client := NewClient(testCodec(), server.URL)
	_, err := client.Initiate(context.Background(), 100, "u", "order-1", "http://localhost")
	assert.ErrorIs(t, err, ErrGateway)
}

func TestCheckStatus_CodeMapping(t *testing.T) {
	tests := []struct {
		code     string
		expected PaymentState
	}{
		{"PAYMENT_SUCCESS", StateSuccess},
		{"PAYMENT_PENDING", StatePending},
		{"PAYMENT_INITIATED", StatePending},
		{"PAYMENT_ERROR", StateFailed},
		{"PAYMENT_DECLINED", StateFailed},
		{"TIMED_OUT", StateFailed},
		{"SOMETHING_NEW", StateUnknown},
	}

	for _, testCase := range tests {
		t.Run(testCase.code, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]string{"code": testCase.code})
			}))
			defer server.Close()

			client := NewClient(testCodec(), server.URL)
			result, err := client.CheckStatus(context.Background(), "order-1")
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, result.State)
		})
	}
}

func TestCheckStatus_CapturesTransactionID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"code": "PAYMENT_SUCCESS",
			"data": map[string]string{"transactionId": "T2409171234"},
		})
	}))
	defer server.Close()

	client := NewClient(testCodec(), server.URL)
	result, err := client.CheckStatus(context.Background(), "order-1")
	require.NoError(t, err)
	assert.Equal(t, StateSuccess, result.State)
	assert.Equal(t, "T2409171234", result.TransactionID)
}

func TestCheckStatus_NetworkFailureIsUnknown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(testCodec(), server.URL)
	result, err := client.CheckStatus(context.Background(), "order-1")
	assert.Error(t, err)
	assert.Equal(t, StateUnknown, result.State)
}

func TestRawStatus_Headers(t *testing.T) {
	codec := testCodec()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pg/v1/status/MERCHANTTEST/order-7", r.URL.Path)
		assert.Equal(t, "MERCHANTTEST", r.Header.Get("X-MERCHANT-ID"))
		_, expectVerify := codec.StatusRequest("order-7")
		assert.Equal(t, expectVerify, r.Header.Get("X-VERIFY"))
		w.Write([]byte(`{"code":"PAYMENT_PENDING"}`))
	}))
	defer server.Close()

	client := NewClient(codec, server.URL)
	raw, err := client.RawStatus(context.Background(), "order-7")
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":"PAYMENT_PENDING"}`, string(raw))
}
