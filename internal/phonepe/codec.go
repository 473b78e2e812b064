package phonepe

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

const (
	payPath    = "/pg/v1/pay"
	statusPath = "/pg/v1/status"
)

// PayRequest is the initiation payload sent to the gateway. Field order is
// fixed: the checksum is computed over the exact serialized bytes, so any
// reordering or whitespace change invalidates the signature.
type PayRequest struct {
	MerchantID            string            `json:"merchantId"`
	MerchantTransactionID string            `json:"merchantTransactionId"`
	MerchantUserID        string            `json:"merchantUserId"`
	Amount                int64             `json:"amount"`
	RedirectURL           string            `json:"redirectUrl"`
	RedirectMode          string            `json:"redirectMode"`
	CallbackURL           string            `json:"callbackUrl"`
	PaymentInstrument     PaymentInstrument `json:"paymentInstrument"`
}

type PaymentInstrument struct {
	Type string `json:"type"`
}

// Codec builds gateway payloads and their X-VERIFY signatures.
type Codec struct {
	MerchantID string
	SaltKey    string
	SaltIndex  string
}

// BuildPayRequest returns the base64 payload and its signature for the
// initiation call.
func (c Codec) BuildPayRequest(req PayRequest) (encoded, xVerify string, err error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", "", err
	}
	encoded = base64.StdEncoding.EncodeToString(body)
	return encoded, c.sign(encoded + payPath), nil
}

// StatusRequest returns the status-check path for orderID and the signature
// computed over it.
func (c Codec) StatusRequest(orderID string) (path, xVerify string) {
	path = fmt.Sprintf("%s/%s/%s", statusPath, c.MerchantID, orderID)
	return path, c.sign(path)
}

// VerifyCallback checks the X-VERIFY header the gateway sends with its
// server-to-server callback. The callback body alone is never trusted.
func (c Codec) VerifyCallback(encodedBody, xVerify string) bool {
	return c.sign(encodedBody) == xVerify
}

func (c Codec) sign(material string) string {
	sum := sha256.Sum256([]byte(material + c.SaltKey))
	return hex.EncodeToString(sum[:]) + "###" + c.SaltIndex
}
