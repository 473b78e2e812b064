package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(orderID string) ([]byte, error)
}

// TrackingQRGenerator encodes the customer-facing tracking link for an
// order, printable on the handoff slip.
type TrackingQRGenerator struct {
	BaseURL string
}

func (g TrackingQRGenerator) Generate(orderID string) ([]byte, error) {
	qrData := fmt.Sprintf("%s/track.html?order_id=%s", g.BaseURL, orderID)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
