package qrcode

import (
	"encoding/json"
	"fmt"

	"mycomart/internal/domain/entity"
	"mycomart/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// PaymentQRData is the payload encoded into a payment QR so a shopper can
// scan instead of typing into the provider modal.
type PaymentQRData struct {
	OrderID  string  `json:"order_id"`
	Key      string  `json:"key"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Type     string  `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePaymentQR encodes a provider order as a PNG QR image.
func (s *qrcodeService) GeneratePaymentQR(order *entity.ProviderOrder) ([]byte, error) {
	data := PaymentQRData{
		OrderID:  order.OrderID,
		Key:      order.Key,
		Amount:   order.Amount,
		Currency: order.Currency,
		Type:     "payment",
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
