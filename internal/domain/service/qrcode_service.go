package service

import "mycomart/internal/domain/entity"

// QRCodeService renders payment QR codes for the online checkout path so a
// shopper can scan instead of typing into the provider modal.
type QRCodeService interface {
	// GeneratePaymentQR encodes the provider order as a PNG QR image.
	GeneratePaymentQR(order *entity.ProviderOrder) ([]byte, error)
}
