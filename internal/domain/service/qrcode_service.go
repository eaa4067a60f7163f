package service

import (
	"github.com/google/uuid"
)

// QRCodeService generates and parses shop share codes.
type QRCodeService interface {
	// GenerateShopQR renders a PNG QR code pointing at a shop.
	GenerateShopQR(shopID uuid.UUID) ([]byte, error)

	// ParseShopQR extracts the shop id from scanned QR payload.
	ParseShopQR(qrData string) (uuid.UUID, error)
}
