package qrcode

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"

	"pricemap/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	shopCodeType     = "shop"
	defaultSize      = 256
	shopLinkSegments = "shops"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// ShopCodeData is the JSON payload encoded in a shop QR code.
type ShopCodeData struct {
	ShopID string `json:"shop_id"`
	Type   string `json:"type"`
	URL    string `json:"url,omitempty"`
}

// NewQRCodeService creates a new QR code service instance. When baseURL is set
// the payload also carries a deep link of the form <baseURL>/shops/<id>.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(errorCorrectionLevel),
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateShopQR renders the shop payload as a PNG.
func (s *qrcodeService) GenerateShopQR(shopID uuid.UUID) ([]byte, error) {
	if shopID == uuid.Nil {
		return nil, errors.New("shop id is required")
	}

	data := ShopCodeData{
		ShopID: shopID.String(),
		Type:   shopCodeType,
	}
	if s.baseURL != "" {
		data.URL = s.baseURL + "/" + shopLinkSegments + "/" + data.ShopID
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	pngBytes, err := qrcode.Encode(string(jsonData), s.errorCorrectionLevel, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	return pngBytes, nil
}

// ParseShopQR accepts either the JSON payload or a bare shop deep link.
func (s *qrcodeService) ParseShopQR(qrData string) (uuid.UUID, error) {
	qrData = strings.TrimSpace(qrData)
	if strings.HasPrefix(qrData, "{") {
		var data ShopCodeData
		if err := json.Unmarshal([]byte(qrData), &data); err != nil {
			return uuid.Nil, errors.Wrap(err, "failed to unmarshal QR code data")
		}
		if data.Type != shopCodeType {
			return uuid.Nil, errors.Errorf("invalid QR code type: %s", data.Type)
		}

		return parseShopID(data.ShopID)
	}

	link, err := url.Parse(qrData)
	if err != nil || link.Path == "" {
		return uuid.Nil, errors.New("unrecognised QR code payload")
	}
	dir, id := path.Split(strings.TrimRight(link.Path, "/"))
	if path.Base(dir) != shopLinkSegments {
		return uuid.Nil, errors.Errorf("QR code link does not point at a shop: %s", link.Path)
	}

	return parseShopID(id)
}

func parseShopID(raw string) (uuid.UUID, error) {
	shopID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse shop ID")
	}

	return shopID, nil
}
