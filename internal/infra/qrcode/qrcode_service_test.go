package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoveryLevel(t *testing.T) {
	tests := []struct {
		level string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"m", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, recoveryLevel(tt.level))
		})
	}
}

func TestQRCodeService_GenerateShopQR(t *testing.T) {
	for _, size := range []int{0, 128, 512} {
		svc := NewQRCodeService(size, "M", "https://pricemap.example")

		qrBytes, err := svc.GenerateShopQR(uuid.New())
		require.NoError(t, err)
		require.Greater(t, len(qrBytes), 4)

		// PNG magic number
		assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
	}
}

func TestQRCodeService_GenerateShopQR_NilID(t *testing.T) {
	svc := NewQRCodeService(256, "M", "")

	_, err := svc.GenerateShopQR(uuid.Nil)
	assert.Error(t, err)
}

func TestQRCodeService_ParseShopQR(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://pricemap.example/")
	shopID := uuid.New()

	payload, err := json.Marshal(ShopCodeData{ShopID: shopID.String(), Type: "shop"})
	require.NoError(t, err)
	wrongType, err := json.Marshal(ShopCodeData{ShopID: shopID.String(), Type: "subscription"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{name: "json payload", data: string(payload)},
		{name: "deep link", data: "https://pricemap.example/shops/" + shopID.String()},
		{name: "deep link trailing slash", data: "https://pricemap.example/shops/" + shopID.String() + "/"},
		{name: "wrong type", data: string(wrongType), wantErr: true},
		{name: "malformed json", data: "{not json", wantErr: true},
		{name: "foreign link", data: "https://pricemap.example/users/" + shopID.String(), wantErr: true},
		{name: "bad uuid", data: "https://pricemap.example/shops/nope", wantErr: true},
		{name: "empty", data: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ParseShopQR(tt.data)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, uuid.Nil, got)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, shopID, got)
		})
	}
}

func TestQRCodeService_PayloadCarriesDeepLink(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://pricemap.example/").(*qrcodeService)

	assert.Equal(t, "https://pricemap.example", svc.baseURL)
}
