package handler

import (
	"net/http"
	"testing"

	"pricemap/internal/domain/entity"
	domainerrors "pricemap/internal/domain/errors"
	mockUsecase "pricemap/internal/mocks/usecase"
	"pricemap/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newShopHandlerEcho(t *testing.T, caller uuid.UUID) (*mockUsecase.MockShopUsecase, *ShopHandler, func(method, target, body string) (int, envelope, []byte)) {
	t.Helper()

	shopUC := mockUsecase.NewMockShopUsecase(t)
	h := NewShopHandler(ShopHandlerParams{ShopUC: shopUC, Logger: newDiscardLogger()})

	e := newTestEcho(caller)
	e.GET("/shops/nearby", h.FindNearbyShops)
	e.GET("/shops/declared", h.ListDeclaredShops)
	e.GET("/shops/:id", h.GetShop)
	e.GET("/shops/:id/products", h.ListShopProducts)
	e.GET("/shops/:id/qr", h.GenerateShopQR)
	e.POST("/shops/:id/declare", h.DeclareShop)

	do := func(method, target, body string) (int, envelope, []byte) {
		rec := doRequest(e, method, target, body)
		var env envelope
		if rec.Header().Get("Content-Type") != "image/png" {
			env = decodeEnvelope(t, rec)
		}

		return rec.Code, env, rec.Body.Bytes()
	}

	return shopUC, h, do
}

func TestShopHandler_FindNearbyShops(t *testing.T) {
	shopUC, _, do := newShopHandlerEcho(t, uuid.New())

	shopUC.EXPECT().FindNearbyShops(mock.Anything, &usecase.NearbyShopsInput{
		ProductID:    7,
		Latitude:     25.033,
		Longitude:    121.5654,
		RadiusMeters: 120,
	}).Return(&usecase.NearbyShopsResult{
		Shops:        []*usecase.NearbyShop{{Shop: &entity.Shop{Name: "Corner"}, DistanceMeters: 12.5, HasProduct: true}},
		Count:        1,
		RadiusMeters: 120,
	}, nil)

	status, env, _ := do(http.MethodGet, "/shops/nearby?productId=7&lat=25.033&lon=121.5654&radius=120", "")

	require.Equal(t, http.StatusOK, status)
	assert.Nil(t, env.Error)
	assert.Contains(t, string(env.Data), `"has_product":true`)
	assert.Contains(t, string(env.Data), `"name":"Corner"`)
}

func TestShopHandler_FindNearbyShops_RequiresCoordinates(t *testing.T) {
	_, _, do := newShopHandlerEcho(t, uuid.New())

	status, env, _ := do(http.MethodGet, "/shops/nearby?lon=121.5", "")

	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_QUERY", env.Error.Code)
	assert.Equal(t, "lat", env.Error.Details["field"])
}

func TestShopHandler_FindNearbyShops_InvalidCoordinates(t *testing.T) {
	shopUC, _, do := newShopHandlerEcho(t, uuid.New())

	shopUC.EXPECT().FindNearbyShops(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCoordinates)

	status, env, _ := do(http.MethodGet, "/shops/nearby?lat=95&lon=121.5", "")

	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_COORDINATES", env.Error.Code)
}

func TestShopHandler_GetShop(t *testing.T) {
	shopID := uuid.New()

	t.Run("found", func(t *testing.T) {
		shopUC, _, do := newShopHandlerEcho(t, uuid.New())
		shopUC.EXPECT().GetShop(mock.Anything, shopID).Return(&entity.Shop{ID: shopID, Name: "Corner"}, nil)

		status, env, _ := do(http.MethodGet, "/shops/"+shopID.String(), "")

		require.Equal(t, http.StatusOK, status)
		assert.Contains(t, string(env.Data), shopID.String())
	})

	t.Run("not found", func(t *testing.T) {
		shopUC, _, do := newShopHandlerEcho(t, uuid.New())
		shopUC.EXPECT().GetShop(mock.Anything, shopID).Return(nil, domainerrors.ErrShopNotFound)

		status, env, _ := do(http.MethodGet, "/shops/"+shopID.String(), "")

		assert.Equal(t, http.StatusNotFound, status)
		require.NotNil(t, env.Error)
		assert.Equal(t, "SHOP_NOT_FOUND", env.Error.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, _, do := newShopHandlerEcho(t, uuid.New())

		status, env, _ := do(http.MethodGet, "/shops/not-a-uuid", "")

		assert.Equal(t, http.StatusBadRequest, status)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_ID", env.Error.Code)
		assert.Equal(t, "not-a-uuid", env.Error.Details["id"])
	})
}

func TestShopHandler_GenerateShopQR(t *testing.T) {
	shopID := uuid.New()
	shopUC, _, do := newShopHandlerEcho(t, uuid.New())
	png := []byte{0x89, 'P', 'N', 'G'}
	shopUC.EXPECT().GenerateShopQR(mock.Anything, shopID).Return(png, nil)

	status, _, body := do(http.MethodGet, "/shops/"+shopID.String()+"/qr", "")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, png, body)
}

func TestShopHandler_DeclareShop(t *testing.T) {
	userID := uuid.New()
	shopID := uuid.New()

	t.Run("declared", func(t *testing.T) {
		shopUC, _, do := newShopHandlerEcho(t, userID)
		accuracy := 8.0
		shopUC.EXPECT().DeclareShop(mock.Anything, &usecase.DeclareShopInput{
			ShopID:      shopID,
			UserID:      userID,
			Latitude:    25.033,
			Longitude:   121.5654,
			GPSAccuracy: &accuracy,
		}).Return(&usecase.DeclareShopResult{
			Shop:           &entity.Shop{ID: shopID},
			DistanceMeters: 4,
			Message:        "Location verified - You are at the shop",
		}, nil)

		status, env, _ := do(http.MethodPost, "/shops/"+shopID.String()+"/declare",
			`{"latitude":25.033,"longitude":121.5654,"gps_accuracy":8}`)

		require.Equal(t, http.StatusOK, status)
		assert.Contains(t, string(env.Data), "You are at the shop")
	})

	t.Run("missing coordinates", func(t *testing.T) {
		_, _, do := newShopHandlerEcho(t, userID)

		status, env, _ := do(http.MethodPost, "/shops/"+shopID.String()+"/declare", `{"longitude":121.5}`)

		assert.Equal(t, http.StatusBadRequest, status)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Equal(t, "required", env.Error.Details["latitude"])
	})

	t.Run("too far carries distance details", func(t *testing.T) {
		shopUC, _, do := newShopHandlerEcho(t, userID)
		shopUC.EXPECT().DeclareShop(mock.Anything, mock.Anything).Return(nil, domainerrors.NewTooFarError(200, 50))

		status, env, _ := do(http.MethodPost, "/shops/"+shopID.String()+"/declare",
			`{"latitude":25.0348,"longitude":121.5654}`)

		assert.Equal(t, http.StatusUnprocessableEntity, status)
		require.NotNil(t, env.Error)
		assert.Equal(t, "TOO_FAR_FROM_SHOP", env.Error.Code)
		assert.Equal(t, "You are 200.0m away from the shop. You must be within 50m to report prices.", env.Error.Message)
		assert.InDelta(t, 200.0, env.Error.Details["distanceMeters"], 1e-9)
		assert.InDelta(t, 50.0, env.Error.Details["limitMeters"], 1e-9)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		_, _, do := newShopHandlerEcho(t, uuid.Nil)

		status, env, _ := do(http.MethodPost, "/shops/"+shopID.String()+"/declare", `{"latitude":1,"longitude":1}`)

		assert.Equal(t, http.StatusUnauthorized, status)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_TOKEN", env.Error.Code)
	})
}

func TestShopHandler_ListDeclaredShops(t *testing.T) {
	userID := uuid.New()
	shopUC, _, do := newShopHandlerEcho(t, userID)
	shopUC.EXPECT().ListDeclaredShops(mock.Anything, userID).Return([]*entity.Shop{{Name: "A"}, {Name: "B"}}, nil)

	status, env, _ := do(http.MethodGet, "/shops/declared", "")

	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"count":2`)
}
