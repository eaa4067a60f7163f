package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeclarantSet(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	set := NewDeclarantSet(a, b, a)
	assert.Equal(t, 2, set.Len())
	assert.Equal(t, []uuid.UUID{a, b}, set.IDs())

	assert.False(t, set.Add(a), "existing member")
	c := uuid.New()
	assert.True(t, set.Add(c))
	assert.True(t, set.Contains(c))
	assert.Equal(t, 3, set.Len())

	ids := set.IDs()
	ids[0] = uuid.Nil
	assert.True(t, set.Contains(a), "IDs returns a copy")
}

func TestDeclarantSet_ZeroValue(t *testing.T) {
	var set DeclarantSet

	assert.False(t, set.Contains(uuid.New()))
	assert.Zero(t, set.Len())

	data, err := json.Marshal(set)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestDeclarantSet_UnmarshalDropsDuplicates(t *testing.T) {
	id := uuid.New()
	data := `["` + id.String() + `","` + id.String() + `"]`

	var set DeclarantSet
	require.NoError(t, json.Unmarshal([]byte(data), &set))

	assert.Equal(t, 1, set.Len())
	assert.True(t, set.Contains(id))
}

func TestShopStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from ShopStatus
		to   ShopStatus
		want bool
	}{
		{from: ShopStatusUnverified, to: ShopStatusVerified, want: true},
		{from: ShopStatusPending, to: ShopStatusRejected, want: true},
		{from: ShopStatusVerified, to: ShopStatusSuspended, want: true},
		{from: ShopStatusSuspended, to: ShopStatusVerified, want: true},
		{from: ShopStatusRejected, to: ShopStatusVerified, want: true},
		{from: ShopStatusRejected, to: ShopStatusPending, want: false},
		{from: ShopStatusRejected, to: ShopStatusSuspended, want: false},
		{from: ShopStatusVerified, to: ShopStatus("closed"), want: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestShop_Point(t *testing.T) {
	shop := &Shop{Latitude: 25.03, Longitude: 121.56}

	assert.Equal(t, 121.56, shop.Point().Lon())
	assert.Equal(t, 25.03, shop.Point().Lat())
}

func TestReportDay(t *testing.T) {
	ts := time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), ReportDay(ts))
}
