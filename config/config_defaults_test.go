package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReportingOrDefault(t *testing.T) {
	t.Parallel()

	t.Run("nil section", func(t *testing.T) {
		t.Parallel()

		got := (&Config{}).ReportingOrDefault()
		assert.Equal(t, 50.0, got.MaxReportDistanceMeters)
		assert.Equal(t, 100.0, got.MaxGPSAccuracyMeters)
		assert.Equal(t, 10.0, got.AtShopDistanceMeters)
		assert.Equal(t, 50.0, got.CreationSearchRadiusMeters)
		assert.Equal(t, 5000.0, got.MaxSearchRadiusMeters)
		assert.Equal(t, 24*time.Hour, got.ModifyWindow)
		assert.Equal(t, 30, got.HistoryDays)
		assert.Equal(t, 50, got.HistoryLimit)
		assert.Equal(t, 200, got.MaxHistoryLimit)
	})

	t.Run("creation radius clamped to reporting radius", func(t *testing.T) {
		t.Parallel()

		cfg := &Config{Reporting: &ReportingConfig{
			MaxReportDistanceMeters:    80,
			CreationSearchRadiusMeters: 20,
		}}
		got := cfg.ReportingOrDefault()
		assert.Equal(t, 80.0, got.CreationSearchRadiusMeters)
	})

	t.Run("explicit values kept", func(t *testing.T) {
		t.Parallel()

		cfg := &Config{Reporting: &ReportingConfig{
			MaxReportDistanceMeters:    50,
			CreationSearchRadiusMeters: 120,
			ModifyWindow:               2 * time.Hour,
		}}
		got := cfg.ReportingOrDefault()
		assert.Equal(t, 120.0, got.CreationSearchRadiusMeters)
		assert.Equal(t, 2*time.Hour, got.ModifyWindow)
	})
}

func TestRefreshOrDefault(t *testing.T) {
	t.Parallel()

	got := (&Config{}).RefreshOrDefault()
	assert.False(t, got.Enabled)
	assert.Equal(t, "@every 1h", got.Schedule)
	assert.Equal(t, 6*time.Hour, got.StaleAfter)
	assert.Equal(t, 200, got.BatchSize)
	assert.Equal(t, 4, got.Workers)
}

func TestStorageDriver(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "postgres", (&Config{}).StorageDriver())
	assert.Equal(t, "memory", (&Config{Storage: &StorageConfig{Driver: " Memory "}}).StorageDriver())
}

func TestAccessTokenTTL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 15*time.Minute, (&Config{}).AccessTokenTTL())
	assert.Equal(t, time.Hour, (&Config{Auth: &AuthConfig{AccessTokenTTL: time.Hour}}).AccessTokenTTL())
}
