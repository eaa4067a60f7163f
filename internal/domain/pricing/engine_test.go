package pricing

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"pricemap/internal/domain/entity"
	mockRepo "pricemap/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEngine() *Engine {
	return NewEngine(Config{}, newDiscardLogger(), WithClock(func() time.Time { return fixedNow }))
}

func report(price string, age time.Duration) *entity.PriceReport {
	return &entity.PriceReport{
		ID:         uuid.New(),
		ReportedBy: uuid.New(),
		Price:      decimal.RequireFromString(price),
		ReportedAt: fixedNow.Add(-age),
	}
}

func TestEngine_ComputePrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		history        []*entity.PriceReport
		newPrice       string
		wantPrice      string
		wantMethod     Method
		wantSample     int
		wantSupporters int
	}{
		{
			name:       "first report",
			newPrice:   "10.00",
			wantPrice:  "10",
			wantMethod: MethodSimpleAverage,
			wantSample: 1,
		},
		{
			name:       "two reports use the plain mean",
			history:    []*entity.PriceReport{report("10.00", time.Hour)},
			newPrice:   "10.50",
			wantPrice:  "10.25",
			wantMethod: MethodSimpleAverage,
			wantSample: 2,
		},
		{
			name:       "half cent mean rounds up",
			history:    []*entity.PriceReport{report("10.00", time.Hour)},
			newPrice:   "10.01",
			wantPrice:  "10.01",
			wantMethod: MethodSimpleAverage,
			wantSample: 2,
		},
		{
			name:           "half cent consensus mean rounds up",
			history:        []*entity.PriceReport{report("20.00", time.Hour), report("20.01", 2*time.Hour)},
			newPrice:       "90.00",
			wantPrice:      "20.01",
			wantMethod:     MethodConsensus,
			wantSample:     3,
			wantSupporters: 2,
		},
		{
			name:           "outlier ignored by consensus",
			history:        []*entity.PriceReport{report("10.50", time.Hour), report("10.00", 2*time.Hour)},
			newPrice:       "50.00",
			wantPrice:      "10.25",
			wantMethod:     MethodConsensus,
			wantSample:     3,
			wantSupporters: 2,
		},
		{
			name: "consensus mean of the cluster only",
			history: []*entity.PriceReport{
				report("4.00", time.Hour),
				report("4.20", time.Hour),
				report("4.10", time.Hour),
				report("9.90", time.Hour),
			},
			newPrice:       "1.00",
			wantPrice:      "4.1",
			wantMethod:     MethodConsensus,
			wantSample:     5,
			wantSupporters: 3,
		},
		{
			name: "reports outside the window are ignored",
			history: []*entity.PriceReport{
				report("10.00", time.Hour),
				report("99.00", 31*24*time.Hour),
				report("98.00", 40*24*time.Hour),
			},
			newPrice:   "11.00",
			wantPrice:  "10.5",
			wantMethod: MethodSimpleAverage,
			wantSample: 2,
		},
		{
			name:       "half cent rounds up",
			history:    []*entity.PriceReport{report("10.00", time.Hour)},
			newPrice:   "10.25",
			wantPrice:  "10.13",
			wantMethod: MethodSimpleAverage,
			wantSample: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			engine := newTestEngine()
			got := engine.ComputePrice(context.Background(), nil, tt.history, decimal.RequireFromString(tt.newPrice), uuid.New())

			assert.True(t, decimal.RequireFromString(tt.wantPrice).Equal(got.Price), "got price %s", got.Price)
			assert.Equal(t, tt.wantMethod, got.Method)
			assert.Equal(t, tt.wantSample, got.SampleSize)
			assert.Equal(t, tt.wantSupporters, got.Supporters)
		})
	}
}

func TestEngine_ComputePrice_DoesNotMutateHistory(t *testing.T) {
	t.Parallel()

	history := []*entity.PriceReport{report("10.00", time.Hour), report("10.50", time.Hour)}
	engine := newTestEngine()

	engine.ComputePrice(context.Background(), nil, history, decimal.RequireFromString("50"), uuid.New())

	assert.Len(t, history, 2)
}

func TestEngine_WeightedAverage_NeutralWithoutHistory(t *testing.T) {
	t.Parallel()

	engine := newTestEngine()
	observations := []*entity.PriceReport{
		report("10.00", 0),
		report("20.00", 0),
		report("40.00", 0),
	}

	got := engine.Aggregate(context.Background(), nil, observations)

	assert.Equal(t, MethodWeightedAverage, got.Method)
	assert.True(t, decimal.RequireFromString("23.33").Equal(got.Price), "got price %s", got.Price)
}

func TestEngine_WeightedAverage_RecencyWeights(t *testing.T) {
	t.Parallel()

	engine := newTestEngine()
	// Weights 30/30, 20/30 and 1/30 (floored).
	observations := []*entity.PriceReport{
		report("10.00", 0),
		report("20.00", 10*24*time.Hour),
		report("40.00", 29*24*time.Hour+time.Hour),
	}

	got := engine.Aggregate(context.Background(), nil, observations)

	// (10*30 + 20*20 + 40*1) / 51 = 14.5098...
	assert.Equal(t, MethodWeightedAverage, got.Method)
	assert.True(t, decimal.RequireFromString("14.51").Equal(got.Price), "got price %s", got.Price)
}

func TestEngine_WeightedAverage_Credibility(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	engine := newTestEngine()
	reporters := mockRepo.NewMockReporterHistory(t)

	veteran := report("10.00", 0)
	newcomer := report("20.00", 0)
	failing := report("40.00", 0)

	// veteran: min(2, 1+0.1*15) * 1.2 = 2.4
	reporters.EXPECT().CountReportsByUser(mock.Anything, veteran.ReportedBy).Return(int64(15), nil)
	reporters.EXPECT().
		FindRecentReportsByUser(mock.Anything, veteran.ReportedBy, fixedNow.Add(-30*24*time.Hour)).
		Return([]*entity.PriceReport{veteran}, nil)

	// newcomer: unknown reporter is neutral
	reporters.EXPECT().CountReportsByUser(mock.Anything, newcomer.ReportedBy).Return(int64(0), nil)

	// failing lookup degrades to neutral
	reporters.EXPECT().CountReportsByUser(mock.Anything, failing.ReportedBy).Return(int64(0), errors.New("timeout"))

	got := engine.Aggregate(ctx, reporters, []*entity.PriceReport{veteran, newcomer, failing})

	// (10*2.4 + 20 + 40) / 4.4 = 19.0909...
	assert.Equal(t, MethodWeightedAverage, got.Method)
	assert.True(t, decimal.RequireFromString("19.09").Equal(got.Price), "got price %s", got.Price)
}

func TestEngine_CredibilityWeight(t *testing.T) {
	t.Parallel()

	since := fixedNow.Add(-30 * 24 * time.Hour)

	tests := []struct {
		name   string
		total  int64
		recent int
		want   float64
	}{
		{name: "few reports, active", total: 3, recent: 1, want: 1.3 * 1.2},
		{name: "few reports, idle", total: 3, recent: 0, want: 1.3 * 0.9},
		{name: "volume capped at two", total: 40, recent: 1, want: 2.4},
		{name: "idle veteran", total: 40, recent: 0, want: 1.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			engine := newTestEngine()
			reporters := mockRepo.NewMockReporterHistory(t)
			userID := uuid.New()

			recent := make([]*entity.PriceReport, tt.recent)
			reporters.EXPECT().CountReportsByUser(mock.Anything, userID).Return(tt.total, nil)
			reporters.EXPECT().FindRecentReportsByUser(mock.Anything, userID, since).Return(recent, nil)

			got := engine.credibilityWeight(context.Background(), reporters, userID)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.LessOrEqual(t, got, maxCredibility)
		})
	}
}

func TestEngine_CredibilityWeight_RecentLookupFails(t *testing.T) {
	t.Parallel()

	engine := newTestEngine()
	reporters := mockRepo.NewMockReporterHistory(t)
	userID := uuid.New()

	reporters.EXPECT().CountReportsByUser(mock.Anything, userID).Return(int64(10), nil)
	reporters.EXPECT().FindRecentReportsByUser(mock.Anything, userID, mock.Anything).Return(nil, errors.New("db down"))

	assert.Equal(t, 1.0, engine.credibilityWeight(context.Background(), reporters, userID))
}

func TestEngine_Recompute_EmptyWindow(t *testing.T) {
	t.Parallel()

	engine := newTestEngine()
	got := engine.Recompute(context.Background(), nil, []*entity.PriceReport{report("10", 45*24*time.Hour)})

	assert.Equal(t, MethodNone, got.Method)
	assert.Equal(t, 0, got.SampleSize)
}

func TestEngine_RecommendationMessage(t *testing.T) {
	t.Parallel()

	engine := newTestEngine()

	tests := []struct {
		name    string
		reports []*entity.PriceReport
		want    string
	}{
		{
			name:    "sparse",
			reports: []*entity.PriceReport{report("10", 0), report("10.5", 0)},
			want:    "Price based on 2 report(s) - more reports needed for accuracy",
		},
		{
			name:    "confirmed",
			reports: []*entity.PriceReport{report("10", 0), report("10.5", 0), report("50", 0)},
			want:    "Price confirmed by 2 users",
		},
		{
			name:    "scattered",
			reports: []*entity.PriceReport{report("10", 0), report("20", 0), report("40", 0)},
			want:    "Average from 3 reports - price may vary",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, engine.RecommendationMessage(tt.reports))
		})
	}
}

func TestEngine_LargestGroup_TieBreak(t *testing.T) {
	t.Parallel()

	engine := newTestEngine()
	prices := []decimal.Decimal{
		decimal.RequireFromString("10"),
		decimal.RequireFromString("10.5"),
		decimal.RequireFromString("30"),
		decimal.RequireFromString("31"),
	}

	group := engine.largestGroup(prices)

	// Both pairs have two members; the tighter one wins.
	assert.Len(t, group, 2)
	assert.True(t, group[0].Equal(decimal.RequireFromString("10")))
}

func TestPlainAverage(t *testing.T) {
	t.Parallel()

	reports := []*entity.PriceReport{
		{Price: decimal.RequireFromString("10.00"), ReportedAt: fixedNow.AddDate(0, -6, 0)},
		{Price: decimal.RequireFromString("10.25")},
		{Price: decimal.RequireFromString("10.50")},
	}

	assert.Equal(t, "10.25", PlainAverage(reports).StringFixed(2))
	assert.True(t, PlainAverage(nil).IsZero())
}
