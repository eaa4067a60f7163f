// Package pricing folds crowd-sourced price observations for one shop and
// product into the single price shown to users.
package pricing

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"pricemap/internal/domain/entity"
	"pricemap/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

// Default engine parameters.
const (
	DefaultMinReports         = 3
	DefaultRecentWindowDays   = 30
	DefaultTolerancePct       = 10.0
	DefaultCredibilityTimeout = 500 * time.Millisecond

	maxCredibility     = 3.0
	maxVolumeFactor    = 2.0
	activeReporterBump = 1.2
	idleReporterDamp   = 0.9
)

// Method names the branch of the algorithm that produced an estimate.
type Method string

const (
	MethodNone            Method = "none"
	MethodSimpleAverage   Method = "simple_average"
	MethodConsensus       Method = "consensus"
	MethodWeightedAverage Method = "weighted_average"
)

// Config holds the tunable engine parameters.
type Config struct {
	MinReports         int
	RecentWindowDays   int
	TolerancePct       float64
	CredibilityTimeout time.Duration
}

// Estimate is the outcome of one aggregation.
type Estimate struct {
	Price      decimal.Decimal
	Method     Method
	SampleSize int
	// Supporters is the size of the agreeing group for consensus estimates.
	Supporters int
}

// Engine computes displayed prices from report history.
type Engine struct {
	cfg       Config
	tolerance decimal.Decimal
	logger    *slog.Logger
	now       func() time.Time
}

// Option customises an Engine.
type Option func(*Engine)

// WithClock replaces the wall clock used for recency computations.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine creates an engine. Non-positive parameters fall back to the defaults.
func NewEngine(cfg Config, logger *slog.Logger, opts ...Option) *Engine {
	if cfg.MinReports <= 0 {
		cfg.MinReports = DefaultMinReports
	}
	if cfg.RecentWindowDays <= 0 {
		cfg.RecentWindowDays = DefaultRecentWindowDays
	}
	if cfg.TolerancePct <= 0 {
		cfg.TolerancePct = DefaultTolerancePct
	}
	if cfg.CredibilityTimeout <= 0 {
		cfg.CredibilityTimeout = DefaultCredibilityTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}

	engine := &Engine{
		cfg:       cfg,
		tolerance: decimal.NewFromFloat(cfg.TolerancePct).Div(decimal.NewFromInt(100)),
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(engine)
	}

	return engine
}

// RecentWindow is the age limit of the reports that take part in aggregation.
func (e *Engine) RecentWindow() time.Duration {
	return time.Duration(e.cfg.RecentWindowDays) * 24 * time.Hour
}

// ComputePrice returns the price for a pair given its stored history and an
// incoming report that is not persisted yet. reporters may be nil, in which
// case every reporter weighs 1.0.
func (e *Engine) ComputePrice(
	ctx context.Context,
	reporters repository.ReporterHistory,
	history []*entity.PriceReport,
	newPrice decimal.Decimal,
	newReporterID uuid.UUID,
) Estimate {
	observations := e.FilterRecent(history)
	observations = append(observations, &entity.PriceReport{
		ReportedBy: newReporterID,
		Price:      newPrice,
		ReportedAt: e.now(),
	})

	return e.Aggregate(ctx, reporters, observations)
}

// Recompute aggregates the recent part of a stored history without an
// incoming report. An empty window yields MethodNone.
func (e *Engine) Recompute(ctx context.Context, reporters repository.ReporterHistory, history []*entity.PriceReport) Estimate {
	return e.Aggregate(ctx, reporters, e.FilterRecent(history))
}

// FilterRecent keeps the reports made inside the recent window.
func (e *Engine) FilterRecent(history []*entity.PriceReport) []*entity.PriceReport {
	cutoff := e.now().Add(-e.RecentWindow())
	recent := make([]*entity.PriceReport, 0, len(history)+1)
	for _, report := range history {
		if report == nil || report.ReportedAt.Before(cutoff) {
			continue
		}
		recent = append(recent, report)
	}

	return recent
}

// Aggregate runs the three tier algorithm over already filtered observations:
// a plain mean while data is sparse, the mean of the largest agreeing group
// once enough reports exist, and a credibility weighted mean when nobody agrees.
func (e *Engine) Aggregate(ctx context.Context, reporters repository.ReporterHistory, observations []*entity.PriceReport) Estimate {
	if len(observations) == 0 {
		return Estimate{Price: decimal.Zero, Method: MethodNone}
	}

	prices := make([]decimal.Decimal, len(observations))
	for i, obs := range observations {
		prices[i] = obs.Price
	}

	if len(observations) < e.cfg.MinReports {
		return Estimate{
			Price:      roundPrice(mean(prices)),
			Method:     MethodSimpleAverage,
			SampleSize: len(observations),
		}
	}

	if group := e.largestGroup(prices); len(group) >= 2 {
		return Estimate{
			Price:      roundPrice(mean(group)),
			Method:     MethodConsensus,
			SampleSize: len(observations),
			Supporters: len(group),
		}
	}

	e.logSpread(ctx, prices)

	return Estimate{
		Price:      roundPrice(e.weightedAverage(ctx, reporters, observations)),
		Method:     MethodWeightedAverage,
		SampleSize: len(observations),
	}
}

// RecommendationMessage renders a short trust label for a set of reports.
func (e *Engine) RecommendationMessage(reports []*entity.PriceReport) string {
	if len(reports) < e.cfg.MinReports {
		return fmt.Sprintf("Price based on %d report(s) - more reports needed for accuracy", len(reports))
	}

	prices := make([]decimal.Decimal, 0, len(reports))
	for _, report := range reports {
		prices = append(prices, report.Price)
	}

	if group := e.largestGroup(prices); len(group) >= 2 {
		return fmt.Sprintf("Price confirmed by %d users", len(group))
	}

	return fmt.Sprintf("Average from %d reports - price may vary", len(reports))
}

// agrees reports whether two prices are within tolerance of each other,
// relative to the larger one.
func (e *Engine) agrees(a, b decimal.Decimal) bool {
	limit := decimal.Max(a, b).Mul(e.tolerance)

	return a.Sub(b).Abs().LessThanOrEqual(limit)
}

type candidate struct {
	price     decimal.Decimal
	members   []decimal.Decimal
	deviation decimal.Decimal
}

// largestGroup is a two pass grouping. The first pass uses every observed
// price as a candidate centre and keeps the one with the most agreeing
// prices. The second pass re-tests every actual price against the mean of
// that group so membership never depends on which observation was the centre.
func (e *Engine) largestGroup(prices []decimal.Decimal) []decimal.Decimal {
	var best *candidate
	for _, p := range prices {
		c := &candidate{price: p, deviation: decimal.Zero}
		for _, q := range prices {
			if e.agrees(p, q) {
				c.members = append(c.members, q)
				c.deviation = c.deviation.Add(p.Sub(q).Abs())
			}
		}
		if best == nil || better(c, best) {
			best = c
		}
	}

	if best == nil || len(best.members) < 2 {
		return nil
	}

	centre := mean(best.members)
	refined := make([]decimal.Decimal, 0, len(best.members))
	for _, p := range prices {
		if e.agrees(centre, p) {
			refined = append(refined, p)
		}
	}
	if len(refined) < 2 {
		return best.members
	}

	return refined
}

// better orders candidates by size, then tightness, then the lower price.
func better(a, b *candidate) bool {
	if len(a.members) != len(b.members) {
		return len(a.members) > len(b.members)
	}
	if cmp := a.deviation.Cmp(b.deviation); cmp != 0 {
		return cmp < 0
	}

	return a.price.LessThan(b.price)
}

func (e *Engine) weightedAverage(ctx context.Context, reporters repository.ReporterHistory, observations []*entity.PriceReport) decimal.Decimal {
	now := e.now()
	window := float64(e.cfg.RecentWindowDays)
	credibility := make(map[uuid.UUID]float64)

	weightedSum, totalWeight := decimal.Zero, decimal.Zero
	for _, obs := range observations {
		ageDays := float64(int(now.Sub(obs.ReportedAt).Hours() / 24))
		recency := max(1, window-ageDays) / window

		cred, ok := credibility[obs.ReportedBy]
		if !ok {
			cred = e.credibilityWeight(ctx, reporters, obs.ReportedBy)
			credibility[obs.ReportedBy] = cred
		}

		weight := decimal.NewFromFloat(recency * cred)
		weightedSum = weightedSum.Add(obs.Price.Mul(weight))
		totalWeight = totalWeight.Add(weight)
	}

	if totalWeight.IsZero() {
		return decimal.Zero
	}

	return weightedSum.DivRound(totalWeight, 8)
}

// logSpread reports how far apart disagreeing prices are. Float precision is
// fine for a diagnostic.
func (e *Engine) logSpread(ctx context.Context, prices []decimal.Decimal) {
	if !e.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}

	data := make(stats.Float64Data, 0, len(prices))
	for _, p := range prices {
		f, _ := p.Float64()
		data = append(data, f)
	}
	stddev, err := stats.StandardDeviation(data)
	if err != nil {
		return
	}

	e.logger.DebugContext(ctx, "No price consensus, falling back to weighted average",
		slog.Int("observations", len(prices)),
		slog.Float64("stddev", stddev),
	)
}

// credibilityWeight scores a reporter by volume and recent activity. Lookup
// failures degrade to the neutral weight instead of failing the aggregation.
func (e *Engine) credibilityWeight(ctx context.Context, reporters repository.ReporterHistory, userID uuid.UUID) float64 {
	if reporters == nil || userID == uuid.Nil {
		return 1.0
	}

	lookupCtx, cancel := context.WithTimeout(ctx, e.cfg.CredibilityTimeout)
	defer cancel()

	total, err := reporters.CountReportsByUser(lookupCtx, userID)
	if err != nil {
		e.logger.Warn("Reporter credibility lookup failed, using neutral weight",
			slog.String("userID", userID.String()),
			slog.Any("error", err),
		)

		return 1.0
	}
	if total == 0 {
		return 1.0
	}

	recent, err := reporters.FindRecentReportsByUser(lookupCtx, userID, e.now().Add(-e.RecentWindow()))
	if err != nil {
		e.logger.Warn("Reporter activity lookup failed, using neutral weight",
			slog.String("userID", userID.String()),
			slog.Any("error", err),
		)

		return 1.0
	}

	factor := idleReporterDamp
	if len(recent) > 0 {
		factor = activeReporterBump
	}

	return min(maxCredibility, min(maxVolumeFactor, 1+0.1*float64(total))*factor)
}

// mean is the exact arithmetic mean. Money never passes through float64 here
// so the result rounds the same way as the stored product average.
func mean(prices []decimal.Decimal) decimal.Decimal {
	if len(prices) == 0 {
		return decimal.Zero
	}

	return decimal.Sum(prices[0], prices[1:]...).Div(decimal.NewFromInt(int64(len(prices))))
}

// PlainAverage is the unweighted mean of every report, rounded to cents.
// It ignores the recent window and returns zero for no reports.
func PlainAverage(reports []*entity.PriceReport) decimal.Decimal {
	prices := make([]decimal.Decimal, 0, len(reports))
	for _, report := range reports {
		prices = append(prices, report.Price)
	}

	return roundPrice(mean(prices))
}

// roundPrice rounds to cents, half away from zero (half-up for prices).
func roundPrice(p decimal.Decimal) decimal.Decimal {
	return p.Round(2)
}

// SortNewestFirst orders reports by ReportedAt descending.
func SortNewestFirst(reports []*entity.PriceReport) {
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].ReportedAt.After(reports[j].ReportedAt)
	})
}
