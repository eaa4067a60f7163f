package memory

import (
	"context"
	"time"

	"pricemap/internal/domain/entity"
	domainerrors "pricemap/internal/domain/errors"
	"pricemap/internal/domain/pricing"
	"pricemap/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type priceReportRepository struct {
	store *Store
}

func (repo *priceReportRepository) CountReportsByUser(_ context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	repo.store.read(func(s *state) {
		for _, report := range s.reports {
			if report.ReportedBy == userID {
				count++
			}
		}
	})

	return count, nil
}

func (repo *priceReportRepository) FindRecentReportsByUser(_ context.Context, userID uuid.UUID, since time.Time) ([]*entity.PriceReport, error) {
	return repo.filter(func(r *entity.PriceReport) bool {
		return r.ReportedBy == userID && !r.ReportedAt.Before(since)
	}), nil
}

func (repo *priceReportRepository) CreateReport(_ context.Context, report *entity.PriceReport) error {
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	if !report.Price.IsPositive() {
		return domainerrors.ErrInvalidPrice
	}

	return repo.store.write(func(s *state) error {
		if _, ok := s.shops[report.ShopID]; !ok {
			return repository.ErrShopNotFound
		}
		now := repo.store.now()
		if report.ReportedAt.IsZero() {
			report.ReportedAt = now
		}
		report.ReportDate = entity.ReportDay(report.ReportedAt)
		report.UpdatedAt = now
		s.reports[report.ID] = cloneReport(report)

		return nil
	})
}

func (repo *priceReportRepository) FindReportByID(_ context.Context, id uuid.UUID) (*entity.PriceReport, error) {
	var report *entity.PriceReport
	repo.store.read(func(s *state) {
		report = cloneReport(s.reports[id])
	})
	if report == nil {
		return nil, repository.ErrReportNotFound
	}

	return report, nil
}

func (repo *priceReportRepository) FindReportsByShopAndProduct(_ context.Context, shopID uuid.UUID, productID int64) ([]*entity.PriceReport, error) {
	return repo.filter(func(r *entity.PriceReport) bool {
		return r.ShopID == shopID && r.ProductID == productID
	}), nil
}

func (repo *priceReportRepository) HasUserReportedOn(_ context.Context, productID int64, shopID, userID uuid.UUID, day time.Time) (bool, error) {
	key := entity.ReportDay(day)
	found := false
	repo.store.read(func(s *state) {
		for _, r := range s.reports {
			if r.ProductID == productID && r.ShopID == shopID && r.ReportedBy == userID && r.ReportDate.Equal(key) {
				found = true

				return
			}
		}
	})

	return found, nil
}

func (repo *priceReportRepository) UpdateReportPrice(_ context.Context, id uuid.UUID, price decimal.Decimal) error {
	if !price.IsPositive() {
		return domainerrors.ErrInvalidPrice
	}

	return repo.store.write(func(s *state) error {
		current, ok := s.reports[id]
		if !ok {
			return repository.ErrReportNotFound
		}
		updated := cloneReport(current)
		updated.Price = price
		updated.UpdatedAt = repo.store.now()
		s.reports[id] = updated

		return nil
	})
}

func (repo *priceReportRepository) DeleteReport(_ context.Context, id uuid.UUID) error {
	return repo.store.write(func(s *state) error {
		if _, ok := s.reports[id]; !ok {
			return repository.ErrReportNotFound
		}
		delete(s.reports, id)

		return nil
	})
}

func (repo *priceReportRepository) SumProductPrices(_ context.Context, productID int64) (decimal.Decimal, int64, error) {
	total := decimal.Zero
	var count int64
	repo.store.read(func(s *state) {
		for _, r := range s.reports {
			if r.ProductID == productID {
				total = total.Add(r.Price)
				count++
			}
		}
	})

	return total, count, nil
}

func (repo *priceReportRepository) filter(keep func(*entity.PriceReport) bool) []*entity.PriceReport {
	var reports []*entity.PriceReport
	repo.store.read(func(s *state) {
		for _, r := range s.reports {
			if keep(r) {
				reports = append(reports, cloneReport(r))
			}
		}
	})
	pricing.SortNewestFirst(reports)

	return reports
}
