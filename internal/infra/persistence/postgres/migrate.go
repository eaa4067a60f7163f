package postgres

import (
	"context"

	"pricemap/internal/errors"
	"pricemap/internal/infra/persistence/model"

	"gorm.io/gorm"
)

var extensions = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,
	`CREATE EXTENSION IF NOT EXISTS postgis`,
}

// schemaModels lists the tables in dependency order.
func schemaModels() []any {
	return []any{
		&model.ShopModel{},
		&model.ShopDeclarantModel{},
		&model.LocationModel{},
		&model.ShopProductModel{},
		&model.PriceReportModel{},
		&model.PriceAverageModel{},
	}
}

// Migrate creates the extensions and tables the repositories rely on.
func Migrate(ctx context.Context, db *gorm.DB) error {
	tx := db.WithContext(ctx)
	for _, stmt := range extensions {
		if err := tx.Exec(stmt).Error; err != nil {
			return errors.Wrapf(err, "failed to run %q", stmt)
		}
	}

	if err := tx.AutoMigrate(schemaModels()...); err != nil {
		return errors.Wrap(err, "failed to migrate pricemap schema")
	}

	return nil
}
