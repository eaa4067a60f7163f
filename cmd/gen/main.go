package main

import (
	"pricemap/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates typed query helpers for the pricemap tables.
func main() {
	models := []any{
		model.ShopModel{},
		model.ShopDeclarantModel{},
		model.LocationModel{},
		model.ShopProductModel{},
		model.PriceReportModel{},
		model.PriceAverageModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
