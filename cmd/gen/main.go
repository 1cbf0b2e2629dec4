package main

import (
	"sayur/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.CategoryModel{},
		model.ProductModel{},
		model.CartItemModel{},
		model.PromoCodeModel{},
		model.OrderModel{},
		model.OrderItemModel{},
		model.ReviewModel{},
		model.WishlistItemModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
