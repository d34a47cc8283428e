package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	MessageSuccessGetProducts   = "products retrieved successfully"
	MessageSuccessGetCategories = "categories retrieved successfully"

	MessageFailedGetProducts    = "failed to retrieve products"
	MessageFailedSearchProducts = "failed to search products"
	MessageFailedGetCategories  = "failed to retrieve categories"
)

type (
	Product struct {
		ID          string          `json:"id"`
		Name        string          `json:"name"`
		Description *string         `json:"description"`
		Category    string          `json:"category"`
		Price       decimal.Decimal `json:"price"`
		Barcode     *string         `json:"barcode"`
		ImageURL    *string         `json:"image_url"`
		Stock       int             `json:"stock"`
		CreatedAt   time.Time       `json:"created_at"`
	}

	SearchProductsRequest struct {
		Query string `query:"q" validate:"required"`
	}
)
