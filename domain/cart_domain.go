package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	MessageSuccessGetCart        = "cart retrieved successfully"
	MessageSuccessAddToCart      = "product added to cart"
	MessageSuccessUpdateCartItem = "cart quantity updated"
	MessageSuccessRemoveCartItem = "product removed from cart"
	MessageSuccessClearCart      = "cart cleared"
	MessageSuccessGetCartTotal   = "cart total calculated"

	MessageFailedGetCart        = "failed to retrieve cart"
	MessageFailedAddToCart      = "failed to add product to cart"
	MessageFailedUpdateCartItem = "failed to update cart quantity"
	MessageFailedRemoveCartItem = "failed to remove product from cart"
	MessageFailedClearCart      = "failed to clear cart"
)

type (
	// CartItem is a product together with the quantity the user holds in the
	// cart. CartID is the id of the underlying cart row.
	CartItem struct {
		Product
		Quantity int       `json:"quantity"`
		CartID   *string   `json:"cart_id,omitempty"`
		AddedAt  time.Time `json:"added_at"`
	}

	AddToCartRequest struct {
		ProductID string `json:"product_id" validate:"required,uuid"`
		Quantity  int    `json:"quantity" validate:"omitempty,min=1"`
	}

	UpdateCartQuantityRequest struct {
		Quantity int `json:"quantity" validate:"required,min=1"`
	}

	CartResponse struct {
		Items []CartItem      `json:"items"`
		Total decimal.Decimal `json:"total"`
	}

	CartTotalResponse struct {
		Total decimal.Decimal `json:"total"`
	}
)
