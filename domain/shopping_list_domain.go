package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

const (
	ListStatusPrevious  = "previous"
	ListStatusOngoing   = "ongoing"
	ListStatusCompleted = "completed"
)

var (
	MessageSuccessGetLists         = "shopping lists retrieved successfully"
	MessageSuccessCreateList       = "shopping list created successfully"
	MessageSuccessUpdateListStatus = "shopping list status updated"
	MessageSuccessDeleteList       = "shopping list deleted successfully"
	MessageSuccessGetListItems     = "shopping list items retrieved successfully"
	MessageSuccessAddListItem      = "item added to shopping list"
	MessageSuccessUpdateListItem   = "shopping list item updated"
	MessageSuccessRemoveListItem   = "item removed from shopping list"

	MessageFailedGetLists         = "failed to retrieve shopping lists"
	MessageFailedCreateList       = "failed to create shopping list"
	MessageFailedUpdateListStatus = "failed to update shopping list status"
	MessageFailedDeleteList       = "failed to delete shopping list"
	MessageFailedGetListItems     = "failed to retrieve shopping list items"
	MessageFailedAddListItem      = "failed to add item to shopping list"
	MessageFailedUpdateListItem   = "failed to update shopping list item"
	MessageFailedRemoveListItem   = "failed to remove item from shopping list"

	ErrShoppingListNotFound     = errors.New("shopping list not found")
	ErrShoppingListItemNotFound = errors.New("shopping list item not found")
)

type (
	ShoppingList struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		UserID    string    `json:"user_id"`
		Status    string    `json:"status"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}

	// ProductSnapshot is the slice of a product returned alongside a list item.
	ProductSnapshot struct {
		ID       string          `json:"id"`
		Name     string          `json:"name"`
		Price    decimal.Decimal `json:"price"`
		ImageURL *string         `json:"image_url"`
	}

	ShoppingListItem struct {
		ID        string           `json:"id"`
		ListID    string           `json:"list_id"`
		ProductID string           `json:"product_id"`
		Quantity  int              `json:"quantity"`
		CreatedAt time.Time        `json:"created_at"`
		Product   *ProductSnapshot `json:"products,omitempty"`
	}

	GetListsRequest struct {
		Status string `query:"status" validate:"omitempty,oneof=previous ongoing completed"`
	}

	CreateListRequest struct {
		Name string `json:"name" validate:"required"`
	}

	UpdateListStatusRequest struct {
		Status string `json:"status" validate:"required,oneof=previous ongoing completed"`
	}

	AddListItemRequest struct {
		ProductID string `json:"product_id" validate:"required,uuid"`
		Quantity  int    `json:"quantity" validate:"omitempty,min=1"`
	}

	UpdateListItemRequest struct {
		Quantity int `json:"quantity" validate:"required,min=1"`
	}

	ListItemsResponse struct {
		Items []ShoppingListItem `json:"items"`
		Total decimal.Decimal    `json:"total"`
	}
)
