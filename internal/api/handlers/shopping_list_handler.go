package handlers

import (
	"errors"

	"SmartCart-Backend/domain"
	"SmartCart-Backend/internal/api/presenters"
	"SmartCart-Backend/pkg/shoppinglist"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ShoppingListHandler interface {
		GetLists(c *fiber.Ctx) error
		CreateList(c *fiber.Ctx) error
		UpdateListStatus(c *fiber.Ctx) error
		DeleteList(c *fiber.Ctx) error
		GetListItems(c *fiber.Ctx) error
		AddItemToList(c *fiber.Ctx) error
		UpdateItemQuantity(c *fiber.Ctx) error
		RemoveItemFromList(c *fiber.Ctx) error
	}

	shoppingListHandler struct {
		shoppingListService shoppinglist.ShoppingListService
		validator           *validator.Validate
	}
)

func NewShoppingListHandler(shoppingListService shoppinglist.ShoppingListService, validator *validator.Validate) ShoppingListHandler {
	return &shoppingListHandler{
		shoppingListService: shoppingListService,
		validator:           validator,
	}
}

// listErrorStatus maps ownership misses to 404; everything else is a bad
// request.
func listErrorStatus(err error) int {
	if errors.Is(err, domain.ErrShoppingListNotFound) || errors.Is(err, domain.ErrShoppingListItemNotFound) {
		return fiber.StatusNotFound
	}
	return fiber.StatusBadRequest
}

func (h *shoppingListHandler) GetLists(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.GetListsRequest)

	if err := c.QueryParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetLists, err)
	}

	lists, err := h.shoppingListService.GetLists(c.Context(), userID, req.Status)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetLists, err)
	}

	return presenters.SuccessResponse(c, lists, fiber.StatusOK, domain.MessageSuccessGetLists)
}

func (h *shoppingListHandler) CreateList(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateListRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateList, err)
	}

	list, err := h.shoppingListService.CreateList(c.Context(), userID, req.Name)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateList, err)
	}

	return presenters.SuccessResponse(c, list, fiber.StatusCreated, domain.MessageSuccessCreateList)
}

func (h *shoppingListHandler) UpdateListStatus(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	listID := c.Params("id")
	req := new(domain.UpdateListStatusRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateListStatus, err)
	}

	if err := h.shoppingListService.UpdateListStatus(c.Context(), userID, listID, req.Status); err != nil {
		return presenters.ErrorResponse(c, listErrorStatus(err), domain.MessageFailedUpdateListStatus, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateListStatus)
}

func (h *shoppingListHandler) DeleteList(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	listID := c.Params("id")

	if err := h.shoppingListService.DeleteList(c.Context(), userID, listID); err != nil {
		return presenters.ErrorResponse(c, listErrorStatus(err), domain.MessageFailedDeleteList, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteList)
}

func (h *shoppingListHandler) GetListItems(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	listID := c.Params("id")

	items, err := h.shoppingListService.GetListItems(c.Context(), userID, listID)
	if err != nil {
		return presenters.ErrorResponse(c, listErrorStatus(err), domain.MessageFailedGetListItems, err)
	}

	return presenters.SuccessResponse(c, domain.ListItemsResponse{
		Items: items,
		Total: shoppinglist.CalculateTotal(items),
	}, fiber.StatusOK, domain.MessageSuccessGetListItems)
}

func (h *shoppingListHandler) AddItemToList(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	listID := c.Params("id")
	req := new(domain.AddListItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddListItem, err)
	}

	if err := h.shoppingListService.AddItemToList(c.Context(), userID, listID, req.ProductID, req.Quantity); err != nil {
		return presenters.ErrorResponse(c, listErrorStatus(err), domain.MessageFailedAddListItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessAddListItem)
}

func (h *shoppingListHandler) UpdateItemQuantity(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("item_id")
	req := new(domain.UpdateListItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateListItem, err)
	}

	if err := h.shoppingListService.UpdateItemQuantity(c.Context(), userID, itemID, req.Quantity); err != nil {
		return presenters.ErrorResponse(c, listErrorStatus(err), domain.MessageFailedUpdateListItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateListItem)
}

func (h *shoppingListHandler) RemoveItemFromList(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("item_id")

	if err := h.shoppingListService.RemoveItemFromList(c.Context(), userID, itemID); err != nil {
		return presenters.ErrorResponse(c, listErrorStatus(err), domain.MessageFailedRemoveListItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveListItem)
}
