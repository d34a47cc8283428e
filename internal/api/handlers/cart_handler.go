package handlers

import (
	"SmartCart-Backend/domain"
	"SmartCart-Backend/internal/api/presenters"
	"SmartCart-Backend/pkg/cart"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CartHandler interface {
		GetCart(c *fiber.Ctx) error
		GetCartTotal(c *fiber.Ctx) error
		AddToCart(c *fiber.Ctx) error
		UpdateQuantity(c *fiber.Ctx) error
		RemoveFromCart(c *fiber.Ctx) error
		ClearCart(c *fiber.Ctx) error
	}

	cartHandler struct {
		cartService cart.CartService
		validator   *validator.Validate
	}
)

func NewCartHandler(cartService cart.CartService, validator *validator.Validate) CartHandler {
	return &cartHandler{
		cartService: cartService,
		validator:   validator,
	}
}

func (h *cartHandler) GetCart(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	items, err := h.cartService.GetCartItems(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetCart, err)
	}

	return presenters.SuccessResponse(c, domain.CartResponse{
		Items: items,
		Total: cart.CalculateTotal(items),
	}, fiber.StatusOK, domain.MessageSuccessGetCart)
}

func (h *cartHandler) GetCartTotal(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	items, err := h.cartService.GetCartItems(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetCart, err)
	}

	return presenters.SuccessResponse(c, domain.CartTotalResponse{
		Total: cart.CalculateTotal(items),
	}, fiber.StatusOK, domain.MessageSuccessGetCartTotal)
}

func (h *cartHandler) AddToCart(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddToCartRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddToCart, err)
	}

	if err := h.cartService.AddToCart(c.Context(), userID, req.ProductID, req.Quantity); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddToCart, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessAddToCart)
}

func (h *cartHandler) UpdateQuantity(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	productID := c.Params("product_id")
	req := new(domain.UpdateCartQuantityRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCartItem, err)
	}

	if err := h.cartService.UpdateQuantity(c.Context(), userID, productID, req.Quantity); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCartItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateCartItem)
}

func (h *cartHandler) RemoveFromCart(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	productID := c.Params("product_id")

	if err := h.cartService.RemoveFromCart(c.Context(), userID, productID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveCartItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveCartItem)
}

func (h *cartHandler) ClearCart(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.cartService.ClearCart(c.Context(), userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedClearCart, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessClearCart)
}
