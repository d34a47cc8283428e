package handlers

import (
	"SmartCart-Backend/domain"
	"SmartCart-Backend/internal/api/presenters"
	"SmartCart-Backend/pkg/product"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ProductHandler interface {
		GetAllProducts(c *fiber.Ctx) error
		SearchProducts(c *fiber.Ctx) error
		GetProductsByCategory(c *fiber.Ctx) error
		GetCategories(c *fiber.Ctx) error
	}

	productHandler struct {
		productService product.ProductService
		validator      *validator.Validate
	}
)

func NewProductHandler(productService product.ProductService, validator *validator.Validate) ProductHandler {
	return &productHandler{
		productService: productService,
		validator:      validator,
	}
}

func (h *productHandler) GetAllProducts(c *fiber.Ctx) error {
	products, err := h.productService.GetAllProducts(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetProducts, err)
	}

	return presenters.SuccessResponse(c, products, fiber.StatusOK, domain.MessageSuccessGetProducts)
}

func (h *productHandler) SearchProducts(c *fiber.Ctx) error {
	req := new(domain.SearchProductsRequest)

	if err := c.QueryParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearchProducts, err)
	}

	products, err := h.productService.SearchProducts(c.Context(), req.Query)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSearchProducts, err)
	}

	return presenters.SuccessResponse(c, products, fiber.StatusOK, domain.MessageSuccessGetProducts)
}

func (h *productHandler) GetProductsByCategory(c *fiber.Ctx) error {
	category := c.Params("category")

	products, err := h.productService.GetProductsByCategory(c.Context(), category)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetProducts, err)
	}

	return presenters.SuccessResponse(c, products, fiber.StatusOK, domain.MessageSuccessGetProducts)
}

func (h *productHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.productService.GetCategories(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetCategories, err)
	}

	return presenters.SuccessResponse(c, categories, fiber.StatusOK, domain.MessageSuccessGetCategories)
}
