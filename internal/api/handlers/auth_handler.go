package handlers

import (
	"errors"

	"SmartCart-Backend/domain"
	"SmartCart-Backend/internal/api/presenters"
	"SmartCart-Backend/pkg/auth"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AuthHandler interface {
		SignIn(c *fiber.Ctx) error
		SignUp(c *fiber.Ctx) error
		SignOut(c *fiber.Ctx) error
		GetSession(c *fiber.Ctx) error
		VerifyEmail(c *fiber.Ctx) error
		GetProfile(c *fiber.Ctx) error
		UpdateProfile(c *fiber.Ctx) error
	}

	authHandler struct {
		authService auth.AuthService
		validator   *validator.Validate
	}
)

func NewAuthHandler(authService auth.AuthService, validator *validator.Validate) AuthHandler {
	return &authHandler{
		authService: authService,
		validator:   validator,
	}
}

func authErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenExpired):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrEmailAlreadyRegistered):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound
	}
	return fiber.StatusBadRequest
}

func (h *authHandler) SignIn(c *fiber.Ctx) error {
	req := new(domain.SignInRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAuthenticate, err)
	}
	req.ClientID = c.Get(domain.HeaderClientID)

	session, err := h.authService.SignIn(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, authErrorStatus(err), domain.MessageFailedAuthenticate, err)
	}

	return presenters.SuccessResponse(c, session, fiber.StatusOK, domain.MessageSuccessSignIn)
}

func (h *authHandler) SignUp(c *fiber.Ctx) error {
	req := new(domain.SignUpRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAuthenticate, err)
	}
	req.ClientID = c.Get(domain.HeaderClientID)

	res, err := auth.SignUpWithProfile(c.Context(), h.authService, *req)
	if err != nil {
		return presenters.ErrorResponse(c, authErrorStatus(err), domain.MessageFailedAuthenticate, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSignUp)
}

func (h *authHandler) SignOut(c *fiber.Ctx) error {
	token := c.Locals("access_token").(string)

	if err := h.authService.SignOut(c.Context(), token, c.Get(domain.HeaderClientID)); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSignOut, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSignOut)
}

func (h *authHandler) GetSession(c *fiber.Ctx) error {
	token := c.Locals("access_token").(string)

	session, err := h.authService.GetSession(c.Context(), token)
	if err != nil {
		return presenters.ErrorResponse(c, authErrorStatus(err), domain.MessageFailedGetSession, err)
	}

	return presenters.SuccessResponse(c, session, fiber.StatusOK, domain.MessageSuccessGetSession)
}

func (h *authHandler) VerifyEmail(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedVerifyEmail, domain.ErrTokenNotFound)
	}

	redirectTo, err := h.authService.VerifyEmail(c.Context(), token)
	if err != nil {
		return presenters.ErrorResponse(c, authErrorStatus(err), domain.MessageFailedVerifyEmail, err)
	}

	return c.Redirect(redirectTo, fiber.StatusFound)
}

func (h *authHandler) GetProfile(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	profile, err := h.authService.GetProfile(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, authErrorStatus(err), domain.MessageFailedGetProfile, err)
	}

	return presenters.SuccessResponse(c, profile, fiber.StatusOK, domain.MessageSuccessGetProfile)
}

func (h *authHandler) UpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UpdateProfileRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.authService.UpdateProfile(c.Context(), userID, *req); err != nil {
		return presenters.ErrorResponse(c, authErrorStatus(err), domain.MessageFailedUpdateProfile, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateProfile)
}
