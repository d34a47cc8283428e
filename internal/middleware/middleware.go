package middleware

import (
	"context"
	"strings"

	"SmartCart-Backend/domain"
	"SmartCart-Backend/internal/api/presenters"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	SessionReader interface {
		GetSession(ctx context.Context, accessToken string) (*domain.Session, error)
	}

	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(sessions SessionReader) fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, " + domain.HeaderClientID,
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	})
}

// AuthMiddleware resolves the bearer token into a live session and stores
// the user id and token in c.Locals.
func (m *middleware) AuthMiddleware(sessions SessionReader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := BearerToken(c)
		if token == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrTokenNotFound)
		}

		session, err := sessions.GetSession(c.Context(), token)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
		}

		c.Locals("user_id", session.User.ID)
		c.Locals("access_token", token)
		return c.Next()
	}
}

func BearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}
