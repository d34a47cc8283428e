package routes

import (
	"SmartCart-Backend/internal/api/handlers"
	"SmartCart-Backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	ProductHandler      handlers.ProductHandler
	CartHandler         handlers.CartHandler
	ShoppingListHandler handlers.ShoppingListHandler
	AuthHandler         handlers.AuthHandler
	Middleware          middleware.Middleware
	Sessions            middleware.SessionReader
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Auth()
	c.Products()
	c.Cart()
	c.ShoppingLists()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/v1/auth")
	{
		auth.Post("/sign-in", c.AuthHandler.SignIn)
		auth.Post("/sign-up", c.AuthHandler.SignUp)
		auth.Get("/verify", c.AuthHandler.VerifyEmail)
		auth.Post("/sign-out", c.Middleware.AuthMiddleware(c.Sessions), c.AuthHandler.SignOut)
		auth.Get("/session", c.Middleware.AuthMiddleware(c.Sessions), c.AuthHandler.GetSession)
		auth.Get("/profile", c.Middleware.AuthMiddleware(c.Sessions), c.AuthHandler.GetProfile)
		auth.Patch("/profile", c.Middleware.AuthMiddleware(c.Sessions), c.AuthHandler.UpdateProfile)
	}
}

// Products is public; the catalog is readable without a session.
func (c *Config) Products() {
	products := c.App.Group("/api/v1/products")
	products.Get("", c.ProductHandler.GetAllProducts)
	products.Get("/search", c.ProductHandler.SearchProducts)
	products.Get("/categories", c.ProductHandler.GetCategories)
	products.Get("/category/:category", c.ProductHandler.GetProductsByCategory)
}

func (c *Config) Cart() {
	cart := c.App.Group("/api/v1/cart", c.Middleware.AuthMiddleware(c.Sessions))
	cart.Get("", c.CartHandler.GetCart)
	cart.Get("/total", c.CartHandler.GetCartTotal)
	cart.Post("", c.CartHandler.AddToCart)
	cart.Patch("/:product_id", c.CartHandler.UpdateQuantity)
	cart.Delete("/:product_id", c.CartHandler.RemoveFromCart)
	cart.Delete("", c.CartHandler.ClearCart)
}

func (c *Config) ShoppingLists() {
	lists := c.App.Group("/api/v1/lists", c.Middleware.AuthMiddleware(c.Sessions))
	lists.Get("", c.ShoppingListHandler.GetLists)
	lists.Post("", c.ShoppingListHandler.CreateList)

	// item routes are registered before /:id so "items" is never read as a list id
	lists.Patch("/items/:item_id", c.ShoppingListHandler.UpdateItemQuantity)
	lists.Delete("/items/:item_id", c.ShoppingListHandler.RemoveItemFromList)

	lists.Patch("/:id/status", c.ShoppingListHandler.UpdateListStatus)
	lists.Delete("/:id", c.ShoppingListHandler.DeleteList)
	lists.Get("/:id/items", c.ShoppingListHandler.GetListItems)
	lists.Post("/:id/items", c.ShoppingListHandler.AddItemToList)
}
