package config

import (
	"os"
	"time"

	"SmartCart-Backend/internal/api/handlers"
	"SmartCart-Backend/internal/api/routes"
	"SmartCart-Backend/internal/middleware"
	"SmartCart-Backend/internal/utils"
	"SmartCart-Backend/internal/utils/mailing"
	"SmartCart-Backend/internal/utils/storage"
	"SmartCart-Backend/pkg/auth"
	"SmartCart-Backend/pkg/cart"
	"SmartCart-Backend/pkg/jwt"
	"SmartCart-Backend/pkg/product"
	"SmartCart-Backend/pkg/shoppinglist"
	"SmartCart-Backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB, rdb *redis.Client) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
		Immutable:         true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "America/Sao_Paulo",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3(storage.LoadS3Config())
	mailer := mailing.NewMailer(mailing.LoadMailConfig())

	// Repository
	userRepository := user.NewUserRepository(db)
	productRepository := product.NewProductRepository(db)
	cartRepository := cart.NewCartRepository(db)
	shoppingListRepository := shoppinglist.NewShoppingListRepository(db)

	// Service
	jwtService := jwt.NewJWTService(utils.GetConfig("JWT_SECRET"))
	authService := auth.NewAuthService(
		userRepository,
		jwtService,
		auth.NewSessionStore(rdb),
		auth.NewEventBus(rdb),
		mailer,
		auth.Config{
			AppURL:           utils.GetConfig("APP_URL"),
			SiteRedirectPath: utils.GetConfig("SITE_REDIRECT_PATH"),
			SessionTTL:       time.Duration(utils.GetConfigInt("SESSION_TTL_MINUTES", 60)) * time.Minute,
		},
	)
	productService := product.NewProductService(productRepository, s3)
	cartService := cart.NewCartService(cartRepository, s3)
	shoppingListService := shoppinglist.NewShoppingListService(shoppingListRepository, s3)

	// Handler
	authHandler := handlers.NewAuthHandler(authService, validator)
	productHandler := handlers.NewProductHandler(productService, validator)
	cartHandler := handlers.NewCartHandler(cartService, validator)
	shoppingListHandler := handlers.NewShoppingListHandler(shoppingListService, validator)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		ProductHandler:      productHandler,
		CartHandler:         cartHandler,
		ShoppingListHandler: shoppingListHandler,
		AuthHandler:         authHandler,
		Middleware:          middlewares,
		Sessions:            authService,
	}
	routesConfig.Setup()
	return app, nil
}
