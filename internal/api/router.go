package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/foodexpress/foodexpress-api/docs"
	"github.com/foodexpress/foodexpress-api/internal/api/handler"
	"github.com/foodexpress/foodexpress-api/internal/api/middleware"
	"github.com/foodexpress/foodexpress-api/internal/core/service"
	"github.com/foodexpress/foodexpress-api/internal/infrastructure/config"
	mongodb "github.com/foodexpress/foodexpress-api/internal/infrastructure/db/mongo"
	redisdb "github.com/foodexpress/foodexpress-api/internal/infrastructure/db/redis"
	"github.com/foodexpress/foodexpress-api/internal/infrastructure/http/handlers"
	"github.com/foodexpress/foodexpress-api/internal/pkg/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("foodexpress"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	restaurantRepo := mongodb.NewRestaurantRepository(db)
	menuRepo := mongodb.NewMenuRepository(db)
	restaurantCache := redisdb.NewRestaurantCache(rdb, log)

	tokens := token.NewService(cfg.JWTSecret, cfg.TokenTTL)

	authService := service.NewAuthService(userRepo, tokens, log)
	userService := service.NewUserService(userRepo, log)
	restaurantService := service.NewRestaurantService(restaurantRepo, menuRepo, restaurantCache, log)
	menuService := service.NewMenuService(menuRepo, restaurantRepo, log)

	authHandler := handler.NewAuthHandler(authService, userService)
	userHandler := handler.NewUserHandler(userService)
	restaurantHandler := handler.NewRestaurantHandler(restaurantService)
	menuHandler := handler.NewMenuHandler(menuService)

	auth := middleware.Auth(tokens)
	strict := middleware.RequireSubject()
	admin := middleware.RequireAdmin()
	ownerOrAdmin := middleware.RequireOwnerOrAdmin()

	// --- Auth routes ---
	e.POST("/authentification/login", authHandler.Login)
	e.GET("/my_account", authHandler.MyAccount, auth, strict)
	e.GET("/my_account/logout", authHandler.Logout)

	// --- User routes ---
	e.POST("/users", userHandler.Register)
	e.GET("/users", userHandler.List, auth, admin)
	e.GET("/users/me", userHandler.Me, auth, strict)
	e.GET("/users/:id", userHandler.Get, auth, ownerOrAdmin)
	e.PUT("/users/:id", userHandler.Update, auth, ownerOrAdmin)
	e.DELETE("/users/:id", userHandler.Delete, auth, ownerOrAdmin)

	// --- Restaurant routes (public reads, admin writes) ---
	e.GET("/restaurants", restaurantHandler.List)
	e.GET("/restaurants/:id", restaurantHandler.Get)
	e.POST("/restaurants", restaurantHandler.Create, auth, admin)
	e.PUT("/restaurants/:id", restaurantHandler.Update, auth, admin)
	e.DELETE("/restaurants/:id", restaurantHandler.Delete, auth, admin)

	// --- Menu routes (public reads, admin writes) ---
	e.GET("/menus", menuHandler.List)
	e.GET("/menus/:id", menuHandler.Get)
	e.POST("/menus", menuHandler.Create, auth, admin)
	e.PUT("/menus/:id", menuHandler.Update, auth, admin)
	e.DELETE("/menus/:id", menuHandler.Delete, auth, admin)

	// --- Operational endpoints ---
	health := handlers.NewHealth(db, rdb)

	e.GET("/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
