package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/sparat-2NE1/delivery/internal/config"
	"github.com/sparat-2NE1/delivery/internal/handlers"
	"github.com/sparat-2NE1/delivery/internal/middleware"
	"github.com/sparat-2NE1/delivery/internal/models"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	userHandler *handlers.UserHandler,
	addressHandler *handlers.AddressHandler,
	storeHandler *handlers.StoreHandler,
	productHandler *handlers.ProductHandler,
	regionHandler *handlers.RegionHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	jwt := middleware.JWTProtected(cfg)
	managerOrMaster := middleware.RequireRoles(models.RoleManager, models.RoleMaster)

	// Users. Signup/signin/refresh are public with a stricter rate limit;
	// everything else requires an access token.
	user := api.Group("/user")
	authLimiter := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
	user.Post("/signup", authLimiter, userHandler.Signup)
	user.Post("/signin", authLimiter, userHandler.Signin)
	user.Post("/refresh", authLimiter, userHandler.Refresh)
	user.Post("/logout", jwt, userHandler.Logout)
	user.Get("/", jwt, userHandler.Search)
	user.Get("/:id", jwt, userHandler.GetByID)
	user.Patch("/:id", jwt, userHandler.Update)
	user.Patch("/:id/role", jwt, userHandler.UpdateRole)
	user.Patch("/:id/delete", jwt, userHandler.Delete)

	// Delivery addresses, always scoped to the caller.
	address := api.Group("/address", jwt)
	address.Post("/", addressHandler.Add)
	address.Get("/", addressHandler.List)
	address.Delete("/:id", addressHandler.Remove)

	// Stores. Reading is public; managing requires MANAGER or MASTER.
	stores := api.Group("/stores")
	stores.Get("/", storeHandler.List)
	stores.Get("/:id", storeHandler.GetByID)
	stores.Post("/", jwt, managerOrMaster, storeHandler.Create)
	stores.Put("/:id", jwt, managerOrMaster, storeHandler.Update)
	stores.Patch("/:id/delete", jwt, managerOrMaster, storeHandler.Delete)

	// Products.
	products := api.Group("/products")
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/stores/:storeId", jwt, managerOrMaster, productHandler.AddToStore)
	products.Put("/:id", jwt, managerOrMaster, productHandler.Update)
	products.Patch("/:id/hide", jwt, managerOrMaster, productHandler.Hide)
	products.Patch("/:id/show", jwt, managerOrMaster, productHandler.Show)
	products.Patch("/:id/delete", jwt, managerOrMaster, productHandler.Delete)

	// Operating regions. /search must be registered before /:storeId.
	region := api.Group("/region")
	region.Get("/", regionHandler.ListAll)
	region.Get("/search", regionHandler.Search)
	region.Get("/:storeId", regionHandler.ListByStore)
	region.Post("/", jwt, managerOrMaster, regionHandler.Create)
	region.Put("/:id", jwt, managerOrMaster, regionHandler.Update)
	region.Patch("/:id", jwt, managerOrMaster, regionHandler.Delete)
}
